package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adg/canon"
	"github.com/katalvlaran/adg/classify"
	"github.com/katalvlaran/adg/diagram"
)

var (
	h1 = diagram.VertexSpec{Kind: diagram.Interaction, Rank: 1}
	h2 = diagram.VertexSpec{Kind: diagram.Interaction, Rank: 2}
	o1 = diagram.VertexSpec{Kind: diagram.Observable, Rank: 1}
	o2 = diagram.VertexSpec{Kind: diagram.Observable, Rank: 2}
)

func matrix(t *testing.T, specs []diagram.VertexSpec, m [][]int, opts ...diagram.Option) *diagram.Diagram {
	t.Helper()
	d, err := diagram.FromMatrix(specs, m, opts...)
	require.NoError(t, err)

	return d
}

func TestExcitation(t *testing.T) {
	assert.Equal(t, 2, classify.Excitation(matrix(t, []diagram.VertexSpec{h2, h2}, [][]int{{0, 2}, {2, 0}})))
	assert.Equal(t, 2, classify.Excitation(matrix(t, []diagram.VertexSpec{h2, h2}, [][]int{{0, 3}, {1, 0}})))

	ring := matrix(t, []diagram.VertexSpec{h1, h1, h1}, [][]int{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}})
	assert.Equal(t, 2, classify.Crossing(ring, 1))
	assert.Equal(t, 1, classify.Excitation(ring))
}

func TestExcitation_TimeLayout(t *testing.T) {
	q := diagram.WithQuasiParticles()
	specs := []diagram.VertexSpec{o2, h2, h2, h2}
	raw := matrix(t, specs, [][]int{{0, 0, 3, 1}, {0, 0, 0, 3}, {0, 1, 0, 0}, {0, 0, 0, 0}}, q)
	assert.Equal(t, 8, classify.Crossing(raw, 2))

	timed := classify.TimeLayout(raw)
	assert.Equal(t, [][]int{{0, 3, 0, 1}, {0, 0, 1, 0}, {0, 0, 0, 3}, {0, 0, 0, 0}}, timed.Matrix())
	assert.Equal(t, 2, classify.Excitation(raw))
	assert.Equal(t, 2, classify.Excitation(timed))
	assert.Equal(t, timed.Matrix(), classify.TimeLayout(timed).Matrix())

	mbpt := matrix(t, []diagram.VertexSpec{h2, h2}, [][]int{{0, 3}, {1, 0}})
	assert.Same(t, mbpt, classify.TimeLayout(mbpt))
}

func TestConjugateKey_Involution(t *testing.T) {
	for _, d := range []*diagram.Diagram{
		matrix(t, []diagram.VertexSpec{h2, h2}, [][]int{{0, 3}, {1, 0}}),
		matrix(t, []diagram.VertexSpec{h2, h1, h1}, [][]int{{0, 1, 1}, {1, 0, 0}, {1, 0, 0}}),
		matrix(t, []diagram.VertexSpec{h2, h1, h1}, [][]int{{0, 2, 2}, {0, 0, 0}, {0, 0, 0}}),
	} {
		conj := canon.Relabel(d.Reverse())
		assert.Equal(t, canon.Key(d), classify.ConjugateKey(conj))
	}

	// 3+1 reversed is 1+3, the same unlabelled diagram
	d := matrix(t, []diagram.VertexSpec{h2, h2}, [][]int{{0, 3}, {1, 0}})
	assert.Equal(t, canon.Key(d), classify.ConjugateKey(d))

	star := matrix(t, []diagram.VertexSpec{h2, h1, h1}, [][]int{{0, 2, 2}, {0, 0, 0}, {0, 0, 0}})
	assert.NotEqual(t, canon.Key(star), classify.ConjugateKey(star))
}

func TestFamilyAndMaxRank(t *testing.T) {
	tests := []struct {
		name   string
		d      *diagram.Diagram
		family classify.Family
		max    int
	}{
		{"two-body", matrix(t, []diagram.VertexSpec{o2, h2}, [][]int{{0, 4}, {0, 0}}), classify.Canonical, 2},
		{"one-body observable", matrix(t, []diagram.VertexSpec{o1, h2, h1},
			[][]int{{0, 2, 0}, {0, 0, 2}, {0, 0, 0}}), classify.ObservableCanonical, 2},
		{"one-body interaction", matrix(t, []diagram.VertexSpec{o1, h1}, [][]int{{0, 2}, {0, 0}}), classify.NonCanonical, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.family, classify.FamilyOf(tc.d))
			assert.Equal(t, tc.max, classify.MaxRank(tc.d))
		})
	}
	assert.Equal(t, "observable-canonical", classify.ObservableCanonical.String())
}

func TestTimeTree(t *testing.T) {
	q := diagram.WithQuasiParticles()
	chain := matrix(t, []diagram.VertexSpec{o1, h2, h1}, [][]int{{0, 2, 0}, {0, 0, 2}, {0, 0, 0}}, q)
	branch := matrix(t, []diagram.VertexSpec{o2, h1, h1}, [][]int{{0, 2, 2}, {0, 0, 0}, {0, 0, 0}}, q)
	shortcut := matrix(t, []diagram.VertexSpec{o1, h1, h1}, [][]int{{0, 1, 1}, {0, 0, 1}, {0, 0, 0}}, q)
	diamond := matrix(t, []diagram.VertexSpec{o1, h1, h1, h1},
		[][]int{{0, 1, 1, 0}, {0, 0, 0, 1}, {0, 0, 0, 1}, {0, 0, 0, 0}}, q)

	assert.True(t, classify.TimeTree(chain))
	assert.True(t, classify.TimeTree(branch))
	assert.True(t, classify.TimeTree(shortcut))
	assert.False(t, classify.TimeTree(diamond))
	assert.False(t, classify.TimeTree(matrix(t, []diagram.VertexSpec{h2, h2}, [][]int{{0, 2}, {2, 0}})))

	a := classify.Annotate(chain)
	assert.Equal(t, classify.Annotation{
		Excitation:   1,
		Family:       classify.ObservableCanonical,
		MaxRank:      2,
		ConjugateKey: canon.Key(chain.Reverse()),
		TimeTree:     true,
	}, a)
}

func TestPair(t *testing.T) {
	assert.Equal(t, []int{1, 0, -1, 3}, classify.Pair(
		[]string{"a", "b", "c", "d"},
		[]string{"b", "a", "x", "d"},
	))
}
