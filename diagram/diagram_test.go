package diagram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adg/diagram"
)

// secondOrder builds the 2p2h second-order diagram: two particle lines up,
// two hole lines down.
func secondOrder(t *testing.T) *diagram.Diagram {
	t.Helper()
	d, err := diagram.New(
		[]diagram.VertexSpec{{Rank: 2}, {Rank: 2}},
		[]diagram.LineSpec{{From: 0, To: 1}, {From: 0, To: 1}, {From: 1, To: 0}, {From: 1, To: 0}},
	)
	require.NoError(t, err)

	return d
}

func TestNew_TimeRoles(t *testing.T) {
	d := secondOrder(t)
	assert.Equal(t, 2, d.Order())
	assert.Equal(t, 4, d.NumLines())
	assert.Equal(t, diagram.Particle, d.Line(0).Role)
	assert.Equal(t, diagram.Hole, d.Line(3).Role)
	assert.Equal(t, []int{0, 1}, d.OutLines(0))
	assert.Equal(t, []int{2, 3}, d.InLines(0))
	assert.Equal(t, 4, d.Degree(1))
	assert.Equal(t, 2, d.Multiplicity(1, 0))
	assert.Equal(t, []int{1}, d.Neighbors(0))
	assert.Equal(t, [][]int{{0, 2}, {2, 0}}, d.Matrix())
	assert.Equal(t, -1, d.Observable())
	assert.Equal(t, "[H2 H2] 0>1 0>1 1>0 1>0", d.String())
}

func TestNew_QuasiParticles(t *testing.T) {
	d, err := diagram.New(
		[]diagram.VertexSpec{{Kind: diagram.Observable, Rank: 1}, {Rank: 1}},
		[]diagram.LineSpec{{From: 0, To: 1}, {From: 0, To: 1}},
		diagram.WithQuasiParticles(),
	)
	require.NoError(t, err)
	assert.True(t, d.QuasiParticles())
	assert.Equal(t, diagram.QuasiParticle, d.Line(1).Role)
	assert.Equal(t, 0, d.Observable())
}

func TestNew_InvalidTopology(t *testing.T) {
	cases := []struct {
		name  string
		verts []diagram.VertexSpec
		lines []diagram.LineSpec
	}{
		{"missing vertex", []diagram.VertexSpec{{Rank: 1}}, []diagram.LineSpec{{From: 0, To: 3}}},
		{"negative endpoint", []diagram.VertexSpec{{Rank: 1}, {Rank: 1}}, []diagram.LineSpec{{From: -1, To: 1}}},
		{"unsaturated", []diagram.VertexSpec{{Rank: 2}, {Rank: 1}}, []diagram.LineSpec{{From: 0, To: 1}, {From: 1, To: 0}}},
		{"oversaturated", []diagram.VertexSpec{{Rank: 1}, {Rank: 1}},
			[]diagram.LineSpec{{From: 0, To: 1}, {From: 1, To: 0}, {From: 0, To: 1}}},
		{"negative rank", []diagram.VertexSpec{{Rank: -1}}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := diagram.New(tc.verts, tc.lines)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, diagram.ErrInvalidTopology)
		})
	}
}

func TestSelfLoopCountsTwice(t *testing.T) {
	d, err := diagram.New([]diagram.VertexSpec{{Rank: 1}}, []diagram.LineSpec{{From: 0, To: 0}})
	require.NoError(t, err)
	assert.Equal(t, 2, d.Degree(0))
	assert.Equal(t, []int{0}, d.Neighbors(0))
}

func TestClone_NoAliasing(t *testing.T) {
	d := secondOrder(t)
	c := d.Clone()
	require.True(t, d.Equal(c))

	lines := c.OutLines(0)
	lines[0] = 99
	assert.Equal(t, []int{0, 1}, d.OutLines(0))
	assert.Equal(t, []int{0, 1}, c.OutLines(0))
}

func TestPermute(t *testing.T) {
	d, err := diagram.New(
		[]diagram.VertexSpec{{Rank: 1}, {Rank: 2}},
		[]diagram.LineSpec{{From: 0, To: 1}, {From: 1, To: 0}, {From: 1, To: 1}},
	)
	require.NoError(t, err)

	p, err := d.Permute([]int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Vertex(0).Rank)
	assert.Equal(t, 1, p.Vertex(1).Rank)
	assert.Equal(t, [][]int{{1, 1}, {1, 0}}, p.Matrix())
	// 0>1 now runs upward and becomes a particle.
	assert.Equal(t, diagram.LineSpec{From: 0, To: 0}, diagram.LineSpec{From: p.Line(0).From, To: p.Line(0).To})
	assert.Equal(t, diagram.Particle, p.Line(1).Role)
	assert.Equal(t, diagram.Hole, p.Line(2).Role)

	back, err := p.Permute([]int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, d.Matrix(), back.Matrix())

	for _, bad := range [][]int{{0}, {0, 0}, {0, 2}} {
		_, err = d.Permute(bad)
		assert.ErrorIs(t, err, diagram.ErrBadPermutation)
	}
}

func TestReverse_SwapsRoles(t *testing.T) {
	d, err := diagram.New(
		[]diagram.VertexSpec{{Rank: 2}, {Rank: 2}},
		[]diagram.LineSpec{{From: 0, To: 1}, {From: 1, To: 0}, {From: 1, To: 0}, {From: 1, To: 0}},
	)
	require.NoError(t, err)

	r := d.Reverse()
	assert.Equal(t, [][]int{{0, 3}, {1, 0}}, r.Matrix())
	holes := 0
	for _, l := range r.Lines() {
		if l.Role == diagram.Hole {
			holes++
		}
	}
	assert.Equal(t, 1, holes)
	assert.True(t, d.Equal(r.Reverse()))
}

func TestBuilder(t *testing.T) {
	b := diagram.NewBuilder([]diagram.VertexSpec{{Rank: 1}, {Rank: 1}})
	require.True(t, b.Connect(0, 1, 1))
	assert.False(t, b.Saturated())

	branch := b.Clone()
	require.True(t, branch.Connect(1, 0, 1))
	assert.True(t, branch.Saturated())
	assert.False(t, b.Saturated(), "clone must not alias the parent")
	assert.Equal(t, 1, b.Remaining(0))

	assert.False(t, b.Connect(0, 1, 2), "capacity exceeded")
	assert.Equal(t, 1, b.Remaining(1))

	d, err := branch.Build()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {1, 0}}, d.Matrix())

	_, err = b.Build()
	assert.ErrorIs(t, err, diagram.ErrInvalidTopology)
}

func TestFromMatrix(t *testing.T) {
	specs := []diagram.VertexSpec{{Rank: 2}, {Rank: 2}}
	d, err := diagram.FromMatrix(specs, [][]int{{0, 2}, {2, 0}})
	require.NoError(t, err)
	assert.True(t, secondOrder(t).Equal(d))

	_, err = diagram.FromMatrix(specs, [][]int{{0, 2}})
	assert.ErrorIs(t, err, diagram.ErrInvalidTopology)
	_, err = diagram.FromMatrix(specs, [][]int{{0, 1}, {1, 0}})
	assert.ErrorIs(t, err, diagram.ErrInvalidTopology)
}
