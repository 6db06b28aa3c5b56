package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adg/canon"
	"github.com/katalvlaran/adg/classify"
	"github.com/katalvlaran/adg/diagram"
	"github.com/katalvlaran/adg/expr"
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

	return canon.Relabel(d)
}

func synthesize(t *testing.T, d *diagram.Diagram) *expr.Expression {
	t.Helper()
	e, err := expr.Synthesize(d, canon.SymmetryFactor(d, canon.Canonicalize(d)))
	require.NoError(t, err)

	return e
}

// energy assigns a distinct positive value to every label.
func energy(label string) float64 {
	v := 0.7
	for _, r := range label {
		v = v*1.3 + float64(r%17)
	}

	return v
}

func value(dens []expr.Denominator) float64 {
	p := 1.0
	for _, den := range dens {
		s := 0.0
		for _, l := range den.Plus {
			s += energy(l)
		}
		for _, l := range den.Minus {
			s -= energy(l)
		}
		p /= s
	}

	return p
}

func TestSynthesize_MBPTSecondOrder(t *testing.T) {
	d := matrix(t, []diagram.VertexSpec{h2, h2}, [][]int{{0, 2}, {2, 0}})
	e := synthesize(t, d)
	require.False(t, e.TimeDependent())
	require.Nil(t, e.Integrated())

	terms := e.Terms()
	require.Len(t, terms, 1)
	term := terms[0]
	assert.Equal(t, 1, term.Sign)
	assert.Equal(t, 4, term.Symmetry)
	assert.Equal(t, []string{"<pq|H|ab>", "<ab|H|pq>"}, term.MatrixElements)
	require.Len(t, term.Denominators, 1)
	assert.Equal(t, expr.Denominator{Energy: expr.SingleParticle, Plus: []string{"a", "b"}, Minus: []string{"p", "q"}},
		term.Denominators[0])
	assert.Equal(t, "+1/4 <pq|H|ab> <ab|H|pq> / (ε_a+ε_b-ε_p-ε_q)\n", e.String())
}

func TestSynthesize_MBPTNonConserving(t *testing.T) {
	d := matrix(t, []diagram.VertexSpec{h2, h2}, [][]int{{0, 1}, {3, 0}})
	assert.Equal(t, 1, expr.Holes(d))
	assert.Equal(t, 1, expr.Loops(d))

	term := synthesize(t, d).Terms()[0]
	assert.Equal(t, 1, term.Sign)
	assert.Equal(t, "(ε_a-ε_p-ε_q-ε_r)", term.Denominators[0].String())
}

func TestLoopsHolesCrossings(t *testing.T) {
	ring := matrix(t, []diagram.VertexSpec{h1, h1, h1}, [][]int{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}})
	assert.Equal(t, 1, expr.Loops(ring))
	assert.Equal(t, 1, expr.Holes(ring))
	assert.Equal(t, 1, synthesize(t, ring).Terms()[0].Sign)
	assert.Len(t, synthesize(t, ring).Terms()[0].Denominators, 2)

	crossed, err := diagram.FromMatrix([]diagram.VertexSpec{h1, h1, h1, h1},
		[][]int{{0, 0, 1, 0}, {0, 0, 0, 1}, {1, 0, 0, 0}, {0, 1, 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 4, expr.Crossings(crossed))
}

func TestSynthesize_BMBPTSecondOrder(t *testing.T) {
	d := matrix(t, []diagram.VertexSpec{o2, h2}, [][]int{{0, 4}, {0, 0}}, diagram.WithQuasiParticles())
	e := synthesize(t, d)
	require.True(t, e.TimeDependent())

	terms := e.Terms()
	require.Len(t, terms, 1)
	assert.Equal(t, []int{0, 1}, terms[0].Ordering)
	assert.Equal(t, []string{"O^{40}_{k1 k2 k3 k4}", "H^{04}_{k1 k2 k3 k4}"}, terms[0].MatrixElements)
	assert.Equal(t, []string{"θ(τ1)", "e^{-τ1 E_k1}", "e^{-τ1 E_k2}", "e^{-τ1 E_k3}", "e^{-τ1 E_k4}"},
		terms[0].TimeFactors)
	assert.Equal(t, 24, terms[0].Symmetry)

	integrated := e.Integrated()
	require.Len(t, integrated, 1)
	assert.Equal(t, "(E_k1+E_k2+E_k3+E_k4)", integrated[0].Denominators[0].String())
}

func TestSynthesize_BMBPTSignUsesTimeLayout(t *testing.T) {
	q := diagram.WithQuasiParticles()
	specs := []diagram.VertexSpec{o2, h2, h2, h2}
	// vertex 2 precedes vertex 1 in time, so this layout runs a line backwards
	raw, err := diagram.FromMatrix(specs, [][]int{{0, 0, 3, 1}, {0, 0, 0, 3}, {0, 1, 0, 0}, {0, 0, 0, 0}}, q)
	require.NoError(t, err)
	timed, err := diagram.FromMatrix(specs, [][]int{{0, 3, 0, 1}, {0, 0, 1, 0}, {0, 0, 0, 3}, {0, 0, 0, 0}}, q)
	require.NoError(t, err)

	assert.Equal(t, 9, expr.Crossings(raw))
	assert.Equal(t, 0, expr.Crossings(timed))
	assert.Equal(t, timed.Matrix(), classify.TimeLayout(raw).Matrix())

	for _, e := range []*expr.Expression{synthesize(t, raw), synthesize(t, timed)} {
		for _, term := range e.Terms() {
			assert.Equal(t, 1, term.Sign)
		}
		for _, term := range e.Integrated() {
			assert.Equal(t, 1, term.Sign)
		}
	}
}

func TestIntegration_Complete(t *testing.T) {
	q := diagram.WithQuasiParticles()
	tests := []struct {
		name      string
		d         *diagram.Diagram
		orderings int
		closed    bool
	}{
		{"chain", matrix(t, []diagram.VertexSpec{o1, h2, h1}, [][]int{{0, 2, 0}, {0, 0, 2}, {0, 0, 0}}, q), 1, true},
		{"branch", matrix(t, []diagram.VertexSpec{o2, h1, h1}, [][]int{{0, 2, 2}, {0, 0, 0}, {0, 0, 0}}, q), 2, true},
		{"diamond", matrix(t, []diagram.VertexSpec{o1, h1, h1, h1},
			[][]int{{0, 1, 1, 0}, {0, 0, 0, 1}, {0, 0, 0, 1}, {0, 0, 0, 0}}, q), 2, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			orders := expr.Orderings(tc.d)
			require.Len(t, orders, tc.orderings)

			want := 0.0
			for _, o := range orders {
				assert.Equal(t, tc.d.Observable(), o[0])
				dens, err := expr.CutDenominators(tc.d, o)
				require.NoError(t, err)
				want += value(dens)
			}

			e := synthesize(t, tc.d)
			assert.Len(t, e.Terms(), tc.orderings)
			got, weight := 0.0, 0
			for _, term := range e.Integrated() {
				got += float64(term.Coefficient) * value(term.Denominators)
				weight += term.Coefficient
			}
			assert.InDelta(t, want, got, 1e-12*math.Abs(want))
			if tc.closed {
				require.Len(t, e.Integrated(), 1)
				assert.Len(t, e.Integrated()[0].Denominators, tc.d.Order()-1)
			} else {
				assert.Equal(t, tc.orderings, weight)
			}
		})
	}
}

func TestSynthesize_NoOrdering(t *testing.T) {
	d, err := diagram.FromMatrix([]diagram.VertexSpec{o2, h2}, [][]int{{0, 2}, {2, 0}}, diagram.WithQuasiParticles())
	require.NoError(t, err)
	_, err = expr.Synthesize(d, 1)
	assert.ErrorIs(t, err, expr.ErrInternalConsistency)
}
