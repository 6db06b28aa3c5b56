package expr

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/adg/bfs"
	"github.com/katalvlaran/adg/canon"
	"github.com/katalvlaran/adg/classify"
	"github.com/katalvlaran/adg/dfs"
	"github.com/katalvlaran/adg/diagram"
)

// Holes returns the number of hole lines of d.
func Holes(d *diagram.Diagram) int {
	n := 0
	for _, l := range d.Lines() {
		if l.Role == diagram.Hole {
			n++
		}
	}

	return n
}

// Loops counts the closed fermion loops of d. At each vertex the i-th incoming
// line continues into the i-th outgoing line; lines left unpaired by unequal
// in- and out-degrees end open paths.
func Loops(d *diagram.Diagram) int {
	next := make([]int, d.NumLines())
	for _, l := range d.Lines() {
		next[l.Index] = -1
		ins, outs := d.InLines(l.To), d.OutLines(l.To)
		if i := slices.Index(ins, l.Index); i < len(outs) {
			next[l.Index] = outs[i]
		}
	}
	seen := make([]bool, d.NumLines())
	loops := 0
	for start := range next {
		if seen[start] {
			continue
		}
		l := start
		for l >= 0 && !seen[l] {
			seen[l] = true
			l = next[l]
		}
		if l == start {
			loops++
		}
	}

	return loops
}

// Crossings counts pairs of lines whose spans interleave in the layout of d.
// Lines sharing an endpoint never cross. Quasi-particle diagrams are expected
// on a time layout, see classify.TimeLayout.
func Crossings(d *diagram.Diagram) int {
	lines := d.Lines()
	n := 0
	for i, a := range lines {
		a1, a2 := min(a.From, a.To), max(a.From, a.To)
		for _, b := range lines[i+1:] {
			b1, b2 := min(b.From, b.To), max(b.From, b.To)
			if (a1 < b1 && b1 < a2 && a2 < b2) || (b1 < a1 && a1 < b2 && b2 < a2) {
				n++
			}
		}
	}

	return n
}

// Orderings returns every time ordering of d compatible with its lines, the
// observable vertex first when present.
func Orderings(d *diagram.Diagram) [][]int {
	return dfs.LinearExtensions(d, d.Observable())
}

// Synthesize derives the expression of the canonical representative d whose
// symmetry factor is symmetry.
//
// Errors: ErrInternalConsistency wrapped with the canonical key.
func Synthesize(d *diagram.Diagram, symmetry int) (*Expression, error) {
	labels := Labels(d)
	mes := MatrixElements(d, labels)
	if !d.QuasiParticles() {
		return synthesizeMBPT(d, symmetry, labels, mes)
	}

	return synthesizeBMBPT(d, symmetry, labels, mes)
}

func synthesizeMBPT(d *diagram.Diagram, symmetry int, labels, mes []string) (*Expression, error) {
	identity := make([]int, d.Order())
	for v := range identity {
		identity[v] = v
	}
	dens, err := cutDenominators(d, labels, identity)
	if err != nil {
		return nil, err
	}
	sign := 1
	if (Holes(d)+Loops(d))%2 == 1 {
		sign = -1
	}

	return &Expression{terms: []Term{{
		Sign:           sign,
		Coefficient:    1,
		Symmetry:       symmetry,
		MatrixElements: mes,
		Denominators:   dens,
	}}}, nil
}

func synthesizeBMBPT(d *diagram.Diagram, symmetry int, labels, mes []string) (*Expression, error) {
	orders := Orderings(d)
	if len(orders) == 0 {
		return nil, fmt.Errorf("%w: %s admits no time ordering", ErrInternalConsistency, canon.Key(d))
	}
	// crossing parity is shared by every time ordering
	sign := 1
	if Crossings(classify.TimeLayout(d))%2 == 1 {
		sign = -1
	}

	e := &Expression{terms: make([]Term, 0, len(orders))}
	perOrdering := make([]Term, 0, len(orders))
	for _, o := range orders {
		e.terms = append(e.terms, Term{
			Sign:           sign,
			Coefficient:    1,
			Symmetry:       symmetry,
			MatrixElements: mes,
			Ordering:       o,
			TimeFactors:    timeFactors(d, labels, o),
		})
		dens, err := cutDenominators(d, labels, o)
		if err != nil {
			return nil, err
		}
		perOrdering = append(perOrdering, Term{
			Sign:           sign,
			Coefficient:    1,
			Symmetry:       symmetry,
			MatrixElements: mes,
			Denominators:   dens,
			Ordering:       o,
		})
	}
	// 1) combine orderings integrating to the same denominators
	e.integrated = combine(perOrdering)

	// 2) a tree-shaped time structure collapses into one product
	if classify.TimeTree(d) {
		e.integrated = []Term{{
			Sign:           sign,
			Coefficient:    1,
			Symmetry:       symmetry,
			MatrixElements: mes,
			Denominators:   upSetDenominators(d, labels),
		}}
	}

	return e, nil
}

// CutDenominators returns the denominators obtained by integrating d over the
// time ordering o.
func CutDenominators(d *diagram.Diagram, o []int) ([]Denominator, error) {
	return cutDenominators(d, Labels(d), o)
}

// cutDenominators builds one denominator per cut between consecutive
// positions of the ordering o.
func cutDenominators(d *diagram.Diagram, labels []string, o []int) ([]Denominator, error) {
	pos := make([]int, d.Order())
	for p, v := range o {
		pos[v] = p
	}
	dens := make([]Denominator, 0, len(o)-1)
	for k := 1; k < len(o); k++ {
		den := Denominator{Energy: SingleParticle}
		if d.QuasiParticles() {
			den.Energy = QuasiParticle
		}
		for _, l := range d.Lines() {
			lo, hi := min(pos[l.From], pos[l.To]), max(pos[l.From], pos[l.To])
			if !(lo < k && k <= hi) {
				continue
			}
			if l.Role == diagram.Particle {
				den.Minus = append(den.Minus, labels[l.Index])
			} else {
				den.Plus = append(den.Plus, labels[l.Index])
			}
		}
		if len(den.Plus)+len(den.Minus) == 0 {
			return nil, fmt.Errorf("%w: %s has no line crossing cut %d of %v",
				ErrInternalConsistency, canon.Key(d), k, o)
		}
		dens = append(dens, den)
	}

	return dens, nil
}

// upSetDenominators returns, for every non-observable vertex v, the energy of
// the lines entering the set of vertices reachable from v.
func upSetDenominators(d *diagram.Diagram, labels []string) []Denominator {
	obs := d.Observable()
	var dens []Denominator
	for v := 0; v < d.Order(); v++ {
		if v == obs {
			continue
		}
		up := make([]bool, d.Order())
		for _, u := range bfs.Reachable(d, v) {
			up[u] = true
		}
		den := Denominator{Energy: QuasiParticle}
		for _, l := range d.Lines() {
			if up[l.To] && !up[l.From] {
				den.Plus = append(den.Plus, labels[l.Index])
			}
		}
		dens = append(dens, den)
	}

	return dens
}

// combine merges terms sharing a denominator multiset, keeping the first
// occurrence's position. A merged term no longer stands for one ordering and
// drops its Ordering.
func combine(terms []Term) []Term {
	groups := make(map[string]int)
	out := make([]Term, 0, len(terms))
	for _, t := range terms {
		sig := signature(t.Denominators)
		if i, ok := groups[sig]; ok {
			out[i].Coefficient += t.Coefficient
			out[i].Ordering = nil
			continue
		}
		groups[sig] = len(out)
		out = append(out, t)
	}

	return out
}

// signature identifies a denominator multiset.
func signature(dens []Denominator) string {
	parts := make([]string, len(dens))
	for i, den := range dens {
		parts[i] = den.String()
	}
	slices.Sort(parts)

	return strings.Join(parts, "")
}

// timeFactors renders the step functions of ordering o followed by one
// propagator exponential per line. The first vertex sits at τ = 0.
func timeFactors(d *diagram.Diagram, labels []string, o []int) []string {
	var out []string
	for k := 1; k < len(o); k++ {
		if k == 1 {
			out = append(out, fmt.Sprintf("θ(τ%d)", o[k]))
			continue
		}
		out = append(out, fmt.Sprintf("θ(τ%d-τ%d)", o[k], o[k-1]))
	}
	for _, l := range d.Lines() {
		if l.From == o[0] {
			out = append(out, fmt.Sprintf("e^{-τ%d E_%s}", l.To, labels[l.Index]))
			continue
		}
		out = append(out, fmt.Sprintf("e^{-(τ%d-τ%d) E_%s}", l.To, l.From, labels[l.Index]))
	}

	return out
}
