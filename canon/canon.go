package canon

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/adg/diagram"
)

// Canonicalize computes the canonical form of d.
//
// Implementation:
//   - Stage 1: refine vertex colours until the partition is stable.
//   - Stage 2: order cells by colour and search orderings within cells,
//     pruning any prefix whose encoding already exceeds the best one.
//
// Complexity: O(V³) for refinement plus Π|cell|! orderings in the worst case.
func Canonicalize(d *diagram.Diagram) Form {
	m := d.Matrix()
	colour := refine(d, m)

	n := d.Order()
	cells := make([][]int, 0, n)
	for c := 0; ; c++ {
		var cell []int
		for v := 0; v < n; v++ {
			if colour[v] == c {
				cell = append(cell, v)
			}
		}
		if cell == nil {
			break
		}
		cells = append(cells, cell)
	}
	slot := make([]int, 0, n) // cell of each position
	for ci, cell := range cells {
		for range cell {
			slot = append(slot, ci)
		}
	}

	s := &searcher{m: m, cells: cells, slot: slot, used: make([]bool, n), perm: make([]int, 0, n)}
	s.search()

	return Form{
		Key:           encodeKey(d, s.bestPerm, s.best),
		Perm:          s.bestPerm,
		Automorphisms: s.count,
	}
}

// Key returns the canonical key of d.
func Key(d *diagram.Diagram) string { return Canonicalize(d).Key }

// Relabel returns the canonical representative of d. Relabel is idempotent:
// Relabel(Relabel(d)) is Equal to Relabel(d).
func Relabel(d *diagram.Diagram) *diagram.Diagram {
	rep, err := d.Permute(Canonicalize(d).Perm)
	if err != nil {
		// Perm is a bijection by construction.
		panic(fmt.Sprintf("canon: %v", err))
	}

	return rep
}

// Isomorphic reports whether a and b share a canonical key.
func Isomorphic(a, b *diagram.Diagram) bool { return Key(a) == Key(b) }

// SymmetryFactor returns the order of the symmetry group acting on the lines
// of d: the product of multiplicity! over ordered vertex pairs, times the
// vertex automorphisms for time-dependent (quasi-particle) diagrams whose
// vertex times are integrated over.
func SymmetryFactor(d *diagram.Diagram, f Form) int {
	s := 1
	for _, row := range d.Matrix() {
		for _, c := range row {
			s *= factorial(c)
		}
	}
	if d.QuasiParticles() {
		s *= f.Automorphisms
	}

	return s
}

func factorial(n int) int {
	f := 1
	for k := 2; k <= n; k++ {
		f *= k
	}

	return f
}

// refine returns a stable colour per vertex; colours are dense from 0 and
// their numbering depends only on the isomorphism class.
func refine(d *diagram.Diagram, m [][]int) []int {
	n := d.Order()
	sigs := make([]string, n)
	for v := 0; v < n; v++ {
		vx := d.Vertex(v)
		// the observable sorts first so representatives place it at position 0
		first := 1
		if vx.Kind == diagram.Observable {
			first = 0
		}
		sigs[v] = fmt.Sprintf("%d/%d/%d/%d", first, vx.Rank, d.InDegree(v), d.OutDegree(v))
	}
	colour, classes := recolour(sigs)
	for {
		for v := 0; v < n; v++ {
			parts := make([]string, 0, n)
			for u := 0; u < n; u++ {
				if m[v][u] == 0 && m[u][v] == 0 {
					continue
				}
				self := 0
				if u == v {
					self = 1
				}
				parts = append(parts, fmt.Sprintf("%03d:%d:%d:%d", colour[u], m[v][u], m[u][v], self))
			}
			slices.Sort(parts)
			sigs[v] = fmt.Sprintf("%03d|%s", colour[v], strings.Join(parts, ","))
		}
		next, k := recolour(sigs)
		colour = next
		if k == classes {
			return colour
		}
		classes = k
	}
}

// recolour maps signatures onto dense colours by sorted signature order.
func recolour(sigs []string) ([]int, int) {
	uniq := slices.Clone(sigs)
	slices.Sort(uniq)
	uniq = slices.Compact(uniq)
	colour := make([]int, len(sigs))
	for v, s := range sigs {
		colour[v], _ = slices.BinarySearch(uniq, s)
	}

	return colour, len(uniq)
}

// searcher explores orderings of vertices within cells.
type searcher struct {
	m     [][]int
	cells [][]int
	slot  []int
	used  []bool
	perm  []int
	enc   []int

	best     []int
	bestPerm []int
	count    int
}

// search places a vertex at position len(s.perm), pruning every prefix whose
// encoding already exceeds the best complete encoding.
func (s *searcher) search() {
	p := len(s.perm)
	if p == len(s.m) {
		switch c := s.compare(); {
		case s.best == nil || c < 0:
			s.best = slices.Clone(s.enc)
			s.bestPerm = slices.Clone(s.perm)
			s.count = 1
		case c == 0:
			s.count++
		}

		return
	}
	for _, v := range s.cells[s.slot[p]] {
		if s.used[v] {
			continue
		}
		mark := len(s.enc)
		s.perm = append(s.perm, v)
		s.used[v] = true
		// 1) append the block of position p against positions 0..p
		for q := 0; q <= p; q++ {
			u := s.perm[q]
			s.enc = append(s.enc, s.m[v][u], s.m[u][v])
		}
		// 2) descend unless the prefix is already worse
		if s.compare() <= 0 {
			s.search()
		}
		s.enc = s.enc[:mark]
		s.used[v] = false
		s.perm = s.perm[:p]
	}
}

// compare orders the current prefix against the same prefix of the best
// encoding; with no best yet every prefix compares equal.
func (s *searcher) compare() int {
	if s.best == nil {
		return 0
	}

	return slices.Compare(s.enc, s.best[:len(s.enc)])
}

// encodeKey renders the vertex colours (kind, rank) and the canonical matrix.
func encodeKey(d *diagram.Diagram, perm, enc []int) string {
	var b strings.Builder
	for p, v := range perm {
		if p > 0 {
			b.WriteByte(',')
		}
		vx := d.Vertex(v)
		fmt.Fprintf(&b, "%s%d", vx.Kind, vx.Rank)
	}
	b.WriteByte('|')
	for i, x := range enc {
		if i > 0 {
			b.WriteByte('.')
		}
		fmt.Fprintf(&b, "%d", x)
	}

	return b.String()
}
