// File: transform.go
// Role: copy-on-write transformations of a Diagram.
// Determinism:
//   - Permute and Reverse emit lines sorted by (From, To, External), so two
//     transformations of isomorphic inputs onto the same labeling are Equal.

package diagram

import (
	"cmp"
	"fmt"
	"slices"
)

// Clone returns a deep copy sharing no storage with d.
// Complexity: O(V + L).
func (d *Diagram) Clone() *Diagram {
	c := &Diagram{
		vertices: slices.Clone(d.vertices),
		lines:    slices.Clone(d.lines),
		in:       make([][]int, len(d.in)),
		out:      make([][]int, len(d.out)),
		quasi:    d.quasi,
	}
	for v := range d.in {
		c.in[v] = slices.Clone(d.in[v])
		c.out[v] = slices.Clone(d.out[v])
	}

	return c
}

// Permute relabels vertices so that new vertex p is old vertex perm[p].
// Particle/hole roles are re-derived from the new time order.
//
// Errors: ErrBadPermutation if perm is not a bijection on [0, Order()).
func (d *Diagram) Permute(perm []int) (*Diagram, error) {
	n := len(d.vertices)
	if len(perm) != n {
		return nil, fmt.Errorf("%w: length %d for order %d", ErrBadPermutation, len(perm), n)
	}
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	for p, old := range perm {
		if old < 0 || old >= n || pos[old] != -1 {
			return nil, fmt.Errorf("%w: %v", ErrBadPermutation, perm)
		}
		pos[old] = p
	}

	specs := make([]VertexSpec, n)
	for p, old := range perm {
		specs[p] = VertexSpec{Kind: d.vertices[old].Kind, Rank: d.vertices[old].Rank}
	}
	lines := make([]LineSpec, len(d.lines))
	for i, l := range d.lines {
		lines[i] = LineSpec{From: pos[l.From], To: pos[l.To], External: l.External}
	}

	return d.rebuild(specs, lines), nil
}

// Reverse returns the diagram with every line reversed. Under time roles this
// swaps particles and holes.
func (d *Diagram) Reverse() *Diagram {
	lines := make([]LineSpec, len(d.lines))
	for i, l := range d.lines {
		lines[i] = LineSpec{From: l.To, To: l.From, External: l.External}
	}

	return d.rebuild(d.Specs(), lines)
}

// rebuild constructs a sibling diagram from already-valid parts.
func (d *Diagram) rebuild(specs []VertexSpec, lines []LineSpec) *Diagram {
	slices.SortFunc(lines, compareLineSpec)
	var opts []Option
	if d.quasi {
		opts = append(opts, WithQuasiParticles())
	}
	nd, err := New(specs, lines, opts...)
	if err != nil {
		// Degrees are preserved by relabeling and reversal.
		panic(fmt.Sprintf("diagram: rebuild broke saturation: %v", err))
	}

	return nd
}

func compareLineSpec(a, b LineSpec) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}
	if c := cmp.Compare(a.To, b.To); c != 0 {
		return c
	}
	switch {
	case a.External == b.External:
		return 0
	case b.External:
		return -1
	default:
		return 1
	}
}

// Equal reports whether d and o are the same labeled diagram: identical
// vertices and identical line sequences.
func (d *Diagram) Equal(o *Diagram) bool {
	if d == nil || o == nil {
		return d == o
	}

	return d.quasi == o.quasi &&
		slices.Equal(d.vertices, o.vertices) &&
		slices.Equal(d.lines, o.lines)
}
