package diagram

import (
	"fmt"
	"slices"
)

// Builder accumulates lines between pre-declared vertices. It is the mutable
// search state of the enumerator; Clone branches it without aliasing.
type Builder struct {
	specs []VertexSpec
	m     [][]int // m[i][j] lines i→j
	ends  []int   // line ends attached so far per vertex
}

// NewBuilder starts an empty builder over the given vertices.
func NewBuilder(specs []VertexSpec) *Builder {
	n := len(specs)
	b := &Builder{
		specs: slices.Clone(specs),
		m:     make([][]int, n),
		ends:  make([]int, n),
	}
	for i := range b.m {
		b.m[i] = make([]int, n)
	}

	return b
}

// Connect adds count lines from → to. It reports false, leaving the builder
// unchanged, when either endpoint would exceed its capacity.
func (b *Builder) Connect(from, to, count int) bool {
	if count == 0 {
		return true
	}
	need := map[int]int{from: count}
	need[to] += count
	for v, c := range need {
		if b.ends[v]+c > 2*b.specs[v].Rank {
			return false
		}
	}
	b.m[from][to] += count
	for v, c := range need {
		b.ends[v] += c
	}

	return true
}

// Remaining returns how many line ends v can still host.
func (b *Builder) Remaining(v int) int { return 2*b.specs[v].Rank - b.ends[v] }

// Saturated reports whether every vertex hosts exactly 2·rank line ends.
func (b *Builder) Saturated() bool {
	for v := range b.specs {
		if b.Remaining(v) != 0 {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the builder.
func (b *Builder) Clone() *Builder {
	c := &Builder{
		specs: b.specs, // never mutated
		m:     make([][]int, len(b.m)),
		ends:  slices.Clone(b.ends),
	}
	for i := range b.m {
		c.m[i] = slices.Clone(b.m[i])
	}

	return c
}

// Build freezes the builder into a Diagram, emitting lines row by row.
func (b *Builder) Build(opts ...Option) (*Diagram, error) {
	var lines []LineSpec
	for i, row := range b.m {
		for j, c := range row {
			for k := 0; k < c; k++ {
				lines = append(lines, LineSpec{From: i, To: j})
			}
		}
	}

	return New(b.specs, lines, opts...)
}

// FromMatrix builds a Diagram from an oriented multiplicity matrix.
func FromMatrix(specs []VertexSpec, m [][]int, opts ...Option) (*Diagram, error) {
	if len(m) != len(specs) {
		return nil, fmt.Errorf("%w: %d matrix rows for %d vertices", ErrInvalidTopology, len(m), len(specs))
	}
	b := NewBuilder(specs)
	for i := range m {
		if len(m[i]) != len(specs) {
			return nil, fmt.Errorf("%w: row %d has %d columns for %d vertices", ErrInvalidTopology, i, len(m[i]), len(specs))
		}
		copy(b.m[i], m[i])
	}

	return b.Build(opts...)
}
