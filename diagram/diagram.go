// File: diagram.go
// Role: construction and read-only traversal of Diagram arenas.
// Determinism:
//   - Incident line lists are ascending by line index.
//   - Neighbors() is ascending by vertex index.

package diagram

import (
	"fmt"
	"slices"
	"strings"
)

// New builds a Diagram from vertex specs and line endpoints.
//
// Implementation:
//   - Stage 1: Copy vertices, assigning indices in input order.
//   - Stage 2: Validate each line's endpoints and record incidence.
//   - Stage 3: Check every vertex hosts exactly 2·Rank line ends.
//
// Errors:
//   - ErrInvalidTopology wrapped with the offending line or vertex.
//
// Complexity: O(V + L).
func New(vertices []VertexSpec, lines []LineSpec, opts ...Option) (*Diagram, error) {
	d := &Diagram{
		vertices: make([]Vertex, len(vertices)),
		lines:    make([]Line, len(lines)),
		in:       make([][]int, len(vertices)),
		out:      make([][]int, len(vertices)),
	}
	for _, opt := range opts {
		opt(d)
	}

	// Stage 1: vertices
	for i, vs := range vertices {
		if vs.Rank < 0 {
			return nil, fmt.Errorf("%w: vertex %d has negative rank %d", ErrInvalidTopology, i, vs.Rank)
		}
		d.vertices[i] = Vertex{Index: i, Kind: vs.Kind, Rank: vs.Rank}
	}

	// Stage 2: lines
	n := len(vertices)
	for i, ls := range lines {
		if ls.From < 0 || ls.From >= n || ls.To < 0 || ls.To >= n {
			return nil, fmt.Errorf("%w: line %d (%d->%d) references a vertex outside [0,%d)",
				ErrInvalidTopology, i, ls.From, ls.To, n)
		}
		d.lines[i] = Line{Index: i, From: ls.From, To: ls.To, Role: d.roleFor(ls.From, ls.To), External: ls.External}
		d.out[ls.From] = append(d.out[ls.From], i)
		d.in[ls.To] = append(d.in[ls.To], i)
	}

	// Stage 3: saturation
	for v := range d.vertices {
		if got, want := len(d.in[v])+len(d.out[v]), 2*d.vertices[v].Rank; got != want {
			return nil, fmt.Errorf("%w: vertex %d hosts %d line ends, rank %d requires %d",
				ErrInvalidTopology, v, got, d.vertices[v].Rank, want)
		}
	}

	return d, nil
}

// roleFor derives the role of a line from its endpoints.
func (d *Diagram) roleFor(from, to int) Role {
	if d.quasi {
		return QuasiParticle
	}
	if from < to {
		return Particle
	}

	return Hole
}

// Order returns the vertex count.
func (d *Diagram) Order() int { return len(d.vertices) }

// NumLines returns the line count.
func (d *Diagram) NumLines() int { return len(d.lines) }

// QuasiParticles reports whether lines carry the quasi-particle role.
func (d *Diagram) QuasiParticles() bool { return d.quasi }

// Vertex returns the vertex at index v. It panics if v is out of range.
func (d *Diagram) Vertex(v int) Vertex { return d.vertices[v] }

// Line returns the line at index l. It panics if l is out of range.
func (d *Diagram) Line(l int) Line { return d.lines[l] }

// Vertices returns a copy of all vertices in index order.
func (d *Diagram) Vertices() []Vertex { return slices.Clone(d.vertices) }

// Lines returns a copy of all lines in index order.
func (d *Diagram) Lines() []Line { return slices.Clone(d.lines) }

// InLines returns the indices of lines ending at v, ascending.
func (d *Diagram) InLines(v int) []int { return slices.Clone(d.in[v]) }

// OutLines returns the indices of lines leaving v, ascending.
func (d *Diagram) OutLines(v int) []int { return slices.Clone(d.out[v]) }

// InDegree returns the number of lines ending at v.
func (d *Diagram) InDegree(v int) int { return len(d.in[v]) }

// OutDegree returns the number of lines leaving v.
func (d *Diagram) OutDegree(v int) int { return len(d.out[v]) }

// Degree returns the number of line ends hosted by v.
func (d *Diagram) Degree(v int) int { return len(d.in[v]) + len(d.out[v]) }

// Observable returns the index of the first observable vertex, or -1.
func (d *Diagram) Observable() int {
	for _, v := range d.vertices {
		if v.Kind == Observable {
			return v.Index
		}
	}

	return -1
}

// Neighbors returns the distinct vertices joined to v by a line in either
// direction, ascending. A self-loop makes v its own neighbor.
func (d *Diagram) Neighbors(v int) []int {
	seen := make(map[int]struct{}, len(d.in[v])+len(d.out[v]))
	for _, l := range d.out[v] {
		seen[d.lines[l].To] = struct{}{}
	}
	for _, l := range d.in[v] {
		seen[d.lines[l].From] = struct{}{}
	}
	nbrs := make([]int, 0, len(seen))
	for u := range seen {
		nbrs = append(nbrs, u)
	}
	slices.Sort(nbrs)

	return nbrs
}

// Multiplicity returns the number of lines from → to.
func (d *Diagram) Multiplicity(from, to int) int {
	count := 0
	for _, l := range d.out[from] {
		if d.lines[l].To == to {
			count++
		}
	}

	return count
}

// Matrix returns the oriented adjacency matrix: m[i][j] lines from i to j.
func (d *Diagram) Matrix() [][]int {
	n := len(d.vertices)
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	for _, l := range d.lines {
		m[l.From][l.To]++
	}

	return m
}

// Specs returns the vertex specs the diagram was built from.
func (d *Diagram) Specs() []VertexSpec {
	specs := make([]VertexSpec, len(d.vertices))
	for i, v := range d.vertices {
		specs[i] = VertexSpec{Kind: v.Kind, Rank: v.Rank}
	}

	return specs
}

// String renders vertices and lines, e.g. "[H2 H2] 0>1 0>1 1>0 1>0".
func (d *Diagram) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range d.vertices {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s%d", v.Kind, v.Rank)
	}
	b.WriteByte(']')
	for _, l := range d.lines {
		fmt.Fprintf(&b, " %d>%d", l.From, l.To)
	}

	return b.String()
}
