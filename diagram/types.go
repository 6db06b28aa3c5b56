// SPDX-License-Identifier: MIT
package diagram

import "errors"

// Sentinel errors for diagram construction.
var (
	// ErrInvalidTopology indicates a malformed graph: a line endpoint outside the
	// vertex range, or a vertex whose incident-line count does not match its rank.
	ErrInvalidTopology = errors.New("diagram: invalid topology")

	// ErrBadPermutation indicates a relabeling that is not a bijection on vertices.
	ErrBadPermutation = errors.New("diagram: bad permutation")
)

// Kind distinguishes operator vertices.
type Kind uint8

const (
	// Interaction is a Hamiltonian vertex.
	Interaction Kind = iota

	// Observable is the operator vertex of the time-dependent formalism.
	Observable
)

// String returns "H" or "O".
func (k Kind) String() string {
	if k == Observable {
		return "O"
	}

	return "H"
}

// Role is the propagator type of a line.
type Role uint8

const (
	// Particle lines propagate upward along the time axis.
	Particle Role = iota

	// Hole lines propagate downward along the time axis.
	Hole

	// QuasiParticle lines are Bogoliubov propagators.
	QuasiParticle
)

// String returns "p", "h" or "qp".
func (r Role) String() string {
	switch r {
	case Particle:
		return "p"
	case Hole:
		return "h"
	default:
		return "qp"
	}
}

// Vertex is a read-only view of an arena vertex.
type Vertex struct {
	// Index is the stable position of the vertex in the arena (its time slot).
	Index int

	// Kind tells interaction and observable vertices apart.
	Kind Kind

	// Rank is the body-rank; the vertex hosts exactly 2·Rank line ends.
	Rank int
}

// Line is a read-only view of an arena line.
type Line struct {
	// Index is the stable position of the line in the arena.
	Index int

	// From is the outgoing vertex index.
	From int

	// To is the incoming vertex index.
	To int

	// Role is the propagator type.
	Role Role

	// External marks a line fixed by the observable rather than summed over.
	External bool
}

// VertexSpec describes a vertex to construct.
type VertexSpec struct {
	Kind Kind
	Rank int
}

// LineSpec describes a line to construct.
type LineSpec struct {
	From, To int
	External bool
}

// Option configures a Diagram before it is built.
type Option func(*Diagram)

// WithQuasiParticles tags every line as a quasi-particle propagator instead of
// deriving particle/hole roles from the time order.
func WithQuasiParticles() Option {
	return func(d *Diagram) { d.quasi = true }
}

// Diagram is an immutable directed multigraph arena.
//
// in[v] and out[v] list incident line indices in ascending order.
type Diagram struct {
	vertices []Vertex
	lines    []Line
	in, out  [][]int
	quasi    bool
}
