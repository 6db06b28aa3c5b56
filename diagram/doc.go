// Package diagram is the graph model of the generator: a directed, vertex-typed,
// line-typed multigraph stored as an arena of vertices and lines addressed by
// stable integer indices.
//
// Vertices carry a Kind (interaction or observable) and a body-rank r; a vertex
// of rank r hosts exactly 2r line ends (self-loops count twice). Lines carry a
// Role and an External flag. With the default time roles, the vertex index is the
// position on the time axis: a line going up (From < To) is a particle, a line
// going down is a hole. WithQuasiParticles switches every line to the
// quasi-particle role used by the Bogoliubov formalism.
//
// Diagrams are immutable once built. Transformations (Clone, Permute, Reverse)
// return fresh arenas, so search states never alias each other.
//
// Errors:
//
//	ErrInvalidTopology  a line references a missing vertex, or a vertex's
//	                    incident-line count differs from 2·rank.
//	ErrBadPermutation   Permute received something that is not a permutation.
package diagram
