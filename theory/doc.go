// Package theory holds the immutable per-run Theory Configuration consumed by
// every stage of the diagram generator.
//
// A Config selects the formalism (time-independent MBPT or time-dependent
// BMBPT), the perturbative order (number of vertices) and the set of allowed
// operator body-ranks. A vertex of body-rank r hosts exactly 2r line ends.
//
// Configs are built once with New and never mutated afterwards: every getter
// returns a copy of the underlying slices.
//
// Errors:
//
//   - ErrConfiguration  the requested combination can never produce a diagram
//     or is malformed (order < 2, empty or non-positive ranks, unknown formalism,
//     observable ranks requested for a formalism without an observable vertex).
package theory
