// Package canon computes canonical forms of diagrams and deduplicates
// isomorphic candidates.
//
// A canonical form is found in two phases. Colour refinement first splits the
// vertices into cells that any isomorphism must preserve: the initial colour is
// (kind, rank, in-degree, out-degree) and each round refines it by the multiset
// of (neighbour colour, lines out, lines in). An exhaustive search then orders
// the members of every cell, keeping the lexicographically smallest encoding of
// the multiplicity matrix. The orderings attaining that minimum are exactly the
// automorphisms of the diagram, so the search also yields the automorphism
// group order.
//
// Two diagrams share a Key if and only if they are isomorphic with vertex kind,
// rank and line direction respected.
package canon
