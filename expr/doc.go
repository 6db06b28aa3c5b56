// Package expr derives the closed-form algebraic expression of a canonical
// diagram.
//
// MBPT diagrams yield one term: a matrix element <out|H|in> per vertex, one
// energy denominator per cut between consecutive vertices (hole energies minus
// particle energies of the crossing lines), the sign (-1)^(holes+loops) and
// the inverse symmetry factor.
//
// BMBPT diagrams yield one time-dependent term per time ordering compatible
// with the line directions, the observable vertex sitting first at τ = 0.
// Each term integrates to the product over cuts of the inverse quasi-particle
// energy crossing the cut. Integrated terms sharing the same denominators are
// combined; when the time structure is a tree rooted at the observable the
// whole sum collapses into a single product over up-sets.
package expr
