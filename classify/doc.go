// Package classify annotates canonical diagrams with derived properties:
// excitation level, conjugate partner, family, maximal body-rank and whether
// the time structure of a time-dependent diagram is a tree.
package classify
