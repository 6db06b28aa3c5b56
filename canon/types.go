// SPDX-License-Identifier: MIT
package canon

import "github.com/katalvlaran/adg/diagram"

// Form is the canonical form of a diagram.
type Form struct {
	// Key encodes vertex colours and the canonical multiplicity matrix.
	Key string

	// Perm maps canonical positions to input vertices: position p holds
	// vertex Perm[p]. It is the lexicographically smallest such ordering.
	Perm []int

	// Automorphisms is the number of vertex orderings realising Key.
	Automorphisms int
}

// Entry is one equivalence class in a Table.
type Entry struct {
	// Key is the canonical key shared by the class.
	Key string

	// Diagram is the representative stored by the first insertion.
	Diagram *diagram.Diagram

	// Count is the number of labelled candidates merged into the class.
	Count int
}
