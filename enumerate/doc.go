// Package enumerate produces every saturated candidate diagram of a Theory
// Configuration as a lazy iterator.
//
// Vertex shapes are chosen first: a non-decreasing sequence of allowed ranks
// over the interaction vertices, preceded for BMBPT by the observable vertex
// with one of its allowed ranks. Lines are then distributed over the vertex
// pairs (i < j) in row-major order; each pair receives a forward count (i → j)
// and a backward count (j → i). The formalism's attach hook prunes pairs while
// searching, and a row is closed only when vertex i is saturated, so every
// yielded candidate is a well-formed diagram. Candidates are labelled: the
// same unlabelled diagram may appear several times and is merged later by
// canonicalization.
//
// Each call to the returned iterator starts a fresh traversal; breaking out of
// the range loop stops the search.
package enumerate
