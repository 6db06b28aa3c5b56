// Package engine runs the whole derivation for one Theory Configuration:
// enumeration, canonicalization and deduplication, validity filtering,
// classification and expression synthesis.
//
// Enumeration is sequential; candidates fan out to a bounded worker group that
// canonicalizes them into a shared canon.Table and filters each new class.
// Classification and synthesis then run data-parallel over the surviving
// representatives. The result is ordered by family, maximal rank and key, so
// identical configurations always produce identical output.
package engine
