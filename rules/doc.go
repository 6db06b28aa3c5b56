// Package rules is the validity filter: a formalism-specific strategy that
// decides whether a saturated candidate diagram is physical.
//
// Every rule set rejects self-loops and disconnected diagrams. MBPT further
// requires each vertex to both create and annihilate; BMBPT requires the line
// order to be acyclic with nothing entering the observable vertex. With the
// canonical-only flag one-body vertices survive on the observable only.
//
// Besides the post-construction Check, a RuleSet exposes Attach, a cheap
// adjacency hook the enumerator consults while filling the multiplicity
// matrix so that doomed branches are never built.
package rules
