// SPDX-License-Identifier: MIT
package classify

import (
	"github.com/katalvlaran/adg/canon"
	"github.com/katalvlaran/adg/dfs"
	"github.com/katalvlaran/adg/diagram"
)

// Family groups diagrams by their one-body vertices.
type Family uint8

const (
	// Canonical diagrams have no one-body vertex.
	Canonical Family = iota

	// ObservableCanonical diagrams carry a one-body vertex on the observable only.
	ObservableCanonical

	// NonCanonical diagrams carry a one-body interaction vertex.
	NonCanonical
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Canonical:
		return "canonical"
	case ObservableCanonical:
		return "observable-canonical"
	default:
		return "non-canonical"
	}
}

// Annotation collects the classifier output for one diagram.
type Annotation struct {
	Excitation   int
	Family       Family
	MaxRank      int
	ConjugateKey string
	TimeTree     bool
}

// Annotate computes every annotation of the representative d.
func Annotate(d *diagram.Diagram) Annotation {
	return Annotation{
		Excitation:   Excitation(d),
		Family:       FamilyOf(d),
		MaxRank:      MaxRank(d),
		ConjugateKey: ConjugateKey(d),
		TimeTree:     TimeTree(d),
	}
}

// Crossing returns the number of lines joining positions below k to
// positions at or above k.
func Crossing(d *diagram.Diagram, k int) int {
	c := 0
	for _, l := range d.Lines() {
		if min(l.From, l.To) < k && k <= max(l.From, l.To) {
			c++
		}
	}

	return c
}

// Excitation returns the largest number of line pairs crossing any cut between
// consecutive positions of the time layout of d.
func Excitation(d *diagram.Diagram) int {
	t := TimeLayout(d)
	best := 0
	for k := 1; k < t.Order(); k++ {
		best = max(best, Crossing(t, k)/2)
	}

	return best
}

// TimeLayout returns d relabelled onto its first time ordering, observable at
// position 0. Without quasi-particle lines the vertex order already is the
// time order and d itself is returned, as it is for a cyclic d.
func TimeLayout(d *diagram.Diagram) *diagram.Diagram {
	if !d.QuasiParticles() {
		return d
	}
	for o := range dfs.Extensions(d, d.Observable()) {
		t, err := d.Permute(o)
		if err != nil {
			return d
		}

		return t
	}

	return d
}

// ConjugateKey returns the canonical key of d with every line reversed.
// ConjugateKey of that conjugate is the key of d again.
func ConjugateKey(d *diagram.Diagram) string {
	return canon.Key(d.Reverse())
}

// FamilyOf classifies d by where its one-body vertices sit.
func FamilyOf(d *diagram.Diagram) Family {
	f := Canonical
	for _, v := range d.Vertices() {
		if v.Rank != 1 {
			continue
		}
		if v.Kind != diagram.Observable {
			return NonCanonical
		}
		f = ObservableCanonical
	}

	return f
}

// MaxRank returns the largest vertex rank of d.
func MaxRank(d *diagram.Diagram) int {
	m := 0
	for _, v := range d.Vertices() {
		m = max(m, v.Rank)
	}

	return m
}

// TimeTree reports whether the transitive reduction of the line order of d is
// a tree rooted at the observable: every other vertex has exactly one
// immediate predecessor. Diagrams without an observable never qualify.
func TimeTree(d *diagram.Diagram) bool {
	obs := d.Observable()
	if obs < 0 {
		return false
	}
	covers, err := dfs.Covers(d)
	if err != nil {
		return false
	}
	parents := make([]int, d.Order())
	for _, succ := range covers {
		for _, v := range succ {
			parents[v]++
		}
	}
	for v, p := range parents {
		if (v == obs && p != 0) || (v != obs && p != 1) {
			return false
		}
	}

	return true
}

// Pair matches every key with the index of its conjugate among keys, or -1
// when the conjugate is absent. Self-conjugate diagrams pair with themselves.
func Pair(keys, conjugates []string) []int {
	index := make(map[string]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}
	partner := make([]int, len(keys))
	for i, c := range conjugates {
		if j, ok := index[c]; ok {
			partner[i] = j
		} else {
			partner[i] = -1
		}
	}

	return partner
}
