// SPDX-License-Identifier: MIT
package expr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInternalConsistency indicates a diagram that passed validation but admits
// no expression: no time ordering, or a cut crossed by no line.
var ErrInternalConsistency = errors.New("expr: internal consistency")

// Energy symbols.
const (
	SingleParticle = "ε" // MBPT single-particle energies
	QuasiParticle  = "E" // BMBPT quasi-particle energies
)

// Denominator is Σ Energy(Plus) − Σ Energy(Minus).
type Denominator struct {
	Energy string
	Plus   []string
	Minus  []string
}

// String renders e.g. "(ε_a+ε_b-ε_p-ε_q)".
func (d Denominator) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, l := range d.Plus {
		if i > 0 {
			b.WriteByte('+')
		}
		fmt.Fprintf(&b, "%s_%s", d.Energy, l)
	}
	for _, l := range d.Minus {
		fmt.Fprintf(&b, "-%s_%s", d.Energy, l)
	}
	b.WriteByte(')')

	return b.String()
}

// Term is one summand of an Expression:
//
//	Sign · Coefficient / Symmetry · Π MatrixElements / Π Denominators
//
// Time-dependent terms carry their Ordering and TimeFactors (step functions
// and propagator exponentials) instead of Denominators.
type Term struct {
	Sign           int
	Coefficient    int
	Symmetry       int
	MatrixElements []string
	Denominators   []Denominator
	Ordering       []int
	TimeFactors    []string
}

// String renders the term on a single line.
func (t Term) String() string {
	var b strings.Builder
	if t.Sign < 0 {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	fmt.Fprintf(&b, "%d/%d", t.Coefficient, t.Symmetry)
	for _, m := range t.MatrixElements {
		b.WriteByte(' ')
		b.WriteString(m)
	}
	for _, d := range t.Denominators {
		b.WriteString(" / ")
		b.WriteString(d.String())
	}
	if t.Ordering != nil {
		fmt.Fprintf(&b, " @%v", t.Ordering)
	}
	for _, f := range t.TimeFactors {
		b.WriteByte(' ')
		b.WriteString(f)
	}

	return b.String()
}

// Expression is the synthesized algebra of one diagram.
type Expression struct {
	terms      []Term
	integrated []Term
}

// Terms returns the terms: one for MBPT, one per time ordering for BMBPT.
func (e *Expression) Terms() []Term { return append([]Term(nil), e.terms...) }

// Integrated returns the time-integrated terms, or nil for MBPT.
func (e *Expression) Integrated() []Term { return append([]Term(nil), e.integrated...) }

// TimeDependent reports whether the expression carries time orderings.
func (e *Expression) TimeDependent() bool { return e.integrated != nil }

// String renders every term, then the integrated terms, one per line.
func (e *Expression) String() string {
	var b strings.Builder
	for _, t := range e.terms {
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	if e.integrated != nil {
		b.WriteString("= ")
		for i, t := range e.integrated {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(t.String())
			b.WriteByte('\n')
		}
	}

	return b.String()
}
