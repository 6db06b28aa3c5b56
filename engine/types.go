// SPDX-License-Identifier: MIT
package engine

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/adg/classify"
	"github.com/katalvlaran/adg/diagram"
	"github.com/katalvlaran/adg/expr"
	"github.com/katalvlaran/adg/theory"
)

// Option configures Generate.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	workers int
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithWorkers overrides the worker bound of the configuration.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Result is the ordered, deduplicated output of one run.
type Result struct {
	// Config is the configuration the run was derived from.
	Config *theory.Config

	// Diagrams are the valid diagrams, ordered by (family, max rank, key).
	Diagrams []*Diagram

	// Candidates is the number of labelled candidates enumerated.
	Candidates int

	// Rejected is the number of distinct diagrams the validity filter discarded.
	Rejected int

	// Reasons tallies rejected diagrams by rule.
	Reasons map[string]int
}

// Diagram is a canonical representative annotated with its derived data.
type Diagram struct {
	graph         *diagram.Diagram
	key           string
	automorphisms int
	symmetry      int
	merged        int
	ann           classify.Annotation
	conjugate     int
	expression    *expr.Expression
}

// Graph returns the canonical representative.
func (d *Diagram) Graph() *diagram.Diagram { return d.graph }

// Key returns the canonical key.
func (d *Diagram) Key() string { return d.key }

// Automorphisms returns the order of the vertex automorphism group.
func (d *Diagram) Automorphisms() int { return d.automorphisms }

// SymmetryFactor returns the symmetry factor dividing the expression.
func (d *Diagram) SymmetryFactor() int { return d.symmetry }

// Merged returns how many labelled candidates collapsed onto this diagram.
func (d *Diagram) Merged() int { return d.merged }

// Excitation returns the maximal excitation level over the cuts of the time layout.
func (d *Diagram) Excitation() int { return d.ann.Excitation }

// Conjugate returns the index of the conjugate diagram in Result.Diagrams.
// ok is false when the conjugate is not part of the result.
func (d *Diagram) Conjugate() (int, bool) { return d.conjugate, d.conjugate >= 0 }

// ConjugateKey returns the canonical key of the conjugate diagram.
func (d *Diagram) ConjugateKey() string { return d.ann.ConjugateKey }

// Family returns the one-body family of the diagram.
func (d *Diagram) Family() classify.Family { return d.ann.Family }

// MaxRank returns the largest vertex rank.
func (d *Diagram) MaxRank() int { return d.ann.MaxRank }

// TimeTree reports whether the time structure is a tree rooted at the observable.
func (d *Diagram) TimeTree() bool { return d.ann.TimeTree }

// Expression returns the synthesized expression.
func (d *Diagram) Expression() *expr.Expression { return d.expression }
