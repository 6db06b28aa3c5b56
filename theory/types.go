// SPDX-License-Identifier: MIT
package theory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration indicates an impossible or malformed Theory Configuration.
// It is always surfaced by New, never deferred to the enumeration stage.
var ErrConfiguration = errors.New("theory: invalid configuration")

// Formalism selects the diagrammatic rule set.
type Formalism string

const (
	// MBPT is time-independent many-body perturbation theory.
	MBPT Formalism = "MBPT"

	// BMBPT is the time-dependent Bogoliubov extension with a designated
	// observable vertex at τ = 0.
	BMBPT Formalism = "BMBPT"
)

// ParseFormalism maps a case-insensitive name onto a Formalism.
func ParseFormalism(name string) (Formalism, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case string(MBPT):
		return MBPT, nil
	case string(BMBPT):
		return BMBPT, nil
	}

	return "", fmt.Errorf("%w: unknown formalism %q", ErrConfiguration, name)
}

// TimeDependent reports whether diagrams of f carry time orderings.
func (f Formalism) TimeDependent() bool { return f == BMBPT }

// HasObservable reports whether diagrams of f designate vertex 0 as the
// observable vertex.
func (f Formalism) HasObservable() bool { return f == BMBPT }

// Option configures optional Config parameters before validation.
type Option func(*params)

// WithObservableRanks sets the body-ranks the observable vertex may take.
// Only meaningful for BMBPT; by default the observable uses the allowed ranks.
func WithObservableRanks(ranks ...int) Option {
	return func(p *params) { p.ObservableRanks = append([]int(nil), ranks...) }
}

// WithCanonicalOnly keeps only canonical diagrams: one-body (rank 1) vertices
// are then allowed on the observable vertex only.
func WithCanonicalOnly() Option {
	return func(p *params) { p.CanonicalOnly = true }
}

// WithWorkers bounds the number of concurrent per-diagram workers.
// Zero means one worker per available CPU.
func WithWorkers(n int) Option {
	return func(p *params) { p.Workers = n }
}

// params is the validated, exported-field view of a Config.
type params struct {
	Formalism       Formalism `validate:"required,oneof=MBPT BMBPT"`
	Order           int       `validate:"min=2"`
	Ranks           []int     `validate:"required,min=1,dive,min=1"`
	ObservableRanks []int     `validate:"omitempty,dive,min=1"`
	CanonicalOnly   bool
	Workers         int `validate:"min=0"`
}
