package theory

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance returns the shared, lazily-built struct validator.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Config is the immutable Theory Configuration of a single run.
type Config struct {
	p params
}

// New validates and freezes a Theory Configuration.
//
// Ranks are deduplicated and sorted ascending. For BMBPT the observable ranks
// default to the allowed ranks.
//
// Errors: ErrConfiguration (wrapped with the failing field) when the order is
// below 2 (a lone vertex cannot saturate without self-loops), when no rank or a
// non-positive rank is given, when the formalism is unknown, when observable
// ranks are requested for a formalism without an observable vertex, or when an
// allowed rank can never saturate at the requested order.
func New(f Formalism, order int, ranks []int, opts ...Option) (*Config, error) {
	p := params{
		Formalism: f,
		Order:     order,
		Ranks:     append([]int(nil), ranks...),
	}
	for _, opt := range opts {
		opt(&p)
	}
	if err := validatorInstance().Struct(p); err != nil {
		return nil, configError(err)
	}
	if len(p.ObservableRanks) > 0 && !f.HasObservable() {
		return nil, fmt.Errorf("%w: %s has no observable vertex", ErrConfiguration, f)
	}

	p.Ranks = normalizeRanks(p.Ranks)
	if f.HasObservable() {
		if len(p.ObservableRanks) == 0 {
			p.ObservableRanks = slices.Clone(p.Ranks)
		}
		p.ObservableRanks = normalizeRanks(p.ObservableRanks)
	}
	if err := checkSaturable(p); err != nil {
		return nil, err
	}

	return &Config{p: p}, nil
}

// checkSaturable requires every allowed rank to occur in at least one vertex
// shape where no vertex needs more line ends than the others offer together.
func checkSaturable(p params) error {
	n := p.Order
	heads := []int{0}
	if p.Formalism.HasObservable() {
		heads = p.ObservableRanks
		n--
	}
	usedHead := make(map[int]bool)
	used := make(map[int]bool)
	shape := make([]int, 0, n)
	var grow func(from int)
	grow = func(from int) {
		if len(shape) == n {
			for _, h := range heads {
				total, top := h, h
				for _, r := range shape {
					total += r
					top = max(top, r)
				}
				if 2*top > total {
					continue
				}
				usedHead[h] = true
				for _, r := range shape {
					used[r] = true
				}
			}
			return
		}
		for k := from; k < len(p.Ranks); k++ {
			shape = append(shape, p.Ranks[k])
			grow(k)
			shape = shape[:len(shape)-1]
		}
	}
	grow(0)

	for _, r := range p.Ranks {
		if !used[r] {
			return fmt.Errorf("%w: rank %d can never saturate at order %d", ErrConfiguration, r, p.Order)
		}
	}
	for _, r := range p.ObservableRanks {
		if !usedHead[r] {
			return fmt.Errorf("%w: observable rank %d can never saturate at order %d", ErrConfiguration, r, p.Order)
		}
	}

	return nil
}

// configError turns validator output into an ErrConfiguration-wrapped error.
func configError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case "Order":
			msgs = append(msgs, fmt.Sprintf("order %v: a single vertex can never saturate without self-loops", fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(msgs, "; "))
}

// normalizeRanks returns the sorted set of ranks.
func normalizeRanks(ranks []int) []int {
	out := slices.Clone(ranks)
	slices.Sort(out)

	return slices.Compact(out)
}

// Formalism returns the selected formalism.
func (c *Config) Formalism() Formalism { return c.p.Formalism }

// Order returns the perturbative order, i.e. the vertex count of every diagram.
func (c *Config) Order() int { return c.p.Order }

// Ranks returns a copy of the allowed interaction-vertex body-ranks, ascending.
func (c *Config) Ranks() []int { return slices.Clone(c.p.Ranks) }

// ObservableRanks returns a copy of the body-ranks allowed on the observable
// vertex, or nil when the formalism has none.
func (c *Config) ObservableRanks() []int { return slices.Clone(c.p.ObservableRanks) }

// MaxRank returns the largest rank any vertex may carry.
func (c *Config) MaxRank() int {
	m := c.p.Ranks[len(c.p.Ranks)-1]
	if n := len(c.p.ObservableRanks); n > 0 && c.p.ObservableRanks[n-1] > m {
		m = c.p.ObservableRanks[n-1]
	}

	return m
}

// CanonicalOnly reports whether non-canonical diagrams are discarded.
func (c *Config) CanonicalOnly() bool { return c.p.CanonicalOnly }

// Workers returns the requested worker bound (0 = GOMAXPROCS).
func (c *Config) Workers() int { return c.p.Workers }

// String renders the configuration compactly, e.g. "BMBPT order=3 ranks=[1 2] observable=[2]".
func (c *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s order=%d ranks=%v", c.p.Formalism, c.p.Order, c.p.Ranks)
	if c.p.Formalism.HasObservable() {
		fmt.Fprintf(&b, " observable=%v", c.p.ObservableRanks)
	}
	if c.p.CanonicalOnly {
		b.WriteString(" canonical-only")
	}

	return b.String()
}
