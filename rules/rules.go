package rules

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/adg/bfs"
	"github.com/katalvlaran/adg/dfs"
	"github.com/katalvlaran/adg/diagram"
	"github.com/katalvlaran/adg/theory"
)

// RuleSet is the validity filter of one Theory Configuration.
type RuleSet struct {
	formalism theory.Formalism
	rules     []Rule
	attach    AttachFunc
}

// For assembles the rule set matching cfg.
func For(cfg *theory.Config) *RuleSet {
	rs := &RuleSet{
		formalism: cfg.Formalism(),
		rules:     []Rule{NoSelfLoops, Connected},
		attach:    attachAny,
	}
	switch cfg.Formalism() {
	case theory.MBPT:
		rs.rules = append(rs.rules, Mixed)
	case theory.BMBPT:
		rs.rules = append(rs.rules, Acyclic, ObservableFirst)
		rs.attach = attachOneWay
	}
	if cfg.CanonicalOnly() {
		rs.rules = append(rs.rules, CanonicalOnly)
	}

	return rs
}

// Formalism returns the formalism the set was built for.
func (rs *RuleSet) Formalism() theory.Formalism { return rs.formalism }

// Check applies every rule in order and returns the first rejection.
func (rs *RuleSet) Check(d *diagram.Diagram) error {
	for _, r := range rs.rules {
		if err := r(d); err != nil {
			return err
		}
	}

	return nil
}

// Keep reports whether d passes every rule.
func (rs *RuleSet) Keep(d *diagram.Diagram) bool { return rs.Check(d) == nil }

// Attach reports whether a vertex pair may carry the given line counts.
func (rs *RuleSet) Attach(from, to diagram.Kind, forward, backward int) bool {
	return rs.attach(from, to, forward, backward)
}

// Reason maps a Check error onto its sentinel, for tallying rejections.
func Reason(err error) error {
	for _, s := range []error{ErrSelfLoop, ErrDisconnected, ErrUnmixedVertex, ErrCyclic, ErrObservablePosition, ErrNonCanonical} {
		if errors.Is(err, s) {
			return s
		}
	}

	return err
}

func attachAny(diagram.Kind, diagram.Kind, int, int) bool { return true }

// attachOneWay forbids two-way pairs and any line into the observable.
func attachOneWay(from, to diagram.Kind, forward, backward int) bool {
	if forward > 0 && backward > 0 {
		return false
	}
	if to == diagram.Observable && forward > 0 {
		return false
	}

	return !(from == diagram.Observable && backward > 0)
}

// NoSelfLoops rejects lines that start and end on the same vertex.
func NoSelfLoops(d *diagram.Diagram) error {
	for _, l := range d.Lines() {
		if l.From == l.To {
			return fmt.Errorf("%w: line %d on vertex %d", ErrSelfLoop, l.Index, l.From)
		}
	}

	return nil
}

// Connected rejects diagrams that fall apart into several pieces.
func Connected(d *diagram.Diagram) error {
	if !bfs.Connected(d) {
		return fmt.Errorf("%w: components %v", ErrDisconnected, bfs.Components(d))
	}

	return nil
}

// Mixed rejects vertices lacking an incoming or an outgoing line.
func Mixed(d *diagram.Diagram) error {
	for v := 0; v < d.Order(); v++ {
		if d.InDegree(v) == 0 || d.OutDegree(v) == 0 {
			return fmt.Errorf("%w: vertex %d (in %d, out %d)", ErrUnmixedVertex, v, d.InDegree(v), d.OutDegree(v))
		}
	}

	return nil
}

// Acyclic rejects diagrams whose lines admit no time ordering.
func Acyclic(d *diagram.Diagram) error {
	if c := dfs.DetectCycle(d); c != nil {
		return fmt.Errorf("%w: %v", ErrCyclic, c)
	}

	return nil
}

// ObservableFirst rejects lines entering the observable vertex.
func ObservableFirst(d *diagram.Diagram) error {
	if o := d.Observable(); o >= 0 && d.InDegree(o) > 0 {
		return fmt.Errorf("%w: vertex %d has %d incoming lines", ErrObservablePosition, o, d.InDegree(o))
	}

	return nil
}

// CanonicalOnly rejects one-body interaction vertices.
func CanonicalOnly(d *diagram.Diagram) error {
	for _, v := range d.Vertices() {
		if v.Rank == 1 && v.Kind != diagram.Observable {
			return fmt.Errorf("%w: vertex %d", ErrNonCanonical, v.Index)
		}
	}

	return nil
}
