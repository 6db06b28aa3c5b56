// SPDX-License-Identifier: MIT
package rules

import (
	"errors"

	"github.com/katalvlaran/adg/diagram"
)

// Rejection reasons returned by RuleSet.Check.
var (
	ErrSelfLoop           = errors.New("rules: self-loop")
	ErrDisconnected       = errors.New("rules: disconnected diagram")
	ErrUnmixedVertex      = errors.New("rules: vertex does not both create and annihilate")
	ErrCyclic             = errors.New("rules: cyclic line order")
	ErrObservablePosition = errors.New("rules: line enters the observable vertex")
	ErrNonCanonical       = errors.New("rules: one-body vertex outside the observable")
)

// Rule inspects a diagram and returns nil or a wrapped rejection reason.
type Rule func(d *diagram.Diagram) error

// AttachFunc decides whether the pair of vertices of the given kinds may carry
// forward lines (earlier → later) and backward lines (later → earlier).
type AttachFunc func(from, to diagram.Kind, forward, backward int) bool
