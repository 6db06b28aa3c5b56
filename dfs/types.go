// SPDX-License-Identifier: MIT
package dfs

import "errors"

// ErrCycleDetected indicates that the diagram contains a directed cycle, so no
// topological order exists.
var ErrCycleDetected = errors.New("dfs: cycle detected")

// Vertex colours of a depth-first traversal.
const (
	White = iota // not yet discovered
	Gray         // on the current path
	Black        // fully explored
)
