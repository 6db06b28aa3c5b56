package dfs

import (
	"fmt"

	"github.com/katalvlaran/adg/diagram"
)

// TopologicalSort returns the lexicographically smallest ordering of the
// vertices of d such that every line runs from an earlier to a later vertex.
//
// Implementation:
//   - Stage 1: count incoming lines per vertex (self-loops included).
//   - Stage 2: repeatedly emit the smallest vertex with no pending predecessor.
//
// Errors: ErrCycleDetected, wrapped with one offending cycle.
func TopologicalSort(d *diagram.Diagram) ([]int, error) {
	n := d.Order()
	pending := make([]int, n)
	for v := 0; v < n; v++ {
		pending[v] = d.InDegree(v)
	}
	done := make([]bool, n)
	order := make([]int, 0, n)
	for len(order) < n {
		next := -1
		for v := 0; v < n; v++ {
			if !done[v] && pending[v] == 0 {
				next = v
				break
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("%w: %v", ErrCycleDetected, DetectCycle(d))
		}
		done[next] = true
		order = append(order, next)
		for _, l := range d.OutLines(next) {
			pending[d.Line(l).To]--
		}
	}

	return order, nil
}
