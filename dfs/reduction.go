package dfs

import (
	"fmt"

	"github.com/katalvlaran/adg/diagram"
)

// Covers returns the transitive reduction of the line order of d: covers[u]
// lists, ascending, the vertices v with a line u → v and no longer path from u
// to v.
//
// Errors: ErrCycleDetected when d has no topological order.
func Covers(d *diagram.Diagram) ([][]int, error) {
	order, err := TopologicalSort(d)
	if err != nil {
		return nil, fmt.Errorf("dfs: Covers: %w", err)
	}
	n := d.Order()
	// 1) reach[u][v]: v reachable from u by a non-empty path, filled in
	//    reverse topological order
	reach := make([][]bool, n)
	for i := n - 1; i >= 0; i-- {
		u := order[i]
		reach[u] = make([]bool, n)
		for _, v := range successors(d, u) {
			reach[u][v] = true
			for w := 0; w < n; w++ {
				if reach[v][w] {
					reach[u][w] = true
				}
			}
		}
	}
	// 2) keep u → v unless another successor of u already reaches v
	covers := make([][]int, n)
	for u := 0; u < n; u++ {
		succ := successors(d, u)
		for _, v := range succ {
			direct := true
			for _, w := range succ {
				if w != v && reach[w][v] {
					direct = false
					break
				}
			}
			if direct {
				covers[u] = append(covers[u], v)
			}
		}
	}

	return covers, nil
}
