package dfs

import (
	"slices"

	"github.com/katalvlaran/adg/diagram"
)

// successors returns the distinct heads of lines leaving v, ascending.
func successors(d *diagram.Diagram, v int) []int {
	out := make([]int, 0, d.OutDegree(v))
	for _, l := range d.OutLines(v) {
		out = append(out, d.Line(l).To)
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// cycleFinder holds the recursion state of DetectCycle.
type cycleFinder struct {
	d     *diagram.Diagram
	state []int
	path  []int
	cycle []int
}

// DetectCycle returns one directed cycle as a closed path [v0 … v0], or nil
// when d is acyclic. A self-loop on v is reported as [v v].
func DetectCycle(d *diagram.Diagram) []int {
	f := &cycleFinder{d: d, state: make([]int, d.Order())}
	for v := 0; v < d.Order(); v++ {
		if f.state[v] == White && f.visit(v) {
			return f.cycle
		}
	}

	return nil
}

// visit explores v and reports whether a cycle was closed below it.
func (f *cycleFinder) visit(v int) bool {
	f.state[v] = Gray
	f.path = append(f.path, v)
	for _, u := range successors(f.d, v) {
		switch f.state[u] {
		case Gray:
			// 1) back edge: the cycle runs from u's position on the path to v
			idx := slices.Index(f.path, u)
			f.cycle = append(slices.Clone(f.path[idx:]), u)

			return true
		case White:
			if f.visit(u) {
				return true
			}
		}
	}
	f.path = f.path[:len(f.path)-1]
	f.state[v] = Black

	return false
}

// HasCycle reports whether d contains a directed cycle.
func HasCycle(d *diagram.Diagram) bool { return DetectCycle(d) != nil }
