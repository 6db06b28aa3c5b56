package bfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/adg/diagram"
)

// walker encapsulates mutable BFS state.
type walker struct {
	d     *diagram.Diagram
	opts  Options
	queue []int
	res   *Result
}

// BFS walks d from start.
// Returns ErrStartVertexNotFound for an out-of-range start, or the first hook error.
func BFS(d *diagram.Diagram, start int, opts ...Option) (*Result, error) {
	if start < 0 || start >= d.Order() {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := d.Order()
	w := &walker{
		d:     d,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, start)

	return w.res, w.loop()
}

// loop drains the queue.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.res.Depth[v]
		w.res.Order = append(w.res.Order, v)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(v, depth); err != nil {
				return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
			}
		}
		for _, u := range w.next(v) {
			if w.res.Visited(u) {
				continue
			}
			w.res.Depth[u] = depth + 1
			w.res.Parent[u] = v
			w.queue = append(w.queue, u)
		}
	}

	return nil
}

// next lists the vertices adjacent to v under the walk policy, ascending.
func (w *walker) next(v int) []int {
	if !w.opts.Directed {
		return w.d.Neighbors(v)
	}
	seen := make(map[int]bool)
	var out []int
	for _, l := range w.d.OutLines(v) {
		if to := w.d.Line(l).To; !seen[to] {
			seen[to] = true
			out = append(out, to)
		}
	}
	// OutLines are ascending by line index, not by target.
	slices.Sort(out)

	return out
}

// Connected reports whether d is weakly connected. The empty diagram is not.
func Connected(d *diagram.Diagram) bool {
	if d.Order() == 0 {
		return false
	}
	res, _ := BFS(d, 0)

	return len(res.Order) == d.Order()
}

// Components returns the weakly connected components, each ascending, ordered
// by their smallest vertex.
func Components(d *diagram.Diagram) [][]int {
	seen := make([]bool, d.Order())
	var comps [][]int
	for v := 0; v < d.Order(); v++ {
		if seen[v] {
			continue
		}
		res, _ := BFS(d, v)
		comp := append([]int(nil), res.Order...)
		slices.Sort(comp)
		for _, u := range comp {
			seen[u] = true
		}
		comps = append(comps, comp)
	}

	return comps
}

// Reachable returns the vertices reachable from v along line directions,
// including v itself, ascending.
func Reachable(d *diagram.Diagram, v int) []int {
	res, err := BFS(d, v, WithDirected())
	if err != nil {
		return nil
	}
	out := append([]int(nil), res.Order...)
	slices.Sort(out)

	return out
}
