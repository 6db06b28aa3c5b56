package dfs

import (
	"iter"

	"github.com/katalvlaran/adg/diagram"
)

// extender carries the backtracking state of a linear-extension walk.
type extender struct {
	d       *diagram.Diagram
	pending []int
	used    []bool
	prefix  []int
}

// Extensions yields every topological order of d in lexicographic order.
// When first ≥ 0 only orders starting with vertex first are produced.
// A cyclic diagram yields nothing. Each yielded slice is freshly allocated.
func Extensions(d *diagram.Diagram, first int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		n := d.Order()
		e := &extender{
			d:       d,
			pending: make([]int, n),
			used:    make([]bool, n),
			prefix:  make([]int, 0, n),
		}
		for v := 0; v < n; v++ {
			e.pending[v] = d.InDegree(v)
		}
		if first >= 0 {
			if first >= n || e.pending[first] != 0 {
				return
			}
			e.push(first)
		}
		e.walk(yield)
	}
}

// LinearExtensions collects Extensions(d, first).
func LinearExtensions(d *diagram.Diagram, first int) [][]int {
	var out [][]int
	for ext := range Extensions(d, first) {
		out = append(out, ext)
	}

	return out
}

// walk extends the prefix in every admissible way; it returns false once the
// consumer stops.
func (e *extender) walk(yield func([]int) bool) bool {
	n := e.d.Order()
	if len(e.prefix) == n {
		return yield(append([]int(nil), e.prefix...))
	}
	for v := 0; v < n; v++ {
		if e.used[v] || e.pending[v] != 0 {
			continue
		}
		e.push(v)
		ok := e.walk(yield)
		e.pop(v)
		if !ok {
			return false
		}
	}

	return true
}

func (e *extender) push(v int) {
	e.used[v] = true
	e.prefix = append(e.prefix, v)
	for _, l := range e.d.OutLines(v) {
		e.pending[e.d.Line(l).To]--
	}
}

func (e *extender) pop(v int) {
	for _, l := range e.d.OutLines(v) {
		e.pending[e.d.Line(l).To]++
	}
	e.prefix = e.prefix[:len(e.prefix)-1]
	e.used[v] = false
}
