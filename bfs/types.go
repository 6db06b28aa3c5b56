package bfs

import "errors"

// ErrStartVertexNotFound indicates the start index is outside the diagram.
var ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

// Option configures a BFS walk.
type Option func(*Options)

// Options holds the walk parameters.
type Options struct {
	// Directed follows outgoing lines only.
	Directed bool

	// OnVisit, if non-nil, is called as each vertex is dequeued with its depth.
	// Returning an error aborts the walk.
	OnVisit func(v, depth int) error
}

// DefaultOptions returns an undirected walk without hooks.
func DefaultOptions() Options { return Options{} }

// WithDirected restricts the walk to outgoing lines.
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// WithOnVisit installs a visit hook.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// Result captures the outcome of a walk.
type Result struct {
	// Order lists vertices in visit order.
	Order []int

	// Depth maps a visited vertex to its distance in lines from the start.
	Depth map[int]int

	// Parent maps a visited vertex to the vertex it was discovered from.
	// The start vertex has no entry.
	Parent map[int]int
}

// Visited reports whether v was reached.
func (r *Result) Visited(v int) bool {
	_, ok := r.Depth[v]
	return ok
}
