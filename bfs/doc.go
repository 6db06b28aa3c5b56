// Package bfs provides breadth-first search over a diagram.Diagram, returning
// line-count distances, parent links and visit order.
//
// What
//
//   - BFS explores vertices in non-decreasing distance from a start vertex.
//   - By default lines are followed in both directions (weak connectivity);
//     WithDirected restricts the walk to outgoing lines (reachability).
//   - Connected and Components answer the validity filter's connectivity rule.
//
// Determinism
//
//	Diagram.Neighbors returns vertices in ascending index order, and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = vertices, L = lines)
//
//   - Time:   O(V + L)
//   - Memory: O(V)
package bfs
