// Package dfs provides depth-first and ordering algorithms over the directed
// structure of a diagram.Diagram: cycle detection, topological sort and the
// enumeration of every linear extension (time ordering) of the line order.
//
// What
//
//   - DetectCycle / HasCycle find a directed cycle with White/Gray/Black colouring.
//   - TopologicalSort returns the lexicographically smallest topological order.
//   - LinearExtensions lists every topological order, optionally pinning the
//     first vertex (the observable sits at τ = 0).
//
// Determinism
//
//	Successors are visited in ascending vertex order, so every result is
//	reproducible across runs.
//
// Complexity (V = vertices, L = lines)
//
//   - DetectCycle, TopologicalSort: O(V² + L)
//   - LinearExtensions: O(V · e(P)) where e(P) is the number of extensions.
package dfs
