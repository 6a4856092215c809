// Package rpq answers regular path queries: which node pairs (u, v) of a
// labeled graph are joined by a path whose edge-label word matches a
// regular expression.
//
// Two engines, same answer:
//
//   - Tensor: intersect the graph automaton with the regex DFA by
//     Kronecker product and read pairs off the transitive closure of the
//     product. Simple, and pays for the full (N·M)² closure.
//   - MSBFS: propagate one BFS front per start node simultaneously
//     through block-diagonal per-symbol matrices, visiting only states
//     actually reached. Preferable when the start set is small relative
//     to the graph.
//
// Both are pure functions of (pattern, graph, starts, finals): they share
// no state, mutate nothing, and may run concurrently on the same graph.
// Empty start/final slices select every node, matching the graph
// automaton convention of fa.FromGraph.
//
// Complexity (G graph nodes, D regex DFA states, K = |starts|)
//
//   - Tensor: O((G·D)³/64) for the closure.
//   - MSBFS:  O(paths · (D+G)²/64), bounded by O(K·D·(D+G)²/64) per
//     iteration and at most K·D·G front cells overall.
package rpq
