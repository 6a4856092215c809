// Package builder generates small labeled graphs with known shape:
// paths, cycles, and the two-cycles graph classic in path-query
// benchmarks.
//
// What
//
//   - Path(n, labels...): 0→1→…→n, edge i labeled labels[i % len].
//   - Cycle(n, label): 0→1→…→n-1→0, uniformly labeled.
//   - TwoCycles(n, m, la, lb): two cycles sharing node 0 — the first
//     through nodes 1..n labeled la, the second through nodes n+1..n+m
//     labeled lb.
//
// Why
//
//	Query-engine tests and benchmarks want graphs whose reachable-pair
//	sets are derivable by hand. These mirrors of the usual dataset
//	generators keep fixtures out of test bodies.
package builder
