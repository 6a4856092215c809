// Package core defines the central Graph, Edge, and Symbol types shared by
// every query engine in lvlpath, and provides thread-safe primitives for
// building and inspecting labeled directed multigraphs.
//
// What
//
//   - Symbol: a string-valued edge label, compared by value.
//   - Graph: a directed multigraph over integer node IDs; every edge
//     carries exactly one Symbol. Parallel edges with distinct labels are
//     allowed; duplicate (from, to, label) triples collapse into one edge.
//   - Pair: a (From, To) node pair, the unit of every engine's result set.
//
// Why
//
//	Regular and context-free path queries ask which node pairs are joined
//	by a path whose label word belongs to a formal language. The Graph here
//	is the common input of all of them: built once, then read-only for the
//	duration of a query.
//
// Concurrency
//
//	All mutating and reading APIs take an internal sync.RWMutex, so a graph
//	may be assembled from several goroutines. Query engines never mutate a
//	Graph; sharing one immutable graph across concurrent queries is safe.
//
// Determinism
//
//	Nodes() returns IDs in ascending order and Edges() in insertion order,
//	so matrix enumerations and test goldens are reproducible.
package core
