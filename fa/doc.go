// Package fa models finite automata as sets of Boolean adjacency
// matrices, the uniform representation shared by every lvlpath query
// engine.
//
// What
//
//   - NFA: a plain value model (state count, start/final sets, labeled
//     transition list) produced by the regex compiler or assembled by hand.
//   - Adjacency: the matrix form — one matrix.Bool per Symbol, a fixed
//     state enumeration, and the original-ID table for automata derived
//     from graphs.
//   - Operations: Accepts (word membership by configuration DFS), IsEmpty,
//     TransitiveClosure (reflexive), and Intersect (Kronecker product over
//     shared symbols).
//
// Why
//
//	A path u→v labeled by a word of a regular language L exists iff the
//	product automaton graph⊗regex connects (u, start) to (v, final). Once
//	both automata are per-symbol Boolean matrices, intersection is a
//	Kronecker product and reachability is a transitive closure — the whole
//	tensor RPQ engine is three matrix calls.
//
// Conventions
//
//	A Symbol absent from the transition map is the all-false matrix.
//	Intersecting automata with disjoint alphabets therefore yields an
//	automaton with no transitions at all. State pair (s1, s2) of an
//	intersection maps to index s1·N2 + s2.
package fa
