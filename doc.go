// Package lvlpath evaluates path queries over labeled directed graphs.
//
// 🚀 What is lvlpath?
//
//	A thread-friendly, pure-Go library answering one question five ways:
//	which node pairs (u, v) are joined by a path whose edge-label word
//	belongs to a formal language?
//
//	  • Regular path queries  — the language is a regular expression
//	  • Context-free path queries — the language is a CFG or an RSM
//
// ✨ Why choose lvlpath?
//
//   - One data model         — a labeled multigraph in, a pair set out
//   - Interchangeable engines — tensor vs. MSBFS, Hellings vs. matrix vs. GLL,
//     byte-for-byte equal answers
//   - Boolean linear algebra  — bitset matrices make the hot loops word-parallel
//   - Pure Go                 — no cgo, no hidden dependencies
//
// Under the hood, everything is organized per concern:
//
//	core/    — Graph, Edge, Symbol, Pair: the shared data model
//	matrix/  — Boolean matrix algebra (Or, Mul, Kron, transitive closure)
//	fa/      — automata as per-symbol adjacency matrices
//	regex/   — regular expressions → DFA
//	grammar/ — CFGs, nullability, weak normal form
//	rsm/     — recursive state machines
//	rpq/     — regular path query engines (tensor, multi-source BFS)
//	cfpq/    — context-free path query engines (Hellings, matrix, GLL)
//	builder/ — labeled path/cycle/two-cycles generators for tests and demos
//
// Quick ASCII example:
//
//	    0 ──a──▶ 1
//	    ▲        │a
//	    └───a────┘
//
//	rpq.Tensor("a.a*", g, nil, nil) relates every node of the cycle
//	to every node, itself included.
//
// See the Example functions of the rpq and cfpq packages for runnable
// query walkthroughs.
//
//	go get github.com/katalvlaran/lvlpath
package lvlpath
