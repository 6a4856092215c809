// Package rsm models recursive state machines: one DFA box per grammar
// variable, with transitions labeled by terminals or by other variables.
//
// What
//
//   - Box: a trie-shaped DFA over one variable's alternatives. Substate 0
//     is the box entry; every alternative traces a path; path ends are
//     final; an ε alternative makes the entry final.
//   - RSM: the box family plus the initial variable.
//   - FromGrammar / FromText: construction from a CFG as written — no
//     normal form involved, which is the point of the GLL engine.
//
// Conventions
//
//	A transition label is a variable edge iff it keys a box of the same
//	RSM; anything else is a terminal edge consuming one graph edge. The
//	Symbol type is shared with grammars and graphs, so the distinction is
//	membership, not typing.
package rsm
