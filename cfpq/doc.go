// Package cfpq answers context-free path queries: which node pairs
// (u, v) of a labeled graph are joined by a path whose edge-label word is
// generated by a context-free grammar.
//
// Three engines, same answer:
//
//   - Hellings: a worklist fixed point over triples (u, A, v) — "some
//     path u→v derives from A" — joined through the A → B C productions
//     of the weak normal form. The workhorse for small dense grammars.
//   - Matrix: the same fixed point as Boolean matrix multiplications,
//     one matrix per nonterminal. Better cache behavior on larger graphs.
//   - GLL: a generalized LL parse over the grammar's recursive state
//     machine, memoized through a graph-structured stack. Needs no
//     normal form and terminates on left-recursive and ambiguous
//     grammars.
//
// All three are pure functions: inputs are never mutated, every bit of
// working state is owned by the invocation, and any visitation order
// reaches the same fixed point. Empty/nil start or final slices mean "no
// filter".
package cfpq
