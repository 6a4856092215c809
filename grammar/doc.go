// Package grammar models context-free grammars and the weak Chomsky
// normal form required by the Hellings and matrix CFPQ engines.
//
// What
//
//   - CFG: start symbol, variable and terminal sets, production list.
//   - Parse: a line-oriented text form ("S -> a S b | a b").
//   - Nullable: the set of variables deriving the empty word, computed
//     over the grammar as written.
//   - WeakNormalForm: productions restricted to A → a, A → B C, and
//     A → ε for originally-nullable A, with useless symbols removed and
//     the start symbol preserved.
//
// Conventions
//
//	A token is a Variable iff its first rune is upper-case; "epsilon" and
//	"$" denote the empty word. Variables introduced by the normal-form
//	rewrite carry a '#' in their name, which the surface syntax cannot
//	produce, so fresh names never collide with user symbols.
//
// Why weak normal form
//
//	Chomsky normal form proper forbids ε-productions, but path queries
//	need them: a nullable start symbol relates every node to itself. The
//	weak form keeps the two-nonterminal shape the engines' joins rely on
//	while re-adding A → ε for every variable that was nullable in the
//	original grammar — nullability is computed before any rewriting, so
//	no ε derivation is lost.
package grammar
