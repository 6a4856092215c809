// Package matrix implements the Boolean matrix algebra underlying the
// lvlpath query engines: per-symbol adjacency matrices, Kronecker
// products, Boolean multiplication, and transitive closure.
//
// What
//
//   - Bool: a rows×cols Boolean matrix with 64-bit bitset rows.
//   - Element access: At, Set, Clear, NNZ, RowScan.
//   - Algebra: Or (in-place, reports change), Mul (Boolean product),
//     Kron (Kronecker product), TransitiveClosure (reflexive, Warshall).
//   - Assembly: HStack, BlockDiag, OrRowSlice for the block-structured
//     fronts of the multi-source BFS engine.
//
// Why
//
//	Every engine in this library reduces path existence to Boolean linear
//	algebra: a path labeled by a word of L exists iff a product of
//	per-symbol adjacency matrices has a bit set. Bitset rows make the inner
//	loops word-parallel: Mul ORs whole rows, Warshall closes 64 columns per
//	machine word.
//
// Error contract
//
//	All shape and index violations return the package sentinels
//	(ErrBadShape, ErrOutOfRange, ErrDimensionMismatch); no method panics on
//	user input. Tests match them via errors.Is.
//
// Complexity (n = rows, m = cols, w = 64)
//
//   - At/Set/Clear: O(1)
//   - Or:           O(n·m/w)
//   - Mul:          O(n·k·m/w) with k = inner dimension, row-OR inner loop
//   - Kron:         O(nnz(a)·n_b·m_b/w)
//   - TransitiveClosure: O(n³/w)
package matrix
