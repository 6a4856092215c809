// Package matrix: Boolean algebra over Bool matrices.
//
// All binary operations validate shapes up front and return the package
// sentinels on mismatch. In-place operations report whether they changed
// the receiver, which is the "no change" signal the fixed-point loops in
// the CFPQ engines rely on; the report must never miss a new bit, so it is
// computed word-by-word during the OR itself.

package matrix

import (
	"fmt"
	"math/bits"
)

// Identity returns the n×n identity matrix.
// Returns ErrBadShape when n <= 0.
func Identity(n int) (*Bool, error) {
	m, err := NewBool(n, n)
	if err != nil {
		return nil, fmt.Errorf("Identity(%d): %w", n, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*m.wpr+i>>6] |= 1 << (uint(i) & 63)
	}

	return m, nil
}

// Or ORs o into m in place and reports whether any cell of m changed.
// Returns ErrDimensionMismatch unless both shapes agree.
// Complexity: O(rows·cols/64).
func (m *Bool) Or(o *Bool) (bool, error) {
	if m == nil || o == nil {
		return false, ErrNilMatrix
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false, fmt.Errorf("Or %dx%d | %dx%d: %w", m.rows, m.cols, o.rows, o.cols, ErrDimensionMismatch)
	}
	var changed bool
	for i, w := range o.data {
		if nw := m.data[i] | w; nw != m.data[i] {
			m.data[i] = nw
			changed = true
		}
	}

	return changed, nil
}

// AndNot clears in m every cell that is set in o (m &^= o), in place.
// Returns ErrDimensionMismatch unless both shapes agree.
// Complexity: O(rows·cols/64).
func (m *Bool) AndNot(o *Bool) error {
	if m == nil || o == nil {
		return ErrNilMatrix
	}
	if m.rows != o.rows || m.cols != o.cols {
		return fmt.Errorf("AndNot %dx%d &^ %dx%d: %w", m.rows, m.cols, o.rows, o.cols, ErrDimensionMismatch)
	}
	for i, w := range o.data {
		m.data[i] &^= w
	}

	return nil
}

// Mul returns the Boolean product m·o: out[i,j] = ∨_k m[i,k] ∧ o[k,j].
// The inner loop ORs whole rows of o, so cost scales with set bits of m.
// Returns ErrDimensionMismatch unless m.Cols() == o.Rows().
// Complexity: O(nnz(m)·cols(o)/64).
func (m *Bool) Mul(o *Bool) (*Bool, error) {
	if m == nil || o == nil {
		return nil, ErrNilMatrix
	}
	if m.cols != o.rows {
		return nil, fmt.Errorf("Mul %dx%d · %dx%d: %w", m.rows, m.cols, o.rows, o.cols, ErrDimensionMismatch)
	}
	out := mustBool(m.rows, o.cols)

	var i, wi, b, k, w2 int
	var w uint64
	for i = 0; i < m.rows; i++ {
		base := i * m.wpr
		outBase := i * out.wpr
		for wi = 0; wi < m.wpr; wi++ {
			w = m.data[base+wi]
			for w != 0 {
				b = bits.TrailingZeros64(w)
				w &= w - 1
				k = wi*wordBits + b // m[i,k] is set: OR row k of o into row i
				oBase := k * o.wpr
				for w2 = 0; w2 < o.wpr; w2++ {
					out.data[outBase+w2] |= o.data[oBase+w2]
				}
			}
		}
	}

	return out, nil
}

// Kron returns the Kronecker product m⊗o of shape
// (rows(m)·rows(o)) × (cols(m)·cols(o)): cell ((i1,i2),(j1,j2)) is set iff
// m[i1,j1] ∧ o[i2,j2], with the row index i1·rows(o)+i2 and column index
// j1·cols(o)+j2.
// Complexity: O(nnz(m)·rows(o)·cols(o)/64) plus bit realignment.
func (m *Bool) Kron(o *Bool) (*Bool, error) {
	if m == nil || o == nil {
		return nil, ErrNilMatrix
	}
	out := mustBool(m.rows*o.rows, m.cols*o.cols)

	for i1 := 0; i1 < m.rows; i1++ {
		if err := m.RowScan(i1, func(j1 int) bool {
			for i2 := 0; i2 < o.rows; i2++ {
				dst := i1*o.rows + i2
				_ = o.RowScan(i2, func(j2 int) bool {
					out.data[dst*out.wpr+(j1*o.cols+j2)>>6] |= 1 << (uint(j1*o.cols+j2) & 63)

					return true
				})
			}

			return true
		}); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// TransitiveClosure returns the reflexive-transitive closure of a square
// matrix: the diagonal is set, then Warshall propagation closes paths of
// every length, 64 columns per word.
// Returns ErrDimensionMismatch unless the matrix is square.
// Complexity: O(n³/64).
func (m *Bool) TransitiveClosure() (*Bool, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.rows != m.cols {
		return nil, fmt.Errorf("TransitiveClosure on %dx%d: %w", m.rows, m.cols, ErrDimensionMismatch)
	}
	c := m.Clone()

	var i, k, w int
	for i = 0; i < c.rows; i++ {
		c.data[i*c.wpr+i>>6] |= 1 << (uint(i) & 63)
	}
	// Warshall with fixed k → i order; the inner column loop is word-wide.
	for k = 0; k < c.rows; k++ {
		kBase := k * c.wpr
		for i = 0; i < c.rows; i++ {
			if c.data[i*c.wpr+k>>6]&(1<<(uint(k)&63)) == 0 {
				continue // i does not reach k
			}
			iBase := i * c.wpr
			for w = 0; w < c.wpr; w++ {
				c.data[iBase+w] |= c.data[kBase+w]
			}
		}
	}

	return c, nil
}

// HStack returns [a | b]: both operands side by side.
// Returns ErrDimensionMismatch unless row counts agree.
// Complexity: O(rows·(cols(a)+cols(b))/64).
func HStack(a, b *Bool) (*Bool, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.rows != b.rows {
		return nil, fmt.Errorf("HStack %dx%d | %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	out := mustBool(a.rows, a.cols+b.cols)
	for i := 0; i < a.rows; i++ {
		copyRowShifted(out, i, 0, a, i)
		copyRowShifted(out, i, a.cols, b, i)
	}

	return out, nil
}

// BlockDiag returns diag(a, b): a in the top-left block, b in the
// bottom-right, zeros elsewhere.
// Complexity: O((rows(a)+rows(b))·(cols(a)+cols(b))/64).
func BlockDiag(a, b *Bool) (*Bool, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	out := mustBool(a.rows+b.rows, a.cols+b.cols)
	for i := 0; i < a.rows; i++ {
		copyRowShifted(out, i, 0, a, i)
	}
	for i := 0; i < b.rows; i++ {
		copyRowShifted(out, a.rows+i, a.cols, b, i)
	}

	return out, nil
}

// OrRowSlice ORs columns [fromCol, src.Cols()) of src row srcRow into
// columns [0, ...) of dst row dstRow. The destination must be at least
// src.Cols()-fromCol columns wide.
// Complexity: O(cols(src)/64).
func (m *Bool) OrRowSlice(dstRow int, src *Bool, srcRow, fromCol int) error {
	if m == nil || src == nil {
		return ErrNilMatrix
	}
	if dstRow < 0 || dstRow >= m.rows || srcRow < 0 || srcRow >= src.rows {
		return fmt.Errorf("OrRowSlice dst %d src %d: %w", dstRow, srcRow, ErrOutOfRange)
	}
	if fromCol < 0 || fromCol > src.cols || src.cols-fromCol > m.cols {
		return fmt.Errorf("OrRowSlice fromCol %d: %w", fromCol, ErrDimensionMismatch)
	}
	orRowShifted(m, dstRow, src, srcRow, fromCol)

	return nil
}

// copyRowShifted ORs the whole src row srcRow into dst row dstRow
// starting at destination column atCol. Bounds are the caller's duty.
func copyRowShifted(dst *Bool, dstRow, atCol int, src *Bool, srcRow int) {
	srcBase := srcRow * src.wpr
	last := src.lastWordMask()
	for wi := 0; wi < src.wpr; wi++ {
		w := src.data[srcBase+wi]
		if wi == src.wpr-1 {
			w &= last
		}
		if w == 0 {
			continue
		}
		at := atCol + wi*wordBits
		dstWord := dst.wpr*dstRow + at>>6
		shift := uint(at) & 63
		dst.data[dstWord] |= w << shift
		if shift != 0 && dstWord+1 < dst.wpr*(dstRow+1) {
			dst.data[dstWord+1] |= w >> (wordBits - shift)
		}
	}
}

// orRowShifted ORs src row srcRow columns [fromCol, cols) into dst row
// dstRow columns [0, ...). Implemented by right-shifting source words
// across the fromCol bit offset.
func orRowShifted(dst *Bool, dstRow int, src *Bool, srcRow, fromCol int) {
	srcBase := srcRow * src.wpr
	dstBase := dstRow * dst.wpr
	startWord := fromCol >> 6
	shift := uint(fromCol) & 63
	last := src.lastWordMask()
	width := src.cols - fromCol
	dstWords := (width + wordBits - 1) / wordBits

	for wi := 0; wi < dstWords; wi++ {
		w := src.data[srcBase+startWord+wi]
		if startWord+wi == src.wpr-1 {
			w &= last
		}
		w >>= shift
		if shift != 0 && startWord+wi+1 < src.wpr {
			hi := src.data[srcBase+startWord+wi+1]
			if startWord+wi+1 == src.wpr-1 {
				hi &= last
			}
			w |= hi << (wordBits - shift)
		}
		if wi == dstWords-1 {
			rem := uint(width) & 63
			if rem != 0 {
				w &= (1 << rem) - 1
			}
		}
		dst.data[dstBase+wi] |= w
	}
}
