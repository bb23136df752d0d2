// SPDX-License-Identifier: MIT

// Package matrix - Square storage (column-major) & accessors.
//
// Purpose:
//   - Hold an N×N matrix as N column vectors of length N.
//   - Keep the invariant len(cols) == len(cols[i]) for every i; ragged
//     constructor input is padded, never rejected.
//   - Treat N == 0 as the null matrix: the representable "no inverse" result.
//
// Indexing policy:
//   - At/Set/Column/Row/Minor wrap indices modulo N (same policy as
//     vector.Vector). Reads on the null matrix return 0, writes are no-ops.
//
// Complexity quicksheet:
//   - New/FromRows: O(N^2); At/Set: O(1); Clone: O(N^2); Transpose: O(N^2).

package matrix

import (
	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/sqmat/internal/scalar"
	"github.com/katalvlaran/sqmat/vector"
)

var log = logging.Logger("matrix")

// Square is a dense N×N float32 matrix stored as N column vectors.
// cols[c][r] is the cell at row r, column c.
//
// The zero value is the null matrix (N == 0). Values are not safe for
// concurrent mutation; Clone before sharing.
type Square struct {
	cols []vector.Vector
}

// New builds a matrix from column vectors (or row vectors with WithRowMajor).
// The dimension is the larger of len(vectors) and the longest vector; missing
// cells are padded with the fill value (DefaultFill unless WithFill is given).
// Input vectors are copied.
//
// Complexity: O(N^2).
func New(vectors []vector.Vector, opts ...Option) *Square {
	o := gatherOptions(opts...)

	n := len(vectors)
	for _, v := range vectors {
		n = max(n, v.Len())
	}

	m := &Square{cols: make([]vector.Vector, n)}
	for c := 0; c < n; c++ {
		if c < len(vectors) {
			m.cols[c] = vectors[c].Resized(n, o.fill)
		} else {
			m.cols[c] = vector.Filled(n, o.fill)
		}
	}
	if o.rowMajor {
		m.Transpose()
	}

	return m
}

// FromRows builds a matrix from a nested row-major literal, e.g.
// FromRows([][]float32{{1, 2}, {3, 4}}) is the matrix with first row [1 2].
// Ragged rows are zero-padded.
func FromRows(rows [][]float32) *Square {
	vs := make([]vector.Vector, len(rows))
	for i, r := range rows {
		vs[i] = vector.Of(r...)
	}

	return New(vs, WithRowMajor())
}

// NewIdentity returns the n×n matrix with trace on the diagonal and zeros
// elsewhere (trace == 1 gives I_n). Negative n yields the null matrix.
func NewIdentity(n int, trace float32) *Square {
	if n < 0 {
		n = 0
	}
	m := &Square{cols: make([]vector.Vector, n)}
	for c := 0; c < n; c++ {
		m.cols[c] = vector.New(n)
		m.cols[c][c] = trace
	}

	return m
}

// NewZeros returns the n×n zero matrix.
func NewZeros(n int) *Square { return NewIdentity(n, 0) }

// Null returns the null matrix (N == 0), the "no inverse exists" sentinel.
func Null() *Square { return &Square{} }

// Dimens returns N. A nil receiver reports 0.
func (m *Square) Dimens() int {
	if m == nil {
		return 0
	}

	return len(m.cols)
}

// IsNull reports whether m is the null matrix.
func (m *Square) IsNull() bool { return m.Dimens() == 0 }

// Clone returns a deep copy.
func (m *Square) Clone() *Square {
	if m == nil {
		return Null()
	}
	cp := &Square{cols: make([]vector.Vector, len(m.cols))}
	for c, col := range m.cols {
		cp.cols[c] = col.Clone()
	}

	return cp
}

// At returns the cell at (row, col); both indices wrap modulo N.
func (m *Square) At(row, col int) float32 {
	n := m.Dimens()
	if n == 0 {
		return 0
	}

	return m.cols[scalar.WrapIndex(col, n)].At(row)
}

// Set stores v at (row, col); both indices wrap modulo N.
func (m *Square) Set(row, col int, v float32) {
	n := m.Dimens()
	if n == 0 {
		return
	}
	m.cols[scalar.WrapIndex(col, n)].Set(row, v)
}

// Column returns a copy of column c (wrapped).
func (m *Square) Column(c int) vector.Vector {
	n := m.Dimens()
	if n == 0 {
		return vector.New(0)
	}

	return m.cols[scalar.WrapIndex(c, n)].Clone()
}

// Row returns a copy of row r (wrapped).
func (m *Square) Row(r int) vector.Vector {
	n := m.Dimens()
	out := vector.New(n)
	if n == 0 {
		return out
	}
	r = scalar.WrapIndex(r, n)
	for c := 0; c < n; c++ {
		out[c] = m.cols[c][r]
	}

	return out
}

// Columns returns copies of all columns, in order.
func (m *Square) Columns() []vector.Vector {
	out := make([]vector.Vector, m.Dimens())
	for c := range out {
		out[c] = m.cols[c].Clone()
	}

	return out
}

// Rows returns the matrix as a nested row-major slice (copied).
func (m *Square) Rows() [][]float32 {
	n := m.Dimens()
	out := make([][]float32, n)
	for r := 0; r < n; r++ {
		out[r] = []float32(m.Row(r))
	}

	return out
}

// Diagonal returns a copy of the trace cells.
func (m *Square) Diagonal() vector.Vector {
	n := m.Dimens()
	out := vector.New(n)
	for i := 0; i < n; i++ {
		out[i] = m.cols[i][i]
	}

	return out
}

// Transpose swaps m in place across its diagonal and returns m.
// Complexity: O(N^2), no allocation.
func (m *Square) Transpose() *Square {
	n := m.Dimens()
	for c := 0; c < n; c++ {
		for r := c + 1; r < n; r++ {
			m.cols[c][r], m.cols[r][c] = m.cols[r][c], m.cols[c][r]
		}
	}

	return m
}

// Transposed returns a transposed copy; m is untouched.
func (m *Square) Transposed() *Square { return m.Clone().Transpose() }

// Resize is ResizeFill(n, DefaultTrace, DefaultOffTrace): growing embeds m
// in the top-left block of an identity.
func (m *Square) Resize(n int) *Square {
	return m.ResizeFill(n, DefaultTrace, DefaultOffTrace)
}

// ResizeFill grows or truncates m to n×n in place and returns m.
// Every newly created diagonal cell gets trace, every other new cell gets
// off. Shrinking keeps the top-left n×n block. Negative n means 0.
func (m *Square) ResizeFill(n int, trace, off float32) *Square {
	if n < 0 {
		n = 0
	}
	old := len(m.cols)
	if n <= old {
		m.cols = m.cols[:n:n]
		for c := range m.cols {
			m.cols[c].Resize(n, off)
		}

		return m
	}

	// grow existing columns: new cells are below the old block, never on the diagonal
	for c := 0; c < old; c++ {
		m.cols[c].Resize(n, off)
	}
	for c := old; c < n; c++ {
		col := vector.Filled(n, off)
		col[c] = trace
		m.cols = append(m.cols, col)
	}

	return m
}

// Equal reports same dimension and every cell within eps.
func (m *Square) Equal(b *Square, eps float32) bool {
	if m.Dimens() != b.Dimens() {
		return false
	}
	for c, col := range m.colsOrNil() {
		if !col.NearEqual(b.cols[c], eps) {
			return false
		}
	}

	return true
}
