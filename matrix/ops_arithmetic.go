// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Memberwise and product arithmetic on *Square: value-returning forms
//     (Add, Sub, Neg, Scale, Quo, Mul, MulVec) and compound in-place forms
//     (AddInPlace, SubInPlace, ScaleInPlace, MulInPlace).
//
// Dimension policy:
//   - Operands of different dimension are NOT rejected. Promote grows the
//     smaller operand to the larger dimension: Add/Sub pad with zeros,
//     Mul pads with the identity. MulVec treats the matrix as identity-padded,
//     so rows beyond N carry the vector's surplus entries.
//   - Every promotion is logged at WARN level on the "matrix" logger.
//
// Determinism & Performance:
//   - Column loops delegate to vector kernels (go-highway).
//   - Mul transposes the left operand once so every cell is a contiguous dot product.

package matrix

import (
	"github.com/katalvlaran/sqmat/vector"
)

// Padding traces used by Promote.
const (
	PadZero     float32 = 0 // additive neutral block
	PadIdentity float32 = 1 // multiplicative neutral block
)

// Promote returns copies of a and b grown to max(a.Dimens(), b.Dimens()).
// New diagonal cells get trace, other new cells 0. Equal dimensions yield
// plain copies. Nil operands are treated as the null matrix.
func Promote(a, b *Square, trace float32) (*Square, *Square) {
	pa, pb := a.Clone(), b.Clone()
	na, nb := pa.Dimens(), pb.Dimens()
	if na == nb {
		return pa, pb
	}
	n := max(na, nb)
	log.Warnf("promoting %dx%d and %dx%d operands to %dx%d (trace pad %v)", na, na, nb, nb, n, n, trace)

	return pa.ResizeFill(n, trace, 0), pb.ResizeFill(n, trace, 0)
}

// Add returns m + b (zero-padded on dimension mismatch).
func (m *Square) Add(b *Square) *Square {
	pa, pb := Promote(m, b, PadZero)
	for c := range pa.cols {
		pa.cols[c] = pa.cols[c].Add(pb.cols[c])
	}

	return pa
}

// Sub returns m - b (zero-padded on dimension mismatch).
func (m *Square) Sub(b *Square) *Square {
	pa, pb := Promote(m, b, PadZero)
	for c := range pa.cols {
		pa.cols[c] = pa.cols[c].Sub(pb.cols[c])
	}

	return pa
}

// Neg returns -m.
func (m *Square) Neg() *Square { return m.Scale(-1) }

// Scale returns s*m.
func (m *Square) Scale(s float32) *Square { return m.Clone().ScaleInPlace(s) }

// Quo returns m/s, computed as m * (1/s). s == 0 yields ±Inf/NaN cells.
func (m *Square) Quo(s float32) *Square { return m.Scale(1 / s) }

// Mul returns the matrix product m × b (identity-padded on dimension mismatch).
//
// Implementation:
//   - Stage 1: Promote with PadIdentity.
//   - Stage 2: transpose the left operand; out[c][r] = dot(row r of m, column c of b).
//
// Complexity: O(N^3).
func (m *Square) Mul(b *Square) *Square {
	pa, pb := Promote(m, b, PadIdentity)
	n := pa.Dimens()
	at := pa.Transpose() // pa is a private copy
	out := NewZeros(n)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			out.cols[c][r] = at.cols[r].Dot(pb.cols[c])
		}
	}

	return out
}

// MulVec returns m·v as a column vector of length max(N, len(v)).
// Cells r < N are dot(row r of m, v) over the common prefix; cells r >= N
// copy v[r] (the matrix behaves as if identity-padded).
func (m *Square) MulVec(v vector.Vector) vector.Vector {
	n := m.Dimens()
	if n != v.Len() {
		log.Warnf("MulVec: %dx%d matrix times vector of length %d; padding to %d", n, n, v.Len(), max(n, v.Len()))
	}
	out := vector.New(max(n, v.Len()))
	at := m.Transposed()
	for r := 0; r < n; r++ {
		out[r] = at.cols[r].Dot(v)
	}
	for r := n; r < v.Len(); r++ {
		out[r] = v[r]
	}

	return out
}

// AddInPlace sets m = m + b and returns m.
func (m *Square) AddInPlace(b *Square) *Square {
	m.cols = m.Add(b).cols

	return m
}

// SubInPlace sets m = m - b and returns m.
func (m *Square) SubInPlace(b *Square) *Square {
	m.cols = m.Sub(b).cols

	return m
}

// ScaleInPlace multiplies every cell by s and returns m.
func (m *Square) ScaleInPlace(s float32) *Square {
	for _, col := range m.colsOrNil() {
		col.ScaleInPlace(s)
	}

	return m
}

// MulInPlace sets m = m × b and returns m.
func (m *Square) MulInPlace(b *Square) *Square {
	m.cols = m.Mul(b).cols

	return m
}
