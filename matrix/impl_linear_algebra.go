// SPDX-License-Identifier: MIT
// Package matrix - determinants, minors, adjoint, inverse and elimination.
//
// Purpose:
//   - Det with a size-dependent policy (closed forms up to 3×3, triangular
//     shortcut, Gauss-Jordan otherwise).
//   - Cofactor/adjoint inverse that never fails: singular input yields the
//     null matrix.
//   - Solution: the Gauss-Jordan / RREF driver over an Augmented working copy.
//
// Determinism:
//   - Fixed loop orders; pivot search scans rows top-down and takes the first
//     preferred candidate.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/sqmat/internal/scalar"
	"github.com/katalvlaran/sqmat/vector"
)

// Operation name constants for unified error wrapping.
const (
	opSolution  = "Solution"
	opInverseGJ = "InverseGaussJordan"
	opParse     = "Parse"
	opSolve     = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Method selects how far Solution reduces the system.
type Method int

const (
	// GaussJordan runs the forward pass only: unit pivots, zeros below them.
	GaussJordan Method = iota
	// RREF additionally clears the entries above each pivot.
	RREF
)

// String implements fmt.Stringer.
func (k Method) String() string {
	switch k {
	case GaussJordan:
		return "GaussJordan"
	case RREF:
		return "RREF"
	default:
		return fmt.Sprintf("Method(%d)", int(k))
	}
}

// Det returns the determinant of m. m is not modified.
//
// Policy by size:
//   - N == 0: 0 (the null matrix has no determinant; 0 marks it singular).
//   - N == 1: the single cell.
//   - N == 2, 3: closed-form expansion.
//   - N > 3: product of the diagonal when m is triangular, otherwise the
//     pivot product of a Gauss-Jordan pass (negated once per row swap).
//
// Complexity: O(1) for N <= 3, O(N^3) otherwise.
func (m *Square) Det() float32 {
	n := m.Dimens()
	switch n {
	case 0:
		return 0
	case 1:
		return m.cols[0][0]
	case 2:
		// |a b|
		// |c d| = ad - bc, stored column-major: a=c0[0] c=c0[1] b=c1[0] d=c1[1]
		return m.cols[0][0]*m.cols[1][1] - m.cols[1][0]*m.cols[0][1]
	case 3:
		// rule of Sarrus on rows (a b c / d e f / g h i)
		a, b, c := m.cols[0][0], m.cols[1][0], m.cols[2][0]
		d, e, f := m.cols[0][1], m.cols[1][1], m.cols[2][1]
		g, h, i := m.cols[0][2], m.cols[1][2], m.cols[2][2]

		return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	}

	if m.IsUpperTriangular() || m.IsLowerTriangular() {
		return m.traceProduct()
	}

	var det float32
	// A pivot failure means a zero column below the diagonal: det is 0 and
	// Solution already stored it, so the error carries no extra information.
	_, _ = m.Solution(nil, GaussJordan, &det)

	return det
}

// traceProduct returns the product of the diagonal cells (1 for N == 0).
func (m *Square) traceProduct() float32 {
	p := float32(1)
	for i := range m.cols {
		p *= m.cols[i][i]
	}

	return p
}

// Minor returns the (N-1)×(N-1) matrix obtained by deleting row and col
// (both wrapped modulo N). The remaining cells keep their relative order.
// Minor of a 1×1 or null matrix is the null matrix.
func (m *Square) Minor(row, col int) *Square {
	n := m.Dimens()
	if n <= 1 {
		return Null()
	}
	row, col = scalar.WrapIndex(row, n), scalar.WrapIndex(col, n)

	out := &Square{cols: make([]vector.Vector, 0, n-1)}
	for c := 0; c < n; c++ {
		if c == col {
			continue
		}
		v := make(vector.Vector, 0, n-1)
		v = append(v, m.cols[c][:row]...)
		v = append(v, m.cols[c][row+1:]...)
		out.cols = append(out.cols, v)
	}

	return out
}

// MinorDet returns Minor(row, col).Det().
func (m *Square) MinorDet(row, col int) float32 {
	return m.Minor(row, col).Det()
}

// MinorMat returns the matrix of minors: the cell at (r, c) is MinorDet(r, c).
// When det is non-nil it receives the determinant of m, obtained by Laplace
// expansion along row 0 from the minors just computed (no extra Det call).
//
// For N == 1 the only minor is the empty product 1, so the adjoint of [a]
// is [1] and the inverse is [1/a].
//
// Complexity: N^2 determinants of size N-1.
func (m *Square) MinorMat(det *float32) *Square {
	n := m.Dimens()
	out := NewZeros(n)
	switch {
	case n == 1:
		out.cols[0][0] = 1
	case n > 1:
		for c := 0; c < n; c++ {
			for r := 0; r < n; r++ {
				out.cols[c][r] = m.MinorDet(r, c)
			}
		}
	}

	if det != nil {
		var sum float32
		for c := 0; c < n; c++ {
			term := m.cols[c][0] * out.cols[c][0]
			if c%2 == 0 {
				sum += term
			} else {
				sum -= term
			}
		}
		*det = sum
	}

	return out
}

// CofactorMat returns MinorMat with the checkerboard sign (-1)^(r+c) applied.
// det behaves as in MinorMat.
func (m *Square) CofactorMat(det *float32) *Square {
	out := m.MinorMat(det)
	for c, col := range out.cols {
		for r := range col {
			if (r+c)%2 == 1 {
				col[r] = -col[r]
			}
		}
	}

	return out
}

// AdjointMat returns the adjugate: the transpose of CofactorMat.
func (m *Square) AdjointMat(det *float32) *Square {
	return m.CofactorMat(det).Transpose()
}

// ToAdjoint replaces m with its adjugate and returns m.
func (m *Square) ToAdjoint(det *float32) *Square {
	m.cols = m.AdjointMat(det).cols

	return m
}

// Inverse returns m^{-1} computed as adjoint/det. It never fails: singular
// input yields the null matrix (Dimens() == 0).
//
// Implementation:
//   - Stage 1: a caller-supplied det of exactly 0 short-circuits to Null.
//   - Stage 2: build the cofactor matrix; take det as its byproduct unless supplied.
//   - Stage 3: |det| < EpsSingular ⇒ Null.
//   - Stage 4: transpose into the adjoint and scale by 1/det.
//
// Inputs:
//   - det: optional known determinant of m (nil ⇒ computed).
//
// Complexity: N^2 determinants of size N-1.
func (m *Square) Inverse(det *float32) *Square {
	if det != nil && *det == 0 {
		return Null()
	}
	if m.IsNull() {
		return Null()
	}

	var d float32
	var cof *Square
	if det != nil {
		d = *det
		cof = m.CofactorMat(nil)
	} else {
		cof = m.CofactorMat(&d)
	}
	if scalar.NearZero(d, EpsSingular) {
		return Null()
	}

	return cof.Transpose().ScaleInPlace(1 / d)
}

// InverseGaussJordan returns m^{-1} by reducing [m | I] to RREF.
// On a singular m it returns the null matrix and an error wrapping ErrSingular.
//
// Complexity: O(N^3).
func (m *Square) InverseGaussJordan() (*Square, error) {
	n := m.Dimens()
	if n == 0 {
		return Null(), matrixErrorf(opInverseGJ, ErrSingular)
	}
	aug, err := m.Solution(NewIdentity(n, 1).cols, RREF, nil)
	if err != nil {
		return Null(), matrixErrorf(opInverseGJ, err)
	}

	return aug.AugmentMatrix(), nil
}

// Invert replaces m with its inverse and returns m. A singular m is left
// unchanged.
func (m *Square) Invert() *Square {
	det := m.Det()
	if m.IsSingular(&det) {
		return m
	}
	m.cols = m.Inverse(&det).cols

	return m
}

// IsUpperTriangular reports whether every cell below the diagonal is within
// EpsTriangular of zero.
func (m *Square) IsUpperTriangular() bool {
	for c, col := range m.colsOrNil() {
		for r := c + 1; r < len(col); r++ {
			if !scalar.NearZero(col[r], EpsTriangular) {
				return false
			}
		}
	}

	return true
}

// IsLowerTriangular reports whether every cell above the diagonal is within
// EpsTriangular of zero.
func (m *Square) IsLowerTriangular() bool {
	for c, col := range m.colsOrNil() {
		for r := 0; r < c; r++ {
			if !scalar.NearZero(col[r], EpsTriangular) {
				return false
			}
		}
	}

	return true
}

// IsIdentity reports trace sum == N, trace product == 1 and both
// triangularity predicates. The null matrix is the (empty) identity.
func (m *Square) IsIdentity() bool {
	diag := m.Diagonal()
	if !scalar.NearEqual(diag.Sum(), float32(diag.Len()), EpsTriangular) {
		return false
	}
	if !scalar.NearEqual(m.traceProduct(), 1, EpsTriangular) {
		return false
	}

	return m.IsUpperTriangular() && m.IsLowerTriangular()
}

// IsSingular reports |det| < EpsSingular. det is recomputed when nil.
func (m *Square) IsSingular(det *float32) bool {
	var d float32
	if det != nil {
		d = *det
	} else {
		d = m.Det()
	}

	return scalar.NearZero(d, EpsSingular)
}

// Solution reduces [m | augment...] and returns the working object.
//
// Implementation:
//   - Stage 1: build an Augmented copy; det accumulator starts at 1.
//   - Stage 2 (forward), per pivot p:
//     a. |basis[p][p]| < EpsSingular ⇒ search rows r > p for a non-zero entry
//     in column p, preferring a row whose swap also leaves a non-zero cell on
//     the diagonal at r; swap (det negated).
//     b. det *= pivot.
//     c. scale row p by 1/pivot.
//     d. for every r > p, add -basis[p][r] × row p into row r.
//   - Stage 3 (RREF only): backward pass clearing entries above every pivot,
//     skipping pivots still near zero.
//
// Behavior highlights:
//   - m and the augment vectors are never mutated.
//   - When column p has no usable pivot, the column is skipped (no infinite
//     reciprocal), det becomes exactly 0, elimination continues with the next
//     column, and the returned error wraps ErrSingular. The Augmented is still
//     returned, reduced as far as possible.
//   - The caller reads Augment() as the solved unknowns (Ax = b with b as the
//     sole augment vector) or checks Basis().IsIdentity() for well-posedness.
//
// Inputs:
//   - augment: right-hand sides; each normalized to length N.
//   - method: GaussJordan or RREF.
//   - det: optional output slot for the determinant of m.
//
// Complexity: O(N^2 (N+M)).
func (m *Square) Solution(augment []vector.Vector, method Method, det *float32) (*Augmented, error) {
	if method != GaussJordan && method != RREF {
		return nil, matrixErrorf(opSolution, ErrUnknownMethod)
	}

	aug := NewAugmented(m, augment...)
	n := aug.Dimens()
	basis := aug.basis.cols
	acc := float32(1)
	if n == 0 {
		acc = 0
	}

	var missing []int
	for p := 0; p < n; p++ {
		if scalar.NearZero(basis[p][p], EpsSingular) {
			if r := pivotRow(basis, p); r >= 0 {
				aug.SwapRows(p, r)
				acc = -acc
			}
		}

		pivot := basis[p][p]
		if scalar.NearZero(pivot, EpsSingular) {
			missing = append(missing, p)
			acc = 0
			log.Debugf("Solution: no usable pivot in column %d of %d", p, n)
			continue
		}
		acc *= pivot
		aug.ScaleRow(1/pivot, p)
		basis[p][p] = 1 // pivot*(1/pivot) may round off by an ulp
		for r := p + 1; r < n; r++ {
			if f := basis[p][r]; f != 0 {
				aug.AddRow(-f, p, r)
				basis[p][r] = 0
			}
		}
	}

	if method == RREF {
		for p := n - 1; p >= 0; p-- {
			if scalar.NearZero(basis[p][p], EpsSingular) {
				continue
			}
			for r := 0; r < p; r++ {
				if f := basis[p][r]; f != 0 {
					aug.AddRow(-f, p, r)
					basis[p][r] = 0
				}
			}
		}
	}

	if det != nil {
		*det = acc
	}
	if len(missing) > 0 {
		return aug, matrixErrorf(opSolution, fmt.Errorf("pivot columns %v: %w", missing, ErrSingular))
	}

	return aug, nil
}

// pivotRow returns the row r > p to swap into p, or -1 when column p has no
// non-zero entry below the diagonal. A candidate whose swap keeps the
// diagonal at r non-zero (basis[r][p] != 0) wins over the first non-zero one.
func pivotRow(basis []vector.Vector, p int) int {
	first := -1
	for r := p + 1; r < len(basis); r++ {
		if scalar.NearZero(basis[p][r], EpsSingular) {
			continue
		}
		if !scalar.NearZero(basis[r][p], EpsSingular) {
			return r
		}
		if first < 0 {
			first = r
		}
	}

	return first
}

// colsOrNil lets predicates run on a nil receiver.
func (m *Square) colsOrNil() []vector.Vector {
	if m == nil {
		return nil
	}

	return m.cols
}
