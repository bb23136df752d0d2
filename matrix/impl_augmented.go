// SPDX-License-Identifier: MIT

// Package matrix - Augmented: a basis matrix paired with companion vectors.
//
// Purpose:
//   - Give elimination a single row-level surface. Every row operation is
//     applied, index for index, to the basis AND to every augment vector, so
//     "row r" keeps one algebraic meaning across the whole system [A | b1 b2 ...].
//   - Carry no policy: pivot choice, determinant bookkeeping and the forward /
//     backward passes live in Square.Solution.
//
// Behavior highlights:
//   - Construction copies its inputs; the caller's matrix and vectors are never mutated.
//   - Augment vectors are normalized to length N (zero fill).
//   - Row indices wrap modulo N.

package matrix

import (
	"github.com/katalvlaran/sqmat/internal/scalar"
	"github.com/katalvlaran/sqmat/vector"
)

// Augmented is the working object of Gauss-Jordan elimination.
type Augmented struct {
	basis   *Square
	augment []vector.Vector
	swaps   int // row swaps actually performed (i != j)
}

// NewAugmented pairs a copy of basis with copies of the augment vectors,
// each resized to basis.Dimens(). A nil basis is treated as the null matrix.
// An empty augment set is valid (determinant-only elimination).
func NewAugmented(basis *Square, augment ...vector.Vector) *Augmented {
	b := basis.Clone()
	n := b.Dimens()
	aug := make([]vector.Vector, len(augment))
	for i, v := range augment {
		aug[i] = v.Resized(n, 0)
	}

	return &Augmented{basis: b, augment: aug}
}

// Basis returns the (possibly reduced) basis. The returned matrix is owned
// by the Augmented; Clone it before mutating.
func (a *Augmented) Basis() *Square { return a.basis }

// Augment returns the augment vectors. After a Solution pass these are the
// transformed right-hand sides (the unknowns, for a nonsingular basis).
func (a *Augmented) Augment() []vector.Vector { return a.augment }

// AugmentMatrix returns the augment vectors as the columns of a Square.
// With the identity as augment and an RREF pass this is the inverse.
func (a *Augmented) AugmentMatrix() *Square {
	return New(a.augment)
}

// Len returns the number of augment vectors M.
func (a *Augmented) Len() int { return len(a.augment) }

// Dimens returns the number of rows N.
func (a *Augmented) Dimens() int { return a.basis.Dimens() }

// Swaps returns how many row swaps (with i != j) have been applied.
func (a *Augmented) Swaps() int { return a.swaps }

// SwapRows exchanges rows i and j (wrapped) in the basis and in every
// augment vector. Equal indices are a no-op and are not counted.
func (a *Augmented) SwapRows(i, j int) {
	n := a.Dimens()
	i, j = scalar.WrapIndex(i, n), scalar.WrapIndex(j, n)
	if i < 0 || i == j {
		return
	}
	for _, col := range a.basis.cols {
		col.Swap(i, j)
	}
	for _, v := range a.augment {
		v.Swap(i, j)
	}
	a.swaps++
}

// ScaleRow multiplies every cell of row (wrapped) by s.
func (a *Augmented) ScaleRow(s float32, row int) {
	n := a.Dimens()
	row = scalar.WrapIndex(row, n)
	if row < 0 {
		return
	}
	for _, col := range a.basis.cols {
		col[row] *= s
	}
	for _, v := range a.augment {
		v[row] *= s
	}
}

// AddRow performs row[into] += s * row[from] (both wrapped) on every column.
// from == into is allowed and scales the row by (1+s).
func (a *Augmented) AddRow(s float32, from, into int) {
	n := a.Dimens()
	from, into = scalar.WrapIndex(from, n), scalar.WrapIndex(into, n)
	if from < 0 {
		return
	}
	for _, col := range a.basis.cols {
		col[into] += s * col[from]
	}
	for _, v := range a.augment {
		v[into] += s * v[from]
	}
}
