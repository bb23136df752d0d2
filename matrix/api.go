// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Thin, strict entry points for common tasks. Unlike the methods on
//     *Square (which promote mismatched operands and wrap indices), the
//     facades validate shapes and report problems as errors.
//   - No logic duplication: each facade delegates to the canonical method.

package matrix

import "github.com/katalvlaran/sqmat/vector"

// Det returns m.Det() after validating m.
func Det(m *Square) (float32, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf("Det", err)
	}

	return m.Det(), nil
}

// InverseOf returns the cofactor inverse of m, or ErrSingular when m.Inverse
// yields the null matrix.
func InverseOf(m *Square) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("InverseOf", err)
	}
	inv := m.Inverse(nil)
	if inv.IsNull() {
		return nil, matrixErrorf("InverseOf", ErrSingular)
	}

	return inv, nil
}

// Solve returns x with m·x = b, using an RREF pass over [m | b].
//
// Errors:
//   - ErrNilMatrix / ErrInvalidDimensions for a nil or null m.
//   - ErrDimensionMismatch when len(b) != N.
//   - ErrSingular when m has no unique solution.
func Solve(m *Square, b vector.Vector) (vector.Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Dimens()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	aug, err := m.Solution([]vector.Vector{b}, RREF, nil)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return aug.Augment()[0], nil
}

// Product returns a × b after checking both have the same dimension.
func Product(a, b *Square) (*Square, error) {
	if err := ValidateSameDimens(a, b); err != nil {
		return nil, matrixErrorf("Product", err)
	}

	return a.Mul(b), nil
}

// Sum returns a + b after checking both have the same dimension.
func Sum(a, b *Square) (*Square, error) {
	if err := ValidateSameDimens(a, b); err != nil {
		return nil, matrixErrorf("Sum", err)
	}

	return a.Add(b), nil
}

// Diff returns a - b after checking both have the same dimension.
func Diff(a, b *Square) (*Square, error) {
	if err := ValidateSameDimens(a, b); err != nil {
		return nil, matrixErrorf("Diff", err)
	}

	return a.Sub(b), nil
}

// MatVec returns m·x after checking len(x) == N.
func MatVec(m *Square, x vector.Vector) (vector.Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("MatVec", err)
	}
	if err := ValidateVecLen(x, m.Dimens()); err != nil {
		return nil, matrixErrorf("MatVec", err)
	}

	return m.MulVec(x), nil
}
