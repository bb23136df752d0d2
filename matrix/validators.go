// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the guards used by the strict facades in api.go.
//  - Return plain sentinels wrapped with the validator tag; call sites add the
//    operation tag via matrixErrorf.
//
// Note:
//  - The methods on *Square never validate: they follow the promote/wrap
//    policies instead. Only facades that promise exact shapes call these.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/sqmat/vector"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is a non-nil, non-null matrix.
// Complexity: O(1).
func ValidateNotNil(m *Square) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if m.Dimens() == 0 {
		return validatorErrorf("ValidateNotNil", ErrInvalidDimensions)
	}

	return nil
}

// ValidateSameDimens ensures a and b are both valid and of equal dimension.
// Complexity: O(1).
func ValidateSameDimens(a, b *Square) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameDimens", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameDimens", err)
	}
	if a.Dimens() != b.Dimens() {
		return validatorErrorf("ValidateSameDimens", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures len(v) == n.
// Complexity: O(1).
func ValidateVecLen(v vector.Vector, n int) error {
	if v.Len() != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
