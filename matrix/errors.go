// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Algorithms return
// these sentinels (optionally wrapped with an operation tag via matrixErrorf)
// and tests match them with errors.Is. Nothing panics on user input.
//
// Singularity on Inverse is NOT an error: Inverse returns the null matrix
// (Dimens() == 0). ErrSingular is reserved for the elimination paths
// (Solution, InverseGaussJordan) where a pivot column has no usable pivot.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with matrixErrorf(tag, ErrX) at the call
// site; callers still match with errors.Is.

var (
	// ErrSingular is returned by elimination when a pivot column holds no
	// entry usable as a pivot (|v| < EpsSingular at and below the diagonal).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Square (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates a negative requested dimension.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrDimensionMismatch indicates operands whose dimensions must agree
	// exactly (Equal-style checks); arithmetic promotes instead of failing.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrParse indicates text that is not a nested list of numbers.
	ErrParse = errors.New("matrix: cannot parse matrix text")

	// ErrUnknownMethod indicates an elimination Method outside the enum.
	ErrUnknownMethod = errors.New("matrix: unknown elimination method")
)
