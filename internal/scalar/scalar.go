// SPDX-License-Identifier: MIT

// Package scalar holds the float32 helpers shared by vector and matrix:
// tolerance tests, clamping, wraparound indexing and number formatting.
package scalar

import (
	"math"
	"strconv"
)

// NearZero reports whether |v| < eps.
func NearZero(v, eps float32) bool {
	return Abs(v) < eps
}

// NearEqual reports whether |a-b| <= eps. NaN is never near anything.
func NearEqual(a, b, eps float32) bool {
	if a == b {
		return true // covers equal infinities
	}

	return Abs(a-b) <= eps
}

// Abs returns |v| without the float64 round trip of math.Abs.
func Abs(v float32) float32 {
	if v < 0 {
		return -v
	}

	return v
}

// Clamp limits v to [lo, hi]. Bounds are swapped when lo > hi.
func Clamp[T ~float32 | ~float64 | ~int](v, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Swap exchanges *a and *b.
func Swap[T any](a, b *T) {
	*a, *b = *b, *a
}

// WrapIndex maps i into [0, n) modulo n; negative indices wrap from the end.
// It returns -1 when n <= 0, meaning there is no valid slot.
func WrapIndex(i, n int) int {
	if n <= 0 {
		return -1
	}
	i %= n
	if i < 0 {
		i += n
	}

	return i
}

// Format renders v the way matrices and vectors print their cells:
// integral values lose their fractional part ("2", not "2.0"),
// everything else uses the shortest float32 representation.
func Format(v float32) string {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 32)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		if f == 0 {
			return "0" // drop the sign of -0
		}

		return strconv.FormatInt(int64(f), 10)
	}

	return strconv.FormatFloat(f, 'g', -1, 32)
}
