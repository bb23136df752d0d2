// SPDX-License-Identifier: MIT

// Package vector - N-dimensional float32 vector used as matrix columns and
// as right-hand sides of linear systems.
//
// Purpose:
//   - Provide an owned, growable sequence with elementwise algebra.
//   - Keep wraparound indexing (i mod N) as the single indexing policy shared
//     with package matrix.
//
// Behavior highlights:
//   - Binary operations on vectors of different lengths never fail: the result
//     takes the longer length and the shorter operand counts as zero-padded.
//   - Dot works over the common prefix (min length).
//   - Hot loops delegate to go-highway's portable SIMD kernels.
package vector

import (
	"strings"

	hwyvec "github.com/ajroetker/go-highway/hwy/contrib/vec"

	"github.com/katalvlaran/sqmat/internal/scalar"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is an ordered sequence of float32 components.
// The zero value is an empty vector and is ready to use.
type Vector []float32

// New returns a zero vector of length n (n < 0 is treated as 0).
func New(n int) Vector {
	if n < 0 {
		n = 0
	}

	return make(Vector, n)
}

// Of builds a vector from the given components (copied).
func Of(vals ...float32) Vector {
	out := make(Vector, len(vals))
	copy(out, vals)

	return out
}

// Filled returns a vector of length n with every component set to v.
func Filled(n int, v float32) Vector {
	out := New(n)
	for i := range out {
		out[i] = v
	}

	return out
}

// Len returns the number of components.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy. A nil vector clones to an empty one.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// At returns the component at i, with i wrapped modulo Len().
// An empty vector reads as 0.
func (v Vector) At(i int) float32 {
	k := scalar.WrapIndex(i, len(v))
	if k < 0 {
		return 0
	}

	return v[k]
}

// Set stores x at i, with i wrapped modulo Len(). No-op on an empty vector.
func (v Vector) Set(i int, x float32) {
	if k := scalar.WrapIndex(i, len(v)); k >= 0 {
		v[k] = x
	}
}

// Swap exchanges components i and j (both wrapped).
func (v Vector) Swap(i, j int) {
	n := len(v)
	i, j = scalar.WrapIndex(i, n), scalar.WrapIndex(j, n)
	if i < 0 || i == j {
		return
	}
	scalar.Swap(&v[i], &v[j])
}

// Resize truncates or grows v to n components; new slots receive fill.
// Existing components keep their values.
func (v *Vector) Resize(n int, fill float32) {
	if n < 0 {
		n = 0
	}
	old := len(*v)
	if n <= old {
		*v = (*v)[:n:n] // cap trimmed so a later grow never resurrects stale data
		return
	}
	grown := append(*v, make(Vector, n-old)...)
	for i := old; i < n; i++ {
		grown[i] = fill
	}
	*v = grown
}

// Resized returns a copy of v with length n (see Resize).
func (v Vector) Resized(n int, fill float32) Vector {
	out := v.Clone()
	out.Resize(n, fill)

	return out
}

// Add returns v + w. Lengths may differ (see package doc).
func (v Vector) Add(w Vector) Vector {
	out := longest(v, w)
	hwyvec.BaseAddTo(out, v, w)

	return out
}

// Sub returns v - w. Lengths may differ; surplus components of w are negated.
func (v Vector) Sub(w Vector) Vector {
	out := longest(v, w)
	hwyvec.BaseSubTo(out, v, w)
	for i := len(v); i < len(w); i++ {
		out[i] = -w[i]
	}

	return out
}

// Scale returns s*v.
func (v Vector) Scale(s float32) Vector {
	out := v.Clone()
	hwyvec.BaseScale(s, out)

	return out
}

// ScaleInPlace multiplies every component of v by s.
func (v Vector) ScaleInPlace(s float32) {
	hwyvec.BaseScale(s, v)
}

// Neg returns -v.
func (v Vector) Neg() Vector { return v.Scale(-1) }

// AddScaled performs v += s*w over the common prefix.
func (v Vector) AddScaled(s float32, w Vector) {
	hwyvec.BaseMulConstAddTo(v, s, w)
}

// Dot returns the inner product over min(len(v), len(w)) components.
func (v Vector) Dot(w Vector) float32 {
	return hwyvec.BaseDot(v, w)
}

// Sum returns the sum of all components.
func (v Vector) Sum() float32 {
	var s float32
	for _, x := range v {
		s += x
	}

	return s
}

// NearEqual reports equal lengths and componentwise |v[i]-w[i]| <= eps.
func (v Vector) NearEqual(w Vector, eps float32) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if !scalar.NearEqual(v[i], w[i], eps) {
			return false
		}
	}

	return true
}

// String renders v as "[a, b, c]" with integral values printed as integers.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(scalar.Format(x))
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

// longest allocates the result buffer for a binary op and pre-fills the
// surplus of the longer operand; the common prefix is written by the kernel.
func longest(v, w Vector) Vector {
	n := max(len(v), len(w))
	out := make(Vector, n)
	if len(v) > len(w) {
		copy(out[len(w):], v[len(w):])
	} else {
		copy(out[len(v):], w[len(v):])
	}

	return out
}
