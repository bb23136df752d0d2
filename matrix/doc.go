// Package matrix implements a dense, column-major, float32 square-matrix
// engine.
//
// The package provides:
//
//   - Square: an N×N matrix stored as N column vectors, with determinant,
//     minors, cofactor/adjoint, inverse (cofactor and Gauss-Jordan),
//     transpose, triangularity/identity/singularity predicates, resize and
//     arithmetic.
//   - Augmented: a basis matrix plus companion vectors exposing the three
//     row operations (SwapRows, ScaleRow, AddRow) that Square.Solution drives
//     to solve A·x = b or reduce a system to RREF.
//   - A bracketed text notation (Format, JSON, Parse).
//
// Singularity is a value, not an error: Inverse returns the null matrix
// (Dimens() == 0) when no inverse exists. Operands of different dimension are
// promoted to the larger one instead of being rejected; the strict facades in
// api.go (Det, InverseOf, Solve, Sum, Diff, Product, MatVec) validate shapes
// and return sentinel errors instead.
//
// A Square is not safe for concurrent mutation. Clone before sharing.
package matrix
