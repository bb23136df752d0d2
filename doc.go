// Package sqmat is a dense, column-major square-matrix engine in 32-bit
// floating point: determinants, minors, cofactor/adjoint, inverses (cofactor
// and Gauss-Jordan) and linear solves through an augmented row-reduction object.
//
// What is inside?
//
//	vector/          - Vector ([]float32): add/sub/scale/dot/resize with wraparound indexing
//	matrix/          - Square (N×N, stored as N columns) and Augmented (basis + right-hand sides)
//	internal/scalar/ - near-zero / near-equal / clamp / swap / wrap helpers and cell formatting
//	cmd/sqmat/       - command-line front end: sqmat -m "[[1,2],[3,4]]" -op inverse
//
// Conventions:
//
//   - N == 0 is the null matrix, the "no inverse" sentinel returned by Inverse.
//   - Indices wrap modulo N (At(-1, -1) is the bottom-right cell).
//   - Operands of different dimension are promoted, not rejected: zero padding
//     for Add/Sub, identity padding for Mul. The strict facades (matrix.Sum,
//     matrix.Product, matrix.Solve, ...) validate shapes and return errors instead.
//   - Logging goes through go-log loggers named "matrix" and "sqmat".
//
// Quick example:
//
//	m := matrix.FromRows([][]float32{{4, 7}, {2, 6}})
//	fmt.Println(m.Det())                // 10
//	fmt.Println(m.Inverse(nil).JSON())  // [[0.6,-0.7],[-0.2,0.4]]
//
// Installation:
//
//	go get github.com/katalvlaran/sqmat
package sqmat
