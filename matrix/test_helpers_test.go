// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and tolerance comparisons.
//   • Keep all data finite and well-conditioned unless a test wants otherwise.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sqmat/matrix"
)

// tolerance used by property tests (M·M⁻¹ ≈ I and friends).
const tol = 1e-4

// Rows BUILDS a matrix from a row-major literal.
func Rows(rows ...[]float32) *matrix.Square {
	return matrix.FromRows(rows)
}

// MustParse PARSES text or fails the test.
func MustParse(t *testing.T, text string) *matrix.Square {
	t.Helper()
	m, err := matrix.Parse(text)
	require.NoError(t, err, "Parse(%q)", text)

	return m
}

// RequireClose FAILS unless got has want's shape and every cell is within eps
// (absolute). want is row-major.
func RequireClose(t *testing.T, want [][]float32, got *matrix.Square, eps float64) {
	t.Helper()
	if diff := cmp.Diff(want, got.Rows(), cmpopts.EquateApprox(0, eps), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s\ngot:\n%s", diff, got)
	}
}

// RequireIdentity FAILS unless m is within eps of I_n.
func RequireIdentity(t *testing.T, n int, m *matrix.Square, eps float64) {
	t.Helper()
	RequireClose(t, matrix.NewIdentity(n, 1).Rows(), m, eps)
}

// RandomWellConditioned RETURNS an n×n matrix with U(-1,1) cells plus n on the
// diagonal (strictly diagonally dominant, hence nonsingular). Deterministic per seed.
func RandomWellConditioned(n int, seed int64) *matrix.Square {
	rng := rand.New(rand.NewSource(seed))
	m := matrix.NewZeros(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := float32(rng.Float64()*2 - 1)
			if r == c {
				v += float32(n)
			}
			m.Set(r, c, v)
		}
	}

	return m
}

// RandomFill RETURNS an n×n matrix of U(-1,1) cells. Deterministic per seed.
func RandomFill(n int, seed int64) *matrix.Square {
	rng := rand.New(rand.NewSource(seed))
	m := matrix.NewZeros(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			m.Set(r, c, float32(rng.Float64()*2-1))
		}
	}

	return m
}

// relClose reports |a-b| <= eps*max(1,|b|).
func relClose(a, b float32, eps float64) bool {
	d := float64(a - b)
	if d < 0 {
		d = -d
	}
	s := float64(b)
	if s < 0 {
		s = -s
	}

	return d <= eps*max(1, s)
}
