// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose unexported helpers to matrix_test ONLY (this is a _test.go file,
//     so nothing here reaches production builds).
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with the Options fields.

// OptionsSnapshot is a read-only view of the effective constructor options.
type OptionsSnapshot struct {
	RowMajor bool
	Fill     float32
}

// GatherOptionsSnapshot_TestOnly applies opts over defaults and returns the result.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{RowMajor: o.rowMajor, Fill: o.fill}
}

// PivotRow_TestOnly forwards to pivotRow on m's columns.
func PivotRow_TestOnly(m *Square, p int) int {
	return pivotRow(m.cols, p)
}

// Panic message export to avoid magic strings in tests.
const PanicFillInvalid_TestOnly = panicFillInvalid
