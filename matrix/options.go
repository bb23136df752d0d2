// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and the fixed
// numeric policy. This file defines:
//   - documented defaults and tolerances (constants, single source of truth),
//   - Option / Options (functional options with internal state),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - Numeric thresholds are policy constants, not per-call knobs.
//   - Options only describe how constructor input is laid out.
package matrix

import "math"

// ---------- Numeric policy (fixed) ----------

const (
	// EpsSingular is the near-zero threshold for determinants and pivots.
	EpsSingular float32 = 1e-6

	// EpsTriangular is the near-zero threshold for off-triangle cells in
	// IsUpperTriangular / IsLowerTriangular / IsIdentity.
	EpsTriangular float32 = 1e-7
)

// ---------- Defaults ----------

const (
	// DefaultRowMajor: constructor input vectors are columns unless stated otherwise.
	DefaultRowMajor = false

	// DefaultFill pads ragged constructor input.
	DefaultFill float32 = 0

	// DefaultTrace / DefaultOffTrace are the Resize fill values.
	DefaultTrace    float32 = 1
	DefaultOffTrace float32 = 0
)

const panicFillInvalid = "matrix: WithFill: fill must be finite"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective constructor configuration.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	rowMajor bool    // input vectors are rows; transpose on construction
	fill     float32 // padding for ragged input
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		rowMajor: DefaultRowMajor,
		fill:     DefaultFill,
	}
}

// WithRowMajor declares constructor input vectors to be rows.
func WithRowMajor() Option {
	return func(o *Options) { o.rowMajor = true }
}

// WithColumnMajor declares constructor input vectors to be columns (default).
func WithColumnMajor() Option {
	return func(o *Options) { o.rowMajor = false }
}

// WithFill sets the value used to pad ragged constructor input.
// Panics on NaN/Inf (programmer error).
func WithFill(v float32) Option {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		panic(panicFillInvalid)
	}

	return func(o *Options) { o.fill = v }
}

// gatherOptions applies opts over defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
