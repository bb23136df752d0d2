// SPDX-License-Identifier: MIT

// Package matrix - text codec for *Square.
//
// Notation:
//   - Row-major nested brackets: "[[1, 2],\n [3, 4]]" (Format(true)),
//     "[[1, 2], [3, 4]]" (Format(false)), "[[1,2],[3,4]]" (JSON).
//   - Integral cells print as integers ("2", not "2.0").
//   - The notation looks like JSON but is not meant as a JSON document
//     (no NaN/Inf escaping, null matrix prints as "[]").
//
// Parse accepts any of these forms. The bracket notation is a YAML flow
// sequence, so decoding is delegated to yaml.v3, which also tolerates
// arbitrary whitespace and line breaks.

package matrix

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sqmat/internal/scalar"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen      = "["
	_fmtClose     = "]"
	_fmtSep       = ", "
	_fmtPackedSep = ","
	_fmtRowBreak  = ",\n "
)

// Format renders m row-major. With lineBreaks every row after the first
// starts on a new line (indented by one space to align under the outer bracket).
func (m *Square) Format(lineBreaks bool) string {
	rowSep := _fmtSep
	if lineBreaks {
		rowSep = _fmtRowBreak
	}

	return m.render(_fmtSep, rowSep)
}

// String implements fmt.Stringer; same as Format(true).
func (m *Square) String() string { return m.Format(true) }

// JSON renders m on a single line with no spaces: "[[1,2],[3,4]]".
func (m *Square) JSON() string { return m.render(_fmtPackedSep, _fmtPackedSep) }

// render writes rows of m (transposed back from column storage).
func (m *Square) render(cellSep, rowSep string) string {
	n := m.Dimens()
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for r := 0; r < n; r++ {
		if r > 0 {
			sb.WriteString(rowSep)
		}
		sb.WriteString(_fmtOpen)
		for c := 0; c < n; c++ {
			if c > 0 {
				sb.WriteString(cellSep)
			}
			sb.WriteString(scalar.Format(m.cols[c][r]))
		}
		sb.WriteString(_fmtClose)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

// Parse reads a row-major nested list such as "[[1, 2], [3, 4]]".
// Ragged rows are zero-padded (see FromRows). "[]" yields the null matrix.
//
// Errors:
//   - ErrParse (wrapped with the decoder message) for anything that is not
//     a list of lists of numbers.
func Parse(text string) (*Square, error) {
	var rows [][]float32
	if err := yaml.Unmarshal([]byte(text), &rows); err != nil {
		log.Debugf("Parse: %v", err)
		return nil, matrixErrorf(opParse, fmt.Errorf("%w: %v", ErrParse, err))
	}
	if rows == nil && strings.TrimSpace(text) != "[]" {
		return nil, matrixErrorf(opParse, ErrParse)
	}

	return FromRows(rows), nil
}

// ParseVector reads a flat list such as "[4, 6]".
func ParseVector(text string) ([]float32, error) {
	var v []float32
	if err := yaml.Unmarshal([]byte(text), &v); err != nil {
		return nil, matrixErrorf(opParse, fmt.Errorf("%w: %v", ErrParse, err))
	}
	if v == nil && strings.TrimSpace(text) != "[]" {
		return nil, matrixErrorf(opParse, ErrParse)
	}

	return v, nil
}
