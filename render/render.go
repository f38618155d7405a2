// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/densela/matrix"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"golang.org/x/text/unicode/norm"
)

// ErrBadPrecision is returned when the precision option is negative.
var ErrBadPrecision = errors.New("render: negative precision")

const opMatrix = "Matrix"

// Matrix renders m as text, one line per row.
//
// Implementation:
//   - Stage 1: validate m (nil → shape) and the options.
//   - Stage 2: format every cell with a message.Printer and track per-column width.
//   - Stage 3: pad each cell on the left to its column width and join with the separator.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions, ErrBadPrecision, errors from m.At.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the formatted cells.
func Matrix(m matrix.Matrix, opts ...Option) (string, error) {
	if err := matrix.ValidateNonNilShape(m); err != nil {
		return "", fmt.Errorf("%s: %w", opMatrix, err)
	}
	o := NewOptions(opts...)
	if o.precision < 0 {
		return "", fmt.Errorf("%s: precision=%d: %w", opMatrix, o.precision, ErrBadPrecision)
	}

	p := message.NewPrinter(o.lang)
	rows, cols := m.Rows(), m.Cols()
	cells := make([]string, rows*cols)
	widths := make([]int, cols)

	var i, j, w int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return "", fmt.Errorf("%s: At(%d,%d): %w", opMatrix, i, j, err)
			}
			s := norm.NFC.String(p.Sprint(number.Decimal(v, number.MaxFractionDigits(o.precision))))
			cells[i*cols+j] = s
			if w = utf8.RuneCountInString(s); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var b strings.Builder
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(o.separator)
			}
			s := cells[i*cols+j]
			b.WriteString(strings.Repeat(" ", widths[j]-utf8.RuneCountInString(s)))
			b.WriteString(s)
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}
