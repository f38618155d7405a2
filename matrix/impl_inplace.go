// SPDX-License-Identifier: MIT

// Package matrix - in-place mutators and resizing for *Dense.
//
// Purpose:
//   - Mutating counterparts of Add/Sub/Scale/Mul for callers that own a *Dense
//     and want to update it rather than allocate a new handle.
//   - SetRows/SetCols: resize while keeping surviving cells at their coordinates.
//
// Behavior highlights:
//   - All-or-nothing: the result is computed into a fresh buffer and swapped in
//     only after every check passed, so a failed call leaves the receiver untouched.
//   - Operands may alias the receiver (m.AddInPlace(m) doubles m).

package matrix

import (
	"fmt"
	"math"
)

const (
	opAddInPlace   = "AddInPlace"
	opSubInPlace   = "SubInPlace"
	opScaleInPlace = "ScaleInPlace"
	opMulInPlace   = "MulInPlace"
	opSetRows      = "SetRows"
	opSetCols      = "SetCols"
)

// checkReceiver validates a *Dense receiver (nil, then shape).
func (m *Dense) checkReceiver() error {
	if m == nil {
		return ErrNilMatrix
	}

	return ValidateShape(m)
}

// adopt swaps res's shape and buffer into m after enforcing m's numeric policy.
func (m *Dense) adopt(op string, res *Dense) error {
	if m.validateNaNInf {
		for idx, v := range res.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return matrixErrorf(op, denseErrorf(op, idx/res.c, idx%res.c, ErrNaNInf))
			}
		}
	}
	m.r, m.c, m.data = res.r, res.c, res.data

	return nil
}

// AddInPlace sets m = m + b.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf (overflow under policy).
func (m *Dense) AddInPlace(b Matrix) error {
	if err := m.checkReceiver(); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	res, err := addSub(m, b, +1, opAddInPlace)
	if err != nil {
		return err
	}

	return m.adopt(opAddInPlace, res)
}

// SubInPlace sets m = m - b.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
func (m *Dense) SubInPlace(b Matrix) error {
	if err := m.checkReceiver(); err != nil {
		return matrixErrorf(opSubInPlace, err)
	}
	res, err := addSub(m, b, -1, opSubInPlace)
	if err != nil {
		return err
	}

	return m.adopt(opSubInPlace, res)
}

// ScaleInPlace sets m = alpha * m.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf (non-finite alpha or overflow under policy).
func (m *Dense) ScaleInPlace(alpha float64) error {
	if err := m.checkReceiver(); err != nil {
		return matrixErrorf(opScaleInPlace, err)
	}
	res, err := scaleDense(m, alpha)
	if err != nil {
		return matrixErrorf(opScaleInPlace, err)
	}

	return m.adopt(opScaleInPlace, res)
}

// MulInPlace sets m = m × b. The receiver's shape becomes m.Rows() × b.Cols().
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch (m.Cols() != b.Rows()), ErrNaNInf.
func (m *Dense) MulInPlace(b Matrix) error {
	if err := m.checkReceiver(); err != nil {
		return matrixErrorf(opMulInPlace, err)
	}
	res, err := mulDense(m, b)
	if err != nil {
		return matrixErrorf(opMulInPlace, err)
	}

	return m.adopt(opMulInPlace, res)
}

// SetRows resizes m to n rows.
//
// Behavior highlights:
//   - n < Rows(): trailing rows are dropped.
//   - n > Rows(): new rows are zero-filled.
//   - n == Rows(): no-op.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (n ≤ 0 or malformed receiver).
//
// Complexity:
//   - Time O(n*c), Space O(n*c).
func (m *Dense) SetRows(n int) error {
	if err := m.checkReceiver(); err != nil {
		return matrixErrorf(opSetRows, err)
	}
	if n <= 0 {
		return matrixErrorf(opSetRows, fmt.Errorf("rows=%d: %w", n, ErrInvalidDimensions))
	}
	if n == m.r {
		return nil
	}

	buf := make([]float64, n*m.c)
	copy(buf, m.data) // copies min(len) cells; rows are contiguous
	m.r, m.data = n, buf

	return nil
}

// SetCols resizes m to n columns.
//
// Behavior highlights:
//   - n < Cols(): trailing columns are dropped.
//   - n > Cols(): new columns are zero-filled.
//   - n == Cols(): no-op.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (n ≤ 0 or malformed receiver).
//
// Complexity:
//   - Time O(r*n), Space O(r*n).
func (m *Dense) SetCols(n int) error {
	if err := m.checkReceiver(); err != nil {
		return matrixErrorf(opSetCols, err)
	}
	if n <= 0 {
		return matrixErrorf(opSetCols, fmt.Errorf("cols=%d: %w", n, ErrInvalidDimensions))
	}
	if n == m.c {
		return nil
	}

	keep := m.c
	if n < keep {
		keep = n
	}
	buf := make([]float64, m.r*n)
	for i := 0; i < m.r; i++ {
		copy(buf[i*n:i*n+keep], m.data[i*m.c:i*m.c+keep])
	}
	m.c, m.data = n, buf

	return nil
}
