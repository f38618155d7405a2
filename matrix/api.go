// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// ZerosLike returns a zero *Dense with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNonNilShape(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I_n for a square m (n = m.Rows()).
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// ---------- Algebra facades ----------

// Sum is an alias of Add.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias of Sub.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias of Mul.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is a short alias of Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias of Scale.
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// Det is a short alias of Determinant.
func Det(m Matrix) (float64, error) { return Determinant(m) }

// CofactorMatrix is an alias of CalcComplements.
func CofactorMatrix(m Matrix) (Matrix, error) { return CalcComplements(m) }

// InverseOf is an alias of Inverse.
func InverseOf(m Matrix) (Matrix, error) { return Inverse(m) }
