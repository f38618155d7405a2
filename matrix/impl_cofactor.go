// SPDX-License-Identifier: MIT

// Package matrix - cofactor expansion engine.
//
// Purpose:
//   - Minor extraction (delete one row and one column).
//   - Determinant by recursive Laplace expansion along row 0.
//   - Cofactor matrix, adjugate and the adjugate-based inverse.
//
// Determinism:
//   - Expansion runs over columns 0..n-1 in increasing order, sign starting at +1,
//     accumulating left to right into a running total that starts at ZeroSum.
//     Exact-integer inputs therefore reproduce the same bits on every run.
//   - No pivoting; precision loss on near-singular inputs is accepted behavior.
//
// Complexity quicksheet:
//   - Minor: O(r*c). Determinant: O(n!) time, O(n²) live memory across the recursion
//     (one fresh minor per level). CalcComplements/Adjugate/Inverse: O(n² · (n-1)!).
//
// Notes:
//   - Every minor is a fresh *Dense; nothing is shared between sibling expansions.
//   - Intended for small matrices; the factorial cost grows quickly beyond n≈10.

package matrix

import "fmt"

// asDense returns m itself when it is a *Dense, otherwise a materialized copy
// read through At in row-major order. Callers validate shape beforehand.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}

// minorOf copies a into a fresh (r-1)×(c-1) Dense with row `row` and column `col` removed.
// Preconditions (unchecked): a.r ≥ 2, a.c ≥ 2, 0 ≤ row < a.r, 0 ≤ col < a.c.
//
// Each kept source row contributes two contiguous segments: [0, col) and (col, c).
func minorOf(a *Dense, row, col int) *Dense {
	mc := a.c - 1
	res := &Dense{
		r:              a.r - 1,
		c:              mc,
		data:           make([]float64, (a.r-1)*mc),
		validateNaNInf: a.validateNaNInf,
	}

	var i, dst, src int
	for i = 0; i < a.r; i++ {
		if i == row {
			continue
		}
		src = i * a.c
		copy(res.data[dst:dst+col], a.data[src:src+col])
		copy(res.data[dst+col:dst+mc], a.data[src+col+1:src+a.c])
		dst += mc
	}

	return res
}

// det is the recursive cofactor expansion along row 0.
// Preconditions (unchecked): a is square with n ≥ 1.
//
//	det(A) = Σ_{j=0}^{n-1} (-1)^j · A[0][j] · det(minor(A, 0, j))
func det(a *Dense) float64 {
	switch a.r {
	case 1:
		return a.data[0]
	case 2:
		return a.data[0]*a.data[3] - a.data[1]*a.data[2]
	}

	total := ZeroSum
	sign := 1.0
	for j := 0; j < a.c; j++ {
		total += sign * a.data[j] * det(minorOf(a, 0, j))
		sign = -sign
	}

	return total
}

// cofactorSign returns (-1)^(i+j).
func cofactorSign(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}

// cofactors computes the cofactor matrix of a validated square a.
// The 1×1 case returns the element itself (library convention, see CalcComplements).
func cofactors(a *Dense) *Dense {
	n := a.r
	res := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: a.validateNaNInf}
	if n == 1 {
		res.data[0] = a.data[0]

		return res
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = cofactorSign(i, j) * det(minorOf(a, i, j))
		}
	}

	return res
}

// Minor returns the submatrix of m with row `row` and column `col` deleted.
// MAIN DESCRIPTION:
//   - Produces the unique (r-1)×(c-1) matrix preserving the relative order of
//     the remaining rows and columns. Works on rectangular inputs too.
//
// Implementation:
//   - Stage 1: validate nil → shape → size (r ≥ 2 and c ≥ 2) → indices.
//   - Stage 2: walk source rows ascending, skip `row`; within each kept row walk
//     columns ascending, skip `col`; copy remaining cells in order.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (malformed input, or a 1×k / k×1 input whose
//     minor would have a zero extent), ErrOutOfRange (row or col outside bounds).
//
// Determinism:
//   - Fixed i→j copy order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - m is never mutated; the result owns its buffer and inherits m's numeric policy
//     when m is a *Dense.
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateNonNilShape(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if m.Rows() < 2 || m.Cols() < 2 {
		return nil, matrixErrorf(opMinor, fmt.Errorf("%dx%d has no minor: %w", m.Rows(), m.Cols(), ErrInvalidDimensions))
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return minorOf(a, row, col), nil
}

// Determinant computes det(m) by recursive cofactor expansion along the first row.
// MAIN DESCRIPTION:
//   - n=1: the single element; n=2: a00*a11 - a01*a10;
//     n≥3: Σ_j (-1)^j · a[0][j] · det(Minor(m, 0, j)), j ascending.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil (nil → shape → square).
//   - Stage 2: materialize non-Dense inputs once, then recurse on fresh minors.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (rows ≤ 0 or cols ≤ 0), ErrNonSquare.
//
// Determinism:
//   - Column-ascending accumulation into a running total initialized to ZeroSum.
//
// Complexity:
//   - Time O(n!), recursion depth n.
//
// AI-Hints:
//   - There is no elimination fast path; keep n small.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	a, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det(a), nil
}

// CalcComplements returns the cofactor matrix C with C[i][j] = (-1)^(i+j) · det(Minor(m, i, j)).
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil.
//   - Stage 2: n=1 → C = [[m00]]; otherwise fill every cell row-major.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
//
// Notes:
//   - For a 1×1 input the cofactor is the element itself, not 1. This is the
//     library's convention and Inverse does not depend on it.
//   - Cells are independent of each other; iteration order has no effect on values.
func CalcComplements(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCalcComplements, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCalcComplements, err)
	}

	return cofactors(a), nil
}

// Adjugate returns adj(m) = Transpose(CalcComplements(m)).
// Follows CalcComplements literally, so a 1×1 input yields [[m00]].
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare.
func Adjugate(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := transposeDense(cofactors(a))
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse computes m⁻¹ = adj(m) · (1/det(m)).
// MAIN DESCRIPTION:
//   - Adjugate-based inverse: cofactor matrix first, transpose it, then scale every
//     entry by 1/det.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil.
//   - Stage 2: det == 0 exactly → ErrSingular.
//   - Stage 3: n=1 → [[1/m00]]; otherwise Scale(Transpose(cofactors), 1/det).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
//
// Notes:
//   - The singularity test is an exact comparison with ZeroDeterminant. A tiny non-zero
//     determinant is treated as invertible and may yield huge, unstable entries.
//   - When 1/det overflows (subnormal det), cells become ±Inf, and NaN where a zero
//     cofactor meets the infinite scale. No error is returned for this.
//   - The result carries m's NaN/Inf policy (default policy for non-Dense inputs), so a
//     non-finite result of a *Dense built WithNoValidateNaNInf stays usable by the
//     in-place mutators; under the default policy they reject it with ErrNaNInf.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	d := det(a)
	if d == ZeroDeterminant {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	if a.r == 1 {
		res, err := NewDense(1, 1)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		res.data[0] = 1 / a.data[0]
		res.validateNaNInf = a.validateNaNInf

		return res, nil
	}

	adj, err := transposeDense(cofactors(a))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := scaleDense(adj, 1/d)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv.validateNaNInf = a.validateNaNInf

	return inv, nil
}
