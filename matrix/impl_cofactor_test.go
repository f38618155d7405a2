// SPDX-License-Identifier: MIT
// Package matrix_test: tests for the cofactor expansion engine
// (Minor, Determinant, CalcComplements, Adjugate, Inverse).

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densela/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Minor ----------

func TestMinor_AllPositions3x3(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	cases := []struct {
		row, col int
		want     [][]float64
	}{
		{0, 0, [][]float64{{5, 6}, {8, 9}}},
		{0, 2, [][]float64{{4, 5}, {7, 8}}},
		{1, 1, [][]float64{{1, 3}, {7, 9}}},
		{2, 0, [][]float64{{2, 3}, {5, 6}}},
		{2, 2, [][]float64{{1, 2}, {4, 5}}},
	}
	for _, tc := range cases {
		got, err := matrix.Minor(a, tc.row, tc.col)
		require.NoError(t, err)
		requireRows(t, tc.want, got)

		got, err = matrix.Minor(hide{a}, tc.row, tc.col)
		require.NoError(t, err)
		requireRows(t, tc.want, got)
	}

	// Source untouched.
	requireRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, a)
}

func TestMinor_Rectangular(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}})

	got, err := matrix.Minor(a, 1, 2)
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 2, 4}}, got)
}

func TestMinor_Errors(t *testing.T) {
	a := MustDense(t, 3, 3)

	_, err := matrix.Minor(a, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Minor(a, 0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Minor(MustDense(t, 1, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Minor(MustDense(t, 1, 4), 0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Minor(nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMinor_ResultIsIndependent(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	m, err := matrix.Minor(a, 0, 0)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 0, 99))
	v, _ := a.At(1, 1)
	require.Equal(t, 4.0, v)
}

// ---------- Determinant ----------

func TestDeterminant_Table(t *testing.T) {
	cases := []struct {
		name string
		in   [][]float64
		want float64
	}{
		{"1x1", [][]float64{{5}}, 5},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"4x4 singular", [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}, 0},
		{"5x5 upper triangular", [][]float64{
			{2, 7, -1, 3, 4},
			{0, 3, 5, -2, 1},
			{0, 0, 1, 8, -3},
			{0, 0, 0, 4, 6},
			{0, 0, 0, 0, 5},
		}, 120},
		{"5x5 rows swapped", [][]float64{
			{0, 3, 5, -2, 1},
			{2, 7, -1, 3, 4},
			{0, 0, 1, 8, -3},
			{0, 0, 0, 4, 6},
			{0, 0, 0, 0, 5},
		}, -120},
		{"identity 6x6", [][]float64{
			{1, 0, 0, 0, 0, 0},
			{0, 1, 0, 0, 0, 0},
			{0, 0, 1, 0, 0, 0},
			{0, 0, 0, 1, 0, 0},
			{0, 0, 0, 0, 1, 0},
			{0, 0, 0, 0, 0, 1},
		}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustRows(t, tc.in)

			got, err := matrix.Determinant(a)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			got, err = matrix.Det(hide{a})
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDeterminant_Errors(t *testing.T) {
	_, err := matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Determinant(badShape{0, 0})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	// Shape is checked before squareness.
	_, err = matrix.Determinant(badShape{0, 3})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	require.NotErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Determinant(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDeterminant_EqualsTransposeDeterminant(t *testing.T) {
	for n := 1; n <= 6; n++ {
		a := MustDense(t, n, n)
		fillDenseRand(t, a, int64(100+n))
		at, err := matrix.Transpose(a)
		require.NoError(t, err)

		d, err := matrix.Determinant(a)
		require.NoError(t, err)
		dt, err := matrix.Determinant(at)
		require.NoError(t, err)
		require.Equal(t, d, dt, "n=%d", n)
	}
}

func TestDeterminant_DoesNotMutateInput(t *testing.T) {
	in := [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}
	a := mustRows(t, in)
	_, err := matrix.Determinant(a)
	require.NoError(t, err)
	requireRows(t, in, a)
}

// ---------- CalcComplements ----------

func TestCalcComplements_2x2(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	c, err := matrix.CalcComplements(a)
	require.NoError(t, err)
	requireRows(t, [][]float64{{4, -3}, {-2, 1}}, c)
}

func TestCalcComplements_3x3(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {0, 4, 2}, {5, 2, 1}})
	want := [][]float64{{0, 10, -20}, {4, -14, 8}, {-8, -2, 4}}

	c, err := matrix.CalcComplements(a)
	require.NoError(t, err)
	requireRows(t, want, c)

	c, err = matrix.CofactorMatrix(hide{a})
	require.NoError(t, err)
	requireRows(t, want, c)
}

func TestCalcComplements_ZeroMatrix(t *testing.T) {
	c, err := matrix.CalcComplements(MustDense(t, 3, 3))
	require.NoError(t, err)
	require.True(t, matrix.Equal(MustDense(t, 3, 3), c))
}

func TestCalcComplements_SingleElementConvention(t *testing.T) {
	c, err := matrix.CalcComplements(mustRows(t, [][]float64{{42}}))
	require.NoError(t, err)
	requireRows(t, [][]float64{{42}}, c)
}

func TestCalcComplements_Errors(t *testing.T) {
	_, err := matrix.CalcComplements(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.CalcComplements(badShape{-1, -1})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.CalcComplements(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCalcComplements_RowExpansion checks Σ_j a[i][j]·C[i][j] == det(A) for every row i.
func TestCalcComplements_RowExpansion(t *testing.T) {
	a := MustDense(t, 5, 5)
	fillDenseRand(t, a, 55)
	d, err := matrix.Determinant(a)
	require.NoError(t, err)
	c, err := matrix.CalcComplements(a)
	require.NoError(t, err)

	ar, cr := a.ToRows(), rowsOf(t, c)
	for i := range ar {
		sum := 0.0
		for j := range ar[i] {
			sum += ar[i][j] * cr[i][j]
		}
		assert.Equal(t, d, sum, "row %d", i)
	}
}

// ---------- Adjugate ----------

func TestAdjugate(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {0, 4, 2}, {5, 2, 1}})

	adj, err := matrix.Adjugate(a)
	require.NoError(t, err)
	requireRows(t, [][]float64{{0, 4, -8}, {10, -14, -2}, {-20, 8, 4}}, adj)

	// A · adj(A) = det(A) · I
	d, err := matrix.Determinant(a)
	require.NoError(t, err)
	p, err := matrix.Mul(a, adj)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	want, err := matrix.Scale(id, d)
	require.NoError(t, err)
	require.True(t, matrix.Equal(want, p))

	_, err = matrix.Adjugate(MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// ---------- Inverse ----------

func TestInverse_Integer3x3(t *testing.T) {
	a := mustRows(t, [][]float64{{1, -1, 1}, {-38, 41, -34}, {27, -29, 24}})

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	requireRowsNear(t, [][]float64{{2, 5, 7}, {6, 3, 4}, {5, -2, -3}}, inv, 1e-5)
}

func TestInverse_Tridiagonal(t *testing.T) {
	a := mustRows(t, [][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}})

	inv, err := matrix.InverseOf(hide{a})
	require.NoError(t, err)
	requireRowsNear(t, [][]float64{{0.75, 0.5, 0.25}, {0.5, 1, 0.5}, {0.25, 0.5, 0.75}}, inv, 1e-5)
}

func TestInverse_OneByOne(t *testing.T) {
	inv, err := matrix.Inverse(mustRows(t, [][]float64{{3}}))
	require.NoError(t, err)
	v, err := inv.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 1.0/3.0, v, 1e-15)
}

func TestInverse_Errors(t *testing.T) {
	_, err := matrix.Inverse(mustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(mustRows(t, [][]float64{{0}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Inverse(badShape{0, 2})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestInverse_TinyDeterminantIsInvertible documents the exact-zero singularity test.
func TestInverse_TinyDeterminantIsInvertible(t *testing.T) {
	a := mustRows(t, [][]float64{{1e-200, 0}, {0, 1e-200}})
	d, err := matrix.Determinant(a)
	require.NoError(t, err)
	require.Equal(t, 0.0, d, "1e-400 underflows to zero")
	_, err = matrix.Inverse(a)
	require.ErrorIs(t, err, matrix.ErrSingular)

	b := mustRows(t, [][]float64{{1e-100, 0}, {0, 1e-100}})
	inv, err := matrix.Inverse(b)
	require.NoError(t, err)
	v, _ := inv.At(0, 0)
	require.InEpsilon(t, 1e100, v, 1e-12)
}

func TestInverse_ProductIsIdentity(t *testing.T) {
	for n := 2; n <= 5; n++ {
		for seed := int64(0); seed < 5; seed++ {
			a := MustDense(t, n, n)
			fillDenseRand(t, a, seed*31+int64(n))
			d, err := matrix.Determinant(a)
			require.NoError(t, err)
			if d == 0 {
				continue
			}

			inv, err := matrix.Inverse(a)
			require.NoError(t, err)
			p, err := matrix.Mul(a, inv)
			require.NoError(t, err)
			id, err := matrix.NewIdentity(n)
			require.NoError(t, err)
			requireRowsNear(t, id.ToRows(), p, 1e-5)
		}
	}
}

// TestInverse_SubnormalDeterminant pins the overflow of 1/det: Inf on the
// diagonal, NaN where a zero cofactor is scaled, and no error.
func TestInverse_SubnormalDeterminant(t *testing.T) {
	rows := [][]float64{{1e-155, 0}, {0, 1e-155}}

	d, err := matrix.Determinant(mustRows(t, rows))
	require.NoError(t, err)
	require.NotZero(t, d)

	inv, err := matrix.Inverse(mustRows(t, rows))
	require.NoError(t, err)
	got := rowsOf(t, inv)
	assert.True(t, math.IsInf(got[0][0], 1))
	assert.True(t, math.IsNaN(got[0][1]))
	assert.True(t, math.IsNaN(got[1][0]))
	assert.True(t, math.IsInf(got[1][1], 1))

	// Default policy: the non-finite result is rejected by mutators.
	require.ErrorIs(t, inv.(*matrix.Dense).ScaleInPlace(1), matrix.ErrNaNInf)

	// The input's relaxed policy carries over to the result.
	raw, err := matrix.NewFromRows(rows, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	inv, err = matrix.Inverse(raw)
	require.NoError(t, err)
	require.NoError(t, inv.(*matrix.Dense).ScaleInPlace(1))

	one, err := matrix.Inverse(mustRows(t, [][]float64{{5e-324}}))
	require.NoError(t, err)
	v, err := one.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}
