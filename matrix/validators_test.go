package matrix_test

import (
	"testing"

	"github.com/katalvlaran/densela/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers untyped and typed nil.
func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var d *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

// TestValidateShapeAndSquare covers the shape and squareness guards.
func TestValidateShapeAndSquare(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateShape(badShape{0, 1}), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateShape(badShape{1, -1}), matrix.ErrInvalidDimensions)
	require.NoError(t, matrix.ValidateShape(badShape{1, 1}))

	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
}

// TestValidateIndex covers all four bounds.
func TestValidateIndex(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateIndex(m, 1, 2))
	for _, ij := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		require.ErrorIs(t, matrix.ValidateIndex(m, ij[0], ij[1]), matrix.ErrOutOfRange, "%v", ij)
	}
}

// TestCompositeOrder verifies nil → shape → square/compat priority.
func TestCompositeOrder(t *testing.T) {
	err := matrix.ValidateSquareNonNil(badShape{0, 5})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	require.NotErrorIs(t, err, matrix.ErrNonSquare)

	err = matrix.ValidateBinarySameShape(nil, badShape{0, 0})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	err = matrix.ValidateBinarySameShape(MustDense(t, 2, 2), badShape{0, 2})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	err = matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 1)))
}
