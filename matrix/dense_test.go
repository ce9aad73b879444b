// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netcheck/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // attempt to create with negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestShape verifies that Shape() agrees with construction.
func TestShape(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	r, c := m.Shape()
	require.Equal(t, rows, r)
	require.Equal(t, cols, c)
}

// TestAtSetOutOfRange ensures At(), Set() and Row() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.Set(2,0)")

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 789))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(789), val)

	val, err = m.At(0, 0) // untouched cells stay zero
	require.NoError(t, err)
	require.Zero(t, val)
}

// TestNonNegativePolicy checks that WithNonNegative rejects negative writes
// and leaves the cell untouched.
func TestNonNegativePolicy(t *testing.T) {
	m, err := matrix.NewDense(2, 2, matrix.WithNonNegative())
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 4))
	err = m.Set(0, 1, -3)
	require.ErrorIs(t, err, matrix.ErrNegative)

	val, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(4), val)

	signed, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, signed.Set(0, 0, -1))
}

// TestRowIsCopy ensures Row() does not alias the backing buffer.
func TestRowIsCopy(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 10))
	require.NoError(t, m.Set(1, 2, 30))

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int64{10, 0, 30}, row)

	row[0] = 99
	val, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(10), val)
}

// TestNilReceiver ensures a nil *Dense reports ErrNilMatrix instead of panicking.
func TestNilReceiver(t *testing.T) {
	var m *matrix.Dense
	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrNilMatrix)
}

// TestValidators covers the nil → square → indexed sequence.
func TestValidators(t *testing.T) {
	var nilM *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nilM), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateIndexed(nilM, 5), matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(6, 5)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch)

	sq, err := matrix.NewDense(6, 6)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateIndexed(sq, 5))
	require.NoError(t, matrix.ValidateIndexed(sq, 4))

	err = matrix.ValidateIndexed(sq, 6)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "ValidateIndexed(6): 6x6")
}
