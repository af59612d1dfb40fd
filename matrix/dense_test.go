package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gcrn/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_InvalidDimensions verifies that non-positive dimensions
// are rejected with ErrInvalidDimensions.
func TestNewDense_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 3},
		{"zero cols", 3, 0},
		{"negative rows", -1, 3},
		{"negative cols", 3, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDense(tc.rows, tc.cols)
			assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "non-positive dims must error")
		})
	}
}

// TestNewDense_ZeroFilled verifies that a fresh Dense is all zeros.
func TestNewDense_ZeroFilled(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err, "2x3 is a valid shape")

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, 0.0, v, "fresh Dense must be zero-filled")
		}
	}
}

// TestNewDenseFromRows_CopiesValues verifies shape, values, and that the
// input slices are not aliased by the matrix.
func TestNewDenseFromRows_CopiesValues(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Rows(), "row count follows input")
	assert.Equal(t, 2, m.Cols(), "col count follows input")

	v, err := m.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v, "values copied in row-major order")

	// Mutating the source must not leak into the matrix.
	rows[0][0] = 99
	v, err = m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "Dense must own its storage")
}

// TestNewDenseFromRows_Ragged verifies ErrRaggedRows on unequal row lengths.
func TestNewDenseFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrRaggedRows, "ragged input must error")
}

// TestNewDenseFromRows_Empty verifies ErrInvalidDimensions on empty input.
func TestNewDenseFromRows_Empty(t *testing.T) {
	_, err := matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "nil input must error")

	_, err = matrix.NewDenseFromRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "empty rows must error")
}

// TestDense_AtSet_Bounds verifies bounds checking on both accessors.
func TestDense_AtSet_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "row overflow in At")
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "negative col in At")

	err = m.Set(-1, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "negative row in Set")
	err = m.Set(0, 2, 1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "col overflow in Set")
}

// TestDense_SetThenAt verifies round-tripping a value through Set/At.
func TestDense_SetThenAt(t *testing.T) {
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4.25))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.25, v, "Set value must be readable via At")
}

// TestDense_Clone_Independence verifies the clone shares no storage
// with the original.
func TestDense_Clone_Independence(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, m.Set(0, 0, 42))

	v, err := cp.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "clone must be unaffected by later writes")
	assert.Equal(t, m.Rows(), cp.Rows(), "clone preserves rows")
	assert.Equal(t, m.Cols(), cp.Cols(), "clone preserves cols")
}

// TestDense_Row verifies row extraction and its bounds behavior.
func TestDense_Row(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row, "Row returns a copy of the row")

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "row overflow in Row")
}
