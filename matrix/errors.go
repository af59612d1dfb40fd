// Package matrix: sentinel error set (unified, consistent).
// All kernels MUST return these sentinels and tests MUST check them via
// errors.Is. No kernel panics on user-triggered error conditions.
package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Hadamard with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix was passed to an operation.
	ErrNilMatrix = errors.New("matrix: nil Matrix")

	// ErrRaggedRows indicates that NewDenseFromRows received rows of unequal length.
	ErrRaggedRows = errors.New("matrix: rows must all have the same length")
)
