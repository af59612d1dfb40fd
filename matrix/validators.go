// Package matrix: central validators shared by all kernels.
// Validators return plain sentinels; kernels wrap them with an operation
// tag at the facade so errors.Is keeps matching.
package matrix

// ValidateNotNil returns ErrNilMatrix when m is nil (either a nil interface
// value or a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	// Typed nil pointers still satisfy the interface; reject those too.
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape returns ErrDimensionMismatch unless a and b have
// identical row and column counts.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible returns ErrDimensionMismatch unless a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}
