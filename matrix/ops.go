// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, Hadamard product, scalar scaling,
// elementwise maps, and matrix multiplication. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opScale     = "Scale"
	opApply     = "Apply"
	opMul       = "Mul"
	opBroadcast = "BroadcastAddRow"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validatePair runs the nil and same-shape checks shared by the
// elementwise binary kernels.
func validatePair(tag string, a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// Add returns a new Dense containing the element-wise sum of a and b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): fast-path for *Dense or fallback to interface.
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix) (*Dense, error) {
	// Stage 1: Validate inputs
	if err := validatePair(opAdd, a, b); err != nil {
		return nil, err
	}

	// Stage 2: Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Stage 3: Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ = a.At(i, j)       // safe: bounds ensured
			bv, _ = b.At(i, j)       // safe: same shape
			_ = res.Set(i, j, av+bv) // safe: within bounds
		}
	}

	return res, nil
}

// Sub returns a new Dense containing the element-wise difference a - b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): fast-path for *Dense or fallback to interface.
// Complexity: O(r·c) time and memory.
func Sub(a, b Matrix) (*Dense, error) {
	// Stage 1: Validate inputs
	if err := validatePair(opSub, a, b); err != nil {
		return nil, err
	}

	// Stage 2: Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	// Stage 3: Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] - db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			_ = res.Set(i, j, av-bv)
		}
	}

	return res, nil
}

// Hadamard returns a new Dense containing the element-wise product of a and b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): fast-path for *Dense or fallback to interface.
// Complexity: O(r·c) time and memory.
func Hadamard(a, b Matrix) (*Dense, error) {
	// Stage 1: Validate inputs
	if err := validatePair(opHadamard, a, b); err != nil {
		return nil, err
	}

	// Stage 2: Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Stage 3: Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			_ = res.Set(i, j, av*bv)
		}
	}

	return res, nil
}

// Scale returns a new Dense equal to a with every element multiplied by k.
// Complexity: O(r·c) time and memory.
func Scale(a Matrix, k float64) (*Dense, error) {
	return applyTagged(opScale, a, func(v float64) float64 { return k * v })
}

// Apply returns a new Dense with f applied to every element of a.
// The input is never mutated; f must be a pure function for the result
// to stay deterministic.
// Complexity: O(r·c) time and memory, plus r·c calls of f.
func Apply(a Matrix, f func(float64) float64) (*Dense, error) {
	return applyTagged(opApply, a, f)
}

// Sigmoid returns a new Dense with the logistic sigmoid 1/(1+e^-v)
// applied elementwise. Every output element lies in (0,1).
// Complexity: O(r·c).
func Sigmoid(a Matrix) (*Dense, error) {
	return applyTagged(opApply, a, func(v float64) float64 {
		return 1.0 / (1.0 + math.Exp(-v))
	})
}

// Tanh returns a new Dense with the hyperbolic tangent applied elementwise.
// Every output element lies in (-1,1).
// Complexity: O(r·c).
func Tanh(a Matrix) (*Dense, error) {
	return applyTagged(opApply, a, math.Tanh)
}

// applyTagged is the shared elementwise-map kernel behind Scale/Apply/
// Sigmoid/Tanh, wrapping errors with the caller's operation tag.
func applyTagged(tag string, a Matrix, f func(float64) float64) (*Dense, error) {
	// Validate input non-nil
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Fast-path for Dense input
	if da, ok := a.(*Dense); ok {
		for idx := range res.data {
			res.data[idx] = f(da.data[idx])
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var av float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ = a.At(i, j)
			_ = res.Set(i, j, f(av))
		}
	}

	return res, nil
}

// BroadcastAddRow returns a new Dense with row added to every row of a —
// the usual bias broadcast in affine layers.
// Returns ErrDimensionMismatch when len(row) != a.Cols().
// Complexity: O(r·c) time and memory.
func BroadcastAddRow(a Matrix, row []float64) (*Dense, error) {
	// Validate input non-nil and row length
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opBroadcast, err)
	}
	rows, cols := a.Rows(), a.Cols()
	if len(row) != cols {
		return nil, matrixErrorf(opBroadcast, ErrDimensionMismatch)
	}

	// Allocate result Dense
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opBroadcast, err)
	}

	// Fast-path for Dense input
	if da, ok := a.(*Dense); ok {
		for i := 0; i < rows; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				res.data[base+j] = da.data[base+j] + row[j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var av float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ = a.At(i, j)
			_ = res.Set(i, j, av+row[j])
		}
	}

	return res, nil
}

// Mul returns the matrix product a·b as a new Dense.
// Stage 1 (Validate): nil-checks and a.Cols == b.Rows.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): fast-path ikj loop for *Dense, generic fallback otherwise.
// Complexity: O(r·k·c) time, O(r·c) memory.
func Mul(a, b Matrix) (*Dense, error) {
	// Stage 1: Validate inputs
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: Allocate result Dense
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 3: Fast-path for two Dense matrices (ikj order keeps the inner
	// loop walking contiguous memory in both b and res).
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < rows; i++ {
				for k := 0; k < inner; k++ {
					av := da.data[i*inner+k]
					if av == 0 {
						continue
					}
					for j := 0; j < cols; j++ {
						res.data[i*cols+j] += av * db.data[k*cols+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop
	var av, bv, sum float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum = 0
			for k := 0; k < inner; k++ {
				av, _ = a.At(i, k)
				bv, _ = b.At(k, j)
				sum += av * bv
			}
			_ = res.Set(i, j, sum)
		}
	}

	return res, nil
}
