// Package matrix provides the dense linear-algebra substrate for gcrn.
//
// The matrix package provides:
//
//   - A minimal Matrix interface (Rows, Cols, At, Set, Clone) so algorithms
//     can operate generically over any storage layout.
//   - Dense, a concrete row-major float64 implementation with O(1)
//     bounds-checked accessors and cache-friendly flat backing storage.
//   - Elementwise kernels (Add, Hadamard, Scale, Apply) and the two
//     activations recurrent cells need (Sigmoid, Tanh).
//   - Matrix multiplication (Mul) for spectral filter recursions.
//
// All kernels perform strict fail-fast validation and return sentinel
// errors on nil inputs or dimension mismatches; nothing in the public
// surface panics on user-triggered conditions. Every kernel allocates a
// fresh result and never aliases its operands, which keeps forward passes
// pure and bit-reproducible.
//
// See the examples in this package and gconvgru for usage patterns.
package matrix
