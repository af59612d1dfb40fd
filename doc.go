// Package gcrn is a pure-Go library for recurrent neural modeling of
// signals that live on a fixed graph — sensor meshes, traffic networks,
// any topology where each node carries a time series.
//
// 🚀 What is gcrn?
//
//	A compact, dependency-light library that brings together:
//		• Dense matrices: row-major float64 storage + elementwise kernels
//		• Graph topology: immutable COO edge indices with optional weights
//		• Spectral convolution: Chebyshev polynomial graph filters (ChebConv)
//		• Recurrence: the Chebyshev graph-convolutional GRU cell (GConvGRU)
//
// ✨ Why choose gcrn?
//
//   - Deterministic by construction – seeded init, bit-identical forward passes
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – swap the convolution operator behind a one-method interface
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/   — Dense storage, Add/Hadamard/Mul/Apply kernels, sigmoid & tanh
//	graph/    — static Topology (edge index + weights), grid & clique builders
//	chebconv/ — K-order Chebyshev spectral graph convolution with Glorot init
//	gconvgru/ — the gated graph recurrent cell fusing space and time
//
// Quick ASCII example:
//
//	    A───B        X_t (signals on nodes)
//	    │   │   ─►   GConvGRU  ─►  H_t (hidden state on nodes)
//	    C───D        H_{t-1}
//
//	a square sensor grid: each step fuses neighborhood structure (ChebConv)
//	with per-node memory (GRU gates) into a fresh hidden state.
//
// Dive into each package's doc.go for contracts, complexity notes, and
// runnable examples.
//
//	go get github.com/katalvlaran/gcrn
package gcrn
