// Package chebconv: sentinel errors, defaults, and functional options.
package chebconv

import (
	"errors"
	"math/rand"
)

// Sentinel errors for ChebConv construction and forward passes.
var (
	// ErrBadChannels indicates a non-positive input or output channel width.
	ErrBadChannels = errors.New("chebconv: channel widths must be > 0")

	// ErrBadFilterSize indicates a non-positive Chebyshev filter order K.
	ErrBadFilterSize = errors.New("chebconv: filter size K must be > 0")

	// ErrNilTopology indicates a nil *graph.Topology passed to Forward.
	ErrNilTopology = errors.New("chebconv: topology is nil")

	// ErrShapeMismatch indicates input features whose row count disagrees
	// with the topology's node count, or whose column count disagrees with
	// the configured input channels.
	ErrShapeMismatch = errors.New("chebconv: feature shape mismatch")
)

// DefaultInitSeed seeds weight initialization when no source is injected.
// A fixed seed keeps construction deterministic, which in turn keeps whole
// model builds reproducible run to run.
const DefaultInitSeed int64 = 1

// lambdaMax is the spectral bound used to rescale the normalized
// Laplacian. The symmetric normalized Laplacian has eigenvalues in
// [0, 2], so 2 is the standard choice; with it the rescaled operator
// reduces to L̂ = -D^{-1/2}·A·D^{-1/2}.
const lambdaMax = 2.0

// Option configures ChebConv construction.
type Option func(*options)

// options collects construction-time knobs before validation.
type options struct {
	rng *rand.Rand
}

// WithRand injects the random source used for Glorot weight init.
// Passing a shared source to several constructors gives each operator
// distinct (but still reproducible) initial weights.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(DefaultInitSeed))
	}

	return o
}
