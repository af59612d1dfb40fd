// Package gconvgru: collaborator contracts, sentinel errors, combination
// modes, and functional options.
package gconvgru

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/gcrn/chebconv"
	"github.com/katalvlaran/gcrn/graph"
	"github.com/katalvlaran/gcrn/matrix"
)

// Operator is the graph-convolution contract the cell depends on:
// a learnable map from node features to transformed features of the
// operator's fixed output width, over a static topology.
//
// Implementations must fail with a shape-mismatch error when the feature
// row count disagrees with the topology's node count or the column count
// disagrees with the operator's configured input width.
// chebconv.ChebConv is the canonical implementation.
type Operator interface {
	Forward(x matrix.Matrix, t *graph.Topology) (*matrix.Dense, error)
}

// ParameterSource is the optional enumeration side of an Operator:
// operators that expose their learnable tensors implement it, and the
// cell aggregates them for external optimizers.
type ParameterSource interface {
	Parameters() []*matrix.Dense
}

// OperatorFactory builds one convolution operator with the given input
// width, output width, and filter order. New calls it six times, once per
// gate input.
type OperatorFactory func(inChannels, outChannels, k int) (Operator, error)

// Sentinel errors for cell construction.
var (
	// ErrBadChannels indicates a non-positive input or output channel width.
	ErrBadChannels = errors.New("gconvgru: channel widths must be > 0")

	// ErrBadFilterSize indicates a non-positive Chebyshev filter order K.
	ErrBadFilterSize = errors.New("gconvgru: filter size K must be > 0")

	// ErrBadNodeCount indicates a non-positive number of graph nodes.
	ErrBadNodeCount = errors.New("gconvgru: node count must be > 0")

	// ErrNilOperator indicates an operator factory returned a nil operator
	// without an error.
	ErrNilOperator = errors.New("gconvgru: operator factory returned nil")

	// ErrBadCombineMode indicates an unknown CombineMode value.
	ErrBadCombineMode = errors.New("gconvgru: unknown combination mode")
)

// CombineMode selects how the previous hidden state, the candidate state,
// and the update gate merge into the next hidden state.
//
//   - CombineHadamard — reference behavior: H' = H ⊙ tanh(H~).
//     The update gate Z is computed but not consumed; compatible with
//     parameters trained against the reference GConvGRU cell.
//
//   - CombineConvex   — textbook GRU behavior: H' = Z ⊙ H + (1−Z) ⊙ H~.
//
// See the package documentation for why both exist.
type CombineMode int

const (
	// CombineHadamard reproduces the reference combination H ⊙ tanh(H~).
	CombineHadamard CombineMode = iota

	// CombineConvex uses the textbook GRU interpolation Z⊙H + (1−Z)⊙H~.
	CombineConvex
)

// DefaultCombineMode is the combination used when no option overrides it.
const DefaultCombineMode = CombineHadamard

// DefaultInitSeed seeds the shared random source feeding the six default
// ChebConv constructions, so a freshly built cell is reproducible.
const DefaultInitSeed int64 = 1

// Option configures cell construction.
type Option func(*options)

// options collects construction-time knobs before validation.
type options struct {
	factory OperatorFactory
	mode    CombineMode
	seed    int64
}

// WithOperatorFactory substitutes the convolution collaborator: every one
// of the six operators is built through factory instead of chebconv.New.
func WithOperatorFactory(factory OperatorFactory) Option {
	return func(o *options) { o.factory = factory }
}

// WithCombineMode selects the hidden-state combination formula.
func WithCombineMode(mode CombineMode) Option {
	return func(o *options) { o.mode = mode }
}

// WithInitSeed overrides the seed of the shared random source used for
// the default ChebConv weight initialization. Ignored when
// WithOperatorFactory is also given.
func WithInitSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{mode: DefaultCombineMode, seed: DefaultInitSeed}
	for _, opt := range opts {
		opt(&o)
	}
	if o.factory == nil {
		rng := rand.New(rand.NewSource(o.seed))
		o.factory = func(in, out, k int) (Operator, error) {
			return chebconv.New(in, out, k, chebconv.WithRand(rng))
		}
	}

	return o
}
