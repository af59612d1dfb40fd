package gconvgru

import (
	"github.com/katalvlaran/gcrn/graph"
	"github.com/katalvlaran/gcrn/matrix"
)

// GConvGRU is the Chebyshev graph-convolutional GRU cell.
//
// It bundles the fixed configuration (channel widths, filter order, node
// count) with the six convolution operators it owns — one pair per gate,
// consuming the current input and the previous hidden state respectively.
// The cell holds no per-call state: the hidden state travels with the
// caller.
type GConvGRU struct {
	inChannels  int // feature width of X inputs
	outChannels int // hidden/output feature width
	k           int // Chebyshev filter order of every operator
	numNodes    int // fixed graph size

	mode CombineMode // hidden-state combination formula

	convXZ, convHZ Operator // update gate: input and hidden branches
	convXR, convHR Operator // reset gate: input and hidden branches
	convXH, convHH Operator // candidate state: input and hidden branches
}

// New constructs a GConvGRU cell with six independent convolution
// operators, each with its own learnable parameters.
//
// Stage 1 (Validate): channel widths, filter order, node count, and the
// combination mode must be valid.
// Stage 2 (Prepare): gather options; the default factory builds ChebConv
// operators off one shared, seeded random source so all six start with
// distinct yet reproducible weights.
// Stage 3 (Initialize): build the input-branch operators with
// inChannels→outChannels and the hidden-branch operators with
// outChannels→outChannels, all of order K.
//
// Errors:
//   - ErrBadChannels    — inChannels <= 0 or outChannels <= 0.
//   - ErrBadFilterSize  — k <= 0.
//   - ErrBadNodeCount   — numNodes <= 0.
//   - ErrBadCombineMode — unknown CombineMode.
//   - ErrNilOperator    — a factory returned (nil, nil).
//   - any error a factory returns, propagated unchanged.
//
// Complexity: O(K·(in+out)·out) time and memory for the default factory.
func New(inChannels, outChannels, k, numNodes int, opts ...Option) (*GConvGRU, error) {
	// Stage 1: validate configuration eagerly.
	if inChannels <= 0 || outChannels <= 0 {
		return nil, ErrBadChannels
	}
	if k <= 0 {
		return nil, ErrBadFilterSize
	}
	if numNodes <= 0 {
		return nil, ErrBadNodeCount
	}

	// Stage 2: options.
	o := gatherOptions(opts...)
	if o.mode != CombineHadamard && o.mode != CombineConvex {
		return nil, ErrBadCombineMode
	}

	// Stage 3: six operators, input branches first within each gate.
	c := &GConvGRU{
		inChannels:  inChannels,
		outChannels: outChannels,
		k:           k,
		numNodes:    numNodes,
		mode:        o.mode,
	}
	for _, slot := range []struct {
		op *Operator
		in int
	}{
		{&c.convXZ, inChannels}, {&c.convHZ, outChannels},
		{&c.convXR, inChannels}, {&c.convHR, outChannels},
		{&c.convXH, inChannels}, {&c.convHH, outChannels},
	} {
		op, err := o.factory(slot.in, outChannels, k)
		if err != nil {
			return nil, err
		}
		if op == nil {
			return nil, ErrNilOperator
		}
		*slot.op = op
	}

	return c, nil
}

// InChannels returns the input feature width.
func (c *GConvGRU) InChannels() int { return c.inChannels }

// OutChannels returns the hidden/output feature width.
func (c *GConvGRU) OutChannels() int { return c.outChannels }

// FilterSize returns the Chebyshev filter order K.
func (c *GConvGRU) FilterSize() int { return c.k }

// NumNodes returns the fixed graph size the cell was configured for.
func (c *GConvGRU) NumNodes() int { return c.numNodes }

// Mode returns the hidden-state combination mode.
func (c *GConvGRU) Mode() CombineMode { return c.mode }

// Forward advances the cell one time step: it consumes node features x
// (numNodes × inChannels), the static topology, and the previous hidden
// state h, and returns the next hidden state (numNodes × outChannels).
//
// A nil h stands for the zero matrix of shape numNodes × outChannels —
// calling Forward with h == nil and with an explicit zero matrix is
// equivalent.
//
// The cell raises no errors of its own beyond propagation: any shape
// disagreement between x, h, the topology, and the configured widths
// surfaces from the convolution operators unchanged. The call is pure —
// single-shot, no retries, no caching, no mutation of x, h, or the
// parameters.
//
// Complexity: six operator forwards plus O(n·out) elementwise work.
func (c *GConvGRU) Forward(x matrix.Matrix, t *graph.Topology, h matrix.Matrix) (*matrix.Dense, error) {
	// Resolve the hidden state first; both gates depend on it.
	hPrev, err := c.setHiddenState(h)
	if err != nil {
		return nil, err
	}

	// Update and reset gates: same inputs, independent parameters, no
	// data dependency between them.
	z, err := c.updateGate(x, t, hPrev)
	if err != nil {
		return nil, err
	}
	r, err := c.resetGate(x, t, hPrev)
	if err != nil {
		return nil, err
	}

	// Candidate state: the reset gate damps the previous hidden state
	// before it is convolved, letting the cell drop stale spatial context
	// per node and channel.
	cand, err := c.candidateState(x, t, hPrev, r)
	if err != nil {
		return nil, err
	}

	return c.combine(hPrev, z, cand)
}

// setHiddenState substitutes the zero matrix for an absent hidden state.
// The default depends only on the configured node count and output width.
func (c *GConvGRU) setHiddenState(h matrix.Matrix) (matrix.Matrix, error) {
	if h == nil {
		return matrix.NewDense(c.numNodes, c.outChannels)
	}
	if d, ok := h.(*matrix.Dense); ok && d == nil {
		return matrix.NewDense(c.numNodes, c.outChannels)
	}

	return h, nil
}

// updateGate computes Z = σ(conv_x_z(X) + conv_h_z(H)).
func (c *GConvGRU) updateGate(x matrix.Matrix, t *graph.Topology, h matrix.Matrix) (*matrix.Dense, error) {
	return c.gate(c.convXZ, c.convHZ, x, t, h)
}

// resetGate computes R = σ(conv_x_r(X) + conv_h_r(H)).
func (c *GConvGRU) resetGate(x matrix.Matrix, t *graph.Topology, h matrix.Matrix) (*matrix.Dense, error) {
	return c.gate(c.convXR, c.convHR, x, t, h)
}

// gate is the shared two-branch pattern behind the update and reset
// gates: convolve each branch, sum, squash through the sigmoid.
func (c *GConvGRU) gate(convX, convH Operator, x matrix.Matrix, t *graph.Topology, h matrix.Matrix) (*matrix.Dense, error) {
	fromX, err := convX.Forward(x, t)
	if err != nil {
		return nil, err
	}
	fromH, err := convH.Forward(h, t)
	if err != nil {
		return nil, err
	}
	sum, err := matrix.Add(fromX, fromH)
	if err != nil {
		return nil, err
	}

	return matrix.Sigmoid(sum)
}

// candidateState computes H~ = tanh(conv_x_h(X) + conv_h_h(H ⊙ R)).
func (c *GConvGRU) candidateState(x matrix.Matrix, t *graph.Topology, h matrix.Matrix, r *matrix.Dense) (*matrix.Dense, error) {
	fromX, err := c.convXH.Forward(x, t)
	if err != nil {
		return nil, err
	}
	damped, err := matrix.Hadamard(h, r)
	if err != nil {
		return nil, err
	}
	fromH, err := c.convHH.Forward(damped, t)
	if err != nil {
		return nil, err
	}
	sum, err := matrix.Add(fromX, fromH)
	if err != nil {
		return nil, err
	}

	return matrix.Tanh(sum)
}

// combine merges the previous hidden state, the update gate, and the
// candidate into the next hidden state according to the configured mode.
func (c *GConvGRU) combine(h matrix.Matrix, z, cand *matrix.Dense) (*matrix.Dense, error) {
	switch c.mode {
	case CombineHadamard:
		// Reference formulation: H' = H ⊙ tanh(H~); Z stays unused.
		squashed, err := matrix.Tanh(cand)
		if err != nil {
			return nil, err
		}

		return matrix.Hadamard(h, squashed)

	case CombineConvex:
		// Textbook GRU: H' = Z ⊙ H + (1−Z) ⊙ H~.
		keep, err := matrix.Hadamard(z, h)
		if err != nil {
			return nil, err
		}
		oneMinusZ, err := matrix.Apply(z, func(v float64) float64 { return 1 - v })
		if err != nil {
			return nil, err
		}
		take, err := matrix.Hadamard(oneMinusZ, cand)
		if err != nil {
			return nil, err
		}

		return matrix.Add(keep, take)
	}

	return nil, ErrBadCombineMode
}

// Parameters aggregates the learnable tensors of all six operators, in
// gate order (update, reset, candidate; input branch before hidden
// branch). Operators that do not implement ParameterSource contribute
// nothing. The returned matrices alias the live parameters; callers must
// serialize optimizer writes against Forward.
func (c *GConvGRU) Parameters() []*matrix.Dense {
	var params []*matrix.Dense
	for _, op := range []Operator{c.convXZ, c.convHZ, c.convXR, c.convHR, c.convXH, c.convHH} {
		if src, ok := op.(ParameterSource); ok {
			params = append(params, src.Parameters()...)
		}
	}

	return params
}
