package chebconv

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gcrn/graph"
	"github.com/katalvlaran/gcrn/matrix"
)

// ChebConv is a K-order Chebyshev spectral graph convolution with
// learnable per-order weights and a bias vector.
//
// The operator owns its parameters exclusively. They may be mutated
// between forward calls through Parameters() (external training), never
// concurrently with a forward call; Forward itself is read-only and pure.
type ChebConv struct {
	inChannels  int // expected feature width of Forward inputs
	outChannels int // feature width of Forward outputs
	k           int // Chebyshev filter order (receptive-field radius)

	weights []*matrix.Dense // k matrices, each inChannels×outChannels
	bias    []float64       // outChannels entries, zero-initialized
}

// New constructs a ChebConv with Glorot/uniform-initialized weights and a
// zero bias.
//
// Stage 1 (Validate): channel widths and K must be positive.
// Stage 2 (Prepare): gather options, derive the Glorot bound
// √(6/(in+out)).
// Stage 3 (Initialize): draw each of the K weight matrices uniformly from
// (-bound, bound); leave the bias at zero.
//
// Errors:
//   - ErrBadChannels   — inChannels <= 0 or outChannels <= 0.
//   - ErrBadFilterSize — k <= 0.
//
// Complexity: O(K·in·out) time and memory.
func New(inChannels, outChannels, k int, opts ...Option) (*ChebConv, error) {
	// Stage 1: validate configuration eagerly.
	if inChannels <= 0 || outChannels <= 0 {
		return nil, ErrBadChannels
	}
	if k <= 0 {
		return nil, ErrBadFilterSize
	}

	// Stage 2: options and the Glorot bound.
	o := gatherOptions(opts...)
	bound := math.Sqrt(6.0 / float64(inChannels+outChannels))

	// Stage 3: draw weights, keep bias at zero.
	c := &ChebConv{
		inChannels:  inChannels,
		outChannels: outChannels,
		k:           k,
		weights:     make([]*matrix.Dense, k),
		bias:        make([]float64, outChannels),
	}
	for order := 0; order < k; order++ {
		w, err := matrix.NewDense(inChannels, outChannels)
		if err != nil {
			return nil, err
		}
		for i := 0; i < inChannels; i++ {
			for j := 0; j < outChannels; j++ {
				// Uniform in (-bound, bound)
				_ = w.Set(i, j, (2*o.rng.Float64()-1)*bound)
			}
		}
		c.weights[order] = w
	}

	return c, nil
}

// InChannels returns the expected input feature width.
func (c *ChebConv) InChannels() int { return c.inChannels }

// OutChannels returns the output feature width.
func (c *ChebConv) OutChannels() int { return c.outChannels }

// FilterSize returns the Chebyshev order K.
func (c *ChebConv) FilterSize() int { return c.k }

// Forward applies the filter to node features x over topology t and
// returns a fresh n×outChannels matrix.
//
// Stage 1 (Validate): non-nil inputs; x must be n×inChannels where n is
// the topology's node count.
// Stage 2 (Prepare): build the rescaled Laplacian L̂.
// Stage 3 (Execute): run the Chebyshev recursion, accumulating
// Σ T_k(L̂)x·W_k, then broadcast the bias.
//
// Errors:
//   - ErrNilTopology              — t is nil.
//   - matrix.ErrNilMatrix         — x is nil.
//   - ErrShapeMismatch (wrapped with the offending dimensions) — x
//     disagrees with the node count or the configured input channels.
//
// Complexity: O(K·n²·c) time, O(n²) memory.
func (c *ChebConv) Forward(x matrix.Matrix, t *graph.Topology) (*matrix.Dense, error) {
	// Stage 1: validate inputs.
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("chebconv: %w", err)
	}
	if t == nil {
		return nil, ErrNilTopology
	}
	if x.Rows() != t.NumNodes() || x.Cols() != c.inChannels {
		return nil, fmt.Errorf("chebconv: got %dx%d features, want %dx%d: %w",
			x.Rows(), x.Cols(), t.NumNodes(), c.inChannels, ErrShapeMismatch)
	}

	// Stage 2: the spectral operator.
	lap, err := scaledLaplacian(t)
	if err != nil {
		return nil, err
	}

	// Stage 3: Chebyshev recursion with running accumulation.
	// T₀x = x
	tPrev := x
	out, err := matrix.Mul(tPrev, c.weights[0])
	if err != nil {
		return nil, err
	}

	var tCur *matrix.Dense
	if c.k > 1 {
		// T₁x = L̂x
		tCur, err = matrix.Mul(lap, tPrev)
		if err != nil {
			return nil, err
		}
		term, err := matrix.Mul(tCur, c.weights[1])
		if err != nil {
			return nil, err
		}
		out, err = matrix.Add(out, term)
		if err != nil {
			return nil, err
		}
	}

	for order := 2; order < c.k; order++ {
		// T_k x = 2·L̂·T_{k-1}x − T_{k-2}x
		twice, err := matrix.Mul(lap, tCur)
		if err != nil {
			return nil, err
		}
		twice, err = matrix.Scale(twice, 2)
		if err != nil {
			return nil, err
		}
		tNext, err := matrix.Sub(twice, tPrev)
		if err != nil {
			return nil, err
		}

		term, err := matrix.Mul(tNext, c.weights[order])
		if err != nil {
			return nil, err
		}
		out, err = matrix.Add(out, term)
		if err != nil {
			return nil, err
		}

		tPrev, tCur = tCur, tNext
	}

	return matrix.BroadcastAddRow(out, c.bias)
}

// Parameters returns the learnable tensors of the operator: the K weight
// matrices followed by a 1×outChannels view of the bias. The returned
// matrices alias the live parameters so an external optimizer can update
// them in place; callers must serialize such updates against Forward.
func (c *ChebConv) Parameters() []*matrix.Dense {
	params := make([]*matrix.Dense, 0, c.k+1)
	params = append(params, c.weights...)
	params = append(params, c.biasView())

	return params
}

// biasView materializes the bias as a 1×outChannels Dense sharing the
// underlying slice.
func (c *ChebConv) biasView() *matrix.Dense {
	view, _ := matrix.NewDenseOver(1, c.outChannels, c.bias) // safe: lengths agree by construction

	return view
}
