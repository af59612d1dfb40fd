package graph

import "math"

// NewTopology builds an immutable Topology over numNodes vertices from
// parallel endpoint slices.
//
// Stage 1 (Validate): node count, slice coherence, endpoint range, and —
// when WithWeights was given — weight length and finiteness.
// Stage 2 (Prepare): deep-copy all slices so later caller mutation cannot
// reach the topology.
// Stage 3 (Finalize): return the topology.
//
// An empty edge set is legal: a graph of isolated nodes is a valid input
// for spectral filters (the normalized operator is simply zero).
//
// Errors:
//   - ErrBadNodeCount        — numNodes <= 0.
//   - ErrEdgeLengthMismatch  — len(src) != len(dst).
//   - ErrNodeOutOfRange      — any endpoint outside [0, numNodes).
//   - ErrBadWeights          — weight length mismatch, or NaN/±Inf weight.
//
// Complexity: O(E) time and memory.
func NewTopology(numNodes int, src, dst []int, opts ...Option) (*Topology, error) {
	// Stage 1: validate the node count first; everything below depends on it.
	if numNodes <= 0 {
		return nil, ErrBadNodeCount
	}
	if len(src) != len(dst) {
		return nil, ErrEdgeLengthMismatch
	}

	// Gather options into a staging value before validating them.
	staged := Topology{numNodes: numNodes}
	for _, opt := range opts {
		opt(&staged)
	}

	// Validate endpoint ranges.
	for i := 0; i < len(src); i++ {
		if src[i] < 0 || src[i] >= numNodes || dst[i] < 0 || dst[i] >= numNodes {
			return nil, ErrNodeOutOfRange
		}
	}

	// Validate the optional weight vector.
	if staged.weight != nil {
		if len(staged.weight) != len(src) {
			return nil, ErrBadWeights
		}
		for _, w := range staged.weight {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, ErrBadWeights
			}
		}
	}

	// Stage 2: copy everything; the topology owns its storage.
	t := &Topology{
		numNodes: numNodes,
		src:      append([]int(nil), src...),
		dst:      append([]int(nil), dst...),
	}
	if staged.weight != nil {
		t.weight = append([]float64(nil), staged.weight...)
	}

	return t, nil
}

// FullyConnected returns the unweighted clique on n nodes: every ordered
// pair (u,v), u != v, appears as a directed edge, so the topology is
// symmetric by construction. Self-loops are not included.
//
// Errors: ErrBadNodeCount when n <= 0.
// Complexity: O(n²) time and memory.
func FullyConnected(n int) (*Topology, error) {
	if n <= 0 {
		return nil, ErrBadNodeCount
	}

	src := make([]int, 0, n*(n-1))
	dst := make([]int, 0, n*(n-1))
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			src = append(src, u)
			dst = append(dst, v)
		}
	}

	return NewTopology(n, src, dst)
}

// Grid returns the unweighted 4-neighbor lattice on rows×cols nodes.
// Node (r,c) has index r*cols + c; each orthogonal adjacency contributes
// both directed edges, keeping the topology symmetric.
//
// Errors: ErrBadGridShape when rows <= 0 or cols <= 0.
// Complexity: O(rows·cols) time and memory.
func Grid(rows, cols int) (*Topology, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadGridShape
	}

	var src, dst []int
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			// East neighbor
			if c+1 < cols {
				v := u + 1
				src = append(src, u, v)
				dst = append(dst, v, u)
			}
			// South neighbor
			if r+1 < rows {
				v := u + cols
				src = append(src, u, v)
				dst = append(dst, v, u)
			}
		}
	}

	return NewTopology(rows*cols, src, dst)
}
