// Package graph: Topology type, functional options, and sentinel errors.
package graph

import "errors"

// Sentinel errors for topology construction.
var (
	// ErrBadNodeCount indicates a non-positive node count.
	ErrBadNodeCount = errors.New("graph: node count must be > 0")

	// ErrEdgeLengthMismatch indicates src and dst slices of differing length.
	ErrEdgeLengthMismatch = errors.New("graph: src and dst must have the same length")

	// ErrNodeOutOfRange indicates an endpoint outside [0, numNodes).
	ErrNodeOutOfRange = errors.New("graph: edge endpoint out of node range")

	// ErrBadWeights indicates a weight vector whose length differs from the
	// edge count, or which contains NaN/Inf.
	ErrBadWeights = errors.New("graph: bad edge weight vector")

	// ErrBadGridShape indicates non-positive grid dimensions.
	ErrBadGridShape = errors.New("graph: grid dimensions must be > 0")
)

// DefaultEdgeWeight is the weight reported for every edge of an
// unweighted topology.
const DefaultEdgeWeight = 1.0

// Topology is an immutable COO edge index over a fixed node set.
//
// src[i] → dst[i] is the i-th directed edge; weight is either nil
// (unweighted ⇒ every edge weighs DefaultEdgeWeight) or has exactly one
// entry per edge. All fields are private: a Topology never changes after
// NewTopology returns, so consumers may cache anything derived from it.
type Topology struct {
	numNodes int       // fixed node count, vertices are 0..numNodes-1
	src, dst []int     // parallel endpoint slices, length == edge count
	weight   []float64 // optional per-edge weights; nil ⇒ unweighted
}

// Option configures topology construction.
type Option func(*Topology)

// WithWeights attaches per-edge weights to the topology.
// The slice is copied during construction; it must match the edge count
// and contain only finite values, or NewTopology returns ErrBadWeights.
func WithWeights(w []float64) Option {
	return func(t *Topology) { t.weight = w }
}

// NumNodes returns the fixed node count.
// Complexity: O(1).
func (t *Topology) NumNodes() int {
	return t.numNodes
}

// NumEdges returns the number of directed edges.
// Complexity: O(1).
func (t *Topology) NumEdges() int {
	return len(t.src)
}

// Weighted reports whether the topology carries explicit edge weights.
// Complexity: O(1).
func (t *Topology) Weighted() bool {
	return t.weight != nil
}

// Edge returns the endpoints of the i-th directed edge.
// The index must be in [0, NumEdges()); callers iterate with NumEdges.
// Complexity: O(1).
func (t *Topology) Edge(i int) (src, dst int) {
	return t.src[i], t.dst[i]
}

// EdgeWeight returns the weight of the i-th edge, DefaultEdgeWeight when
// the topology is unweighted.
// Complexity: O(1).
func (t *Topology) EdgeWeight(i int) float64 {
	if t.weight == nil {
		return DefaultEdgeWeight
	}

	return t.weight[i]
}
