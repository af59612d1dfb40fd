// Package graph defines the static graph topology consumed by the
// spectral convolution and recurrence packages of gcrn.
//
// A Topology is an immutable coordinate-format (COO) edge index: two
// parallel endpoint slices plus an optional per-edge weight vector.
// It deliberately stays a pure data carrier — no adjacency bookkeeping,
// no mutation after construction, no structural validation beyond node
// range and slice-length coherence. Duplicate edges and self-loops pass
// through untouched; what they mean is the consumer's contract (for the
// spectral normalizer in chebconv, parallel edges simply accumulate
// weight).
//
// Edges are directed as given. Undirected graphs are represented the
// usual COO way, by listing both (u,v) and (v,u); the FullyConnected and
// Grid builders do exactly that.
//
// Construction is O(E); all accessors are O(1).
package graph
