package chebconv

import (
	"math"

	"github.com/katalvlaran/gcrn/graph"
	"github.com/katalvlaran/gcrn/matrix"
)

// scaledLaplacian builds the rescaled symmetric Laplacian
// L̂ = (2/λmax)·(I − D^{-1/2}·A·D^{-1/2}) − I densely from the topology.
//
// Stage 1 (Accumulate): fold the edge list into a dense adjacency A;
// parallel edges sum their weights, self-loops land on the diagonal.
// Stage 2 (Normalize): compute out-degree row sums and their inverse
// square roots; isolated (or non-positive-degree) nodes get 0, so they
// contribute nothing instead of propagating NaN.
// Stage 3 (Assemble): write L̂ entrywise from the closed-form expression.
//
// Complexity: O(E + n²) time, O(n²) memory.
func scaledLaplacian(t *graph.Topology) (*matrix.Dense, error) {
	n := t.NumNodes()
	adj, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	// Stage 1: accumulate edge weights into the adjacency.
	var u, v int
	var w, cur float64
	for i := 0; i < t.NumEdges(); i++ {
		u, v = t.Edge(i)
		w = t.EdgeWeight(i)
		cur, _ = adj.At(u, v)    // safe: endpoints validated at construction
		_ = adj.Set(u, v, cur+w) // safe: same bounds
	}

	// Stage 2: inverse-sqrt degrees from row sums.
	dinv := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			cur, _ = adj.At(i, j)
			sum += cur
		}
		if sum > 0 {
			dinv[i] = 1.0 / math.Sqrt(sum)
		}
	}

	// Stage 3: L̂[i][j] = (2/λmax)·(δ_ij − dinv[i]·A[i][j]·dinv[j]) − δ_ij.
	lap, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	scale := 2.0 / lambdaMax
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cur, _ = adj.At(i, j)
			norm := dinv[i] * cur * dinv[j]
			val := -scale * norm
			if i == j {
				val += scale - 1
			}
			_ = lap.Set(i, j, val)
		}
	}

	return lap, nil
}
