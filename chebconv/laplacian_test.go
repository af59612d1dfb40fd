package chebconv_test

import (
	"testing"

	"github.com/katalvlaran/gcrn/chebconv"
	"github.com/katalvlaran/gcrn/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertLaplacian compares the assembled operator against expected values.
func assertLaplacian(t *testing.T, want [][]float64, topo *graph.Topology) {
	t.Helper()
	lap, err := chebconv.ScaledLaplacianForTest(topo)
	require.NoError(t, err)
	require.Equal(t, len(want), lap.Rows(), "operator is square over the node count")
	for i := range want {
		for j := range want[i] {
			v, err := lap.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want[i][j], v, 1e-12, "L̂[%d][%d]", i, j)
		}
	}
}

// TestScaledLaplacian_Edgeless verifies the operator vanishes on a graph
// with no edges (zero inverse-sqrt degrees, no NaN).
func TestScaledLaplacian_Edgeless(t *testing.T) {
	topo, err := graph.NewTopology(2, nil, nil)
	require.NoError(t, err)

	assertLaplacian(t, [][]float64{{0, 0}, {0, 0}}, topo)
}

// TestScaledLaplacian_TwoNodePath verifies L̂ = -D^{-1/2}AD^{-1/2} on the
// symmetric two-node path: unit degrees give exactly -A.
func TestScaledLaplacian_TwoNodePath(t *testing.T) {
	topo, err := graph.NewTopology(2, []int{0, 1}, []int{1, 0})
	require.NoError(t, err)

	assertLaplacian(t, [][]float64{{0, -1}, {-1, 0}}, topo)
}

// TestScaledLaplacian_Triangle verifies the clique on 3 nodes: every
// degree is 2, so off-diagonals are -1/2 and the diagonal is zero.
func TestScaledLaplacian_Triangle(t *testing.T) {
	topo, err := graph.FullyConnected(3)
	require.NoError(t, err)

	assertLaplacian(t, [][]float64{
		{0, -0.5, -0.5},
		{-0.5, 0, -0.5},
		{-0.5, -0.5, 0},
	}, topo)
}

// TestScaledLaplacian_WeightedAccumulation verifies that parallel edges
// accumulate weight before normalization: two (0→1) edges of weight 1 and
// 3 behave like a single edge of weight 4.
func TestScaledLaplacian_WeightedAccumulation(t *testing.T) {
	dup, err := graph.NewTopology(2,
		[]int{0, 0, 1}, []int{1, 1, 0},
		graph.WithWeights([]float64{1, 3, 4}))
	require.NoError(t, err)

	single, err := graph.NewTopology(2,
		[]int{0, 1}, []int{1, 0},
		graph.WithWeights([]float64{4, 4}))
	require.NoError(t, err)

	lapDup, err := chebconv.ScaledLaplacianForTest(dup)
	require.NoError(t, err)
	lapSingle, err := chebconv.ScaledLaplacianForTest(single)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			a, _ := lapDup.At(i, j)
			b, _ := lapSingle.At(i, j)
			assert.InDelta(t, b, a, 1e-12, "accumulated weights must match a single edge at (%d,%d)", i, j)
		}
	}
}

// TestScaledLaplacian_IsolatedNodeRow verifies an isolated node yields an
// all-zero row and column instead of NaN.
func TestScaledLaplacian_IsolatedNodeRow(t *testing.T) {
	// Nodes 0 and 1 connected; node 2 isolated.
	topo, err := graph.NewTopology(3, []int{0, 1}, []int{1, 0})
	require.NoError(t, err)

	assertLaplacian(t, [][]float64{
		{0, -1, 0},
		{-1, 0, 0},
		{0, 0, 0},
	}, topo)
}
