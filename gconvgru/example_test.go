package gconvgru_test

import (
	"fmt"

	"github.com/katalvlaran/gcrn/gconvgru"
	"github.com/katalvlaran/gcrn/graph"
	"github.com/katalvlaran/gcrn/matrix"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleGConvGRU_sequence
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 2×2 sensor grid (4 nodes), each node emitting 2 readings per step.
//	The cell carries a 3-channel hidden state across 3 time steps; the
//	first step omits the hidden state, so it defaults to zeros.
//
// Use case:
//
//	Any fixed-topology sequence model: traffic sensors, weather meshes,
//	smart-meter networks.
//
// Complexity: per step, six ChebConv forwards — O(K·n²·c).
func ExampleGConvGRU_sequence() {
	cell, err := gconvgru.New(2, 3, 2, 4, gconvgru.WithCombineMode(gconvgru.CombineConvex))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	topo, err := graph.Grid(2, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	var h *matrix.Dense
	for step := 0; step < 3; step++ {
		x, _ := matrix.NewDenseFromRows([][]float64{
			{1, 0}, {0, 1}, {1, 1}, {0, 0},
		})
		h, err = cell.Forward(x, topo, h)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("step %d: hidden state %dx%d\n", step, h.Rows(), h.Cols())
	}
	// Output:
	// step 0: hidden state 4x3
	// step 1: hidden state 4x3
	// step 2: hidden state 4x3
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleGConvGRU_zeroBoundary
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	All-zero input, omitted hidden state, untrained (zero) biases. Under
//	the reference combination H' = H ⊙ tanh(H~) the result is exactly
//	zero — a handy smoke test for parameter plumbing.
func ExampleGConvGRU_zeroBoundary() {
	cell, err := gconvgru.New(2, 3, 2, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	topo, err := graph.FullyConnected(4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	x, _ := matrix.NewDense(4, 2) // all zeros
	h, err := cell.Forward(x, topo, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	v, _ := h.At(0, 0)
	fmt.Printf("h[0][0] = %v\n", v)
	// Output:
	// h[0][0] = 0
}
