package gconvgru_test

import (
	"testing"

	"github.com/katalvlaran/gcrn/gconvgru"
	"github.com/katalvlaran/gcrn/graph"
	"github.com/katalvlaran/gcrn/matrix"
)

// benchmarkForward runs one cell forward per iteration on an n-node grid
// (rows×rows) with the given channel widths and filter order.
func benchmarkForward(b *testing.B, rows, in, out, k int) {
	nodes := rows * rows
	cell, err := gconvgru.New(in, out, k, nodes)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	topo, err := graph.Grid(rows, rows)
	if err != nil {
		b.Fatalf("Grid failed: %v", err)
	}
	x, err := matrix.NewDense(nodes, in)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	for i := 0; i < nodes; i++ {
		for j := 0; j < in; j++ {
			_ = x.Set(i, j, float64(i+j)) // predictable fill
		}
	}

	b.ResetTimer() // ignore setup time
	var h *matrix.Dense
	for i := 0; i < b.N; i++ {
		h, err = cell.Forward(x, topo, h)
		if err != nil {
			b.Fatalf("Forward failed: %v", err)
		}
	}
}

// BenchmarkForward_Small benchmarks a 16-node grid, narrow channels, K=2.
func BenchmarkForward_Small(b *testing.B) {
	benchmarkForward(b, 4, 2, 4, 2)
}

// BenchmarkForward_Medium benchmarks a 100-node grid, K=3.
func BenchmarkForward_Medium(b *testing.B) {
	benchmarkForward(b, 10, 4, 8, 3)
}

// BenchmarkForward_DeepFilter benchmarks a 64-node grid with a K=5 filter.
func BenchmarkForward_DeepFilter(b *testing.B) {
	benchmarkForward(b, 8, 4, 8, 5)
}
