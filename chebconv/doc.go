// Package chebconv implements the Chebyshev spectral graph convolution
// (ChebConv): a K-order polynomial filter over the symmetrically
// normalized, rescaled graph Laplacian.
//
// 🚀 What is ChebConv?
//
//	Given node features X (n×in) and a fixed topology, ChebConv computes
//
//	  out = Σ_{k=0}^{K-1} T_k(L̂)·X·W_k + b
//
//	where T_k are Chebyshev polynomials produced by the recursion
//	T₀(L̂)X = X, T₁(L̂)X = L̂X, T_k(L̂)X = 2·L̂·T_{k-1}(L̂)X − T_{k-2}(L̂)X,
//	and L̂ = (2/λmax)·L_sym − I is the rescaled symmetric Laplacian with
//	the customary λmax := 2 bound. K controls the receptive-field radius:
//	order k mixes information from nodes up to k hops away.
//
// ✨ Key properties:
//   - Glorot/uniform weight init, zero bias, seeded and reproducible
//   - Forward is a pure function: no internal randomness, no caching
//   - isolated nodes get zero inverse-sqrt degree (no NaN leakage)
//   - parallel edges accumulate weight before normalization
//   - learnable parameters enumerable via Parameters() for external optimizers
//
// ⚙️ Usage:
//
//	conv, err := chebconv.New(2, 3, 2)          // in=2, out=3, K=2
//	topo, _ := graph.FullyConnected(4)
//	out, err := conv.Forward(x, topo)           // out is 4×3
//
// Parameter updates (training) are an external concern: an optimizer may
// mutate the tensors returned by Parameters() between forward calls, but
// never concurrently with one — the operator does no internal locking.
//
// Performance: Forward is O(K·n²·c) time against a dense n×n operator,
// O(n²) memory for the Laplacian. Dense storage is deliberate: gcrn
// targets the small, fixed sensor-graph regime.
package chebconv
