// Package gconvgru implements the Chebyshev graph-convolutional gated
// recurrent unit cell (GConvGRU) for sequences of signals on a fixed
// graph, after Seo et al., "Structured Sequence Modeling with Graph
// Convolutional Recurrent Networks" (https://arxiv.org/abs/1612.07659).
//
// 🚀 What is GConvGRU?
//
//	A recurrent cell whose affine maps are graph convolutions: at every
//	time step it fuses spatial structure (who neighbors whom) with
//	temporal memory (the hidden state) through three gates.
//
//	  Z   = σ( conv_x_z(X) + conv_h_z(H) )        update gate
//	  R   = σ( conv_x_r(X) + conv_h_r(H) )        reset gate
//	  H~  = tanh( conv_x_h(X) + conv_h_h(H ⊙ R) ) candidate state
//	  H'  = H ⊙ tanh(H~)                          next hidden state
//
//	The six convolutions are independent K-order Chebyshev filters, each
//	with its own learnable parameters; the cell owns them exclusively.
//
// ✨ Key properties:
//   - stateless between calls: the caller carries H; a nil H means the
//     zero matrix (numNodes × outChannels)
//   - pure forward pass: fixed parameters + fixed inputs ⇒ bit-identical output
//   - Z and R are computed from the same inputs and are mutually independent
//   - shape errors surface from the convolution operators, never silently
//
// ⚙️ Combination modes — read this before training:
//
//	The default CombineHadamard mode reproduces the reference GConvGRU
//	implementation literally: the new hidden state is H ⊙ tanh(H~), and
//	the update gate Z, although computed, does not enter the combination.
//	That formula diverges from the textbook GRU interpolation
//	Z ⊙ H + (1−Z) ⊙ H~, but matches what existing trained parameters
//	for the reference cell expect. Pick CombineConvex via
//	WithCombineMode to get the textbook behavior instead; under it Z is
//	consumed. The divergence is deliberate and documented here so nobody
//	"fixes" it silently.
//
//	Note a consequence of the default mode: a zero (or omitted) previous
//	hidden state yields a zero next state, so a model driven purely by
//	inputs must either seed H or use CombineConvex.
//
// ⚙️ Usage:
//
//	cell, err := gconvgru.New(2, 3, 2, 4)    // in=2, out=3, K=2, nodes=4
//	topo, _ := graph.FullyConnected(4)
//	h, err := cell.Forward(x1, topo, nil)    // H defaults to zeros
//	h, err = cell.Forward(x2, topo, h)       // caller carries the state
//
// Concurrency: a forward call takes no locks and mutates nothing; an
// external optimizer may rewrite the tensors from Parameters() between
// calls, but the caller must serialize those updates against Forward.
package gconvgru
