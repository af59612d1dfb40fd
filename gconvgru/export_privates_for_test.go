// Test-bridge (white-box) for private gate kernels.
//
// Exposes the unexported gate computations to gconvgru_test ONLY, so gate
// ranges and independence can be verified without widening the prod API.
package gconvgru

// Gate computation bridges for white-box tests.
var (
	// UpdateGateForTest exposes (*GConvGRU).updateGate.
	UpdateGateForTest = (*GConvGRU).updateGate
	// ResetGateForTest exposes (*GConvGRU).resetGate.
	ResetGateForTest = (*GConvGRU).resetGate
	// CandidateStateForTest exposes (*GConvGRU).candidateState.
	CandidateStateForTest = (*GConvGRU).candidateState
	// SetHiddenStateForTest exposes (*GConvGRU).setHiddenState.
	SetHiddenStateForTest = (*GConvGRU).setHiddenState
)
