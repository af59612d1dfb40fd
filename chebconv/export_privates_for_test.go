// Test-bridge (white-box) for private helpers.
//
// Exposes the unexported spectral normalizer to chebconv_test ONLY, so the
// Laplacian assembly can be verified directly without widening the prod API.
package chebconv

// ScaledLaplacianForTest exposes scaledLaplacian for white-box tests.
var ScaledLaplacianForTest = scaledLaplacian
