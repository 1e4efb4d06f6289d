package kernel_test

import (
	"testing"

	"github.com/katalvlaran/covfn/kernel"
	"github.com/katalvlaran/covfn/metric"
	"github.com/katalvlaran/covfn/subspace"
	"github.com/stretchr/testify/require"
)

// fdTol bounds the disagreement between analytic gradients and central
// finite differences with step fdStep for the smooth kernels under test.
const (
	fdTol  = 1e-5
	fdStep = 1e-6
)

// fullSub returns a Full subspace of the given ndim, failing the test on error.
func fullSub(t *testing.T, ndim int) *subspace.Subspace {
	t.Helper()
	sub, err := subspace.Full(ndim)
	require.NoError(t, err)

	return sub
}

// isoMetric returns an isotropic metric over all ndim axes.
func isoMetric(t *testing.T, ndim int, scale float64) *metric.Isotropic {
	t.Helper()
	m, err := metric.NewIsotropic(fullSub(t, ndim), scale)
	require.NoError(t, err)

	return m
}

// fdGradient approximates k's gradient at (x1, x2) by central finite
// differences over every flat parameter, restoring each parameter afterwards.
func fdGradient(t *testing.T, k kernel.Kernel, x1, x2 []float64) []float64 {
	t.Helper()
	out := make([]float64, k.Size())
	for i := range out {
		v, err := k.Parameter(i)
		require.NoError(t, err)

		require.NoError(t, k.SetParameter(i, v+fdStep))
		hi, err := k.Value(x1, x2)
		require.NoError(t, err)

		require.NoError(t, k.SetParameter(i, v-fdStep))
		lo, err := k.Value(x1, x2)
		require.NoError(t, err)

		require.NoError(t, k.SetParameter(i, v))
		out[i] = (hi - lo) / (2 * fdStep)
	}

	return out
}

// assertGradientMatchesFD checks k's analytic gradient against fdGradient.
func assertGradientMatchesFD(t *testing.T, k kernel.Kernel, x1, x2 []float64) {
	t.Helper()
	grad := make([]float64, k.Size())
	require.NoError(t, k.Gradient(x1, x2, grad))

	want := fdGradient(t, k, x1, x2)
	for i := range grad {
		require.InDelta(t, want[i], grad[i], fdTol,
			"parameter %d: analytic %v vs finite-difference %v", i, grad[i], want[i])
	}
}
