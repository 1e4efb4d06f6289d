// Package kernel: core contracts and flat-parameter helpers.
// This file declares the Kernel interface, the Metric and Subspace
// collaborator contracts consumed by the leaf families, and the
// Parameters/SetParameters convenience helpers used by optimizers.

package kernel

// Kernel is a pairwise covariance function with a differentiable flat
// hyperparameter vector.
//
// Every node — primitive family or Sum/Product composition — satisfies the
// same six methods, so a GP engine treats an arbitrarily deep expression
// exactly like a single kernel. Size and NDim are fixed for the lifetime of
// a node; the only mutable state is the parameter values behind SetParameter.
type Kernel interface {
	// Value returns the pairwise covariance contribution between two
	// feature vectors of length NDim(). It has no side effects.
	Value(x1, x2 []float64) (float64, error)

	// Gradient writes Size() partial derivatives of Value with respect to
	// the flat parameter vector into grad, in Parameter-index order.
	// grad must have length exactly Size(); only grad is mutated.
	Gradient(x1, x2, grad []float64) error

	// Size returns the total parameter count of the subtree rooted here.
	Size() int

	// NDim returns the required feature-vector length.
	NDim() int

	// Parameter returns the i-th entry of the flat parameter vector,
	// 0 <= i < Size().
	Parameter(i int) (float64, error)

	// SetParameter replaces the i-th entry of the flat parameter vector.
	SetParameter(i int, v float64) error
}

// Metric is the squared-distance collaborator consumed by stationary
// kernels. It shares the Kernel addressing contract; Value returns r2 and
// Gradient writes ∂r2/∂θ for the metric's own parameters.
//
// The metric package provides Isotropic and Axes implementations.
type Metric interface {
	Value(x1, x2 []float64) (float64, error)
	Gradient(x1, x2, grad []float64) error
	Size() int
	NDim() int
	Parameter(i int) (float64, error)
	SetParameter(i int, v float64) error
}

// Subspace is the axis-selection collaborator consumed by axis kernels:
// an ordered list of feature indices with no tunable parameters.
//
// The subspace package provides the canonical implementation.
type Subspace interface {
	// NAxes returns the number of selected axes.
	NAxes() int
	// Axis returns the i-th selected feature index, 0 <= i < NAxes().
	Axis(i int) int
	// NDim returns the required full feature-vector length.
	NDim() int
}

// Parameters collects the full flat parameter vector of k into a new slice
// of length k.Size(). Convenience for optimizers that snapshot state.
func Parameters(k Kernel) []float64 {
	out := make([]float64, k.Size())
	for i := range out {
		// Parameter cannot fail for i < Size().
		out[i], _ = k.Parameter(i)
	}

	return out
}

// SetParameters writes vals into k's flat parameter vector. vals must have
// length exactly k.Size().
//
// Errors: ErrParamCount, plus any validation error of the receiving node
// (e.g. metric.ErrBadScale); entries before the failing index remain set.
func SetParameters(k Kernel, vals []float64) error {
	if len(vals) != k.Size() {
		return ErrParamCount
	}
	for i, v := range vals {
		if err := k.SetParameter(i, v); err != nil {
			return err
		}
	}

	return nil
}

// checkPair validates that both feature vectors have length ndim.
func checkPair(ndim int, x1, x2 []float64) error {
	if len(x1) != ndim || len(x2) != ndim {
		return ErrDimensionMismatch
	}

	return nil
}
