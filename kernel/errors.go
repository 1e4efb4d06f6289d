package kernel

import "errors"

// Sentinel errors for kernel construction, evaluation, and parameter
// addressing. All public entry points return these instead of panicking;
// callers match them via errors.Is.
var (
	// ErrNilKernel indicates a nil Kernel operand passed to an operator constructor.
	ErrNilKernel = errors.New("kernel: nil kernel operand")

	// ErrNilMetric indicates a nil Metric passed to a stationary constructor.
	ErrNilMetric = errors.New("kernel: metric is nil")

	// ErrNilSubspace indicates a nil Subspace passed to an axis constructor.
	ErrNilSubspace = errors.New("kernel: subspace is nil")

	// ErrNilFormula indicates a nil formula strategy passed to a family constructor.
	ErrNilFormula = errors.New("kernel: formula is nil")

	// ErrNDimMismatch indicates operator children that disagree on ndim.
	ErrNDimMismatch = errors.New("kernel: operand ndim mismatch")

	// ErrParamCount indicates an initial hyperparameter slice whose length
	// differs from the formula's declared count.
	ErrParamCount = errors.New("kernel: hyperparameter count mismatch")

	// ErrDimensionMismatch indicates a feature vector whose length differs
	// from the kernel's ndim.
	ErrDimensionMismatch = errors.New("kernel: feature vector length mismatch")

	// ErrGradientLength indicates a gradient buffer whose length differs
	// from the kernel's Size().
	ErrGradientLength = errors.New("kernel: gradient buffer length mismatch")

	// ErrIndexOutOfRange indicates a parameter index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("kernel: parameter index out of range")

	// ErrNoKernels indicates Add or Mul was called with no operands.
	ErrNoKernels = errors.New("kernel: at least one kernel required")
)
