// SPDX-License-Identifier: MIT

package metric

import "errors"

// Sentinel errors for metric construction and evaluation. Callers match them
// via errors.Is; no metric operation panics on user-triggered conditions.
var (
	// ErrNilSubspace indicates a nil *subspace.Subspace was passed to a constructor.
	ErrNilSubspace = errors.New("metric: subspace is nil")

	// ErrBadScale indicates a non-positive or non-finite squared length scale.
	ErrBadScale = errors.New("metric: squared length scale must be positive and finite")

	// ErrScaleCount indicates the per-axis scale slice length does not match
	// the number of selected axes.
	ErrScaleCount = errors.New("metric: scale count must equal number of selected axes")

	// ErrDimensionMismatch indicates a feature vector whose length differs
	// from the metric's ndim.
	ErrDimensionMismatch = errors.New("metric: feature vector length mismatch")

	// ErrGradientLength indicates a gradient buffer whose length differs
	// from the metric's parameter count.
	ErrGradientLength = errors.New("metric: gradient buffer length mismatch")

	// ErrIndexOutOfRange indicates a parameter index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("metric: parameter index out of range")
)
