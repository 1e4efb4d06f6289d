package subspace

import (
	"errors"
	"sort"
)

// Sentinel errors for subspace construction.
var (
	// ErrBadNDim indicates a non-positive feature-vector length.
	ErrBadNDim = errors.New("subspace: ndim must be >= 1")

	// ErrAxisOutOfRange indicates a selected axis outside [0, ndim).
	ErrAxisOutOfRange = errors.New("subspace: axis index out of range")

	// ErrDuplicateAxis indicates the same axis was selected twice.
	ErrDuplicateAxis = errors.New("subspace: duplicate axis index")
)

// Subspace is an immutable, ordered selection of feature-vector axes.
//
// The zero value is not usable; construct via New or Full.
type Subspace struct {
	ndim int
	axes []int
}

// New builds a Subspace over feature vectors of length ndim, selecting the
// given axes. Axes must be unique and in [0, ndim); they are stored sorted
// ascending regardless of argument order. Selecting no axes is legal and
// yields an empty Subspace.
//
// Errors: ErrBadNDim, ErrAxisOutOfRange, ErrDuplicateAxis.
func New(ndim int, axes ...int) (*Subspace, error) {
	if ndim < 1 {
		return nil, ErrBadNDim
	}
	seen := make(map[int]struct{}, len(axes))
	sorted := make([]int, len(axes))
	for i, a := range axes {
		if a < 0 || a >= ndim {
			return nil, ErrAxisOutOfRange
		}
		if _, dup := seen[a]; dup {
			return nil, ErrDuplicateAxis
		}
		seen[a] = struct{}{}
		sorted[i] = a
	}
	sort.Ints(sorted)

	return &Subspace{ndim: ndim, axes: sorted}, nil
}

// Full builds a Subspace selecting every axis of an ndim-long feature vector.
//
// Errors: ErrBadNDim.
func Full(ndim int) (*Subspace, error) {
	if ndim < 1 {
		return nil, ErrBadNDim
	}
	axes := make([]int, ndim)
	for i := range axes {
		axes[i] = i
	}

	return &Subspace{ndim: ndim, axes: axes}, nil
}

// NAxes returns the number of selected axes.
func (s *Subspace) NAxes() int { return len(s.axes) }

// Axis returns the i-th selected feature index, 0 <= i < NAxes().
// Indices outside that range are a programmer error and panic.
func (s *Subspace) Axis(i int) int { return s.axes[i] }

// NDim returns the required full feature-vector length.
func (s *Subspace) NDim() int { return s.ndim }
