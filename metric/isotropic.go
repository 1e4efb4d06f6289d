// SPDX-License-Identifier: MIT

package metric

import (
	"math"

	"github.com/katalvlaran/covfn/subspace"
)

// Isotropic is a squared-distance metric with a single shared squared length
// scale ℓ²:
//
//	r2(x1, x2) = Σⱼ (x1ⱼ − x2ⱼ)² / ℓ²
//
// summed over the axes selected by its subspace. It exposes exactly one
// tunable parameter, ℓ², at index 0.
type Isotropic struct {
	sub   *subspace.Subspace
	scale float64 // ℓ², strictly positive
}

// NewIsotropic builds an isotropic metric over the given subspace with
// squared length scale ℓ² = scale.
//
// Errors: ErrNilSubspace, ErrBadScale.
func NewIsotropic(sub *subspace.Subspace, scale float64) (*Isotropic, error) {
	if sub == nil {
		return nil, ErrNilSubspace
	}
	if !validScale(scale) {
		return nil, ErrBadScale
	}

	return &Isotropic{sub: sub, scale: scale}, nil
}

// Value returns the squared distance between x1 and x2.
//
// Errors: ErrDimensionMismatch.
func (m *Isotropic) Value(x1, x2 []float64) (float64, error) {
	if err := checkPair(m.sub.NDim(), x1, x2); err != nil {
		return 0, err
	}
	var r2 float64
	for i, n := 0, m.sub.NAxes(); i < n; i++ {
		j := m.sub.Axis(i)
		d := x1[j] - x2[j]
		r2 += d * d
	}

	return r2 / m.scale, nil
}

// Gradient writes ∂r2/∂ℓ² = −r2/ℓ² into grad[0].
//
// Errors: ErrDimensionMismatch, ErrGradientLength.
func (m *Isotropic) Gradient(x1, x2, grad []float64) error {
	if len(grad) != 1 {
		return ErrGradientLength
	}
	r2, err := m.Value(x1, x2)
	if err != nil {
		return err
	}
	grad[0] = -r2 / m.scale

	return nil
}

// Size returns the parameter count (always 1).
func (m *Isotropic) Size() int { return 1 }

// NDim returns the required feature-vector length.
func (m *Isotropic) NDim() int { return m.sub.NDim() }

// Parameter returns ℓ² for i == 0.
//
// Errors: ErrIndexOutOfRange.
func (m *Isotropic) Parameter(i int) (float64, error) {
	if i != 0 {
		return 0, ErrIndexOutOfRange
	}

	return m.scale, nil
}

// SetParameter replaces ℓ² for i == 0.
//
// Errors: ErrIndexOutOfRange, ErrBadScale.
func (m *Isotropic) SetParameter(i int, v float64) error {
	if i != 0 {
		return ErrIndexOutOfRange
	}
	if !validScale(v) {
		return ErrBadScale
	}
	m.scale = v

	return nil
}

// validScale reports whether v is a legal squared length scale.
func validScale(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// checkPair validates that both feature vectors have length ndim.
func checkPair(ndim int, x1, x2 []float64) error {
	if len(x1) != ndim || len(x2) != ndim {
		return ErrDimensionMismatch
	}

	return nil
}
