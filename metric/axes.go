// SPDX-License-Identifier: MIT

package metric

import "github.com/katalvlaran/covfn/subspace"

// Axes is a squared-distance metric with one squared length scale per
// selected axis:
//
//	r2(x1, x2) = Σⱼ (x1ⱼ − x2ⱼ)² / ℓ²ⱼ
//
// Parameter i is the scale of the i-th selected axis, in the subspace's
// ascending axis order.
type Axes struct {
	sub    *subspace.Subspace
	scales []float64 // ℓ²ⱼ per selected axis, strictly positive
}

// NewAxes builds a per-axis metric over the given subspace. scales must hold
// exactly one positive squared length scale per selected axis; the slice is
// copied.
//
// Errors: ErrNilSubspace, ErrScaleCount, ErrBadScale.
func NewAxes(sub *subspace.Subspace, scales []float64) (*Axes, error) {
	if sub == nil {
		return nil, ErrNilSubspace
	}
	if len(scales) != sub.NAxes() {
		return nil, ErrScaleCount
	}
	own := make([]float64, len(scales))
	for i, s := range scales {
		if !validScale(s) {
			return nil, ErrBadScale
		}
		own[i] = s
	}

	return &Axes{sub: sub, scales: own}, nil
}

// Value returns the squared distance between x1 and x2.
//
// Errors: ErrDimensionMismatch.
func (m *Axes) Value(x1, x2 []float64) (float64, error) {
	if err := checkPair(m.sub.NDim(), x1, x2); err != nil {
		return 0, err
	}
	var r2 float64
	for i, n := 0, m.sub.NAxes(); i < n; i++ {
		j := m.sub.Axis(i)
		d := x1[j] - x2[j]
		r2 += d * d / m.scales[i]
	}

	return r2, nil
}

// Gradient writes ∂r2/∂ℓ²ᵢ = −dᵢ²/ℓ²ᵢ² into grad[i] for every selected axis.
//
// Errors: ErrDimensionMismatch, ErrGradientLength.
func (m *Axes) Gradient(x1, x2, grad []float64) error {
	if len(grad) != len(m.scales) {
		return ErrGradientLength
	}
	if err := checkPair(m.sub.NDim(), x1, x2); err != nil {
		return err
	}
	for i, n := 0, m.sub.NAxes(); i < n; i++ {
		j := m.sub.Axis(i)
		d := x1[j] - x2[j]
		grad[i] = -d * d / (m.scales[i] * m.scales[i])
	}

	return nil
}

// Size returns the parameter count (one per selected axis).
func (m *Axes) Size() int { return len(m.scales) }

// NDim returns the required feature-vector length.
func (m *Axes) NDim() int { return m.sub.NDim() }

// Parameter returns the i-th axis scale.
//
// Errors: ErrIndexOutOfRange.
func (m *Axes) Parameter(i int) (float64, error) {
	if i < 0 || i >= len(m.scales) {
		return 0, ErrIndexOutOfRange
	}

	return m.scales[i], nil
}

// SetParameter replaces the i-th axis scale.
//
// Errors: ErrIndexOutOfRange, ErrBadScale.
func (m *Axes) SetParameter(i int, v float64) error {
	if i < 0 || i >= len(m.scales) {
		return ErrIndexOutOfRange
	}
	if !validScale(v) {
		return ErrBadScale
	}
	m.scales[i] = v

	return nil
}
