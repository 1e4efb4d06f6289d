// Package kernel: the axis formula catalog. Each named family is a
// stateless PairFormula plus a constructor that bridges it to a subspace.
// Per-axis contributions are summed over the subspace's selected axes, so a
// family's value scales with the number of axes it is applied to.

package kernel

import "math"

// NewConstant builds a kernel contributing a flat value c per selected axis
// (total value c·naxes). Flat index 0 is c.
//
// Errors: ErrNilSubspace.
func NewConstant(c float64, sub Subspace) (*Axis, error) {
	return NewAxis(constantFormula{}, []float64{c}, sub)
}

type constantFormula struct{}

func (constantFormula) NumParams() int { return 1 }

func (constantFormula) Value(params []float64, _, _ float64) float64 { return params[0] }

func (constantFormula) ParamGradient(_ []float64, _, _ float64, grad []float64) {
	grad[0] += 1
}

// NewDotProduct builds the linear kernel Σⱼ x1ⱼ·x2ⱼ over the selected axes,
// with no hyperparameters.
//
// Errors: ErrNilSubspace.
func NewDotProduct(sub Subspace) (*Axis, error) {
	return NewAxis(dotProductFormula{}, nil, sub)
}

type dotProductFormula struct{}

func (dotProductFormula) NumParams() int { return 0 }

func (dotProductFormula) Value(_ []float64, x1, x2 float64) float64 { return x1 * x2 }

func (dotProductFormula) ParamGradient(_ []float64, _, _ float64, _ []float64) {}

// NewCosine builds the cosine kernel
//
//	value(x1, x2) = cos(2π·(x1−x2)/P)
//
// per selected axis, with the period P at flat index 0. P must be kept
// non-zero by the caller.
//
// Errors: ErrNilSubspace.
func NewCosine(period float64, sub Subspace) (*Axis, error) {
	return NewAxis(cosineFormula{}, []float64{period}, sub)
}

type cosineFormula struct{}

func (cosineFormula) NumParams() int { return 1 }

func (cosineFormula) Value(params []float64, x1, x2 float64) float64 {
	return math.Cos(2 * math.Pi * (x1 - x2) / params[0])
}

func (cosineFormula) ParamGradient(params []float64, x1, x2 float64, grad []float64) {
	p := params[0]
	d := x1 - x2
	theta := 2 * math.Pi * d / p
	grad[0] += math.Sin(theta) * 2 * math.Pi * d / (p * p)
}

// NewExpSine2 builds the periodic (exp-sine-squared) kernel
//
//	value(x1, x2) = exp(−Γ·sin²(π·(x1−x2)/P))
//
// per selected axis, with Γ at flat index 0 and the period P at index 1.
// P must be kept non-zero by the caller.
//
// Errors: ErrNilSubspace.
func NewExpSine2(gamma, period float64, sub Subspace) (*Axis, error) {
	return NewAxis(expSine2Formula{}, []float64{gamma, period}, sub)
}

type expSine2Formula struct{}

func (expSine2Formula) NumParams() int { return 2 }

func (expSine2Formula) Value(params []float64, x1, x2 float64) float64 {
	gamma, p := params[0], params[1]
	s := math.Sin(math.Pi * (x1 - x2) / p)

	return math.Exp(-gamma * s * s)
}

func (expSine2Formula) ParamGradient(params []float64, x1, x2 float64, grad []float64) {
	gamma, p := params[0], params[1]
	d := x1 - x2
	phi := math.Pi * d / p
	s := math.Sin(phi)
	v := math.Exp(-gamma * s * s)

	grad[0] += -s * s * v
	grad[1] += v * gamma * math.Sin(2*phi) * math.Pi * d / (p * p)
}

// NewLocalGaussian builds a kernel that localizes covariance around a point
//
//	value(x1, x2) = exp(−((x1−x0)² + (x2−x0)²) / (2w))
//
// per selected axis, with the center x0 at flat index 0 and the width w at
// index 1. w must be kept positive by the caller.
//
// Errors: ErrNilSubspace.
func NewLocalGaussian(x0, width float64, sub Subspace) (*Axis, error) {
	return NewAxis(localGaussianFormula{}, []float64{x0, width}, sub)
}

type localGaussianFormula struct{}

func (localGaussianFormula) NumParams() int { return 2 }

func (localGaussianFormula) Value(params []float64, x1, x2 float64) float64 {
	x0, w := params[0], params[1]
	d1, d2 := x1-x0, x2-x0

	return math.Exp(-(d1*d1 + d2*d2) / (2 * w))
}

func (localGaussianFormula) ParamGradient(params []float64, x1, x2 float64, grad []float64) {
	x0, w := params[0], params[1]
	d1, d2 := x1-x0, x2-x0
	q := d1*d1 + d2*d2
	v := math.Exp(-q / (2 * w))

	grad[0] += v * (d1 + d2) / w
	grad[1] += v * q / (2 * w * w)
}
