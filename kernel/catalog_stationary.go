// Package kernel: the stationary formula catalog. Each named family is a
// stateless RadialFormula plus a constructor that bridges it to a metric.
// Hyperparameters are in natural (linear) units; any log-reparameterization
// belongs to the caller's optimizer.

package kernel

import "math"

// NewExpSquared builds the squared-exponential (RBF) kernel
//
//	value(r2) = exp(−r2/2)
//
// with no hyperparameters of its own; all tunables live in the metric.
//
// Errors: ErrNilMetric.
func NewExpSquared(m Metric) (*Stationary, error) {
	return NewStationary(expSquaredFormula{}, nil, m)
}

type expSquaredFormula struct{}

func (expSquaredFormula) NumParams() int { return 0 }

func (expSquaredFormula) Value(_ []float64, r2 float64) float64 {
	return math.Exp(-0.5 * r2)
}

func (expSquaredFormula) ParamGradient(_ []float64, _ float64, _ []float64) {}

func (expSquaredFormula) RadialGradient(_ []float64, r2 float64) float64 {
	return -0.5 * math.Exp(-0.5*r2)
}

// NewExp builds the exponential (Ornstein–Uhlenbeck) kernel
//
//	value(r2) = exp(−√r2)
//
// Its radial derivative diverges as r2 → 0; RadialGradient returns 0 there,
// so gradients at exactly coincident points are finite but the kernel is not
// differentiable at zero distance.
//
// Errors: ErrNilMetric.
func NewExp(m Metric) (*Stationary, error) {
	return NewStationary(expFormula{}, nil, m)
}

type expFormula struct{}

func (expFormula) NumParams() int { return 0 }

func (expFormula) Value(_ []float64, r2 float64) float64 {
	return math.Exp(-math.Sqrt(r2))
}

func (expFormula) ParamGradient(_ []float64, _ float64, _ []float64) {}

func (expFormula) RadialGradient(_ []float64, r2 float64) float64 {
	if r2 <= 0 {
		return 0
	}
	r := math.Sqrt(r2)

	return -math.Exp(-r) / (2 * r)
}

// NewMatern32 builds the Matérn ν=3/2 kernel
//
//	value(r2) = (1 + √(3·r2)) · exp(−√(3·r2))
//
// Errors: ErrNilMetric.
func NewMatern32(m Metric) (*Stationary, error) {
	return NewStationary(matern32Formula{}, nil, m)
}

type matern32Formula struct{}

func (matern32Formula) NumParams() int { return 0 }

func (matern32Formula) Value(_ []float64, r2 float64) float64 {
	s := math.Sqrt(3 * r2)

	return (1 + s) * math.Exp(-s)
}

func (matern32Formula) ParamGradient(_ []float64, _ float64, _ []float64) {}

func (matern32Formula) RadialGradient(_ []float64, r2 float64) float64 {
	return -1.5 * math.Exp(-math.Sqrt(3*r2))
}

// NewMatern52 builds the Matérn ν=5/2 kernel
//
//	value(r2) = (1 + √(5·r2) + 5·r2/3) · exp(−√(5·r2))
//
// Errors: ErrNilMetric.
func NewMatern52(m Metric) (*Stationary, error) {
	return NewStationary(matern52Formula{}, nil, m)
}

type matern52Formula struct{}

func (matern52Formula) NumParams() int { return 0 }

func (matern52Formula) Value(_ []float64, r2 float64) float64 {
	s := math.Sqrt(5 * r2)

	return (1 + s + s*s/3) * math.Exp(-s)
}

func (matern52Formula) ParamGradient(_ []float64, _ float64, _ []float64) {}

func (matern52Formula) RadialGradient(_ []float64, r2 float64) float64 {
	s := math.Sqrt(5 * r2)

	return -5.0 / 6.0 * (1 + s) * math.Exp(-s)
}

// NewRationalQuadratic builds the rational-quadratic kernel
//
//	value(r2) = (1 + r2/(2α))^(−α)
//
// with one hyperparameter, the shape α, at flat index 0 (metric parameters
// follow). α must be kept positive by the caller.
//
// Errors: ErrNilMetric.
func NewRationalQuadratic(alpha float64, m Metric) (*Stationary, error) {
	return NewStationary(rationalQuadraticFormula{}, []float64{alpha}, m)
}

type rationalQuadraticFormula struct{}

func (rationalQuadraticFormula) NumParams() int { return 1 }

func (rationalQuadraticFormula) Value(params []float64, r2 float64) float64 {
	alpha := params[0]

	return math.Pow(1+r2/(2*alpha), -alpha)
}

func (rationalQuadraticFormula) ParamGradient(params []float64, r2 float64, grad []float64) {
	alpha := params[0]
	t := 1 + r2/(2*alpha)
	v := math.Pow(t, -alpha)
	grad[0] = v * (r2/(2*alpha*t) - math.Log(t))
}

func (rationalQuadraticFormula) RadialGradient(params []float64, r2 float64) float64 {
	alpha := params[0]

	return -0.5 * math.Pow(1+r2/(2*alpha), -alpha-1)
}
