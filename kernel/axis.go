package kernel

// PairFormula is the closed-form strategy behind an axis kernel: a function
// of one scalar coordinate from each input and a fixed set of named scalar
// hyperparameters, with exact partial derivatives for each.
//
// Implementations must be stateless, like RadialFormula.
type PairFormula interface {
	// NumParams returns the declared hyperparameter count.
	NumParams() int

	// Value evaluates the formula on one coordinate pair.
	Value(params []float64, x1, x2 float64) float64

	// ParamGradient adds ∂Value/∂paramₖ on one coordinate pair into
	// grad[k] for every hyperparameter. It accumulates rather than assigns
	// so the axis kernel can sum contributions across axes straight into
	// the caller's buffer. grad has length NumParams().
	ParamGradient(params []float64, x1, x2 float64, grad []float64)
}

// Axis is a leaf kernel that sums an independent per-axis contribution of a
// pair formula over the axes selected by an owned Subspace. The subspace
// carries no tunable parameters, so the flat vector is exactly the formula's
// hyperparameters.
type Axis struct {
	formula PairFormula
	params  []float64
	sub     Subspace
}

// NewAxis bridges a pair formula to a subspace. params supplies the initial
// hyperparameter values, one per formula parameter; the slice is copied.
//
// Errors: ErrNilFormula, ErrNilSubspace, ErrParamCount.
func NewAxis(f PairFormula, params []float64, sub Subspace) (*Axis, error) {
	if f == nil {
		return nil, ErrNilFormula
	}
	if sub == nil {
		return nil, ErrNilSubspace
	}
	if len(params) != f.NumParams() {
		return nil, ErrParamCount
	}
	own := make([]float64, len(params))
	copy(own, params)

	return &Axis{formula: f, params: own, sub: sub}, nil
}

// Value accumulates the formula over every selected axis. An empty subspace
// yields 0 regardless of hyperparameters.
//
// Errors: ErrDimensionMismatch.
func (a *Axis) Value(x1, x2 []float64) (float64, error) {
	if err := checkPair(a.sub.NDim(), x1, x2); err != nil {
		return 0, err
	}
	var value float64
	for i, n := 0, a.sub.NAxes(); i < n; i++ {
		j := a.sub.Axis(i)
		value += a.formula.Value(a.params, x1[j], x2[j])
	}

	return value, nil
}

// Gradient zero-initializes grad, then accumulates each hyperparameter's
// per-axis partial over every selected axis. An empty subspace yields an
// all-zero gradient.
//
// Errors: ErrGradientLength, ErrDimensionMismatch.
func (a *Axis) Gradient(x1, x2, grad []float64) error {
	if len(grad) != len(a.params) {
		return ErrGradientLength
	}
	if err := checkPair(a.sub.NDim(), x1, x2); err != nil {
		return err
	}
	for i := range grad {
		grad[i] = 0
	}
	for i, n := 0, a.sub.NAxes(); i < n; i++ {
		j := a.sub.Axis(i)
		a.formula.ParamGradient(a.params, x1[j], x2[j], grad)
	}

	return nil
}

// Size returns the formula's hyperparameter count; the subspace contributes
// no tunable parameters.
func (a *Axis) Size() int { return len(a.params) }

// NDim returns the subspace's required feature-vector length.
func (a *Axis) NDim() int { return a.sub.NDim() }

// Parameter returns the i-th own hyperparameter.
//
// Errors: ErrIndexOutOfRange.
func (a *Axis) Parameter(i int) (float64, error) {
	if i < 0 || i >= len(a.params) {
		return 0, ErrIndexOutOfRange
	}

	return a.params[i], nil
}

// SetParameter replaces the i-th own hyperparameter.
//
// Errors: ErrIndexOutOfRange.
func (a *Axis) SetParameter(i int, v float64) error {
	if i < 0 || i >= len(a.params) {
		return ErrIndexOutOfRange
	}
	a.params[i] = v

	return nil
}
