package kernel

// RadialFormula is the closed-form strategy behind a stationary kernel: a
// function of the squared distance r2 and a fixed set of named scalar
// hyperparameters, with exact partial derivatives for each.
//
// Implementations must be stateless: the hyperparameter values live in the
// Stationary node and are passed in on every call, so one formula instance
// can back many kernels.
type RadialFormula interface {
	// NumParams returns the declared hyperparameter count.
	NumParams() int

	// Value evaluates the formula at r2. params has length NumParams().
	Value(params []float64, r2 float64) float64

	// ParamGradient writes ∂Value/∂paramₖ at r2 into grad[k] for every
	// hyperparameter. grad has length NumParams().
	ParamGradient(params []float64, r2 float64, grad []float64)

	// RadialGradient returns ∂Value/∂r2 at r2 — the term that chains the
	// metric's own parameter gradients into value gradients.
	RadialGradient(params []float64, r2 float64) float64
}

// Stationary is a leaf kernel whose value depends on its inputs only through
// the squared distance computed by an owned Metric. Its flat parameter
// vector is its own hyperparameters (formula order) followed by the metric's
// parameters.
type Stationary struct {
	formula RadialFormula
	params  []float64
	metric  Metric
}

// NewStationary bridges a radial formula to a metric. params supplies the
// initial hyperparameter values, one per formula parameter; the slice is
// copied. The kernel takes ownership of the metric: its parameters become
// the tail of this kernel's flat vector.
//
// Errors: ErrNilFormula, ErrNilMetric, ErrParamCount.
func NewStationary(f RadialFormula, params []float64, m Metric) (*Stationary, error) {
	if f == nil {
		return nil, ErrNilFormula
	}
	if m == nil {
		return nil, ErrNilMetric
	}
	if len(params) != f.NumParams() {
		return nil, ErrParamCount
	}
	own := make([]float64, len(params))
	copy(own, params)

	return &Stationary{formula: f, params: own, metric: m}, nil
}

// Value computes r2 through the metric and applies the formula.
//
// Errors: the metric's dimension-mismatch sentinel.
func (s *Stationary) Value(x1, x2 []float64) (float64, error) {
	r2, err := s.metric.Value(x1, x2)
	if err != nil {
		return 0, err
	}

	return s.formula.Value(s.params, r2), nil
}

// Gradient computes r2 once, writes the formula's own hyperparameter
// partials into the head of grad, delegates the tail to Metric.Gradient
// (∂r2/∂θ), then scales that tail by ∂Value/∂r2 — the chain rule through r2
// that turns distance gradients into value gradients.
//
// Errors: ErrGradientLength, plus the metric's dimension-mismatch sentinel.
func (s *Stationary) Gradient(x1, x2, grad []float64) error {
	if len(grad) != s.Size() {
		return ErrGradientLength
	}
	r2, err := s.metric.Value(x1, x2)
	if err != nil {
		return err
	}

	k := len(s.params)
	s.formula.ParamGradient(s.params, r2, grad[:k])

	if err = s.metric.Gradient(x1, x2, grad[k:]); err != nil {
		return err
	}
	r2grad := s.formula.RadialGradient(s.params, r2)
	for i := k; i < len(grad); i++ {
		grad[i] *= r2grad
	}

	return nil
}

// Size returns own hyperparameter count plus the metric's parameter count.
func (s *Stationary) Size() int { return len(s.params) + s.metric.Size() }

// NDim returns the metric's required feature-vector length.
func (s *Stationary) NDim() int { return s.metric.NDim() }

// Parameter returns own hyperparameters for i < NumParams, then delegates
// to the metric at offset i − NumParams.
//
// Errors: ErrIndexOutOfRange.
func (s *Stationary) Parameter(i int) (float64, error) {
	if i < 0 || i >= s.Size() {
		return 0, ErrIndexOutOfRange
	}
	if i < len(s.params) {
		return s.params[i], nil
	}

	return s.metric.Parameter(i - len(s.params))
}

// SetParameter mirrors Parameter's routing.
//
// Errors: ErrIndexOutOfRange, plus the metric's own validation errors.
func (s *Stationary) SetParameter(i int, v float64) error {
	if i < 0 || i >= s.Size() {
		return ErrIndexOutOfRange
	}
	if i < len(s.params) {
		s.params[i] = v

		return nil
	}

	return s.metric.SetParameter(i-len(s.params), v)
}
