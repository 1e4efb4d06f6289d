package kernel

// operator is the shared base of Sum and Product: exactly two child kernels
// plus the offset arithmetic that routes a flat parameter index to the
// subtree owning it. Index i addresses the left child when i < left.Size(),
// otherwise the right child at i − left.Size() — the same rule Size itself
// follows, so the flat vector of a composition is the concatenation of the
// children's vectors, left first.
type operator struct {
	left, right Kernel
}

// newOperator validates the operands. Children must be non-nil and agree on
// ndim; the silent left-wins ndim of a mismatched pair is rejected here
// rather than surfacing later as a wrong-length vector error.
func newOperator(left, right Kernel) (operator, error) {
	if left == nil || right == nil {
		return operator{}, ErrNilKernel
	}
	if left.NDim() != right.NDim() {
		return operator{}, ErrNDimMismatch
	}

	return operator{left: left, right: right}, nil
}

// Left returns the first child kernel.
func (o *operator) Left() Kernel { return o.left }

// Right returns the second child kernel.
func (o *operator) Right() Kernel { return o.right }

// Size returns the combined parameter count of both subtrees.
func (o *operator) Size() int { return o.left.Size() + o.right.Size() }

// NDim returns the shared feature-vector length of the children.
func (o *operator) NDim() int { return o.left.NDim() }

// Parameter resolves the i-th flat index into the owning subtree.
//
// Errors: ErrIndexOutOfRange.
func (o *operator) Parameter(i int) (float64, error) {
	if i < 0 || i >= o.Size() {
		return 0, ErrIndexOutOfRange
	}
	if n := o.left.Size(); i < n {
		return o.left.Parameter(i)
	}

	return o.right.Parameter(i - o.left.Size())
}

// SetParameter resolves the i-th flat index into the owning subtree.
//
// Errors: ErrIndexOutOfRange.
func (o *operator) SetParameter(i int, v float64) error {
	if i < 0 || i >= o.Size() {
		return ErrIndexOutOfRange
	}
	if n := o.left.Size(); i < n {
		return o.left.SetParameter(i, v)
	}

	return o.right.SetParameter(i-o.left.Size(), v)
}

// Sum composes two kernels additively: value = left + right, and each
// parameter's partial derivative is simply the owning child's — no cross
// terms, since ∂(f+g)/∂θ depends only on whichever side owns θ.
type Sum struct {
	operator
}

// NewSum builds the sum of two kernels.
//
// Errors: ErrNilKernel, ErrNDimMismatch.
func NewSum(left, right Kernel) (*Sum, error) {
	op, err := newOperator(left, right)
	if err != nil {
		return nil, err
	}

	return &Sum{operator: op}, nil
}

// Value returns left.Value + right.Value.
func (s *Sum) Value(x1, x2 []float64) (float64, error) {
	a, err := s.left.Value(x1, x2)
	if err != nil {
		return 0, err
	}
	b, err := s.right.Value(x1, x2)
	if err != nil {
		return 0, err
	}

	return a + b, nil
}

// Gradient fills grad[:left.Size()] with the left child's gradient and the
// remainder with the right child's, independently.
//
// Errors: ErrGradientLength, ErrDimensionMismatch.
func (s *Sum) Gradient(x1, x2, grad []float64) error {
	if len(grad) != s.Size() {
		return ErrGradientLength
	}
	n := s.left.Size()
	if err := s.left.Gradient(x1, x2, grad[:n]); err != nil {
		return err
	}

	return s.right.Gradient(x1, x2, grad[n:])
}

// Product composes two kernels multiplicatively: value = left · right, with
// product-rule gradients — the left half of the gradient is scaled by the
// right child's value and vice versa, since ∂(fg)/∂θ = g·∂f/∂θ for θ owned
// by f. Both child values are recomputed on every Gradient call; results are
// identical whether or not a caller memoizes them.
type Product struct {
	operator
}

// NewProduct builds the product of two kernels.
//
// Errors: ErrNilKernel, ErrNDimMismatch.
func NewProduct(left, right Kernel) (*Product, error) {
	op, err := newOperator(left, right)
	if err != nil {
		return nil, err
	}

	return &Product{operator: op}, nil
}

// Value returns left.Value * right.Value.
func (p *Product) Value(x1, x2 []float64) (float64, error) {
	a, err := p.left.Value(x1, x2)
	if err != nil {
		return 0, err
	}
	b, err := p.right.Value(x1, x2)
	if err != nil {
		return 0, err
	}

	return a * b, nil
}

// Gradient fills both halves with the children's own gradients, then applies
// the product rule: grad[i] *= right.Value for i < left.Size(), and
// grad[i] *= left.Value for the rest.
//
// Errors: ErrGradientLength, ErrDimensionMismatch.
func (p *Product) Gradient(x1, x2, grad []float64) error {
	if len(grad) != p.Size() {
		return ErrGradientLength
	}
	n := p.left.Size()
	if err := p.left.Gradient(x1, x2, grad[:n]); err != nil {
		return err
	}
	if err := p.right.Gradient(x1, x2, grad[n:]); err != nil {
		return err
	}

	a, err := p.left.Value(x1, x2)
	if err != nil {
		return err
	}
	b, err := p.right.Value(x1, x2)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		grad[i] *= b
	}
	for i := n; i < len(grad); i++ {
		grad[i] *= a
	}

	return nil
}

// Add chains kernels into a left-deep tree of binary Sums:
// Add(a, b, c) == Sum(Sum(a, b), c). A single kernel is returned unchanged.
//
// Errors: ErrNoKernels, ErrNilKernel, ErrNDimMismatch.
func Add(ks ...Kernel) (Kernel, error) {
	return chain(NewSumKernel, ks)
}

// Mul chains kernels into a left-deep tree of binary Products:
// Mul(a, b, c) == Product(Product(a, b), c). A single kernel is returned
// unchanged.
//
// Errors: ErrNoKernels, ErrNilKernel, ErrNDimMismatch.
func Mul(ks ...Kernel) (Kernel, error) {
	return chain(NewProductKernel, ks)
}

// NewSumKernel is NewSum with the result widened to Kernel, for use as a
// combinator argument.
func NewSumKernel(left, right Kernel) (Kernel, error) { return NewSum(left, right) }

// NewProductKernel is NewProduct with the result widened to Kernel.
func NewProductKernel(left, right Kernel) (Kernel, error) { return NewProduct(left, right) }

// chain folds ks left-to-right with the given binary combinator.
func chain(combine func(Kernel, Kernel) (Kernel, error), ks []Kernel) (Kernel, error) {
	if len(ks) == 0 {
		return nil, ErrNoKernels
	}
	acc := ks[0]
	if acc == nil {
		return nil, ErrNilKernel
	}
	var err error
	for _, k := range ks[1:] {
		if acc, err = combine(acc, k); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
