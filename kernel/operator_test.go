package kernel_test

import (
	"testing"

	"github.com/katalvlaran/covfn/kernel"
	"github.com/katalvlaran/covfn/metric"
	"github.com/katalvlaran/covfn/subspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time checks that the collaborator packages satisfy the consumer
// contracts declared in kernel.
var (
	_ kernel.Metric   = (*metric.Isotropic)(nil)
	_ kernel.Metric   = (*metric.Axes)(nil)
	_ kernel.Subspace = (*subspace.Subspace)(nil)
	_ kernel.Kernel   = (*kernel.Sum)(nil)
	_ kernel.Kernel   = (*kernel.Product)(nil)
	_ kernel.Kernel   = (*kernel.Stationary)(nil)
	_ kernel.Kernel   = (*kernel.Axis)(nil)
)

// twoLeaves returns a stationary leaf (2 params: α, ℓ²) and an axis leaf
// (2 params: Γ, P) over the same 1-D feature space.
func twoLeaves(t *testing.T) (*kernel.Stationary, *kernel.Axis) {
	t.Helper()
	a, err := kernel.NewRationalQuadratic(1.5, isoMetric(t, 1, 2.0))
	require.NoError(t, err)
	b, err := kernel.NewExpSine2(1.2, 3.0, fullSub(t, 1))
	require.NoError(t, err)

	return a, b
}

// TestOperator_SizeAdditivity verifies size(op) == size(left) + size(right)
// for both operators, including nested compositions.
func TestOperator_SizeAdditivity(t *testing.T) {
	a, b := twoLeaves(t)

	sum, err := kernel.NewSum(a, b)
	require.NoError(t, err)
	prod, err := kernel.NewProduct(a, b)
	require.NoError(t, err)

	assert.Equal(t, a.Size()+b.Size(), sum.Size())
	assert.Equal(t, a.Size()+b.Size(), prod.Size())

	nested, err := kernel.NewSum(sum, prod)
	require.NoError(t, err)
	assert.Equal(t, 2*(a.Size()+b.Size()), nested.Size())
	assert.Equal(t, 1, nested.NDim())
}

// TestOperator_AddressingRoundTrip verifies that composite indices route to
// the owning child: the left subtree occupies [0, size(left)) and the right
// subtree follows, and writes through the composite are visible in the child.
func TestOperator_AddressingRoundTrip(t *testing.T) {
	a, b := twoLeaves(t)
	sum, err := kernel.NewSum(a, b)
	require.NoError(t, err)

	n := a.Size()
	for i := 0; i < sum.Size(); i++ {
		got, err := sum.Parameter(i)
		require.NoError(t, err)

		var want float64
		if i < n {
			want, err = a.Parameter(i)
		} else {
			want, err = b.Parameter(i - n)
		}
		require.NoError(t, err)
		assert.Equal(t, want, got, "index %d routes to the owning child", i)
	}

	// Write through the composite, read through the child.
	require.NoError(t, sum.SetParameter(0, 2.5))
	got, err := a.Parameter(0)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	require.NoError(t, sum.SetParameter(n, 9.0))
	got, err = b.Parameter(0)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)
}

// TestSum_ValueLaw verifies value(Sum) == value(A) + value(B).
func TestSum_ValueLaw(t *testing.T) {
	a, b := twoLeaves(t)
	sum, err := kernel.NewSum(a, b)
	require.NoError(t, err)

	x1, x2 := []float64{0.4}, []float64{-1.3}
	va, err := a.Value(x1, x2)
	require.NoError(t, err)
	vb, err := b.Value(x1, x2)
	require.NoError(t, err)
	vs, err := sum.Value(x1, x2)
	require.NoError(t, err)

	assert.InDelta(t, va+vb, vs, 1e-15)
}

// TestProduct_ValueLaw verifies value(Product) == value(A) * value(B).
func TestProduct_ValueLaw(t *testing.T) {
	a, b := twoLeaves(t)
	prod, err := kernel.NewProduct(a, b)
	require.NoError(t, err)

	x1, x2 := []float64{0.4}, []float64{-1.3}
	va, err := a.Value(x1, x2)
	require.NoError(t, err)
	vb, err := b.Value(x1, x2)
	require.NoError(t, err)
	vp, err := prod.Value(x1, x2)
	require.NoError(t, err)

	assert.InDelta(t, va*vb, vp, 1e-15)
}

// TestSum_GradientIsConcatenation verifies the two halves of a Sum gradient
// equal the children's own gradients, with no cross terms.
func TestSum_GradientIsConcatenation(t *testing.T) {
	a, b := twoLeaves(t)
	sum, err := kernel.NewSum(a, b)
	require.NoError(t, err)

	x1, x2 := []float64{0.7}, []float64{2.1}
	grad := make([]float64, sum.Size())
	require.NoError(t, sum.Gradient(x1, x2, grad))

	ga := make([]float64, a.Size())
	require.NoError(t, a.Gradient(x1, x2, ga))
	gb := make([]float64, b.Size())
	require.NoError(t, b.Gradient(x1, x2, gb))

	for i, want := range ga {
		assert.InDelta(t, want, grad[i], 1e-15, "left half index %d", i)
	}
	for i, want := range gb {
		assert.InDelta(t, want, grad[a.Size()+i], 1e-15, "right half index %d", i)
	}
}

// TestProduct_GradientScalingLaw verifies the product rule:
// grad[i] == gradA[i]·value(B) for i < sizeA, grad[i] == gradB[i−sizeA]·value(A) after.
func TestProduct_GradientScalingLaw(t *testing.T) {
	a, b := twoLeaves(t)
	prod, err := kernel.NewProduct(a, b)
	require.NoError(t, err)

	x1, x2 := []float64{0.7}, []float64{2.1}
	grad := make([]float64, prod.Size())
	require.NoError(t, prod.Gradient(x1, x2, grad))

	va, err := a.Value(x1, x2)
	require.NoError(t, err)
	vb, err := b.Value(x1, x2)
	require.NoError(t, err)
	ga := make([]float64, a.Size())
	require.NoError(t, a.Gradient(x1, x2, ga))
	gb := make([]float64, b.Size())
	require.NoError(t, b.Gradient(x1, x2, gb))

	for i := range ga {
		assert.InDelta(t, ga[i]*vb, grad[i], 1e-15, "left half scaled by value(B)")
	}
	for i := range gb {
		assert.InDelta(t, gb[i]*va, grad[a.Size()+i], 1e-15, "right half scaled by value(A)")
	}
}

// TestOperator_NDimMismatch ensures construction fails when children disagree
// on feature-vector length.
func TestOperator_NDimMismatch(t *testing.T) {
	a, err := kernel.NewExpSquared(isoMetric(t, 1, 1.0))
	require.NoError(t, err)
	b, err := kernel.NewExpSquared(isoMetric(t, 2, 1.0))
	require.NoError(t, err)

	_, err = kernel.NewSum(a, b)
	assert.ErrorIs(t, err, kernel.ErrNDimMismatch)

	_, err = kernel.NewProduct(a, b)
	assert.ErrorIs(t, err, kernel.ErrNDimMismatch)
}

// TestOperator_NilChild ensures construction fails on nil operands.
func TestOperator_NilChild(t *testing.T) {
	a, err := kernel.NewExpSquared(isoMetric(t, 1, 1.0))
	require.NoError(t, err)

	_, err = kernel.NewSum(nil, a)
	assert.ErrorIs(t, err, kernel.ErrNilKernel)

	_, err = kernel.NewProduct(a, nil)
	assert.ErrorIs(t, err, kernel.ErrNilKernel)
}

// TestOperator_AddressingErrors covers the out-of-range and buffer sentinels.
func TestOperator_AddressingErrors(t *testing.T) {
	a, b := twoLeaves(t)
	sum, err := kernel.NewSum(a, b)
	require.NoError(t, err)

	_, err = sum.Parameter(-1)
	assert.ErrorIs(t, err, kernel.ErrIndexOutOfRange)

	_, err = sum.Parameter(sum.Size())
	assert.ErrorIs(t, err, kernel.ErrIndexOutOfRange)

	err = sum.SetParameter(sum.Size(), 1.0)
	assert.ErrorIs(t, err, kernel.ErrIndexOutOfRange)

	err = sum.Gradient([]float64{0}, []float64{1}, make([]float64, sum.Size()-1))
	assert.ErrorIs(t, err, kernel.ErrGradientLength)
}

// TestAddMul_Chaining verifies the n-ary helpers fold into left-deep binary
// trees with the expected value and size.
func TestAddMul_Chaining(t *testing.T) {
	mk := func(c float64) kernel.Kernel {
		k, err := kernel.NewConstant(c, fullSub(t, 1))
		require.NoError(t, err)

		return k
	}

	x1, x2 := []float64{0}, []float64{0}

	add, err := kernel.Add(mk(1), mk(2), mk(3))
	require.NoError(t, err)
	assert.Equal(t, 3, add.Size())
	v, err := add.Value(x1, x2)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, v, 1e-15)

	mul, err := kernel.Mul(mk(2), mk(3), mk(4))
	require.NoError(t, err)
	assert.Equal(t, 3, mul.Size())
	v, err = mul.Value(x1, x2)
	require.NoError(t, err)
	assert.InDelta(t, 24.0, v, 1e-15)

	// A single operand passes through unchanged.
	single := mk(5)
	same, err := kernel.Add(single)
	require.NoError(t, err)
	assert.Equal(t, kernel.Kernel(single), same)

	_, err = kernel.Add()
	assert.ErrorIs(t, err, kernel.ErrNoKernels)

	_, err = kernel.Mul(nil)
	assert.ErrorIs(t, err, kernel.ErrNilKernel)
}

// TestParametersHelpers verifies the snapshot/restore round trip and its
// length validation.
func TestParametersHelpers(t *testing.T) {
	a, b := twoLeaves(t)
	prod, err := kernel.NewProduct(a, b)
	require.NoError(t, err)

	vals := kernel.Parameters(prod)
	require.Len(t, vals, prod.Size())
	assert.Equal(t, []float64{1.5, 2.0, 1.2, 3.0}, vals, "depth-first order: α, ℓ², Γ, P")

	vals[2] = 0.9
	require.NoError(t, kernel.SetParameters(prod, vals))
	got, err := b.Parameter(0)
	require.NoError(t, err)
	assert.Equal(t, 0.9, got)

	err = kernel.SetParameters(prod, vals[:1])
	assert.ErrorIs(t, err, kernel.ErrParamCount)
}
