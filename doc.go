// Package covfn is a toolkit of composable covariance functions (kernels)
// for Gaussian-process models — build arbitrarily deep kernel expressions,
// evaluate them pairwise, and differentiate them with respect to a single
// flat hyperparameter vector.
//
// 🚀 What is covfn?
//
//	A small, deterministic library that brings together:
//		• Kernel contract: value, gradient, and flat parameter addressing
//		• Operators: Sum and Product combinators with exact chain-rule gradients
//		• Stationary families: ExpSquared, Exp, Matérn 3/2 & 5/2, RationalQuadratic
//		• Axis families: Constant, DotProduct, Cosine, ExpSine2, LocalGaussian
//		• Metrics: isotropic and per-axis squared distances over a subspace
//
// ✨ Why choose covfn?
//
//   - Exact analytic gradients — every hyperparameter of every composition
//     gets one well-defined partial derivative, verified against finite
//     differences in the test suite
//   - One flat parameter vector — an optimizer reads and writes a composed
//     kernel exactly like a primitive one
//   - Pure Go – no cgo, no hidden deps
//   - Allocation-free evaluation — Value and Gradient write only into
//     caller-provided buffers
//
// Everything is organized under three subpackages:
//
//	kernel/   — the Kernel contract, Sum/Product operators, kernel families
//	metric/   — parameterized squared-distance metrics (isotropic, per-axis)
//	subspace/ — ordered axis selection for metrics and axis kernels
//
// Quick example:
//
//	sub, _ := subspace.Full(2)
//	m, _ := metric.NewIsotropic(sub, 1.5)
//	k1, _ := kernel.NewExpSquared(m)
//	k2, _ := kernel.NewConstant(0.1, sub)
//	k, _ := kernel.NewSum(k1, k2)
//	v, _ := k.Value([]float64{0, 0}, []float64{1, 1})
//
// Dive into README.md and the per-package example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/covfn/kernel
package covfn
