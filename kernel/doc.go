// Package kernel implements composable covariance functions for
// Gaussian-process models: pairwise kernel evaluation, exact analytic
// gradients, and a single flat hyperparameter vector over arbitrarily deep
// kernel expressions.
//
// 🚀 What is kernel?
//
//	Everything a GP engine needs from a covariance function, behind one
//	small contract:
//	  • Value(x1, x2)     — the pairwise covariance contribution
//	  • Gradient(...)     — all partial derivatives w.r.t. the flat vector
//	  • Size / Parameter / SetParameter — flat parameter addressing
//	  • NDim              — required feature-vector length
//
// ✨ Key features:
//   - Sum and Product combinators with exact chain-rule gradient propagation;
//     a composed tree is addressed and evaluated exactly like a primitive
//   - Stationary families (ExpSquared, Exp, Matérn 3/2 & 5/2,
//     RationalQuadratic) bridged to a distance metric, with the radial
//     chain rule through r2
//   - Axis families (Constant, DotProduct, Cosine, ExpSine2, LocalGaussian)
//     summing independent per-axis contributions over a subspace
//   - Strategy-based families: plug in your own RadialFormula or PairFormula
//     to get a fully wired Kernel with no extra boilerplate
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/covfn/kernel"
//	  "github.com/katalvlaran/covfn/metric"
//	  "github.com/katalvlaran/covfn/subspace"
//	)
//
//	sub, _ := subspace.Full(2)
//	m, _ := metric.NewIsotropic(sub, 2.0)
//	se, _ := kernel.NewExpSquared(m)
//	per, _ := kernel.NewExpSine2(1.0, 3.0, sub)
//	k, _ := kernel.NewProduct(se, per)   // quasi-periodic kernel
//
//	v, _ := k.Value(x1, x2)
//	grad := make([]float64, k.Size())
//	_ = k.Gradient(x1, x2, grad)
//
// Parameter order is the depth-first traversal order: left subtree before
// right subtree under an operator; a leaf's own hyperparameters before its
// metric's parameters. Gradient entries align with that order exactly.
//
// Concurrency: Value and Gradient are read-only and safe to call from many
// goroutines, provided no goroutine concurrently calls SetParameter —
// parameter mutation must be externally serialized against evaluation.
//
// See example_test.go for composed-kernel walkthroughs.
package kernel
