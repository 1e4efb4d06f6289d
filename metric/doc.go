// SPDX-License-Identifier: MIT

// Package metric computes parameterized squared distances between feature
// vectors, together with the partial derivatives of that distance with
// respect to the metric's own parameters.
//
// 🚀 What is a metric here?
//
//	The distance collaborator of a stationary covariance kernel: the kernel
//	turns a squared distance r2 into a covariance value, and the metric
//	decides what r2 is.  Two families are provided:
//	  • Isotropic — one shared squared length scale ℓ²:
//	        r2 = Σⱼ (x1ⱼ − x2ⱼ)² / ℓ²
//	  • Axes — one squared length scale per selected axis:
//	        r2 = Σⱼ (x1ⱼ − x2ⱼ)² / ℓ²ⱼ
//	both summed over the axes named by a subspace.Subspace.
//
// ⚙️ Contract:
//
//	Metrics implement the same flat-parameter addressing surface as kernels
//	(Size, Parameter, SetParameter), and Gradient writes ∂r2/∂θ for every
//	own parameter θ.  A stationary kernel chains those into ∂value/∂θ by
//	scaling with its radial gradient ∂value/∂r2.
//
// Length scales must stay strictly positive; construction and SetParameter
// reject non-positive values with ErrBadScale.
package metric
