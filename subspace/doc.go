// Package subspace selects an ordered subset of feature-vector axes.
//
// A Subspace is the axis-selection collaborator consumed by metrics and by
// axis kernels: it names which coordinates of an ndim-long feature vector
// participate in a distance or in a per-axis sum. Axes are validated at
// construction (in range, no duplicates) and stored sorted ascending, so the
// order in which downstream components iterate them — and therefore the
// order of any per-axis parameters — is deterministic.
//
// Usage:
//
//	import "github.com/katalvlaran/covfn/subspace"
//
//	sub, err := subspace.New(4, 0, 2)   // axes 0 and 2 of a 4-vector
//	all, err := subspace.Full(4)        // every axis
//
// A Subspace carries no tunable parameters; it is immutable after New.
package subspace
