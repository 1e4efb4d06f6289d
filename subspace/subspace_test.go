package subspace_test

import (
	"testing"

	"github.com/katalvlaran/covfn/subspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_SortsAxes verifies axes are stored ascending regardless of input order.
func TestNew_SortsAxes(t *testing.T) {
	sub, err := subspace.New(5, 4, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, sub.NAxes(), "three axes selected")
	assert.Equal(t, 5, sub.NDim(), "ndim preserved")
	assert.Equal(t, 0, sub.Axis(0), "axes sorted ascending")
	assert.Equal(t, 2, sub.Axis(1))
	assert.Equal(t, 4, sub.Axis(2))
}

// TestNew_EmptySelection verifies that selecting no axes is legal.
func TestNew_EmptySelection(t *testing.T) {
	sub, err := subspace.New(3)
	require.NoError(t, err)
	assert.Equal(t, 0, sub.NAxes(), "no axes selected")
	assert.Equal(t, 3, sub.NDim())
}

// TestNew_BadNDim ensures ndim < 1 errors with ErrBadNDim.
func TestNew_BadNDim(t *testing.T) {
	_, err := subspace.New(0)
	assert.ErrorIs(t, err, subspace.ErrBadNDim)

	_, err = subspace.Full(-1)
	assert.ErrorIs(t, err, subspace.ErrBadNDim)
}

// TestNew_AxisOutOfRange ensures out-of-range axes error with ErrAxisOutOfRange.
func TestNew_AxisOutOfRange(t *testing.T) {
	_, err := subspace.New(3, 3)
	assert.ErrorIs(t, err, subspace.ErrAxisOutOfRange, "axis == ndim is out of range")

	_, err = subspace.New(3, -1)
	assert.ErrorIs(t, err, subspace.ErrAxisOutOfRange, "negative axis is out of range")
}

// TestNew_DuplicateAxis ensures repeated axes error with ErrDuplicateAxis.
func TestNew_DuplicateAxis(t *testing.T) {
	_, err := subspace.New(4, 1, 1)
	assert.ErrorIs(t, err, subspace.ErrDuplicateAxis)
}

// TestFull_SelectsEveryAxis verifies Full selects 0..ndim-1 in order.
func TestFull_SelectsEveryAxis(t *testing.T) {
	sub, err := subspace.Full(4)
	require.NoError(t, err)

	require.Equal(t, 4, sub.NAxes())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, sub.Axis(i), "axis %d selects feature %d", i, i)
	}
}
