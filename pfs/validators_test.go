package pfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClampHesitancy exercises the hesitancy policy directly, since New
// rejects most such inputs earlier through the sum bound.
func TestClampHesitancy(t *testing.T) {
	raw := []float64{0.2, -0.0005, -0.001}
	out := make([]float64, len(raw))
	require.NoError(t, clampHesitancy(raw, out, DefaultEpsilon))
	assert.Equal(t, []float64{0.2, 0, 0}, out, "values within −ε clamp to zero")

	raw = []float64{0.3, -0.01}
	out = make([]float64, len(raw))
	err := clampHesitancy(raw, out, DefaultEpsilon)
	require.ErrorIs(t, err, ErrNegativeHesitancy)
	assert.Equal(t, []float64{0.3, 0}, out, "clamping runs before the check")

	ve := err.(*ValidationError)
	assert.Equal(t, Hesitancy, ve.Component)
	assert.Equal(t, 1, ve.Index)
	assert.Equal(t, -0.01, ve.Value)
}

// TestValidationError_Message keeps messages greppable by prefix.
func TestValidationError_Message(t *testing.T) {
	err := validateRange(Refusal, []float64{0.5, 1.5})
	assert.EqualError(t, err, "pfs: out of range: refusal[1] = 1.5")

	err = validateSum([]float64{0.6}, []float64{0.5}, []float64{0}, DefaultEpsilon)
	assert.EqualError(t, err, "pfs: sum exceeds bound: element 0: ξ+ζ+η = 1.1")

	err = validateShape(nil, nil, nil, nil)
	assert.EqualError(t, err, "pfs: set must contain at least one element")
}
