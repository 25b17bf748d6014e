package pfs_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/picfuzzy/pfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_DerivesHesitancy verifies θ = 1 − ξ − ζ − η and default labels.
func TestNew_DerivesHesitancy(t *testing.T) {
	s, err := pfs.New(
		[]float64{0.6, 0.7, 0.5, 0.8},
		[]float64{0.2, 0.1, 0.3, 0.1},
		[]float64{0.1, 0.2, 0.1, 0.0},
	)
	require.NoError(t, err)

	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []string{"x1", "x2", "x3", "x4"}, s.Elements(), "labels default to x1..xn")
	want := []float64{0.1, 0, 0.1, 0.1}
	if diff := cmp.Diff(want, s.Hesitancy(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("hesitancy mismatch (-want +got):\n%s", diff)
	}
}

// TestNew_WithElements checks that supplied labels are kept in order.
func TestNew_WithElements(t *testing.T) {
	s, err := pfs.New([]float64{0.1, 0.2}, []float64{0.1, 0.2}, []float64{0.1, 0.2},
		pfs.WithElements("A", "B"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, s.Elements())
}

// TestNew_Empty verifies that n = 0 is rejected.
func TestNew_Empty(t *testing.T) {
	_, err := pfs.New(nil, nil, nil)
	assert.ErrorIs(t, err, pfs.ErrEmpty)
}

// TestNew_ShapeMismatch covers unequal value and label lengths.
func TestNew_ShapeMismatch(t *testing.T) {
	_, err := pfs.New([]float64{0.1, 0.2}, []float64{0.1}, []float64{0.1, 0.2})
	assert.ErrorIs(t, err, pfs.ErrShapeMismatch, "ζ shorter than ξ")

	_, err = pfs.New([]float64{0.1}, []float64{0.1}, []float64{0.1, 0.2})
	assert.ErrorIs(t, err, pfs.ErrShapeMismatch, "η longer than ξ")

	_, err = pfs.New([]float64{0.1}, []float64{0.1}, []float64{0.1}, pfs.WithElements("A", "B"))
	assert.ErrorIs(t, err, pfs.ErrShapeMismatch, "label count must match")
}

// TestNew_OutOfRange covers every supplied component, both bounds and NaN.
func TestNew_OutOfRange(t *testing.T) {
	nan := func() float64 { z := 0.0; return z / z }()
	cases := []struct {
		name      string
		m, nm, r  []float64
		component pfs.Component
		index     int
	}{
		{"membership above one", []float64{1.5}, []float64{0}, []float64{0}, pfs.Membership, 0},
		{"non-membership negative", []float64{0.1, 0.1}, []float64{0.1, -0.1}, []float64{0, 0}, pfs.NonMembership, 1},
		{"refusal above one", []float64{0}, []float64{0}, []float64{1.01}, pfs.Refusal, 0},
		{"membership NaN", []float64{nan}, []float64{0}, []float64{0}, pfs.Membership, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pfs.New(tc.m, tc.nm, tc.r)
			require.ErrorIs(t, err, pfs.ErrOutOfRange)

			var ve *pfs.ValidationError
			require.True(t, errors.As(err, &ve), "error must be a *ValidationError")
			assert.Equal(t, tc.component, ve.Component)
			assert.Equal(t, tc.index, ve.Index)
		})
	}
}

// TestNew_RangeHasNoTolerance checks that ε does not loosen [0,1].
func TestNew_RangeHasNoTolerance(t *testing.T) {
	_, err := pfs.New([]float64{1.0005}, []float64{0}, []float64{0})
	assert.ErrorIs(t, err, pfs.ErrOutOfRange)

	_, err = pfs.New([]float64{1}, []float64{0}, []float64{0})
	assert.NoError(t, err, "exactly 1 is inside the range")
}

// TestNew_SumExceedsBound covers ξ+ζ+η = 1.1 > 1+ε.
func TestNew_SumExceedsBound(t *testing.T) {
	_, err := pfs.New([]float64{0.6}, []float64{0.5}, []float64{0.0})
	require.ErrorIs(t, err, pfs.ErrSumExceedsBound)

	var ve *pfs.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, 0, ve.Index)
	assert.InDelta(t, 1.1, ve.Value, 1e-12)
}

// TestNew_HesitancyTolerance reproduces the clamp-then-check policy:
// a sum of 1.0004 is accepted with θ = 0, a sum of 1.02 is rejected.
func TestNew_HesitancyTolerance(t *testing.T) {
	s, err := pfs.New([]float64{0.5}, []float64{0.3004}, []float64{0.2})
	require.NoError(t, err, "raw θ = −0.0004 is within ε")
	assert.Equal(t, []float64{0}, s.Hesitancy(), "negative rounding noise is clamped to zero")

	s, err = pfs.New([]float64{0.5}, []float64{0.3005}, []float64{0.2})
	require.NoError(t, err, "raw θ = −0.0005 is within ε")
	assert.Equal(t, 0.0, s.ValueAt(pfs.Hesitancy, 0))

	_, err = pfs.New([]float64{0.5}, []float64{0.32}, []float64{0.2})
	assert.Error(t, err, "raw θ = −0.02 must fail")
	var ve *pfs.ValidationError
	assert.True(t, errors.As(err, &ve))
}

// TestNew_WithEpsilon checks that ε = 0 makes the bound exact.
func TestNew_WithEpsilon(t *testing.T) {
	_, err := pfs.New([]float64{0.5}, []float64{0.3004}, []float64{0.2}, pfs.WithEpsilon(0))
	assert.ErrorIs(t, err, pfs.ErrSumExceedsBound)

	assert.Panics(t, func() { pfs.WithEpsilon(-1) }, "negative ε is a programmer error")
}

// TestSet_Immutable verifies that neither inputs nor accessor results alias
// internal storage.
func TestSet_Immutable(t *testing.T) {
	m := []float64{0.3, 0.4}
	labels := []string{"a", "b"}
	s := pfs.MustNew(m, []float64{0.1, 0.1}, []float64{0.1, 0.1}, pfs.WithElements(labels...))

	m[0] = 0.9
	labels[0] = "z"
	assert.Equal(t, []float64{0.3, 0.4}, s.Membership(), "input slice is copied")
	assert.Equal(t, []string{"a", "b"}, s.Elements(), "labels are copied")

	got := s.Membership()
	got[1] = 0
	assert.Equal(t, 0.4, s.ValueAt(pfs.Membership, 1), "accessor returns a copy")
}

// TestSet_At checks element snapshots and bounds.
func TestSet_At(t *testing.T) {
	s := pfs.MustNew([]float64{0.3}, []float64{0.2}, []float64{0.1}, pfs.WithElements("A"))

	e, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, "A", e.Label)
	assert.Equal(t, 0.3, e.Value(pfs.Membership))
	assert.Equal(t, 0.2, e.Value(pfs.NonMembership))
	assert.Equal(t, 0.1, e.Value(pfs.Refusal))
	assert.InDelta(t, 0.4, e.Value(pfs.Hesitancy), 1e-12)

	_, err = s.At(1)
	assert.Error(t, err)
	_, err = s.At(-1)
	assert.Error(t, err)
}

// TestSet_Equal compares degrees and ignores labels.
func TestSet_Equal(t *testing.T) {
	a := pfs.MustNew([]float64{0.3}, []float64{0.2}, []float64{0.1}, pfs.WithElements("A"))
	b := pfs.MustNew([]float64{0.3}, []float64{0.2}, []float64{0.1}, pfs.WithElements("B"))
	c := pfs.MustNew([]float64{0.3}, []float64{0.2}, []float64{0.2})
	d := pfs.MustNew([]float64{0.3, 0.3}, []float64{0.2, 0.2}, []float64{0.1, 0.1})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.False(t, a.Equal(nil))
}

// TestMustNew_Panics ensures MustNew surfaces validation errors as panics.
func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { pfs.MustNew([]float64{2}, []float64{0}, []float64{0}) })
}

// TestComponent_Names covers String and Symbol.
func TestComponent_Names(t *testing.T) {
	var names, symbols []string
	for _, c := range pfs.Components {
		names = append(names, c.String())
		symbols = append(symbols, c.Symbol())
	}
	assert.Equal(t, []string{"membership", "non_membership", "refusal", "hesitancy"}, names)
	assert.Equal(t, []string{"ξ", "ζ", "η", "θ"}, symbols)
	assert.Nil(t, pfs.MustNew([]float64{0}, []float64{0}, []float64{0}).Values(pfs.Component(9)))
}
