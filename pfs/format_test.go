package pfs_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/picfuzzy/pfs"
	"github.com/stretchr/testify/assert"
)

// TestSet_String checks the header, one line per element and 3 decimals.
func TestSet_String(t *testing.T) {
	s := pfs.MustNew([]float64{0.3, 0.12345}, []float64{0, 0.5}, []float64{0.7, 0})

	want := "Picture Fuzzy Set:\n" +
		"x1: (ξ=0.300, ζ=0.000, η=0.700, θ=0.000)\n" +
		"x2: (ξ=0.123, ζ=0.500, η=0.000, θ=0.377)\n"
	assert.Equal(t, want, s.String())
	assert.Len(t, strings.Split(strings.TrimSuffix(s.String(), "\n"), "\n"), 3)
}

// TestSet_StringNil renders a nil set without panicking.
func TestSet_StringNil(t *testing.T) {
	var s *pfs.Set
	assert.NotPanics(t, func() { _ = s.String() })
	assert.Equal(t, "<nil>", s.String())
}
