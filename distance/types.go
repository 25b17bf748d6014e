// Package distance defines the Func signature and the Measure registry.
package distance

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/picfuzzy/pfs"
)

// Func is the common signature of every distance measure.
type Func func(a, b *pfs.Set) (float64, error)

// Measure names one of the built-in distance functions.
//
//   - PFHD      — Picture Fuzzy Hellinger Distance.
//   - Hamming   — normalized Hamming distance over the four components.
//   - Euclidean — normalized Euclidean distance over the four components.
type Measure int

const (
	// MeasurePFHD selects PFHD.
	MeasurePFHD Measure = iota

	// MeasureHamming selects Hamming.
	MeasureHamming

	// MeasureEuclidean selects Euclidean.
	MeasureEuclidean
)

// Measures returns every built-in measure in report order.
func Measures() []Measure {
	return []Measure{MeasurePFHD, MeasureHamming, MeasureEuclidean}
}

// String returns the display name used in reports.
func (m Measure) String() string {
	switch m {
	case MeasurePFHD:
		return "PFHD"
	case MeasureHamming:
		return "Hamming"
	case MeasureEuclidean:
		return "Euclidean"
	default:
		return fmt.Sprintf("Measure(%d)", int(m))
	}
}

// Func returns the implementation of m, or nil for an unknown measure.
func (m Measure) Func() Func {
	switch m {
	case MeasurePFHD:
		return PFHD
	case MeasureHamming:
		return Hamming
	case MeasureEuclidean:
		return Euclidean
	default:
		return nil
	}
}

// ParseMeasure maps a case-insensitive name ("pfhd", "hamming",
// "euclidean") to a Measure.
func ParseMeasure(name string) (Measure, error) {
	for _, m := range Measures() {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMeasure, name)
}
