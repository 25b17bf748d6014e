// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/picfuzzy/distance"
	"github.com/katalvlaran/picfuzzy/pfs"
)

// DefaultPrecision is the number of decimals used when rendering distances.
const DefaultPrecision = 6

// defaultPairPrefix names unnamed pairs: "Pair 1", "Pair 2", ...
const defaultPairPrefix = "Pair "

// ErrNoPairs is returned when Compare receives nothing to compare.
var ErrNoPairs = errors.New("report: no pairs to compare")

// Pair is one comparison request.
type Pair struct {
	Name string // empty ⇒ "Pair i" (1-based)
	A, B *pfs.Set
}

// Row holds the three distances of one Pair.
type Row struct {
	Pair      string
	PFHD      float64
	Hamming   float64
	Euclidean float64
}

// Value returns the distance stored in r for measure m, or NaN for an
// unknown measure.
func (r Row) Value(m distance.Measure) float64 {
	switch m {
	case distance.MeasurePFHD:
		return r.PFHD
	case distance.MeasureHamming:
		return r.Hamming
	case distance.MeasureEuclidean:
		return r.Euclidean
	default:
		return math.NaN()
	}
}

// Compare evaluates every measure for every pair, in input order.
//
// Errors:
//   - ErrNoPairs for an empty input.
//   - The first distance error (e.g. distance.ErrLengthMismatch), wrapped with
//     the pair name. No partial result is returned.
//
// Complexity: O(Σ n_k) over all pairs.
func Compare(pairs []Pair) ([]Row, error) {
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}

	rows := make([]Row, 0, len(pairs))
	for i, p := range pairs {
		name := p.Name
		if name == "" {
			name = defaultPairPrefix + strconv.Itoa(i+1)
		}

		row := Row{Pair: name}
		for _, m := range distance.Measures() {
			d, err := m.Func()(p.A, p.B)
			if err != nil {
				return nil, fmt.Errorf("report: %s: %s: %w", name, m, err)
			}
			switch m {
			case distance.MeasurePFHD:
				row.PFHD = d
			case distance.MeasureHamming:
				row.Hamming = d
			case distance.MeasureEuclidean:
				row.Euclidean = d
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
