package distance

import (
	"fmt"

	"github.com/katalvlaran/picfuzzy/pfs"
)

// Nearest classifies sample by minimum distance: it returns the index of the
// pattern closest to sample under fn, together with that distance.
//
// This is the pattern-recognition scheme of the picture fuzzy distance
// literature: each known pattern is a PFS over the same feature domain, and
// an unknown sample is assigned to the pattern it is nearest to.
//
// Behavior highlights:
//   - Ties resolve to the lowest index (strict < comparison).
//   - fn == nil selects PFHD.
//   - The first failing comparison aborts the search; its error carries the
//     pattern index.
//
// Complexity: O(k·n) for k patterns of n elements.
func Nearest(sample *pfs.Set, patterns []*pfs.Set, fn Func) (int, float64, error) {
	if len(patterns) == 0 {
		return -1, 0, ErrNoPatterns
	}
	if fn == nil {
		fn = PFHD
	}

	best, bestDist := -1, 0.0
	for i, p := range patterns {
		d, err := fn(sample, p)
		if err != nil {
			return -1, 0, fmt.Errorf("pattern %d: %w", i, err)
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}

	return best, bestDist, nil
}
