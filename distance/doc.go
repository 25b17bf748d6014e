// Package distance computes distance measures between two Picture Fuzzy Sets
// defined over the same number of elements.
//
// 🚀 What is PFHD?
//
//	The Picture Fuzzy Hellinger Distance compares two sets component by
//	component on the square-root scale, the way the Hellinger distance
//	compares probability distributions:
//
//	  PFHD(P,Q) = (1/√2) · √( (1/n) · Σ_i Σ_c (√c_P[i] − √c_Q[i])² )
//
//	where c ranges over membership ξ, non-membership ζ, refusal η and
//	hesitancy θ. It is bounded in [0,1].
//
// ✨ Measures:
//   - PFHD      — Hellinger-type, the primary measure
//   - Hamming   — (1/4n) · Σ |Δ|
//   - Euclidean — √( (1/4n) · Σ Δ² )
//   - Nearest   — pattern recognition by minimum distance
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/picfuzzy/distance"
//
//	d, err := distance.PFHD(a, b)
//	if errors.Is(err, distance.ErrLengthMismatch) {
//	  // sets are over domains of different size
//	}
//
// All functions are pure: they read their operands, never modify them, and
// may be called concurrently.
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(1)
package distance
