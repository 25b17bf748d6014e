// SPDX-License-Identifier: MIT

// Package pfs implements Picture Fuzzy Sets (PFS): per-element tuples of
// membership ξ, non-membership ζ, refusal η and a derived hesitancy θ.
//
// What is a Picture Fuzzy Set?
//
//	A generalization of the intuitionistic fuzzy set in which every element
//	of a fixed domain carries four degrees:
//	  • ξ — how much the element belongs to the set
//	  • ζ — how much it does not belong
//	  • η — explicit refusal / neutrality
//	  • θ = 1 − ξ − ζ − η — residual hesitancy
//	with ξ, ζ, η ∈ [0,1] and ξ + ζ + η ≤ 1.
//
// Numeric policy:
//
//   - ξ, ζ and η must lie in [0,1] exactly; no tolerance is applied.
//   - The sum ξ+ζ+η may exceed 1 by at most ε (DefaultEpsilon = 0.001)
//     to absorb rounding noise from upstream producers.
//   - θ is computed as 1 − ξ − ζ − η, clamped to 0, and rejected only when the
//     unclamped value was below −ε. A raw θ of −0.0005 is stored as 0.
//
// Usage:
//
//	s, err := pfs.New(
//	  []float64{0.6, 0.7},  // ξ
//	  []float64{0.2, 0.1},  // ζ
//	  []float64{0.1, 0.2},  // η
//	  pfs.WithElements("A", "B"),
//	)
//	var ve *pfs.ValidationError
//	if errors.As(err, &ve) {
//	  // ve.Component, ve.Index, ve.Value; errors.Is(err, pfs.ErrOutOfRange) ...
//	}
//	fmt.Print(s)
//
// A Set is immutable after construction. Inputs are copied on the way in and
// every accessor returns a fresh slice, so a Set may be shared freely between
// goroutines.
//
// Distances between two sets live in package distance.
package pfs
