// SPDX-License-Identifier: MIT
// Package: pfs
//
// Purpose:
//   - Keep every invariant check of New in one place, in the exact order the
//     numeric policy requires: shape → range → sum bound → hesitancy.
//   - Return *ValidationError wrapping a sentinel so call sites stay flat.
//
// All checks are pure and allocate only on failure.

package pfs

// validateShape checks n ≥ 1 and equal lengths of ξ, ζ, η and labels (if any).
func validateShape(membership, nonMembership, refusal []float64, labels []string) error {
	n := len(membership)
	if n == 0 && len(nonMembership) == 0 && len(refusal) == 0 {
		return &ValidationError{Index: noIndex, Err: ErrEmpty}
	}
	if len(nonMembership) != n {
		return &ValidationError{Component: NonMembership, Index: noIndex, Err: ErrShapeMismatch}
	}
	if len(refusal) != n {
		return &ValidationError{Component: Refusal, Index: noIndex, Err: ErrShapeMismatch}
	}
	if labels != nil && len(labels) != n {
		return &ValidationError{Index: noIndex, Err: ErrShapeMismatch}
	}

	return nil
}

// validateRange requires every value of c to lie in [0,1] with no tolerance.
// The negated comparison also rejects NaN.
func validateRange(c Component, values []float64) error {
	for i, v := range values {
		if !(v >= 0 && v <= 1) {
			return &ValidationError{Component: c, Index: i, Value: v, Err: ErrOutOfRange}
		}
	}

	return nil
}

// validateSum requires ξ+ζ+η ≤ 1+eps for every element.
func validateSum(membership, nonMembership, refusal []float64, eps float64) error {
	for i := range membership {
		sum := membership[i] + nonMembership[i] + refusal[i]
		if sum > 1+eps {
			return &ValidationError{Index: i, Value: sum, Err: ErrSumExceedsBound}
		}
	}

	return nil
}

// clampHesitancy writes max(0, raw[i]) into out and rejects any raw value
// below −eps. Clamping happens first so that out is fully populated even
// when a later element fails.
func clampHesitancy(raw, out []float64, eps float64) error {
	for i, h := range raw {
		out[i] = max(0, h)
	}
	for i, h := range raw {
		if h < -eps {
			return &ValidationError{Component: Hesitancy, Index: i, Value: h, Err: ErrNegativeHesitancy}
		}
	}

	return nil
}
