// SPDX-License-Identifier: MIT
// Package pfs: sentinel errors and the typed ValidationError.
//
// All construction failures are returned as *ValidationError whose Err field
// is one of the sentinels below, so callers can match the kind with errors.Is
// and recover the offending component/index with errors.As.

package pfs

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a set would contain no elements.
	ErrEmpty = errors.New("pfs: set must contain at least one element")

	// ErrShapeMismatch indicates that ξ, ζ, η (and labels, when given)
	// do not share the same length.
	ErrShapeMismatch = errors.New("pfs: sequences differ in length")

	// ErrOutOfRange indicates a ξ, ζ or η value outside [0,1] (NaN included).
	ErrOutOfRange = errors.New("pfs: out of range")

	// ErrSumExceedsBound indicates ξ+ζ+η > 1+ε for some element.
	ErrSumExceedsBound = errors.New("pfs: sum exceeds bound")

	// ErrNegativeHesitancy indicates that 1−ξ−ζ−η fell below −ε.
	ErrNegativeHesitancy = errors.New("pfs: hesitancy negative")
)

// noIndex marks a ValidationError that is not tied to a single element.
const noIndex = -1

// ValidationError describes which quantity broke a set invariant.
//
// Index is the element position, or -1 for whole-set failures (empty input,
// length mismatch). Value holds the offending number where one exists.
type ValidationError struct {
	Component Component
	Index     int
	Value     float64
	Err       error
}

// Error implements error.
func (e *ValidationError) Error() string {
	switch {
	case e.Index == noIndex:
		return e.Err.Error()
	case errors.Is(e.Err, ErrSumExceedsBound):
		return fmt.Sprintf("%v: element %d: ξ+ζ+η = %g", e.Err, e.Index, e.Value)
	default:
		return fmt.Sprintf("%v: %s[%d] = %g", e.Err, e.Component, e.Index, e.Value)
	}
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ValidationError) Unwrap() error { return e.Err }
