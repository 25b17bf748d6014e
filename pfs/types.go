// SPDX-License-Identifier: MIT

// Package pfs: domain types. The Set itself lives in set.go.
package pfs

import "math"

// Component identifies one of the four degrees carried by every element.
type Component int

const (
	// Membership is ξ, the degree of belonging.
	Membership Component = iota

	// NonMembership is ζ, the degree of not belonging.
	NonMembership

	// Refusal is η, the degree of explicit neutrality.
	Refusal

	// Hesitancy is θ = 1 − ξ − ζ − η, derived and clamped to ≥ 0.
	Hesitancy
)

// Components lists every component in canonical order ξ, ζ, η, θ.
// The order is used by formatting, distances and charts alike.
var Components = [...]Component{Membership, NonMembership, Refusal, Hesitancy}

// String returns the component name as used in error messages.
func (c Component) String() string {
	switch c {
	case Membership:
		return "membership"
	case NonMembership:
		return "non_membership"
	case Refusal:
		return "refusal"
	case Hesitancy:
		return "hesitancy"
	default:
		return "unknown"
	}
}

// Symbol returns the Greek letter conventionally used for the component.
func (c Component) Symbol() string {
	switch c {
	case Membership:
		return "ξ"
	case NonMembership:
		return "ζ"
	case Refusal:
		return "η"
	case Hesitancy:
		return "θ"
	default:
		return "?"
	}
}

// Element is a read-only snapshot of one position of a Set.
type Element struct {
	Label         string
	Membership    float64
	NonMembership float64
	Refusal       float64
	Hesitancy     float64
}

// Value returns the degree of e for component c.
func (e Element) Value(c Component) float64 {
	switch c {
	case Membership:
		return e.Membership
	case NonMembership:
		return e.NonMembership
	case Refusal:
		return e.Refusal
	case Hesitancy:
		return e.Hesitancy
	default:
		return math.NaN()
	}
}
