// SPDX-License-Identifier: MIT

package pfs

import (
	"fmt"
	"strconv"
)

// Set is a validated, immutable Picture Fuzzy Set over n labelled elements.
//
// The zero value is not usable; construct with New or MustNew.
type Set struct {
	elements      []string
	membership    []float64
	nonMembership []float64
	refusal       []float64
	hesitancy     []float64 // derived, clamped ≥ 0
}

// New builds a Set from ξ, ζ and η and derives θ.
//
// Implementation:
//   - Stage 1: validate shape (n ≥ 1, equal lengths, label count).
//   - Stage 2: copy inputs; θ_raw[i] = 1 − ξ[i] − ζ[i] − η[i].
//   - Stage 3: validate ranges of ξ, ζ, η (exact [0,1]).
//   - Stage 4: validate ξ+ζ+η ≤ 1+ε.
//   - Stage 5: clamp θ to ≥ 0, then reject θ_raw < −ε.
//
// Errors:
//   - *ValidationError wrapping ErrEmpty, ErrShapeMismatch, ErrOutOfRange,
//     ErrSumExceedsBound or ErrNegativeHesitancy.
//
// Complexity: O(n) time and memory.
func New(membership, nonMembership, refusal []float64, opts ...Option) (*Set, error) {
	o := gatherOptions(opts)

	// Stage 1
	if err := validateShape(membership, nonMembership, refusal, o.labels); err != nil {
		return nil, err
	}
	n := len(membership)

	// Stage 2
	s := &Set{
		membership:    append([]float64(nil), membership...),
		nonMembership: append([]float64(nil), nonMembership...),
		refusal:       append([]float64(nil), refusal...),
		hesitancy:     make([]float64, n),
	}
	raw := make([]float64, n)
	for i := 0; i < n; i++ {
		raw[i] = 1 - s.membership[i] - s.nonMembership[i] - s.refusal[i]
	}

	// Stage 3
	for _, c := range [...]Component{Membership, NonMembership, Refusal} {
		if err := validateRange(c, s.values(c)); err != nil {
			return nil, err
		}
	}

	// Stage 4
	if err := validateSum(s.membership, s.nonMembership, s.refusal, o.eps); err != nil {
		return nil, err
	}

	// Stage 5
	if err := clampHesitancy(raw, s.hesitancy, o.eps); err != nil {
		return nil, err
	}

	if o.labels != nil {
		s.elements = o.labels
	} else {
		s.elements = make([]string, n)
		for i := range s.elements {
			s.elements[i] = DefaultLabelPrefix + strconv.Itoa(i+1)
		}
	}

	return s, nil
}

// MustNew is like New but panics on error. Intended for literals.
func MustNew(membership, nonMembership, refusal []float64, opts ...Option) *Set {
	s, err := New(membership, nonMembership, refusal, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

// Len returns the number of elements n.
func (s *Set) Len() int { return len(s.membership) }

// Elements returns a copy of the element labels.
func (s *Set) Elements() []string { return append([]string(nil), s.elements...) }

// Membership returns a copy of ξ.
func (s *Set) Membership() []float64 { return clone(s.membership) }

// NonMembership returns a copy of ζ.
func (s *Set) NonMembership() []float64 { return clone(s.nonMembership) }

// Refusal returns a copy of η.
func (s *Set) Refusal() []float64 { return clone(s.refusal) }

// Hesitancy returns a copy of the clamped θ.
func (s *Set) Hesitancy() []float64 { return clone(s.hesitancy) }

// Values returns a copy of the sequence for component c, or nil for an
// unknown component.
func (s *Set) Values(c Component) []float64 { return clone(s.values(c)) }

// ValueAt returns component c of element i without allocating.
// It panics if i is out of range, like a slice index.
func (s *Set) ValueAt(c Component, i int) float64 { return s.values(c)[i] }

// At returns the element at position i.
func (s *Set) At(i int) (Element, error) {
	if i < 0 || i >= s.Len() {
		return Element{}, fmt.Errorf("pfs: At(%d): index out of range [0,%d)", i, s.Len())
	}

	return Element{
		Label:         s.elements[i],
		Membership:    s.membership[i],
		NonMembership: s.nonMembership[i],
		Refusal:       s.refusal[i],
		Hesitancy:     s.hesitancy[i],
	}, nil
}

// Equal reports whether s and t hold exactly the same four sequences.
// Labels are not compared: two sets over differently named domains with
// identical degrees are at distance zero.
func (s *Set) Equal(t *Set) bool {
	if s == nil || t == nil {
		return s == t
	}
	if s.Len() != t.Len() {
		return false
	}
	for _, c := range Components {
		a, b := s.values(c), t.values(c)
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}

	return true
}

// values returns the internal slice for c; callers must not modify it.
func (s *Set) values(c Component) []float64 {
	switch c {
	case Membership:
		return s.membership
	case NonMembership:
		return s.nonMembership
	case Refusal:
		return s.refusal
	case Hesitancy:
		return s.hesitancy
	default:
		return nil
	}
}

func clone(v []float64) []float64 {
	if v == nil {
		return nil
	}

	return append([]float64(nil), v...)
}
