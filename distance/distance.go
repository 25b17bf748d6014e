package distance

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/picfuzzy/pfs"
)

// Errors:
//   - ErrLengthMismatch  — operands have different element counts.
//   - ErrNilSet          — an operand is nil.
//   - ErrEmptySet        — an operand has no elements (zero-value pfs.Set).
//   - ErrUnknownMeasure  — ParseMeasure got an unknown name.
//   - ErrNoPatterns      — Nearest got an empty pattern list.
var (
	// ErrLengthMismatch indicates the two sets are over domains of different size.
	ErrLengthMismatch = errors.New("distance: length mismatch")

	// ErrNilSet indicates a nil *pfs.Set operand.
	ErrNilSet = errors.New("distance: nil set")

	// ErrEmptySet indicates an operand with no elements; pfs.New never
	// returns one, only a zero-value pfs.Set can reach here.
	ErrEmptySet = errors.New("distance: empty set")

	// ErrUnknownMeasure indicates an unrecognized measure name.
	ErrUnknownMeasure = errors.New("distance: unknown measure")

	// ErrNoPatterns indicates Nearest was called without candidates.
	ErrNoPatterns = errors.New("distance: no patterns")
)

// PFHD computes the Picture Fuzzy Hellinger Distance between a and b.
//
// Algorithm:
//  1. Check both operands are non-nil and of equal length n.
//  2. For every element i and component c ∈ {ξ, ζ, η, θ}:
//     clamp both operands to max(0, ·), then
//     term += (√c_a[i] − √c_b[i])²
//  3. PFHD = (1/√2) · √((1/n) · term)
//
// The clamp guards the square roots against residual negatives; validated
// sets never hold any, so for them it is a no-op.
//
// Complexity: O(n) time, O(1) memory.
func PFHD(a, b *pfs.Set) (float64, error) {
	n, err := checkOperands(a, b)
	if err != nil {
		return 0, err
	}

	var total float64
	for i := 0; i < n; i++ {
		for _, c := range pfs.Components {
			d := math.Sqrt(max(0, a.ValueAt(c, i))) - math.Sqrt(max(0, b.ValueAt(c, i)))
			total += d * d
		}
	}

	return (1 / math.Sqrt2) * math.Sqrt((1/float64(n))*total), nil
}

// Hamming computes the normalized Hamming distance
//
//	(1/(4n)) · Σ_i Σ_c |c_a[i] − c_b[i]|
//
// Complexity: O(n) time, O(1) memory.
func Hamming(a, b *pfs.Set) (float64, error) {
	n, err := checkOperands(a, b)
	if err != nil {
		return 0, err
	}

	var total float64
	for i := 0; i < n; i++ {
		for _, c := range pfs.Components {
			total += math.Abs(a.ValueAt(c, i) - b.ValueAt(c, i))
		}
	}

	return (1 / float64(4*n)) * total, nil
}

// Euclidean computes the normalized Euclidean distance
//
//	√( (1/(4n)) · Σ_i Σ_c (c_a[i] − c_b[i])² )
//
// Complexity: O(n) time, O(1) memory.
func Euclidean(a, b *pfs.Set) (float64, error) {
	n, err := checkOperands(a, b)
	if err != nil {
		return 0, err
	}

	var total float64
	for i := 0; i < n; i++ {
		for _, c := range pfs.Components {
			d := a.ValueAt(c, i) - b.ValueAt(c, i)
			total += d * d
		}
	}

	return math.Sqrt((1 / float64(4*n)) * total), nil
}

// checkOperands fails fast before any arithmetic and returns n.
func checkOperands(a, b *pfs.Set) (int, error) {
	if a == nil || b == nil {
		return 0, ErrNilSet
	}
	if a.Len() != b.Len() {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, a.Len(), b.Len())
	}
	if a.Len() == 0 {
		return 0, ErrEmptySet
	}

	return a.Len(), nil
}
