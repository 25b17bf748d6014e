// SPDX-License-Identifier: MIT

package pfs

import (
	"fmt"
	"strings"
)

// formatHeader opens every rendering of a Set.
const formatHeader = "Picture Fuzzy Set:\n"

// String renders the set one element per line, for diagnostics:
//
//	Picture Fuzzy Set:
//	A: (ξ=0.600, ζ=0.200, η=0.100, θ=0.100)
//
// Values are printed with three decimals. The format is not meant for
// machine exchange. A nil set renders as "<nil>".
func (s *Set) String() string {
	if s == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(formatHeader)
	for i, label := range s.elements {
		fmt.Fprintf(&b, "%s: (ξ=%.3f, ζ=%.3f, η=%.3f, θ=%.3f)\n",
			label, s.membership[i], s.nonMembership[i], s.refusal[i], s.hesitancy[i])
	}

	return b.String()
}
