// SPDX-License-Identifier: MIT

// Package report compares pairs of Picture Fuzzy Sets under every built-in
// distance measure and renders the result as a table or CSV.
//
// One Row per pair:
//
//	Pair          PFHD      Hamming   Euclidean
//	Similar PFS   0.220074  0.075000  0.086603
//
// Numbers are rendered at a fixed precision (DefaultPrecision = 6) through
// github.com/shopspring/decimal, so the text output does not depend on
// fmt's float formatting.
package report
