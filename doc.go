// Package picfuzzy is a toolkit for Picture Fuzzy Sets and the distances
// between them, built around the Picture Fuzzy Hellinger Distance (PFHD).
//
// 🚀 What is a Picture Fuzzy Set?
//
//	Every element x of a finite domain carries four degrees: membership ξ,
//	non-membership ζ, refusal η and the derived hesitancy θ = 1 − ξ − ζ − η.
//	Picture fuzzy data models votes, surveys and diagnoses where "yes",
//	"no", "abstain" and "refuse to answer" all occur.
//
// ✨ Packages:
//
//	pfs/       — the validated Set type, its options and errors
//	distance/  — PFHD, Hamming, Euclidean and nearest-pattern search
//	report/    — multi-measure comparisons as aligned tables or CSV
//	chart/     — grouped bar charts of a set as PNG
//	scenario/  — named sets and pairs loaded from YAML, plus built-in demos
//	cmd/pfhd   — command line front end
//
// Quick example:
//
//	p := pfs.MustNew([]float64{0.6}, []float64{0.2}, []float64{0.1})
//	q := pfs.MustNew([]float64{0.5}, []float64{0.3}, []float64{0.1})
//	d, _ := distance.PFHD(p, q)
//
//	go get github.com/katalvlaran/picfuzzy
package picfuzzy
