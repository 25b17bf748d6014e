// SPDX-License-Identifier: MIT

// Package chart renders a Picture Fuzzy Set as a grouped bar chart.
//
// Every element becomes one group of four bars (ξ, ζ, η, θ) placed at
// −1.5w, −0.5w, +0.5w and +1.5w around the group centre, w being a fifth of
// the group pitch. The y axis spans [0,1] with grid lines every 0.2.
//
//	img, err := chart.Render(s, chart.WithTitle("P1"))
//	err = chart.WritePNG(f, s, chart.WithSize(1024, 600))
//
// Charts are built with gonum.org/v1/plot and rasterized by its vgimg
// backend at one pixel per point, so WithSize is exact in pixels.
package chart
