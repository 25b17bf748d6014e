// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/picfuzzy/pfs"
)

var (
	// ErrNilSet indicates a nil *pfs.Set.
	ErrNilSet = errors.New("chart: nil set")

	// ErrTooSmall indicates the image cannot hold the chart.
	ErrTooSmall = errors.New("chart: image too small for the number of elements")
)

const (
	// dpi maps one vg point to one pixel.
	dpi = 72

	minSide          = 100
	pixelsPerElement = 8
	gridStep         = 0.2
	barsPerSet       = 4
)

// barColors follow the component order ξ, ζ, η, θ.
var barColors = [barsPerSet]color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
}

// yTicks labels the degree axis every gridStep; the grid follows them.
func yTicks() plot.ConstantTicks {
	var ticks plot.ConstantTicks
	for k := 0; float64(k)*gridStep <= 1+1e-9; k++ {
		v := float64(k) * gridStep
		ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf("%.1f", v)})
	}

	return ticks
}

// newPlot assembles the chart of s: one nominal x position per element and
// one bar series per component. Bar geometry is set later by fitBars.
func newPlot(s *pfs.Set, o Options) (*plot.Plot, []*plotter.BarChart, error) {
	p := plot.New()
	p.Title.Text = o.title
	p.Y.Label.Text = "Degree"
	p.Y.Tick.Marker = yTicks()

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	bars := make([]*plotter.BarChart, 0, barsPerSet)
	for _, c := range pfs.Components {
		b, err := plotter.NewBarChart(plotter.Values(s.Values(c)), 1)
		if err != nil {
			return nil, nil, fmt.Errorf("chart: %s: %w", c, err)
		}
		b.Color = barColors[c]
		b.LineStyle.Width = 0
		p.Add(b)
		p.Legend.Add(legendLabel(c), b)
		bars = append(bars, b)
	}
	p.Legend.Top = true

	p.NominalX(s.Elements()...)
	p.X.Min, p.X.Max = -0.5, float64(s.Len())-0.5
	p.Y.Min, p.Y.Max = 0, 1

	return p, bars, nil
}

// fitBars sizes the series to the data area of dc. With group pitch P each
// bar is w = P/5 wide and bar k is centred at (k−1.5)·w from the group
// centre. The data area depends on the bar glyph boxes, so the fit runs
// twice to settle.
func fitBars(p *plot.Plot, dc draw.Canvas, bars []*plotter.BarChart) {
	n := vg.Length(p.X.Max - p.X.Min)
	for pass := 0; pass < 2; pass++ {
		area := p.DataCanvas(dc)
		w := (area.Max.X - area.Min.X) / n / 5
		for k, b := range bars {
			b.Width = w
			b.Offset = vg.Length(float64(k)-1.5) * w
		}
	}
}

// render draws s onto a fresh raster canvas.
func render(s *pfs.Set, opts []Option) (*vgimg.Canvas, error) {
	if s == nil {
		return nil, ErrNilSet
	}
	o := gatherOptions(opts)
	n := s.Len()
	if o.width < minSide || o.height < minSide || o.width < pixelsPerElement*n {
		return nil, fmt.Errorf("%w: %dx%d for %d elements", ErrTooSmall, o.width, o.height, n)
	}

	p, bars, err := newPlot(s, o)
	if err != nil {
		return nil, err
	}
	c := vgimg.NewWith(vgimg.UseWH(vg.Length(o.width), vg.Length(o.height)), vgimg.UseDPI(dpi))
	dc := draw.New(c)
	fitBars(p, dc, bars)
	p.Draw(dc)

	return c, nil
}

// Render draws s as a grouped bar chart: one group per element, four bars
// (ξ ζ η θ) per group, y axis fixed to [0,1] with grid lines every 0.2.
//
// Errors:
//   - ErrNilSet for a nil set.
//   - ErrTooSmall when either side is under 100 pixels or the width leaves
//     less than eight pixels per element.
func Render(s *pfs.Set, opts ...Option) (image.Image, error) {
	c, err := render(s, opts)
	if err != nil {
		return nil, err
	}

	return c.Image(), nil
}

// WritePNG renders s and encodes it as PNG to w.
func WritePNG(w io.Writer, s *pfs.Set, opts ...Option) error {
	c, err := render(s, opts)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("chart: encode png: %w", err)
	}

	return nil
}

// legendLabel is the caption of component c, e.g. "Membership (ξ)".
func legendLabel(c pfs.Component) string {
	names := [barsPerSet]string{"Membership", "Non-membership", "Refusal", "Hesitancy"}

	return fmt.Sprintf("%s (%s)", names[c], c.Symbol())
}
