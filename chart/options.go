// SPDX-License-Identifier: MIT

package chart

// Defaults.
const (
	DefaultWidth  = 800
	DefaultHeight = 480
	DefaultTitle  = "Picture Fuzzy Set"
)

const panicSizeInvalid = "chart: WithSize: width and height must be positive"

// Option configures Render and WritePNG.
type Option func(*Options)

// Options stores the effective chart configuration.
type Options struct {
	width, height int
	title         string
}

func gatherOptions(opts []Option) Options {
	o := Options{width: DefaultWidth, height: DefaultHeight, title: DefaultTitle}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *Options) { o.title = title }
}

// WithSize sets the image size in pixels. Panics on non-positive values.
func WithSize(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic(panicSizeInvalid)
	}

	return func(o *Options) { o.width, o.height = width, height }
}
