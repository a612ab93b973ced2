package metrics

import "github.com/typovia/textmeter/style"

// Provider measures the rendered pixel width of text for a composed font
// descriptor. Implementations back this with whatever the host has: a
// shaping library, a canvas, a headless font service. Results must be
// deterministic for a given (font, text) pair; implementations backed by
// shared mutable state serialize access themselves.
type Provider interface {
	Measure(font, text string) (float64, error)
}

// StyleSource resolves the computed style and the box width of the host
// element a Meter is bound to.
type StyleSource interface {
	Resolve() (style.Declarations, error)
	BoxWidth() (float64, error)
}

// TextSource reads the visible text content of the bound host element. It is
// only consulted when an operation is called without explicit text.
type TextSource interface {
	Read() (string, error)
}

// MeasureFunc reports the rendered width of a candidate string in pixels.
// The line packers consume the provider through this narrowed form.
type MeasureFunc func(text string) (float64, error)
