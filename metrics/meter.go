package metrics

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/typovia/textmeter/style"
)

// Options tune a single measurement call. String fields are raw style
// values; zero fields fall back through the instance overrides, the resolved
// element style and the built-in defaults.
type Options struct {
	FontSize     string
	LineHeight   string
	FontFamily   string
	FontWeight   string
	Width        float64 // available width in px; 0 falls back to box/style width
	Multiline    bool    // Width op: report the widest packed line
	BaseFontSize float64 // em/rem reference, defaults to DefaultBaseFontSize
}

func (o Options) declarations() style.Declarations {
	d := style.Declarations{}
	if o.FontSize != "" {
		d["font-size"] = o.FontSize
	}
	if o.LineHeight != "" {
		d["line-height"] = o.LineHeight
	}
	if o.FontFamily != "" {
		d["font-family"] = o.FontFamily
	}
	if o.FontWeight != "" {
		d["font-weight"] = o.FontWeight
	}
	return d
}

func (o Options) base() float64 {
	if o.BaseFontSize > 0 {
		return o.BaseFontSize
	}
	return DefaultBaseFontSize
}

// Meter measures text against a glyph metrics provider. All operations are
// read-only: every call resolves its style snapshot fresh, so a Meter can be
// shared across goroutines as long as its capabilities allow it.
type Meter struct {
	provider  Provider
	styles    StyleSource
	texts     TextSource
	overrides style.Declarations
}

// Option configures a Meter.
type Option func(*Meter)

// WithStyleSource binds the computed-style capability of a host element.
func WithStyleSource(s StyleSource) Option { return func(m *Meter) { m.styles = s } }

// WithTextSource binds the text-content capability of a host element.
func WithTextSource(t TextSource) Option { return func(m *Meter) { m.texts = t } }

// WithOverrides sets instance-level style overrides, applied above the
// resolved element style on every call.
func WithOverrides(d style.Declarations) Option { return func(m *Meter) { m.overrides = d } }

// New creates a Meter. A nil provider is accepted here; the missing
// capability surfaces on the first measurement call.
func New(p Provider, opts ...Option) *Meter {
	m := &Meter{provider: p}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// call carries the state resolved once per operation.
type call struct {
	decls    style.Declarations
	text     string
	base     float64
	fontSize float64
	font     string
	addOn    SpacingAddOn
}

func (m *Meter) resolve(text string, opts Options, overrides style.Declarations) (*call, error) {
	if m.provider == nil {
		return nil, &MissingCapabilityError{Capability: "metrics provider"}
	}
	var resolved style.Declarations
	if m.styles != nil {
		r, err := m.styles.Resolve()
		if err != nil {
			return nil, err
		}
		resolved = r
	}
	decls := style.Merge(style.Defaults(), resolved, m.overrides, opts.declarations(), overrides)

	if text == "" {
		if m.texts == nil {
			return nil, &MissingCapabilityError{Capability: "text source"}
		}
		var err error
		text, err = m.texts.Read()
		if err != nil {
			return nil, err
		}
	}

	base := opts.base()
	fontSize, err := ToPixels(decls.Get("font-size"), base)
	if err != nil {
		return nil, err
	}
	addOn, err := NewSpacingAddOn(decls.Get("word-spacing"), decls.Get("letter-spacing"), base)
	if err != nil {
		return nil, err
	}
	return &call{
		decls:    decls,
		text:     prepareText(text, decls),
		base:     base,
		fontSize: fontSize,
		font:     style.FontDescriptor(decls, fontSize),
		addOn:    addOn,
	}, nil
}

var (
	blankRun = regexp.MustCompile(`[^\S\n]+`)
	lineEdge = regexp.MustCompile(` ?\n ?`)
	wsRun    = regexp.MustCompile(`\s+`)
)

// prepareText applies the white-space and text-transform policies. It is
// idempotent: preparing prepared text changes nothing.
func prepareText(text string, decls style.Declarations) string {
	switch decls.Get("white-space") {
	case "pre", "pre-wrap":
		// preserved as-is
	case "pre-line":
		text = blankRun.ReplaceAllString(text, " ")
		text = lineEdge.ReplaceAllString(text, "\n")
		text = strings.Trim(text, " ")
	default:
		text = strings.TrimSpace(wsRun.ReplaceAllString(text, " "))
	}
	switch strings.ToLower(decls.Get("text-transform")) {
	case "uppercase":
		text = strings.ToUpper(text)
	case "lowercase":
		text = strings.ToLower(text)
	}
	return text
}

// availableWidth resolves the pixel budget: explicit option, then the
// element's box width, then a style width declaration, minus horizontal
// padding. With no width from any layer the result is NaN, which the
// packers treat as unbounded.
func (m *Meter) availableWidth(opts Options, c *call) (float64, error) {
	w := opts.Width
	if w <= 0 && m.styles != nil {
		if bw, err := m.styles.BoxWidth(); err == nil && bw > 0 {
			w = bw
		}
	}
	if w <= 0 {
		if v := c.decls.Get("width"); v != "" {
			px, err := ToPixels(v, c.base)
			if err != nil {
				return 0, err
			}
			if px > 0 {
				w = px
			}
		}
	}
	if w <= 0 {
		return math.NaN(), nil
	}
	for _, side := range [...]string{"padding-left", "padding-right"} {
		v := c.decls.Get(side)
		if spacingKeyword(v) {
			continue
		}
		px, err := ToPixels(v, c.base)
		if err != nil {
			return 0, err
		}
		w -= px
	}
	return w, nil
}

func (m *Meter) packedLines(opts Options, c *call) ([]string, error) {
	w, err := m.availableWidth(opts, c)
	if err != nil {
		return nil, err
	}
	measure := func(s string) (float64, error) { return m.provider.Measure(c.font, s) }
	if c.decls.Get("word-break") == "break-all" {
		return PackBreakAll(c.text, w, c.addOn, measure)
	}
	return PackDefault(c.text, w, c.addOn, measure)
}

// Width returns the rendered pixel width of the text, including the spacing
// add-on. With opts.Multiline set it is the width of the widest packed line.
func (m *Meter) Width(text string, opts Options, overrides style.Declarations) (float64, error) {
	c, err := m.resolve(text, opts, overrides)
	if err != nil {
		return 0, err
	}
	if opts.Multiline {
		lines, err := m.packedLines(opts, c)
		if err != nil {
			return 0, err
		}
		widest := 0.0
		for _, line := range lines {
			w, err := m.provider.Measure(c.font, line)
			if err != nil {
				return 0, err
			}
			if w += c.addOn(line); w > widest {
				widest = w
			}
		}
		return widest, nil
	}
	w, err := m.provider.Measure(c.font, c.text)
	if err != nil {
		return 0, err
	}
	return w + c.addOn(c.text), nil
}

// Lines packs the text into lines for the resolved width budget, honoring
// the word-break policy.
func (m *Meter) Lines(text string, opts Options, overrides style.Declarations) ([]string, error) {
	c, err := m.resolve(text, opts, overrides)
	if err != nil {
		return nil, err
	}
	return m.packedLines(opts, c)
}

// Height returns ceil(lineCount x lineHeightPx) for the packed text.
func (m *Meter) Height(text string, opts Options, overrides style.Declarations) (float64, error) {
	c, err := m.resolve(text, opts, overrides)
	if err != nil {
		return 0, err
	}
	lines, err := m.packedLines(opts, c)
	if err != nil {
		return 0, err
	}
	lh, err := c.lineHeight()
	if err != nil {
		return 0, err
	}
	return math.Ceil(float64(len(lines)) * lh), nil
}

// lineHeight resolves the line-height declaration: unitless factors multiply
// the font size, lengths convert with the font size as the em reference,
// "normal" or absence falls back to 1.2x.
func (c *call) lineHeight() (float64, error) {
	v := c.decls.Get("line-height")
	if v == "" || strings.EqualFold(v, "normal") {
		return c.fontSize * 1.2, nil
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return c.fontSize * f, nil
	}
	return ToPixels(v, c.fontSize)
}

// MaxFontSize returns the largest whole-pixel font size at which the text
// still fits the resolved width budget, or 0 when no positive size fits.
func (m *Meter) MaxFontSize(text string, opts Options, overrides style.Declarations) (int, error) {
	c, err := m.resolve(text, opts, overrides)
	if err != nil {
		return 0, err
	}
	if c.text == "" {
		return 0, nil
	}
	w, err := m.availableWidth(opts, c)
	if err != nil {
		return 0, err
	}
	renderAt := func(size int) (float64, error) {
		font := style.FontDescriptor(c.decls, float64(size))
		px, err := m.provider.Measure(font, c.text)
		if err != nil {
			return 0, err
		}
		return px + c.addOn(c.text), nil
	}
	return MaxFontSize(w, renderAt)
}
