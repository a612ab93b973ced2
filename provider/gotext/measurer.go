// Package gotext measures text width with HarfBuzz shaping via
// go-text/typesetting. It parses the composed font descriptor produced by
// the style package (e.g. "bold italic 14px Arial, sans-serif") and shapes
// against a font map seeded with the embedded Go fonts.
package gotext

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/typovia/textmeter/fonts"
)

// Measurer computes text widths using HarfBuzz shaping. The font map is
// shared mutable state, so calls are serialized; the metrics core itself
// never locks.
type Measurer struct {
	mu      sync.Mutex
	fontMap *fontscan.FontMap
	shaper  shaping.HarfbuzzShaper
}

// New creates a Measurer seeded with the embedded Go fonts as fallbacks.
func New() (*Measurer, error) {
	fm := fontscan.NewFontMap(nil)
	for _, f := range fonts.All() {
		if err := fm.AddFont(bytes.NewReader(f.Data), f.ID, f.Family); err != nil {
			return nil, fmt.Errorf("gotext: loading %s: %w", f.ID, err)
		}
	}
	return &Measurer{fontMap: fm}, nil
}

// Measure returns the advance width in pixels of text rendered with the
// given font descriptor. Deterministic for a fixed (font, text) pair.
func (m *Measurer) Measure(fontDesc, text string) (float64, error) {
	if text == "" {
		return 0, nil
	}
	desc := ParseDescriptor(fontDesc)

	m.mu.Lock()
	defer m.mu.Unlock()

	families := make([]string, 0, len(desc.Family)+2)
	families = append(families, desc.Family...)
	families = append(families, "Go", fontscan.SansSerif)

	m.fontMap.SetQuery(fontscan.Query{
		Families: families,
		Aspect: font.Aspect{
			Style:  desc.Style,
			Weight: desc.Weight,
		},
	})
	m.fontMap.SetScript(language.Latin)

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Size:      fixed.Int26_6(desc.Size * 64),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}

	// Split by font face so fallback glyphs still measure correctly.
	splits := shaping.SplitByFace(input, m.fontMap)

	var total fixed.Int26_6
	for _, split := range splits {
		out := m.shaper.Shape(split)
		total += out.Advance
	}
	return float64(total) / 64.0, nil
}

// Descriptor is a parsed font descriptor string.
type Descriptor struct {
	Style  font.Style
	Weight font.Weight
	Size   float64 // in pixels
	Family []string
}

// descRe matches "[weight] [style] [variant] <size>px family[, family...]".
// The variant is recognized but carries no aspect in this backend.
var descRe = regexp.MustCompile(
	`(?i)` +
		`(?:(normal|bold|bolder|lighter|[1-9]00)\s+)?` + // optional weight
		`(?:(normal|italic|oblique)\s+)?` + // optional style
		`(?:(normal|small-caps)\s+)?` + // optional variant
		`([\d.]+)px\s+` + // size (required)
		`(.+)`, // family (required)
)

// ParseDescriptor parses a composed font descriptor, defaulting to a normal
// 16px sans-serif face when the string does not match.
func ParseDescriptor(s string) Descriptor {
	result := Descriptor{
		Style:  font.StyleNormal,
		Weight: font.WeightNormal,
		Size:   16,
		Family: []string{"sans-serif"},
	}
	matches := descRe.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return result
	}
	if matches[1] != "" {
		result.Weight = parseWeight(matches[1])
	}
	switch strings.ToLower(matches[2]) {
	case "italic", "oblique":
		result.Style = font.StyleItalic
	}
	if size, err := strconv.ParseFloat(matches[4], 64); err == nil && size > 0 {
		result.Size = size
	}
	if matches[5] != "" {
		result.Family = parseFamilies(matches[5])
	}
	return result
}

func parseWeight(s string) font.Weight {
	switch strings.ToLower(s) {
	case "bold", "bolder":
		return font.WeightBold
	case "lighter":
		return font.WeightLight
	case "normal":
		return font.WeightNormal
	default:
		if w, err := strconv.Atoi(s); err == nil {
			return font.Weight(w)
		}
		return font.WeightNormal
	}
}

func parseFamilies(s string) []string {
	parts := strings.Split(s, ",")
	families := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.Trim(p, `"'`)
		p = strings.TrimSpace(p)
		if p != "" {
			families = append(families, p)
		}
	}
	if len(families) == 0 {
		return []string{"sans-serif"}
	}
	return families
}
