package metrics

import (
	"strings"

	"github.com/rivo/uniseg"
)

// SpacingAddOn returns the extra pixel width word and letter spacing
// contribute for a candidate string, beyond the glyph advances the provider
// reports.
type SpacingAddOn func(text string) float64

// spacingKeyword reports values that contribute no extra width.
func spacingKeyword(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "inherit", "initial", "unset", "normal":
		return true
	}
	return false
}

// NewSpacingAddOn builds the add-on from raw word-spacing and letter-spacing
// values. Keyword values count as zero; anything else converts through
// ToPixels against base. The returned function charges
// (wordCount-1)*wordPx + graphemeCount*letterPx, where words are counted
// after collapsing internal whitespace and graphemes on the raw string.
func NewSpacingAddOn(wordSpacing, letterSpacing string, base float64) (SpacingAddOn, error) {
	var wordPx, letterPx float64
	if !spacingKeyword(wordSpacing) {
		v, err := ToPixels(wordSpacing, base)
		if err != nil {
			return nil, err
		}
		wordPx = v
	}
	if !spacingKeyword(letterSpacing) {
		v, err := ToPixels(letterSpacing, base)
		if err != nil {
			return nil, err
		}
		letterPx = v
	}
	if wordPx == 0 && letterPx == 0 {
		return func(string) float64 { return 0 }, nil
	}
	return func(text string) float64 {
		words := len(strings.Fields(text)) - 1
		if words < 0 {
			words = 0
		}
		chars := uniseg.GraphemeClusterCount(text)
		return float64(words)*wordPx + float64(chars)*letterPx
	}, nil
}
