package metrics

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultBaseFontSize is the reference size for em/rem conversion when the
// caller does not provide one.
const DefaultBaseFontSize = 16.0

// pt lengths convert at the CSS ratio of 96 device pixels per 72 points.
const pxPerPt = 96.0 / 72.0

// ToPixels converts a length string with a unit suffix to device pixels.
// Supported units: px (identity), pt, em and rem (both relative to base).
// base <= 0 falls back to DefaultBaseFontSize. Any other suffix fails with
// an UnsupportedUnitError naming the offending unit.
func ToPixels(value string, base float64) (float64, error) {
	if base <= 0 {
		base = DefaultBaseFontSize
	}
	v := strings.ToLower(strings.TrimSpace(value))
	for _, suf := range []struct {
		unit string
		mult float64
	}{
		{"px", 1},
		{"rem", base},
		{"em", base},
		{"pt", pxPerPt},
	} {
		num := strings.TrimSuffix(v, suf.unit)
		if num == v {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, fmt.Errorf("textmeter: parse length %q: %w", value, err)
		}
		return f * suf.mult, nil
	}
	return 0, &UnsupportedUnitError{Unit: trailingUnit(v), Value: value}
}

// trailingUnit extracts the non-numeric suffix for error reporting.
func trailingUnit(v string) string {
	i := strings.LastIndexFunc(v, func(r rune) bool {
		return r >= '0' && r <= '9' || r == '.' || r == '-' || r == '+'
	})
	return v[i+1:]
}
