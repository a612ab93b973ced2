package metrics

import (
	"errors"
	"math"
	"testing"
)

// TestToPixelsConversions covers every supported unit against the default
// and an explicit base font size.
func TestToPixelsConversions(t *testing.T) {
	cases := []struct {
		value string
		base  float64
		want  float64
	}{
		{"10px", 0, 10},
		{"1.5px", 0, 1.5},
		{"  12px ", 0, 12},
		{"72pt", 0, 96},
		{"12pt", 0, 16},
		{"1em", 0, 16},
		{"2em", 10, 20},
		{"2rem", 10, 20},
		{"1.5rem", 0, 24},
		{"0px", 0, 0},
		{"-4px", 0, -4},
	}
	for _, c := range cases {
		got, err := ToPixels(c.value, c.base)
		if err != nil {
			t.Fatalf("ToPixels(%q, %g): %v", c.value, c.base, err)
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("ToPixels(%q, %g) = %g, want %g", c.value, c.base, got, c.want)
		}
	}
}

// TestToPixelsUnsupportedUnit asserts the error names the offending unit and
// is matchable with errors.As.
func TestToPixelsUnsupportedUnit(t *testing.T) {
	for value, unit := range map[string]string{
		"2xyz": "xyz",
		"10vw": "vw",
		"3%":   "%",
	} {
		_, err := ToPixels(value, 0)
		if err == nil {
			t.Fatalf("ToPixels(%q) expected error", value)
		}
		var ue *UnsupportedUnitError
		if !errors.As(err, &ue) {
			t.Fatalf("ToPixels(%q) error %v is not UnsupportedUnitError", value, err)
		}
		if ue.Unit != unit {
			t.Fatalf("ToPixels(%q) reported unit %q, want %q", value, ue.Unit, unit)
		}
	}
}

// TestToPixelsBareNumber: a unit-less value is not a length.
func TestToPixelsBareNumber(t *testing.T) {
	var ue *UnsupportedUnitError
	if _, err := ToPixels("12", 0); !errors.As(err, &ue) {
		t.Fatalf("expected UnsupportedUnitError for bare number, got %v", err)
	}
}
