package gotext

import (
	"testing"

	"github.com/go-text/typesetting/font"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	w, err := m.Measure("16px Go", "Hello World")
	require.NoError(t, err)
	assert.Greater(t, w, 0.0)

	// More text is wider.
	w2, err := m.Measure("16px Go", "Hello World again")
	require.NoError(t, err)
	assert.Greater(t, w2, w)

	// A bigger font is wider.
	w3, err := m.Measure("32px Go", "Hello World")
	require.NoError(t, err)
	assert.Greater(t, w3, w)
}

func TestMeasureEmptyText(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	w, err := m.Measure("16px Go", "")
	require.NoError(t, err)
	assert.Zero(t, w)
}

func TestMeasureDeterministic(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	a, err := m.Measure("400 16px Go, sans-serif", "repeatable")
	require.NoError(t, err)
	b, err := m.Measure("400 16px Go, sans-serif", "repeatable")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMeasureUnknownFamilyFallsBack(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	w, err := m.Measure("16px NoSuchFamily", "fallback")
	require.NoError(t, err)
	assert.Greater(t, w, 0.0)
}

func TestParseDescriptor(t *testing.T) {
	cases := []struct {
		in   string
		want Descriptor
	}{
		{
			in: "16px Arial",
			want: Descriptor{
				Style: font.StyleNormal, Weight: font.WeightNormal,
				Size: 16, Family: []string{"Arial"},
			},
		},
		{
			in: "bold italic 14px Georgia, serif",
			want: Descriptor{
				Style: font.StyleItalic, Weight: font.WeightBold,
				Size: 14, Family: []string{"Georgia", "serif"},
			},
		},
		{
			in: "700 12.5px Helvetica, Arial, sans-serif",
			want: Descriptor{
				Style: font.StyleNormal, Weight: font.Weight(700),
				Size: 12.5, Family: []string{"Helvetica", "Arial", "sans-serif"},
			},
		},
		{
			in: `400 italic small-caps 20px "Open Sans", sans-serif`,
			want: Descriptor{
				Style: font.StyleItalic, Weight: font.WeightNormal,
				Size: 20, Family: []string{"Open Sans", "sans-serif"},
			},
		},
		{
			in: "lighter 10px monospace",
			want: Descriptor{
				Style: font.StyleNormal, Weight: font.WeightLight,
				Size: 10, Family: []string{"monospace"},
			},
		},
		{
			// No match: everything defaults.
			in: "not a descriptor",
			want: Descriptor{
				Style: font.StyleNormal, Weight: font.WeightNormal,
				Size: 16, Family: []string{"sans-serif"},
			},
		},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseDescriptor(tc.in), "descriptor %q", tc.in)
	}
}
