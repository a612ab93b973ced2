package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"fontSize":      "font-size",
		"font-size":     "font-size",
		"lineHeight":    "line-height",
		"whiteSpace":    "white-space",
		"width":         "width",
		" paddingLeft ": "padding-left",
		"WebkitFoo":     "webkit-foo",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeKey(in), "key %q", in)
	}
}

func TestDeclarationsGetNormalizes(t *testing.T) {
	d := Declarations{"font-size": "14px"}
	assert.Equal(t, "14px", d.Get("fontSize"))
	assert.Equal(t, "14px", d.Get("font-size"))
	assert.Empty(t, d.Get("line-height"))

	var nilDecls Declarations
	assert.Empty(t, nilDecls.Get("font-size"))
}

func TestMergeLaterLayersWin(t *testing.T) {
	out := Merge(
		Defaults(),
		Declarations{"fontSize": "12px"},
		Declarations{"font-size": "18px", "font-weight": ""},
	)
	assert.Equal(t, "18px", out.Get("font-size"))
	// Blank values never erase a lower layer.
	assert.Equal(t, "400", out.Get("font-weight"))
	assert.Equal(t, "Helvetica, Arial, sans-serif", out.Get("font-family"))
}

func TestMergeIgnoresNilLayers(t *testing.T) {
	out := Merge(nil, Declarations{"width": "100px"}, nil)
	assert.Equal(t, "100px", out.Get("width"))
}

func TestFontDescriptorDefaults(t *testing.T) {
	desc := FontDescriptor(Defaults(), 16)
	assert.Equal(t, "400 16px Helvetica, Arial, sans-serif", desc)
}

func TestFontDescriptorFullForm(t *testing.T) {
	d := Declarations{
		"font-weight":  "bold",
		"font-style":   "italic",
		"font-variant": "small-caps",
		"font-family":  "Georgia, serif",
	}
	assert.Equal(t, "bold italic small-caps 20px Georgia, serif", FontDescriptor(d, 20))
}

func TestFontDescriptorOmitsUnknownKeywords(t *testing.T) {
	d := Declarations{
		"font-weight": "heavy",   // not a recognized weight
		"font-style":  "slanted", // not a recognized style
		"font-family": "Arial",
	}
	assert.Equal(t, "14.5px Arial", FontDescriptor(d, 14.5))
}

func TestFontDescriptorFamilyFallback(t *testing.T) {
	desc := FontDescriptor(Declarations{}, 12)
	require.Equal(t, "12px Helvetica, Arial, sans-serif", desc)
}

func TestStaticSource(t *testing.T) {
	s := &Static{
		Decls: Declarations{"font-size": "10px"},
		Width: 320,
		Text:  "hello",
	}
	decls, err := s.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "10px", decls.Get("font-size"))

	w, err := s.BoxWidth()
	require.NoError(t, err)
	assert.Equal(t, 320.0, w)

	text, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}
