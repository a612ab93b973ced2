package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicDeclarations(t *testing.T) {
	d, err := Parse("font-size: 14px; font-weight: bold")
	require.NoError(t, err)
	assert.Equal(t, "14px", d.Get("font-size"))
	assert.Equal(t, "bold", d.Get("font-weight"))
}

func TestParseFontFamilyList(t *testing.T) {
	d, err := Parse("font-family: Helvetica, Arial, sans-serif")
	require.NoError(t, err)
	assert.Equal(t, "Helvetica, Arial, sans-serif", d.Get("font-family"))
}

func TestParseQuotedFamily(t *testing.T) {
	d, err := Parse(`font-family: "Open Sans", sans-serif`)
	require.NoError(t, err)
	assert.Equal(t, "Open Sans, sans-serif", d.Get("font-family"))

	d, err = Parse(`font-family: 'Fira Code', monospace`)
	require.NoError(t, err)
	assert.Equal(t, "Fira Code, monospace", d.Get("font-family"))
}

func TestParseMultiTermValue(t *testing.T) {
	d, err := Parse("font: italic bold 12px serif")
	require.NoError(t, err)
	assert.Equal(t, "italic bold 12px serif", d.Get("font"))
}

func TestParseTrailingSemicolonAndSpace(t *testing.T) {
	d, err := Parse("  width: 320px ;  ")
	require.NoError(t, err)
	assert.Equal(t, "320px", d.Get("width"))
	assert.Len(t, d, 1)
}

func TestParseEmptyInput(t *testing.T) {
	d, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, d)
}

func TestParseDuplicatePropertyLastWins(t *testing.T) {
	d, err := Parse("font-size: 10px; font-size: 20px")
	require.NoError(t, err)
	assert.Equal(t, "20px", d.Get("font-size"))
}

func TestParseNormalizesPropertyNames(t *testing.T) {
	d, err := Parse("lineHeight: 1.5")
	require.NoError(t, err)
	assert.Equal(t, "1.5", d.Get("line-height"))
}

func TestParseNumbers(t *testing.T) {
	d, err := Parse("line-height: 1.5; letter-spacing: -2px; opacity: .5")
	require.NoError(t, err)
	assert.Equal(t, "1.5", d.Get("line-height"))
	assert.Equal(t, "-2px", d.Get("letter-spacing"))
	assert.Equal(t, ".5", d.Get("opacity"))
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not a declaration")
	assert.Error(t, err)
}
