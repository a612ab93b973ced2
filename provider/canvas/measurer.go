// Package canvasmeasurer measures text width through
// github.com/tdewolff/canvas font faces backed by the embedded Go fonts.
package canvasmeasurer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/typovia/textmeter/fonts"
)

// Measurer caches one canvas font family per weight/slant combination and
// measures candidate strings with FontFace.TextWidth. The cache is shared
// mutable state, so it is guarded by a mutex.
type Measurer struct {
	mu       sync.Mutex
	families map[string]*familyEntry
}

type familyEntry struct {
	family *canvas.FontFamily
	style  canvas.FontStyle
}

// New creates an empty Measurer; families load lazily on first use.
func New() *Measurer {
	return &Measurer{families: map[string]*familyEntry{}}
}

var sizeRe = regexp.MustCompile(`([\d.]+)px`)

// Measure implements the metrics provider capability. The face is created at
// the descriptor's pixel size, so TextWidth comes back in pixels.
func (m *Measurer) Measure(fontDesc, text string) (float64, error) {
	if text == "" {
		return 0, nil
	}
	bold, italic := parseFontStyle(fontDesc)
	size := 16.0
	if match := sizeRe.FindStringSubmatch(fontDesc); match != nil {
		if v, err := strconv.ParseFloat(match[1], 64); err == nil && v > 0 {
			size = v
		}
	}
	family, style, err := m.ensureFamily(bold, italic)
	if err != nil {
		return 0, err
	}
	face := family.Face(size, canvas.Black, style, canvas.FontNormal)
	return face.TextWidth(text), nil
}

func (m *Measurer) ensureFamily(bold, italic bool) (*canvas.FontFamily, canvas.FontStyle, error) {
	key := fmt.Sprintf("%t|%t", bold, italic)
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.families[key]; ok {
		return entry.family, entry.style, nil
	}

	style := canvas.FontRegular
	if bold {
		style = canvas.FontBold
	}
	if italic {
		style |= canvas.FontItalic
	}
	family := canvas.NewFontFamily("textmeter-" + key)
	if err := family.LoadFont(fonts.Select(bold, italic), 0, style); err != nil {
		return nil, canvas.FontRegular, fmt.Errorf("canvasmeasurer: load embedded font: %w", err)
	}
	m.families[key] = &familyEntry{family: family, style: style}
	return family, style, nil
}

// parseFontStyle sniffs weight and slant keywords out of a font descriptor.
func parseFontStyle(desc string) (bold, italic bool) {
	s := strings.ToLower(desc)
	switch {
	case strings.Contains(s, "bold"), strings.Contains(s, "bolder"):
		bold = true
	default:
		for _, w := range [...]string{"600", "700", "800", "900"} {
			if strings.Contains(s, w+" ") {
				bold = true
				break
			}
		}
	}
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		italic = true
	}
	return bold, italic
}
