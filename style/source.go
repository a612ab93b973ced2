package style

// Static serves fixed declarations, a fixed box width and fixed text. It
// stands in for a live host element: tests and the CLI use it directly, and
// platform adapters (browser, native toolkit) replace it with their own
// implementation of the same three methods.
type Static struct {
	Decls Declarations
	Width float64
	Text  string
}

// Resolve returns the configured declarations.
func (s *Static) Resolve() (Declarations, error) { return s.Decls, nil }

// BoxWidth returns the configured box width in pixels.
func (s *Static) BoxWidth() (float64, error) { return s.Width, nil }

// Read returns the configured text content.
func (s *Static) Read() (string, error) { return s.Text, nil }
