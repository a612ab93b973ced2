// Package fonts exposes the embedded fallback faces used when the host
// environment brings no font files of its own.
package fonts

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Face couples embedded font bytes with registration metadata.
type Face struct {
	ID     string
	Family string
	Data   []byte
}

// All returns every embedded face, in a fixed order suitable for seeding a
// font map.
func All() []Face {
	return []Face{
		{ID: "goregular", Family: "Go", Data: goregular.TTF},
		{ID: "gobold", Family: "Go", Data: gobold.TTF},
		{ID: "goitalic", Family: "Go", Data: goitalic.TTF},
		{ID: "gobolditalic", Family: "Go", Data: gobolditalic.TTF},
		{ID: "gomono", Family: "Go Mono", Data: gomono.TTF},
		{ID: "gomonobold", Family: "Go Mono", Data: gomonobold.TTF},
		{ID: "gomonoitalic", Family: "Go Mono", Data: gomonoitalic.TTF},
		{ID: "gomonobolditalic", Family: "Go Mono", Data: gomonobolditalic.TTF},
	}
}

// Select returns the embedded face bytes matching the requested weight and
// slant, falling back to the regular face.
func Select(bold, italic bool) []byte {
	switch {
	case bold && italic:
		return gobolditalic.TTF
	case bold:
		return gobold.TTF
	case italic:
		return goitalic.TTF
	default:
		return goregular.TTF
	}
}
