package style

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	declLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"|'(?:\\.|[^'])*'`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\.\d+|\d+)[A-Za-z%]*`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[:;,]`},
	})

	sheetParser = participle.MustBuild[Sheet](
		participle.Lexer(declLexer),
		participle.Elide("Whitespace"),
	)
)

// Sheet is the AST for an inline declaration list such as
// "font-size: 14px; font-weight: bold".
type Sheet struct {
	Decls []*Decl `parser:"( @@ ( ';' @@? )* )?"`
}

// Decl is a single property declaration.
type Decl struct {
	Property string  `parser:"@Ident ':'"`
	Terms    []*Term `parser:"@@+"`
}

// Term is one token of a declaration value. Commas are kept so multi-family
// font lists survive reassembly.
type Term struct {
	String *StringLiteral `parser:"  @String"`
	Comma  bool           `parser:"| @','"`
	Word   *string        `parser:"| @Number | @Ident"`
}

// StringLiteral strips the surrounding quotes on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	v := values[0]
	if len(v) >= 2 {
		v = v[1 : len(v)-1]
	}
	*s = StringLiteral(v)
	return nil
}

// Value reassembles the declaration value from its terms.
func (d *Decl) Value() string {
	var b []byte
	for _, t := range d.Terms {
		switch {
		case t.Comma:
			b = append(b, ',')
		case t.String != nil:
			if len(b) > 0 {
				b = append(b, ' ')
			}
			b = append(b, string(*t.String)...)
		case t.Word != nil:
			if len(b) > 0 {
				b = append(b, ' ')
			}
			b = append(b, *t.Word...)
		}
	}
	return string(b)
}

// Parse reads an inline declaration list into Declarations. Property names
// are key-normalized; later duplicates win.
func Parse(input string) (Declarations, error) {
	sheet, err := sheetParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("style: parse declarations: %w", err)
	}
	out := Declarations{}
	for _, d := range sheet.Decls {
		if d == nil {
			continue
		}
		out[NormalizeKey(d.Property)] = d.Value()
	}
	return out, nil
}
