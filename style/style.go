package style

import (
	"fmt"
	"strings"
	"unicode"
)

// Declarations maps kebab-cased style property names to their raw string
// values. Keys written through Merge are normalized; Get normalizes its
// argument so camelCase lookups work too.
type Declarations map[string]string

// Get returns the value for key, accepting camelCase or kebab-case names.
func (d Declarations) Get(key string) string {
	if d == nil {
		return ""
	}
	return d[NormalizeKey(key)]
}

// Set stores value under the normalized form of key.
func (d Declarations) Set(key, value string) {
	d[NormalizeKey(key)] = strings.TrimSpace(value)
}

// NormalizeKey converts a camelCase property name to kebab-case.
func NormalizeKey(key string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(key) {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Defaults returns the built-in style layer applied beneath every other
// source of declarations.
func Defaults() Declarations {
	return Declarations{
		"font-size":   "16px",
		"font-weight": "400",
		"font-family": "Helvetica, Arial, sans-serif",
	}
}

// Merge layers declarations into a fresh map; later layers win. Keys are
// normalized and blank values are dropped so an empty override never erases
// a lower layer.
func Merge(layers ...Declarations) Declarations {
	out := Declarations{}
	for _, layer := range layers {
		for k, v := range layer {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			out[NormalizeKey(k)] = v
		}
	}
	return out
}

// Recognized enumerations for the composed font descriptor. Values outside
// these sets are omitted from the descriptor rather than erroring.
var (
	fontWeights = keywordSet(
		"normal", "bold", "bolder", "lighter",
		"100", "200", "300", "400", "500", "600", "700", "800", "900",
	)
	fontStyles   = keywordSet("normal", "italic", "oblique")
	fontVariants = keywordSet("normal", "small-caps")
)

func keywordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// FontDescriptor composes the single-string font description handed to
// metric providers: "[font-weight] [font-style] [font-variant] <size>px
// <font-family>". sizePx overrides any font-size declaration so callers can
// probe the same style at different sizes.
func FontDescriptor(d Declarations, sizePx float64) string {
	var parts []string
	if v := strings.ToLower(d.Get("font-weight")); hasKeyword(fontWeights, v) {
		parts = append(parts, v)
	}
	if v := strings.ToLower(d.Get("font-style")); hasKeyword(fontStyles, v) {
		parts = append(parts, v)
	}
	if v := strings.ToLower(d.Get("font-variant")); hasKeyword(fontVariants, v) {
		parts = append(parts, v)
	}
	parts = append(parts, fmt.Sprintf("%gpx", sizePx))
	family := d.Get("font-family")
	if family == "" {
		family = Defaults()["font-family"]
	}
	parts = append(parts, family)
	return strings.Join(parts, " ")
}

func hasKeyword(set map[string]struct{}, v string) bool {
	_, ok := set[v]
	return ok
}
