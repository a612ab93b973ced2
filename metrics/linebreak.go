package metrics

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// breakpoint pairs a boundary character with its category, in scan order.
type breakpoint struct {
	chr rune
	cat BreakCategory
}

// scanParts splits text into maximal runs with no internal break opportunity
// plus the breakpoint following each run; the final run has no breakpoint.
// Iteration is by grapheme cluster so multi-unit code points never split a
// category lookup; only single-rune clusters can be boundaries. A BAI
// character found while the current run is still empty is suppressed, which
// drops leading collapsible whitespace and collapses repeated spaces into a
// single breakpoint.
func scanParts(text string) ([]string, []breakpoint) {
	var (
		parts []string
		bps   []breakpoint
		part  strings.Builder
	)
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		cat := BreakNone
		r, size := utf8.DecodeRuneInString(cluster)
		if size == len(cluster) {
			cat = Classify(r)
		}
		if cat == BreakNone {
			part.WriteString(cluster)
			continue
		}
		if cat == BreakBAI && part.Len() == 0 {
			continue
		}
		parts = append(parts, part.String())
		part.Reset()
		bps = append(bps, breakpoint{chr: r, cat: cat})
	}
	parts = append(parts, part.String())
	return parts, bps
}

// bounded reports whether maxWidth is a real budget. NaN or a non-positive
// value means "unbounded": nothing ever triggers a width split.
func boundedWidth(maxWidth float64) bool {
	return maxWidth > 0 && !math.IsNaN(maxWidth)
}

func noAddOn(string) float64 { return 0 }

// PackDefault splits text into lines at word and punctuation break
// opportunities so that each line's measured width (plus the spacing add-on,
// rounded to the nearest integer) stays within maxWidth. A run that alone
// exceeds the budget is emitted overlong rather than split. Mandatory breaks
// apply regardless of width.
func PackDefault(text string, maxWidth float64, addOn SpacingAddOn, measure MeasureFunc) ([]string, error) {
	if addOn == nil {
		addOn = noAddOn
	}
	parts, bps := scanParts(text)
	limited := boundedWidth(maxWidth)

	probe := func(s string) (float64, error) {
		w, err := measure(s)
		if err != nil {
			return 0, err
		}
		return math.Round(w + addOn(s)), nil
	}

	var lines []string
	line := ""
	for i, part := range parts {
		if i == 0 {
			line = part
			continue
		}
		bp := bps[i-1]

		// Mandatory breaks come before any width consideration.
		if bp.cat == BreakBK {
			lines = append(lines, line)
			line = part
			continue
		}
		// Repeated breakable spaces collapse to nothing.
		if bp.cat == BreakBAI && part == "" && parts[i-1] == "" {
			continue
		}

		chr := string(bp.chr)
		if bp.cat == BreakSHY {
			chr = "" // only rendered when the line actually splits here
		}
		candidate := line + chr + part
		if !limited {
			line = candidate
			continue
		}
		w, err := probe(candidate)
		if err != nil {
			return nil, err
		}
		if w <= maxWidth {
			line = candidate
			continue
		}

		switch bp.cat {
		case BreakSHY:
			lines = append(lines, line+"-")
			line = part
		case BreakBA:
			lines = append(lines, line+string(bp.chr))
			line = part
		case BreakBAI:
			lines = append(lines, line)
			line = part
		case BreakBB:
			lines = append(lines, line)
			line = string(bp.chr) + part
		case BreakB2:
			head, err := probe(line + string(bp.chr))
			if err != nil {
				return nil, err
			}
			if head <= maxWidth {
				lines = append(lines, line+string(bp.chr))
				line = part
				break
			}
			tail, err := probe(string(bp.chr) + part)
			if err != nil {
				return nil, err
			}
			if tail <= maxWidth {
				lines = append(lines, line)
				line = string(bp.chr) + part
			} else {
				lines = append(lines, line, string(bp.chr))
				line = part
			}
		default:
			lines = append(lines, line)
			line = part
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines, nil
}

// PackBreakAll splits text at any character boundary once the budget
// requires it. Width probes round up (ceil) where PackDefault rounds to
// nearest; the difference is part of the numeric contract between the two
// policies.
func PackBreakAll(text string, maxWidth float64, addOn SpacingAddOn, measure MeasureFunc) ([]string, error) {
	if addOn == nil {
		addOn = noAddOn
	}
	limited := boundedWidth(maxWidth)

	probe := func(s string) (float64, error) {
		w, err := measure(s)
		if err != nil {
			return 0, err
		}
		return math.Ceil(w + addOn(s)), nil
	}

	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	var lines []string
	line := ""
	for i, c := range clusters {
		cat := BreakNone
		r, size := utf8.DecodeRuneInString(c)
		if size == len(c) {
			cat = Classify(r)
		}

		if cat == BreakBK {
			lines = append(lines, line)
			line = ""
			continue
		}
		// Collapsible space is dropped at line starts and after another
		// collapsible space.
		if cat == BreakBAI {
			if line == "" {
				continue
			}
			if last, _ := utf8.DecodeLastRuneInString(line); Classify(last) == BreakBAI {
				continue
			}
		}

		candidate := line + c
		if cat == BreakSHY {
			// Look one cluster ahead: the hyphen only matters if rendering
			// it plus the next character would overflow.
			next := ""
			if i+1 < len(clusters) {
				next = clusters[i+1]
			}
			candidate = line + "-" + next
		}

		if limited {
			w, err := probe(candidate)
			if err != nil {
				return nil, err
			}
			if w > maxWidth && line != "" {
				switch cat {
				case BreakSHY:
					lines = append(lines, line+"-")
					line = ""
				case BreakBA:
					lines = append(lines, line+c)
					line = ""
				case BreakBAI:
					lines = append(lines, line)
					line = ""
				default:
					lines = append(lines, line)
					line = c
				}
				continue
			}
		}
		if cat != BreakSHY {
			line += c
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines, nil
}
