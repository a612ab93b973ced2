package metrics

// BreakCategory classifies a character's line-break opportunity. The tables
// cover a curated subset of the Unicode line breaking classes; everything
// outside them is BreakNone.
type BreakCategory int

const (
	BreakNone BreakCategory = iota
	BreakB2                 // break opportunity before and after (em dash)
	BreakBAI                // break after, collapsible space
	BreakSHY                // soft hyphen, renders as "-" only when split
	BreakBA                 // break after (hard hyphens and dashes)
	BreakBB                 // break before (spacing accents)
	BreakBK                 // mandatory break
)

func (c BreakCategory) String() string {
	switch c {
	case BreakB2:
		return "B2"
	case BreakBAI:
		return "BAI"
	case BreakSHY:
		return "SHY"
	case BreakBA:
		return "BA"
	case BreakBB:
		return "BB"
	case BreakBK:
		return "BK"
	default:
		return "none"
	}
}

// Fixed code point sets backing the classification. Built once at process
// start; the sets are disjoint by construction.
var (
	b2Set  = runeSet("—")
	baiSet = runeSet("\t             　")
	shySet = runeSet("­")
	baSet  = runeSet("֊‐‒–")
	bbSet  = runeSet("´῾")
	bkSet  = runeSet("\n")
)

func runeSet(chars string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}

// Classify returns the break category of r, or BreakNone. The sets are
// checked in the order B2, BAI, SHY, BA, BB, BK; keep that order, it is part
// of the classification contract.
func Classify(r rune) BreakCategory {
	switch {
	case member(b2Set, r):
		return BreakB2
	case member(baiSet, r):
		return BreakBAI
	case member(shySet, r):
		return BreakSHY
	case member(baSet, r):
		return BreakBA
	case member(bbSet, r):
		return BreakBB
	case member(bkSet, r):
		return BreakBK
	default:
		return BreakNone
	}
}

func member(set map[rune]struct{}, r rune) bool {
	_, ok := set[r]
	return ok
}
