package metrics

import "math"

// maxFitProbes caps the number of width probes a single size search may
// spend. A width function that is not monotonic in the font size can push
// the walk into a cycle; the cap turns that into DidNotConvergeError.
const maxFitProbes = 4096

// RenderAtFunc reports the rendered width of the probe text at the given
// whole-pixel font size.
type RenderAtFunc func(sizePx int) (float64, error)

// MaxFontSize returns the largest whole-pixel font size whose rendered width
// stays within maxWidth, or 0 when no positive size fits.
//
// The search is a two-phase local walk, not a bisection: a half-budget probe
// seeds an estimate (size = floor(size/width * maxWidth)), then the size
// moves one pixel at a time toward the budget in whichever direction the
// estimate landed. For a width function that grows with the size the result
// is locally optimal: the returned size fits and size+1 does not.
func MaxFontSize(maxWidth float64, renderAt RenderAtFunc) (int, error) {
	if renderAt == nil {
		return 0, &MissingCapabilityError{Capability: "metrics provider"}
	}
	if !boundedWidth(maxWidth) {
		return 0, nil
	}

	probes := 0
	render := func(size int) (float64, error) {
		if probes >= maxFitProbes {
			return 0, &DidNotConvergeError{Probes: probes}
		}
		probes++
		return renderAt(size)
	}

	size := int(maxWidth) / 2
	cur, err := render(size)
	if err != nil {
		return 0, err
	}
	if cur > 0 {
		size = int(float64(size) / cur * maxWidth)
		cur, err = render(size)
		if err != nil {
			return 0, err
		}
	}
	if math.Ceil(cur) == maxWidth {
		return size, nil
	}

	if cur > maxWidth && size > 0 {
		// Overshot: back off until the width fits or nothing does.
		for cur > maxWidth && size > 0 {
			size--
			cur, err = render(size)
			if err != nil {
				return 0, err
			}
		}
		return size, nil
	}

	// Undershot: grow while the next size still fits.
	for {
		next, err := render(size + 1)
		if err != nil {
			return 0, err
		}
		if next > maxWidth {
			return size, nil
		}
		size++
	}
}
