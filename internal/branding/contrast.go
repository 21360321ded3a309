package branding

import "math"

const (
	// wcagAAContrast is the WCAG AA minimum contrast ratio for normal text.
	wcagAAContrast = 4.5

	// adjustStep is the single corrective HSL lightness move applied to a
	// background whose best text contrast falls below the minimum.
	adjustStep = 0.25
)

// readable pairs a background with its chosen text colour and the achieved
// contrast ratio.
type readable struct {
	background RGB
	text       RGB
	ratio      float64
}

// bestText picks whichever of pure black or white has the higher contrast
// against bg.
func bestText(bg RGB) readable {
	cw := ContrastRatio(bg, white)
	cb := ContrastRatio(bg, black)
	if cw > cb {
		return readable{background: bg, text: white, ratio: cw}
	}
	return readable{background: bg, text: black, ratio: cb}
}

// ensureReadable picks the higher-contrast text colour for bg and, if the
// achieved ratio is below minContrast, makes exactly one corrective
// adjustment to the background: light backgrounds (luminance above 0.5) are
// darkened one step and paired with white text, dark backgrounds are
// brightened one step and paired with black text. The adjusted background is
// kept only if it reaches minContrast; otherwise the original background and
// its best-achieved ratio are returned unchanged. The adjustment is never
// iterated.
func ensureReadable(bg RGB, minContrast float64) readable {
	best := bestText(bg)
	if best.ratio >= minContrast {
		return best
	}

	h, s, l := rgbToHSL(bg)
	var adjusted RGB
	var text RGB
	if Luminance(bg) > 0.5 {
		adjusted = hslToRGB(h, s, math.Max(0, l-adjustStep))
		text = white
	} else {
		adjusted = hslToRGB(h, s, math.Min(1, l+adjustStep))
		text = black
	}

	if ratio := ContrastRatio(adjusted, text); ratio >= minContrast {
		return readable{background: adjusted, text: text, ratio: ratio}
	}
	return best
}

// darken lowers the HSL lightness of a colour by one corrective step. Used
// to derive a secondary colour from primary in the manual-override path.
func darken(c RGB) RGB {
	h, s, l := rgbToHSL(c)
	return hslToRGB(h, s, math.Max(0, l-adjustStep))
}
