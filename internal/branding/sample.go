package branding

// samplePixels walks the flat RGB buffer in pixel order, visiting every
// stride-th pixel, and builds a weighted population of the colours that pass
// the brightness and saturation filters. Near-black, near-white and grey
// anti-aliasing pixels are excluded so clustering operates on the actual
// brand colours.
//
// The result maps each unique colour to its occurrence count. Identical
// inputs always produce an identical population.
func samplePixels(pix []uint8, stride int, minBrightness, maxBrightness, minSaturation float64) map[RGB]int {
	if stride < 1 {
		stride = 1
	}

	population := make(map[RGB]int)
	for i := 0; i+2 < len(pix); i += 3 * stride {
		c := RGB{R: pix[i], G: pix[i+1], B: pix[i+2]}

		b := brightness(c)
		if b < minBrightness || b > maxBrightness {
			continue
		}
		if saturation(c) < minSaturation {
			continue
		}

		population[c]++
	}

	return population
}

// brightness is the perceived brightness of a colour on a 0-1 scale, using
// the ITU-R BT.601 luma coefficients.
func brightness(c RGB) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255.0
}

// saturation is (max-min)/max over the RGB channels, 0 for pure black.
func saturation(c RGB) float64 {
	maxC := c.R
	minC := c.R
	for _, v := range []uint8{c.G, c.B} {
		if v > maxC {
			maxC = v
		}
		if v < minC {
			minC = v
		}
	}
	if maxC == 0 {
		return 0
	}
	return float64(maxC-minC) / float64(maxC)
}
