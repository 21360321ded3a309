package branding

// choosePalette picks the primary, secondary and accent backgrounds from the
// frequency-descending dominant colours.
//
// primary is the most frequent colour. secondary is the first subsequent
// colour whose hue is clearly distinct from primary (more than 30 degrees
// away on the wheel); accent is the first colour from the third entry onward
// whose hue is near-complementary (160-200 degrees) or near-triadic
// (100-140 degrees) to primary. Both fall back to earlier picks when no
// candidate qualifies. dominant must be non-empty.
func choosePalette(dominant []RGB) (primary, secondary, accent RGB) {
	primary = dominant[0]
	primaryHue := hue(primary)

	secondary = primary
	if len(dominant) > 1 {
		secondary = dominant[1]
	}
	for _, c := range dominant[1:] {
		d := hueDistance(primaryHue, hue(c))
		if d > 30 && d < 330 {
			secondary = c
			break
		}
	}

	accent = secondary
	if len(dominant) > 2 {
		for _, c := range dominant[2:] {
			d := hueDistance(primaryHue, hue(c))
			if (d >= 160 && d <= 200) || (d >= 100 && d <= 140) {
				accent = c
				break
			}
		}
	}

	return primary, secondary, accent
}
