package branding

// Options control a single extraction. The zero value of any field selects
// the default; out-of-range values are clamped.
type Options struct {
	// MaxDimension bounds the working resolution: the decoded logo is
	// downscaled to fit inside a MaxDimension square.
	MaxDimension int `json:"maxDimension"`

	// ClusterCount is the number of representative colours the quantizer
	// produces (the length of DominantColors).
	ClusterCount int `json:"clusterCount"`

	// SampleStride selects every n-th pixel for the population.
	SampleStride int `json:"sampleStride"`

	// MinBrightness and MaxBrightness bound the perceived brightness of
	// sampled pixels, excluding near-black and near-white regions.
	MinBrightness float64 `json:"minBrightness"`
	MaxBrightness float64 `json:"maxBrightness"`

	// MinSaturation excludes grey, washed-out pixels from the population.
	MinSaturation float64 `json:"minSaturation"`
}

// DefaultOptions returns the standard extraction parameters.
func DefaultOptions() Options {
	return Options{
		MaxDimension:  200,
		ClusterCount:  10,
		SampleStride:  4,
		MinBrightness: 0.2,
		MaxBrightness: 0.95,
		MinSaturation: 0.1,
	}
}

// normalized fills zero values with defaults and clamps the rest into their
// working ranges.
func (o Options) normalized() Options {
	defaults := DefaultOptions()

	if o.MaxDimension <= 0 {
		o.MaxDimension = defaults.MaxDimension
	}
	if o.ClusterCount <= 0 {
		o.ClusterCount = defaults.ClusterCount
	}
	if o.ClusterCount > 256 {
		o.ClusterCount = 256
	}
	if o.SampleStride <= 0 {
		o.SampleStride = defaults.SampleStride
	}
	if o.MinBrightness < 0 {
		o.MinBrightness = 0
	}
	if o.MaxBrightness <= 0 || o.MaxBrightness > 1 {
		o.MaxBrightness = defaults.MaxBrightness
	}
	if o.MaxBrightness < o.MinBrightness {
		o.MaxBrightness = o.MinBrightness
	}
	if o.MinSaturation < 0 {
		o.MinSaturation = 0
	}
	return o
}

// BrandColor is an immutable "#rrggbb" colour value.
type BrandColor string

// RGB parses the colour back into channel values. BrandColors produced by
// this package always parse.
func (b BrandColor) RGB() (RGB, error) {
	return ParseHex(string(b))
}

// ColorPalette is the themable brand palette: three background colours, each
// paired with whichever of pure black or white reads best against it.
type ColorPalette struct {
	Primary   BrandColor `json:"primary"`
	Secondary BrandColor `json:"secondary"`
	Accent    BrandColor `json:"accent"`

	TextOnPrimary   BrandColor `json:"textOnPrimary"`
	TextOnSecondary BrandColor `json:"textOnSecondary"`
	TextOnAccent    BrandColor `json:"textOnAccent"`
}

// ContrastRatios holds the achieved text contrast per palette slot.
type ContrastRatios struct {
	Primary   float64 `json:"primary"`
	Secondary float64 `json:"secondary"`
	Accent    float64 `json:"accent"`
}

// ExtractionResult is the full palette report persisted into tenant
// configuration.
type ExtractionResult struct {
	Palette        ColorPalette   `json:"palette"`
	DominantColors []BrandColor   `json:"dominantColors"`
	ContrastRatios ContrastRatios `json:"contrastRatios"`
	WCAGCompliant  bool           `json:"wcagCompliant"`
}

// fallbackColors is the palette returned when every pixel is filtered out
// (fully transparent logos, uniform near-white marks, and similar). A
// colourless logo is not an error.
var fallbackColors = []RGB{
	{R: 0x25, G: 0x63, B: 0xeb}, // blue
	{R: 0x10, G: 0xb9, B: 0x81}, // green
	{R: 0xf5, G: 0x9e, B: 0x0b}, // amber
}

// Extract derives a three-colour brand palette with paired text colours from
// raw logo image bytes. The call is a pure function of its inputs: identical
// bytes and options produce a bit-identical result, and concurrent calls
// share no state.
//
// Returns *DecodeError when the bytes are not a supported raster image.
func Extract(data []byte, opts Options) (ExtractionResult, error) {
	opts = opts.normalized()

	pix, _, _, err := decodeAndNormalize(data, opts.MaxDimension)
	if err != nil {
		return ExtractionResult{}, err
	}

	population := samplePixels(pix, opts.SampleStride, opts.MinBrightness, opts.MaxBrightness, opts.MinSaturation)
	samples := sortedPopulation(population)

	// selectable excludes the grey centroids no pixel was assigned to; padding
	// keeps the dominant list at its documented length but has no hue of its
	// own and never competes for a palette role.
	var dominant, selectable []RGB
	if len(samples) == 0 {
		dominant = fallbackDominant(opts.ClusterCount)
		selectable = fallbackColors
	} else {
		clusters := quantize(samples, opts.ClusterCount)
		dominant = make([]RGB, len(clusters))
		for i, c := range clusters {
			dominant[i] = c.color
			if c.weight > 0 {
				selectable = append(selectable, c.color)
			}
		}
	}

	primary, secondary, accent := choosePalette(selectable)
	return buildReport(dominant, primary, secondary, accent), nil
}

// fallbackDominant pads the fixed fallback triple with neutral grey so the
// dominant colour list keeps its documented length.
func fallbackDominant(clusterCount int) []RGB {
	dominant := make([]RGB, clusterCount)
	for i := range dominant {
		if i < len(fallbackColors) {
			dominant[i] = fallbackColors[i]
		} else {
			dominant[i] = neutralGray
		}
	}
	if clusterCount < len(fallbackColors) {
		dominant = fallbackColors[:clusterCount:clusterCount]
	}
	return dominant
}

// buildReport runs the accessibility adjuster over the three chosen
// backgrounds and assembles the final report. Pure aggregation beyond the
// per-colour adjustment.
func buildReport(dominant []RGB, primary, secondary, accent RGB) ExtractionResult {
	p := ensureReadable(primary, wcagAAContrast)
	s := ensureReadable(secondary, wcagAAContrast)
	a := ensureReadable(accent, wcagAAContrast)

	hexes := make([]BrandColor, len(dominant))
	for i, c := range dominant {
		hexes[i] = BrandColor(c.Hex())
	}

	ratios := ContrastRatios{Primary: p.ratio, Secondary: s.ratio, Accent: a.ratio}
	return ExtractionResult{
		Palette: ColorPalette{
			Primary:         BrandColor(p.background.Hex()),
			Secondary:       BrandColor(s.background.Hex()),
			Accent:          BrandColor(a.background.Hex()),
			TextOnPrimary:   BrandColor(p.text.Hex()),
			TextOnSecondary: BrandColor(s.text.Hex()),
			TextOnAccent:    BrandColor(a.text.Hex()),
		},
		DominantColors: hexes,
		ContrastRatios: ratios,
		WCAGCompliant:  ratios.Primary >= wcagAAContrast && ratios.Secondary >= wcagAAContrast && ratios.Accent >= wcagAAContrast,
	}
}

// BuildPalette runs only the accessibility adjustment against caller-supplied
// colours, for tenants overriding the extracted palette by hand. A missing
// secondary is derived by darkening primary one step; a missing accent by
// rotating primary's hue 120 degrees. Returns *InvalidColorError for
// malformed colour strings.
func BuildPalette(primaryHex, secondaryHex, accentHex string) (ColorPalette, error) {
	primary, err := ParseHex(primaryHex)
	if err != nil {
		return ColorPalette{}, err
	}

	secondary := darken(primary)
	if secondaryHex != "" {
		if secondary, err = ParseHex(secondaryHex); err != nil {
			return ColorPalette{}, err
		}
	}

	accent := rotateHue(primary, 120)
	if accentHex != "" {
		if accent, err = ParseHex(accentHex); err != nil {
			return ColorPalette{}, err
		}
	}

	p := ensureReadable(primary, wcagAAContrast)
	s := ensureReadable(secondary, wcagAAContrast)
	a := ensureReadable(accent, wcagAAContrast)

	return ColorPalette{
		Primary:         BrandColor(p.background.Hex()),
		Secondary:       BrandColor(s.background.Hex()),
		Accent:          BrandColor(a.background.Hex()),
		TextOnPrimary:   BrandColor(p.text.Hex()),
		TextOnSecondary: BrandColor(s.text.Hex()),
		TextOnAccent:    BrandColor(a.text.Hex()),
	}, nil
}
