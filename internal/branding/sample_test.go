package branding

import (
	"math"
	"reflect"
	"testing"
)

// flatten builds a flat RGB buffer from a pixel sequence.
func flatten(pixels []RGB) []uint8 {
	buf := make([]uint8, 0, len(pixels)*3)
	for _, p := range pixels {
		buf = append(buf, p.R, p.G, p.B)
	}
	return buf
}

func repeat(c RGB, n int) []RGB {
	out := make([]RGB, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func TestSamplePixelsFilters(t *testing.T) {
	vividBlue := RGB{R: 0x25, G: 0x63, B: 0xeb}

	tests := []struct {
		name  string
		pixel RGB
		kept  bool
	}{
		{
			name:  "vivid brand colour kept",
			pixel: vividBlue,
			kept:  true,
		},
		{
			name:  "pure black too dark",
			pixel: RGB{R: 0, G: 0, B: 0},
			kept:  false,
		},
		{
			name:  "pure white too bright",
			pixel: RGB{R: 255, G: 255, B: 255},
			kept:  false,
		},
		{
			name:  "mid grey not saturated",
			pixel: RGB{R: 128, G: 128, B: 128},
			kept:  false,
		},
		{
			name:  "near-grey anti-aliasing excluded",
			pixel: RGB{R: 120, G: 125, B: 128},
			kept:  false,
		},
	}

	opts := DefaultOptions()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pix := flatten([]RGB{tt.pixel})
			population := samplePixels(pix, 1, opts.MinBrightness, opts.MaxBrightness, opts.MinSaturation)
			_, ok := population[tt.pixel]
			if ok != tt.kept {
				t.Errorf("samplePixels kept %+v = %t, want %t", tt.pixel, ok, tt.kept)
			}
		})
	}
}

func TestSamplePixelsStride(t *testing.T) {
	blue := RGB{R: 0x25, G: 0x63, B: 0xeb}
	pix := flatten(repeat(blue, 16))

	tests := []struct {
		stride int
		want   int
	}{
		{stride: 1, want: 16},
		{stride: 4, want: 4},
		{stride: 16, want: 1},
		{stride: 0, want: 16}, // clamped to 1
	}

	for _, tt := range tests {
		population := samplePixels(pix, tt.stride, 0.2, 0.95, 0.1)
		if got := population[blue]; got != tt.want {
			t.Errorf("stride %d: count = %d, want %d", tt.stride, got, tt.want)
		}
	}
}

func TestSamplePixelsDeterministic(t *testing.T) {
	pixels := append(repeat(RGB{R: 0x25, G: 0x63, B: 0xeb}, 8), repeat(RGB{R: 0x10, G: 0xb9, B: 0x81}, 5)...)
	pix := flatten(pixels)

	first := samplePixels(pix, 1, 0.2, 0.95, 0.1)
	second := samplePixels(pix, 1, 0.2, 0.95, 0.1)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("samplePixels not deterministic: %v vs %v", first, second)
	}
}

func TestBrightness(t *testing.T) {
	tests := []struct {
		name  string
		color RGB
		want  float64
	}{
		{"black", RGB{}, 0},
		{"white", RGB{R: 255, G: 255, B: 255}, 1},
		{"pure red", RGB{R: 255}, 0.299},
		{"pure green", RGB{G: 255}, 0.587},
		{"pure blue", RGB{B: 255}, 0.114},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := brightness(tt.color); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("brightness(%+v) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestSaturation(t *testing.T) {
	tests := []struct {
		name  string
		color RGB
		want  float64
	}{
		{"black", RGB{}, 0},
		{"white", RGB{R: 255, G: 255, B: 255}, 0},
		{"grey", RGB{R: 90, G: 90, B: 90}, 0},
		{"pure red", RGB{R: 255}, 1},
		{"half saturated", RGB{R: 200, G: 100, B: 100}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := saturation(tt.color); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("saturation(%+v) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}
