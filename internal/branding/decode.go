package branding

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"math"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format

	xdraw "golang.org/x/image/draw"
)

// decodeAndNormalize decodes raw logo bytes, flattens any transparency over a
// white background, and downscales the image to fit inside a
// maxDimension x maxDimension box while preserving aspect ratio. Images
// already inside the box are not upscaled.
//
// The result is a flat RGB buffer of width*height*3 bytes in row-major order.
// Returns *DecodeError for unsupported or corrupt bytes.
func decodeAndNormalize(data []byte, maxDimension int) (pix []uint8, width, height int, err error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, &DecodeError{Format: format, Err: err}
	}

	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return nil, 0, 0, &DecodeError{Format: format, Err: errors.New("image has no pixels")}
	}

	// Flatten transparency: composite the logo over white before sampling.
	flat := image.NewRGBA(image.Rect(0, 0, srcW, srcH))
	xdraw.Draw(flat, flat.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	xdraw.Draw(flat, flat.Bounds(), img, bounds.Min, xdraw.Over)

	dstW, dstH := fitWithin(srcW, srcH, maxDimension)
	dst := flat
	if dstW != srcW || dstH != srcH {
		dst = image.NewRGBA(image.Rect(0, 0, dstW, dstH))
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), flat, flat.Bounds(), xdraw.Src, nil)
	}

	pix = make([]uint8, dstW*dstH*3)
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			src := dst.PixOffset(x, y)
			out := (y*dstW + x) * 3
			pix[out] = dst.Pix[src]
			pix[out+1] = dst.Pix[src+1]
			pix[out+2] = dst.Pix[src+2]
		}
	}

	return pix, dstW, dstH, nil
}

// fitWithin scales (w, h) down to fit inside a maxDim square, preserving
// aspect ratio. Dimensions already inside the box are returned unchanged.
func fitWithin(w, h, maxDim int) (int, int) {
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return w, h
	}

	longest := w
	if h > longest {
		longest = h
	}
	scale := float64(maxDim) / float64(longest)

	tw := int(math.Round(float64(w) * scale))
	th := int(math.Round(float64(h) * scale))
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	return tw, th
}
