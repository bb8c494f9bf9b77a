package hdrloader

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/nfnt/resize"
	"github.com/vearutop/hdrloader/asset"
)

// Preview renders an RGBA32F image as a 16-bit sRGB image for inspection.
//
// Linear values are multiplied by exposure, clamped to [0, 1] and encoded with the
// sRGB transfer function. When maxWidth and maxHeight are both positive the result is
// scaled down to fit them, preserving aspect ratio.
func Preview(img *asset.Image, maxWidth, maxHeight uint, exposure float32) (image.Image, error) {
	if img == nil {
		return nil, errors.New("nil image")
	}
	if img.Format != asset.FormatRGBA32Float {
		return nil, fmt.Errorf("unsupported texture format %s", img.Format)
	}
	if exposure <= 0 {
		exposure = 1
	}

	w, h := img.Width(), img.Height()
	out := image.NewRGBA64(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px, _ := img.RGBA32FAt(x, y)
			out.SetRGBA64(x, y, color.RGBA64{
				R: toUint16(srgbOetf(clamp01(px[0] * exposure))),
				G: toUint16(srgbOetf(clamp01(px[1] * exposure))),
				B: toUint16(srgbOetf(clamp01(px[2] * exposure))),
				A: toUint16(px[3]),
			})
		}
	}

	if maxWidth == 0 || maxHeight == 0 {
		return out, nil
	}
	return resize.Thumbnail(maxWidth, maxHeight, out, resize.Lanczos3), nil
}

func toUint16(v float32) uint16 {
	return uint16(clamp01(v)*65535 + 0.5)
}
