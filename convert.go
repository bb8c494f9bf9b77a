package hdrloader

import (
	"encoding/binary"
	"math"

	"github.com/mdouchement/hdr"
)

type rgb struct {
	r, g, b float32
}

func hdrAt(m hdr.Image, x, y int) rgb {
	r, g, b, _ := m.HDRAt(x, y).HDRRGBA()
	return rgb{r: float32(r), g: float32(g), b: float32(b)}
}

// rgbToRGBA packs m as RGBA32F in native byte order, scanline by scanline,
// with alpha set to 1.0 for every pixel.
func rgbToRGBA(m hdr.Image) []byte {
	bounds := m.Bounds()
	out := make([]byte, bounds.Dx()*bounds.Dy()*bytesPerPixel)
	alphaBits := math.Float32bits(alpha)

	off := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := hdrAt(m, x, y)
			binary.NativeEndian.PutUint32(out[off:], math.Float32bits(px.r))
			binary.NativeEndian.PutUint32(out[off+4:], math.Float32bits(px.g))
			binary.NativeEndian.PutUint32(out[off+8:], math.Float32bits(px.b))
			binary.NativeEndian.PutUint32(out[off+12:], alphaBits)
			off += bytesPerPixel
		}
	}
	return out
}
