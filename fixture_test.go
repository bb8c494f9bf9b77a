package hdrloader_test

import (
	"bytes"
	"fmt"
	"math"
)

// radiance builds a Radiance HDR file with flat (not run-length encoded) scanlines.
// Widths below 8 are always stored flat by RGBE writers.
func radiance(w, h int, pix [][3]float32, headerLines ...string) []byte {
	var payload []byte
	for _, p := range pix {
		payload = append(payload, floatToRGBE(p)...)
	}
	return radianceRaw(fmt.Sprintf("-Y %d +X %d", h, w), payload, headerLines...)
}

// radianceRaw assembles a file from a resolution line and scanline bytes as given.
func radianceRaw(resolution string, payload []byte, headerLines ...string) []byte {
	var buf bytes.Buffer
	buf.WriteString("#?RADIANCE\n")
	buf.WriteString("FORMAT=32-bit_rle_rgbe\n")
	for _, l := range headerLines {
		buf.WriteString(l + "\n")
	}
	buf.WriteString("\n")
	buf.WriteString(resolution + "\n")
	buf.Write(payload)
	return buf.Bytes()
}

func floatToRGBE(p [3]float32) []byte {
	v := math.Max(float64(p[0]), math.Max(float64(p[1]), float64(p[2])))
	if v < 1e-32 {
		return []byte{0, 0, 0, 0}
	}
	m, e := math.Frexp(v)
	scale := m * 256 / v
	return []byte{
		byte(float64(p[0]) * scale),
		byte(float64(p[1]) * scale),
		byte(float64(p[2]) * scale),
		byte(e + 128),
	}
}

// gradient returns w*h pixels with distinct, exactly representable RGBE values.
func gradient(w, h int, seed float32) [][3]float32 {
	pix := make([][3]float32, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := seed * float32(1+x+y*w)
			pix = append(pix, [3]float32{base, base / 2, base / 4})
		}
	}
	return pix
}
