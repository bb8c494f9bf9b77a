package asset

import (
	"encoding/binary"
	"fmt"
	"math"
)

// TextureDimension identifies the texture dimensionality.
type TextureDimension int

const (
	Dimension1D TextureDimension = iota + 1
	Dimension2D
	Dimension3D
)

func (d TextureDimension) String() string {
	switch d {
	case Dimension1D:
		return "1d"
	case Dimension2D:
		return "2d"
	case Dimension3D:
		return "3d"
	default:
		return fmt.Sprintf("dimension(%d)", int(d))
	}
}

// TextureFormat identifies the texel layout of Image.Data.
type TextureFormat int

const (
	FormatUnknown TextureFormat = iota
	FormatRGBA8UnormSrgb
	FormatRGBA16Float
	FormatRGBA32Float
)

// PixelSize returns the number of bytes per texel, or 0 for unknown formats.
func (f TextureFormat) PixelSize() int {
	switch f {
	case FormatRGBA8UnormSrgb:
		return 4
	case FormatRGBA16Float:
		return 8
	case FormatRGBA32Float:
		return 16
	default:
		return 0
	}
}

func (f TextureFormat) String() string {
	switch f {
	case FormatRGBA8UnormSrgb:
		return "rgba8unorm-srgb"
	case FormatRGBA16Float:
		return "rgba16float"
	case FormatRGBA32Float:
		return "rgba32float"
	default:
		return "unknown"
	}
}

// Extent3D is the texture size in texels.
type Extent3D struct {
	Width              uint32
	Height             uint32
	DepthOrArrayLayers uint32
}

// Volume returns the number of texels covered by the extent.
func (e Extent3D) Volume() int {
	return int(e.Width) * int(e.Height) * int(e.DepthOrArrayLayers)
}

// Image is a CPU-side texture ready for GPU upload.
type Image struct {
	Size      Extent3D
	Dimension TextureDimension
	Format    TextureFormat
	// Data holds texels in row-major order, Format.PixelSize() bytes each.
	Data []byte
	// CPUPersistentAccess tells the render pipeline whether Data is kept after upload.
	CPUPersistentAccess PersistencePolicy
}

// NewImage assembles an Image. It panics if len(data) does not match size and format.
func NewImage(size Extent3D, dim TextureDimension, data []byte, format TextureFormat, policy PersistencePolicy) *Image {
	if want := size.Volume() * format.PixelSize(); want != len(data) {
		panic(fmt.Sprintf("asset: pixel data, size and format have to match: %d bytes for %dx%dx%d %s, got %d",
			want, size.Width, size.Height, size.DepthOrArrayLayers, format, len(data)))
	}
	return &Image{
		Size:                size,
		Dimension:           dim,
		Format:              format,
		Data:                data,
		CPUPersistentAccess: policy,
	}
}

// Width returns the texture width in texels.
func (m *Image) Width() int { return int(m.Size.Width) }

// Height returns the texture height in texels.
func (m *Image) Height() int { return int(m.Size.Height) }

// PixelCount returns the number of texels held in Data.
func (m *Image) PixelCount() int {
	if ps := m.Format.PixelSize(); ps > 0 {
		return len(m.Data) / ps
	}
	return 0
}

// RGBA32FAt returns the texel at (x, y) of the first layer.
// It reports false if the image is not FormatRGBA32Float or the coordinates are out of range.
func (m *Image) RGBA32FAt(x, y int) ([4]float32, bool) {
	var px [4]float32
	if m.Format != FormatRGBA32Float || x < 0 || y < 0 || x >= m.Width() || y >= m.Height() {
		return px, false
	}
	off := (y*m.Width() + x) * 16
	for c := 0; c < 4; c++ {
		px[c] = math.Float32frombits(binary.NativeEndian.Uint32(m.Data[off+c*4:]))
	}
	return px, true
}
