package asset_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vearutop/hdrloader/asset"
)

func TestTextureFormat_PixelSize(t *testing.T) {
	assert.Equal(t, 16, asset.FormatRGBA32Float.PixelSize())
	assert.Equal(t, 8, asset.FormatRGBA16Float.PixelSize())
	assert.Equal(t, 4, asset.FormatRGBA8UnormSrgb.PixelSize())
	assert.Equal(t, 0, asset.FormatUnknown.PixelSize())
	assert.Equal(t, "rgba32float", asset.FormatRGBA32Float.String())
}

func TestNewImage(t *testing.T) {
	size := asset.Extent3D{Width: 2, Height: 1, DepthOrArrayLayers: 1}
	data := make([]byte, 32)
	for i, v := range []float32{1, 2, 3, 1, 4, 5, 6, 1} {
		binary.NativeEndian.PutUint32(data[i*4:], math.Float32bits(v))
	}

	img := asset.NewImage(size, asset.Dimension2D, data, asset.FormatRGBA32Float, asset.PersistencePolicyUnload)
	assert.Equal(t, 2, img.Width())
	assert.Equal(t, 1, img.Height())
	assert.Equal(t, 2, img.PixelCount())
	assert.Equal(t, asset.PersistencePolicyUnload, img.CPUPersistentAccess)

	px, ok := img.RGBA32FAt(1, 0)
	assert.True(t, ok)
	assert.Equal(t, [4]float32{4, 5, 6, 1}, px)

	_, ok = img.RGBA32FAt(2, 0)
	assert.False(t, ok)
	_, ok = img.RGBA32FAt(0, -1)
	assert.False(t, ok)
}

func TestNewImage_sizeMismatch(t *testing.T) {
	assert.Panics(t, func() {
		asset.NewImage(asset.Extent3D{Width: 2, Height: 2, DepthOrArrayLayers: 1},
			asset.Dimension2D, make([]byte, 16), asset.FormatRGBA32Float, asset.PersistencePolicyKeep)
	})
}
