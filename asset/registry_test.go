package asset_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearutop/hdrloader/asset"
)

type rawLoader struct {
	ext []string
	lc  *asset.LoadContext
}

func (l *rawLoader) Extensions() []string { return l.ext }

func (l *rawLoader) LoadAsset(_ context.Context, lc *asset.LoadContext, r io.Reader) (*asset.Image, error) {
	l.lc = lc
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	size := asset.Extent3D{Width: uint32(len(data) / 4), Height: 1, DepthOrArrayLayers: 1}
	return asset.NewImage(size, asset.Dimension2D, data, asset.FormatRGBA8UnormSrgb, asset.PersistencePolicyKeep), nil
}

func TestRegistry_Lookup(t *testing.T) {
	raw := &rawLoader{ext: []string{"raw", ".RGBA"}}
	r := asset.NewRegistry(raw)

	for _, p := range []string{"a.raw", "dir/b.RAW", "c.rgba", "d.Rgba"} {
		l, ok := r.Lookup(p)
		assert.True(t, ok, p)
		assert.Same(t, raw, l, p)
	}

	for _, p := range []string{"a.png", "noext", "dir.raw/file", ""} {
		_, ok := r.Lookup(p)
		assert.False(t, ok, p)
	}

	other := &rawLoader{ext: []string{"raw"}}
	r.Register(other)
	l, ok := r.Lookup("x.raw")
	assert.True(t, ok)
	assert.Same(t, other, l)
}

func TestRegistry_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "px.raw")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3, 4, 5, 6, 7, 8}, 0o600))

	raw := &rawLoader{ext: []string{"raw"}}
	var r asset.Registry
	r.Register(raw)

	img, err := r.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Width())
	require.NotNil(t, raw.lc)
	assert.Equal(t, path, raw.lc.Path)
	assert.Nil(t, raw.lc.Meta)

	require.NoError(t, os.WriteFile(path+asset.MetaSuffix, []byte("k: v\n"), 0o600))
	_, err = r.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "k: v\n", string(raw.lc.Meta))
}

func TestRegistry_Load_errors(t *testing.T) {
	r := asset.NewRegistry(&rawLoader{ext: []string{"raw"}})

	_, err := r.Load(context.Background(), "image.png")
	assert.ErrorIs(t, err, asset.ErrNoLoader)

	_, err = r.Load(context.Background(), filepath.Join(t.TempDir(), "missing.raw"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
