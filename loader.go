package hdrloader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vearutop/hdrloader/asset"
)

// Loader loads Radiance HDR files as RGBA32F textures.
// The zero value is ready to use and safe for concurrent use.
type Loader struct{}

var _ asset.Loader = Loader{}

// Extensions returns the file extensions handled by Loader.
func (Loader) Extensions() []string {
	return []string{extension}
}

// LoadAsset implements asset.Loader, settings are parsed from lc.Meta.
func (l Loader) LoadAsset(ctx context.Context, lc *asset.LoadContext, r io.Reader) (*asset.Image, error) {
	var meta []byte
	if lc != nil {
		meta = lc.Meta
	}
	settings, err := ParseSettings(meta)
	if err != nil {
		return nil, err
	}
	return l.Load(ctx, r, settings, lc)
}

// Load reads r to completion, decodes it as Radiance HDR and returns an RGBA32F image.
//
// Failures are reported as *Error: KindIO if r fails or ctx is done before the read
// completes, KindDecode if the content is not a valid HDR image, including corrupt
// or truncated scanlines. Channel values are the stored ones, EXPOSURE is not applied.
// The context is only observed while reading, decoding runs to completion. lc is not used.
func (Loader) Load(ctx context.Context, r io.Reader, settings Settings, _ *asset.LoadContext) (*asset.Image, error) {
	data, err := readAll(ctx, r)
	if err != nil {
		return nil, newError(KindIO, err)
	}

	cfg, err := decodeConfig(data)
	if err != nil {
		return nil, newError(KindDecode, err)
	}

	hm, err := decodePixels(data)
	if err != nil {
		return nil, newError(KindDecode, err)
	}
	if b := hm.Bounds(); b.Dx() != cfg.Width || b.Dy() != cfg.Height {
		return nil, newError(KindDecode, fmt.Errorf("decoded size %dx%d does not match header %dx%d",
			b.Dx(), b.Dy(), cfg.Width, cfg.Height))
	}

	size := asset.Extent3D{
		Width:              uint32(cfg.Width),
		Height:             uint32(cfg.Height),
		DepthOrArrayLayers: 1,
	}
	return asset.NewImage(size, asset.Dimension2D, rgbToRGBA(hm), textureFormat, settings.CPUPersistentAccess), nil
}

// LoadFile loads the HDR file at path through a registry holding only Loader,
// honoring an optional "<path>.meta" settings sidecar.
func LoadFile(ctx context.Context, path string) (*asset.Image, error) {
	return asset.NewRegistry(Loader{}).Load(ctx, path)
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func readAll(ctx context.Context, r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, errors.New("nil reader")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return io.ReadAll(ctxReader{ctx: ctx, r: r})
}
