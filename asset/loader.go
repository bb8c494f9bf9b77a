// Package asset defines the texture asset model and the loader contract used to
// dispatch files to format loaders by extension.
package asset

import (
	"context"
	"io"
)

// LoadContext carries per-load information from the pipeline to a Loader.
type LoadContext struct {
	// Path is the asset path as requested.
	Path string
	// Meta is the raw content of the optional settings sidecar, nil if absent.
	Meta []byte
}

// Loader converts raw bytes into an Image.
type Loader interface {
	// Extensions lists the file extensions handled by the loader, lowercase and without dot.
	Extensions() []string
	// LoadAsset reads r to completion and builds an Image using settings decoded from lc.Meta.
	LoadAsset(ctx context.Context, lc *LoadContext, r io.Reader) (*Image, error)
}
