package asset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// MetaSuffix is appended to an asset path to locate its settings sidecar.
const MetaSuffix = ".meta"

// ErrNoLoader is returned when no loader is registered for a path extension.
var ErrNoLoader = errors.New("asset: no loader for extension")

// Registry maps file extensions to loaders.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]Loader
}

// NewRegistry creates a registry with the given loaders registered.
func NewRegistry(loaders ...Loader) *Registry {
	r := &Registry{loaders: make(map[string]Loader)}
	for _, l := range loaders {
		r.Register(l)
	}
	return r
}

// Register adds l for every extension it advertises, replacing earlier loaders.
func (r *Registry) Register(l Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaders == nil {
		r.loaders = make(map[string]Loader)
	}
	for _, ext := range l.Extensions() {
		r.loaders[normalizeExt(ext)] = l
	}
}

// Lookup returns the loader for the extension of path.
func (r *Registry) Lookup(path string) (Loader, bool) {
	ext := normalizeExt(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.loaders[ext]
	return l, ok
}

// Load opens path, reads its optional sidecar settings and runs the matching loader.
func (r *Registry) Load(ctx context.Context, path string) (*Image, error) {
	l, ok := r.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoLoader, filepath.Ext(path))
	}

	meta, err := os.ReadFile(filepath.Clean(path + MetaSuffix))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read meta: %w", err)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return l.LoadAsset(ctx, &LoadContext{Path: path, Meta: meta}, f)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
