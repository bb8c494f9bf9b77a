package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/vearutop/hdrloader"
	"github.com/vearutop/hdrloader/asset"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch os.Args[1] {
	case "info":
		err = runInfo(ctx, os.Args[2:])
	case "preview":
		err = runPreview(ctx, os.Args[2:])
	case "raw":
		err = runRaw(ctx, os.Args[2:])
	case "meta":
		err = runMeta(os.Args[2:])
	default:
		stop()
		usage()
		os.Exit(2)
	}
	if err != nil {
		stop()
		fail(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: hdrtool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  info    -i input.hdr")
	fmt.Fprintln(os.Stderr, "  preview -i input.hdr -o preview.png [--max-width 512] [--max-height 512] [--exposure 1]")
	fmt.Fprintln(os.Stderr, "  raw     -i input.hdr -o texels.bin")
	fmt.Fprintln(os.Stderr, "  meta    -i input.hdr [--policy keep|unload]")
}

func load(ctx context.Context, path string) (*asset.Image, error) {
	if path == "" {
		return nil, errors.New("missing required arguments")
	}
	return asset.NewRegistry(hdrloader.Loader{}).Load(ctx, path)
}

func runInfo(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("info", pflag.ContinueOnError)
	inPath := fs.StringP("in", "i", "", "input HDR file")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	img, err := load(ctx, *inPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "size:    %dx%dx%d\n", img.Size.Width, img.Size.Height, img.Size.DepthOrArrayLayers)
	fmt.Fprintf(os.Stdout, "format:  %s (%s)\n", img.Format, img.Dimension)
	fmt.Fprintf(os.Stdout, "bytes:   %d\n", len(img.Data))
	fmt.Fprintf(os.Stdout, "persist: %s\n", img.CPUPersistentAccess)
	return nil
}

func runPreview(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("preview", pflag.ContinueOnError)
	inPath := fs.StringP("in", "i", "", "input HDR file")
	outPath := fs.StringP("out", "o", "", "output PNG")
	maxWidth := fs.Uint("max-width", 0, "fit preview into this width (0 keeps size)")
	maxHeight := fs.Uint("max-height", 0, "fit preview into this height (0 keeps size)")
	exposure := fs.Float32("exposure", 1, "linear exposure multiplier")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *outPath == "" {
		return errors.New("missing required arguments")
	}
	img, err := load(ctx, *inPath)
	if err != nil {
		return err
	}
	pv, err := hdrloader.Preview(img, *maxWidth, *maxHeight, *exposure)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(*outPath))
	if err != nil {
		return err
	}
	if err := png.Encode(f, pv); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func runRaw(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("raw", pflag.ContinueOnError)
	inPath := fs.StringP("in", "i", "", "input HDR file")
	outPath := fs.StringP("out", "o", "", "output file for RGBA32F texels")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *outPath == "" {
		return errors.New("missing required arguments")
	}
	img, err := load(ctx, *inPath)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Clean(*outPath), img.Data, 0o644)
}

func runMeta(args []string) error {
	fs := pflag.NewFlagSet("meta", pflag.ContinueOnError)
	inPath := fs.StringP("in", "i", "", "HDR file to write the settings sidecar for")
	policy := fs.String("policy", asset.PersistencePolicyKeep.String(), "cpu persistent access policy: keep|unload")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}
	var s hdrloader.Settings
	if err := s.CPUPersistentAccess.UnmarshalText([]byte(*policy)); err != nil {
		return err
	}
	payload, err := hdrloader.MarshalYAMLSettings(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Clean(*inPath+asset.MetaSuffix), payload, 0o644)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
