package hdrloader

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
)

var exposurePrefix = []byte("EXPOSURE=")

// decodeConfig reads the header and rejects images without pixels.
func decodeConfig(data []byte) (cfg image.Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			cfg = image.Config{}
			err = fmt.Errorf("corrupt header: %v", r)
		}
	}()

	cfg, err = rgbe.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, err
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return image.Config{}, fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// decodePixels decodes the full payload of data.
//
// EXPOSURE header lines are dropped before decoding so channel values are the
// stored ones. Reads past the end of data fail with io.ErrUnexpectedEOF, and a
// panic in the codec on corrupt scanlines is returned as an error.
func decodePixels(data []byte) (hm hdr.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			hm = nil
			err = fmt.Errorf("corrupt pixel data: %v", r)
		}
	}()

	var m image.Image
	m, err = rgbe.Decode(strictReader{r: bytes.NewReader(withoutExposure(data))})
	if err != nil {
		return nil, err
	}

	hm, ok := m.(hdr.Image)
	if !ok {
		return nil, fmt.Errorf("unexpected decoded image type %T", m)
	}
	return hm, nil
}

// strictReader reports the end of input as io.ErrUnexpectedEOF.
// A complete file never reads past its last scanline.
type strictReader struct {
	r io.Reader
}

func (s strictReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return n, err
}

// withoutExposure returns data with EXPOSURE lines removed from the header.
// Input without a header terminator is returned as is.
func withoutExposure(data []byte) []byte {
	end := bytes.Index(data, []byte("\n\n"))
	if end < 0 || !bytes.Contains(data[:end], exposurePrefix) {
		return data
	}

	out := make([]byte, 0, len(data))
	header := data[:end+1]
	for len(header) > 0 {
		line := header
		if i := bytes.IndexByte(header, '\n'); i >= 0 {
			line = header[:i+1]
		}
		header = header[len(line):]
		if bytes.HasPrefix(line, exposurePrefix) {
			continue
		}
		out = append(out, line...)
	}
	return append(out, data[end+1:]...)
}
