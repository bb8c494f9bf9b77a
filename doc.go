// Package hdrloader loads Radiance HDR (RGBE) images as RGBA32-float texture assets.
//
// Decoding of the RGBE bitstream is done by github.com/mdouchement/hdr. This package
// reads the input to completion, expands every RGB float pixel to RGBA with alpha 1.0,
// and packages the result as an asset.Image ready for GPU upload.
package hdrloader
