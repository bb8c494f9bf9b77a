package hdrloader

import "github.com/vearutop/hdrloader/asset"

const extension = "hdr"

const (
	textureFormat = asset.FormatRGBA32Float
	bytesPerPixel = 16
	alpha         = float32(1.0)
)
