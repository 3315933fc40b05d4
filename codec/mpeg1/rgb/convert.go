/*
DESCRIPTION
  convert.go converts a decoded 4:2:0 YCbCr mpeg1video.Frame to interleaved
  24-bit RGB, using the BT.601 video-range fixed-point coefficients and
  nearest-neighbour chroma upsampling.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package rgb converts decoded MPEG-1 video frames to interleaved RGB
// pixel buffers suitable for image encoding.
package rgb

import "github.com/ausocean/mpeg1/codec/mpeg1/mpeg1video"

// BT.601 fixed-point coefficients for video-range YCbCr (luma 16-235),
// scaled by 1<<16.
const (
	cropY  = 76309  // 1.164 * 65536
	cropR  = 104597 // 1.596 * 65536
	cropG1 = 25674  // 0.392 * 65536
	cropG2 = 53278  // 0.813 * 65536
	cropB  = 132201 // 2.017 * 65536
)

// Sink receives one converted frame's interleaved RGB pixels at a time.
type Sink interface {
	Accept(width, height int, rgb []byte) error
}

// Convert returns the cropped display area of f as interleaved 24-bit RGB,
// row-major, top-to-bottom.
func Convert(f *mpeg1video.Frame) []byte {
	w, h := f.DisplayWidth, f.DisplayHeight
	out := make([]byte, w*h*3)

	for y := 0; y < h; y++ {
		cy := y / 2
		for x := 0; x < w; x++ {
			cx := x / 2

			yy := ((int32(f.Y.Data[y*f.Y.Width+x]) - 16) * cropY) >> 16
			cb := int32(f.Cb.Data[cy*f.Cb.Width+cx]) - 128
			cr := int32(f.Cr.Data[cy*f.Cr.Width+cx]) - 128

			r := yy + (cropR*cr)>>16
			g := yy - (cropG1*cb+cropG2*cr)>>16
			b := yy + (cropB*cb)>>16

			off := (y*w + x) * 3
			out[off] = clip(r)
			out[off+1] = clip(g)
			out[off+2] = clip(b)
		}
	}
	return out
}

func clip(v int32) byte {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return byte(v)
	}
}
