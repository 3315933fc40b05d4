/*
DESCRIPTION
  frame.go defines the decoded-picture buffer types: a single-component
  Plane and the three-plane Frame that a Decoder fills in place, frame after
  frame, to avoid a per-picture allocation on the hot path.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mpeg1video

// FrameType distinguishes the picture_coding_type field of a picture
// header.
type FrameType byte

// Picture coding types, per Table 2-D.7. Only Intra pictures are decoded to
// pixels by this package; Predicted, Bidirectional and DCIntra pictures are
// skipped forward over (see picture.go).
const (
	Intra         FrameType = 1
	Predicted     FrameType = 2
	Bidirectional FrameType = 3
	DCIntra       FrameType = 4
)

// Plane is a single 8-bit image component, row-major, with Width columns
// and Height rows. Width and Height are macroblock-padded (multiples of 16
// for luma, 8 for chroma), not the display size.
type Plane struct {
	Width, Height int
	Data          []byte
}

func newPlane(width, height int) Plane {
	return Plane{Width: width, Height: height, Data: make([]byte, width*height)}
}

// Frame holds the three planes of a decoded picture in 4:2:0 layout.
type Frame struct {
	Y, Cb, Cr Plane

	// DisplayWidth and DisplayHeight are the sequence header's horizontal
	// and vertical size, which may be smaller than the macroblock-padded
	// plane dimensions.
	DisplayWidth, DisplayHeight int
}

// newFrame allocates a Frame sized to hold mbWidth x mbHeight macroblocks,
// cropped for display to (displayWidth, displayHeight).
func newFrame(mbWidth, mbHeight, displayWidth, displayHeight int) *Frame {
	lumaW, lumaH := mbWidth*16, mbHeight*16
	return &Frame{
		Y:             newPlane(lumaW, lumaH),
		Cb:            newPlane(lumaW/2, lumaH/2),
		Cr:            newPlane(lumaW/2, lumaH/2),
		DisplayWidth:  displayWidth,
		DisplayHeight: displayHeight,
	}
}
