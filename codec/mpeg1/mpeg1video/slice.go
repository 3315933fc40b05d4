/*
DESCRIPTION
  slice.go parses a slice syntax element: quantizer_scale, optional extra
  slice information, and the macroblock loop, including the lookahead used
  to recognise the slice's end without a length field.

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

const (
	sliceStartCodeMin = 0x01
	sliceStartCodeMax = 0xAF
)

// decodeSlice decodes one slice (identified by its start code, which
// encodes the macroblock row) into frame.
func (d *Decoder) decodeSlice(code int, frame *Frame) error {
	mbRow := code - 1

	scale, err := d.br.ReadBits(5)
	if err != nil {
		return err
	}
	if scale == 0 {
		return formatErrorf("quantizer_scale must be nonzero")
	}
	d.quantizerScale = int(scale)

	if err := d.skipExtraSliceInfo(); err != nil {
		return err
	}

	d.dcPredictor = [3]int32{128, 128, 128}
	d.mbAddr = mbRow*d.mbWidth - 1

	for {
		end, err := d.atSliceEnd()
		if err != nil {
			return err
		}
		if end {
			return nil
		}
		if err := d.decodeMacroblock(frame); err != nil {
			return err
		}
	}
}

// skipExtraSliceInfo discards the optional extra_information_slice bytes,
// a mechanism reserved for private, non-normative use that this decoder
// does not act on.
func (d *Decoder) skipExtraSliceInfo() error {
	for {
		bit, err := d.br.ReadBits(1)
		if err != nil {
			return err
		}
		if bit == 0 {
			return nil
		}
		if _, err := d.br.ReadBits(8); err != nil {
			return err
		}
	}
}

// atSliceEnd peeks 23 bits: a byte-aligned run of at least 23 zero bits
// followed by a 1 is the earliest a start code (00 00 01 xx) can occur, so
// finding fewer than 23 significant bits remaining signals the slice (and
// usually the picture) has ended.
func (d *Decoder) atSliceEnd() (bool, error) {
	v, err := d.br.PeekBits(23)
	if err != nil {
		return true, nil // Short read here means the stream ended mid-slice; treat as end.
	}
	return v == 0, nil
}
