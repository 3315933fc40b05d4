/*
DESCRIPTION
  macroblock.go decodes a single macroblock: its address increment
  (including the escape and stuffing special cases), its type, and the six
  8x8 blocks (four luma, one Cb, one Cr) that make up its pixels.

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
	mbAddrEscape   = 34
	mbAddrStuffing = 35
)

// decodeMacroblock decodes macroblock_address_increment, macroblock_type,
// and the block data of one macroblock, placing the reconstructed samples
// into frame at the macroblock's current position.
func (d *Decoder) decodeMacroblock(frame *Frame) error {
	inc, err := d.decodeAddressIncrement()
	if err != nil {
		return err
	}
	d.mbAddr += inc
	if d.mbAddr >= d.mbWidth*d.mbHeight {
		return formatErrorf("macroblock address %d out of range", d.mbAddr)
	}

	quant, err := macroblockTypeIntra.decode(d.br)
	if err != nil {
		return err
	}
	if quant == 1 {
		scale, err := d.br.ReadBits(5)
		if err != nil {
			return err
		}
		if scale == 0 {
			return formatErrorf("quantizer_scale must be nonzero")
		}
		d.quantizerScale = int(scale)
		d.stats.QuantizerOverrides++
	}

	mbRow := d.mbAddr / d.mbWidth
	mbCol := d.mbAddr % d.mbWidth

	for i := 0; i < 6; i++ {
		var block [64]int32
		if err := d.decodeBlock(i, &block); err != nil {
			return err
		}
		placeBlock(frame, mbRow, mbCol, i, &block)
	}
	return nil
}

// decodeAddressIncrement decodes one or more macroblock_address_increment
// codes, folding macroblock_escape (add 33, continue) and
// macroblock_stuffing (no-op, continue) into a single net increment.
func (d *Decoder) decodeAddressIncrement() (int, error) {
	total := 0
	for {
		v, err := macroblockAddressIncrement.decode(d.br)
		if err != nil {
			return 0, err
		}
		switch v {
		case mbAddrEscape:
			total += 33
		case mbAddrStuffing:
			// No-op; continue reading further increment codes.
		default:
			return total + v, nil
		}
	}
}

// placeBlock copies a decoded 8x8 block into its position within frame, per
// the macroblock layout of section 2.4.2: blocks 0-3 are luma in raster
// order (top-left, top-right, bottom-left, bottom-right), 4 is Cb, 5 is Cr.
func placeBlock(frame *Frame, mbRow, mbCol, i int, block *[64]int32) {
	switch {
	case i < 4:
		x := mbCol*16 + (i&1)*8
		y := mbRow*16 + (i>>1)*8
		writeBlock(&frame.Y, x, y, block)
	case i == 4:
		writeBlock(&frame.Cb, mbCol*8, mbRow*8, block)
	default:
		writeBlock(&frame.Cr, mbCol*8, mbRow*8, block)
	}
}

func writeBlock(p *Plane, x, y int, block *[64]int32) {
	for row := 0; row < 8; row++ {
		off := (y+row)*p.Width + x
		for col := 0; col < 8; col++ {
			p.Data[off+col] = byte(block[row*8+col])
		}
	}
}
