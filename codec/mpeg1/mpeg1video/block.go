/*
DESCRIPTION
  block.go decodes one intra-coded 8x8 DCT block: the differentially coded
  DC coefficient, the run-length coded AC coefficients, inverse
  quantization, and the choice between the DC-only fast fill and the full
  IDCT.

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

// predictorIndex returns the dc_predictor slot for block index i within a
// macroblock: 0 for the four luma blocks, 1 for Cb, 2 for Cr.
func predictorIndex(i int) int {
	switch {
	case i < 4:
		return 0
	case i == 4:
		return 1
	default:
		return 2
	}
}

// decodeBlock decodes intra block i of the current macroblock into block,
// a natural-order (non-zig-zag) array of reconstructed spatial samples
// ready for placement into a Plane.
func (d *Decoder) decodeBlock(i int, block *[64]int32) error {
	idx := predictorIndex(i)

	diff, err := d.decodeDCDiff(idx)
	if err != nil {
		return err
	}
	d.dcPredictor[idx] += diff

	var coeffs [64]int32
	// Scaled left by 8 (3 bits to align with the AC inverse-quantization
	// shift, 5 more matching premultiplier[0]) so the DC term sits at the
	// same magnitude as the AC terms it's summed with in the IDCT.
	coeffs[0] = d.dcPredictor[idx] << 8

	n, err := d.decodeACCoefficients(&coeffs)
	if err != nil {
		return err
	}

	if n == 0 {
		fill := clampSample((coeffs[0] + 128) >> 8)
		for k := range block {
			block[k] = fill
		}
		return nil
	}

	idct(&coeffs)
	*block = coeffs
	return nil
}

// decodeDCDiff decodes dct_dc_size_luminance or dct_dc_size_chrominance
// (selected by predictor slot), then the differential DC value of that
// many bits.
func (d *Decoder) decodeDCDiff(predictor int) (int32, error) {
	table := dctSizeLuminance
	if predictor != 0 {
		table = dctSizeChrominance
	}
	size, err := table.decode(d.br)
	if err != nil {
		return 0, err
	}
	if size == 0 {
		return 0, nil
	}
	return d.decodeSignedValue(size)
}

// decodeSignedValue reads n bits and interprets them per the DC/AC
// differential coding convention: if the top bit is 0, the value is
// negative and offset by -(2^n - 1); if 1, the value is the bits
// themselves.
func (d *Decoder) decodeSignedValue(n int) (int32, error) {
	v, err := d.br.ReadBits(n)
	if err != nil {
		return 0, err
	}
	if v < (1 << (n - 1)) {
		return int32(v) - (1 << n) + 1, nil
	}
	return int32(v), nil
}

// decodeEscapeLevel reads the fixed-length level that follows an escape-coded
// run in dct_coefficient_next: a distinct convention from decodeSignedValue,
// since the 8-bit field here is the original FLC escape coding rather than a
// variable-size differential. A first byte of 0 or 128 is a marker signalling
// a second 8-bit field carries the real magnitude.
func (d *Decoder) decodeEscapeLevel() (int, error) {
	first, err := d.br.ReadBits(8)
	if err != nil {
		return 0, err
	}
	switch {
	case first == 0:
		extra, err := d.br.ReadBits(8)
		if err != nil {
			return 0, err
		}
		return int(extra), nil
	case first == 128:
		extra, err := d.br.ReadBits(8)
		if err != nil {
			return 0, err
		}
		return int(extra) - 256, nil
	case first > 128:
		return int(first) - 256, nil
	default:
		return int(first), nil
	}
}

// decodeACCoefficients decodes the run-length coded AC coefficients of a
// block into coeffs (natural order, via zigZag), returning the count of
// non-zero coefficients placed (0 if the block was DC-only).
func (d *Decoder) decodeACCoefficients(coeffs *[64]int32) (int, error) {
	n := 0
	for pos := 1; pos < 64; {
		sym, err := dctCoeff.decode(d.br)
		if err != nil {
			return 0, err
		}

		if sym == eobMarker {
			bit, err := d.br.ReadBits(1)
			if err != nil {
				return 0, err
			}
			if bit == 0 {
				return n, nil
			}
			sym = int(pack(0, 1))
		}

		var run, level int
		if sym == escapeMarker {
			r, err := d.br.ReadBits(6)
			if err != nil {
				return 0, err
			}
			lv, err := d.decodeEscapeLevel()
			if err != nil {
				return 0, err
			}
			run, level = int(r), lv
		} else {
			run = int(sym) >> 8
			level = int(sym) & 0xFF
			sign, err := d.br.ReadBits(1)
			if err != nil {
				return 0, err
			}
			if sign == 1 {
				level = -level
			}
		}

		pos += run
		if pos >= 64 {
			return 0, formatErrorf("AC coefficient run overruns block: pos=%d", pos)
		}

		zpos := int(zigZag[pos])
		coeffs[zpos] = dequantizeAC(int32(level), zpos, d.quantizerScale) * premultiplier[zpos]
		n++
		pos++
	}
	return n, nil
}

// dequantizeAC inverse-quantizes a decoded AC level at natural position
// pos, applying oddification and saturating to [-2048, 2047].
func dequantizeAC(level int32, pos, quantizerScale int) int32 {
	qm := int32(intraQuantMatrix[pos])
	v := (2*level + sign(level)) * int32(quantizerScale) * qm / 16
	if v&1 == 0 {
		if v > 0 {
			v--
		} else if v < 0 {
			v++
		}
	}
	switch {
	case v > 2047:
		return 2047
	case v < -2048:
		return -2048
	default:
		return v
	}
}

func sign(v int32) int32 {
	if v < 0 {
		return -1
	}
	return 1
}
