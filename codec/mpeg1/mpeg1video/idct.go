/*
DESCRIPTION
  idct.go implements the fast separable 8x8 inverse DCT used on the hot
  decode path: a row pass followed by a column pass, each built from a
  small set of integer butterflies rather than a direct O(n^2) sum.

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

// Fixed-point butterfly constants, scaled by 256 and rounded to the
// nearest integer.
const (
	idctC1    = 473 // 256 * 2 * cos(pi/8), rounded
	idctC2    = 196 // 256 * 2 * sin(pi/8), rounded
	idctC3    = 362 // 256 * sqrt(2), rounded
	idctC4    = 128 // 256 / 2
	idctShift = 8
)

// idct performs an in-place 2-D inverse DCT of block (64 dequantized,
// premultiplied coefficients), overwriting it with spatial samples biased
// by +128 and saturated to [0, 255].
func idct(block *[64]int32) {
	var row [8]int32
	for i := 0; i < 8; i++ {
		copy(row[:], block[i*8:i*8+8])
		idctButterfly(&row)
		copy(block[i*8:i*8+8], row[:])
	}

	var col [8]int32
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			col[j] = block[j*8+i]
		}
		idctButterfly(&col)
		for j := 0; j < 8; j++ {
			block[j*8+i] = clampSample(col[j] + 128)
		}
	}
}

// idctButterfly applies one 1-D, 8-point inverse DCT pass in place. The
// products with the Q(idctShift) constants are shifted back down by
// idctShift before each output is stored, so both the row pass and the
// column pass return values at their input scale; the caller applies no
// further shift.
func idctButterfly(v *[8]int32) {
	a0 := v[0]*idctC4 + v[4]*idctC4
	a1 := v[0]*idctC4 - v[4]*idctC4
	a2 := v[2]*idctC2 - v[6]*idctC1
	a3 := v[2]*idctC1 + v[6]*idctC2

	e0 := a0 + a3
	e3 := a0 - a3
	e1 := a1 + a2
	e2 := a1 - a2

	b0 := v[1]*idctC1 + v[7]*idctC2
	b1 := v[5]*idctC3 - v[3]*idctC3
	b2 := v[1]*idctC2 - v[7]*idctC1
	b3 := v[5]*idctC3 + v[3]*idctC3

	f0 := b0 + b3
	f3 := b0 - b3
	f1 := b1 + b2
	f2 := b1 - b2

	v[0] = (e0 + f0) >> idctShift
	v[7] = (e0 - f0) >> idctShift
	v[1] = (e1 + f1) >> idctShift
	v[6] = (e1 - f1) >> idctShift
	v[2] = (e2 + f2) >> idctShift
	v[5] = (e2 - f2) >> idctShift
	v[3] = (e3 + f3) >> idctShift
	v[4] = (e3 - f3) >> idctShift
}

func clampSample(v int32) int32 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return v
	}
}
