/*
DESCRIPTION
  idct_reference.go implements a direct, floating-point 2-D inverse DCT per
  the scaled definition of ISO/IEC 23002-2. It exists only to cross-validate
  the fast integer butterfly IDCT in idct.go in tests; nothing on the decode
  path calls it.

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

import "math"

// referenceIDCT computes the direct (non-separable-butterfly) 2-D inverse
// DCT of block, biased by +128 and saturated to [0, 255], writing into out.
// It is O(n^4) in the block dimension and used for test verification only.
func referenceIDCT(block *[64]int32, out *[64]int32) {
	var cu, cv [8]float64
	for u := 0; u < 8; u++ {
		cu[u] = 1.0
		if u == 0 {
			cu[u] = 1.0 / math.Sqrt2
		}
	}
	cv = cu

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			var sum float64
			for v := 0; v < 8; v++ {
				for u := 0; u < 8; u++ {
					coeff := float64(block[v*8+u])
					sum += cu[u] * cv[v] * coeff *
						math.Cos((2*float64(x)+1)*float64(u)*math.Pi/16) *
						math.Cos((2*float64(y)+1)*float64(v)*math.Pi/16)
				}
			}
			sample := sum/4 + 128
			out[y*8+x] = clampSample(int32(math.Round(sample)))
		}
	}
}
