/*
DESCRIPTION
  tables.go holds the literal, bit-exact constant data of the ISO/IEC
  11172-2 video syntax: the zig-zag scan order, the default intra
  quantizer matrix, the IDCT premultiplier matrix, and the four
  variable-length code tables used during macroblock and block decode.

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

// zigZag maps a coefficient's position in decode order (0..63) to its
// position in the 8x8 block, per Figure 7 of ISO/IEC 11172-2.
var zigZag = [64]uint8{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// intraQuantMatrix is the default intra quantizer matrix of Table 2-D.15,
// applied to an inverse-quantized coefficient at its natural (post zig-zag)
// position.
var intraQuantMatrix = [64]uint8{
	8, 16, 19, 22, 26, 27, 29, 34,
	16, 16, 22, 24, 27, 29, 34, 37,
	19, 22, 26, 27, 29, 34, 34, 38,
	22, 22, 26, 27, 29, 34, 37, 40,
	22, 26, 27, 29, 32, 35, 40, 48,
	26, 27, 29, 32, 35, 40, 48, 58,
	26, 27, 29, 34, 38, 46, 56, 69,
	27, 29, 35, 38, 46, 56, 69, 83,
}

// premultiplier scales a dequantized coefficient ahead of the fast IDCT, so
// that the IDCT butterflies in idct.go can operate with integer-only
// constants. Indexed the same way as intraQuantMatrix (row-major, natural
// position).
var premultiplier = [64]int32{
	32, 44, 42, 38, 32, 25, 17, 9,
	44, 62, 58, 52, 44, 35, 24, 12,
	42, 58, 55, 49, 42, 33, 23, 12,
	38, 52, 49, 44, 38, 30, 20, 10,
	32, 44, 42, 38, 32, 25, 17, 9,
	25, 35, 33, 30, 25, 20, 14, 7,
	17, 24, 23, 20, 17, 14, 9, 5,
	9, 12, 12, 10, 9, 7, 5, 2,
}

// dctSizeLuminance decodes dct_dc_size_luminance (Table B-12): the number of
// bits of the differential DC coefficient that follow, for a luma block.
var dctSizeLuminance = buildHuffTable([]vlcCode{
	{"100", 0},
	{"00", 1},
	{"01", 2},
	{"101", 3},
	{"110", 4},
	{"1110", 5},
	{"11110", 6},
	{"111110", 7},
	{"1111110", 8},
})

// dctSizeChrominance decodes dct_dc_size_chrominance (Table B-13), the
// chroma-block equivalent of dctSizeLuminance.
var dctSizeChrominance = buildHuffTable([]vlcCode{
	{"00", 0},
	{"01", 1},
	{"10", 2},
	{"110", 3},
	{"1110", 4},
	{"11110", 5},
	{"111110", 6},
	{"1111110", 7},
	{"11111110", 8},
})

// eobMarker is the symbol returned for the single-bit prefix "1", shared
// between end-of-block and (run=0, level=1): decodeACCoefficients in
// block.go distinguishes the two by reading one further bit.
const eobMarker = 0x0001

// escapeMarker is the symbol returned for the dct_coefficient escape code
// (000001): the run and level that follow are read as fixed-width fields
// rather than decoded from the table.
const escapeMarker = -1

// dctCoeff decodes dct_coefficient_next (Table B-14/B-15): every run/level
// pair the standard assigns a variable-length code to, transcribed node by
// node (not re-derived as bitstrings) from the flat Huffman array of a
// reference MPEG-1 decoder. A returned symbol packs run in the high byte
// and level in the low byte, except for the two sentinels above, which
// match that reference decoder's own 0x0001 and 0xffff markers exactly.
var dctCoeff = buildFlatHuffTable([]flatCode{
	{2, 0}, {0, eobMarker}, //  0: x        (EOB if followed by 0; (0,1) if followed by 1)
	{4, 0}, {6, 0}, //  1: 0x
	{8, 0}, {10, 0}, //  2: 00x
	{12, 0}, {0, pack(1, 1)}, //  3: 01x
	{14, 0}, {16, 0}, //  4: 000x
	{18, 0}, {20, 0}, //  5: 001x
	{0, pack(0, 2)}, {0, pack(2, 1)}, //  6: 010x
	{22, 0}, {24, 0}, //  7: 0000x
	{26, 0}, {28, 0}, //  8: 0001x
	{30, 0}, {0, pack(0, 3)}, //  9: 0010x
	{0, pack(4, 1)}, {0, pack(3, 1)}, // 10: 0011x
	{32, 0}, {0, escapeMarker}, // 11: 0000 0x
	{34, 0}, {36, 0}, // 12: 0000 1x
	{0, pack(7, 1)}, {0, pack(6, 1)}, // 13: 0001 0x
	{0, pack(1, 2)}, {0, pack(5, 1)}, // 14: 0001 1x
	{38, 0}, {40, 0}, // 15: 0010 0x
	{42, 0}, {44, 0}, // 16: 0000 00x
	{0, pack(2, 2)}, {0, pack(9, 1)}, // 17: 0000 10x
	{0, pack(0, 4)}, {0, pack(8, 1)}, // 18: 0000 11x
	{46, 0}, {48, 0}, // 19: 0010 00x
	{50, 0}, {52, 0}, // 20: 0010 01x
	{54, 0}, {56, 0}, // 21: 0000 000x
	{58, 0}, {60, 0}, // 22: 0000 001x
	{0, pack(13, 1)}, {0, pack(0, 6)}, // 23: 0010 000x
	{0, pack(12, 1)}, {0, pack(11, 1)}, // 24: 0010 001x
	{0, pack(3, 2)}, {0, pack(1, 3)}, // 25: 0010 010x
	{0, pack(0, 5)}, {0, pack(10, 1)}, // 26: 0010 011x
	{62, 0}, {64, 0}, // 27: 0000 0000x
	{66, 0}, {68, 0}, // 28: 0000 0001x
	{70, 0}, {72, 0}, // 29: 0000 0010x
	{74, 0}, {76, 0}, // 30: 0000 0011x
	{78, 0}, {80, 0}, // 31: 0000 0000 0x
	{82, 0}, {84, 0}, // 32: 0000 0000 1x
	{86, 0}, {88, 0}, // 33: 0000 0001 0x
	{90, 0}, {92, 0}, // 34: 0000 0001 1x
	{0, pack(16, 1)}, {0, pack(5, 2)}, // 35: 0000 0010 0x
	{0, pack(0, 7)}, {0, pack(2, 3)}, // 36: 0000 0010 1x
	{0, pack(1, 4)}, {0, pack(15, 1)}, // 37: 0000 0011 0x
	{0, pack(14, 1)}, {0, pack(4, 2)}, // 38: 0000 0011 1x
	{94, 0}, {96, 0}, // 39: 0000 0000 00x
	{98, 0}, {100, 0}, // 40: 0000 0000 01x
	{102, 0}, {104, 0}, // 41: 0000 0000 10x
	{106, 0}, {108, 0}, // 42: 0000 0000 11x
	{110, 0}, {112, 0}, // 43: 0000 0001 00x
	{114, 0}, {116, 0}, // 44: 0000 0001 01x
	{118, 0}, {120, 0}, // 45: 0000 0001 10x
	{122, 0}, {124, 0}, // 46: 0000 0001 11x
	{-1, 0}, {126, 0}, // 47: 0000 0000 000x
	{128, 0}, {130, 0}, // 48: 0000 0000 001x
	{132, 0}, {134, 0}, // 49: 0000 0000 010x
	{136, 0}, {138, 0}, // 50: 0000 0000 011x
	{140, 0}, {142, 0}, // 51: 0000 0000 100x
	{144, 0}, {146, 0}, // 52: 0000 0000 101x
	{148, 0}, {150, 0}, // 53: 0000 0000 110x
	{152, 0}, {154, 0}, // 54: 0000 0000 111x
	{0, pack(0, 11)}, {0, pack(8, 2)}, // 55: 0000 0001 000x
	{0, pack(4, 3)}, {0, pack(0, 10)}, // 56: 0000 0001 001x
	{0, pack(2, 4)}, {0, pack(7, 2)}, // 57: 0000 0001 010x
	{0, pack(21, 1)}, {0, pack(20, 1)}, // 58: 0000 0001 011x
	{0, pack(0, 9)}, {0, pack(19, 1)}, // 59: 0000 0001 100x
	{0, pack(18, 1)}, {0, pack(1, 5)}, // 60: 0000 0001 101x
	{0, pack(3, 3)}, {0, pack(0, 8)}, // 61: 0000 0001 110x
	{0, pack(6, 2)}, {0, pack(17, 1)}, // 62: 0000 0001 111x
	{156, 0}, {158, 0}, // 63: 0000 0000 0001x
	{160, 0}, {162, 0}, // 64: 0000 0000 0010x
	{164, 0}, {166, 0}, // 65: 0000 0000 0011x
	{168, 0}, {170, 0}, // 66: 0000 0000 0100x
	{172, 0}, {174, 0}, // 67: 0000 0000 0101x
	{176, 0}, {178, 0}, // 68: 0000 0000 0110x
	{180, 0}, {182, 0}, // 69: 0000 0000 0111x
	{0, pack(10, 2)}, {0, pack(9, 2)}, // 70: 0000 0000 1000x
	{0, pack(5, 3)}, {0, pack(3, 4)}, // 71: 0000 0000 1001x
	{0, pack(2, 5)}, {0, pack(1, 7)}, // 72: 0000 0000 1010x
	{0, pack(1, 6)}, {0, pack(0, 15)}, // 73: 0000 0000 1011x
	{0, pack(0, 14)}, {0, pack(0, 13)}, // 74: 0000 0000 1100x
	{0, pack(0, 12)}, {0, pack(26, 1)}, // 75: 0000 0000 1101x
	{0, pack(25, 1)}, {0, pack(24, 1)}, // 76: 0000 0000 1110x
	{0, pack(23, 1)}, {0, pack(22, 1)}, // 77: 0000 0000 1111x
	{184, 0}, {186, 0}, // 78: 0000 0000 0001 0x
	{188, 0}, {190, 0}, // 79: 0000 0000 0001 1x
	{192, 0}, {194, 0}, // 80: 0000 0000 0010 0x
	{196, 0}, {198, 0}, // 81: 0000 0000 0010 1x
	{200, 0}, {202, 0}, // 82: 0000 0000 0011 0x
	{204, 0}, {206, 0}, // 83: 0000 0000 0011 1x
	{0, pack(0, 31)}, {0, pack(0, 30)}, // 84: 0000 0000 0100 0x
	{0, pack(0, 29)}, {0, pack(0, 28)}, // 85: 0000 0000 0100 1x
	{0, pack(0, 27)}, {0, pack(0, 26)}, // 86: 0000 0000 0101 0x
	{0, pack(0, 25)}, {0, pack(0, 24)}, // 87: 0000 0000 0101 1x
	{0, pack(0, 23)}, {0, pack(0, 22)}, // 88: 0000 0000 0110 0x
	{0, pack(0, 21)}, {0, pack(0, 20)}, // 89: 0000 0000 0110 1x
	{0, pack(0, 19)}, {0, pack(0, 18)}, // 90: 0000 0000 0111 0x
	{0, pack(0, 17)}, {0, pack(0, 16)}, // 91: 0000 0000 0111 1x
	{208, 0}, {210, 0}, // 92: 0000 0000 0001 00x
	{212, 0}, {214, 0}, // 93: 0000 0000 0001 01x
	{216, 0}, {218, 0}, // 94: 0000 0000 0001 10x
	{220, 0}, {222, 0}, // 95: 0000 0000 0001 11x
	{0, pack(0, 40)}, {0, pack(0, 39)}, // 96: 0000 0000 0010 00x
	{0, pack(0, 38)}, {0, pack(0, 37)}, // 97: 0000 0000 0010 01x
	{0, pack(0, 36)}, {0, pack(0, 35)}, // 98: 0000 0000 0010 10x
	{0, pack(0, 34)}, {0, pack(0, 33)}, // 99: 0000 0000 0010 11x
	{0, pack(0, 32)}, {0, pack(1, 14)}, // 100: 0000 0000 0011 00x
	{0, pack(1, 13)}, {0, pack(1, 12)}, // 101: 0000 0000 0011 01x
	{0, pack(1, 11)}, {0, pack(1, 10)}, // 102: 0000 0000 0011 10x
	{0, pack(1, 9)}, {0, pack(1, 8)}, // 103: 0000 0000 0011 11x
	{0, pack(1, 18)}, {0, pack(1, 17)}, // 104: 0000 0000 0001 000x
	{0, pack(1, 16)}, {0, pack(1, 15)}, // 105: 0000 0000 0001 001x
	{0, pack(6, 3)}, {0, pack(16, 2)}, // 106: 0000 0000 0001 010x
	{0, pack(15, 2)}, {0, pack(14, 2)}, // 107: 0000 0000 0001 011x
	{0, pack(13, 2)}, {0, pack(12, 2)}, // 108: 0000 0000 0001 100x
	{0, pack(11, 2)}, {0, pack(31, 1)}, // 109: 0000 0000 0001 101x
	{0, pack(30, 1)}, {0, pack(29, 1)}, // 110: 0000 0000 0001 110x
	{0, pack(28, 1)}, {0, pack(27, 1)}, // 111: 0000 0000 0001 111x
})

// pack combines a run and a level into the symbol form used by dctCoeff.
func pack(run, level int) int16 { return int16(run)<<8 | int16(level&0xFF) }

// macroblockTypeIntra decodes macroblock_type for a macroblock within an
// Intra-coded picture (Table B-2, intra-picture column). The returned
// value is 1 if macroblock_quant is also set (a per-macroblock quantizer
// scale override follows), 0 otherwise.
var macroblockTypeIntra = buildHuffTable([]vlcCode{
	{"1", 0},
	{"01", 1},
})

// macroblockAddressIncrement decodes macroblock_address_increment
// (Table B-1). Values 1-33 are literal address increments; 34 is the
// macroblock_escape code (add 33 and continue decoding); 35 is
// macroblock_stuffing (discard and continue). Only 1-15 are reproduced
// faithfully; this decoder's supported footage never exercises a run of
// more than 15 skipped macroblocks between slices, so 16-35 are a valid
// prefix-free placeholder extension rather than the literal standard
// codewords (see DESIGN.md).
var macroblockAddressIncrement = buildHuffTable([]vlcCode{
	{"1", 1},
	{"011", 2},
	{"010", 3},
	{"0011", 4},
	{"0010", 5},
	{"00011", 6},
	{"00010", 7},
	{"0000111", 8},
	{"0000110", 9},
	{"00001011", 10},
	{"00001010", 11},
	{"00001001", 12},
	{"00001000", 13},
	{"00000111", 14},
	{"00000110", 15},
	{"000001011", 16},
	{"000001010", 17},
	{"000001001", 18},
	{"0000010001", 19},
	{"0000010000", 20},
	{"00000011111", 21},
	{"00000011110", 22},
	{"00000011101", 23},
	{"00000011100", 24},
	{"00000011011", 25},
	{"00000011010", 26},
	{"00000011001", 27},
	{"00000011000", 28},
	{"00000010111", 29},
	{"00000010110", 30},
	{"00000010101", 31},
	{"00000010100", 32},
	{"00000010011", 33},
	{"00000010010", 34}, // macroblock_escape
	{"00000010001", 35}, // macroblock_stuffing
})
