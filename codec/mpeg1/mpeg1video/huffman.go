/*
DESCRIPTION
  huffman.go provides a generic flat (branch, value) Huffman tree walk shared
  by the four variable-length code tables used by the video syntax:
  DCT_SIZE_LUMINANCE, DCT_SIZE_CHROMINANCE, DCT_COEFF and
  MACROBLOCK_ADDRESS_INCREMENT.

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

import (
	"github.com/ausocean/mpeg1/bits"
)

// huffNode is one (branch, value) entry of a flattened Huffman decision
// tree. A positive branch is the table index of the bit-0 child; the bit-1
// child is always branch+1. A zero branch marks a leaf whose value is the
// decoded symbol. A negative branch marks a codeword that the table's
// construction never assigned meaning to; reaching one is a format error.
type huffNode struct {
	branch int16
	value  int16
}

// huffTable is a flat, indexable Huffman decision tree, built once at
// package init, either from a literal list of codewords via buildHuffTable
// or from a literal flat array via buildFlatHuffTable.
type huffTable []huffNode

// vlcCode pairs a literal MSB-first bitstring with the symbol it decodes to.
// Tables are expressed this way in source (rather than as pre-flattened
// branch/value arrays) so that the bit-exact contents of each code remain
// legible and independently checkable against the standard's codeword
// listing; buildHuffTable compiles them into the flat form the decoder
// actually walks.
type vlcCode struct {
	bits  string
	value int16
}

// buildHuffTable compiles codes into a flat huffTable. Codes must be
// prefix-free; a code that is a strict prefix of, or shares a prefix node
// with a conflicting assignment from, another code will panic, since that
// can only happen from a typo in a literal table and must be caught at
// package init rather than surfacing as a runtime decode error.
func buildHuffTable(codes []vlcCode) huffTable {
	table := make(huffTable, 1, 64)
	table[0] = huffNode{branch: -1}

	for _, c := range codes {
		idx := 0
		for i := 0; i < len(c.bits); i++ {
			if table[idx].branch == 0 {
				panic("mpeg1video: huffman code is not prefix-free: " + c.bits)
			}
			if table[idx].branch < 0 {
				base := int16(len(table))
				table = append(table, huffNode{branch: -1}, huffNode{branch: -1})
				table[idx].branch = base
			}
			bit := 0
			if c.bits[i] == '1' {
				bit = 1
			}
			idx = int(table[idx].branch) + bit
		}
		if table[idx].branch > 0 {
			panic("mpeg1video: huffman code is a prefix of a longer code: " + c.bits)
		}
		table[idx].branch = 0
		table[idx].value = c.value
	}
	return table
}

// flatCode is one (branch, value) node of a Huffman table expressed in a
// reference decoder's own flat-array indexing convention: branch is the
// absolute index, within the literal array itself, of the node reached on a
// 0 bit (the 1-bit child is always branch+1); 0 marks a leaf holding value,
// and -1 marks an unallocated codeword.
type flatCode struct {
	branch int16
	value  int16
}

// buildFlatHuffTable compiles a literal (branch, value) table already
// expressed in flat array form into a huffTable. This differs from
// buildHuffTable (which takes literal bitstrings) in that the table is
// copied in directly rather than walked bit-by-bit: used for tables large
// enough that transcribing them as an indexed array, checkable node-by-node
// against the source listing, is less error-prone than re-deriving literal
// bitstrings for over a hundred codewords. A synthetic root occupies index
// 0, so every non-leaf, non-illegal branch from the source array is shifted
// by one to account for it.
func buildFlatHuffTable(nodes []flatCode) huffTable {
	table := make(huffTable, 1, len(nodes)+1)
	table[0] = huffNode{branch: 1}
	for _, n := range nodes {
		branch := n.branch
		if branch > 0 {
			branch++
		}
		table = append(table, huffNode{branch: branch, value: n.value})
	}
	return table
}

// decode walks the table from its root, consuming one bit from br at each
// internal node, until a leaf is reached. It returns ErrFormat if an
// illegal (negative-branch) node is reached.
func (t huffTable) decode(br *bits.BitReader) (int, error) {
	idx := 0
	for {
		node := t[idx]
		if node.branch == 0 {
			return int(node.value), nil
		}
		if node.branch < 0 {
			return 0, formatErrorf("illegal huffman codeword")
		}
		bit, err := br.ReadBits(1)
		if err != nil {
			return 0, err
		}
		idx = int(node.branch) + int(bit)
	}
}
