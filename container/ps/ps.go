/*
NAME
  ps.go

DESCRIPTION
  ps.go provides constants and helpers describing ISO/IEC 11172-1
  program-stream framing: packs, the optional system header, and packets.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ps provides demultiplexing of an ISO/IEC 11172 (MPEG-1) program
// stream, isolating the payload of the video elementary stream (stream ID
// 0xE0) from the surrounding pack/packet framing.
package ps

// Start code prefix shared by all ISO 11172-1/13818-1 start codes.
const startCodePrefix = "\x00\x00\x01"

// Start codes relevant to program-stream framing.
const (
	packStartCode         = 0xBA
	systemHeaderStartCode = 0xBB
)

// VideoStreamID is the stream ID of elementary video stream 0, the only
// stream this package extracts payload for.
const VideoStreamID = 0xE0

// minPacketStartCode is the lowest start-code value (4th byte) that denotes
// a packet, as opposed to a pack or system header.
const minPacketStartCode = 0xBC

// packHeaderLen is the length, in bytes, of the (opaque, timestamp-bearing)
// pack header that follows the pack start code.
const packHeaderLen = 8

// isPacketStartCode reports whether b is the fourth byte of a packet start
// code (00 00 01 xx, xx >= 0xBC).
func isPacketStartCode(b byte) bool {
	return b >= minPacketStartCode
}
