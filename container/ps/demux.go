/*
NAME
  demux.go

DESCRIPTION
  demux.go implements the ISO/IEC 11172-1 program-stream demultiplexer: it
  strips pack headers, the optional system header, and packet headers,
  forwarding only the payload belonging to video elementary stream 0 (0xE0).

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package ps

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/ausocean/utils/logging"
)

// pkg is prefixed to log messages originating from this package, matching
// the convention used throughout ausocean/av.
const pkg = "ps: "

// Demuxer consumes an ISO/IEC 11172 program stream and extracts the
// concatenated payload of video elementary stream 0.
type Demuxer struct {
	r    *bufio.Reader
	log  logging.Logger
	stat map[byte]int64
}

// NewDemuxer returns a new Demuxer reading from r, logging through l.
func NewDemuxer(r io.Reader, l logging.Logger) *Demuxer {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, 4096)
	}
	return &Demuxer{r: br, log: l, stat: make(map[byte]int64)}
}

// StreamStats returns the number of payload bytes seen per stream ID,
// including streams that were discarded because they were not the video
// stream. This is a diagnostic aid for --stats reporting; it is not part of
// the core decode path.
func (d *Demuxer) StreamStats() map[byte]int64 {
	cp := make(map[byte]int64, len(d.stat))
	for k, v := range d.stat {
		cp[k] = v
	}
	return cp
}

// Demux reads the program stream to completion (or the first decode error),
// writing the payload of video stream 0xE0 to w as it is encountered.
//
// The state machine implemented is, per pack:
//
//	ExpectPack -> ExpectSystemOrPacket -> ExpectPacket* -> ExpectPack
//
// A missing pack start code where one is expected at the top of the loop is
// a fatal format error; any other condition that leaves the stream
// unreadable is surfaced as an IoError (io.ErrUnexpectedEOF or the
// underlying read error).
func (d *Demuxer) Demux(w io.Writer) error {
	for {
		err := d.expectPack()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if err := d.maybeSystemHeader(); err != nil {
			return err
		}

		done, err := d.expectPackets(w)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// expectPack consumes a pack start code (00 00 01 BA) followed by the
// 8-byte pack header. Returns io.EOF if the stream ends cleanly before any
// bytes of a new pack are read; any other missing/malformed start code is a
// fatal format error.
func (d *Demuxer) expectPack() error {
	b, err := d.read(4)
	if err == io.EOF {
		return io.EOF
	}
	if err != nil {
		return errors.Wrap(err, pkg+"could not read pack start code")
	}
	if !hasStartCodePrefix(b) || b[3] != packStartCode {
		return errors.Errorf(pkg+"expected pack start code, got % x", b)
	}
	d.log.Debug(pkg + "found pack start code")

	if _, err := d.discard(packHeaderLen); err != nil {
		return errors.Wrap(err, pkg+"could not read pack header")
	}
	return nil
}

// maybeSystemHeader consumes a system header, if present, immediately
// following a pack header.
func (d *Demuxer) maybeSystemHeader() error {
	b, err := d.peek(4)
	if err != nil {
		return errors.Wrap(err, pkg+"could not peek for system header")
	}
	if !hasStartCodePrefix(b) || b[3] != systemHeaderStartCode {
		return nil
	}

	if _, err := d.discard(4); err != nil {
		return errors.Wrap(err, pkg+"could not discard system header start code")
	}

	lenBytes, err := d.read(2)
	if err != nil {
		return errors.Wrap(err, pkg+"could not read system header length")
	}
	n := int(binary.BigEndian.Uint16(lenBytes))

	if _, err := d.discard(n); err != nil {
		return errors.Wrap(err, pkg+"could not discard system header body")
	}
	return nil
}

// expectPackets repeatedly reads 4-byte start codes. A packet start code is
// parsed in full; any other start code rewinds the 4 bytes and signals the
// caller to re-enter expectPack. done is true once the stream is
// exhausted.
func (d *Demuxer) expectPackets(w io.Writer) (done bool, err error) {
	for {
		b, err := d.read(4)
		if err == io.EOF {
			return true, nil
		}
		if err != nil {
			return false, errors.Wrap(err, pkg+"could not read start code")
		}
		if !hasStartCodePrefix(b) {
			return false, errors.Errorf(pkg+"expected start code prefix, got % x", b)
		}

		if !isPacketStartCode(b[3]) {
			if err := d.unread(b); err != nil {
				return false, errors.Wrap(err, pkg+"could not rewind to pack boundary")
			}
			return false, nil
		}

		if err := d.packet(b[3], w); err != nil {
			return false, err
		}
	}
}

// packet parses the body of a single packet (16-bit length prefix, header,
// payload) and, if streamID is the video stream, appends the payload to w.
func (d *Demuxer) packet(streamID byte, w io.Writer) error {
	lenBytes, err := d.read(2)
	if err != nil {
		return errors.Wrap(err, pkg+"could not read packet length")
	}
	n := int(binary.BigEndian.Uint16(lenBytes))

	body, err := d.read(n)
	if err != nil {
		return errors.Wrap(err, pkg+"could not read packet body")
	}

	payload, err := packetPayload(body)
	if err != nil {
		return errors.Wrap(err, pkg+"could not parse packet header")
	}

	d.stat[streamID] += int64(len(payload))

	if streamID != VideoStreamID {
		d.log.Debug(pkg+"discarding packet for non-video stream", "streamID", streamID, "bytes", len(payload))
		return nil
	}

	if _, err := w.Write(payload); err != nil {
		return errors.Wrap(err, pkg+"could not write video payload")
	}
	return nil
}

// packetPayload strips the variable-length packet header from body (per
// spec.md §4.2 "Packet parse") and returns the remaining payload.
func packetPayload(body []byte) ([]byte, error) {
	i := 0

	// Skip leading stuffing bytes.
	for i < len(body) && body[i] == 0xFF {
		i++
	}
	if i >= len(body) {
		return nil, errors.New("packet body exhausted during stuffing skip")
	}

	// Buffer scale/size, if present.
	if body[i]&0x40 != 0 {
		i += 2
	}
	if i >= len(body) {
		return nil, errors.New("packet body exhausted after buffer scale/size")
	}

	switch {
	case body[i]&0x30 == 0x30: // PTS and DTS.
		i += 10
	case body[i]&0x20 != 0: // PTS only.
		i += 5
	default:
		i += 1
	}

	if i > len(body) {
		return nil, errors.New("packet header longer than packet body")
	}
	return body[i:], nil
}

// hasStartCodePrefix reports whether the first three bytes of b are the
// ISO 11172-1/13818-1 start code prefix 00 00 01.
func hasStartCodePrefix(b []byte) bool {
	return len(b) >= len(startCodePrefix) && string(b[:len(startCodePrefix)]) == startCodePrefix
}

// read reads exactly n bytes, returning io.EOF only when zero bytes could be
// read before the end of the stream; a short, non-empty read is reported as
// io.ErrUnexpectedEOF.
func (d *Demuxer) read(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	b := make([]byte, n)
	read, err := io.ReadFull(d.r, b)
	if err != nil {
		if err == io.ErrUnexpectedEOF || (err == io.EOF && read > 0) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return b, nil
}

// peek returns the next n bytes without advancing the reader.
func (d *Demuxer) peek(n int) ([]byte, error) {
	b, err := d.r.Peek(n)
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return b, nil
}

// discard skips exactly n bytes.
func (d *Demuxer) discard(n int) (int, error) {
	if n == 0 {
		return 0, nil
	}
	got, err := d.r.Discard(n)
	if err != nil {
		if err == io.EOF {
			return got, io.ErrUnexpectedEOF
		}
		return got, err
	}
	return got, nil
}

// unread places b back at the front of the stream. Since bufio.Reader has
// no generic rewind, this relies on the discipline that unread is only ever
// called with bytes that were just read via read, i.e. immediately after a
// 4-byte start-code lookahead that turned out not to be a packet.
func (d *Demuxer) unread(b []byte) error {
	nr := &prependReader{prefix: b, r: d.r}
	d.r = bufio.NewReaderSize(nr, 4096)
	return nil
}

// prependReader serves prefix before falling through to r.
type prependReader struct {
	prefix []byte
	r      io.Reader
}

func (p *prependReader) Read(b []byte) (int, error) {
	if len(p.prefix) > 0 {
		n := copy(b, p.prefix)
		p.prefix = p.prefix[n:]
		return n, nil
	}
	return p.r.Read(b)
}
