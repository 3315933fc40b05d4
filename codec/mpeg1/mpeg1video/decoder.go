/*
DESCRIPTION
  decoder.go is the entry point of the video elementary stream decoder: it
  owns all per-stream state, dispatches on start codes, and drives the
  sequence/GOP/picture/slice/macroblock parse chain.

  Only the "byte-realignment" recovery strategy is implemented: after each
  picture (decoded or skipped), the bit reader is aligned to a byte
  boundary and scanned forward to the next start code, rather than
  attempting to resynchronise at the bit level from an arbitrary decode
  error. This trades resilience to mid-picture corruption for a much
  simpler state machine, which is an acceptable trade for offline recovery
  of archival footage (see DESIGN.md, Open Question decisions).

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
	"io"

	"github.com/pkg/errors"

	"github.com/ausocean/mpeg1/bits"
	"github.com/ausocean/utils/logging"
)

const pkg = "mpeg1video: "

// Start codes recognised at the top level of the video elementary stream.
const (
	pictureStartCode   = 0x00
	sequenceHeaderCode = 0xB3
	sequenceEndCode    = 0xB7
	gopStartCode       = 0xB8
	extensionStartCode = 0xB5
	userDataStartCode  = 0xB2
)

// Sink receives each decoded Intra frame. Accept must not retain frame
// beyond the call: the Decoder reuses its frame buffer between pictures.
type Sink interface {
	Accept(frame *Frame) error
}

// Stats reports counters accumulated over a Decode call, for --stats
// reporting by cmd/mpeg1dec.
type Stats struct {
	SkippedPictures    int
	ExtensionBlocks    int
	QuantizerOverrides int
}

// Decoder holds the parse state of a single video elementary stream.
type Decoder struct {
	br  *bits.BitReader
	log logging.Logger

	seq SequenceHeader
	gop GroupOfPictures

	mbWidth, mbHeight int
	mbAddr            int
	quantizerScale    int
	dcPredictor       [3]int32

	stats Stats
}

// NewDecoder returns a Decoder reading the video elementary stream from r,
// logging through l.
func NewDecoder(r io.Reader, l logging.Logger) *Decoder {
	return &Decoder{br: bits.NewBitReader(r), log: l}
}

// Stats returns the counters accumulated so far.
func (d *Decoder) Stats() Stats { return d.stats }

// SequenceHeader returns the most recently parsed sequence header. Its
// zero value is returned if Decode has not yet parsed one.
func (d *Decoder) SequenceHeader() SequenceHeader { return d.seq }

// GOPHeader returns the most recently parsed group-of-pictures header. Its
// zero value is returned if Decode has not yet parsed one.
func (d *Decoder) GOPHeader() GroupOfPictures { return d.gop }

// Decode reads the video elementary stream to completion (or the first
// unrecoverable error), calling sink.Accept for every decoded Intra
// picture.
func (d *Decoder) Decode(sink Sink) error {
	var frame *Frame

	for {
		d.br.AlignToByte()
		code, err := d.peekStartCode()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch {
		case code == sequenceHeaderCode:
			if err := d.consumeStartCode(); err != nil {
				return err
			}
			if err := d.readSequenceHeader(); err != nil {
				return errors.Wrap(err, pkg+"sequence header")
			}
			frame = newFrame(d.mbWidth, d.mbHeight, d.seq.Width, d.seq.Height)

		case code == gopStartCode:
			if err := d.consumeStartCode(); err != nil {
				return err
			}
			if err := d.readGOPHeader(); err != nil {
				return errors.Wrap(err, pkg+"GOP header")
			}

		case code == pictureStartCode:
			if frame == nil {
				return formatErrorf("picture start code before sequence header")
			}
			if err := d.consumeStartCode(); err != nil {
				return err
			}
			ph, err := d.decodePicture(frame)
			if err != nil {
				return errors.Wrapf(err, pkg+"picture %d", ph.TemporalReference)
			}
			if ph.Type == Intra {
				if err := sink.Accept(frame); err != nil {
					return errors.Wrap(err, pkg+"sink")
				}
			}

		case code == extensionStartCode || code == userDataStartCode:
			d.stats.ExtensionBlocks++
			if err := d.consumeStartCode(); err != nil {
				return err
			}
			if err := d.scanToNextStartCode(); err != nil {
				return err
			}

		case code == sequenceEndCode:
			return nil

		default:
			return formatErrorf("unexpected start code 0x%02X", code)
		}
	}
}

// peekStartCode assumes the bit reader is byte-aligned and reports the
// fourth byte of the next start code (00 00 01 xx) without consuming it.
func (d *Decoder) peekStartCode() (int, error) {
	v, err := d.br.PeekBits(32)
	if err != nil {
		return 0, err
	}
	if v>>8 != 0x000001 {
		return 0, formatErrorf("expected start code, got 0x%08X", v)
	}
	return int(v & 0xFF), nil
}

// consumeStartCode advances past the 4-byte start code last returned by
// peekStartCode.
func (d *Decoder) consumeStartCode() error {
	_, err := d.br.ReadBits(32)
	return err
}

// scanToNextStartCode byte-aligns the reader, then discards bytes until
// the next start code prefix (00 00 01) is found, leaving it unconsumed.
func (d *Decoder) scanToNextStartCode() error {
	d.br.AlignToByte()
	for {
		v, err := d.br.PeekBits(24)
		if err != nil {
			return err
		}
		if v == 0x000001 {
			return nil
		}
		if _, err := d.br.ReadBits(8); err != nil {
			return err
		}
	}
}
