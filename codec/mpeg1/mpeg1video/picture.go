/*
DESCRIPTION
  picture.go parses the picture_header syntax element (start code 00) and
  drives per-picture decode: slices are decoded to pixels for Intra
  pictures; Predicted, Bidirectional and DCIntra pictures are scanned over
  without being reconstructed, since this decoder's purpose is recovering
  reference frames from archival footage rather than full motion
  compensation (see SPEC_FULL.md).

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

import "io"

// pictureHeader holds the fields of picture_header this decoder acts on.
type pictureHeader struct {
	TemporalReference int
	Type              FrameType
}

func (d *Decoder) readPictureHeader() (pictureHeader, error) {
	tr, err := d.br.ReadBits(10)
	if err != nil {
		return pictureHeader{}, err
	}
	ct, err := d.br.ReadBits(3)
	if err != nil {
		return pictureHeader{}, err
	}
	if _, err := d.br.ReadBits(16); err != nil { // vbv_delay
		return pictureHeader{}, err
	}

	ft := FrameType(ct)
	switch ft {
	case Predicted, Bidirectional:
		if err := d.skipMotionVectorFields(ft); err != nil {
			return pictureHeader{}, err
		}
	case Intra, DCIntra:
		// No further fixed fields.
	default:
		return pictureHeader{}, formatErrorf("invalid picture_coding_type %d", ct)
	}

	return pictureHeader{TemporalReference: int(tr), Type: ft}, nil
}

// skipMotionVectorFields consumes full_pel_forward_vector and
// forward_f_code, and for bidirectional pictures, their backward
// counterparts. The values are discarded: motion compensation is out of
// scope (see Non-goals).
func (d *Decoder) skipMotionVectorFields(ft FrameType) error {
	if _, err := d.br.ReadBits(1 + 3); err != nil { // full_pel_forward_vector, forward_f_code
		return err
	}
	if ft == Bidirectional {
		if _, err := d.br.ReadBits(1 + 3); err != nil { // full_pel_backward_vector, backward_f_code
			return err
		}
	}
	return nil
}

// decodePicture parses a picture_header and, for Intra pictures, decodes
// every slice that follows into frame. For any other picture type the
// picture's slices are scanned over without decode and frame is left
// holding whatever was last reconstructed (the decoder reports such
// pictures are skipped via Stats).
func (d *Decoder) decodePicture(frame *Frame) (pictureHeader, error) {
	ph, err := d.readPictureHeader()
	if err != nil {
		return ph, err
	}

	if ph.Type != Intra {
		d.stats.SkippedPictures++
		d.log.Debug(pkg+"skipping non-intra picture", "type", ph.Type)
		for {
			if err := d.scanToNextStartCode(); err != nil {
				return ph, err
			}
			code, err := d.peekStartCode()
			if err != nil {
				return ph, err
			}
			switch code {
			case pictureStartCode, gopStartCode, sequenceHeaderCode, sequenceEndCode:
				return ph, nil
			}
			if err := d.consumeStartCode(); err != nil {
				return ph, err
			}
		}
	}

	d.dcPredictor = [3]int32{128, 128, 128}
	for {
		if err := d.scanToNextStartCode(); err != nil {
			return ph, err
		}
		code, err := d.peekStartCode()
		if err == io.EOF {
			return ph, nil
		}
		if err != nil {
			return ph, err
		}
		if code == extensionStartCode || code == userDataStartCode {
			d.stats.ExtensionBlocks++
			if err := d.consumeStartCode(); err != nil {
				return ph, err
			}
			continue
		}
		if code < sliceStartCodeMin || code > sliceStartCodeMax {
			return ph, nil
		}
		if err := d.consumeStartCode(); err != nil {
			return ph, err
		}
		if err := d.decodeSlice(code, frame); err != nil {
			return ph, err
		}
	}
}
