/*
DESCRIPTION
  sequence.go parses the sequence_header syntax element (start code B3):
  picture geometry, aspect ratio, frame rate, and bitrate/buffer
  constraints.

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

// SequenceHeader holds the fields of sequence_header needed to allocate
// frame buffers and report stream geometry to callers.
type SequenceHeader struct {
	Width, Height int
	AspectRatio   uint8
	FrameRate     uint8

	// ConstrainedParameters reports constrained_parameters_flag, the bit
	// following vbv_buffer_size (ahead of the quantizer matrices): true if
	// this stream declares itself within Annex D's constrained parameter
	// bounds. Not otherwise enforced by this decoder.
	ConstrainedParameters bool
}

func (d *Decoder) readSequenceHeader() error {
	width, err := d.br.ReadBits(12)
	if err != nil {
		return err
	}
	height, err := d.br.ReadBits(12)
	if err != nil {
		return err
	}
	aspect, err := d.br.ReadBits(4)
	if err != nil {
		return err
	}
	rate, err := d.br.ReadBits(4)
	if err != nil {
		return err
	}

	// bit_rate (18), marker_bit (1), vbv_buffer_size (10); constrained_parameters_flag (1) follows.
	if _, err := d.br.ReadBits(18 + 1 + 10); err != nil {
		return err
	}
	constrained, err := d.br.ReadBits(1)
	if err != nil {
		return err
	}

	if err := d.skipQuantMatrix(); err != nil { // load_intra_quantizer_matrix
		return err
	}
	if err := d.skipQuantMatrix(); err != nil { // load_non_intra_quantizer_matrix
		return err
	}

	d.seq = SequenceHeader{
		Width:                 int(width),
		Height:                int(height),
		AspectRatio:           uint8(aspect),
		FrameRate:             uint8(rate),
		ConstrainedParameters: constrained == 1,
	}
	d.mbWidth = (d.seq.Width + 15) / 16
	d.mbHeight = (d.seq.Height + 15) / 16
	d.log.Debug(pkg+"parsed sequence header",
		"width", d.seq.Width, "height", d.seq.Height, "mbWidth", d.mbWidth, "mbHeight", d.mbHeight)
	return nil
}

// skipQuantMatrix reads the load flag for a quantizer matrix, and if set,
// discards the 64 8-bit entries that follow. This decoder only supports
// the default intra quantizer matrix (tables.go); a custom intra matrix is
// parsed but ignored, which is sufficient for the archival footage this
// tool targets (see DESIGN.md).
func (d *Decoder) skipQuantMatrix() error {
	load, err := d.br.ReadBits(1)
	if err != nil {
		return err
	}
	if load == 0 {
		return nil
	}
	if load == 1 {
		d.log.Warning(pkg + "custom quantizer matrix present, ignoring in favour of default")
	}
	_, err = d.br.ReadBits(64 * 8)
	return err
}
