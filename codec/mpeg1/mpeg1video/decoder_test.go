package mpeg1video

import (
	"bytes"
	"testing"
)

// collectSink counts the frames handed to it by Decode.
type collectSink struct {
	count int
}

func (s *collectSink) Accept(f *Frame) error {
	s.count++
	return nil
}

// startCode writes a 4-byte start code (00 00 01 xx) to buf.
func startCode(buf *bytes.Buffer, code byte) {
	buf.Write([]byte{0x00, 0x00, 0x01, code})
}

func TestDecodeEndToEndNoSlices(t *testing.T) {
	var buf bytes.Buffer

	startCode(&buf, sequenceHeaderCode)
	w := newBitWriter(&buf)
	w.write(176, 12) // horizontal_size
	w.write(144, 12) // vertical_size
	w.write(1, 4)    // aspect_ratio
	w.write(5, 4)    // frame_rate
	w.write(0x3FFFF, 18)
	w.write(1, 1)
	w.write(0, 10)
	w.write(0, 1) // constrained_parameters_flag
	w.write(0, 1) // load_intra_quantizer_matrix
	w.write(0, 1) // load_non_intra_quantizer_matrix
	w.flush()

	startCode(&buf, pictureStartCode)
	w = newBitWriter(&buf)
	w.write(0, 10)            // temporal_reference
	w.write(uint64(Intra), 3) // picture_coding_type
	w.write(0, 16)            // vbv_delay
	w.flush()                 // pads to a 32-bit boundary, leaving the stream byte-aligned

	startCode(&buf, sequenceEndCode)

	d := NewDecoder(&buf, (*discardLogger)(nil))

	sink := &collectSink{}
	if err := d.Decode(sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink.count != 1 {
		t.Fatalf("got %d frames, want 1", sink.count)
	}
	if d.SequenceHeader().Width != 176 || d.SequenceHeader().Height != 144 {
		t.Errorf("got %dx%d, want 176x144", d.SequenceHeader().Width, d.SequenceHeader().Height)
	}
}

func TestDecodeSkipsNonIntraPicture(t *testing.T) {
	var buf bytes.Buffer

	startCode(&buf, sequenceHeaderCode)
	w := newBitWriter(&buf)
	w.write(16, 12)
	w.write(16, 12)
	w.write(1, 4)
	w.write(5, 4)
	w.write(0x3FFFF, 18)
	w.write(1, 1)
	w.write(0, 10)
	w.write(0, 1)
	w.write(0, 1)
	w.write(0, 1)
	w.flush()

	startCode(&buf, pictureStartCode)
	w = newBitWriter(&buf)
	w.write(0, 10)
	w.write(uint64(Predicted), 3)
	w.write(0, 16)
	w.write(0, 1) // full_pel_forward_vector
	w.write(0, 3) // forward_f_code
	w.flush()

	// A padding byte between the picture header and the next start code,
	// which the skip-forward scan must discard.
	buf.WriteByte(0xFF)

	startCode(&buf, sequenceEndCode)

	d := NewDecoder(&buf, (*discardLogger)(nil))

	sink := &collectSink{}
	if err := d.Decode(sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink.count != 0 {
		t.Errorf("got %d frames, want 0 for a skipped non-intra picture", sink.count)
	}
	if d.Stats().SkippedPictures != 1 {
		t.Errorf("got SkippedPictures=%d, want 1", d.Stats().SkippedPictures)
	}
}
