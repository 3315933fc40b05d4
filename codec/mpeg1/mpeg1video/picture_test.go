package mpeg1video

import (
	"bytes"
	"testing"

	"github.com/ausocean/mpeg1/bits"
)

func TestReadPictureHeaderIntra(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	w.write(7, 10)              // temporal_reference
	w.write(uint64(Intra), 3)   // picture_coding_type
	w.write(0, 16)              // vbv_delay
	w.flush()

	d := &Decoder{br: bits.NewBitReader(&buf), log: (*discardLogger)(nil)}
	ph, err := d.readPictureHeader()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ph.TemporalReference != 7 {
		t.Errorf("got TemporalReference=%d, want 7", ph.TemporalReference)
	}
	if ph.Type != Intra {
		t.Errorf("got Type=%v, want Intra", ph.Type)
	}
}

func TestReadPictureHeaderPredictedSkipsMotionVectors(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	w.write(3, 10)                 // temporal_reference
	w.write(uint64(Predicted), 3)  // picture_coding_type
	w.write(0, 16)                 // vbv_delay
	w.write(0, 1)                  // full_pel_forward_vector
	w.write(5, 3)                  // forward_f_code
	w.flush()

	d := &Decoder{br: bits.NewBitReader(&buf), log: (*discardLogger)(nil)}
	ph, err := d.readPictureHeader()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ph.Type != Predicted {
		t.Errorf("got Type=%v, want Predicted", ph.Type)
	}
}

func TestReadPictureHeaderInvalidCodingType(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	w.write(0, 10)
	w.write(0, 3) // picture_coding_type 0 is reserved, not a valid FrameType.
	w.write(0, 16)
	w.flush()

	d := &Decoder{br: bits.NewBitReader(&buf), log: (*discardLogger)(nil)}
	if _, err := d.readPictureHeader(); err == nil {
		t.Fatal("expected error for reserved picture_coding_type, got nil")
	}
}
