package mpeg1video

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/mpeg1/bits"
	"github.com/ausocean/utils/logging"
)

func TestReadSequenceHeader(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	w.write(352, 12)  // horizontal_size
	w.write(240, 12)  // vertical_size
	w.write(1, 4)      // aspect_ratio
	w.write(5, 4)      // frame_rate
	w.write(0x3FFFF, 18) // bit_rate
	w.write(1, 1)      // marker_bit
	w.write(0, 10)     // vbv_buffer_size
	w.write(0, 1)      // constrained_parameters_flag
	w.write(0, 1)      // load_intra_quantizer_matrix
	w.write(0, 1)      // load_non_intra_quantizer_matrix
	w.flush()

	d := &Decoder{br: bits.NewBitReader(&buf), log: (*discardLogger)(nil)}
	if err := d.readSequenceHeader(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := SequenceHeader{
		Width:                 352,
		Height:                240,
		AspectRatio:           1,
		FrameRate:             5,
		ConstrainedParameters: false,
	}
	if diff := cmp.Diff(want, d.seq); diff != "" {
		t.Errorf("sequence header mismatch (-want +got):\n%s", diff)
	}
	if d.mbWidth != 22 || d.mbHeight != 15 {
		t.Errorf("got mbWidth=%d mbHeight=%d, want 22x15", d.mbWidth, d.mbHeight)
	}
}

// bitWriter is a minimal MSB-first bit writer used only by tests to build
// synthetic bitstreams without depending on any production encode path.
type bitWriter struct {
	buf  *bytes.Buffer
	cur  byte
	nbit int
}

func newBitWriter(buf *bytes.Buffer) *bitWriter { return &bitWriter{buf: buf} }

func (w *bitWriter) write(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		bit := byte((v >> uint(i)) & 1)
		w.cur = w.cur<<1 | bit
		w.nbit++
		if w.nbit == 8 {
			w.buf.WriteByte(w.cur)
			w.cur, w.nbit = 0, 0
		}
	}
}

func (w *bitWriter) flush() {
	if w.nbit > 0 {
		w.cur <<= uint(8 - w.nbit)
		w.buf.WriteByte(w.cur)
		w.cur, w.nbit = 0, 0
	}
}

// discardLogger satisfies logging.Logger while discarding everything; used
// in tests that do not assert on logging behaviour.
type discardLogger testing.T

func (l *discardLogger) Log(lvl int8, msg string, args ...interface{}) {}
func (l *discardLogger) SetLevel(lvl int8)                             {}
func (l *discardLogger) Debug(msg string, args ...interface{})        {}
func (l *discardLogger) Info(msg string, args ...interface{})         {}
func (l *discardLogger) Warning(msg string, args ...interface{})      {}
func (l *discardLogger) Error(msg string, args ...interface{})        {}
func (l *discardLogger) Fatal(msg string, args ...interface{})        {}

var _ logging.Logger = (*discardLogger)(nil)
