package mpeg1video

import (
	"bytes"
	"testing"

	"github.com/ausocean/mpeg1/bits"
)

func TestReadGOPHeader(t *testing.T) {
	var buf bytes.Buffer
	w := newBitWriter(&buf)
	w.write(0, 25) // time_code
	w.write(1, 1)  // closed_gop
	w.write(0, 1)  // broken_link
	w.flush()

	d := &Decoder{br: bits.NewBitReader(&buf), log: (*discardLogger)(nil)}
	if err := d.readGOPHeader(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.gop.ClosedGOP {
		t.Error("got ClosedGOP=false, want true")
	}
	if d.gop.BrokenLink {
		t.Error("got BrokenLink=true, want false")
	}
	if got := d.GOPHeader(); got != d.gop {
		t.Errorf("GOPHeader() = %+v, want %+v", got, d.gop)
	}
}
