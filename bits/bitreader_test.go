package bits

import (
	"bytes"
	"io"
	"testing"
)

func TestReadBits(t *testing.T) {
	src := []byte{0x8f, 0xe3} // 1000 1111, 1110 0011
	br := NewBitReader(bytes.NewReader(src))

	tests := []struct {
		n    int
		want uint64
	}{
		{4, 0x8},
		{2, 0x3},
		{4, 0xf},
		{6, 0x23},
	}

	for i, test := range tests {
		got, err := br.ReadBits(test.n)
		if err != nil {
			t.Fatalf("unexpected error on read %d: %v", i, err)
		}
		if got != test.want {
			t.Errorf("read %d: got 0x%x, want 0x%x", i, got, test.want)
		}
	}
}

func TestPeekBits(t *testing.T) {
	src := []byte{0x8f, 0xe3}
	br := NewBitReader(bytes.NewReader(src))

	tests := []struct {
		n    int
		want uint64
	}{
		{4, 0x8},
		{8, 0x8f},
		{16, 0x8fe3},
	}

	for i, test := range tests {
		got, err := br.PeekBits(test.n)
		if err != nil {
			t.Fatalf("unexpected error on peek %d: %v", i, err)
		}
		if got != test.want {
			t.Errorf("peek %d: got 0x%x, want 0x%x", i, got, test.want)
		}
	}

	// Peeking must not have advanced the reader.
	got, err := br.ReadBits(8)
	if err != nil {
		t.Fatalf("unexpected error on post-peek read: %v", err)
	}
	if got != 0x8f {
		t.Errorf("post-peek read: got 0x%x, want 0x8f", got)
	}
}

func TestRewindBits(t *testing.T) {
	src := []byte{0xff, 0x00}
	br := NewBitReader(bytes.NewReader(src))

	got, err := br.ReadBits(8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0xff {
		t.Fatalf("got 0x%x, want 0xff", got)
	}

	peeked, err := br.PeekBits(8)
	if err != nil {
		t.Fatalf("unexpected error on peek: %v", err)
	}
	if peeked != 0x00 {
		t.Fatalf("got 0x%x, want 0x00", peeked)
	}

	if err := br.RewindBits(4); err != nil {
		t.Fatalf("unexpected rewind error: %v", err)
	}

	got, err = br.ReadBits(4)
	if err != nil {
		t.Fatalf("unexpected error after rewind: %v", err)
	}
	if got != 0xf {
		t.Errorf("got 0x%x, want 0xf", got)
	}
}

func TestByteAlignedAndAlignToByte(t *testing.T) {
	src := []byte{0xff, 0x00}
	br := NewBitReader(bytes.NewReader(src))

	if !br.ByteAligned() {
		t.Fatalf("expected byte-aligned at start")
	}

	if _, err := br.ReadBits(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if br.ByteAligned() {
		t.Errorf("expected not byte-aligned after reading 3 bits")
	}

	br.AlignToByte()
	if !br.ByteAligned() {
		t.Errorf("expected byte-aligned after AlignToByte")
	}

	got, err := br.ReadBits(8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x00 {
		t.Errorf("got 0x%x, want 0x00", got)
	}
}

func TestReadBitsUnexpectedEOF(t *testing.T) {
	br := NewBitReader(bytes.NewReader(nil))
	_, err := br.ReadBits(1)
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("got %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestPositionInBits(t *testing.T) {
	src := []byte{0xff, 0xff, 0xff}
	br := NewBitReader(bytes.NewReader(src))

	if br.PositionInBits() != 0 {
		t.Fatalf("got %d, want 0", br.PositionInBits())
	}

	if _, err := br.ReadBits(10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if br.PositionInBits() != 10 {
		t.Errorf("got %d, want 10", br.PositionInBits())
	}
}
