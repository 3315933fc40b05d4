package mpeg1video

import (
	"bytes"
	"testing"

	"github.com/ausocean/mpeg1/bits"
)

func TestDequantizeACOddification(t *testing.T) {
	// level=1, quantizerScale=2, position 0 (quant matrix entry 8):
	// v = (2*1+1) * 2 * 8 / 16 = 3. Already odd; unchanged.
	if got := dequantizeAC(1, 0, 2); got != 3 {
		t.Errorf("got %d, want 3", got)
	}

	// level=2, quantizerScale=2, position 0: v = (2*2+1)*2*8/16 = 5. Odd.
	if got := dequantizeAC(2, 0, 2); got != 5 {
		t.Errorf("got %d, want 5", got)
	}
}

func TestDequantizeACSaturates(t *testing.T) {
	if got := dequantizeAC(2047, 7, 31); got != 2047 {
		t.Errorf("got %d, want 2047", got)
	}
	if got := dequantizeAC(-2047, 7, 31); got < -2048 || got > -2000 {
		t.Errorf("got %d, want saturated near -2048", got)
	}
}

// bitsFromString turns a string of '0'/'1' characters into a byte-padded
// BitReader for tests, without depending on any production bit-writing
// code path.
func bitsFromString(s string) *bits.BitReader {
	var buf bytes.Buffer
	var cur byte
	var n int
	for i := 0; i < len(s); i++ {
		cur = cur<<1 | (s[i] - '0')
		n++
		if n == 8 {
			buf.WriteByte(cur)
			cur, n = 0, 0
		}
	}
	if n > 0 {
		cur <<= uint(8 - n)
		buf.WriteByte(cur)
	}
	return bits.NewBitReader(&buf)
}

func TestDecodeSignedValue(t *testing.T) {
	d := &Decoder{br: bitsFromString("100")}
	got, err := d.decodeSignedValue(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4 {
		t.Errorf("got %d, want 4", got)
	}

	d = &Decoder{br: bitsFromString("011")}
	got, err = d.decodeSignedValue(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -4 {
		t.Errorf("got %d, want -4", got)
	}
}

func TestDecodeEscapeLevel(t *testing.T) {
	cases := []struct {
		name string
		bits string
		want int
	}{
		{"small positive", "00000101", 5},                  // 1..127: value as-is.
		{"small negative", "10000001", 129 - 256},           // >128: value - 256.
		{"large positive marker", "00000000" + "11000000", 192}, // 0: next byte is the unsigned value.
		{"large negative marker", "10000000" + "00000001", 1 - 256},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := &Decoder{br: bitsFromString(c.bits)}
			got, err := d.decodeEscapeLevel()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Errorf("got %d, want %d", got, c.want)
			}
		})
	}
}
