package ps

import (
	"bytes"
	"testing"

	"github.com/ausocean/utils/logging"
)

// testLogger allows the ps package's logging.Logger dependency to be
// satisfied by the testing package.
type testLogger testing.T

func (tl *testLogger) Debug(msg string, args ...interface{})   { tl.Log(logging.Debug, msg, args...) }
func (tl *testLogger) Info(msg string, args ...interface{})    { tl.Log(logging.Info, msg, args...) }
func (tl *testLogger) Warning(msg string, args ...interface{}) { tl.Log(logging.Warning, msg, args...) }
func (tl *testLogger) Error(msg string, args ...interface{})   { tl.Log(logging.Error, msg, args...) }
func (tl *testLogger) Fatal(msg string, args ...interface{})   { tl.Log(logging.Fatal, msg, args...) }
func (tl *testLogger) SetLevel(lvl int8)                       {}
func (tl *testLogger) Log(lvl int8, msg string, args ...interface{}) {
	if len(args) == 0 {
		(*testing.T)(tl).Log(msg)
		return
	}
	(*testing.T)(tl).Logf(msg+" (%v)", args)
}

// pesPacket builds a minimal PES-style packet: a single header byte
// declaring no buffer scale and no PTS/DTS, then payload.
func pesPacket(streamID byte, payload []byte) []byte {
	body := append([]byte{0x0F}, payload...) // 0x0F: no buffer scale, no PTS/DTS.
	var out []byte
	out = append(out, 0x00, 0x00, 0x01, streamID)
	ln := make([]byte, 2)
	ln[0] = byte(len(body) >> 8)
	ln[1] = byte(len(body))
	out = append(out, ln...)
	out = append(out, body...)
	return out
}

func buildStream(video []byte, audio []byte) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x00, 0x01, 0xBA})
	buf.Write(make([]byte, packHeaderLen))
	buf.Write(pesPacket(VideoStreamID, video))
	if audio != nil {
		buf.Write(pesPacket(0xC0, audio))
	}
	return buf.Bytes()
}

func TestDemuxVideoOnly(t *testing.T) {
	video := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	src := buildStream(video, nil)

	d := NewDemuxer(bytes.NewReader(src), (*testLogger)(t))
	var out bytes.Buffer
	if err := d.Demux(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out.Bytes(), video) {
		t.Errorf("got %x, want %x", out.Bytes(), video)
	}
}

func TestDemuxDiscardsNonVideoStreams(t *testing.T) {
	video := []byte{0x01, 0x02, 0x03}
	audio := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	src := buildStream(video, audio)

	d := NewDemuxer(bytes.NewReader(src), (*testLogger)(t))
	var out bytes.Buffer
	if err := d.Demux(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out.Bytes(), video) {
		t.Errorf("got %x, want %x", out.Bytes(), video)
	}

	stats := d.StreamStats()
	if stats[0xC0] != int64(len(audio)) {
		t.Errorf("got audio byte count %d, want %d", stats[0xC0], len(audio))
	}
	if stats[VideoStreamID] != int64(len(video)) {
		t.Errorf("got video byte count %d, want %d", stats[VideoStreamID], len(video))
	}
}

func TestDemuxMissingPackIsFatal(t *testing.T) {
	src := []byte{0x00, 0x00, 0x01, 0xBC, 0, 0}
	d := NewDemuxer(bytes.NewReader(src), (*testLogger)(t))
	if err := d.Demux(&bytes.Buffer{}); err == nil {
		t.Fatal("expected error for missing pack start code")
	}
}

func TestDemuxMultiplePacks(t *testing.T) {
	var src []byte
	src = append(src, buildStream([]byte{0x01}, nil)...)
	src = append(src, buildStream([]byte{0x02}, nil)...)

	d := NewDemuxer(bytes.NewReader(src), (*testLogger)(t))
	var out bytes.Buffer
	if err := d.Demux(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x01, 0x02}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("got %x, want %x", out.Bytes(), want)
	}
}
