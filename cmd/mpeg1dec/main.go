/*
DESCRIPTION
  mpeg1dec is an offline tool for recovering still frames from archival
  ISO/IEC 11172 (MPEG-1) program-stream footage: it demultiplexes the video
  elementary stream, decodes every Intra picture, and writes each as an
  image file.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package mpeg1dec is a command-line tool for recovering reference frames
// from MPEG-1 program-stream footage.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/mpeg1/codec/mpeg1/mpeg1video"
	"github.com/ausocean/mpeg1/codec/mpeg1/rgb"
	"github.com/ausocean/mpeg1/container/ps"
	"github.com/ausocean/mpeg1/sink"
	"github.com/ausocean/utils/logging"
)

// Logging configuration.
const (
	logPath      = "mpeg1dec.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logSuppress  = true
)

const pkg = "mpeg1dec: "

func main() {
	filePtr := flag.String("file", "", "path to the MPEG-1 program stream to recover frames from (required)")
	outPtr := flag.String("out", ".", "directory to write recovered frames to")
	formatPtr := flag.String("format", "ppm", "output image format: ppm or bmp")
	statsPtr := flag.Bool("stats", false, "print per-stream byte counts and decode stats on completion")
	levelPtr := flag.Int("loglevel", int(logging.Info), "logging level (0=Debug .. 4=Fatal)")
	flag.Parse()

	fileLog := &lumberjack.Logger{Filename: logPath, MaxSize: logMaxSize, MaxBackups: logMaxBackup, MaxAge: logMaxAge}
	l := logging.New(int8(*levelPtr), io.MultiWriter(fileLog, os.Stderr), logSuppress)

	if *filePtr == "" {
		l.Fatal(pkg + "-file is required")
	}

	sinkImpl, err := newImageSink(*formatPtr, *outPtr, l)
	if err != nil {
		l.Fatal(pkg+"could not create output sink", "error", err)
	}

	if err := run(*filePtr, sinkImpl, *statsPtr, l); err != nil {
		l.Fatal(pkg+"decode failed", "error", err)
	}
}

// run demultiplexes filePath and decodes every Intra picture, dispatching
// converted pixels to sinkImpl.
func run(filePath string, sinkImpl rgb.Sink, reportStats bool, l logging.Logger) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("could not open input: %w", err)
	}
	defer f.Close()

	demux := ps.NewDemuxer(f, l)

	r, w := io.Pipe()
	demuxErr := make(chan error, 1)
	go func() {
		defer w.Close()
		demuxErr <- demux.Demux(w)
	}()

	dec := mpeg1video.NewDecoder(r, l)
	decErr := dec.Decode(&frameSink{sink: sinkImpl})
	if derr := <-demuxErr; derr != nil {
		return fmt.Errorf("demux: %w", derr)
	}
	if decErr != nil {
		return fmt.Errorf("decode: %w", decErr)
	}

	if reportStats {
		stats := dec.Stats()
		fmt.Printf("skipped pictures:    %d\n", stats.SkippedPictures)
		fmt.Printf("extension blocks:    %d\n", stats.ExtensionBlocks)
		fmt.Printf("quantizer overrides: %d\n", stats.QuantizerOverrides)
		for id, n := range demux.StreamStats() {
			fmt.Printf("stream 0x%02X: %d bytes\n", id, n)
		}
	}
	return nil
}

// frameSink adapts an mpeg1video.Sink call to the rgb conversion + image
// sink pipeline.
type frameSink struct {
	sink rgb.Sink
}

func (s *frameSink) Accept(f *mpeg1video.Frame) error {
	pix := rgb.Convert(f)
	return s.sink.Accept(f.DisplayWidth, f.DisplayHeight, pix)
}

// newImageSink constructs the rgb.Sink matching format, writing files under
// dir.
func newImageSink(format, dir string, l logging.Logger) (rgb.Sink, error) {
	switch format {
	case "ppm":
		return sink.NewPPMSink(sink.FileWriter(dir, "frame-%04d.ppm"), l), nil
	case "bmp":
		return sink.NewBMPSink(sink.FileWriter(dir, "frame-%04d.bmp"), l), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}
