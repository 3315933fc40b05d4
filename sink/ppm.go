/*
DESCRIPTION
  ppm.go implements a Sink that writes each frame as a PPM (P3, ASCII)
  image, one file per frame.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package sink provides rgb.Sink implementations that persist decoded
// frames to disk as image files.
package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/ausocean/utils/logging"
)

// WriteCloserFunc opens a new io.WriteCloser for the given frame index,
// abstracting file creation so sinks can be tested without touching disk.
type WriteCloserFunc func(index int) (io.WriteCloser, error)

// FileWriter returns a WriteCloserFunc that creates files named
// fmt.Sprintf(pattern, index) under dir.
func FileWriter(dir, pattern string) WriteCloserFunc {
	return func(index int) (io.WriteCloser, error) {
		return os.Create(filepath.Join(dir, fmt.Sprintf(pattern, index)))
	}
}

// PPMSink writes each accepted frame as its own P3 PPM file.
type PPMSink struct {
	mu    sync.Mutex
	log   logging.Logger
	open  WriteCloserFunc
	count int
}

// NewPPMSink returns a PPMSink that creates one file per frame via open.
func NewPPMSink(open WriteCloserFunc, l logging.Logger) *PPMSink {
	return &PPMSink{open: open, log: l}
}

// Accept writes one PPM image of width x height pixels, rgb holding
// width*height*3 interleaved bytes.
func (s *PPMSink) Accept(width, height int, rgb []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.open(s.count)
	if err != nil {
		return fmt.Errorf("could not create PPM output: %w", err)
	}
	defer w.Close()
	s.count++

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)
	for i := 0; i < len(rgb); i += 3 {
		fmt.Fprintf(bw, "%d %d %d\n", rgb[i], rgb[i+1], rgb[i+2])
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not flush PPM output: %w", err)
	}
	s.log.Debug("wrote PPM frame", "width", width, "height", height)
	return nil
}
