/*
DESCRIPTION
  bmp.go implements a Sink that writes each frame as an uncompressed 24-bit
  Windows BMP image, one file per frame, with the file and bitmap headers
  packed by hand (matching the manual binary.BigEndian/LittleEndian header
  packing used elsewhere in this codebase for other container formats).

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sink

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/ausocean/utils/logging"
)

const (
	bmpFileHeaderLen = 14
	bmpInfoHeaderLen = 12 // BITMAPCOREHEADER.
	bmpHeaderLen     = bmpFileHeaderLen + bmpInfoHeaderLen
)

// BMPSink writes each accepted frame as its own uncompressed BMP file.
type BMPSink struct {
	mu    sync.Mutex
	log   logging.Logger
	open  WriteCloserFunc
	count int
}

// NewBMPSink returns a BMPSink that creates one file per frame via open.
func NewBMPSink(open WriteCloserFunc, l logging.Logger) *BMPSink {
	return &BMPSink{open: open, log: l}
}

// Accept writes one BMP image of width x height pixels, rgb holding
// width*height*3 interleaved RGB bytes in top-to-bottom row order (BMP
// rows are bottom-up and are reordered here).
func (s *BMPSink) Accept(width, height int, rgb []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.open(s.count)
	if err != nil {
		return fmt.Errorf("could not create BMP output: %w", err)
	}
	defer w.Close()
	s.count++

	rowSize := (width*3 + 3) &^ 3 // Rows are padded to a 4-byte boundary.
	imageSize := rowSize * height
	fileSize := bmpHeaderLen + imageSize

	var hdr [bmpHeaderLen]byte
	hdr[0], hdr[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(hdr[2:], uint32(fileSize))
	binary.LittleEndian.PutUint32(hdr[10:], uint32(bmpHeaderLen))

	binary.LittleEndian.PutUint32(hdr[14:], bmpInfoHeaderLen)
	binary.LittleEndian.PutUint16(hdr[18:], uint16(width))
	binary.LittleEndian.PutUint16(hdr[20:], uint16(height))
	binary.LittleEndian.PutUint16(hdr[22:], 1)  // planes
	binary.LittleEndian.PutUint16(hdr[24:], 24) // bits per pixel

	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("could not write BMP header: %w", err)
	}

	row := make([]byte, rowSize)
	for y := height - 1; y >= 0; y-- {
		off := y * width * 3
		for x := 0; x < width; x++ {
			r, g, b := rgb[off+x*3], rgb[off+x*3+1], rgb[off+x*3+2]
			row[x*3], row[x*3+1], row[x*3+2] = b, g, r // BMP stores BGR.
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("could not write BMP row: %w", err)
		}
	}
	s.log.Debug("wrote BMP frame", "width", width, "height", height)
	return nil
}
