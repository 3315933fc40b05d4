/*
DESCRIPTION
  errors.go defines the sentinel error returned by the video elementary
  stream decoder, following the ausocean/av convention of wrapping a
  stdlib-declared sentinel with context via fmt.Errorf's %w verb rather than
  defining bespoke error types per failure site.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package mpeg1video

import (
	"errors"
	"fmt"
)

// ErrFormat indicates the bitstream violates the video syntax: an illegal
// VLC codeword, an out-of-range header field, or a start code where none is
// expected.
var ErrFormat = errors.New("mpeg1video: malformed bitstream")

// formatErrorf wraps ErrFormat with additional context.
func formatErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrFormat}, args...)...)
}
