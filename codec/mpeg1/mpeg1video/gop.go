/*
DESCRIPTION
  gop.go parses the group_of_pictures header (start code B8): the SMPTE
  timecode and the closed_gop/broken_link flags.

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

// GroupOfPictures holds group_of_pictures_header fields. Neither field
// changes how this decoder processes the pictures that follow; they are
// retained for callers inspecting stream structure via Decoder.GOPHeader.
type GroupOfPictures struct {
	ClosedGOP  bool
	BrokenLink bool
}

func (d *Decoder) readGOPHeader() error {
	// time_code: drop_frame_flag(1) + hours(5) + minutes(6) + marker_bit(1) + seconds(6) + pictures(6) = 25 bits.
	if _, err := d.br.ReadBits(25); err != nil {
		return err
	}
	closed, err := d.br.ReadBits(1)
	if err != nil {
		return err
	}
	broken, err := d.br.ReadBits(1)
	if err != nil {
		return err
	}
	d.gop = GroupOfPictures{ClosedGOP: closed == 1, BrokenLink: broken == 1}
	d.br.AlignToByte() // Byte-realignment strategy; see decoder.go.
	d.log.Debug(pkg+"parsed GOP header", "closed", d.gop.ClosedGOP, "brokenLink", d.gop.BrokenLink)
	return nil
}
