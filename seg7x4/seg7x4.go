// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package seg7x4 multiplexes a 4-digit common-anode 7-segment display.
//
// Only one digit is ever physically lit: each pass latches one digit frame
// after another with a short settle delay, and persistence of vision does
// the rest. The frames go to a FrameWriter, typically a cascaded pair of
// 74HC595 shift registers where the first register drives the segments and
// the second selects the digit.
package seg7x4

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
)

// FrameWriter accepts one latched display frame: a segment byte and the
// one-hot digit-select byte naming which of the four digits shows it.
type FrameWriter interface {
	WriteFrame(segments, digitSelect byte) error
}

// Opts represents the options available for the display.
type Opts struct {
	// Settle is how long each digit stays lit before the pass moves on to
	// the next slot. Too short leaves the segments dim, too long makes the
	// full pass visible as flicker; single-digit milliseconds is right.
	// Zero disables the delay, which is only useful with fake writers.
	Settle time.Duration
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{Settle: 2 * time.Millisecond}

// Dev drives one 4-digit display through a FrameWriter.
type Dev struct {
	w      FrameWriter
	settle time.Duration
}

// New returns a display multiplexer writing frames to w.
func New(w FrameWriter, opts *Opts) (*Dev, error) {
	if w == nil {
		return nil, errors.New("seg7x4: a FrameWriter is required")
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Settle < 0 {
		return nil, fmt.Errorf("seg7x4: invalid settle delay %s", opts.Settle)
	}
	return &Dev{w: w, settle: opts.Settle}, nil
}

// DisplayNumber runs one multiplexing pass over value's 4 decimal digits,
// left to right. Values of 10000 and above are truncated, negative values
// are a caller bug. When showDecimal is set, the decimal point of the digit
// at decimalSlot (0 is leftmost) is lit as well.
func (d *Dev) DisplayNumber(value int, showDecimal bool, decimalSlot int) error {
	digits := Decompose(value)
	for slot, digit := range digits {
		segments := Pattern(digit)
		if showDecimal && slot == decimalSlot {
			segments &^= DecimalPoint
		}
		if err := d.w.WriteFrame(segments, PositionMask(slot)); err != nil {
			return fmt.Errorf("seg7x4: %v", err)
		}
		if d.settle > 0 {
			time.Sleep(d.settle)
		}
	}
	return nil
}

// Clear blanks the display: all segments off, no digit selected.
func (d *Dev) Clear() error {
	if err := d.w.WriteFrame(0xff, 0x00); err != nil {
		return fmt.Errorf("seg7x4: %v", err)
	}
	return nil
}

// Halt blanks the display.
func (d *Dev) Halt() error {
	return d.Clear()
}

func (d *Dev) String() string {
	return "seg7x4"
}

// multiWriter duplicates frames to several sinks, e.g. the real register
// chain and an HTTP snapshot.
type multiWriter struct {
	ws []FrameWriter
}

// MultiWriter returns a FrameWriter fanning each frame out to all of ws.
func MultiWriter(ws ...FrameWriter) FrameWriter {
	return &multiWriter{ws: ws}
}

func (m *multiWriter) WriteFrame(segments, digitSelect byte) error {
	for _, w := range m.ws {
		if err := w.WriteFrame(segments, digitSelect); err != nil {
			return err
		}
	}
	return nil
}

var _ conn.Resource = &Dev{}
