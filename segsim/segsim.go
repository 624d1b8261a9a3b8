// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segsim emulates the shield's 4-digit 7-segment display on the
// terminal (stdout) using ANSI color codes.
//
// Useful to run the clock on a workstation while the shield is not wired
// up. It honors the same frame contract as the real register chain: a
// frame updates the digits named by the select byte and a frame selecting
// no digit blanks the display, which is what the eye sees once the
// multiplexing stops.
package segsim

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// segment bits in a frame byte, active low.
const (
	segA = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
	segDP
)

const blank = 0xff

var litColor = color.NRGBA{R: 230, G: 40, B: 40, A: 255}

// Opts represents the options available for this display.
type Opts struct {
	// W is where the rendering goes. Defaults to a colorable stdout.
	W io.Writer
	// Palette used to render lit segments. Defaults to ansi256.Default.
	Palette *ansi256.Palette
}

// Dev is a 4-digit 7-segment emulator that draws to the console.
type Dev struct {
	mu      sync.Mutex
	w       io.Writer
	palette ansi256.Palette

	// slots holds the last latched segment byte per digit position.
	slots [4]byte
	buf   bytes.Buffer
	drawn bool
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	d := &Dev{w: w, palette: *p}
	for i := range d.slots {
		d.slots[i] = blank
	}
	return d
}

// WriteFrame latches one frame, exactly like the register chain would, and
// redraws the console.
func (d *Dev) WriteFrame(segments, digitSelect byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if digitSelect == 0 {
		for i := range d.slots {
			d.slots[i] = blank
		}
	} else {
		for slot := range d.slots {
			if digitSelect&(1<<uint(slot)) != 0 {
				d.slots[slot] = segments
			}
		}
	}
	return d.refresh()
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the shell is not corrupted.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

func (d *Dev) String() string {
	return "SegSim"
}

// cell returns a colored block when the segment is lit (active low) and a
// space when it is not.
func (d *Dev) cell(segments, segment byte) string {
	if segments&segment == 0 {
		return d.palette.Block(litColor)
	}
	return " "
}

// refresh redraws the three display rows in place. Each digit takes a 4x3
// cell: top bar, then f/g/b, then e/d/c and the decimal point.
func (d *Dev) refresh() error {
	d.buf.Reset()
	if d.drawn {
		_, _ = d.buf.WriteString("\033[3A\r")
	}
	rows := [3]func(byte) string{
		func(s byte) string { return " " + d.cell(s, segA) + "  " },
		func(s byte) string { return d.cell(s, segF) + d.cell(s, segG) + d.cell(s, segB) + " " },
		func(s byte) string { return d.cell(s, segE) + d.cell(s, segD) + d.cell(s, segC) + d.cell(s, segDP) },
	}
	for _, row := range rows {
		for _, s := range d.slots {
			_, _ = io.WriteString(&d.buf, row(s))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.drawn = true
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ fmt.Stringer = &Dev{}
