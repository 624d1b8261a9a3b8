// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segsink publishes the shield's display over HTTP as a PNG image.
//
// It honors the same frame contract as the real shift register chain, so it
// can be fanned in next to the hardware with seg7x4.MultiWriter and
// inspected from a browser while the appliance runs. One GET returns one
// snapshot of what the multiplexed display currently shows.
package segsink

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/fogleman/gg"
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

// Rendering geometry, all in pixels.
const (
	margin  = 20
	cellW   = 40
	cellH   = 80
	pitch   = 70
	imageW  = 2*margin + 3*pitch + cellW + 20
	imageH  = 2*margin + cellH
	imgLine = 7
)

// segmentLines maps each of the 7 bar segments to its line endpoints
// relative to the digit cell origin.
var segmentLines = [7][4]float64{
	{4, 0, cellW - 4, 0},                  // a
	{cellW, 4, cellW, cellH/2 - 4},        // b
	{cellW, cellH/2 + 4, cellW, cellH - 4}, // c
	{4, cellH, cellW - 4, cellH},          // d
	{0, cellH/2 + 4, 0, cellH - 4},        // e
	{0, 4, 0, cellH/2 - 4},                // f
	{4, cellH / 2, cellW - 4, cellH / 2},  // g
}

// Sink keeps the last latched frame per digit and renders it on demand.
type Sink struct {
	mu    sync.Mutex
	slots [4]byte
}

// New returns an empty (all dark) Sink.
func New() *Sink {
	s := &Sink{}
	for i := range s.slots {
		s.slots[i] = blank
	}
	return s
}

// WriteFrame latches one frame, exactly like the register chain would. A
// frame selecting no digit blanks the display.
func (s *Sink) WriteFrame(segments, digitSelect byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if digitSelect == 0 {
		for i := range s.slots {
			s.slots[i] = blank
		}
		return nil
	}
	for slot := range s.slots {
		if digitSelect&(1<<uint(slot)) != 0 {
			s.slots[slot] = segments
		}
	}
	return nil
}

// snapshot returns the slots copied under the lock.
func (s *Sink) snapshot() [4]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots
}

// render draws the 4 digits; lit segments red, dark ones barely visible,
// the way the physical display photographs.
func render(slots [4]byte) *gg.Context {
	dc := gg.NewContext(imageW, imageH)
	dc.SetRGB(0.05, 0.05, 0.05)
	dc.Clear()
	dc.SetLineWidth(imgLine)
	dc.SetLineCap(gg.LineCapRound)
	for i, segments := range slots {
		x0 := float64(margin + i*pitch)
		y0 := float64(margin)
		for bit, l := range segmentLines {
			if segments&(1<<uint(bit)) == 0 {
				dc.SetRGB(0.95, 0.15, 0.1)
			} else {
				dc.SetRGB(0.16, 0.08, 0.08)
			}
			dc.DrawLine(x0+l[0], y0+l[1], x0+l[2], y0+l[3])
			dc.Stroke()
		}
		if segments&segDP == 0 {
			dc.SetRGB(0.95, 0.15, 0.1)
		} else {
			dc.SetRGB(0.16, 0.08, 0.08)
		}
		dc.DrawCircle(x0+cellW+10, y0+cellH, 4)
		dc.Fill()
	}
	return dc
}

// ServeHTTP answers GET requests with a PNG snapshot of the display.
func (s *Sink) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "", http.StatusMethodNotAllowed)
		return
	}
	dc := render(s.snapshot())
	w.Header().Set("Content-Type", "image/png")
	if err := dc.EncodePNG(w); err != nil {
		// Headers are gone already; nothing sane to send to the client.
		log.Printf("segsink: encoding png failed: %v", err)
	}
}

func (s *Sink) String() string {
	return fmt.Sprintf("SegSink%v", s.snapshot())
}

var _ http.Handler = &Sink{}
