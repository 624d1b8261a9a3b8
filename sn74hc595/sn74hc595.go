// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package sn74hc595 bit-bangs a cascaded pair of 74HC595 shift registers
// over three GPIO lines: serial data, shift clock and storage latch.
//
// # Datasheet
//
// https://www.ti.com/lit/ds/symlink/sn74hc595.pdf
package sn74hc595

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

const devName = "SN74HC595"

// Dev represents a 74HC595 chain driven through discrete GPIO lines.
type Dev struct {
	mu    sync.Mutex
	data  gpio.PinOut
	clock gpio.PinOut
	latch gpio.PinOut
}

// New returns a driver bit-banging the chain on the three given lines.
// All three lines are driven low, leaving the latch deasserted.
func New(data, clock, latch gpio.PinOut) (*Dev, error) {
	if data == nil || clock == nil || latch == nil {
		return nil, errors.New("sn74hc595: data, clock and latch lines are all required")
	}
	d := &Dev{data: data, clock: clock, latch: latch}
	for _, p := range []gpio.PinOut{data, clock, latch} {
		if err := p.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("sn74hc595: %v", err)
		}
	}
	return d, nil
}

// ShiftOut clocks one byte into the chain, most significant bit first. The
// storage register keeps the previous value until the next latch edge, so
// nothing shows on the parallel outputs yet.
func (d *Dev) ShiftOut(b byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shiftOut(b)
}

func (d *Dev) shiftOut(b byte) error {
	for i := 7; i >= 0; i-- {
		if err := d.data.Out(gpio.Level(b&(1<<uint(i)) != 0)); err != nil {
			return err
		}
		// The register samples the data line on the rising clock edge.
		if err := d.clock.Out(gpio.High); err != nil {
			return err
		}
		if err := d.clock.Out(gpio.Low); err != nil {
			return err
		}
	}
	return nil
}

// WriteFrame latches one display frame: the segment byte followed by the
// digit-select byte. The segment byte is shifted first so it ends up in the
// far register of the cascade; the order is fixed, swapping it would swap
// which register drives the segments. The parallel outputs only change on
// the final latch edge, so the frame appears atomically.
func (d *Dev) WriteFrame(segments, digitSelect byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.latch.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.shiftOut(segments); err != nil {
		return err
	}
	if err := d.shiftOut(digitSelect); err != nil {
		return err
	}
	return d.latch.Out(gpio.High)
}

// Halt clears both registers and latches the zero value, deselecting every
// digit.
func (d *Dev) Halt() error {
	return d.WriteFrame(0x00, 0x00)
}

func (d *Dev) String() string {
	return devName
}

var _ conn.Resource = &Dev{}
