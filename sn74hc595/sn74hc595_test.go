// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sn74hc595

import (
	"fmt"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// op is one recorded level change on a named line.
type op struct {
	pin   string
	level gpio.Level
}

// recordPin is a gpio.PinOut that appends every write to a shared log, so a
// test can verify the exact line sequence of a transaction.
type recordPin struct {
	name string
	ops  *[]op
}

func (p *recordPin) String() string {
	return p.name
}

func (p *recordPin) Halt() error {
	return nil
}

func (p *recordPin) Name() string {
	return p.name
}

func (p *recordPin) Number() int {
	return 0
}

func (p *recordPin) Function() string {
	return "Out"
}

func (p *recordPin) Out(l gpio.Level) error {
	*p.ops = append(*p.ops, op{p.name, l})
	return nil
}

func (p *recordPin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return fmt.Errorf("%s: PWM is not supported", p.name)
}

var _ gpio.PinOut = &recordPin{}

func newRecordedDev(t *testing.T) (*Dev, *[]op) {
	t.Helper()
	ops := &[]op{}
	dev, err := New(
		&recordPin{name: "data", ops: ops},
		&recordPin{name: "clock", ops: ops},
		&recordPin{name: "latch", ops: ops})
	if err != nil {
		t.Fatal(err)
	}
	*ops = (*ops)[:0]
	return dev, ops
}

// shiftedOps returns the expected line sequence for one byte clocked out
// MSB first.
func shiftedOps(b byte) []op {
	var expected []op
	for i := 7; i >= 0; i-- {
		expected = append(expected,
			op{"data", gpio.Level(b&(1<<uint(i)) != 0)},
			op{"clock", gpio.High},
			op{"clock", gpio.Low})
	}
	return expected
}

func verifyOps(found, expected []op) error {
	if len(found) != len(expected) {
		return fmt.Errorf("invalid length. found: %d expected: %d", len(found), len(expected))
	}
	for ix := range expected {
		if found[ix] != expected[ix] {
			return fmt.Errorf("op %d = {%s %v}, expected {%s %v}",
				ix, found[ix].pin, found[ix].level, expected[ix].pin, expected[ix].level)
		}
	}
	return nil
}

func TestNewInitializesLinesLow(t *testing.T) {
	ops := &[]op{}
	_, err := New(
		&recordPin{name: "data", ops: ops},
		&recordPin{name: "clock", ops: ops},
		&recordPin{name: "latch", ops: ops})
	if err != nil {
		t.Fatal(err)
	}
	expected := []op{
		{"data", gpio.Low},
		{"clock", gpio.Low},
		{"latch", gpio.Low},
	}
	if err := verifyOps(*ops, expected); err != nil {
		t.Error(err)
	}
}

func TestNewRequiresAllLines(t *testing.T) {
	ops := &[]op{}
	if _, err := New(&recordPin{name: "data", ops: ops}, nil, &recordPin{name: "latch", ops: ops}); err == nil {
		t.Error("expected an error for a missing line")
	}
}

func TestShiftOutMSBFirst(t *testing.T) {
	dev, ops := newRecordedDev(t)
	if err := dev.ShiftOut(0xa5); err != nil {
		t.Fatal(err)
	}
	if err := verifyOps(*ops, shiftedOps(0xa5)); err != nil {
		t.Error(err)
	}
}

func TestWriteFrame(t *testing.T) {
	dev, ops := newRecordedDev(t)
	if err := dev.WriteFrame(0x92, 0x04); err != nil {
		t.Fatal(err)
	}
	expected := []op{{"latch", gpio.Low}}
	expected = append(expected, shiftedOps(0x92)...)
	expected = append(expected, shiftedOps(0x04)...)
	expected = append(expected, op{"latch", gpio.High})
	if err := verifyOps(*ops, expected); err != nil {
		t.Error(err)
	}

	// The latch must toggle exactly once and the clock 16 times per frame.
	var latches, clocks int
	for _, o := range *ops {
		switch {
		case o.pin == "latch":
			latches++
		case o.pin == "clock" && o.level == gpio.High:
			clocks++
		}
	}
	if latches != 2 {
		t.Errorf("latch written %d times, want 2", latches)
	}
	if clocks != 16 {
		t.Errorf("clock pulsed %d times, want 16", clocks)
	}
}

func TestHaltClearsChain(t *testing.T) {
	dev, ops := newRecordedDev(t)
	if err := dev.Halt(); err != nil {
		t.Fatal(err)
	}
	expected := []op{{"latch", gpio.Low}}
	expected = append(expected, shiftedOps(0x00)...)
	expected = append(expected, shiftedOps(0x00)...)
	expected = append(expected, op{"latch", gpio.High})
	if err := verifyOps(*ops, expected); err != nil {
		t.Error(err)
	}
}
