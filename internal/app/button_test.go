// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package app

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestButtonActiveLow(t *testing.T) {
	pin := &gpiotest.Pin{N: "S1", L: gpio.High}
	b := &button{pin: pin}
	if b.pressed() {
		t.Error("released button reads pressed")
	}
	pin.L = gpio.Low
	if !b.pressed() {
		t.Error("held button reads released")
	}
}

func TestNilButtonNeverPressed(t *testing.T) {
	var b *button
	if b.pressed() {
		t.Error("nil button reads pressed")
	}
}
