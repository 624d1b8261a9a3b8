// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package app

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// button is one of the shield's push buttons: active low, internal pull-up,
// sampled by the main loop. No edge detection, the loop's post-action delay
// is the whole debounce story.
type button struct {
	pin gpio.PinIO
}

func newButton(name string) (*button, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("app: no such pin %q", name)
	}
	if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("app: setting up button %s: %v", name, err)
	}
	return &button{pin: pin}, nil
}

// pressed reports whether the button is currently held down. A nil button
// (simulation mode) never is.
func (b *button) pressed() bool {
	if b == nil {
		return false
	}
	return !bool(b.pin.Read())
}
