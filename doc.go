// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package shieldclock is a container for the multi-function shield drivers
// and the clock appliance built on top of them.
//
// The board is a 4-digit common-anode 7-segment display behind a cascaded
// pair of 74HC595 shift registers, three push-buttons and a potentiometer.
// Each piece has its own driver package; cmd/shieldclock ties them together.
package shieldclock
