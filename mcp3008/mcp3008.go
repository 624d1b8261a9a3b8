// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mcp3008 reads the Microchip MCP3008 8-channel 10-bit ADC over
// SPI. The shield's potentiometer hangs off channel 0.
//
// # Datasheet
//
// https://ww1.microchip.com/downloads/en/DeviceDoc/21295d.pdf
package mcp3008

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

const devName = "MCP3008"

// fullScale is the top of the 10 bit conversion range.
const fullScale = 1023

// Opts represents the options available for the converter.
type Opts struct {
	// Ref is the voltage on the VREF pin; readings scale linearly with it.
	Ref physic.ElectricPotential
}

// DefaultOpts matches the shield's 3.3V rail.
var DefaultOpts = Opts{Ref: 3300 * physic.MilliVolt}

// Dev represents an MCP3008 on an SPI port.
type Dev struct {
	conn spi.Conn
	ref  physic.ElectricPotential
}

// New connects to an MCP3008 on the provided port. The datasheet allows up
// to 3.6MHz at 5V; 1MHz is safe at 3.3V.
func New(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Ref <= 0 {
		return nil, errors.New("mcp3008: reference voltage must be positive")
	}
	c, err := p.Connect(physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("mcp3008: %v", err)
	}
	return &Dev{conn: c, ref: opts.Ref}, nil
}

// Read returns the raw 10 bit sample for a single-ended channel in [0,7].
func (d *Dev) Read(channel int) (int, error) {
	if channel < 0 || channel > 7 {
		return 0, fmt.Errorf("mcp3008: invalid channel %d", channel)
	}
	// Start bit, then single-ended mode plus the channel in the high
	// nibble, then a pad byte while the conversion clocks back.
	w := []byte{0x01, byte(8+channel) << 4, 0x00}
	r := make([]byte, 3)
	if err := d.conn.Tx(w, r); err != nil {
		return 0, fmt.Errorf("mcp3008: %v", err)
	}
	return (int(r[1])<<8 | int(r[2])) & fullScale, nil
}

// ReadVoltage returns the voltage seen on a channel, scaled against the
// reference. A mid-scale sample on the default 3.3V reference comes back
// close to 1.65V.
func (d *Dev) ReadVoltage(channel int) (physic.ElectricPotential, error) {
	raw, err := d.Read(channel)
	if err != nil {
		return 0, err
	}
	return d.ref * physic.ElectricPotential(raw) / fullScale, nil
}

// Halt disconnects the device.
func (d *Dev) Halt() error {
	d.conn = nil
	return nil
}

func (d *Dev) String() string {
	return devName
}

var _ conn.Resource = &Dev{}
