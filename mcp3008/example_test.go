// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcp3008_test

import (
	"fmt"
	"log"

	"github.com/Ahmed-yasser-cpp/MyCSE211Project/mcp3008"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

func Example() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	p, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()
	dev, err := mcp3008.New(p, &mcp3008.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	v, err := dev.ReadVoltage(0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("potentiometer: %s\n", v)
}
