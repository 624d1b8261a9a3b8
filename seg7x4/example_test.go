// Copyright 2026 The Shield Clock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package seg7x4_test

import (
	"log"

	"github.com/Ahmed-yasser-cpp/MyCSE211Project/seg7x4"
	"github.com/Ahmed-yasser-cpp/MyCSE211Project/sn74hc595"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

func Example() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	sr, err := sn74hc595.New(
		gpioreg.ByName("GPIO8"),
		gpioreg.ByName("GPIO7"),
		gpioreg.ByName("GPIO4"))
	if err != nil {
		log.Fatal(err)
	}
	dev, err := seg7x4.New(sr, &seg7x4.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	// Show 12.34 until something else is displayed. Each call is a single
	// multiplexing pass, so keep calling it.
	for {
		if err := dev.DisplayNumber(1234, true, 1); err != nil {
			log.Fatal(err)
		}
	}
}
