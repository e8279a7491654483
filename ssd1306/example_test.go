// Copyright 2025 Tom Nisbet. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306_test

import (
	"log"

	"periph.io/x/host/v3"

	"github.com/TomNisbet/ssd1306lite/i2cbb"
	"github.com/TomNisbet/ssd1306lite/ssd1306"

	"periph.io/x/conn/v3/gpio/gpioreg"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	scl := gpioreg.ByName("GPIO3")
	sda := gpioreg.ByName("GPIO2")
	if scl == nil || sda == nil {
		log.Fatal("failed to find the bus pins")
	}

	dev := ssd1306.New(i2cbb.New(scl, sda), &ssd1306.DefaultOpts)
	dev.Init()
	dev.Clear()
	dev.Text2x(0, 0, "Hello")
	dev.Text(3, 0, "from a bare two-wire")
	dev.Text(4, 0, "GPIO link")
}
