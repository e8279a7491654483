// Copyright 2025 Tom Nisbet. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Command ssd1306lite-demo draws text, fills and a rendered image on a
// SSD1306 panel wired to two GPIO pins, or on the terminal emulator when
// no hardware is around.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/TomNisbet/ssd1306lite/i2cbb"
	"github.com/TomNisbet/ssd1306lite/pixel"
	"github.com/TomNisbet/ssd1306lite/screen2d"
	"github.com/TomNisbet/ssd1306lite/ssd1306"
)

func main() {
	var (
		emulate = flag.Bool("emulate", false, "render to the terminal instead of GPIO")
		sclName = flag.String("scl", "GPIO3", "name of the clock pin")
		sdaName = flag.String("sda", "GPIO2", "name of the data pin")
		addr    = flag.Uint("addr", ssd1306.DefaultAddr, "7-bit display address (0x3c or 0x3d)")
		wait    = flag.Duration("wait", 5*time.Second, "how long to leave the demo on screen")
	)
	flag.Parse()

	var (
		scl, sda gpio.PinOut
		screen   *screen2d.Dev
	)
	if *emulate {
		screen = screen2d.New(&screen2d.Opts{Addr: uint16(*addr)})
		scl, sda = screen.Pins()
	} else {
		if _, err := host.Init(); err != nil {
			log.Fatal(err)
		}
		if scl = gpioreg.ByName(*sclName); scl == nil {
			log.Fatalf("no pin named %q", *sclName)
		}
		if sda = gpioreg.ByName(*sdaName); sda == nil {
			log.Fatalf("no pin named %q", *sdaName)
		}
	}

	opts := ssd1306.DefaultOpts
	opts.Addr = uint16(*addr)
	dev := ssd1306.New(i2cbb.New(scl, sda), &opts)
	dev.Init()
	dev.Clear()

	dev.Text2x(0, 0, "SSD1306lite")
	dev.Text(2, 0, "bit-banged, ack-less")
	dev.FillAreaPattern(3, 0, 1, ssd1306.NumCols, []byte{0x0F, 0x0F, 0x0F, 0x0F, 0xF0, 0xF0, 0xF0, 0xF0})

	badge := renderBadge()
	dev.DrawImage(4, (ssd1306.NumCols-badge.Cols())/2, badge.Rows(), badge.Cols(), badge.Pix)

	if screen != nil {
		if err := screen.Refresh(); err != nil {
			log.Fatal(err)
		}
		if err := screen.Halt(); err != nil {
			log.Fatal(err)
		}
		return
	}
	time.Sleep(*wait)
}

// renderBadge rasterizes a small anti-aliased badge with gg and
// thresholds it into the display byte layout.
func renderBadge() *pixel.Image {
	const w, h = 64, 32
	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	dc.DrawRoundedRectangle(1, 1, w-2, h-2, 8)
	dc.Stroke()

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 18}))
	dc.DrawStringAnchored("Go", w/2, h/2, 0.5, 0.5)

	return pixel.FromImage(dc.Image())
}
