// Copyright 2025 Tom Nisbet. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d emulates a SSD1306 panel on the terminal (stdout)
// using ANSI color codes.
//
// It sits behind a pair of i2cbb pins, decodes the command and data
// frames a driver transmits, and renders the resulting display RAM as
// colored blocks. This exercises the whole driver stack, bit waveform
// included, without a panel attached.
package screen2d

import (
	"bytes"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/gpio"

	"github.com/TomNisbet/ssd1306lite/i2cbb"
)

const (
	numRows = 8
	numCols = 128
)

// Opts represents the options available for this display.
type Opts struct {
	// Addr is the 7-bit address the emulated panel answers to, 0x3C
	// when zero. Frames for any other address are discarded, like a
	// real panel would.
	Addr uint16

	// AutoRefresh redraws the terminal after every data frame.
	AutoRefresh bool

	// Palette used for rendering, ansi256.Default when nil.
	Palette *ansi256.Palette

	// Writer overrides the colorable stdout. Used in tests.
	Writer io.Writer
}

// Dev emulates the display controller: an 8 row by 128 column RAM
// behind a parser for the command subset a driver uses, rendered to the
// console.
type Dev struct {
	mon     *i2cbb.Monitor
	w       io.Writer
	palette ansi256.Palette
	addr    byte // wire byte: address shifted, write bit clear
	auto    bool

	ram      [numRows][numCols]byte
	row      int
	col      int
	on       bool
	inverted bool
	contrast byte

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	addr := opts.Addr
	if addr == 0 {
		addr = 0x3C
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	d := &Dev{
		mon:     i2cbb.NewMonitor(),
		w:       w,
		palette: *p,
		addr:    byte(addr) << 1,
		auto:    opts.AutoRefresh,
	}
	d.mon.OnFrame = d.frame
	return d
}

func (d *Dev) String() string {
	return "Screen2D"
}

// Pins returns the clock and data lines of the emulated panel, ready to
// be handed to i2cbb.New.
func (d *Dev) Pins() (scl, sda gpio.PinOut) {
	return d.mon.SCL(), d.mon.SDA()
}

// Powered reports whether the panel is on (not sleeping).
func (d *Dev) Powered() bool { return d.on }

// Inverted reports whether hardware inversion is active.
func (d *Dev) Inverted() bool { return d.inverted }

// Contrast returns the current contrast level.
func (d *Dev) Contrast() byte { return d.contrast }

// Page returns a copy of one row of display RAM.
func (d *Dev) Page(row int) []byte {
	if row < 0 || row >= numRows {
		return nil
	}
	return append([]byte(nil), d.ram[row][:]...)
}

// Pixel reports whether the pixel at (x, y) is set in RAM, before
// hardware inversion.
func (d *Dev) Pixel(x, y int) bool {
	if x < 0 || x >= numCols || y < 0 || y >= numRows*8 {
		return false
	}
	return d.ram[y/8][x]&(1<<uint(y&7)) != 0
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the console is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Refresh redraws the emulated panel, one colored block per pixel.
func (d *Dev) Refresh() error {
	// Minimize allocations per call; the buffer is reused.
	d.buf.Reset()
	lit := color.NRGBA{R: d.contrast, G: d.contrast, B: d.contrast, A: 255}
	dark := color.NRGBA{A: 255}
	for y := 0; y < numRows*8; y++ {
		_, _ = d.buf.WriteString("\033[0m")
		for x := 0; x < numCols; x++ {
			c := dark
			if d.on && d.Pixel(x, y) != d.inverted {
				c = lit
			}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

// frame handles one decoded start..stop transmission.
func (d *Dev) frame(f []byte) {
	if len(f) < 2 || f[0] != d.addr {
		return
	}
	switch f[1] {
	case 0x00:
		d.commands(f[2:])
	case 0x40:
		d.data(f[2:])
	}
}

// data writes payload bytes into RAM at the current position. The column
// pointer advances but stops at the end of the row, as the hardware does
// in page addressing mode.
func (d *Dev) data(p []byte) {
	for _, b := range p {
		if d.col < numCols {
			d.ram[d.row][d.col] = b
			d.col++
		}
	}
	if d.auto {
		_ = d.Refresh()
	}
}

// commands interprets a stream of command bytes, consuming the
// documented argument count for each opcode. Opcodes that do not change
// anything observable in the emulation are accepted and skipped so that
// a frame with a full init sequence parses cleanly.
func (d *Dev) commands(p []byte) {
	for i := 0; i < len(p); i++ {
		switch b := p[i]; {
		case b < 0x10: // set column low nibble
			d.col = d.col&0xF0 | int(b)
		case b < 0x20: // set column high nibble
			d.col = int(b&0x0F)<<4 | d.col&0x0F
		case b&0xF8 == 0xB0: // set page
			d.row = int(b & 0x07)
		case b == 0x81: // contrast, one argument
			if i++; i < len(p) {
				d.contrast = p[i]
			}
		case b == 0xA6:
			d.inverted = false
		case b == 0xA7:
			d.inverted = true
		case b == 0xAE:
			d.on = false
		case b == 0xAF:
			d.on = true
		case b == 0x20, b == 0x8D, b == 0xA8, b == 0xD3, b == 0xD5, b == 0xD9, b == 0xDA, b == 0xDB:
			i++ // one ignored argument
		}
	}
}
