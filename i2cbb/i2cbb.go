// Copyright 2025 Tom Nisbet. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package i2cbb transmits bytes to a single fixed receiver by bit-banging
// an I²C-style waveform on two GPIO lines.
//
// The transmitter takes liberties with the I²C standard: it never listens
// for an ACK/NACK from the receiver and does not support reads, clock
// stretching or multi-master arbitration. The SSD1306 display controller
// is happy with this; other devices may not be.
//
// No explicit delays are inserted between edges. Timing relies on the
// inherent cost of the pin writes, which on common hosts is well within
// the tolerances of the SSD1306.
package i2cbb

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Bus is a write-only bit-banged two-wire bus on a pair of GPIO lines.
//
// Both lines idle high. Bus assumes exclusive ownership of the pins for
// its lifetime and must only be used from a single goroutine.
//
// Pin write errors are discarded. The link carries no acknowledgement
// channel, so a failed edge is as unobservable as a missing receiver and
// every call succeeds from the caller's perspective.
type Bus struct {
	scl gpio.PinOut
	sda gpio.PinOut
}

// New returns a Bus driving the given clock and data lines. The lines are
// not touched until Init or Start is called.
func New(scl, sda gpio.PinOut) *Bus {
	return &Bus{scl: scl, sda: sda}
}

// Init configures both lines as outputs and drives them to the idle high
// state.
func (b *Bus) Init() {
	_ = b.scl.Out(gpio.High)
	_ = b.sda.Out(gpio.High)
}

// Start signals the beginning of a transmission by pulling SDA low while
// SCL is high, then pulling SCL low. While a transmission is in progress
// SCL stays low between bits and only rises to clock data in; SDA is free
// to change while SCL is low.
func (b *Bus) Start() {
	_ = b.scl.Out(gpio.High) // no effect on an idle bus, both lines already high
	_ = b.sda.Out(gpio.High)
	_ = b.sda.Out(gpio.Low)
	_ = b.scl.Out(gpio.Low)
}

// Stop signals the end of a transmission by raising SDA while SCL is
// high, returning both lines to the idle state.
func (b *Bus) Stop() {
	_ = b.scl.Out(gpio.Low)
	_ = b.sda.Out(gpio.Low)
	_ = b.scl.Out(gpio.High)
	_ = b.sda.Out(gpio.High)
}

// WriteByte clocks out one byte, MSB first. The receiver samples SDA on
// the rising edge of SCL. After the eight data bits one extra clock pulse
// covers the acknowledge slot with SDA released high; the response is
// never sampled.
func (b *Bus) WriteByte(v byte) {
	for mask := byte(0x80); mask != 0; mask >>= 1 {
		if v&mask != 0 {
			_ = b.sda.Out(gpio.High)
		} else {
			_ = b.sda.Out(gpio.Low)
		}
		_ = b.scl.Out(gpio.High)
		_ = b.scl.Out(gpio.Low)
	}
	_ = b.sda.Out(gpio.High)
	_ = b.scl.Out(gpio.High)
	_ = b.scl.Out(gpio.Low)
}

func (b *Bus) String() string {
	return fmt.Sprintf("i2cbb.Bus{%s, %s}", b.scl, b.sda)
}
