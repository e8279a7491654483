// Copyright 2025 Tom Nisbet. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package i2cbb

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// recPin logs every level written to it, including writes that do not
// change the level, so tests can check the exact edge sequence.
type recPin struct {
	gpiotest.Pin
	log *[]string
}

func (p *recPin) Out(l gpio.Level) error {
	*p.log = append(*p.log, fmt.Sprintf("%s=%s", p.N, l))
	return p.Pin.Out(l)
}

func recordedBus() (*Bus, *[]string) {
	log := &[]string{}
	bus := New(
		&recPin{Pin: gpiotest.Pin{N: "SCL", L: gpio.High}, log: log},
		&recPin{Pin: gpiotest.Pin{N: "SDA", L: gpio.High}, log: log},
	)
	return bus, log
}

func TestInitIdlesHigh(t *testing.T) {
	scl := &gpiotest.Pin{N: "SCL"}
	sda := &gpiotest.Pin{N: "SDA"}
	bus := New(scl, sda)
	bus.Init()
	if scl.L != gpio.High || sda.L != gpio.High {
		t.Errorf("lines not idle high after Init: SCL=%s SDA=%s", scl.L, sda.L)
	}
}

func TestStartStopWaveform(t *testing.T) {
	bus, log := recordedBus()
	bus.Start()
	bus.Stop()
	want := []string{
		// Start: SDA falls while SCL is high, then SCL falls.
		"SCL=High", "SDA=High", "SDA=Low", "SCL=Low",
		// Stop: SDA rises while SCL is high, back to idle.
		"SCL=Low", "SDA=Low", "SCL=High", "SDA=High",
	}
	if diff := cmp.Diff(want, *log); diff != "" {
		t.Errorf("waveform mismatch (-want +got):\n%s", diff)
	}
}

func TestStopLeavesIdle(t *testing.T) {
	scl := &gpiotest.Pin{N: "SCL"}
	sda := &gpiotest.Pin{N: "SDA"}
	bus := New(scl, sda)
	bus.Init()
	bus.Start()
	bus.WriteByte(0x00)
	bus.Stop()
	if scl.L != gpio.High || sda.L != gpio.High {
		t.Errorf("lines not idle high after Stop: SCL=%s SDA=%s", scl.L, sda.L)
	}
}

func TestWriteByteWaveform(t *testing.T) {
	bus, log := recordedBus()
	bus.Start()
	*log = nil
	bus.WriteByte(0xC3)

	// MSB first: one SDA write and one clock pulse per bit, then the
	// acknowledge slot clocked with SDA released high.
	var want []string
	for _, bit := range "11000011" {
		if bit == '1' {
			want = append(want, "SDA=High")
		} else {
			want = append(want, "SDA=Low")
		}
		want = append(want, "SCL=High", "SCL=Low")
	}
	want = append(want, "SDA=High", "SCL=High", "SCL=Low")

	if diff := cmp.Diff(want, *log); diff != "" {
		t.Errorf("waveform mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteByteClockCount(t *testing.T) {
	for _, v := range []byte{0x00, 0x01, 0x55, 0xAA, 0xFF} {
		bus, log := recordedBus()
		bus.Start()
		*log = nil
		bus.WriteByte(v)
		rising := 0
		for _, e := range *log {
			if e == "SCL=High" {
				rising++
			}
		}
		if rising != 9 {
			t.Errorf("WriteByte(%#02x): %d rising clock edges, want 9 (8 data + ack slot)", v, rising)
		}
	}
}
