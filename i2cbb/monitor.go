// Copyright 2025 Tom Nisbet. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package i2cbb

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Monitor is the receive side of the two-wire link, used by the screen2d
// emulator and the tests. It exposes two pins that decode the waveform
// driven into them back into frames, one frame per start..stop pair.
//
// Like Bus, a Monitor must only be used from a single goroutine.
type Monitor struct {
	// OnFrame, when not nil, is invoked with every completed frame. The
	// slice is owned by the callee.
	OnFrame func(frame []byte)

	scl, sda monPin

	started bool
	bits    int
	cur     byte
	frame   []byte
	frames  [][]byte
}

// NewMonitor returns a Monitor with both lines idle high.
func NewMonitor() *Monitor {
	m := &Monitor{}
	m.scl = monPin{m: m, name: "MON_SCL", num: 0, l: gpio.High}
	m.sda = monPin{m: m, name: "MON_SDA", num: 1, l: gpio.High}
	return m
}

// SCL returns the clock line of the monitor.
func (m *Monitor) SCL() gpio.PinOut { return &m.scl }

// SDA returns the data line of the monitor.
func (m *Monitor) SDA() gpio.PinOut { return &m.sda }

// Frames returns the frames completed so far. Only whole bytes are
// recorded; a transmission stopped mid-byte drops the partial byte.
func (m *Monitor) Frames() [][]byte {
	return append([][]byte(nil), m.frames...)
}

// Reset discards the recorded frames.
func (m *Monitor) Reset() {
	m.frames = nil
}

func (m *Monitor) edge(p *monPin, l gpio.Level) {
	switch {
	case p == &m.sda && m.scl.l == gpio.High:
		if l == gpio.Low {
			// Start condition: SDA falls while SCL is high.
			m.started = true
			m.bits = 0
			m.cur = 0
			m.frame = nil
		} else if m.started {
			// Stop condition: SDA rises while SCL is high.
			m.frames = append(m.frames, m.frame)
			if m.OnFrame != nil {
				m.OnFrame(m.frame)
			}
			m.started = false
		}
	case p == &m.scl && l == gpio.High && m.started:
		if m.bits == 8 {
			// Acknowledge slot. The transmitter never listens for the
			// answer, so neither does the monitor.
			m.bits = 0
			m.cur = 0
			return
		}
		m.cur <<= 1
		if m.sda.l == gpio.High {
			m.cur |= 1
		}
		if m.bits++; m.bits == 8 {
			m.frame = append(m.frame, m.cur)
		}
	}
}

// monPin is one of the two monitored lines. It only reacts to level
// changes, mirroring a physical wire.
type monPin struct {
	m    *Monitor
	name string
	num  int
	l    gpio.Level
}

func (p *monPin) String() string { return p.name }
func (p *monPin) Name() string   { return p.name }
func (p *monPin) Number() int    { return p.num }
func (p *monPin) Halt() error    { return nil }

func (p *monPin) Function() string {
	return "Out/" + p.l.String()
}

func (p *monPin) Out(l gpio.Level) error {
	if l != p.l {
		p.l = l
		p.m.edge(p, l)
	}
	return nil
}

func (p *monPin) PWM(gpio.Duty, physic.Frequency) error {
	return errors.New("i2cbb: PWM is not supported")
}

var _ gpio.PinOut = &monPin{}
