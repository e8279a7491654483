// Copyright 2025 Tom Nisbet. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package i2cbb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func bridged() (*Bus, *Monitor) {
	m := NewMonitor()
	return New(m.SCL(), m.SDA()), m
}

func TestMonitorDecodesFrames(t *testing.T) {
	bus, mon := bridged()
	bus.Init()

	bus.Start()
	for _, b := range []byte{0x78, 0x40, 0xA5, 0x00, 0xFF} {
		bus.WriteByte(b)
	}
	bus.Stop()

	bus.Start()
	bus.WriteByte(0x78)
	bus.Stop()

	want := [][]byte{
		{0x78, 0x40, 0xA5, 0x00, 0xFF},
		{0x78},
	}
	if diff := cmp.Diff(want, mon.Frames()); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
}

func TestMonitorRoundTripsAllValues(t *testing.T) {
	bus, mon := bridged()
	bus.Init()
	bus.Start()
	var want []byte
	for v := 0; v < 256; v++ {
		bus.WriteByte(byte(v))
		want = append(want, byte(v))
	}
	bus.Stop()

	frames := mon.Frames()
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	if diff := cmp.Diff(want, frames[0]); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestMonitorEmptyFrame(t *testing.T) {
	bus, mon := bridged()
	bus.Init()
	bus.Start()
	bus.Stop()
	frames := mon.Frames()
	if len(frames) != 1 || len(frames[0]) != 0 {
		t.Errorf("got %v, want one empty frame", frames)
	}
}

func TestMonitorOnFrame(t *testing.T) {
	bus, mon := bridged()
	var got [][]byte
	mon.OnFrame = func(f []byte) {
		got = append(got, f)
	}
	bus.Init()
	bus.Start()
	bus.WriteByte(0x12)
	bus.Stop()
	bus.Start()
	bus.WriteByte(0x34)
	bus.WriteByte(0x56)
	bus.Stop()

	want := [][]byte{{0x12}, {0x34, 0x56}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("callback frames mismatch (-want +got):\n%s", diff)
	}
}

func TestMonitorReset(t *testing.T) {
	bus, mon := bridged()
	bus.Init()
	bus.Start()
	bus.WriteByte(0xEE)
	bus.Stop()
	mon.Reset()
	if got := mon.Frames(); len(got) != 0 {
		t.Errorf("frames after Reset: %v, want none", got)
	}
}
