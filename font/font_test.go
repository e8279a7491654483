// Copyright 2025 Tom Nisbet. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font

import "testing"

func TestFont6x8Table(t *testing.T) {
	if got := Font6x8.Stride(); got != 6 {
		t.Fatalf("Stride() = %d, want 6", got)
	}
	if got, want := len(Font6x8.Data), 96*6; got != want {
		t.Fatalf("len(Data) = %d, want %d", got, want)
	}
	for i, b := range Font6x8.Glyph(' ') {
		if b != 0 {
			t.Errorf("space glyph byte %d = %#02x, want 0", i, b)
		}
	}
}

func TestFont8x16Table(t *testing.T) {
	if got := Font8x16.Stride(); got != 16 {
		t.Fatalf("Stride() = %d, want 16", got)
	}
	if got, want := len(Font8x16.Data), 96*16; got != want {
		t.Fatalf("len(Data) = %d, want %d", got, want)
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		f    *Font
		ch   byte
		want int
	}{
		{Font6x8, ' ', 0},
		{Font6x8, '!', 1},
		{Font6x8, '{', '{' - ' '},
		{Font6x8, '|', 0}, // past the 8-pixel font's last glyph
		{Font8x16, '}', '}' - ' '},
		{Font8x16, '~', 0},
		{Font6x8, 0x1F, 0}, // below space
		{Font6x8, 0x7F, 0},
	}
	for _, tt := range tests {
		if got := tt.f.Index(tt.ch); got != tt.want {
			t.Errorf("Index(%q) on %dx font = %d, want %d", tt.ch, tt.f.Width, got, tt.want)
		}
	}
}

func TestGlyphLength(t *testing.T) {
	if got := len(Font6x8.Glyph('A')); got != 6 {
		t.Errorf("len(Font6x8.Glyph('A')) = %d, want 6", got)
	}
	if got := len(Font8x16.Glyph('A')); got != 16 {
		t.Errorf("len(Font8x16.Glyph('A')) = %d, want 16", got)
	}
}

// The 16-pixel glyphs are pixel-doubled copies of the 8-pixel ones: each
// source bit covers two adjacent pixels, the low nibble of the source
// expanded into the top band and the high nibble into the bottom band.
func TestStretchedGlyphs(t *testing.T) {
	// '!' is a single lit column, 0x5F in source column 2. The column
	// lands one to the right in the 8-wide cell.
	g := Font8x16.Glyph('!')
	if g[3] != 0xFF {
		t.Errorf("top band column = %#02x, want 0xFF", g[3])
	}
	if g[8+3] != 0x33 {
		t.Errorf("bottom band column = %#02x, want 0x33", g[8+3])
	}

	// The centering padding stays blank on both sides for every glyph.
	for ch := byte(' '); ch <= Font8x16.Last; ch++ {
		g := Font8x16.Glyph(ch)
		for _, i := range []int{0, 7, 8, 15} {
			if g[i] != 0 {
				t.Errorf("glyph %q byte %d = %#02x, want 0", ch, i, g[i])
			}
		}
	}
}

func TestStretchNibble(t *testing.T) {
	tests := []struct {
		in, want byte
	}{
		{0x0, 0x00},
		{0x1, 0x03},
		{0x8, 0xC0},
		{0xF, 0xFF},
		{0x5, 0x33},
		{0xA, 0xCC},
	}
	for _, tt := range tests {
		if got := stretchNibble(tt.in); got != tt.want {
			t.Errorf("stretchNibble(%#x) = %#02x, want %#02x", tt.in, got, tt.want)
		}
	}
}
