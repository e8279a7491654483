// Copyright 2025 Tom Nisbet. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package font bundles the fixed-width glyph tables used by the ssd1306
// driver.
//
// Glyphs are stored column-major, one byte per column per 8-pixel band,
// with bit 0 of each byte being the topmost pixel of its band. This is
// the native layout of the SSD1306 display RAM, so glyph bytes are
// streamed to the controller verbatim.
package font

// Font is a fixed-width bitmap font covering the printable ASCII range,
// starting at space (0x20).
type Font struct {
	// Width is the number of columns per glyph.
	Width int

	// Pages is the number of vertical 8-pixel bands per glyph.
	Pages int

	// Last is the last character with its own glyph. Characters outside
	// [' ', Last] render as the glyph at index 0.
	Last byte

	// Data holds the glyph table, Width*Pages bytes per character. For
	// multi-page fonts the bands of a glyph are stored top first: bytes
	// [0, Width) are the columns of the top band, [Width, 2*Width) the
	// band below it.
	Data []byte
}

// Stride is the number of bytes per character in Data.
func (f *Font) Stride() int { return f.Width * f.Pages }

// Index maps a character to its glyph index. Characters outside the
// printable range map to index 0, the blank glyph in the bundled fonts.
func (f *Font) Index(ch byte) int {
	if ch < ' ' || ch > f.Last {
		return 0
	}
	return int(ch - ' ')
}

// Glyph returns the Stride() bytes for ch.
func (f *Font) Glyph(ch byte) []byte {
	n := f.Stride()
	i := f.Index(ch) * n
	return f.Data[i : i+n]
}
