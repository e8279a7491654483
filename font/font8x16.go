// Copyright 2025 Tom Nisbet. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font

// Font8x16 is the double-height companion of Font6x8, produced by
// doubling every pixel row of the 6x8 glyphs and centering the six
// columns in an eight column cell. Each glyph spans two bands, the top
// eight bytes then the bottom eight. A full screen fits 4 lines of 16
// characters.
var Font8x16 = stretch(Font6x8)

func stretch(src *Font) *Font {
	n := len(src.Data) / src.Stride()
	f := &Font{
		Width: 8,
		Pages: 2,
		Last:  '}',
		Data:  make([]byte, n*16),
	}
	for g := 0; g < n; g++ {
		for col := 0; col < src.Width; col++ {
			b := src.Data[g*src.Stride()+col]
			f.Data[g*16+col+1] = stretchNibble(b)
			f.Data[g*16+8+col+1] = stretchNibble(b >> 4)
		}
	}
	return f
}

// stretchNibble expands the low four bits of b into a full column, each
// source bit covering two adjacent pixels with bit 0 staying topmost.
func stretchNibble(b byte) byte {
	var out byte
	for i := 0; i < 4; i++ {
		if b&(1<<i) != 0 {
			out |= 3 << (2 * i)
		}
	}
	return out
}
