// Copyright 2025 Tom Nisbet. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// SSD1306 command set, page 28 of the datasheet. Opcodes taking an
// argument expect it as the next payload byte of the same command frame;
// the controller counts the arguments itself, so sending the wrong
// number desynchronizes its parser for everything that follows.
const (
	_SETLOWCOLUMN        = 0x00 // 0x00..0x0F set low nibble of column start
	_SETHIGHCOLUMN       = 0x10 // 0x10..0x1F set high nibble of column start
	_MEMORYMODE          = 0x20 // 1 arg: 0=horizontal, 1=vertical, 2=page
	_SETSTARTLINE        = 0x40 // 0x40..0x7F set display start line
	_SETCONTRAST         = 0x81 // 1 arg: contrast 0..255
	_CHARGEPUMP          = 0x8D // 1 arg: 0x10=disable, 0x14=enable
	_SEGREMAP            = 0xA0 // column 0 to SEG0
	_SETSEGMENTREMAP     = 0xA1 // column 127 to SEG0
	_DISPLAYALLON_RESUME = 0xA4 // display follows RAM content
	_DISPLAYALLON        = 0xA5 // all pixels on, ignoring RAM
	_NORMALDISPLAY       = 0xA6 // RAM bit set = pixel lit
	_INVERTDISPLAY       = 0xA7 // RAM bit set = pixel dark
	_SETMULTIPLEX        = 0xA8 // 1 arg: mux ratio 0..63
	_DISPLAYOFF          = 0xAE
	_DISPLAYON           = 0xAF
	_PAGESTARTADDRESS    = 0xB0 // 0xB0..0xB7 set page start in page mode
	_COMSCANINC          = 0xC0 // scan rows 0..N-1
	_COMSCANDEC          = 0xC8 // scan rows N-1..0
	_SETDISPLAYOFFSET    = 0xD3 // 1 arg: vertical offset 0..63
	_SETDISPLAYCLOCKDIV  = 0xD5 // 1 arg: clock divide ratio / osc frequency
	_SETPRECHARGE        = 0xD9 // 1 arg: pre-charge period
	_SETCOMPINS          = 0xDA // 1 arg: COM pins hardware configuration
	_SETVCOMDETECT       = 0xDB // 1 arg: VCOMH deselect level
)

// Every frame starts with the address byte and one control byte whose
// D/C bit (0x40) selects how the controller interprets the payload. All
// other control bits stay zero.
const (
	i2cCmd  = 0x00 // payload is a stream of command bytes
	i2cData = 0x40 // payload is a stream of display RAM bytes
)

// initCmd is transmitted by Init as a single uninterrupted command
// frame. It applies the full power-on configuration, ending with display
// on, and leaves the RAM contents alone. Swap _SETSEGMENTREMAP for
// _SEGREMAP and _COMSCANDEC for _COMSCANINC if the panel is mounted
// upside down.
var initCmd = []byte{
	_DISPLAYOFF,
	_SETMULTIPLEX, 63,
	_SETDISPLAYOFFSET, 0x00,
	_SETSTARTLINE,
	_SETSEGMENTREMAP,
	_COMSCANDEC,
	_MEMORYMODE, 0x02, // page addressing
	_SETCONTRAST, 127,
	_NORMALDISPLAY,
	_DISPLAYALLON_RESUME,
	_SETDISPLAYCLOCKDIV, 0xF0,
	_SETPRECHARGE, 0x22,
	_SETCOMPINS, 0x12,
	_SETVCOMDETECT, 0x20,
	_CHARGEPUMP, 0x14,
	_DISPLAYON,
}
