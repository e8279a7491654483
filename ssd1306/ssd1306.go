// Copyright 2025 Tom Nisbet. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"fmt"

	"github.com/TomNisbet/ssd1306lite/font"
	"github.com/TomNisbet/ssd1306lite/i2cbb"
)

// Display geometry. The panel is addressed as 8 rows ("pages") of 128
// columns; each column byte covers 8 vertically stacked pixels with bit
// 0 at the top of its row.
const (
	NumRows = 8
	NumCols = 128
)

// The two 7-bit peripheral addresses a SSD1306 can be strapped to.
// Modules marked Addr=0x78 use DefaultAddr; the marking already includes
// the write bit.
const (
	DefaultAddr = 0x3C
	AltAddr     = 0x3D
)

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Addr:   DefaultAddr,
	Font:   font.Font6x8,
	Font2x: font.Font8x16,
}

// Opts defines the options for the device.
type Opts struct {
	// Addr is the 7-bit bus address, DefaultAddr or AltAddr.
	Addr uint16

	// Font is the single-height glyph table used by Text.
	Font *font.Font

	// Font2x is the double-height glyph table used by Text2x.
	Font2x *font.Font
}

// Dev is an open handle to the display controller.
//
// Dev stores no cursor: the write position lives in the controller and
// is re-issued before every logically distinct write, so operations can
// be freely interleaved. Dev is not safe for concurrent use.
type Dev struct {
	bus    *i2cbb.Bus
	addr   byte // 7-bit address shifted left, write bit clear
	font   *font.Font
	font2x *font.Font

	// invertData complements data bytes before transmission. It is only
	// changed by InvertData, never reset implicitly.
	invertData bool
}

// New returns a Dev that communicates through the given bus. Nothing is
// transmitted until Init is called.
func New(bus *i2cbb.Bus, opts *Opts) *Dev {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	if o.Addr == 0 {
		o.Addr = DefaultAddr
	}
	if o.Font == nil {
		o.Font = font.Font6x8
	}
	if o.Font2x == nil {
		o.Font2x = font.Font8x16
	}
	return &Dev{
		bus:    bus,
		addr:   byte(o.Addr) << 1,
		font:   o.Font,
		font2x: o.Font2x,
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%s, 0x%02X}", d.bus, d.addr>>1)
}

// Init configures the bus lines as outputs, idles them high, and sends
// the power-on command table as one command frame. Calling it again
// re-applies the same configuration; display RAM is not cleared.
func (d *Dev) Init() {
	d.bus.Init()
	d.beginCommand()
	for _, b := range initCmd {
		d.bus.WriteByte(b)
	}
	d.end()
}

// SetPosition moves the controller's RAM pointer to the given row and
// column. It is a silent no-op when either is out of range.
//
// The controller advances the column pointer as data bytes are written
// but never crosses into the next row, so a position must be re-issued
// for every row of every drawing operation. Note that row counts in
// 8-pixel steps while column counts single pixels: a 6x8 character at
// the fifth character cell of row 2 sits at (2, 5*6), not (2, 5).
func (d *Dev) SetPosition(row, column int) {
	if row < 0 || row >= NumRows || column < 0 || column >= NumCols {
		return
	}
	d.beginCommand()
	d.bus.WriteByte(_PAGESTARTADDRESS | byte(row))
	d.bus.WriteByte(_SETHIGHCOLUMN | byte(column>>4))
	d.bus.WriteByte(_SETLOWCOLUMN | byte(column&0x0F))
	d.end()
}

// InvertData controls whether data bytes written from now on are
// complemented before transmission. It issues no command and leaves RAM
// already written untouched. This is distinct from InvertScreen, which
// changes how the hardware shows existing RAM.
func (d *Dev) InvertData(invert bool) {
	d.invertData = invert
}

// Clear blanks the entire display RAM.
func (d *Dev) Clear() {
	d.FillScreen(0x00)
}

// Text draws a string on one 8-pixel row with the single-height font,
// advancing one glyph width per character. Characters that would extend
// past the right edge are clipped.
func (d *Dev) Text(row, column int, text string) {
	if row < 0 || row >= NumRows || column < 0 {
		return
	}
	f := d.font
	d.SetPosition(row, column)
	d.beginData()
	for i, col := 0, column; i < len(text) && col <= NumCols-f.Width; i, col = i+1, col+f.Width {
		for _, b := range f.Glyph(text[i])[:f.Width] {
			d.putData(b)
		}
	}
	d.end()
}

// Text2x draws a string twice as tall, with the double-height font. The
// glyphs cover row (upper half) and row+1 (lower half); each half is its
// own position and data pass because page addressing cannot cross rows
// within one write run.
//
// The two sizes mix freely: one 2x line on rows 0..1 and six normal
// lines on rows 2..7, or 2x lines on rows 0, 3 and 6 with blank rows as
// spacing.
func (d *Dev) Text2x(row, column int, text string) {
	if row < 0 || row >= NumRows-1 || column < 0 {
		return
	}
	f := d.font2x
	for half := 0; half < f.Pages; half++ {
		d.SetPosition(row+half, column)
		d.beginData()
		for i, col := 0, column; i < len(text) && col <= NumCols-f.Width; i, col = i+1, col+f.Width {
			g := f.Glyph(text[i])
			for _, b := range g[half*f.Width : (half+1)*f.Width] {
				d.putData(b)
			}
		}
		d.end()
	}
}

// FillScreen writes the same byte to every row and column. Bit 0 of
// fill lands on the top pixel line of each row: 0x00 clears the screen,
// 0xFF lights it, 0x01 draws a horizontal line every 8 pixel lines.
func (d *Dev) FillScreen(fill byte) {
	for row := 0; row < NumRows; row++ {
		d.SetPosition(row, 0)
		d.beginData()
		for col := 0; col < NumCols; col++ {
			d.putData(fill)
		}
		d.end()
	}
}

// FillArea fills a sub-rectangle with a single byte value. rows and
// columns give the size of the area, not its far corner. The area is
// clipped to the screen; an area fully outside it writes nothing.
func (d *Dev) FillArea(startRow, startColumn, rows, columns int, fill byte) {
	if startRow < 0 || startColumn < 0 {
		return
	}
	for row := startRow; row < startRow+rows && row < NumRows; row++ {
		d.SetPosition(row, startColumn)
		d.beginData()
		for col := startColumn; col < startColumn+columns && col < NumCols; col++ {
			d.putData(fill)
		}
		d.end()
	}
}

// FillAreaPattern is FillArea with a repeating byte sequence instead of
// a single value. The pattern restarts at its first byte on every row.
//
// A pattern like {0xFF, 0x00, 0x00, 0x00} draws vertical lines every 4
// columns; a walking bit like {0x01, 0x02, 0x04, ...} draws diagonals.
// An empty pattern writes nothing.
func (d *Dev) FillAreaPattern(startRow, startColumn, rows, columns int, pattern []byte) {
	if startRow < 0 || startColumn < 0 || len(pattern) == 0 {
		return
	}
	for row := startRow; row < startRow+rows && row < NumRows; row++ {
		ix := 0
		d.SetPosition(row, startColumn)
		d.beginData()
		for col := startColumn; col < startColumn+columns && col < NumCols; col++ {
			d.putData(pattern[ix])
			if ix++; ix >= len(pattern) {
				ix = 0
			}
		}
		d.end()
	}
}

// DrawImage blits a row-major byte image stored in the same encoding as
// the display RAM: image[i*imageColumns+j] lands on display row
// startRow+i, column startColumn+j. The image is clipped to the screen
// edges.
func (d *Dev) DrawImage(startRow, startColumn, imageRows, imageColumns int, image []byte) {
	if startRow < 0 || startColumn < 0 {
		return
	}
	for row := startRow; row < startRow+imageRows && row < NumRows; row++ {
		// The source index restarts at the row start for every display
		// row: clipping at the right edge must not skew later rows.
		ix := (row - startRow) * imageColumns
		d.SetPosition(row, startColumn)
		d.beginData()
		for col := startColumn; col < startColumn+imageColumns && col < NumCols; col++ {
			d.putData(image[ix])
			ix++
		}
		d.end()
	}
}

// SetContrast changes the panel contrast.
func (d *Dev) SetContrast(level byte) {
	d.beginCommand()
	d.bus.WriteByte(_SETCONTRAST)
	d.bus.WriteByte(level)
	d.end()
}

// InvertScreen selects inverted (RAM bit clear = pixel lit) or normal
// hardware rendering. RAM contents are unchanged; compare InvertData.
func (d *Dev) InvertScreen(invert bool) {
	if invert {
		d.sendCommand(_INVERTDISPLAY)
	} else {
		d.sendCommand(_NORMALDISPLAY)
	}
}

// Sleep blanks the panel into low-power mode when true and wakes it back
// to the current RAM contents when false.
func (d *Dev) Sleep(sleep bool) {
	if sleep {
		d.sendCommand(_DISPLAYOFF)
	} else {
		d.sendCommand(_DISPLAYON)
	}
}

// beginCommand opens a frame whose payload the controller parses as
// commands, until the frame is closed.
func (d *Dev) beginCommand() {
	d.bus.Start()
	d.bus.WriteByte(d.addr)
	d.bus.WriteByte(i2cCmd)
}

// beginData opens a frame whose payload is written to display RAM at the
// current position, auto-advancing the column pointer.
func (d *Dev) beginData() {
	d.bus.Start()
	d.bus.WriteByte(d.addr)
	d.bus.WriteByte(i2cData)
}

// end closes the current frame. Nothing terminates a payload stream
// beyond the stop condition itself.
func (d *Dev) end() {
	d.bus.Stop()
}

// sendCommand transmits one single-byte command in its own frame.
func (d *Dev) sendCommand(cmd byte) {
	d.beginCommand()
	d.bus.WriteByte(cmd)
	d.end()
}

// putData writes one display RAM byte, complemented when data inversion
// is active.
func (d *Dev) putData(b byte) {
	if d.invertData {
		b = ^b
	}
	d.bus.WriteByte(b)
}
