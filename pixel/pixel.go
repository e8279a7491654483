// Copyright 2025 Tom Nisbet. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pixel provides a 1-bit image buffer in the native byte layout
// of the SSD1306 display RAM, so a buffer can be blitted without any
// per-pixel conversion.
package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// Mono is a 1-bit monochrome color.
type Mono struct {
	On bool
}

// Convenient Mono values.
var (
	Off = Mono{}
	On  = Mono{On: true}
)

func (c Mono) RGBA() (r, g, b, a uint32) {
	if c.On {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

// MonoModel converts any color to Mono.
var MonoModel color.Model = color.ModelFunc(monoModel)

func monoModel(c color.Color) color.Color {
	if _, ok := c.(Mono); ok {
		return c
	}
	r, g, b, _ := c.RGBA()

	// JFIF luminance weights; 19595 + 38470 + 7471 == 65536. The shift
	// by 31 (16 + 15) reduces the 16-bit luminance to a single bit.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 31

	return Mono{On: y != 0}
}

// Image is a 1-bit image stored as horizontal bands of 8 vertical
// pixels, one byte per column per band, bit 0 topmost. Pix uses the row
// major layout expected by ssd1306.Dev.DrawImage.
type Image struct {
	Pix  []byte
	Rect image.Rectangle
}

// NewImage returns a blank image. The height is rounded up to a whole
// band.
func NewImage(w, h int) *Image {
	bands := (h + 7) / 8
	return &Image{
		Pix:  make([]byte, bands*w),
		Rect: image.Rect(0, 0, w, bands*8),
	}
}

// FromImage renders src into a new Image of the same size using the
// monochrome color model.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	dst := NewImage(b.Dx(), b.Dy())
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
	return dst
}

// Rows is the image height in display rows (8-pixel bands).
func (p *Image) Rows() int { return p.Rect.Dy() / 8 }

// Cols is the image width in display columns.
func (p *Image) Cols() int { return p.Rect.Dx() }

func (p *Image) ColorModel() color.Model { return MonoModel }

func (p *Image) Bounds() image.Rectangle { return p.Rect }

func (p *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return Off
	}
	pos, bit := p.index(x, y)
	return Mono{On: p.Pix[pos]&bit != 0}
}

// Set implements draw.Image.
func (p *Image) Set(x, y int, c color.Color) {
	p.SetBit(x, y, monoModel(c).(Mono).On)
}

// SetBit sets or clears a single pixel. Out of bounds coordinates are
// ignored.
func (p *Image) SetBit(x, y int, on bool) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	pos, bit := p.index(x, y)
	if on {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

// Fill sets every pixel at once.
func (p *Image) Fill(on bool) {
	var value byte
	if on {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

func (p *Image) index(x, y int) (pos int, bit byte) {
	return y/8*p.Rect.Dx() + x, 1 << uint(y&7)
}

var _ draw.Image = &Image{}
