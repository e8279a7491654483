// Copyright 2025 Tom Nisbet. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306 controls a 128x64 monochrome OLED display with a
// SSD1306 controller over a bit-banged two-wire link.
//
// The driver keeps no frame buffer. Text, fills and images are encoded
// straight into the controller's display RAM, one 8-pixel row ("page")
// at a time, using the controller's page addressing mode. Each RAM byte
// covers 8 vertically stacked pixels with bit 0 at the top.
//
// Every operation is synchronous and fire-and-forget: the link never
// checks for an acknowledgement, so nothing is reported when the display
// is absent or strapped to the other address. Out of range coordinates
// clip or no-op silently instead of failing; callers rely on that for
// edge-of-screen drawing.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
