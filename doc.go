// Copyright 2025 Tom Nisbet. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306lite is a container for a lightweight SSD1306 OLED driver
// stack: a bit-banged two-wire transmitter (i2cbb), the display driver
// itself (ssd1306), bundled glyph tables (font), a 1-bit image buffer
// (pixel) and a terminal-based panel emulator (screen2d).
package ssd1306lite
