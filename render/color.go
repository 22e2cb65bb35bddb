// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/color.go
// Summary: RGBA colors and their composition onto terminal cells.

package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA color. A is opacity, 255 being fully opaque.
type Color struct {
	R, G, B, A uint8
}

var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Magenta = RGB(255, 0, 255)
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// RGBA returns a color with the given opacity.
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// ParseHex parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// Hex formats the color as "#rrggbb"; opacity is dropped.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// TCell returns the opaque terminal color for c.
func (c Color) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FromTCell converts a terminal color. Colors without an RGB value (the
// terminal default) map to black.
func FromTCell(tc tcell.Color) Color {
	r, g, b := tc.RGB()
	if r < 0 || g < 0 || b < 0 {
		return Black
	}
	return RGB(uint8(r), uint8(g), uint8(b))
}

// Over composes c onto dst using c's opacity and returns the opaque result.
func (c Color) Over(dst tcell.Color) tcell.Color {
	switch c.A {
	case 255:
		return c.TCell()
	case 0:
		return dst
	}
	base := FromTCell(dst).colorful()
	mixed := base.BlendRgb(c.colorful(), float64(c.A)/255).Clamped()
	r, g, b := mixed.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
