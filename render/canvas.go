// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/canvas.go
// Summary: Canvas is the per-window render target handed to widget callbacks.
// Usage: The engine rebuilds a window's canvas whenever its output size changes;
// widgets must not keep a canvas past the callback that received it.

package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas draws onto a window's screen driver. A released canvas rejects every
// operation with ErrCanvasReleased.
type Canvas struct {
	drv      ScreenDriver
	w, h     int
	color    Color
	released bool
}

// NewCanvas captures the driver's current output size.
func NewCanvas(drv ScreenDriver) *Canvas {
	w, h := drv.Size()
	return &Canvas{drv: drv, w: w, h: h, color: White}
}

// Release invalidates the canvas. Safe to call more than once.
func (c *Canvas) Release() { c.released = true }

// Released reports whether the canvas has been invalidated.
func (c *Canvas) Released() bool { return c == nil || c.released }

// Size returns the output size captured when the canvas was built.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Bounds returns the output rectangle anchored at the origin.
func (c *Canvas) Bounds() Rect { return Rect{W: c.w, H: c.h} }

func (c *Canvas) check(op string) error {
	if c.Released() {
		return &Error{Op: op, Err: ErrCanvasReleased}
	}
	return nil
}

// DrawColor returns the color used by Clear, FillRect and DrawText.
func (c *Canvas) DrawColor() Color { return c.color }

// SetDrawColor sets the color used by subsequent drawing calls.
func (c *Canvas) SetDrawColor(col Color) error {
	if err := c.check("SetDrawColor"); err != nil {
		return err
	}
	c.color = col
	return nil
}

// Clear paints every cell with the draw color, ignoring its opacity.
func (c *Canvas) Clear() error {
	if err := c.check("Clear"); err != nil {
		return err
	}
	tc := c.color.TCell()
	st := tcell.StyleDefault.Background(tc).Foreground(tc)
	c.drv.SetStyle(st)
	c.drv.Fill(' ', st)
	return nil
}

// FillRect blends the draw color over the background of every cell in r
// that lies on the canvas. Cell text is erased.
func (c *Canvas) FillRect(r Rect) error {
	if err := c.check("FillRect"); err != nil {
		return err
	}
	area, ok := r.Intersect(c.Bounds())
	if !ok {
		return nil
	}
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			_, _, st, _ := c.drv.GetContent(x, y)
			_, bg, _ := st.Decompose()
			c.drv.SetContent(x, y, ' ', nil, st.Background(c.color.Over(bg)))
		}
	}
	return nil
}

// DrawText writes s starting at (x, y) in the draw color, keeping each cell's
// background. Runes that would cross the edge of clip (or of the canvas) are
// dropped. It returns the number of columns s occupies.
func (c *Canvas) DrawText(x, y int, s string, clip Rect) (int, error) {
	if err := c.check("DrawText"); err != nil {
		return 0, err
	}
	area, ok := clip.Intersect(c.Bounds())
	col := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		cx := x + col
		col += rw
		if !ok || !area.Contains(Point{X: cx, Y: y}) || !area.Contains(Point{X: cx + rw - 1, Y: y}) {
			continue
		}
		_, _, st, _ := c.drv.GetContent(cx, y)
		c.drv.SetContent(cx, y, r, nil, st.Foreground(c.color.Over(tcell.ColorDefault)))
	}
	return col, nil
}

// CopyClipped copies the src region of t onto the dst rectangle, scaling
// proportionally, but only where dst overlaps clip. Texture cells with the
// default background keep the canvas background, and cells holding rune 0
// (the right half of a wide rune) are skipped. It reports whether the copy
// touched the canvas at all.
func (c *Canvas) CopyClipped(t *Texture, src, dst, clip Rect) (bool, error) {
	if err := c.check("CopyClipped"); err != nil {
		return false, err
	}
	if t == nil || src.Empty() || dst.Empty() {
		return false, nil
	}
	masked, ok := dst.Intersect(clip)
	if !ok {
		return false, nil
	}
	masked, ok = masked.Intersect(c.Bounds())
	if !ok {
		return false, nil
	}
	for y := masked.Y; y < masked.Y+masked.H; y++ {
		sy := src.Y + (y-dst.Y)*src.H/dst.H
		for x := masked.X; x < masked.X+masked.W; x++ {
			sx := src.X + (x-dst.X)*src.W/dst.W
			cell, ok := t.At(sx, sy)
			if !ok || cell.Ch == 0 {
				continue
			}
			st := cell.Style
			if _, bg, _ := st.Decompose(); bg == tcell.ColorDefault {
				_, _, under, _ := c.drv.GetContent(x, y)
				_, ubg, _ := under.Decompose()
				st = st.Background(ubg)
			}
			c.drv.SetContent(x, y, cell.Ch, nil, st)
		}
	}
	return true, nil
}

// Present pushes everything drawn so far to the window.
func (c *Canvas) Present() error {
	if err := c.check("Present"); err != nil {
		return err
	}
	c.drv.Show()
	return nil
}
