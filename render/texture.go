// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/texture.go
// Summary: Off-screen cell buffers that widgets prepare in RenderUpdate and copy in Draw.

package render

import "github.com/gdamore/tcell/v2"

// Cell is one character cell of a texture.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// Texture is a fixed-size grid of cells.
type Texture struct {
	w, h  int
	cells []Cell
}

// NewTexture returns a blank texture; negative sizes are treated as zero.
func NewTexture(w, h int) *Texture {
	w, h = max(w, 0), max(h, 0)
	t := &Texture{w: w, h: h, cells: make([]Cell, w*h)}
	t.Fill(' ', tcell.StyleDefault)
	return t
}

func (t *Texture) Size() (int, int) { return t.w, t.h }

// Fill sets every cell.
func (t *Texture) Fill(ch rune, st tcell.Style) {
	for i := range t.cells {
		t.cells[i] = Cell{Ch: ch, Style: st}
	}
}

// Set writes one cell; out-of-range coordinates are ignored.
func (t *Texture) Set(x, y int, ch rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	t.cells[y*t.w+x] = Cell{Ch: ch, Style: st}
}

// At returns the cell at (x, y) and whether it exists.
func (t *Texture) At(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return Cell{}, false
	}
	return t.cells[y*t.w+x], true
}
