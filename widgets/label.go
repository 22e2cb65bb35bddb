// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/label.go
// Summary: One-line text widget sized by display width and drawn from a texture.
// Usage: l := widgets.NewLabel("status", render.White); grid.Attach(l, 0, 0, 1, 2).

package widgets

import (
	"github.com/framegrace/texelgrid/render"
	"github.com/framegrace/texelgrid/widget"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Label shows one line of text, anchored top-left by default. Its minimum
// size follows the display width of the text, and the text is prepared as a
// texture whenever the window hands out a new canvas.
type Label struct {
	*widget.Node

	text  string
	color render.Color
	tex   *render.Texture
}

// NewLabel returns a label showing text in color.
func NewLabel(text string, color render.Color) *Label {
	l := &Label{color: color}
	l.Node = widget.NewNode(l)
	l.SetAnchors(widget.NW)
	l.SetText(text)
	return l
}

func (l *Label) Text() string { return l.text }

// SetText replaces the text and its minimum size. The caller schedules the
// layout pass.
func (l *Label) SetText(text string) {
	l.text = text
	l.SetMinSize(runewidth.StringWidth(text), 1)
	if l.tex != nil {
		l.tex = l.build()
	}
}

func (l *Label) RenderUpdate(c *render.Canvas) {
	if c == nil {
		l.tex = nil
		return
	}
	l.tex = l.build()
}

func (l *Label) build() *render.Texture {
	tex := render.NewTexture(l.MinW(), 1)
	st := tcell.StyleDefault.Foreground(l.color.TCell())
	x := 0
	for _, r := range l.text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		tex.Set(x, 0, r, st)
		for i := 1; i < rw; i++ {
			tex.Set(x+i, 0, 0, st)
		}
		x += rw
	}
	return tex
}

func (l *Label) Draw(c *render.Canvas) error {
	if l.tex == nil {
		return nil
	}
	r := l.DrawRect()
	w, h := l.tex.Size()
	src := render.Rect{W: w, H: h}
	dst := render.Rect{X: r.X, Y: r.Y, W: w, H: h}
	_, err := c.CopyClipped(l.tex, src, dst, r)
	return err
}
