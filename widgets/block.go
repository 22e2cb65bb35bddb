// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/block.go
// Summary: Colour block with a percent fill, a click toggle for a linked widget and Escape to close.
// Usage: b := widgets.NewBlock(render.RGB(0, 96, 160), ctl); b.SetLinked(other).

package widgets

import (
	"fmt"
	"weak"

	"github.com/framegrace/texelgrid/engine"
	"github.com/framegrace/texelgrid/render"
	"github.com/framegrace/texelgrid/widget"
	"github.com/gdamore/tcell/v2"
)

// StepCode is the UserEvent code that advances animated blocks by one percent.
const StepCode = 1

// Controller is the slice of the engine a Block talks to.
type Controller interface {
	RequestResize(widget.Widget)
	RequestRedraw(widget.Widget)
	RemoveWindowOf(widget.Widget) bool
}

// Block fills the left Percent of its draw rect with Color.
type Block struct {
	*widget.Node

	Color   render.Color
	Caption string
	// Animate makes the block react to StepCode user events.
	Animate bool

	ctl     Controller
	percent int
	linked  weak.Pointer[widget.Node]
	armed   bool
}

// NewBlock returns a fully filled block. ctl may be nil, in which case the
// block neither closes its window nor schedules passes.
func NewBlock(color render.Color, ctl Controller) *Block {
	b := &Block{Color: color, ctl: ctl, percent: 100}
	b.Node = widget.NewNode(b)
	return b
}

func (b *Block) Percent() int { return b.percent }

// SetPercent clamps pct to 0..100.
func (b *Block) SetPercent(pct int) { b.percent = min(max(pct, 0), 100) }

// SetLinked sets the widget whose visibility a click toggles. The block
// does not keep it alive.
func (b *Block) SetLinked(w widget.Widget) {
	if w == nil {
		b.linked = weak.Pointer[widget.Node]{}
		return
	}
	b.linked = weak.Make(w.Embedded())
}

// Linked returns the linked widget, or nil once it has been collected.
func (b *Block) Linked() widget.Widget {
	if n := b.linked.Value(); n != nil {
		return n.Self()
	}
	return nil
}

func (b *Block) Draw(c *render.Canvas) error {
	r := b.DrawRect()
	fill := r
	fill.W = r.W * b.percent / 100
	if err := c.SetDrawColor(b.Color); err != nil {
		return err
	}
	if err := c.FillRect(fill); err != nil {
		return err
	}
	if b.Caption == "" {
		return nil
	}
	if err := c.SetDrawColor(render.White); err != nil {
		return err
	}
	_, err := c.DrawText(r.X, r.Y, fmt.Sprintf("%s: %d%%", b.Caption, b.percent), r)
	return err
}

func (b *Block) HandleEvent(c *render.Canvas, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() != tcell.KeyEscape || b.ctl == nil {
			return false
		}
		return b.ctl.RemoveWindowOf(b)
	case *tcell.EventMouse:
		return b.handleMouse(ev)
	case *engine.UserEvent:
		if ev.Code == StepCode && b.Animate {
			b.percent = (b.percent + 1) % 101
			b.request(false)
		}
		// Every animated block gets the step.
		return false
	}
	return false
}

// handleMouse toggles the linked widget when button 1 is pressed and then
// released inside the block.
func (b *Block) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	inside := b.Contains(render.Point{X: x, Y: y})
	if ev.Buttons()&tcell.Button1 != 0 {
		if !b.armed && !inside {
			return false
		}
		b.armed = true
		return true
	}
	if !b.armed {
		return false
	}
	b.armed = false
	if !inside {
		return true
	}
	if linked := b.Linked(); linked != nil {
		n := linked.Embedded()
		n.SetVisible(!n.Visible())
		b.request(true)
	}
	return true
}

func (b *Block) request(resize bool) {
	if b.ctl == nil {
		return
	}
	if resize {
		b.ctl.RequestResize(b)
	}
	b.ctl.RequestRedraw(b)
}
