// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/window.go
// Summary: Window session: surface, canvas, root widget, focus and dirty flags.
// Usage: Windows are created and removed through the Engine; every method
// must be called from the goroutine running Engine.Run.

package engine

import (
	"fmt"
	"log"
	"weak"

	"github.com/framegrace/texelgrid/internal/winstate"
	"github.com/framegrace/texelgrid/render"
	"github.com/framegrace/texelgrid/widget"
)

// Window binds one screen to one widget tree.
type Window struct {
	id     uint32
	title  string
	engine *Engine

	drv    render.ScreenDriver
	canvas *render.Canvas

	root  widget.Widget
	focus weak.Pointer[widget.Node]

	bbox       render.Rect
	background render.Color
	fullscreen bool

	needsResize bool
	needsRedraw bool
	closed      bool
}

func (w *Window) ID() uint32    { return w.id }
func (w *Window) Title() string { return w.title }

// Canvas returns the current render target. It is replaced whenever the
// output size changes.
func (w *Window) Canvas() *render.Canvas { return w.canvas }

// Driver returns the screen backing the window.
func (w *Window) Driver() render.ScreenDriver { return w.drv }

// Bounds returns the output rectangle the root is laid out in.
func (w *Window) Bounds() render.Rect { return w.bbox }

// Closed reports whether the window has been removed.
func (w *Window) Closed() bool { return w.closed }

// Pending reports the dirty flags.
func (w *Window) Pending() (resize, redraw bool) { return w.needsResize, w.needsRedraw }

func (w *Window) Background() render.Color { return w.background }

// SetBackground changes the clear color and schedules a redraw.
func (w *Window) SetBackground(c render.Color) {
	w.background = c
	w.needsRedraw = true
}

// Root returns the root widget, or nil.
func (w *Window) Root() widget.Widget { return w.root }

// SetRoot shows root in the window, replacing and detaching any previous
// root. A nil root empties the window. Rooting a widget that has a parent
// or is shown in another window fails.
func (w *Window) SetRoot(root widget.Widget) error {
	if w.closed {
		return ErrWindowClosed
	}
	if root == w.root {
		return nil
	}
	if root != nil {
		if err := widget.AttachRoot(root, w); err != nil {
			return fmt.Errorf("set root of window %q: %w", w.title, err)
		}
	}
	w.detachRoot()
	w.root = root
	if root != nil {
		w.broadcastRenderUpdate()
	}
	w.needsResize = true
	w.needsRedraw = true
	return nil
}

func (w *Window) detachRoot() {
	if w.root == nil {
		return
	}
	w.ClearFocus()
	for n := range widget.PreOrder(w.root, nil) {
		n.RenderUpdate(nil)
	}
	widget.DetachRoot(w.root, w)
	w.root = nil
}

// Focus returns the focus holder, or nil. A holder that has left the
// window's tree (detached from its container) loses focus here.
func (w *Window) Focus() widget.Widget {
	n := w.focus.Value()
	if n == nil {
		return nil
	}
	holder := n.Self()
	if widget.HostOf(holder) != widget.Host(w) {
		w.focus = weak.Pointer[widget.Node]{}
		holder.LoseFocus(w.canvas)
		return nil
	}
	return holder
}

// ClearFocus notifies the holder and drops the focus.
func (w *Window) ClearFocus() {
	if old := w.Focus(); old != nil {
		old.LoseFocus(w.canvas)
	}
	w.focus = weak.Pointer[widget.Node]{}
}

// setFocus walks up from target until a widget accepts focus. The previous
// holder is told it lost focus first. Refocusing the holder does nothing.
func (w *Window) setFocus(target widget.Widget) {
	old := w.Focus()
	if old == target {
		return
	}
	if old != nil {
		old.LoseFocus(w.canvas)
	}
	w.focus = weak.Pointer[widget.Node]{}
	for cur := target; cur != nil; cur = cur.Embedded().Parent() {
		if cur.TakeFocus(w.canvas) {
			w.focus = weak.Make(cur.Embedded())
			return
		}
	}
}

// RequestResize schedules a layout pass.
func (w *Window) RequestResize() { w.needsResize = true }

// RequestRedraw schedules a draw pass.
func (w *Window) RequestRedraw() { w.needsRedraw = true }

func (w *Window) Fullscreen() bool { return w.fullscreen }

// SetFullscreen switches presentation mode when the driver supports it and
// records the preference either way.
func (w *Window) SetFullscreen(on bool) error {
	if w.closed {
		return ErrWindowClosed
	}
	if on == w.fullscreen {
		return nil
	}
	if fs, ok := w.drv.(render.Fullscreener); ok {
		if err := fs.SetFullscreen(on); err != nil {
			return render.Wrap("SetFullscreen", err)
		}
	}
	w.fullscreen = on
	w.needsResize = true
	w.needsRedraw = true
	return nil
}

// ToggleFullscreen flips the presentation mode.
func (w *Window) ToggleFullscreen() error { return w.SetFullscreen(!w.fullscreen) }

// rebuildCanvas replaces the canvas after an output size change and tells
// the tree about the new one.
func (w *Window) rebuildCanvas() {
	if w.canvas != nil {
		w.canvas.Release()
	}
	w.canvas = render.NewCanvas(w.drv)
	cw, ch := w.canvas.Size()
	w.bbox = render.Rect{W: cw, H: ch}
	if w.root != nil {
		w.broadcastRenderUpdate()
	}
	w.needsResize = true
	w.needsRedraw = true
}

func (w *Window) broadcastRenderUpdate() {
	for n := range widget.PreOrder(w.root, nil) {
		n.RenderUpdate(w.canvas)
	}
}

// resizePass lays the root out in the window bounds when a resize is owed.
func (w *Window) resizePass() {
	if w.needsResize && w.root != nil && w.root.Embedded().Visible() {
		w.root.Embedded().SetDrawRect(w.bbox)
		w.root.Resize(w.canvas)
		w.needsRedraw = true
	}
	w.needsResize = false
}

// drawPass clears to the background, draws the root and presents, when a
// redraw is owed.
func (w *Window) drawPass() error {
	if !w.needsRedraw {
		return nil
	}
	w.needsRedraw = false
	if err := w.canvas.SetDrawColor(w.background); err != nil {
		return err
	}
	if err := w.canvas.Clear(); err != nil {
		return err
	}
	if w.root != nil && w.root.Embedded().Visible() {
		if err := w.root.Draw(w.canvas); err != nil {
			return err
		}
	}
	return w.canvas.Present()
}

func (w *Window) restoreState(store StateStore) {
	st, ok, err := store.Load(w.title)
	if err != nil {
		log.Printf("Engine: restore state of %q: %v", w.title, err)
		return
	}
	if !ok {
		return
	}
	if bg, err := render.ParseHex(st.Background); err == nil {
		w.background = bg
	} else if st.Background != "" {
		log.Printf("Engine: ignoring stored background of %q: %v", w.title, err)
	}
	if err := w.SetFullscreen(st.Fullscreen); err != nil {
		log.Printf("Engine: restore fullscreen of %q: %v", w.title, err)
	}
}

func (w *Window) saveState(store StateStore) {
	st := winstate.State{Background: w.background.Hex(), Fullscreen: w.fullscreen}
	if err := store.Save(w.title, st); err != nil {
		log.Printf("Engine: save state of %q: %v", w.title, err)
	}
}

// pump forwards the screen's events to the engine queue until the screen
// is finalised or the queue closes.
func (w *Window) pump(q *eventQueue) {
	drv, id := w.drv, w.id
	for {
		ev := drv.PollEvent()
		if ev == nil {
			return
		}
		if err := q.push(queued{win: id, ev: ev}); err != nil {
			return
		}
	}
}
