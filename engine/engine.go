// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/engine.go
// Summary: Window registry and main loop: queue events, route them, then run deferred layout and drawing.
// Usage: e, _ := engine.New(opts); win, _ := e.CreateWindow("title");
// win.SetRoot(tree); e.Run(ctx); e.Close().

package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync/atomic"

	"github.com/framegrace/texelgrid/render"
	"github.com/framegrace/texelgrid/widget"
	"github.com/gdamore/tcell/v2"
)

var engineOpen atomic.Bool

// Engine owns the windows, the event queue and the frame timer. Only one
// Engine may be open at a time. Apart from Post and Stop, methods must be
// called from the goroutine running Run (or before Run starts).
type Engine struct {
	opts    Options
	queue   *eventQueue
	timer   *frameTimer
	windows []*Window
	nextID  uint32

	frameRate int
	running   bool
	exit      atomic.Bool
	closed    bool
}

// New opens the engine. It fails with ErrEngineExists while another engine
// is open.
func New(opts Options) (*Engine, error) {
	if !engineOpen.CompareAndSwap(false, true) {
		return nil, ErrEngineExists
	}
	opts = opts.withDefaults()
	e := &Engine{
		opts:      opts,
		queue:     newEventQueue(opts.QueueSize),
		frameRate: opts.FrameRate,
	}
	log.Printf("Engine: opened (frame rate %d, queue %d)", e.frameRate, opts.QueueSize)
	return e, nil
}

// Close removes every window, stops the timer and shuts the queue down.
// Calling it again does nothing.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	for _, w := range slices.Clone(e.windows) {
		e.RemoveWindow(w)
	}
	e.timer.Stop()
	e.timer = nil
	e.queue.close()
	e.closed = true
	engineOpen.Store(false)
	log.Printf("Engine: closed")
}

// CreateWindow opens a screen and registers a window for it. The window
// starts with no root, the configured background and both dirty flags set.
func (e *Engine) CreateWindow(title string) (*Window, error) {
	if e.closed {
		return nil, ErrQueueClosed
	}
	drv, err := e.opts.Screens(title)
	if err != nil {
		return nil, fmt.Errorf("create window %q: %w", title, render.Wrap("OpenScreen", err))
	}
	if err := drv.Init(); err != nil {
		return nil, fmt.Errorf("create window %q: %w", title, render.Wrap("Init", err))
	}
	drv.HideCursor()
	drv.EnableMouse()

	e.nextID++
	w := &Window{
		id:         e.nextID,
		title:      title,
		engine:     e,
		drv:        drv,
		background: e.opts.Background,
	}
	if e.opts.States != nil {
		w.restoreState(e.opts.States)
	}
	w.rebuildCanvas()
	e.windows = append(e.windows, w)
	go w.pump(e.queue)

	log.Printf("Engine: created window %d %q (%dx%d)", w.id, title, w.bbox.W, w.bbox.H)
	return w, nil
}

// RemoveWindow releases the window's root and focus, saves its preferences
// and finalises its screen. Run returns once the last window is gone.
func (e *Engine) RemoveWindow(w *Window) {
	if w == nil || w.closed || w.engine != e {
		return
	}
	w.detachRoot()
	if e.opts.States != nil {
		w.saveState(e.opts.States)
	}
	w.canvas.Release()
	w.closed = true
	w.drv.Fini()
	e.windows = slices.DeleteFunc(e.windows, func(o *Window) bool { return o == w })
	log.Printf("Engine: removed window %d %q", w.id, w.title)
}

// RemoveWindowOf removes the window showing wd's tree. It reports whether
// there was one.
func (e *Engine) RemoveWindowOf(wd widget.Widget) bool {
	w := e.WindowOf(wd)
	if w == nil {
		return false
	}
	e.RemoveWindow(w)
	return true
}

// Windows returns the open windows in creation order.
func (e *Engine) Windows() []*Window { return slices.Clone(e.windows) }

// Window returns the open window with the given id, or nil.
func (e *Engine) Window(id uint32) *Window {
	for _, w := range e.windows {
		if w.id == id {
			return w
		}
	}
	return nil
}

// WindowOf returns the open window showing wd's tree, or nil.
func (e *Engine) WindowOf(wd widget.Widget) *Window {
	w, ok := widget.HostOf(wd).(*Window)
	if !ok || w.closed || w.engine != e {
		return nil
	}
	return w
}

// SetFocus gives focus to wd, or to its nearest ancestor that accepts it.
func (e *Engine) SetFocus(wd widget.Widget) error {
	w := e.WindowOf(wd)
	if w == nil {
		return ErrNotShown
	}
	w.setFocus(wd)
	return nil
}

// RequestResize schedules a layout pass for the window showing wd.
func (e *Engine) RequestResize(wd widget.Widget) {
	if w := e.WindowOf(wd); w != nil {
		w.RequestResize()
	}
}

// RequestRedraw schedules a draw pass for the window showing wd.
func (e *Engine) RequestRedraw(wd widget.Widget) {
	if w := e.WindowOf(wd); w != nil {
		w.RequestRedraw()
	}
}

// RequestResizeAll schedules a layout pass in every window.
func (e *Engine) RequestResizeAll() {
	for _, w := range e.windows {
		w.RequestResize()
	}
}

// RequestRedrawAll schedules a draw pass in every window.
func (e *Engine) RequestRedrawAll() {
	for _, w := range e.windows {
		w.RequestRedraw()
	}
}

func (e *Engine) FrameRate() int { return e.frameRate }

// SetFrameRate changes the animation tick rate; 0 stops the ticks. A running
// loop restarts its timer at the new rate.
func (e *Engine) SetFrameRate(fps int) {
	e.frameRate = clampFrameRate(fps)
	if e.running {
		e.timer.Stop()
		e.timer = startFrameTimer(e.frameRate, e.queue)
	}
}

// Post queues ev for the loop. It is safe from any goroutine. A UserEvent
// goes to its window; other events are offered to every window.
func (e *Engine) Post(ev tcell.Event) error {
	if ev == nil {
		return nil
	}
	var win uint32
	if ue, ok := ev.(*UserEvent); ok {
		win = ue.Window
	}
	return e.queue.push(queued{win: win, ev: ev})
}

// Stop asks Run to return after the event being processed. It is safe from
// any goroutine.
func (e *Engine) Stop() {
	e.exit.Store(true)
	e.queue.tryPush(queued{ev: NewQuitEvent()})
}

// Run processes events until Stop, a QuitEvent, ctx cancellation, or the
// removal of the last window. A failing draw ends the loop with its error.
func (e *Engine) Run(ctx context.Context) error {
	if e.closed {
		return ErrQueueClosed
	}
	if e.running {
		return errors.New("engine: Run called while already running")
	}
	e.running = true
	e.exit.Store(false)
	e.timer = startFrameTimer(e.frameRate, e.queue)
	defer func() {
		e.timer.Stop()
		e.timer = nil
		e.running = false
	}()
	stopOnCancel := context.AfterFunc(ctx, e.Stop)
	defer stopOnCancel()

	if err := e.flush(); err != nil {
		return err
	}
	for !e.exit.Load() && len(e.windows) > 0 {
		q, err := e.queue.wait(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		e.process(q)
		if err := e.flush(); err != nil {
			return err
		}
	}
	return nil
}

// process handles one dequeued event: engine-level bookkeeping first, then
// delivery to the widgets.
func (e *Engine) process(q queued) {
	switch q.ev.(type) {
	case *QuitEvent:
		e.exit.Store(true)
		return
	case *AnimateEvent:
		// Only wakes the loop; flush runs whatever widgets requested.
		return
	}

	var target *Window
	if q.win != 0 {
		if target = e.Window(q.win); target == nil {
			return
		}
	}

	switch ev := q.ev.(type) {
	case *tcell.EventResize:
		if target != nil {
			target.drv.Sync()
			target.rebuildCanvas()
		}
	case *tcell.EventInterrupt:
		if target != nil {
			target.RequestRedraw()
		} else {
			e.RequestRedrawAll()
		}
	case *tcell.EventKey:
		if target != nil && e.opts.FullscreenKey != 0 && ev.Key() == e.opts.FullscreenKey {
			if err := target.ToggleFullscreen(); err != nil {
				log.Printf("Engine: toggle fullscreen of %q: %v", target.title, err)
			}
		}
	}

	if target != nil {
		deliver(target, q.ev)
		return
	}
	for _, w := range slices.Clone(e.windows) {
		if !w.closed && deliver(w, q.ev) {
			return
		}
	}
}

// flush runs the owed layout and draw passes of every window.
func (e *Engine) flush() error {
	for _, w := range slices.Clone(e.windows) {
		if w.closed {
			continue
		}
		w.resizePass()
		if err := w.drawPass(); err != nil {
			return fmt.Errorf("draw window %q: %w", w.title, err)
		}
	}
	return nil
}
