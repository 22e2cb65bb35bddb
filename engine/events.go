// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/events.go
// Summary: Engine-specific tcell events and the tagged queue entry.

package engine

import "github.com/gdamore/tcell/v2"

// AnimateEvent is queued by the frame timer. It is never delivered to
// widgets; it only wakes the loop so pending passes run at the frame rate.
type AnimateEvent struct {
	tcell.EventTime
}

func newAnimateEvent() *AnimateEvent {
	ev := &AnimateEvent{}
	ev.SetEventNow()
	return ev
}

// QuitEvent asks the loop to exit once it is dequeued.
type QuitEvent struct {
	tcell.EventTime
}

// NewQuitEvent returns a QuitEvent stamped with the current time.
func NewQuitEvent() *QuitEvent {
	ev := &QuitEvent{}
	ev.SetEventNow()
	return ev
}

// UserEvent carries application data through the loop. Window 0 offers the
// event to every window in order until one handles it.
type UserEvent struct {
	tcell.EventTime
	Window uint32
	Code   int
	Data   any
}

// NewUserEvent returns a UserEvent stamped with the current time.
func NewUserEvent(window uint32, code int, data any) *UserEvent {
	ev := &UserEvent{Window: window, Code: code, Data: data}
	ev.SetEventNow()
	return ev
}

// queued is one queue entry: an event and the window it came from (0 when
// it has no window).
type queued struct {
	win uint32
	ev  tcell.Event
}
