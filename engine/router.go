// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/router.go
// Summary: Delivers one event to a window's widget tree, focus subtree first.

package engine

import (
	"github.com/framegrace/texelgrid/widget"
	"github.com/gdamore/tcell/v2"
)

// deliver offers ev to the enabled widgets under the focus holder, children
// first, then to the rest of the tree with the focus subtree pruned. It
// stops at the first widget that handles the event and reports whether one
// did.
func deliver(w *Window, ev tcell.Event) bool {
	if w.root == nil {
		return false
	}
	focus := w.Focus()
	if focus != nil && offer(w, focus, nil, ev) {
		return true
	}
	return offer(w, w.root, focus, ev)
}

func offer(w *Window, root, prune widget.Widget, ev tcell.Event) bool {
	for n := range widget.PostOrder(root, prune) {
		if w.closed {
			return true
		}
		if !n.Embedded().Enabled() {
			continue
		}
		if n.HandleEvent(w.canvas, ev) {
			return true
		}
	}
	return false
}
