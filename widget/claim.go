// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/claim.go
// Summary: Parent and root links; a widget is claimed by one container or rooted in one host, never both.

package widget

import (
	"errors"
	"weak"
)

var (
	// ErrHasParent is returned when rooting a widget that a container owns.
	ErrHasParent = errors.New("widget: widget already has a parent")
	// ErrAlreadyRooted is returned when rooting a widget that is another host's root.
	ErrAlreadyRooted = errors.New("widget: widget is already a window root")
)

// Claim records parent as child's parent. Containers call it when adding a
// child to their collection. It fails when child already has a parent, is a
// root, or is an ancestor of parent. When parent's tree is shown in a host,
// the claimed subtree receives RenderUpdate in pre-order.
func Claim(parent, child Widget) bool {
	if parent == nil || child == nil {
		return false
	}
	cn := child.Embedded()
	if cn.parent.Value() != nil || cn.host != nil {
		return false
	}
	if parent.Embedded().Root() == child {
		return false
	}
	cn.parent = weak.Make(parent.Embedded())

	if host := HostOf(parent); host != nil {
		c := host.Canvas()
		for w := range PreOrder(child, nil) {
			w.RenderUpdate(c)
		}
	}
	return true
}

// Release drops child's parent link. Containers call it after removing the
// child from their collection. A subtree leaving a shown tree receives
// RenderUpdate(nil) first.
func Release(child Widget) {
	if child == nil {
		return
	}
	if HostOf(child) != nil {
		for w := range PreOrder(child, nil) {
			w.RenderUpdate(nil)
		}
	}
	child.Embedded().parent = weak.Pointer[Node]{}
}

// AttachRoot marks w as the root shown by host. Attaching to the host it is
// already rooted in is a no-op.
func AttachRoot(w Widget, host Host) error {
	n := w.Embedded()
	if n.parent.Value() != nil {
		return ErrHasParent
	}
	switch n.host {
	case nil:
		n.host = host
		return nil
	case host:
		return nil
	default:
		return ErrAlreadyRooted
	}
}

// DetachRoot clears w's root mark if host holds it.
func DetachRoot(w Widget, host Host) {
	if w == nil {
		return
	}
	if n := w.Embedded(); n.host == host {
		n.host = nil
	}
}

// HostOf returns the host showing w's tree, or nil when the tree is not rooted.
func HostOf(w Widget) Host {
	if w == nil {
		return nil
	}
	return w.Embedded().Root().Embedded().host
}
