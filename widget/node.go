// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/node.go
// Summary: Widget contract and the embedded Node base carrying shared widget state.
// Usage: Concrete widgets embed *Node, created by NewNode with the outer value as self.

package widget

import (
	"weak"

	"github.com/framegrace/texelgrid/render"
	"github.com/gdamore/tcell/v2"
)

// Widget is the contract every node in a display tree satisfies. Concrete
// types embed *Node for the defaults and override what they need.
type Widget interface {
	// Embedded returns the shared base state of the widget.
	Embedded() *Node

	// Child enumeration. Implementations must skip prune whenever it would be
	// returned and continue with the following child.
	HasChildren() bool
	HasChild(child Widget) bool
	FirstChild(prune Widget) Widget
	NextChild(after, prune Widget) Widget

	// RenderUpdate is called when the window's canvas changes. c may be nil
	// when the widget is no longer shown anywhere. Not propagated by the
	// callee; the engine walks the tree.
	RenderUpdate(c *render.Canvas)

	// Draw paints the widget. DrawRect is already set. Containers must draw
	// their children.
	Draw(c *render.Canvas) error

	// Resize is called after DrawRect changed. Containers must set their
	// children's draw rects and resize them.
	Resize(c *render.Canvas)

	// TakeFocus returns true to accept focus, false to pass it to the parent.
	TakeFocus(c *render.Canvas) bool

	// LoseFocus tells the current focus holder it lost focus.
	LoseFocus(c *render.Canvas)

	// HandleEvent returns true to stop propagation. Not propagated by the
	// callee; the engine walks the tree.
	HandleEvent(c *render.Canvas, ev tcell.Event) bool
}

// Host is whatever a root widget is attached to (an engine window).
type Host interface {
	Canvas() *render.Canvas
}

// Node holds the state shared by every widget.
type Node struct {
	self   Widget
	parent weak.Pointer[Node]
	host   Host

	enabled bool
	visible bool

	padN, padS, padE, padW int
	minW, minH             int
	anchors                Direction

	drawRect render.Rect
	laidOut  bool
}

// NewNode returns the base for self. Callers build the outer value first and
// then assign the result to its embedded *Node:
//
//	b := &Block{}
//	b.Node = widget.NewNode(b)
func NewNode(self Widget) *Node {
	if self == nil {
		panic("widget: NewNode called with nil self")
	}
	return &Node{self: self, enabled: true, visible: true}
}

func (n *Node) Embedded() *Node { return n }

// Self returns the outer widget this node belongs to.
func (n *Node) Self() Widget { return n.self }

// Parent returns the claiming container, or nil.
func (n *Node) Parent() Widget {
	if p := n.parent.Value(); p != nil {
		return p.self
	}
	return nil
}

// Root returns the top-most ancestor, which is the widget itself when it has
// no parent.
func (n *Node) Root() Widget {
	cur := n
	for {
		p := cur.parent.Value()
		if p == nil {
			return cur.self
		}
		cur = p
	}
}

func (n *Node) Enabled() bool           { return n.enabled }
func (n *Node) SetEnabled(enable bool)  { n.enabled = enable }
func (n *Node) Visible() bool           { return n.visible }
func (n *Node) SetVisible(visible bool) { n.visible = visible }

// Padding returns the sum of the padding on the requested edges.
func (n *Node) Padding(dir Direction) int {
	sum := 0
	if dir&N != 0 {
		sum += n.padN
	}
	if dir&S != 0 {
		sum += n.padS
	}
	if dir&E != 0 {
		sum += n.padE
	}
	if dir&W != 0 {
		sum += n.padW
	}
	return sum
}

// SetPadding sets every requested edge to size.
func (n *Node) SetPadding(dir Direction, size int) {
	if dir&N != 0 {
		n.padN = size
	}
	if dir&S != 0 {
		n.padS = size
	}
	if dir&E != 0 {
		n.padE = size
	}
	if dir&W != 0 {
		n.padW = size
	}
}

func (n *Node) MinW() int              { return n.minW }
func (n *Node) MinH() int              { return n.minH }
func (n *Node) MinSize() (int, int)    { return n.minW, n.minH }
func (n *Node) SetMinW(w int)          { n.minW = w }
func (n *Node) SetMinH(h int)          { n.minH = h }
func (n *Node) SetMinSize(w, h int)    { n.minW, n.minH = w, h }
func (n *Node) Anchors() Direction     { return n.anchors }
func (n *Node) SetAnchors(a Direction) { n.anchors = a & NSEW }
func (n *Node) DrawRect() render.Rect  { return n.drawRect }

// LaidOut reports whether DrawRect has been computed at least once.
func (n *Node) LaidOut() bool { return n.laidOut }

// SetDrawRect derives the draw rect from a bounding box, honouring padding,
// minimum size and anchors. Space beyond the minimum goes to the widget on an
// axis only when both opposing anchors are set; otherwise the widget sticks to
// its anchored edge, or is centred when neither edge is anchored.
func (n *Node) SetDrawRect(bound render.Rect) {
	width := n.padE + n.padW + n.minW
	height := n.padN + n.padS + n.minH
	extraW := max(bound.W-width, 0)
	extraH := max(bound.H-height, 0)

	switch {
	case n.anchors&W != 0:
		n.drawRect.X = bound.X + n.padE
	case n.anchors&E != 0:
		n.drawRect.X = bound.X + n.padE + extraW
	default:
		n.drawRect.X = bound.X + n.padE + extraW/2
	}

	switch {
	case n.anchors&N != 0:
		n.drawRect.Y = bound.Y + n.padN
	case n.anchors&S != 0:
		n.drawRect.Y = bound.Y + n.padN + extraH
	default:
		n.drawRect.Y = bound.Y + n.padN + extraH/2
	}

	n.drawRect.W = n.minW
	if n.anchors.Has(EW) {
		n.drawRect.W += extraW
	}
	n.drawRect.H = n.minH
	if n.anchors.Has(NS) {
		n.drawRect.H += extraH
	}
	n.laidOut = true
}

// Contains reports whether the absolute point lies inside the draw rect.
func (n *Node) Contains(abs render.Point) bool { return n.drawRect.Contains(abs) }

// ToAbs converts a point relative to the draw rect origin to absolute
// coordinates and reports whether it lies inside the draw rect.
func (n *Node) ToAbs(rel render.Point) (render.Point, bool) {
	abs := render.Point{X: rel.X + n.drawRect.X, Y: rel.Y + n.drawRect.Y}
	return abs, n.Contains(abs)
}

// ToRel converts an absolute point to draw rect relative coordinates and
// reports whether it lies inside the draw rect.
func (n *Node) ToRel(abs render.Point) (render.Point, bool) {
	rel := render.Point{X: abs.X - n.drawRect.X, Y: abs.Y - n.drawRect.Y}
	return rel, n.Contains(abs)
}

// Leaf defaults. Containers override the child primitives; any widget may
// override the hooks.

func (n *Node) HasChildren() bool                            { return false }
func (n *Node) HasChild(Widget) bool                         { return false }
func (n *Node) FirstChild(Widget) Widget                     { return nil }
func (n *Node) NextChild(Widget, Widget) Widget              { return nil }
func (n *Node) RenderUpdate(*render.Canvas)                  {}
func (n *Node) Draw(*render.Canvas) error                    { return nil }
func (n *Node) Resize(*render.Canvas)                        {}
func (n *Node) TakeFocus(*render.Canvas) bool                { return false }
func (n *Node) LoseFocus(*render.Canvas)                     {}
func (n *Node) HandleEvent(*render.Canvas, tcell.Event) bool { return false }
