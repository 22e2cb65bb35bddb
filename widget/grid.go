// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/grid.go
// Summary: Grid container placing children in weighted rows and columns.
// Usage: g := widget.NewGrid(); g.Attach(child, row, col, rowSpan, colSpan);
// g.SetColWeight(col, weight).

package widget

import "github.com/framegrace/texelgrid/render"

type gridChild struct {
	w                Widget
	row, col         int
	rowSpan, colSpan int
}

// Grid lays out its children on a table of rows and columns. Tracks are
// sized to fit their single-span children, widened for spanning children,
// and then share any surplus by weight.
type Grid struct {
	*Node

	children  []gridChild
	rowWeight []int
	colWeight []int

	colWidths  []int
	rowHeights []int
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	g := &Grid{}
	g.Node = NewNode(g)
	return g
}

// Attach claims child and places it at (row, col). Negative positions are
// clamped to 0 and spans below 1 to 1. It returns false, leaving the grid
// unchanged, when the child cannot be claimed.
func (g *Grid) Attach(child Widget, row, col, rowSpan, colSpan int) bool {
	if child == nil {
		return false
	}
	gc := gridChild{
		w:       child,
		row:     max(row, 0),
		col:     max(col, 0),
		rowSpan: max(rowSpan, 1),
		colSpan: max(colSpan, 1),
	}
	g.children = append(g.children, gc)
	if !Claim(g, child) {
		g.children = g.children[:len(g.children)-1]
		return false
	}
	g.colWeight = grow(g.colWeight, gc.col+gc.colSpan)
	g.rowWeight = grow(g.rowWeight, gc.row+gc.rowSpan)
	return true
}

// Detach removes child from the grid and releases it. It reports whether the
// child was found.
func (g *Grid) Detach(child Widget) bool {
	for i, gc := range g.children {
		if gc.w == child {
			g.children = append(g.children[:i], g.children[i+1:]...)
			Release(child)
			return true
		}
	}
	return false
}

// Placement returns where child sits in the grid.
func (g *Grid) Placement(child Widget) (row, col, rowSpan, colSpan int, ok bool) {
	for _, gc := range g.children {
		if gc.w == child {
			return gc.row, gc.col, gc.rowSpan, gc.colSpan, true
		}
	}
	return 0, 0, 0, 0, false
}

// SetColWeight sets the weight of column i. Negative indexes are ignored
// and negative weights become 0.
func (g *Grid) SetColWeight(i, weight int) {
	if i < 0 {
		return
	}
	g.colWeight = grow(g.colWeight, i+1)
	g.colWeight[i] = max(weight, 0)
}

// SetRowWeight sets the weight of row i. Negative indexes are ignored and
// negative weights become 0.
func (g *Grid) SetRowWeight(i, weight int) {
	if i < 0 {
		return
	}
	g.rowWeight = grow(g.rowWeight, i+1)
	g.rowWeight[i] = max(weight, 0)
}

func (g *Grid) ColWeight(i int) int {
	if i < 0 || i >= len(g.colWeight) {
		return 0
	}
	return g.colWeight[i]
}

func (g *Grid) RowWeight(i int) int {
	if i < 0 || i >= len(g.rowWeight) {
		return 0
	}
	return g.rowWeight[i]
}

// Layout returns copies of the track sizes computed by the last Resize.
func (g *Grid) Layout() (colWidths, rowHeights []int) {
	return append([]int(nil), g.colWidths...), append([]int(nil), g.rowHeights...)
}

func (g *Grid) HasChildren() bool { return len(g.children) > 0 }

func (g *Grid) HasChild(child Widget) bool {
	for _, gc := range g.children {
		if gc.w == child {
			return true
		}
	}
	return false
}

func (g *Grid) FirstChild(prune Widget) Widget {
	return g.childFrom(0, prune)
}

func (g *Grid) NextChild(after, prune Widget) Widget {
	if after == nil {
		return g.FirstChild(prune)
	}
	for i, gc := range g.children {
		if gc.w == after {
			return g.childFrom(i+1, prune)
		}
	}
	return nil
}

// childFrom returns the child at index i, or the one after it when the
// child at i is prune.
func (g *Grid) childFrom(i int, prune Widget) Widget {
	if i >= len(g.children) {
		return nil
	}
	if w := g.children[i].w; w != prune {
		return w
	}
	if i+1 >= len(g.children) {
		return nil
	}
	return g.children[i+1].w
}

// Resize sizes the tracks for the current draw rect, then lays out and
// resizes every child.
func (g *Grid) Resize(c *render.Canvas) {
	cols := make([]int, len(g.colWeight))
	rows := make([]int, len(g.rowWeight))
	colUnits := ones(len(cols))
	rowUnits := ones(len(rows))

	for _, gc := range g.children {
		n := gc.w.Embedded()
		if gc.colSpan == 1 {
			cols[gc.col] = max(cols[gc.col], n.minW+n.Padding(EW))
		}
		if gc.rowSpan == 1 {
			rows[gc.row] = max(rows[gc.row], n.minH+n.Padding(NS))
		}
	}

	for _, gc := range g.children {
		n := gc.w.Embedded()
		if gc.colSpan > 1 {
			widen(cols, g.colWeight, colUnits, gc.col, gc.col+gc.colSpan, n.minW+n.Padding(EW))
		}
		if gc.rowSpan > 1 {
			widen(rows, g.rowWeight, rowUnits, gc.row, gc.row+gc.rowSpan, n.minH+n.Padding(NS))
		}
	}

	if sum, weight := Measure(cols, g.colWeight, 0, len(cols)); weight > 0 && g.drawRect.W > sum {
		Apportion(cols, g.colWeight, 0, len(cols), g.drawRect.W-sum, weight)
	}
	if sum, weight := Measure(rows, g.rowWeight, 0, len(rows)); weight > 0 && g.drawRect.H > sum {
		Apportion(rows, g.rowWeight, 0, len(rows), g.drawRect.H-sum, weight)
	}
	g.colWidths, g.rowHeights = cols, rows

	for _, gc := range g.children {
		bound := render.Rect{X: g.drawRect.X, Y: g.drawRect.Y}
		for i := 0; i < gc.col+gc.colSpan; i++ {
			if i < gc.col {
				bound.X += cols[i]
			} else {
				bound.W += cols[i]
			}
		}
		for i := 0; i < gc.row+gc.rowSpan; i++ {
			if i < gc.row {
				bound.Y += rows[i]
			} else {
				bound.H += rows[i]
			}
		}
		gc.w.Embedded().SetDrawRect(bound)
		gc.w.Resize(c)
	}
}

// Draw draws the visible children in attach order.
func (g *Grid) Draw(c *render.Canvas) error {
	for _, gc := range g.children {
		if !gc.w.Embedded().Visible() {
			continue
		}
		if err := gc.w.Draw(c); err != nil {
			return err
		}
	}
	return nil
}

// widen grows tracks[lo:hi] so they sum to at least need. The shortfall is
// shared by weight, or evenly when the spanned tracks all weigh 0.
func widen(tracks, weights, units []int, lo, hi, need int) {
	sum, weight := Measure(tracks, weights, lo, hi)
	if need <= sum {
		return
	}
	if weight == 0 {
		Apportion(tracks, units, lo, hi, need-sum, hi-lo)
		return
	}
	Apportion(tracks, weights, lo, hi, need-sum, weight)
}

// Measure sums elems[lo:hi] and weights[lo:hi].
func Measure(elems, weights []int, lo, hi int) (size, weight int) {
	for i := lo; i < hi; i++ {
		size += elems[i]
		weight += weights[i]
	}
	return size, weight
}

// Apportion adds expand to elems[lo:hi] in proportion to weights, where
// total is the sum of weights[lo:hi]. Each element gets expand/total units
// per weight; the remainder is handed out left to right, at most weight
// units per element.
func Apportion(elems, weights []int, lo, hi, expand, total int) {
	if expand <= 0 || total <= 0 {
		return
	}
	each := expand / total
	rem := expand % total
	for i := lo; i < hi; i++ {
		part := min(weights[i], rem)
		elems[i] += each*weights[i] + part
		rem -= part
	}
}

func grow(s []int, n int) []int {
	if len(s) >= n {
		return s
	}
	return append(s, make([]int, n-len(s))...)
}

func ones(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = 1
	}
	return s
}
