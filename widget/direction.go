// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/direction.go
// Summary: Compass direction bitmask used for padding edges and anchors.

package widget

import "strings"

// Direction is a set of compass edges.
type Direction uint8

const (
	N Direction = 1 << iota
	S
	E
	W

	None Direction = 0
	NS             = N | S
	EW             = E | W
	NE             = N | E
	NW             = N | W
	SE             = S | E
	SW             = S | W
	NSE            = N | S | E
	NSW            = N | S | W
	NEW            = N | E | W
	SEW            = S | E | W
	NSEW           = N | S | E | W
)

// Has reports whether every edge in o is set in d.
func (d Direction) Has(o Direction) bool { return d&o == o }

func (d Direction) String() string {
	if d&NSEW == None {
		return "none"
	}
	var b strings.Builder
	for _, e := range []struct {
		d Direction
		s string
	}{{N, "n"}, {S, "s"}, {E, "e"}, {W, "w"}} {
		if d&e.d != 0 {
			b.WriteString(e.s)
		}
	}
	return b.String()
}
