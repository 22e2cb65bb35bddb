// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/errors.go
// Summary: Error kind for failures reported by the rendering collaborator.

package render

import (
	"errors"
	"fmt"
)

// ErrCanvasReleased is reported when a canvas is used after the window
// rebuilt or closed it.
var ErrCanvasReleased = errors.New("canvas released")

// Error wraps a failure of the underlying surface with the name of the
// operation that failed.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": unknown failure"
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap returns err wrapped in an *Error for op, or nil when err is nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
