// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/errors.go
// Summary: Sentinel errors reported by the engine.

package engine

import "errors"

var (
	// ErrEngineExists is returned by New while another engine is open.
	ErrEngineExists = errors.New("engine: another engine is already open")
	// ErrQueueClosed is returned when the event queue shut down under a
	// running loop or a poster.
	ErrQueueClosed = errors.New("engine: event queue closed")
	// ErrWindowClosed is returned by operations on a removed window.
	ErrWindowClosed = errors.New("engine: window closed")
	// ErrNotShown is returned when a widget is not part of any window's tree.
	ErrNotShown = errors.New("engine: widget is not shown in any window")
)
