// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/queue.go
// Summary: Bounded event queue shared by the screen pumps, the frame timer and the loop.
// Usage: Producers on any goroutine call push or tryPush; only the loop calls wait.

package engine

import (
	"context"
	"sync"
)

type eventQueue struct {
	ch        chan queued
	done      chan struct{}
	closeOnce sync.Once
}

func newEventQueue(size int) *eventQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &eventQueue{ch: make(chan queued, size), done: make(chan struct{})}
}

// push blocks until the entry is queued or the queue closes.
func (q *eventQueue) push(e queued) error {
	select {
	case <-q.done:
		return ErrQueueClosed
	default:
	}
	select {
	case q.ch <- e:
		return nil
	case <-q.done:
		return ErrQueueClosed
	}
}

// tryPush queues the entry only if there is room.
func (q *eventQueue) tryPush(e queued) bool {
	select {
	case <-q.done:
		return false
	default:
	}
	select {
	case q.ch <- e:
		return true
	default:
		return false
	}
}

// wait returns the next entry. It fails with ctx's error on cancellation and
// with ErrQueueClosed once the queue is closed.
func (q *eventQueue) wait(ctx context.Context) (queued, error) {
	select {
	case e := <-q.ch:
		return e, nil
	case <-ctx.Done():
		return queued{}, ctx.Err()
	case <-q.done:
		return queued{}, ErrQueueClosed
	}
}

// pending reports the number of queued entries.
func (q *eventQueue) pending() int { return len(q.ch) }

func (q *eventQueue) close() {
	q.closeOnce.Do(func() { close(q.done) })
}

func (q *eventQueue) closed() bool {
	select {
	case <-q.done:
		return true
	default:
		return false
	}
}
