// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/timer.go
// Summary: Frame timer that queues AnimateEvent ticks.
// Usage: The timer goroutine never touches windows or widgets; it only queues events.

package engine

import (
	"sync"
	"time"
)

type frameTimer struct {
	stop chan struct{}
	wg   sync.WaitGroup
}

// startFrameTimer ticks fps times per second until stopped. It returns nil
// when fps is not positive.
func startFrameTimer(fps int, q *eventQueue) *frameTimer {
	if fps <= 0 {
		return nil
	}
	t := &frameTimer{stop: make(chan struct{})}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-ticker.C:
				// A full queue drops the tick.
				q.tryPush(queued{ev: newAnimateEvent()})
			}
		}
	}()
	return t
}

// Stop halts the timer and waits for its goroutine. Safe on a nil timer.
func (t *frameTimer) Stop() {
	if t == nil {
		return
	}
	close(t.stop)
	t.wg.Wait()
}
