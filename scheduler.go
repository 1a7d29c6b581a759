// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "sync"

// Scheduler dispatches work onto the context that owns platform views.
//
// View creation is main-thread-affine on most platforms. The surface does
// not hardcode any threading runtime; instead it routes view creation
// through its Scheduler, and the platform integration decides what "main"
// means. Headless and test setups use ImmediateScheduler.
type Scheduler interface {
	// RunSync runs fn on the scheduler's context and waits for it to finish.
	RunSync(fn func())
}

// ImmediateScheduler runs work inline on the calling goroutine.
// Suitable when the caller already is the UI context, and for tests.
type ImmediateScheduler struct{}

// RunSync implements Scheduler.
func (ImmediateScheduler) RunSync(fn func()) {
	fn()
}

// LoopScheduler pins work to a single goroutine, typically the platform UI
// loop. The owner calls Run from that goroutine; RunSync posts work to it
// from anywhere else.
//
// RunSync must not be called from inside the loop itself: a task that posts
// synchronous work back to its own loop would deadlock.
type LoopScheduler struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoopScheduler creates a scheduler whose loop has not started yet.
func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{
		tasks: make(chan func()),
		done:  make(chan struct{}),
	}
}

// Run processes tasks until Close is called.
// It must be called from the goroutine that should own the work.
func (s *LoopScheduler) Run() {
	for {
		select {
		case fn := <-s.tasks:
			fn()
		case <-s.done:
			return
		}
	}
}

// RunSync implements Scheduler. If the scheduler is closed the task is
// dropped; callers needing stronger guarantees should not close the
// scheduler while surfaces still use it.
func (s *LoopScheduler) RunSync(fn func()) {
	finished := make(chan struct{})
	select {
	case s.tasks <- func() {
		fn()
		close(finished)
	}:
	case <-s.done:
		return
	}
	select {
	case <-finished:
	case <-s.done:
	}
}

// Close stops the loop. Idempotent.
func (s *LoopScheduler) Close() {
	s.once.Do(func() {
		close(s.done)
	})
}
