// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"sync"
	"testing"
)

func TestImmediateSchedulerRunsInline(t *testing.T) {
	ran := false
	ImmediateScheduler{}.RunSync(func() { ran = true })
	if !ran {
		t.Error("RunSync did not run the task")
	}
}

func TestLoopSchedulerRunsOnLoopGoroutine(t *testing.T) {
	s := NewLoopScheduler()
	defer s.Close()

	loopDone := make(chan struct{})
	go func() {
		s.Run()
		close(loopDone)
	}()

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.RunSync(func() {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
			})
		}(i)
	}
	wg.Wait()

	mu.Lock()
	n := len(order)
	mu.Unlock()
	if n != 4 {
		t.Errorf("ran %d tasks, want 4", n)
	}

	s.Close()
	<-loopDone
}

func TestLoopSchedulerRunSyncWaits(t *testing.T) {
	s := NewLoopScheduler()
	defer s.Close()
	go s.Run()

	done := false
	s.RunSync(func() { done = true })
	if !done {
		t.Error("RunSync returned before the task finished")
	}
}

func TestLoopSchedulerClosedDropsTasks(t *testing.T) {
	s := NewLoopScheduler()
	s.Close()
	s.Close() // idempotent

	// Must not block even though no loop is running.
	s.RunSync(func() {
		t.Error("task ran on a closed scheduler")
	})
}
