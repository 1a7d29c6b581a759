// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"sync"
	"testing"
	"time"
)

// TestMachineSetUnion verifies that consecutive Set calls accumulate bits
// without loss.
func TestMachineSetUnion(t *testing.T) {
	var m Machine

	if !m.Set(StageStarted) {
		t.Error("Set(Started) = false, want true")
	}
	if !m.Set(StageInitialized | StageLaunched) {
		t.Error("Set(Initialized|Launched) = false, want true")
	}

	want := StageStarted | StageInitialized | StageLaunched
	if got := m.Current(); got != want {
		t.Errorf("Current() = %v, want %v", got, want)
	}
}

// TestMachineSetNoOp verifies no-op detection on already-set bits.
func TestMachineSetNoOp(t *testing.T) {
	var m Machine

	m.Set(StageStarted)
	if m.Set(StageStarted) {
		t.Error("Set of an already-set bit = true, want false")
	}
	// A mixed mask with one new bit still reports a change.
	if !m.Set(StageStarted | StageMounted) {
		t.Error("Set with one new bit = false, want true")
	}
}

// TestMachineUnset verifies clearing and its no-op detection.
func TestMachineUnset(t *testing.T) {
	var m Machine

	m.Set(StageStarted | StageInitialized)
	if !m.Unset(StageInitialized) {
		t.Error("Unset(Initialized) = false, want true")
	}
	if m.Unset(StageInitialized) {
		t.Error("Unset of a cleared bit = true, want false")
	}
	if got := m.Current(); got != StageStarted {
		t.Errorf("Current() = %v, want %v", got, StageStarted)
	}
}

// TestMachineHasReached verifies the composite predicate, including the
// always-true Unset case and a never-set composite.
func TestMachineHasReached(t *testing.T) {
	var m Machine

	if !m.HasReached(StageUnset) {
		t.Error("HasReached(Unset) = false, want true")
	}

	m.Set(StageStarted | StageInitialized | StageContextReady | StageLaunched)

	if !m.HasReached(StageRunning) {
		t.Error("HasReached(Running) = false, want true")
	}
	if m.HasReached(StageReady) {
		t.Error("HasReached(Ready) = true before layout/mount, want false")
	}
	if m.HasReached(StageStopped) {
		t.Error("HasReached(Stopped) = true, want false")
	}
}

// TestMachineReplace verifies whole-mask replacement used by start/stop.
func TestMachineReplace(t *testing.T) {
	var m Machine

	m.Set(StageStarted | StageMounted)
	prev := m.Replace(StageStopped)
	if prev != StageStarted|StageMounted {
		t.Errorf("Replace returned %v, want %v", prev, StageStarted|StageMounted)
	}
	if got := m.Current(); got != StageStopped {
		t.Errorf("Current() = %v, want %v", got, StageStopped)
	}
}

// TestMachineConcurrentDisjoint stress-tests concurrent mutation with
// disjoint bit patterns: no torn bits, no lost updates. Run with -race.
func TestMachineConcurrentDisjoint(t *testing.T) {
	var m Machine

	flags := []Stage{
		StageStarted,
		StageInitialized,
		StageRootViewCreated,
		StageRootNodeCreated,
		StageContextReady,
		StageLaunched,
		StageLayoutComputed,
		StageMounted,
	}

	var wg sync.WaitGroup
	for _, flag := range flags {
		wg.Add(1)
		go func(flag Stage) {
			defer wg.Done()
			// Toggle the goroutine's own bit repeatedly; other bits must be
			// unaffected.
			for i := 0; i < 1000; i++ {
				m.Set(flag)
				m.Unset(flag)
			}
			m.Set(flag)
		}(flag)
	}
	wg.Wait()

	var want Stage
	for _, f := range flags {
		want |= f
	}
	if got := m.Current(); got != want {
		t.Errorf("Current() = %v, want %v", got, want)
	}
}

// TestMachineWaitZeroTimeout verifies that a zero timeout never blocks.
func TestMachineWaitZeroTimeout(t *testing.T) {
	var m Machine

	if m.Wait(StageMounted, 0) {
		t.Error("Wait(Mounted, 0) = true on an unset machine, want false")
	}

	m.Set(StageMounted)
	if !m.Wait(StageMounted, 0) {
		t.Error("Wait(Mounted, 0) = false on a reached stage, want true")
	}
}

// TestMachineWaitSignaled verifies that a waiter wakes on a concurrent
// stage change.
func TestMachineWaitSignaled(t *testing.T) {
	var m Machine

	go func() {
		time.Sleep(10 * time.Millisecond)
		m.Set(StageStarted)
		m.Set(StageMounted)
	}()

	if !m.Wait(StageStarted|StageMounted, 5*time.Second) {
		t.Error("Wait did not observe the concurrently set stage")
	}
}

// TestMachineWaitTimeout verifies the timeout path reports "not reached".
func TestMachineWaitTimeout(t *testing.T) {
	var m Machine

	m.Set(StageStarted)
	start := time.Now()
	if m.Wait(StageMounted, 20*time.Millisecond) {
		t.Error("Wait = true for a stage never set, want false")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Wait blocked %v, want bounded by timeout", elapsed)
	}
}

// TestStageString spot-checks the flag formatting.
func TestStageString(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageUnset, "Unset"},
		{StageStarted, "Started"},
		{StageStarted | StageMounted, "Started|Mounted"},
		{StageStopped, "Stopped"},
	}

	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.want)
		}
	}
}
