// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Stage is a bitmask describing how far a Surface has progressed through
// initialization, layout and mounting.
//
// Flags are not mutually exclusive: a surface accumulates flags as the
// underlying runtime advances, and a composite stage is considered reached
// when all of its bits are present. Stop replaces the whole mask with
// StageStopped; everything else only adds or removes individual bits.
type Stage uint32

const (
	// StageStarted means the surface lifecycle has been started.
	StageStarted Stage = 1 << iota

	// StageInitialized means the underlying runtime has initialized
	// resources for the surface.
	StageInitialized

	// StageRootViewCreated means the platform view handle exists.
	StageRootViewCreated

	// StageRootNodeCreated means the root content node exists.
	StageRootNodeCreated

	// StageContextReady means the runtime context is attached to the surface.
	StageContextReady

	// StageLaunched means the application content is running.
	StageLaunched

	// StageLayoutComputed means an internal layout pass has completed at the
	// applied size constraints.
	StageLayoutComputed

	// StageMounted means content has been mounted into the view handle.
	StageMounted

	// StageStopped is the terminal flag. Stop replaces the stage mask with
	// exactly this flag; a subsequent Start clears it again.
	StageStopped
)

// StageUnset is the zero stage: no progress flags set.
const StageUnset Stage = 0

// Composite stages.
const (
	// StageRunning means the surface lifecycle is fully up: started,
	// initialized, context attached and content launched.
	StageRunning = StageStarted | StageInitialized | StageContextReady | StageLaunched

	// StageReady means the surface is running and its content has been laid
	// out and mounted, i.e. the view shows something meaningful.
	StageReady = StageRunning | StageLayoutComputed | StageMounted
)

// stageNames maps single flags to their names, in flag order.
var stageNames = []struct {
	flag Stage
	name string
}{
	{StageStarted, "Started"},
	{StageInitialized, "Initialized"},
	{StageRootViewCreated, "RootViewCreated"},
	{StageRootNodeCreated, "RootNodeCreated"},
	{StageContextReady, "ContextReady"},
	{StageLaunched, "Launched"},
	{StageLayoutComputed, "LayoutComputed"},
	{StageMounted, "Mounted"},
	{StageStopped, "Stopped"},
}

// String returns a "|"-separated list of the set flags, or "Unset".
func (s Stage) String() string {
	if s == StageUnset {
		return "Unset"
	}
	var b strings.Builder
	for _, n := range stageNames {
		if s&n.flag == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(n.name)
	}
	if b.Len() == 0 {
		return "Unknown"
	}
	return b.String()
}

// Has reports whether all bits of flags are present in s.
func (s Stage) Has(flags Stage) bool {
	return s&flags == flags
}

// Machine tracks stage flags for one surface.
//
// All operations are atomic and safe to call from any goroutine; none of
// them blocks except Wait, which blocks only the calling goroutine and only
// up to the given timeout. The zero Machine is ready to use with an Unset
// stage.
type Machine struct {
	bits atomic.Uint32

	// mu guards changed. The channel is closed on every observable change
	// and lazily recreated by the next waiter, so mutations never block on
	// waiter bookkeeping.
	mu      sync.Mutex
	changed chan struct{}
}

// Set ORs the given flags into the current stage.
// It returns true if any new bit was actually set.
func (m *Machine) Set(flags Stage) bool {
	for {
		old := m.bits.Load()
		next := old | uint32(flags)
		if next == old {
			return false
		}
		if m.bits.CompareAndSwap(old, next) {
			m.signal()
			return true
		}
	}
}

// Unset clears the given flags from the current stage.
// It returns true if any bit was actually cleared.
func (m *Machine) Unset(flags Stage) bool {
	for {
		old := m.bits.Load()
		next := old &^ uint32(flags)
		if next == old {
			return false
		}
		if m.bits.CompareAndSwap(old, next) {
			m.signal()
			return true
		}
	}
}

// Replace stores flags as the entire stage mask and returns the previous
// stage. Used by Start and Stop, which reset rather than accumulate.
func (m *Machine) Replace(flags Stage) Stage {
	prev := Stage(m.bits.Swap(uint32(flags)))
	if prev != flags {
		m.signal()
	}
	return prev
}

// Current returns the current stage mask.
func (m *Machine) Current() Stage {
	return Stage(m.bits.Load())
}

// HasReached reports whether all bits of flags are present in the current
// stage. HasReached(StageUnset) is always true.
func (m *Machine) HasReached(flags Stage) bool {
	return m.Current().Has(flags)
}

// Wait blocks until HasReached(flags) or the timeout elapses, and reports
// whether the stage was reached. A non-positive timeout checks once and
// returns immediately.
func (m *Machine) Wait(flags Stage, timeout time.Duration) bool {
	if m.HasReached(flags) {
		return true
	}
	if timeout <= 0 {
		return false
	}
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for {
		ch := m.waitCh()
		// Re-check after arming the channel so a change between the first
		// check and waitCh is not missed.
		if m.HasReached(flags) {
			return true
		}
		select {
		case <-ch:
			if m.HasReached(flags) {
				return true
			}
		case <-deadline.C:
			return m.HasReached(flags)
		}
	}
}

// signal wakes all current waiters by closing the change channel.
func (m *Machine) signal() {
	m.mu.Lock()
	if m.changed != nil {
		close(m.changed)
		m.changed = nil
	}
	m.mu.Unlock()
}

// waitCh returns a channel that is closed on the next stage change.
func (m *Machine) waitCh() <-chan struct{} {
	m.mu.Lock()
	if m.changed == nil {
		m.changed = make(chan struct{})
	}
	ch := m.changed
	m.mu.Unlock()
	return ch
}
