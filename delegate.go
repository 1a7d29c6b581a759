// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

// Delegate observes stage changes of a Surface.
//
// The delegate slot is a non-owning observation link: the surface holds at
// most one delegate, never assumes it is set, and the owner revokes it with
// SetDelegate(nil) on teardown. Callbacks are synchronous and happen after
// the stage flags are updated, so reading s.Stage() from inside a callback
// observes the new value.
type Delegate interface {
	SurfaceDidChangeStage(s *Surface, stage Stage)
}

// IntrinsicSizeObserver is an optional Delegate extension notified when an
// internal layout pass produces a new intrinsic size.
type IntrinsicSizeObserver interface {
	SurfaceDidChangeIntrinsicSize(s *Surface, size Size)
}
