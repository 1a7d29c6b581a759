// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/gogpu/surface/view"

// Presenter drives the underlying application runtime for a Surface.
//
// The Surface owns lifecycle bookkeeping; the Presenter owns the actual
// work: starting and stopping runtime resources, and measuring content.
// Presenters report progress back by calling SetStage/UnsetStage and
// UpdateIntrinsicSize on the surface, usually from their own goroutines.
type Presenter interface {
	// StartSurface initializes runtime resources for the surface.
	// It is called with the Started stage already set; further stage
	// advancement is the presenter's responsibility and may be asynchronous.
	StartSurface(s *Surface) error

	// StopSurface tears down runtime resources for the surface.
	// It is called before the stage mask is replaced with StageStopped.
	StopSurface(s *Surface) error

	// Measure computes the size the surface's content would occupy under the
	// given constraints. It must be synchronous, side-effect-free and safe to
	// call concurrently with StartSurface/StopSurface.
	Measure(tag Tag, minimum, maximum Size) (Size, error)
}

// ViewFactory is an optional Presenter extension. When implemented, the
// surface asks the presenter for its platform view handle instead of
// creating a default CPU image view.
type ViewFactory interface {
	// CreateView returns the view handle for the surface, or nil to fall
	// back to the default. Called on the surface's scheduler, at most once
	// per surface.
	CreateView(s *Surface) view.View
}

// ConstraintsObserver is an optional Presenter extension notified when the
// applied size constraints of a running surface change, so the presenter can
// schedule a new layout pass.
type ConstraintsObserver interface {
	SurfaceDidUpdateConstraints(s *Surface, minimum, maximum Size)
}

// PropertiesObserver is an optional Presenter extension notified when the
// property bag of a running surface is replaced, so the presenter can
// re-drive the application content.
type PropertiesObserver interface {
	SurfaceDidUpdateProperties(s *Surface, properties map[string]any)
}
