// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package view

import "errors"

// Common errors returned by view handles.
var (
	// ErrReleased is returned when operations are attempted on a released view.
	ErrReleased = errors.New("view: view is released")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("view: invalid dimensions")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("view: nil DeviceProvider")
)

// View is an opaque platform view handle.
//
// Handles are created by a surface (or its presenter), cached, and retained
// for the surface's lifetime. External code receives a borrowed reference;
// ownership stays with the surface.
type View interface {
	// Width returns the view width in pixels.
	Width() int

	// Height returns the view height in pixels.
	Height() int

	// Resize changes the view dimensions.
	// Existing content may be discarded or rescaled depending on the
	// implementation.
	Resize(width, height int) error

	// Release frees resources associated with the view.
	// Release is idempotent; multiple calls are safe.
	Release()
}
