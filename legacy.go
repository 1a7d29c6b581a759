// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

// Bridge is the legacy host abstraction that owned a presenter before
// presenters became first-class. It exists only to support the deprecated
// construction path.
type Bridge interface {
	// SurfacePresenter returns the presenter owned by the bridge.
	SurfacePresenter() Presenter
}

// NewWithBridge creates a Surface through a legacy bridge.
// It adapts to the same coordinator as New.
//
// Deprecated: Use New with the bridge's presenter instead.
func NewWithBridge(bridge Bridge, moduleName string, initialProperties map[string]any) *Surface {
	return New(bridge.SurfacePresenter(), moduleName, initialProperties)
}

// RootViewTag returns the root tag as a plain integer.
//
// Deprecated: Use RootTag instead.
func (s *Surface) RootViewTag() int64 {
	return int64(s.rootTag)
}
