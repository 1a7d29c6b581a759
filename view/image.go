// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package view

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	xdraw "golang.org/x/image/draw"
)

// ImageView is a CPU-backed view handle rendering into an *image.RGBA.
//
// It is the default handle a surface creates when its presenter does not
// supply one, and works without any GPU or window system.
//
// ImageView is safe for concurrent use; each operation locks the handle.
type ImageView struct {
	mu       sync.Mutex
	img      *image.RGBA
	released bool
}

// NewImage creates an image-backed view handle.
// Dimensions below 1 are clamped to 1 so a handle always has a backing
// store, even before constraints are applied.
func NewImage(width, height int) *ImageView {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &ImageView{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width implements View.
func (v *ImageView) Width() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.img == nil {
		return 0
	}
	return v.img.Bounds().Dx()
}

// Height implements View.
func (v *ImageView) Height() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.img == nil {
		return 0
	}
	return v.img.Bounds().Dy()
}

// Resize implements View. Existing content is rescaled to the new extent.
func (v *ImageView) Resize(width, height int) error {
	if width < 1 || height < 1 {
		return ErrInvalidDimensions
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.released {
		return ErrReleased
	}
	if width == v.img.Bounds().Dx() && height == v.img.Bounds().Dy() {
		return nil
	}
	next := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(next, next.Bounds(), v.img, v.img.Bounds(), xdraw.Src, nil)
	v.img = next
	return nil
}

// Release implements View.
func (v *ImageView) Release() {
	v.mu.Lock()
	v.released = true
	v.img = nil
	v.mu.Unlock()
}

// Clear fills the entire view with the given color.
func (v *ImageView) Clear(c color.Color) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.img == nil {
		return
	}
	draw.Draw(v.img, v.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Snapshot returns a copy of the current view contents.
// Returns nil after Release.
func (v *ImageView) Snapshot() *image.RGBA {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.img == nil {
		return nil
	}
	dup := image.NewRGBA(v.img.Bounds())
	copy(dup.Pix, v.img.Pix)
	return dup
}

// Image returns the backing image. The returned image shares memory with
// the view; callers mutating it must not race with Resize or Clear.
// Returns nil after Release.
func (v *ImageView) Image() *image.RGBA {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.img
}
