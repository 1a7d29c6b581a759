// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package view

import (
	"errors"
	"image/color"
	"testing"
)

func TestNewImageClampsDimensions(t *testing.T) {
	v := NewImage(0, -5)
	if v.Width() != 1 || v.Height() != 1 {
		t.Errorf("extent = %dx%d, want 1x1", v.Width(), v.Height())
	}
}

func TestImageViewResize(t *testing.T) {
	v := NewImage(10, 10)
	if err := v.Resize(20, 30); err != nil {
		t.Fatalf("Resize() = %v", err)
	}
	if v.Width() != 20 || v.Height() != 30 {
		t.Errorf("extent = %dx%d, want 20x30", v.Width(), v.Height())
	}

	if err := v.Resize(0, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0, 10) = %v, want ErrInvalidDimensions", err)
	}

	// Same-size resize is a no-op preserving the backing image.
	before := v.Image()
	if err := v.Resize(20, 30); err != nil {
		t.Fatalf("Resize() = %v", err)
	}
	if v.Image() != before {
		t.Error("same-size Resize replaced the backing image")
	}
}

func TestImageViewResizePreservesContent(t *testing.T) {
	v := NewImage(4, 4)
	v.Clear(color.RGBA{R: 255, A: 255})

	if err := v.Resize(8, 8); err != nil {
		t.Fatalf("Resize() = %v", err)
	}

	// Rescaled content keeps the fill.
	r, _, _, a := v.Image().At(4, 4).RGBA()
	if r == 0 || a == 0 {
		t.Error("resize dropped the previous content")
	}
}

func TestImageViewClearAndSnapshot(t *testing.T) {
	v := NewImage(2, 2)
	v.Clear(color.RGBA{G: 255, A: 255})

	snap := v.Snapshot()
	if snap == nil {
		t.Fatal("Snapshot() = nil")
	}
	_, g, _, _ := snap.At(1, 1).RGBA()
	if g == 0 {
		t.Error("snapshot missing the cleared fill")
	}

	// The snapshot is a copy: mutating it leaves the view untouched.
	snap.Set(0, 0, color.RGBA{B: 255, A: 255})
	_, _, b, _ := v.Image().At(0, 0).RGBA()
	if b != 0 {
		t.Error("snapshot shares memory with the view")
	}
}

func TestImageViewRelease(t *testing.T) {
	v := NewImage(5, 5)
	v.Release()
	v.Release() // idempotent

	if v.Width() != 0 || v.Height() != 0 {
		t.Errorf("extent after release = %dx%d, want 0x0", v.Width(), v.Height())
	}
	if v.Image() != nil {
		t.Error("Image() != nil after release")
	}
	if v.Snapshot() != nil {
		t.Error("Snapshot() != nil after release")
	}
	if err := v.Resize(10, 10); !errors.Is(err, ErrReleased) {
		t.Errorf("Resize after release = %v, want ErrReleased", err)
	}
	// Clear after release must not panic.
	v.Clear(color.White)
}
