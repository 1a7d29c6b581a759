// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package view

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// ErrNoCreator is returned by Present when no texture creator is supplied
// and the texture has not been created yet.
var ErrNoCreator = errors.New("view: no texture creator")

// TextureCreator creates GPU textures from RGBA pixel data.
// The host renderer implements this.
type TextureCreator interface {
	NewTextureFromRGBA(width, height int, data []byte) (any, error)
}

// TextureDrawer draws GPU textures. The host draw context implements this.
type TextureDrawer interface {
	DrawTexture(tex any, x, y float32) error
}

// textureDestroyer is the interface for destroying textures.
type textureDestroyer interface {
	Destroy()
}

// TextureHandle is a GPU-backed view handle.
//
// The handle receives its GPU device from the host application through a
// gpucontext.DeviceProvider; it never creates a device itself. The actual
// texture is created lazily on first Present, because creation needs the
// host's renderer.
//
// TextureHandle is safe for concurrent use, but Present must be called
// from the host's render context.
type TextureHandle struct {
	provider gpucontext.DeviceProvider

	mu         sync.Mutex
	width      int
	height     int
	data       []byte // pending RGBA pixels, nil when nothing staged
	texture    any    // lazily created host texture
	oldTexture any    // previous texture awaiting deferred destruction
	released   bool
}

// NewTexture creates a GPU view handle bound to the given provider.
func NewTexture(provider gpucontext.DeviceProvider, width, height int) (*TextureHandle, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &TextureHandle{
		provider: provider,
		width:    width,
		height:   height,
	}, nil
}

// Provider returns the DeviceProvider the handle is bound to.
func (h *TextureHandle) Provider() gpucontext.DeviceProvider {
	return h.provider
}

// Format returns the pixel format of the host surface.
func (h *TextureHandle) Format() gputypes.TextureFormat {
	return h.provider.SurfaceFormat()
}

// Width implements View.
func (h *TextureHandle) Width() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.width
}

// Height implements View.
func (h *TextureHandle) Height() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.height
}

// Resize implements View. The current texture is retired and recreated on
// the next Present; destruction of the old texture is deferred until the
// replacement has been uploaded, so the GPU never reads freed resources.
func (h *TextureHandle) Resize(width, height int) error {
	if width < 1 || height < 1 {
		return ErrInvalidDimensions
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return ErrReleased
	}
	if width == h.width && height == h.height {
		return nil
	}
	h.width = width
	h.height = height
	h.retireLocked()
	h.data = nil
	return nil
}

// SetPixels stages RGBA pixel data (4 bytes per pixel, premultiplied
// alpha) for upload on the next Present. The data length must match the
// current extent.
func (h *TextureHandle) SetPixels(data []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return ErrReleased
	}
	if len(data) != h.width*h.height*4 {
		return fmt.Errorf("%w: got %d bytes for %dx%d", ErrInvalidDimensions, len(data), h.width, h.height)
	}
	h.data = make([]byte, len(data))
	copy(h.data, data)
	return nil
}

// Present creates or updates the GPU texture from the staged pixels and
// draws it at the given position. Present without staged pixels draws the
// existing texture, or is a no-op when none exists yet.
func (h *TextureHandle) Present(dc TextureDrawer, creator TextureCreator, x, y float32) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return ErrReleased
	}

	if h.data != nil {
		if h.texture == nil {
			if creator == nil {
				return ErrNoCreator
			}
			tex, err := creator.NewTextureFromRGBA(h.width, h.height, h.data)
			if err != nil {
				return fmt.Errorf("view: texture creation failed: %w", err)
			}
			h.texture = tex

			// Creation waits for the GPU internally, so the retired
			// texture's resources are no longer in use.
			h.destroyOldLocked()
		} else if updater, ok := h.texture.(gpucontext.TextureUpdater); ok {
			updater.UpdateData(h.data)
		}
		h.data = nil
	}

	if h.texture == nil {
		return nil
	}
	return dc.DrawTexture(h.texture, x, y)
}

// Release implements View. GPU resources are destroyed immediately.
func (h *TextureHandle) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return
	}
	h.released = true
	h.retireLocked()
	h.destroyOldLocked()
	h.data = nil
}

// retireLocked moves the live texture to the deferred-destruction slot,
// destroying any texture already waiting there.
func (h *TextureHandle) retireLocked() {
	if h.texture == nil {
		return
	}
	h.destroyOldLocked()
	h.oldTexture = h.texture
	h.texture = nil
}

func (h *TextureHandle) destroyOldLocked() {
	if h.oldTexture == nil {
		return
	}
	if d, ok := h.oldTexture.(textureDestroyer); ok {
		d.Destroy()
	}
	h.oldTexture = nil
}
