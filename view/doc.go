// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package view provides platform view handles for surfaces.
//
// A view handle is the opaque container a surface creates lazily and caches
// for its lifetime. The surface guarantees stable identity (repeated View
// calls return the same handle) but exercises no control over the handle's
// size or position: some superview or window owner is responsible for that.
//
// Two handle kinds are provided:
//
//   - ImageView renders into a CPU-backed *image.RGBA. It is the default
//     handle and works headless.
//   - TextureHandle binds to a GPU device via gpucontext.DeviceProvider and
//     presents through gpucontext's texture interfaces. The handle RECEIVES
//     the device from the host application; it never creates one.
package view
