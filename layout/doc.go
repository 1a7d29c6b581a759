// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package layout provides the measurement engines surfaces delegate to.
//
// An Engine computes the extent a piece of content would occupy under
// minimum/maximum constraints. Measurement is synchronous, side-effect-free
// and safe for concurrent use, which is what the surface coordinator's
// measurement contract requires.
//
// Two engines are provided:
//
//   - TextEngine shapes paragraph text with go-text/typesetting (HarfBuzz
//     shaping: kerning, ligatures, complex scripts), wraps it at the maximum
//     width and derives line height from the font's metrics. Results are
//     memoized in a sharded cache.
//   - FixedEngine estimates from fixed per-rune metrics and needs no font
//     assets. Use it for tests and headless setups.
package layout
