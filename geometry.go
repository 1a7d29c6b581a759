// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "math"

// Unbounded is the maximum-size default for an unconstrained dimension.
const Unbounded = math.MaxFloat64

// Size is a 2D extent in logical pixels.
type Size struct {
	Width, Height float64
}

// Sz creates a Size from width and height.
func Sz(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// UnboundedSize returns a Size with both dimensions unbounded.
func UnboundedSize() Size {
	return Size{Width: Unbounded, Height: Unbounded}
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// SizeConstraints is a minimum/maximum bound pair for layout.
//
// The pair is always read and written as one unit: Surface keeps it behind a
// single lock so no reader ever observes a mixed old-minimum/new-maximum
// state. The zero minimum means "no lower bound"; an Unbounded maximum means
// "no upper bound".
type SizeConstraints struct {
	Minimum Size
	Maximum Size
}

// Unconstrained returns constraints with a zero minimum and an unbounded
// maximum.
func Unconstrained() SizeConstraints {
	return SizeConstraints{Maximum: UnboundedSize()}
}

// Exact returns constraints pinning both bounds to size.
func Exact(size Size) SizeConstraints {
	return SizeConstraints{Minimum: size, Maximum: size}
}

// Normalize returns a copy with each maximum dimension clamped up to its
// minimum. A minimum above the maximum is a caller contract violation;
// clamping keeps layout responsive instead of failing.
func (c SizeConstraints) Normalize() SizeConstraints {
	if c.Maximum.Width < c.Minimum.Width {
		c.Maximum.Width = c.Minimum.Width
	}
	if c.Maximum.Height < c.Minimum.Height {
		c.Maximum.Height = c.Minimum.Height
	}
	return c
}

// Constrain clamps size into the [Minimum, Maximum] range component-wise.
func (c SizeConstraints) Constrain(size Size) Size {
	size.Width = math.Min(math.Max(size.Width, c.Minimum.Width), c.Maximum.Width)
	size.Height = math.Min(math.Max(size.Height, c.Minimum.Height), c.Maximum.Height)
	return size
}
