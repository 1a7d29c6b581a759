// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"errors"
	"math"
)

// Unbounded is the maximum-constraint default for an unconstrained dimension.
const Unbounded = math.MaxFloat64

// Errors returned by engines.
var (
	// ErrNoFont is returned by TextEngine when it was created without a font.
	ErrNoFont = errors.New("layout: no font configured")
)

// Extent is a measured 2D size in logical pixels.
type Extent struct {
	Width, Height float64
}

// Constraints bound a measurement.
// Zero minimums mean "no lower bound"; Unbounded maximums mean "no upper
// bound".
type Constraints struct {
	MinWidth, MinHeight float64
	MaxWidth, MaxHeight float64
}

// Unconstrained returns constraints with zero minimums and unbounded
// maximums.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// Normalize returns a copy with each maximum clamped up to its minimum.
func (c Constraints) Normalize() Constraints {
	if c.MaxWidth < c.MinWidth {
		c.MaxWidth = c.MinWidth
	}
	if c.MaxHeight < c.MinHeight {
		c.MaxHeight = c.MinHeight
	}
	return c
}

// Constrain clamps an extent into the constraint range component-wise.
func (c Constraints) Constrain(e Extent) Extent {
	e.Width = math.Min(math.Max(e.Width, c.MinWidth), c.MaxWidth)
	e.Height = math.Min(math.Max(e.Height, c.MinHeight), c.MaxHeight)
	return e
}

// Paragraph is the content unit engines measure: a run of text with
// uniform styling.
type Paragraph struct {
	// Text is the paragraph content. Hard line breaks are respected.
	Text string

	// FontSize is the font size in logical pixels. Zero means DefaultFontSize.
	FontSize float64

	// LineHeight overrides the font-derived line height when positive.
	LineHeight float64

	// Direction is the base text direction. DirectionAuto detects it from
	// the content.
	Direction Direction
}

// DefaultFontSize is used when Paragraph.FontSize is zero.
const DefaultFontSize = 14

// fontSize returns the effective font size.
func (p Paragraph) fontSize() float64 {
	if p.FontSize > 0 {
		return p.FontSize
	}
	return DefaultFontSize
}

// Engine measures content under constraints.
//
// Measure must be synchronous, free of side effects on the engine's
// observable state, and safe for concurrent use from multiple goroutines.
type Engine interface {
	Measure(p Paragraph, c Constraints) (Extent, error)
}
