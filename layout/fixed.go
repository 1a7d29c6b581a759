// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"math"
	"strings"
)

// FixedEngine measures text from fixed per-rune metrics instead of real
// font data. Widths assume a uniform advance of FontSize*0.6 and line
// height of FontSize*1.2, which tracks common Latin fonts closely enough
// for placeholder layout.
//
// FixedEngine needs no font assets, making it the engine of choice for
// tests and headless environments. It is stateless and safe for concurrent
// use.
type FixedEngine struct{}

// NewFixedEngine creates a metrics-free measurement engine.
func NewFixedEngine() *FixedEngine {
	return &FixedEngine{}
}

// Advance and line-height factors relative to font size.
const (
	fixedAdvanceFactor = 0.6
	fixedLineFactor    = 1.2
)

// Measure implements Engine.
func (e *FixedEngine) Measure(p Paragraph, c Constraints) (Extent, error) {
	c = c.Normalize()
	if p.Text == "" {
		return c.Constrain(Extent{}), nil
	}

	size := p.fontSize()
	advance := size * fixedAdvanceFactor
	lineHeight := p.LineHeight
	if lineHeight <= 0 {
		lineHeight = size * fixedLineFactor
	}

	// Runes per line under the width limit; at least one so measurement
	// always terminates. Converting a huge ratio to int is undefined, so
	// widths that cannot wrap anything stay unbounded.
	perLine := math.MaxInt
	if ratio := c.MaxWidth / advance; ratio < float64(math.MaxInt) {
		perLine = int(ratio)
		if perLine < 1 {
			perLine = 1
		}
	}

	var width float64
	var lines int
	for _, hard := range strings.Split(p.Text, "\n") {
		hard = strings.TrimSuffix(hard, "\r")
		runes := len([]rune(hard))
		if runes == 0 {
			lines++
			continue
		}
		segLines := 1
		if runes > perLine {
			segLines = (runes + perLine - 1) / perLine
		}
		lines += segLines
		longest := runes
		if longest > perLine {
			longest = perLine
		}
		width = math.Max(width, float64(longest)*advance)
	}

	return c.Constrain(Extent{
		Width:  width,
		Height: float64(lines) * lineHeight,
	}), nil
}
