// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// TextEngine measures paragraph text by shaping it with
// go-text/typesetting's HarfBuzz implementation and greedily wrapping the
// shaped words at the maximum width.
//
// TextEngine is safe for concurrent use. The parsed font is read-only;
// HarfbuzzShaper instances have internal mutable state and are pooled, and
// a lightweight font.Face is created per shaping call.
type TextEngine struct {
	font *Font

	// shaperPool pools HarfbuzzShaper instances: they are not safe for
	// concurrent use, but reuse across sequential calls avoids buffer
	// reallocation.
	shaperPool sync.Pool

	cache *measureCache
}

// NewTextEngine creates a text measurement engine for the given font.
func NewTextEngine(f *Font) *TextEngine {
	return &TextEngine{
		font: f,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		cache: newMeasureCache(defaultCacheCapacity),
	}
}

// Measure implements Engine.
func (e *TextEngine) Measure(p Paragraph, c Constraints) (Extent, error) {
	if e.font == nil {
		return Extent{}, ErrNoFont
	}
	c = c.Normalize()
	if p.Text == "" {
		return c.Constrain(Extent{}), nil
	}

	key := newMeasureKey(p.Text, e.font.id, p.fontSize(), c.MaxWidth, p.resolve())
	if ext, ok := e.cache.get(key); ok {
		return c.Constrain(ext), nil
	}

	ext := e.measure(p, c.MaxWidth)
	e.cache.set(key, ext)
	return c.Constrain(ext), nil
}

// CacheStats returns hit/miss statistics of the measurement cache.
func (e *TextEngine) CacheStats() (hits, misses uint64) {
	return e.cache.stats()
}

// measure computes the unclamped extent of the paragraph wrapped at
// maxWidth.
func (e *TextEngine) measure(p Paragraph, maxWidth float64) Extent {
	size := p.fontSize()
	dir := mapDirection(p.resolve())

	spaceWidth, lineHeight := e.shapeAdvance(" ", size, dir)
	if p.LineHeight > 0 {
		lineHeight = p.LineHeight
	}

	var width float64
	var lines int

	// Hard breaks are respected; each segment wraps independently.
	for _, hard := range strings.Split(p.Text, "\n") {
		hard = strings.TrimSuffix(hard, "\r")
		if hard == "" {
			lines++
			continue
		}

		words := strings.Fields(hard)
		if len(words) == 0 {
			lines++
			continue
		}

		var lineWidth float64
		lines++
		for _, word := range words {
			wordWidth, _ := e.shapeAdvance(word, size, dir)
			switch {
			case lineWidth == 0:
				lineWidth = wordWidth
			case lineWidth+spaceWidth+wordWidth <= maxWidth:
				lineWidth += spaceWidth + wordWidth
			default:
				// Greedy break. A single word wider than maxWidth stays on
				// its own line and overflows; the caller's constraint clamp
				// bounds the reported width.
				width = maxFloat(width, lineWidth)
				lineWidth = wordWidth
				lines++
			}
		}
		width = maxFloat(width, lineWidth)
	}

	return Extent{
		Width:  width,
		Height: float64(lines) * lineHeight,
	}
}

// shapeAdvance shapes a single run and returns its total advance and the
// font-derived line height at the given size.
func (e *TextEngine) shapeAdvance(text string, size float64, dir di.Direction) (advance, lineHeight float64) {
	runes := []rune(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(e.font.parsed),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := e.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	e.shaperPool.Put(shaper)

	for _, g := range output.Glyphs {
		advance += fixedToFloat(g.Advance)
	}

	// LineBounds descent is negative (below the baseline).
	lineHeight = fixedToFloat(output.LineBounds.Ascent) -
		fixedToFloat(output.LineBounds.Descent) +
		fixedToFloat(output.LineBounds.Gap)
	if lineHeight <= 0 {
		lineHeight = size * defaultLineHeightFactor
	}
	return advance, lineHeight
}

// defaultLineHeightFactor approximates line height when the font reports no
// usable metrics.
const defaultLineHeightFactor = 1.2

// mapDirection converts a layout Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; mixed-script text should
// be split into runs by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
