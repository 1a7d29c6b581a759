// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import "golang.org/x/text/unicode/bidi"

// Direction specifies the base text direction of a paragraph.
type Direction int

const (
	// DirectionAuto detects the base direction from the content.
	DirectionAuto Direction = iota
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionAuto:
		return "Auto"
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return "Unknown"
	}
}

// DetectBaseDirection resolves the base direction of text using the Unicode
// bidirectional algorithm. Text without strong directional characters
// resolves to LTR.
func DetectBaseDirection(text string) Direction {
	if text == "" {
		return DirectionLTR
	}

	p := bidi.Paragraph{}
	_, _ = p.SetString(text, bidi.DefaultDirection(bidi.Neutral))

	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return DirectionLTR
	}

	// Run is returned by value and Direction has a pointer receiver.
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}

// resolve returns the concrete direction for a paragraph.
func (p Paragraph) resolve() Direction {
	if p.Direction == DirectionAuto {
		return DetectBaseDirection(p.Text)
	}
	return p.Direction
}
