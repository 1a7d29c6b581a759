// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import "testing"

func TestDetectBaseDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Direction
	}{
		{"latin", "hello world", DirectionLTR},
		{"arabic", "مرحبا بالعالم", DirectionRTL},
		{"hebrew", "שלום", DirectionRTL},
		{"empty", "", DirectionLTR},
		{"digits only", "12345", DirectionLTR},
		{"mixed leading latin", "hello مرحبا", DirectionLTR},
		{"mixed leading arabic", "مرحبا hello", DirectionRTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectBaseDirection(tt.text); got != tt.want {
				t.Errorf("DetectBaseDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParagraphResolve(t *testing.T) {
	p := Paragraph{Text: "שלום", Direction: DirectionLTR}
	if got := p.resolve(); got != DirectionLTR {
		t.Errorf("explicit direction resolved to %v, want LTR", got)
	}

	p.Direction = DirectionAuto
	if got := p.resolve(); got != DirectionRTL {
		t.Errorf("auto direction resolved to %v, want RTL", got)
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{DirectionAuto, "Auto"},
		{DirectionLTR, "LTR"},
		{DirectionRTL, "RTL"},
		{Direction(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}
