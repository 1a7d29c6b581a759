// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package layout

import "testing"

// FixedEngine metrics are exact: advance = FontSize*0.6, line = FontSize*1.2.

func TestFixedEngineSingleLine(t *testing.T) {
	e := NewFixedEngine()
	got, err := e.Measure(Paragraph{Text: "hello", FontSize: 10}, Unconstrained())
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	want := Extent{Width: 30, Height: 12}
	if got != want {
		t.Errorf("Measure() = %v, want %v", got, want)
	}
}

func TestFixedEngineWraps(t *testing.T) {
	e := NewFixedEngine()
	// advance 6 at size 10; MaxWidth 12 holds 2 runes per line, so the 5
	// runes of "hello" need 3 lines.
	got, err := e.Measure(Paragraph{Text: "hello", FontSize: 10}, Constraints{
		MaxWidth:  12,
		MaxHeight: Unbounded,
	})
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	want := Extent{Width: 12, Height: 36}
	if got != want {
		t.Errorf("Measure() = %v, want %v", got, want)
	}
}

func TestFixedEngineHardBreaks(t *testing.T) {
	e := NewFixedEngine()
	got, err := e.Measure(Paragraph{Text: "ab\ncdef\r\n\ng", FontSize: 10}, Unconstrained())
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	// Four lines: "ab", "cdef", empty, "g". Width follows the longest.
	want := Extent{Width: 24, Height: 48}
	if got != want {
		t.Errorf("Measure() = %v, want %v", got, want)
	}
}

func TestFixedEngineEmptyText(t *testing.T) {
	e := NewFixedEngine()
	got, err := e.Measure(Paragraph{}, Constraints{
		MinWidth: 5, MinHeight: 7, MaxWidth: Unbounded, MaxHeight: Unbounded,
	})
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	// Empty content still honors the minimums.
	want := Extent{Width: 5, Height: 7}
	if got != want {
		t.Errorf("Measure() = %v, want %v", got, want)
	}
}

func TestFixedEngineLineHeightOverride(t *testing.T) {
	e := NewFixedEngine()
	got, err := e.Measure(Paragraph{Text: "x", FontSize: 10, LineHeight: 20}, Unconstrained())
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if got.Height != 20 {
		t.Errorf("Height = %v, want 20", got.Height)
	}
}

func TestFixedEngineDefaultFontSize(t *testing.T) {
	e := NewFixedEngine()
	got, err := e.Measure(Paragraph{Text: "x"}, Unconstrained())
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	want := Extent{Width: DefaultFontSize * fixedAdvanceFactor, Height: DefaultFontSize * fixedLineFactor}
	if got != want {
		t.Errorf("Measure() = %v, want %v", got, want)
	}
}

func TestFixedEngineHugeFiniteWidth(t *testing.T) {
	e := NewFixedEngine()
	// A finite width far beyond the int range must behave like unbounded,
	// not overflow the per-line rune count.
	got, err := e.Measure(Paragraph{Text: "hello", FontSize: 10}, Constraints{
		MaxWidth:  1e300,
		MaxHeight: Unbounded,
	})
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	want := Extent{Width: 30, Height: 12}
	if got != want {
		t.Errorf("Measure() = %v, want %v", got, want)
	}
}

func TestFixedEngineNarrowWidthStillTerminates(t *testing.T) {
	e := NewFixedEngine()
	// MaxWidth below one advance still fits one rune per line.
	got, err := e.Measure(Paragraph{Text: "abc", FontSize: 10}, Constraints{
		MaxWidth:  1,
		MaxHeight: Unbounded,
	})
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if got.Height != 36 {
		t.Errorf("Height = %v, want 36 (three lines)", got.Height)
	}
	if got.Width != 1 {
		t.Errorf("Width = %v, want clamped to 1", got.Width)
	}
}
