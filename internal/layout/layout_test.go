package layout_test

import (
	"strings"
	"testing"

	"atcsubs/internal/layout"
)

func TestWrapRoundTripReproducesInput(t *testing.T) {
	inputs := []string{
		"Lisboa Arrival good evening Delta Lima Hotel Niner Seven Victor inbound",
		"short",
		"a b c d e f g h i j k l m n o p",
	}
	budget := layout.MaxUnitsPerLine(1920, 0.75)
	for _, input := range inputs {
		wrapped := layout.Wrap(input, budget)
		joined := strings.Join(wrapped.Lines, " ")
		if joined != input {
			t.Fatalf("round trip lost characters:\n  in: %q\n out: %q", input, joined)
		}
		if strings.ReplaceAll(wrapped.Text, layout.LineBreak, " ") != input {
			t.Fatalf("break-marker text differs: %q", wrapped.Text)
		}
	}
}

func TestWrapBreaksLongText(t *testing.T) {
	long := strings.Repeat("information ", 12)
	wrapped := layout.Wrap(strings.TrimSpace(long), layout.MaxUnitsPerLine(1920, 0.5))
	if wrapped.LineCount() < 2 {
		t.Fatalf("expected multiple lines, got %d", wrapped.LineCount())
	}
	if !strings.Contains(wrapped.Text, layout.LineBreak) {
		t.Fatalf("wrapped text has no break marker: %q", wrapped.Text)
	}
}

func TestWrapSingleOverlongWordStaysUnbroken(t *testing.T) {
	word := strings.Repeat("w", 200)
	wrapped := layout.Wrap(word+" tail", 5)
	if wrapped.Lines[0] != word {
		t.Fatalf("overlong word was broken: %q", wrapped.Lines[0])
	}
	if wrapped.LineCount() != 2 {
		t.Fatalf("expected 2 lines, got %d", wrapped.LineCount())
	}
}

func TestWrapEmptyText(t *testing.T) {
	wrapped := layout.Wrap("", 10)
	if wrapped.LineCount() != 1 || wrapped.Text != "" {
		t.Fatalf("empty wrap = %+v", wrapped)
	}
}

func TestShowBox(t *testing.T) {
	tests := []struct {
		hasBG     bool
		lines     int
		threshold int
		want      bool
	}{
		{true, 1, 1, true},
		{true, 1, 2, false}, // threshold 2 with a single line: no box
		{true, 2, 2, true},
		{false, 5, 1, false},
	}
	for _, tc := range tests {
		if got := layout.ShowBox(tc.hasBG, tc.lines, tc.threshold); got != tc.want {
			t.Fatalf("ShowBox(%v, %d, %d) = %v, want %v", tc.hasBG, tc.lines, tc.threshold, got, tc.want)
		}
	}
}

func TestBoxGeometry(t *testing.T) {
	height := layout.BoxHeight(2)
	if height != 2*61+30 {
		t.Fatalf("BoxHeight(2) = %d", height)
	}

	// Bottom row boxes sit above the bottom margin.
	top := layout.BoxTop(2, height, 1080)
	if top != 1080-layout.MarginV+15-height {
		t.Fatalf("BoxTop(bottom) = %d", top)
	}
	if layout.BoxTop(8, height, 1080) != layout.MarginV-15 {
		t.Fatalf("BoxTop(top) = %d", layout.BoxTop(8, height, 1080))
	}

	// Centered box stays inside the frame.
	left, width := layout.BoxX(2, 400, 1920)
	if left < 0 || left+width > 1920 {
		t.Fatalf("BoxX(center) = %d,%d", left, width)
	}
	if left != 1920/2-200-20 {
		t.Fatalf("BoxX(center) left = %d", left)
	}

	// A box wider than the frame clamps to it.
	left, width = layout.BoxX(2, 5000, 1920)
	if left != 0 || width != 1920 {
		t.Fatalf("BoxX(oversized) = %d,%d", left, width)
	}
}

func TestRoundedRectPath(t *testing.T) {
	path := layout.RoundedRectPath(200, 100)
	if !strings.HasPrefix(path, "m 18 0 ") {
		t.Fatalf("path prefix = %q", path)
	}
	if !strings.Contains(path, "b ") {
		t.Fatal("expected bezier corner segments")
	}
	// Degenerate boxes fall back to a plain rectangle.
	flat := layout.RoundedRectPath(200, 0)
	if strings.Contains(flat, "b ") {
		t.Fatalf("flat path should have no beziers: %q", flat)
	}
}
