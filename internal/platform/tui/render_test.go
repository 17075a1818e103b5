package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/microgames/internal/core"
)

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorPurple; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("colorStyles missing %v", c)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "score")
	s.DrawTextColor(0, 1, "ball", core.ColorBrightWhite)
	s.DrawTextColor(5, 1, "wall", core.ColorPurple)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen() has %d lines, expected 3", len(lines))
	}
	for _, want := range []string{"score", "ball", "wall"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q", want)
		}
	}
}
