package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/boxrunner/internal/core"
)

func TestColorStylesCoverEnum(t *testing.T) {
	// Every declared color must have a style, or rendering silently falls
	// back to the default for that run of cells.
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style registered for color %d", c)
		}
	}
}

func TestRenderScreenPreservesContent(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColored(0, 0, "Score: 7", core.ColorBrightWhite)
	s.SetCell(2, 1, '█', core.ColorBrightGreen)
	s.SetCell(5, 1, '█', core.ColorOrange)

	out := RenderScreen(s)

	if !strings.Contains(out, "Score: 7") {
		t.Error("rendered output should contain the HUD text")
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered output has %d newlines, expected 2", got)
	}
	if !strings.Contains(out, "█") {
		t.Error("rendered output should contain the block cells")
	}
}
