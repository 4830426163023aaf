package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "Hi")

	got := RenderScreen(s)
	want := "Hi   \n     "
	if got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestPaletteRenderKeepsText(t *testing.T) {
	s := core.NewScreen(10, 1)
	s.DrawTextColored(0, 0, "AB", core.ColorRed)
	s.DrawTextColored(2, 0, "CD", core.ColorGreen)
	s.DrawText(4, 0, "EF")

	got := NewPalette(nil).Render(s)
	for _, part := range []string{"AB", "CD", "EF"} {
		if !strings.Contains(got, part) {
			t.Errorf("rendered %q is missing %q", got, part)
		}
	}
	if strings.Count(got, "\n") != 0 {
		t.Errorf("single row rendered with newlines: %q", got)
	}
}
