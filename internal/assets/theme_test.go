package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

func TestDefaultThemeHasAllSprites(t *testing.T) {
	th := DefaultTheme()
	if th.Name != "classic" {
		t.Fatalf("DefaultTheme name = %q, expected classic", th.Name)
	}
	for _, name := range []string{
		SpriteShip, SpriteShipShielded, SpriteEnemy, SpriteBoss,
		SpriteBullet, SpriteBomb, SpriteShield, SpriteExtraLife,
	} {
		if s := th.Sprite(name); s.Solid {
			t.Errorf("sprite %q should have art in the default theme", name)
		}
	}
}

func TestSpriteDrawClipsToHitbox(t *testing.T) {
	th, err := Parse([]byte(`
name: test
sprites:
  enemy:
    color: red
    art:
      - "abc"
      - "d f"
`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	dst := core.NewScreen(10, 5)
	th.Sprite(SpriteEnemy).Draw(dst, core.NewRect(1, 1, 2, 3))

	if got := dst.GetCell(1, 1); got.Rune != 'a' || got.Color != core.ColorRed {
		t.Errorf("cell (1,1) = %+v, expected red 'a'", got)
	}
	if dst.Get(3, 1) != ' ' {
		t.Error("art beyond the hitbox width should be clipped")
	}
	if dst.Get(2, 2) != ' ' {
		t.Error("spaces in art should be transparent")
	}
	if dst.Get(1, 3) != ' ' {
		t.Error("rows beyond the art should stay blank")
	}
}

func TestMissingSpriteIsSolid(t *testing.T) {
	th, err := Parse([]byte("name: tiny\nsprites:\n  ship:\n    art: [\"^\"]\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	s := th.Sprite(SpriteBoss)
	if !s.Solid || s.Color != core.ColorRed {
		t.Errorf("missing boss sprite = %+v, expected solid red", s)
	}
	if r, ok := s.At(3, 3); !ok || r != FallbackRune {
		t.Errorf("solid sprite At() = (%q, %v)", r, ok)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":      "sprites: [",
		"no sprites":    "name: empty\n",
		"unknown color": "sprites:\n  ship:\n    color: plaid\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(data)); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}

func TestLoadThemeFallsBackWithWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	th := LoadTheme(filepath.Join(t.TempDir(), "missing.yaml"), logger)
	if th.Name != "fallback" {
		t.Errorf("missing theme should give fallback, got %q", th.Name)
	}
	if !strings.Contains(buf.String(), "sprite theme unavailable") {
		t.Errorf("expected a warning, log was %q", buf.String())
	}
}

func TestLoadThemeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("name: mine\nsprites:\n  bullet:\n    art: [\"*\"]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	th := LoadTheme(path, nil)
	if th.Name != "mine" {
		t.Errorf("LoadTheme name = %q, expected mine", th.Name)
	}
	if r, ok := th.Sprite(SpriteBullet).At(0, 0); !ok || r != '*' {
		t.Errorf("bullet art = (%q, %v)", r, ok)
	}
}
