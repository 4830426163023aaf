// Package assets loads the sprite theme the invasion games draw with.
// A theme that cannot be loaded never stops the game: the caller gets a
// warning in the log and solid blocks instead of art.
package assets

import (
	_ "embed"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

//go:embed theme.yaml
var defaultThemeYAML []byte

// FallbackRune fills sprites that have no art.
const FallbackRune = '█'

// Sprite names used by the games.
const (
	SpriteShip         = "ship"
	SpriteShipShielded = "ship_shielded"
	SpriteEnemy        = "enemy"
	SpriteBoss         = "boss"
	SpriteBullet       = "bullet"
	SpriteBomb         = "bomb"
	SpriteShield       = "shield"
	SpriteExtraLife    = "extra_life"
)

// fallbackColors are the solid-block colors used when art is unavailable.
var fallbackColors = map[string]core.Color{
	SpriteShip:         core.ColorWhite,
	SpriteShipShielded: core.ColorBlue,
	SpriteEnemy:        core.ColorGreen,
	SpriteBoss:         core.ColorRed,
	SpriteBullet:       core.ColorRed,
	SpriteBomb:         core.ColorOrange,
	SpriteShield:       core.ColorBlue,
	SpriteExtraLife:    core.ColorYellow,
}

// Sprite is a block of glyph rows plus a color.
type Sprite struct {
	Art   [][]rune
	Color core.Color
	Solid bool // Fill the whole hitbox with FallbackRune
}

// At returns the glyph at (dx, dy) and whether it is opaque.
func (s Sprite) At(dx, dy int) (rune, bool) {
	if s.Solid {
		return FallbackRune, true
	}
	if dy < 0 || dy >= len(s.Art) || dx < 0 || dx >= len(s.Art[dy]) {
		return ' ', false
	}
	r := s.Art[dy][dx]
	return r, r != ' '
}

// Draw renders the sprite clipped to the rectangle r.
func (s Sprite) Draw(dst *core.Screen, r core.Rect) {
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			if g, ok := s.At(dx, dy); ok {
				dst.SetColored(r.X+dx, r.Y+dy, g, s.Color)
			}
		}
	}
}

// Theme is a named set of sprites.
type Theme struct {
	Name    string
	sprites map[string]Sprite
}

// Sprite returns the named sprite, or a solid fallback block.
func (t Theme) Sprite(name string) Sprite {
	if s, ok := t.sprites[name]; ok {
		return s
	}
	return solid(name)
}

func solid(name string) Sprite {
	c, ok := fallbackColors[name]
	if !ok {
		c = core.ColorWhite
	}
	return Sprite{Color: c, Solid: true}
}

// FallbackTheme draws every entity as a solid colored block.
func FallbackTheme() Theme {
	return Theme{Name: "fallback", sprites: map[string]Sprite{}}
}

// DefaultTheme returns the embedded theme.
func DefaultTheme() Theme {
	t, err := Parse(defaultThemeYAML)
	if err != nil {
		return FallbackTheme()
	}
	return t
}

type themeFile struct {
	Name    string                `yaml:"name"`
	Sprites map[string]spriteFile `yaml:"sprites"`
}

type spriteFile struct {
	Color string   `yaml:"color"`
	Art   []string `yaml:"art"`
}

// Parse decodes a theme from YAML. Sprites without art become solid blocks;
// an unknown color name is an error.
func Parse(data []byte) (Theme, error) {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Theme{}, fmt.Errorf("assets: cannot parse theme: %w", err)
	}
	if len(f.Sprites) == 0 {
		return Theme{}, fmt.Errorf("assets: theme %q defines no sprites", f.Name)
	}

	t := Theme{Name: f.Name, sprites: make(map[string]Sprite, len(f.Sprites))}
	for name, sf := range f.Sprites {
		s := solid(name)
		if sf.Color != "" {
			c, ok := core.ParseColor(sf.Color)
			if !ok {
				return Theme{}, fmt.Errorf("assets: sprite %q: unknown color %q", name, sf.Color)
			}
			s.Color = c
		}
		if len(sf.Art) > 0 {
			s.Solid = false
			s.Art = make([][]rune, len(sf.Art))
			for i, row := range sf.Art {
				if !utf8.ValidString(row) {
					return Theme{}, fmt.Errorf("assets: sprite %q row %d is not valid UTF-8", name, i)
				}
				s.Art[i] = []rune(row)
			}
		}
		t.sprites[name] = s
	}
	return t, nil
}

// LoadTheme reads a theme file. An empty path returns the embedded theme.
// Any failure is logged as a warning and yields FallbackTheme.
func LoadTheme(path string, logger *log.Logger) Theme {
	if path == "" {
		return DefaultTheme()
	}

	data, err := os.ReadFile(path)
	if err == nil {
		var t Theme
		if t, err = Parse(data); err == nil {
			return t
		}
	}
	if logger != nil {
		logger.Warn("sprite theme unavailable, using solid blocks", "path", path, "error", err)
	}
	return FallbackTheme()
}
