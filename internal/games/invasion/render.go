package invasion

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/alien-invasion/internal/assets"
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d, have %dx%d",
			MinScreenW, MinScreenH, dst.Width(), dst.Height()))
		return
	}

	g.drawHUD(dst)

	for _, p := range g.powerUps {
		name := assets.SpriteShield
		if p.Type == PowerUpExtraLife {
			name = assets.SpriteExtraLife
		}
		theme.Sprite(name).Draw(dst, p.Rect())
	}

	for _, e := range g.enemies {
		if !e.Alive {
			continue
		}
		name := assets.SpriteEnemy
		if e.Type == EnemyBoss {
			name = assets.SpriteBoss
		}
		theme.Sprite(name).Draw(dst, e.Rect())
	}

	bullet := theme.Sprite(assets.SpriteBullet)
	for _, b := range g.bullets {
		bullet.Draw(dst, b.Rect())
	}
	bomb := theme.Sprite(assets.SpriteBomb)
	for _, b := range g.bombs {
		bomb.Draw(dst, b.Rect())
	}

	if g.started && !g.gameOver {
		ship := assets.SpriteShip
		if g.ship.Shield {
			ship = assets.SpriteShipShielded
		}
		theme.Sprite(ship).Draw(dst, g.ship.Rect())
	}

	switch {
	case !g.started:
		g.drawTitle(dst)
	case g.gameOver:
		title := "GAME OVER"
		if g.newHighScore {
			title = "GAME OVER - NEW HIGH SCORE!"
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  Press R to restart", g.score), core.ColorBrightRed)
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	}
}

// drawHUD draws score, high score and lives on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" Score: %d", g.score)
	if g.wave > 0 {
		left += fmt.Sprintf("  Wave %d", g.wave)
	}
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	dst.DrawTextCenteredColored(0, fmt.Sprintf("High Score: %d", g.highScore), core.ColorBrightYellow)

	right := fmt.Sprintf("Lives: %d ", g.lives)
	if ticks := g.shieldTicksLeft(); ticks > 0 {
		secs := (ticks + g.tickRate() - 1) / g.tickRate()
		right = fmt.Sprintf("Shield %ds  %s", secs, right)
	}
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(right), 0, right, core.ColorBrightWhite)
}

func (g *Game) tickRate() int {
	if g.runtime.TickRate <= 0 {
		return 60
	}
	return g.runtime.TickRate
}

// drawTitle draws the start screen.
func (g *Game) drawTitle(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-3, "ALIEN INVASION", core.ColorBrightGreen)
	if g.variant == config.VariantClassic {
		dst.DrawTextCenteredColored(mid-2, "classic", core.ColorGray)
	}
	dst.DrawTextCenteredColored(mid, "Press SPACE to start", core.ColorBrightWhite)
	dst.DrawTextCenteredColored(mid+2, "Left/Right or A/D: move   Space: fire   P: pause   Q: quit", core.ColorGray)
}

// drawCenteredMessage draws a boxed two-line message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	titleW := utf8.RuneCountInString(title)
	subW := utf8.RuneCountInString(subtitle)

	boxW := max(titleW, subW) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-subW)/2, boxY+3, subtitle)
}
