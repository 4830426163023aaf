// Package invasion implements the Alien Invasion shooter: the player's
// ship fires at a descending alien formation, collecting shields and extra
// lives on the way, while bosses drop bombs.
package invasion

import (
	"math/rand"

	"github.com/vovakirdan/alien-invasion/internal/assets"
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/registry"
)

// Minimum playable screen size.
const (
	MinScreenW = 30
	MinScreenH = 12
)

var (
	// configPath is the custom config path set via CLI.
	configPath string

	// difficultyPreset is the difficulty preset set via CLI.
	difficultyPreset config.DifficultyPreset

	// theme is the sprite theme shared by all instances.
	theme = assets.DefaultTheme()
)

// SetConfigPath sets the custom config path used on Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetTheme sets the sprite theme used by Render.
func SetTheme(t assets.Theme) {
	theme = t
}

// Game implements registry.Game for both variants.
type Game struct {
	variant config.Variant

	// fixed is set when the config was injected and must not be reloaded
	fixed bool

	cfg        config.InvasionConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	rng        *rand.Rand

	ship      Ship
	bullets   []Bullet
	bombs     []Bullet
	enemies   []Enemy
	powerUps  []PowerUp
	formation formation

	score     int
	highScore int
	lives     int
	wave      int
	tick      int // Simulation ticks since the run started; frozen while paused
	lastShot  int

	started        bool
	gameOver       bool
	paused         bool
	newHighScore   bool
	screenTooSmall bool

	events []core.Event
}

// New creates the full variant.
func New() *Game {
	return &Game{variant: config.VariantFull}
}

// NewClassic creates the classic variant without power-ups or bosses.
func NewClassic() *Game {
	return &Game{variant: config.VariantClassic}
}

// NewWithConfig creates a game that always uses cfg instead of loading
// configuration files.
func NewWithConfig(v config.Variant, cfg config.InvasionConfig) *Game {
	return &Game{variant: v, fixed: true, cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == config.VariantClassic {
		return "Alien Invasion (Classic)"
	}
	return "Alien Invasion"
}

// Reset prepares a new run and shows the title screen.
// The high score survives resets.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.loadConfig()
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.started = false
	g.newRun()
}

func (g *Game) loadConfig() {
	if g.fixed {
		return
	}
	cfg, err := config.Load(g.variant, configPath)
	if err != nil {
		cfg = config.DefaultFor(g.variant)
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg = cfg
}

// newRun clears all per-run state.
func (g *Game) newRun() {
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	sc := g.cfg.Ship
	g.ship = Ship{
		W:     sc.Width,
		H:     sc.Height,
		Speed: sc.Speed,
	}
	g.placeShip()

	g.bullets = g.bullets[:0]
	g.bombs = g.bombs[:0]
	g.enemies = g.enemies[:0]
	g.powerUps = g.powerUps[:0]
	g.score = 0
	g.lives = sc.Lives
	g.wave = 0
	g.tick = 0
	g.lastShot = -sc.FireCooldown
	g.gameOver = false
	g.paused = false
	g.newHighScore = false
	g.events = nil
	g.screenTooSmall = g.runtime.ScreenW < MinScreenW || g.runtime.ScreenH < MinScreenH
}

// placeShip centers the ship on the bottom rows.
func (g *Game) placeShip() {
	g.ship.X = float64((g.runtime.ScreenW - g.ship.W) / 2)
	g.ship.Y = float64(g.runtime.ScreenH - g.ship.H)
}

// Resize adapts a running game to a new screen size without restarting.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < MinScreenW || height < MinScreenH
	g.ship.Y = float64(height - g.ship.H)
	g.ship.X = core.ClampF(g.ship.X, 0, float64(max(width-g.ship.W, 0)))
	if g.started && !g.screenTooSmall && len(g.enemies) > 0 {
		g.refitFormation()
	}
}

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	if score > g.highScore {
		g.highScore = score
	}
}

// start begins play at wave 1.
func (g *Game) start() {
	g.newRun()
	g.started = true
	g.wave = 1
	g.spawnWave(g.wave)
	g.emit(core.EventStart, g.wave)
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

func (g *Game) progress() config.Progress {
	return config.Progress{Wave: max(g.wave, 1), Score: g.score, Ticks: g.tick}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	switch {
	case g.screenTooSmall:
	case !g.started:
		if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
			g.start()
		}
	case g.gameOver:
		if in.Has(core.ActionRestart) {
			g.start()
		}
	default:
		g.update(in)
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// update runs one tick of active play.
func (g *Game) update(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.tick++

	g.moveShip(in)
	if in.Has(core.ActionFire) {
		g.fire()
	}
	g.moveBullets()
	g.moveFormation()
	g.dropBombs()
	g.moveBombs()
	g.updatePowerUps()

	g.resolveBulletHits()
	g.pruneEnemies()
	g.resolveShipHits()
	g.expireShield()

	if g.lives <= 0 {
		g.endGame()
		return
	}

	if len(g.enemies) == 0 {
		g.emit(core.EventWaveCleared, g.wave)
		g.wave++
		g.bombs = g.bombs[:0]
		g.spawnWave(g.wave)
	}

	g.maybeSpawnPowerUp()
}

// moveShip applies held Left/Right and keeps the ship on screen.
func (g *Game) moveShip(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.ship.X -= g.ship.Speed
	}
	if in.Has(core.ActionRight) {
		g.ship.X += g.ship.Speed
	}
	g.ship.X = core.ClampF(g.ship.X, 0, float64(max(g.runtime.ScreenW-g.ship.W, 0)))
}

// fire launches a bullet from the ship's nose if the cooldown and the
// bullet limit allow it.
func (g *Game) fire() {
	sc := g.cfg.Ship
	if g.tick-g.lastShot < sc.FireCooldown || len(g.bullets) >= sc.MaxBullets {
		return
	}

	bc := g.cfg.Bullets
	g.bullets = append(g.bullets, Bullet{
		X:     g.ship.X + float64(g.ship.W/2),
		Y:     g.ship.Y - float64(bc.Height),
		W:     bc.Width,
		H:     bc.Height,
		Speed: -bc.Speed,
	})
	g.lastShot = g.tick
	g.emit(core.EventShoot, 0)
}

// moveBullets moves player bullets up and drops those that reach the HUD.
func (g *Game) moveBullets() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		b.Y += b.Speed
		if b.Rect().Bottom() <= hudRows {
			continue
		}
		kept = append(kept, b)
	}
	g.bullets = kept
}

// moveBombs moves boss bombs down and drops those below the screen.
func (g *Game) moveBombs() {
	kept := g.bombs[:0]
	for _, b := range g.bombs {
		b.Y += b.Speed
		if b.Rect().Y >= g.runtime.ScreenH {
			continue
		}
		kept = append(kept, b)
	}
	g.bombs = kept
}

// resolveBulletHits checks every bullet against every alive enemy.
// A bullet is consumed by the first enemy it overlaps.
func (g *Game) resolveBulletHits() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		br := b.Rect()
		hit := false
		for i := range g.enemies {
			e := &g.enemies[i]
			if !e.Alive || !br.Intersects(e.Rect()) {
				continue
			}
			hit = true
			e.Health--
			if e.Health > 0 {
				g.emit(core.EventHit, 0)
				break
			}
			e.Alive = false
			points := g.cfg.Enemies.Points
			if e.Type == EnemyBoss {
				points = g.cfg.Boss.Points
			}
			g.score += points
			g.emit(core.EventKill, points)
			break
		}
		if !hit {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

// resolveShipHits handles bombs and aliens reaching the ship.
func (g *Game) resolveShipHits() {
	shipRect := g.ship.Rect()

	kept := g.bombs[:0]
	bombed := false
	for _, b := range g.bombs {
		if !bombed && b.Rect().Intersects(shipRect) {
			bombed = true
			continue
		}
		kept = append(kept, b)
	}
	g.bombs = kept
	if bombed {
		shielded := g.ship.Shield
		g.damageShip()
		if !shielded {
			// A life lost clears all bombs in flight. At most one life
			// goes per tick.
			g.bombs = g.bombs[:0]
			return
		}
	}

	for _, e := range g.enemies {
		if !e.Alive {
			continue
		}
		er := e.Rect()
		if er.Bottom() > shipRect.Y || er.Intersects(shipRect) {
			g.damageShip()
			g.pushBack()
			return
		}
	}
}

// damageShip takes a life, or the shield if one is up.
func (g *Game) damageShip() {
	if g.ship.Shield {
		g.dropShield()
		return
	}
	g.lives--
	g.emit(core.EventLifeLost, g.lives)
}

// endGame finishes the run and records a new high score.
func (g *Game) endGame() {
	g.lives = 0
	g.gameOver = true
	if g.score > g.highScore {
		g.highScore = g.score
		g.newHighScore = true
	}
	g.emit(core.EventGameOver, g.score)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Wave:      g.wave,
		Lives:     g.lives,
		Started:   g.started,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}

func init() {
	registry.Register(string(config.VariantFull), func() registry.Game {
		return New()
	})
	registry.Register(string(config.VariantClassic), func() registry.Game {
		return NewClassic()
	})
}
