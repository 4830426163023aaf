package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/audio"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/registry"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// ScoreStore is the score persistence used by the TUI.
// *storage.Store implements it.
type ScoreStore interface {
	SaveScore(gameID string, score, wave int) (storage.ScoreEntry, error)
	HighScore(gameID string) (int, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
}

// Resizer is implemented by games that adapt to a new screen size without
// restarting. Other games are reset on resize.
type Resizer interface {
	Resize(width, height int)
}

// GameOptions configures a GameModel. The zero value runs without
// persistence or sound.
type GameOptions struct {
	Store         ScoreStore
	Sound         *audio.Player
	Logger        *log.Logger
	Palette       *Palette
	ScreenshotDir string // Defaults to ~/.invasion/screenshots
	AllowBack     bool   // Esc/B leaves the game when it is not running
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       GameOptions
	config     core.RuntimeConfig
	input      core.InputFrame
	holds      *core.HoldTracker
	keyMapper  *KeyMapper
	tick       int
	state      core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score of the current game over has been saved
}

// NewGameModel creates a game model. A zero seed is replaced by the clock.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Palette == nil {
		opts.Palette = defaultPalette
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:      opts,
		config:    cfg,
		input:     core.NewInputFrame(),
		holds:     core.NewHoldTracker(holdTicks(cfg.TickRate)),
		keyMapper: NewKeyMapper(),
	}
}

// holdTicks converts the key hold window of about 130ms to ticks.
func holdTicks(tickRate int) int {
	return max(tickRate*core.DefaultHoldTicks/DefaultTickRate, 2)
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.loadHighScore()
	return tickCmd(m.config.TickRate)
}

// loadHighScore seeds the game's HUD with the stored best score.
func (m GameModel) loadHighScore() {
	setter, ok := m.game.(registry.HighScoreSetter)
	if !ok || m.opts.Store == nil {
		return
	}
	high, err := m.opts.Store.HighScore(m.game.ID())
	if err != nil {
		m.opts.Logger.Warn("cannot load high score", "game", m.game.ID(), "err", err)
		return
	}
	setter.SetHighScore(high)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapGameKey(msg, m.state)
	switch {
	case isQuit:
		m.quitting = true
		m.stopMusic()
		return m, tea.Quit

	case action == core.ActionBack:
		if m.opts.AllowBack && (!m.state.Started || m.state.GameOver || m.state.Paused) {
			m.backToMenu = true
			m.stopMusic()
			return m, tea.Quit
		}

	case isHeld(action):
		m.holds.Press(action, m.tick)

	case action != core.ActionNone:
		m.input.Set(action)
	}

	return m, nil
}

// handleResize adapts the screen and the game to the new terminal size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	m.game.Reset(m.config)
	m.loadHighScore()
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.tick++

	frame := m.input.Clone()
	m.holds.Apply(&frame, m.tick)

	result := m.game.Step(frame)
	m.state = result.State
	m.handleEvents(result)

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleEvents plays sounds and saves the score when a run ends.
func (m *GameModel) handleEvents(result core.StepResult) {
	if sound := m.opts.Sound; sound != nil {
		sound.PlayEvents(result.Events)
	}

	if result.Has(core.EventStart) {
		m.scoreSaved = false
		// The press that started the run is not a shot.
		m.holds.Release(core.ActionFire)
		if m.opts.Sound != nil {
			m.opts.Sound.StartMusic()
		}
	}

	if result.Has(core.EventGameOver) {
		m.holds.Reset()
		m.stopMusic()
		m.saveScore()
	}
}

// saveScore stores the finished run once. Zero scores are not recorded.
func (m *GameModel) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.opts.Store == nil || m.state.Score <= 0 {
		return
	}
	entry, err := m.opts.Store.SaveScore(m.game.ID(), m.state.Score, m.state.Wave)
	if err != nil {
		m.opts.Logger.Warn("cannot save score", "game", m.game.ID(), "err", err)
		return
	}
	m.opts.Logger.Debug("score saved", "game", m.game.ID(), "score", entry.Score, "run", entry.RunID)
}

func (m GameModel) stopMusic() {
	if m.opts.Sound != nil {
		m.opts.Sound.StopMusic()
	}
}

// saveScreenshot writes the current screen as plain text.
func (m GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".invasion", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return m.opts.Palette.Render(m.screen)
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the current terminal until the player quits.
// It reports whether the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewGameModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}
