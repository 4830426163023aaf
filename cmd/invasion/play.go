package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/assets"
	"github.com/vovakirdan/alien-invasion/internal/audio"
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
	"github.com/vovakirdan/alien-invasion/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagSounds     string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Move ship
  Space            - Start / Fire
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, one more bullet, slower aliens
  normal - Default settings
  hard   - 2 lives, faster aliens, higher starting difficulty
  fixed  - No progression, stays at the config's initial level

Examples:
  invasion play invasion
  invasion play invasion --difficulty easy
  invasion play invasion_classic --mute
  invasion play invasion --config ./my-invasion.yaml
  invasion play invasion --theme ./sprites.yaml --sounds ./sounds`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagTheme, "theme", "", "Path to sprite theme YAML")
	cmd.Flags().StringVar(&flagSounds, "sounds", "", "Directory with shoot.wav, hit.wav, powerup.wav and music.wav")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// setupGames applies the game flags to the invasion package. An explicit
// --config that cannot be loaded is an error.
func setupGames() error {
	if flagConfig != "" {
		if _, err := config.Load(config.VariantFull, flagConfig); err != nil {
			return fmt.Errorf("cannot load config: %w", err)
		}
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	invasion.SetConfigPath(flagConfig)
	invasion.SetDifficultyPreset(flagDifficulty)
	invasion.SetTheme(assets.LoadTheme(flagTheme, logger))
	return nil
}

// openSound prepares the sound player. It returns nil when muted.
func openSound() *audio.Player {
	if flagMute {
		return nil
	}
	player := audio.NewPlayer(audio.LoadBank(flagSounds, logger), logger)
	player.Open()
	return player
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invasion list' to see available games.")
		os.Exit(1)
	}

	if err := setupGames(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, scores := openStore()
	sound := openSound()

	_, runErr := tui.Run(game, runtimeConfig(), tui.GameOptions{
		Store:  scores,
		Sound:  sound,
		Logger: logger,
	})

	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
