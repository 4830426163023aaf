// invasion is a terminal Alien Invasion shooter.
//
// Usage:
//
//	invasion list              - List available games
//	invasion play <game>       - Play a game
//	invasion menu              - Start menu to pick games interactively
//	invasion serve             - Start SSH server for remote play
//	invasion scores <game>     - Show high scores for a game
//	invasion burgers           - Show the Heroic Burgers menu board
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path|dsn>     - Set database path or postgres:// DSN (default: ~/.invasion/scores.db)
//	--log-level <level> - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
	"github.com/vovakirdan/alien-invasion/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/alien-invasion/internal/games/invasion"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "invasion"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invasion",
	Short: "Alien Invasion - defend the planet from your terminal",
	Long: `Alien Invasion is a terminal shooter. Move your ship, shoot down the
descending alien waves, collect shields and extra lives, and dodge the
bombs of the boss aliens.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  burgers  - Show the Heroic Burgers menu board

Examples:
  invasion list
  invasion play invasion
  invasion play invasion_classic --difficulty hard
  invasion menu
  invasion serve --ssh :2222
  invasion scores invasion`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", tui.DefaultTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invasion/scores.db", "Path to scores database or postgres:// DSN")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(burgersCmd)
}

// openStore opens the score database. On failure the game runs without
// persistence and the returned store is nil.
func openStore() (*storage.Store, tui.ScoreStore) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "db", flagDBPath, "err", err)
		return nil, nil
	}
	return store, store
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
