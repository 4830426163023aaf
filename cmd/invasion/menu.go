package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/menuboard"
	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
	"github.com/vovakirdan/alien-invasion/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys to navigate, Enter to select a game.
After a game ends, press Esc or B to return to the menu.

Controls:
  Up/Down      - Navigate menu
  Enter        - Select entry
  Tab          - High scores
  Q            - Quit

Examples:
  invasion menu
  invasion menu --fps 30
  invasion menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
	menuCmd.Flags().StringVar(&flagMenuPath, "menu", "", "Path to Heroic Burgers menu YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := setupGames(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	menu, err := menuboard.Load(flagMenuPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, scores := openStore()
	sound := openSound()
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			logger.Error("menu failed", "err", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(scores, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "err", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.WantsBurgers {
			goBack, boardErr := tui.RunBoard(menu, cfg.ScreenW, cfg.ScreenH)
			if boardErr != nil {
				logger.Error("burgers board failed", "err", boardErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "err", err)
			continue
		}

		// A fresh seed for each run unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, cfg, tui.GameOptions{
			Store:     scores,
			Sound:     sound,
			Logger:    logger,
			AllowBack: true,
		})
		if err != nil {
			logger.Error("game failed", "game", game.ID(), "err", err)
		}
		if !backToMenu {
			break
		}
	}

	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}
}
