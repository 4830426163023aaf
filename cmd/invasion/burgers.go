package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/menuboard"
	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
)

var flagMenuPath string

var burgersCmd = &cobra.Command{
	Use:   "burgers",
	Short: "Show the Heroic Burgers menu board",
	Long: `Show the Heroic Burgers menu. Select an item to see its ingredients.

Controls:
  Up/Down      - Navigate items
  Enter/Space  - Show ingredients
  Esc/X        - Close the popup
  Q            - Quit

Examples:
  invasion burgers
  invasion burgers --menu ./menu.yaml`,
	Run: runBurgers,
}

func init() {
	burgersCmd.Flags().StringVar(&flagMenuPath, "menu", "", "Path to Heroic Burgers menu YAML")
}

func runBurgers(_ *cobra.Command, _ []string) {
	menu, err := menuboard.Load(flagMenuPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	if _, err := tui.RunBoard(menu, cfg.ScreenW, cfg.ScreenH); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
