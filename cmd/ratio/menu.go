package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ratio/internal/core"
	"github.com/vovakirdan/ratio/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level interactively, then play",
	Long: `Start Ratio in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start from the highlighted level.
After a play-through ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - History
  Q            - Quit

Examples:
  ratio menu
  ratio menu --levels ./my-levels
  ratio menu --db ./history.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of .map/.yaml level files")
	menuCmd.Flags().StringVar(&flagPolicy, "policy", "", "Completion policy: advance, exact, ratio, within")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig(flagPolicy, flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	lvls, err := loadLevels(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	var history tui.HistorySource
	if store != nil {
		history = store
	}

	rc := runtimeConfig(cfg)
	names := levelNames(lvls)
	var last core.GameState

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(names, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		rc = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, hErr := tui.RunHistory(history, rc.ScreenW, rc.ScreenH)
			if hErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", hErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		state, runErr := playLevels(lvls, cfg, menuResult.Level, store, rc, logger)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			continue
		}
		last = state
	}

	printSummary(last)
}
