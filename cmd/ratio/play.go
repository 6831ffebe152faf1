package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagLevel     int
	flagLevelsDir string
	flagPolicy    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play through the levels",
	Long: `Play the levels in order, starting from the first or from --level.

Controls:
  Left click   - Add the point under the pointer to the path
  Right click  - Drop the path
  Any key      - Drop the path
  R            - Restart from the first level
  Q/Ctrl+C     - Quit

Policies decide when a closed path solves a level:
  advance  - Every closed path counts
  exact    - Every region holds exactly the quota
  ratio    - Every region holds a whole multiple of the quota (default)
  within   - No region holds more than the quota

Examples:
  ratio play
  ratio play --level 2
  ratio play --levels ./my-levels --policy exact`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start from (1-indexed)")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of .map/.yaml level files")
	playCmd.Flags().StringVar(&flagPolicy, "policy", "", "Completion policy: advance, exact, ratio, within")
}

func runPlay(_ *cobra.Command, _ []string) {
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
	if flagLevel < 0 || flagLevel > len(lvls) {
		fmt.Fprintf(os.Stderr, "Error: --level %d outside 1..%d\n", flagLevel, len(lvls))
		os.Exit(1)
	}

	// Open history storage
	store := openStore(logger)

	state, runErr := playLevels(lvls, cfg, flagLevel, store, runtimeConfig(cfg), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	printSummary(state)
}
