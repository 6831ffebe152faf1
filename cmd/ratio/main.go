// ratio is a terminal path puzzle: draw a path from the start point to the
// end point with the mouse and split the board into regions that match the
// level's quota.
//
// Usage:
//
//	ratio play               - Play through the levels
//	ratio menu               - Pick a level interactively, then play
//	ratio levels             - List available levels
//	ratio check <file|id>    - Validate a level and judge a path
//	ratio history            - Show recently closed paths
//
// Global flags:
//
//	--config <path>     - Config YAML (default: ~/.ratio/configs/ratio.yaml)
//	--db <path>         - Set database path (default: ~/.ratio/history.db)
//	--fps <rate>        - Set tick rate (default: from config)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
	flagMono     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ratio",
	Short: "Ratio - split the board with a single path",
	Long: `Ratio is a terminal puzzle. Each level is a grid of squares, triangles
and circles. Click from the start point (O) to the end point (■) along grid
lines; when the path reaches the end, the board is split into regions and
judged against the level's quota.

Available commands:
  play     - Play through the levels
  menu     - Interactive level picker
  levels   - List available levels
  check    - Validate a level and judge a path
  history  - Show recently closed paths

Examples:
  ratio play
  ratio play --level 3 --policy exact
  ratio menu --levels ./my-levels
  ratio check L2 --path "1,1 3,1 3,2 1,2 1,0"
  ratio history --stats`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		applyTheme()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ratio/history.db", "Path to history database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Use the monochrome menu theme")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
}
