package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the levels 'ratio play' would load, in play order.

Examples:
  ratio levels
  ratio levels --ids
  ratio levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

var flagIDsOnly bool

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of .map/.yaml level files")
	levelsCmd.Flags().BoolVar(&flagIDsOnly, "ids", false, "Print only level IDs, one per line")
}

func runLevels(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig("", flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagIDsOnly {
		ids, err := newLevelLoader(cfg, logger).ListIDs()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
			os.Exit(1)
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return
	}

	lvls, err := loadLevels(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-5s  %-8s  %-9s  %s\n", "#", maxIDLen, "ID", "Size", "Quota", "Start/End", "Name")
	fmt.Printf("  %-3s  %-*s  %-5s  %-8s  %-9s  %s\n", "-", maxIDLen, "--", "----", "-----", "---------", "----")

	for i, l := range lvls {
		q := l.Quota
		fmt.Printf("  %-3d  %-*s  %-5s  %-8s  %-9s  %s\n",
			i+1, maxIDLen, l.ID,
			fmt.Sprintf("%dx%d", l.Width, l.Height),
			fmt.Sprintf("%d/%d/%d", q.Square, q.Triangle, q.Circle),
			l.Start.String()+l.End.String(),
			l.Name)
	}

	fmt.Println()
	fmt.Println("Quota is squares/triangles/circles per region.")
	fmt.Println("Run 'ratio play --level <#>' to start from a level.")
}
