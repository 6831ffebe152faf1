package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ratio/internal/storage"
)

var (
	flagLimit int
	flagStats bool
	flagClear bool
	flagID    int64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently closed paths",
	Long: `Display the paths closed in past play-throughs.

History is only a log: it never unlocks levels or resumes a run.

Examples:
  ratio history
  ratio history --limit 50
  ratio history --stats
  ratio history --id 42
  ratio history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of entries to show")
	historyCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-level totals instead")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded history")
	historyCmd.Flags().Int64Var(&flagID, "id", 0, "Show one entry in detail")
}

func runHistory(_ *cobra.Command, _ []string) {
	// Open history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearHistory(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	if flagStats {
		printStats(store)
		return
	}

	if flagID > 0 {
		printEntry(store, flagID)
		return
	}

	entries, err := store.RecentCompletions(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent paths")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No paths recorded yet.")
		fmt.Println()
		fmt.Println("Run 'ratio play' and close a path to start your history!")
		return
	}

	fmt.Printf("  %-5s  %-10s  %-7s  %-7s  %-4s  %-8s  %s\n", "ID", "Level", "Result", "Regions", "Path", "Policy", "When")
	fmt.Printf("  %-5s  %-10s  %-7s  %-7s  %-4s  %-8s  %s\n", "--", "-----", "------", "-------", "----", "------", "----")
	for _, e := range entries {
		fmt.Printf("  %-5d  %-10s  %-7s  %-7d  %-4d  %-8s  %s\n",
			e.ID, e.LevelID, resultLabel(e.Solved), e.Regions, e.PathLen, e.Policy, humanize.Time(e.CreatedAt))
	}
}

func resultLabel(solved bool) string {
	if solved {
		return "solved"
	}
	return "missed"
}

func printEntry(store *storage.Store, id int64) {
	e, err := store.CompletionByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}
	if e == nil {
		fmt.Fprintf(os.Stderr, "No entry with id %d.\n", id)
		os.Exit(1)
	}

	fmt.Printf("Entry %d\n\n", e.ID)
	fmt.Printf("  Level:    %s (#%d in its run)\n", e.LevelID, e.LevelIndex+1)
	fmt.Printf("  Result:   %s under %s\n", resultLabel(e.Solved), e.Policy)
	fmt.Printf("  Regions:  %d\n", e.Regions)
	fmt.Printf("  Path:     %d points\n", e.PathLen)
	fmt.Printf("  Run:      %s\n", e.RunID)
	fmt.Printf("  When:     %s (%s)\n", e.CreatedAt.Format("2006-01-02 15:04"), humanize.Time(e.CreatedAt))
}

func printStats(store *storage.Store) {
	stats, err := store.LevelStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Per-level totals")
	fmt.Println()
	if len(stats) == 0 {
		fmt.Println("No paths recorded yet.")
		return
	}

	fmt.Printf("  %-10s  %-8s  %-6s  %-4s  %s\n", "Level", "Attempts", "Solved", "Best", "Last played")
	fmt.Printf("  %-10s  %-8s  %-6s  %-4s  %s\n", "-----", "--------", "------", "----", "-----------")
	for _, s := range stats {
		best := "-"
		if s.BestPathLen > 0 {
			best = fmt.Sprintf("%d", s.BestPathLen)
		}
		fmt.Printf("  %-10s  %-8s  %-6s  %-4s  %s\n",
			s.LevelID, humanize.Comma(int64(s.Attempts)), humanize.Comma(int64(s.Solved)),
			best, humanize.Time(s.LastPlayed))
	}
}
