package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ratio/internal/config"
	"github.com/vovakirdan/ratio/internal/games/ratio/core"
	"github.com/vovakirdan/ratio/internal/games/ratio/levels"
)

var flagPath string

var checkCmd = &cobra.Command{
	Use:   "check <file|id>",
	Short: "Validate a level and judge a path",
	Long: `Parse and validate a .map or .yaml level file, or a level ID from the
built-in set (or --levels). With --path, replay the given grid points as
clicks and print the regions the closed path creates.

Points are "x,y" pairs separated by spaces; (0,0) is the bottom-left corner.
The exit status is non-zero when the level is invalid, a point is rejected or
the path does not reach the end point.

Examples:
  ratio check L2
  ratio check L2 --path "1,1 3,1 3,2 1,2 1,0"
  ratio check ./my-levels/L3.yaml --path "1,1 2,1 2,2 3,2 3,3 1,3 1,0" --policy exact`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagPath, "path", "", `Grid points to replay, e.g. "1,1 3,1 3,2 1,2 1,0"`)
	checkCmd.Flags().StringVar(&flagPolicy, "policy", "", "Completion policy: advance, exact, ratio, within")
	checkCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of .map/.yaml level files to look IDs up in")
}

func runCheck(_ *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(false)
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

	lvl, err := resolveLevel(args[0], newLevelLoader(cfg, logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printLevel(os.Stdout, lvl)

	if flagPath == "" {
		return
	}

	points, err := parsePath(flagPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ev, err := judgePath(lvl, points, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printEvaluation(os.Stdout, lvl, ev)
	if !ev.Solved {
		os.Exit(2)
	}
}

// resolveLevel loads arg as a level file when one exists at that path, and
// otherwise looks it up by ID in loader.
func resolveLevel(arg string, loader *levels.Loader) (*core.Level, error) {
	if _, err := os.Stat(arg); err == nil {
		return levels.LoadPath(arg)
	}
	return loader.LoadByID(arg)
}

// parsePath parses space separated "x,y" pairs.
func parsePath(s string) ([]core.Point, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty path")
	}
	points := make([]core.Point, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("point %q: want x,y", f)
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", f, err)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", f, err)
		}
		points = append(points, core.P(x, y))
	}
	return points, nil
}

// judgePath replays points on a single-level session and returns the
// evaluation of the closed path.
func judgePath(lvl *core.Level, points []core.Point, cfg config.RatioConfig, logger *log.Logger) (core.Evaluation, error) {
	policy, err := cfg.Policy()
	if err != nil {
		return core.Evaluation{}, err
	}

	var ev *core.Evaluation
	s, err := core.NewSession([]*core.Level{lvl}, core.SessionOptions{
		PathCapacity: cfg.Path.Capacity,
		Policy:       policy,
		Logger:       logger,
		OnEvaluate:   func(e core.Evaluation) { ev = &e },
	})
	if err != nil {
		return core.Evaluation{}, err
	}

	for i, p := range points {
		if ev != nil {
			return core.Evaluation{}, fmt.Errorf("path closed at point %d; %d points left over", i, len(points)-i)
		}
		if res := s.TryAppend(p); res != core.Accepted {
			return core.Evaluation{}, fmt.Errorf("point %d %v: %v", i+1, p, res)
		}
	}
	if ev == nil {
		return core.Evaluation{}, fmt.Errorf("path does not reach the end point %v", lvl.End)
	}
	return *ev, nil
}

func printLevel(w io.Writer, lvl *core.Level) {
	fmt.Fprintf(w, "Level %s", lvl.ID)
	if lvl.Name != "" && lvl.Name != lvl.ID {
		fmt.Fprintf(w, " (%s)", lvl.Name)
	}
	fmt.Fprintf(w, ": %dx%d, start %v, end %v\n", lvl.Width, lvl.Height, lvl.Start, lvl.End)
	fmt.Fprintf(w, "Quota per region: %s\n", formatCounts(lvl.Quota))
	fmt.Fprintf(w, "Board total:      %s\n", formatCounts(lvl.CountByType()))
}

func printEvaluation(w io.Writer, lvl *core.Level, ev core.Evaluation) {
	fmt.Fprintf(w, "\nPath of %d points splits the board into %d region(s):\n", ev.PathLen, len(ev.Regions))
	for _, r := range ev.Regions {
		mark := " "
		if k, ok := r.Counts.MultipleOf(lvl.Quota); ok && k > 0 {
			mark = fmt.Sprintf("x%d", k)
		}
		fmt.Fprintf(w, "  %-3s region %d: %3d cells, %s\n", mark, r.ID, len(r.Cells), formatCounts(r.Counts))
	}
	verdict := "not solved"
	if ev.Solved {
		verdict = "solved"
	}
	fmt.Fprintf(w, "Policy %s: %s\n", ev.Policy, verdict)
}

func formatCounts(c core.Counts) string {
	return fmt.Sprintf("%d square, %d triangle, %d circle", c.Square, c.Triangle, c.Circle)
}
