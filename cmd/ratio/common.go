package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/ratio/internal/config"
	"github.com/vovakirdan/ratio/internal/core"
	"github.com/vovakirdan/ratio/internal/games/ratio"
	ratiocore "github.com/vovakirdan/ratio/internal/games/ratio/core"
	"github.com/vovakirdan/ratio/internal/games/ratio/levels"
	"github.com/vovakirdan/ratio/internal/platform/tui"
	"github.com/vovakirdan/ratio/internal/storage"
)

// applyTheme selects the menu theme from global flags.
func applyTheme() {
	if flagMono {
		tui.SetTheme(tui.MonochromeTheme())
	}
}

// newLogger builds the process logger. Interactive commands own the terminal,
// so without --log-file they log nowhere.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "ratio",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig reads the config and applies flag overrides.
func loadConfig(policy, levelsDir string) (config.RatioConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if policy != "" {
		cfg.Rules.Policy = policy
	}
	if levelsDir != "" {
		cfg.Levels.Dir = levelsDir
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLevelLoader returns a loader over the configured level directory, or
// over the built-in set.
func newLevelLoader(cfg config.RatioConfig, logger *log.Logger) *levels.Loader {
	loader := levels.NewBuiltinLoader()
	if cfg.Levels.Dir != "" {
		loader = levels.NewLoader(cfg.Levels.Dir)
	}
	return loader.WithLogger(logger)
}

// loadLevels loads the configured level directory, or the built-in set.
func loadLevels(cfg config.RatioConfig, logger *log.Logger) ([]*ratiocore.Level, error) {
	loader := newLevelLoader(cfg, logger)
	lvls, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(lvls) == 0 {
		return nil, fmt.Errorf("no levels found in %s", loader.Root)
	}
	return lvls, nil
}

// levelNames returns the display name of each level.
func levelNames(lvls []*ratiocore.Level) []string {
	names := make([]string, len(lvls))
	for i, l := range lvls {
		names[i] = l.ID
		if l.Name != "" && l.Name != l.ID {
			names[i] = fmt.Sprintf("%s  %s", l.ID, l.Name)
		}
	}
	return names
}

// openStore opens the history database. Play continues without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("history disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig(cfg config.RatioConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = cfg.TickRate
	return rc
}

// playLevels runs one play-through starting at startLevel (1-indexed, 0 = first).
func playLevels(lvls []*ratiocore.Level, cfg config.RatioConfig, startLevel int,
	store *storage.Store, rc core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	var rec ratio.Recorder
	if store != nil {
		rec = store
	}

	game, err := ratio.New(ratio.Options{
		Levels:     lvls,
		Config:     cfg,
		StartLevel: startLevel,
		Recorder:   rec,
		Logger:     logger,
	})
	if err != nil {
		return core.GameState{}, err
	}

	state, err := tui.Run(game, rc)
	if err != nil {
		return state, err
	}
	if store != nil {
		if closed, err := store.RunCompletions(game.RunID()); err == nil {
			logger.Info("run ended", "run", game.RunID(), "paths", len(closed), "solved", state.Solved)
		}
	}
	return state, nil
}

// printSummary reports the outcome of a play-through.
func printSummary(state core.GameState) {
	if state.Levels == 0 {
		return
	}
	fmt.Printf("Solved %d of %d levels.\n", state.Solved, state.Levels)
	if state.Finished {
		fmt.Println("Thanks for playing!")
	}
}
