// Package ratio provides the Ratio path puzzle game.
package ratio

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/image/math/f64"

	"github.com/vovakirdan/ratio/internal/config"
	platformcore "github.com/vovakirdan/ratio/internal/core"
	"github.com/vovakirdan/ratio/internal/games/ratio/core"
)

// Recorder stores judged paths. Implementations must not block for long:
// RecordEvaluation runs on the frame that closed the path.
type Recorder interface {
	RecordEvaluation(runID string, ev core.Evaluation) error
}

// Options configures a Game.
type Options struct {
	Levels     []*core.Level
	Config     config.RatioConfig
	StartLevel int // 1-indexed; 0 starts at the first level
	Recorder   Recorder
	Logger     *log.Logger
}

// Game implements the Ratio puzzle on the platform screen.
type Game struct {
	opts    Options
	policy  core.Policy
	logger  *log.Logger
	session *core.Session
	runID   string

	// Screen dimensions
	screenW int
	screenH int

	// Board geometry, recomputed per level and on resize
	cellW     int
	cellH     int
	boardX    int // Screen column of grid point (0,0)
	boardY    int // Screen row of grid point (0,0)
	tooSmall  bool
	hudHeight int
	levelIdx  int

	// Status
	out    core.FrameOutput
	last   *core.Evaluation
	solved int
}

// New creates a game over the given levels.
func New(opts Options) (*Game, error) {
	if len(opts.Levels) == 0 {
		return nil, core.ErrNoLevels
	}
	if opts.StartLevel < 0 || opts.StartLevel > len(opts.Levels) {
		return nil, fmt.Errorf("ratio: start level %d outside 1..%d", opts.StartLevel, len(opts.Levels))
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	policy, err := opts.Config.Policy()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		opts:      opts,
		policy:    policy,
		logger:    logger,
		hudHeight: 3,
	}
	g.Reset(platformcore.DefaultConfig())
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "ratio"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Ratio"
}

// RunID returns the identifier of the current play-through.
func (g *Game) RunID() string {
	return g.runID
}

// Reset starts a new play-through from the configured start level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.runID = uuid.NewString()
	g.last = nil
	g.solved = 0

	start := 0
	if g.opts.StartLevel > 0 {
		start = g.opts.StartLevel - 1
	}

	s, err := core.NewSession(g.opts.Levels, core.SessionOptions{
		Mapper:          core.NewMapper(g.opts.Config.Layout.SnapRadius),
		PathCapacity:    g.opts.Config.Path.Capacity,
		Policy:          g.policy,
		RequireSolution: g.opts.Config.Rules.RequireSolution,
		StartIndex:      start,
		Logger:          g.logger,
		OnEvaluate:      g.onEvaluate,
	})
	if err != nil {
		// New validated the level list and start index.
		panic(err)
	}
	g.session = s
	g.out = core.FrameOutput{State: s.State(), Level: s.Level()}
	g.levelIdx = s.LevelIndex()
	g.calculateLayout()

	g.logger.Info("run started", "run", g.runID, "levels", len(g.opts.Levels), "policy", g.policy.Name())
}

// Resize adapts the board to a new terminal size without losing progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.calculateLayout()
}

// onEvaluate receives every closed path from the session.
func (g *Game) onEvaluate(ev core.Evaluation) {
	g.last = &ev
	if ev.Solved {
		g.solved++
	}
	if g.opts.Recorder == nil {
		return
	}
	if err := g.opts.Recorder.RecordEvaluation(g.runID, ev); err != nil {
		// History is best-effort; the game continues regardless.
		g.logger.Warn("cannot record evaluation", "level", ev.LevelID, "err", err)
	}
}

// calculateLayout fits the active level on screen, shrinking cells down to
// one character when the configured size does not fit.
func (g *Game) calculateLayout() {
	lvl := g.session.Level()
	lc := g.opts.Config.Layout

	availW := g.screenW - 2
	availH := g.screenH - g.hudHeight - 2 // footer + margin

	g.cellW = lc.CellWidth
	g.cellH = lc.CellHeight
	for g.cellW > 1 && boardSpan(lvl.Width, g.cellW, lc.MarginX) > availW {
		g.cellW--
	}
	for g.cellH > 1 && boardSpan(lvl.Height, g.cellH, lc.MarginY) > availH {
		g.cellH--
	}

	boardW := boardSpan(lvl.Width, g.cellW, lc.MarginX)
	boardH := boardSpan(lvl.Height, g.cellH, lc.MarginY)
	if boardW > availW || boardH > availH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// Center the board below the HUD
	g.boardX = (g.screenW - boardW) / 2
	top := g.hudHeight + (availH-boardH)/2
	g.boardY = top + boardH - 1
}

// boardSpan returns the screen extent of n cells including the closing gutter line.
func boardSpan(n, cell, margin int) int {
	return n*(cell+margin) + 1
}

// layout returns the render-space geometry of the board. Render space has
// its origin at the bottom-left of the screen with Y growing upward, like the grid.
func (g *Game) layout() core.Layout {
	lc := g.opts.Config.Layout
	return core.Layout{
		Origin: g.renderPos(g.boardX, g.boardY),
		Cell:   f64.Vec2{float64(g.cellW), float64(g.cellH)},
		Margin: f64.Vec2{float64(lc.MarginX), float64(lc.MarginY)},
	}
}

// renderPos converts a screen position to render space.
func (g *Game) renderPos(x, y int) f64.Vec2 {
	return f64.Vec2{float64(x), float64(g.screenH - 1 - y)}
}

// screenPos returns the screen position of grid point p.
func (g *Game) screenPos(p core.Point) (int, int) {
	lc := g.opts.Config.Layout
	return g.boardX + p.X*(g.cellW+lc.MarginX), g.boardY - p.Y*(g.cellH+lc.MarginY)
}

// Step advances the game by one frame.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	if input.Has(platformcore.ActionRestart) {
		g.Reset(platformcore.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH})
		return platformcore.StepResult{State: g.State()}
	}

	if g.session.State() == core.StateFinished || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	in := core.FrameInput{
		Cancel: input.Has(platformcore.ActionCancel),
		Layout: g.layout(),
	}
	switch {
	case input.Pressed && input.PressedAt.Valid:
		// The click lands where the button went down, not where the
		// pointer drifted before the tick.
		in.Pointer = g.renderPos(input.PressedAt.X, input.PressedAt.Y)
		in.Pressed = true
	case input.Pointer.Valid:
		in.Pointer = g.renderPos(input.Pointer.X, input.Pointer.Y)
	default:
		// No position reported yet: keep the pointer far from every point.
		in.Pointer = f64.Vec2{-1e9, -1e9}
	}

	g.out = g.session.Frame(in)
	if idx := g.session.LevelIndex(); idx != g.levelIdx {
		g.levelIdx = idx
		g.calculateLayout()
	}

	return platformcore.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	finished := g.session.State() == core.StateFinished
	return platformcore.GameState{
		Level:    g.session.LevelIndex() + 1,
		Levels:   g.session.LevelCount(),
		Solved:   g.solved,
		GameOver: finished,
		Finished: finished,
	}
}

// LastEvaluation returns the most recent judged path of this run, or nil.
func (g *Game) LastEvaluation() *core.Evaluation {
	return g.last
}

// Session exposes the level session, mainly for tests and tooling.
func (g *Game) Session() *core.Session {
	return g.session
}
