package core

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/image/math/f64"
)

// State is the lifecycle stage of a Session.
type State uint8

const (
	StateLoading State = iota
	StatePlaying
	StateCompleted
	StateFinished
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StateCompleted:
		return "Completed"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Evaluation is the judgement of one closed path.
type Evaluation struct {
	LevelIndex int
	LevelID    string
	Policy     string
	Solved     bool
	Regions    []Region
	PathLen    int
}

// FrameInput is the input sampled by the front-end for one frame.
type FrameInput struct {
	Pointer f64.Vec2 // Render-space pointer position
	Pressed bool     // Primary button went down this frame
	Cancel  bool     // Cancel gesture this frame
	Layout  Layout   // Render-space geometry of the active level
}

// FrameOutput is everything the front-end needs to draw a frame.
type FrameOutput struct {
	State      State
	Level      *Level
	Path       []Point
	Hover      Hover
	Evaluation *Evaluation // Set on the frame a path closed
}

// SessionOptions configures a Session. Zero values pick the defaults.
type SessionOptions struct {
	Mapper          Mapper
	PathCapacity    int
	Policy          Policy
	RequireSolution bool // Stay on an unsolved level instead of advancing
	StartIndex      int
	Logger          *log.Logger
	OnEvaluate      func(Evaluation)
}

// ErrNoLevels is returned when a session is created without levels.
var ErrNoLevels = errors.New("core: no levels to play")

// Session owns the level sequence and the path being drawn.
type Session struct {
	levels  []*Level
	index   int
	state   State
	builder *Builder
	opts    SessionOptions
	logger  *log.Logger

	last *Evaluation // Evaluation produced during the current frame
}

// NewSession creates a session positioned on opts.StartIndex.
func NewSession(levels []*Level, opts SessionOptions) (*Session, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	if opts.StartIndex < 0 || opts.StartIndex >= len(levels) {
		return nil, fmt.Errorf("core: start level %d outside 1..%d", opts.StartIndex+1, len(levels))
	}
	if opts.Mapper.SnapRadius <= 0 {
		opts.Mapper = NewMapper(0)
	}
	if opts.Policy == nil {
		opts.Policy = RatioPolicy{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		levels: levels,
		opts:   opts,
		logger: logger,
	}
	s.builder = NewBuilder(levels[opts.StartIndex], opts.PathCapacity, s.complete)
	s.load(opts.StartIndex)
	return s, nil
}

// load activates levels[i] with an empty path.
func (s *Session) load(i int) {
	s.state = StateLoading
	s.index = i
	s.builder.SetLevel(s.levels[i])
	s.logger.Info("level loaded", "index", i+1, "of", len(s.levels), "id", s.levels[i].ID)
	s.state = StatePlaying
}

// complete runs when the builder closes a path at the level end.
func (s *Session) complete(closed []Point) {
	s.state = StateCompleted
	lvl := s.levels[s.index]

	pt := Partition(lvl, closed)
	ev := Evaluation{
		LevelIndex: s.index,
		LevelID:    lvl.ID,
		Policy:     s.opts.Policy.Name(),
		Solved:     s.opts.Policy.Evaluate(lvl, pt),
		Regions:    pt.Regions,
		PathLen:    len(closed),
	}
	s.last = &ev
	s.logger.Info("path closed", "level", lvl.ID, "solved", ev.Solved, "regions", len(ev.Regions), "points", ev.PathLen)

	if s.opts.OnEvaluate != nil {
		s.opts.OnEvaluate(ev)
	}

	switch {
	case !ev.Solved && s.opts.RequireSolution:
		s.state = StatePlaying
	case s.index+1 < len(s.levels):
		s.load(s.index + 1)
	default:
		s.state = StateFinished
		s.logger.Info("all levels played", "levels", len(s.levels))
	}
}

// Frame advances the session by one frame of input.
// A finished session ignores all input.
func (s *Session) Frame(in FrameInput) FrameOutput {
	s.last = nil
	if s.state == StateFinished {
		return s.output(Hover{})
	}

	if in.Cancel {
		s.builder.Cancel()
	}

	hover := s.opts.Mapper.Map(in.Layout, in.Pointer, s.Level())
	if in.Pressed && hover.Eligible {
		res := s.builder.TryAppend(hover.Point)
		s.logger.Debug("append", "point", hover.Point, "result", res)
	}
	return s.output(hover)
}

func (s *Session) output(h Hover) FrameOutput {
	return FrameOutput{
		State:      s.state,
		Level:      s.Level(),
		Path:       s.builder.Points(),
		Hover:      h,
		Evaluation: s.last,
	}
}

// TryAppend offers a grid point directly, bypassing the pointer mapper.
func (s *Session) TryAppend(p Point) AppendResult {
	if s.state == StateFinished {
		return RejectedNotStart
	}
	s.last = nil
	return s.builder.TryAppend(p)
}

// Check returns what TryAppend would answer for p.
func (s *Session) Check(p Point) AppendResult {
	return s.builder.Check(p)
}

// Cancel clears the path being drawn.
func (s *Session) Cancel() {
	s.builder.Cancel()
}

// LastEvaluation returns the evaluation produced by the latest Frame or TryAppend call.
func (s *Session) LastEvaluation() *Evaluation {
	return s.last
}

// State returns the lifecycle stage.
func (s *Session) State() State {
	return s.state
}

// Level returns the active level.
func (s *Session) Level() *Level {
	return s.levels[s.index]
}

// LevelIndex returns the 0-based index of the active level.
func (s *Session) LevelIndex() int {
	return s.index
}

// LevelCount returns the number of levels in the session.
func (s *Session) LevelCount() int {
	return len(s.levels)
}

// Path returns a copy of the path being drawn.
func (s *Session) Path() []Point {
	return s.builder.Points()
}
