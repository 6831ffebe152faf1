package ratio

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/ratio/internal/config"
	platformcore "github.com/vovakirdan/ratio/internal/core"
	"github.com/vovakirdan/ratio/internal/games/ratio/core"
)

type fakeRecorder struct {
	runs  []string
	evals []core.Evaluation
	err   error
}

func (r *fakeRecorder) RecordEvaluation(runID string, ev core.Evaluation) error {
	r.runs = append(r.runs, runID)
	r.evals = append(r.evals, ev)
	return r.err
}

func testLevels(t *testing.T) []*core.Level {
	t.Helper()
	var lvls []*core.Level
	for _, id := range []string{"A", "B"} {
		types := make([]core.CellType, 9)
		types[4] = core.CellSquare
		lvl, err := core.NewLevel(id, 3, 3, types, core.Counts{Square: 1}, core.P(0, 0), core.P(2, 2))
		if err != nil {
			t.Fatalf("NewLevel failed: %v", err)
		}
		lvls = append(lvls, lvl)
	}
	return lvls
}

func newTestGame(t *testing.T, rec Recorder) *Game {
	t.Helper()
	g, err := New(Options{
		Levels:   testLevels(t),
		Config:   config.DefaultRatioConfig(),
		Recorder: rec,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30})
	return g
}

// click presses the primary button on grid point p.
func click(g *Game, p core.Point) platformcore.StepResult {
	x, y := g.screenPos(p)
	in := platformcore.NewInputFrame()
	in.Press(x, y)
	return g.Step(in)
}

func TestGameMouseCompletesLevels(t *testing.T) {
	rec := &fakeRecorder{}
	g := newTestGame(t, rec)

	route := []core.Point{core.P(0, 0), core.P(0, 2), core.P(2, 2)}
	for _, p := range route {
		click(g, p)
	}

	st := g.State()
	if st.Level != 2 || st.Levels != 2 {
		t.Fatalf("expected level 2/2, got %d/%d", st.Level, st.Levels)
	}
	if st.Solved != 1 {
		t.Errorf("expected 1 solved level, got %d", st.Solved)
	}
	if len(rec.evals) != 1 || rec.runs[0] != g.RunID() {
		t.Fatalf("expected one recorded evaluation for run %s, got %v", g.RunID(), rec.runs)
	}
	if rec.evals[0].LevelID != "A" || rec.evals[0].PathLen != 3 {
		t.Errorf("unexpected evaluation %+v", rec.evals[0])
	}

	var res platformcore.StepResult
	for _, p := range route {
		res = click(g, p)
	}
	if !res.State.GameOver || !res.State.Finished {
		t.Errorf("expected finished after the last level, got %+v", res.State)
	}
	if g.LastEvaluation() == nil || g.LastEvaluation().LevelID != "B" {
		t.Errorf("expected last evaluation for B, got %+v", g.LastEvaluation())
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	for _, want := range []string{"All levels played", "Solved 2 of 2", "R: replay"} {
		if !strings.Contains(screen.String(), want) {
			t.Errorf("expected %q on the final screen", want)
		}
	}
}

func TestGameCancelKey(t *testing.T) {
	g := newTestGame(t, nil)

	click(g, core.P(0, 0))
	click(g, core.P(0, 1))
	if n := len(g.Session().Path()); n != 2 {
		t.Fatalf("expected 2 points, got %d", n)
	}

	in := platformcore.NewInputFrame()
	in.Set(platformcore.ActionCancel)
	g.Step(in)

	if n := len(g.Session().Path()); n != 0 {
		t.Errorf("expected path cleared, got %d points", n)
	}
}

func TestGamePressUsesPressPosition(t *testing.T) {
	g := newTestGame(t, nil)
	click(g, core.P(0, 0))

	// The pointer drifts to (1,1) between the press on (0,2) and the tick.
	px, py := g.screenPos(core.P(0, 2))
	mx, my := g.screenPos(core.P(1, 1))
	in := platformcore.NewInputFrame()
	in.Press(px, py)
	in.MovePointer(mx, my)
	g.Step(in)

	path := g.Session().Path()
	if len(path) != 2 || path[1] != core.P(0, 2) {
		t.Fatalf("path = %v, want [(0,0) (0,2)]", path)
	}
}

func TestGamePointerMissesGap(t *testing.T) {
	g := newTestGame(t, nil)

	// The middle of a cell is far from every grid point.
	x, y := g.screenPos(core.P(0, 0))
	in := platformcore.NewInputFrame()
	in.Press(x+1+g.cellW/2, y-(g.cellH+1)/2)
	g.Step(in)

	if n := len(g.Session().Path()); n != 0 {
		t.Errorf("expected no point picked, got %d", n)
	}
}

func TestGameRecorderErrorIgnored(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	g := newTestGame(t, rec)

	for _, p := range []core.Point{core.P(0, 0), core.P(2, 0), core.P(2, 2)} {
		click(g, p)
	}
	if g.State().Level != 2 {
		t.Errorf("expected to advance despite recorder error, got level %d", g.State().Level)
	}
}

func TestGameRestart(t *testing.T) {
	g := newTestGame(t, nil)
	first := g.RunID()

	for _, p := range []core.Point{core.P(0, 0), core.P(0, 2), core.P(2, 2)} {
		click(g, p)
	}

	in := platformcore.NewInputFrame()
	in.Set(platformcore.ActionRestart)
	g.Step(in)

	if g.State().Level != 1 || g.State().Solved != 0 {
		t.Errorf("expected fresh run, got %+v", g.State())
	}
	if g.RunID() == first {
		t.Error("expected a new run ID after restart")
	}
}

func TestGameResizeKeepsProgress(t *testing.T) {
	g := newTestGame(t, nil)
	click(g, core.P(0, 0))

	g.Resize(100, 40)
	if n := len(g.Session().Path()); n != 1 {
		t.Errorf("expected path kept on resize, got %d points", n)
	}

	// Points are still reachable with the new layout.
	click(g, core.P(0, 2))
	if n := len(g.Session().Path()); n != 2 {
		t.Errorf("expected 2 points after resize, got %d", n)
	}
}

func TestGameTooSmall(t *testing.T) {
	g := newTestGame(t, nil)
	g.Resize(10, 6)

	if !g.tooSmall {
		t.Fatal("expected too small")
	}
	click(g, core.P(0, 0))
	if n := len(g.Session().Path()); n != 0 {
		t.Errorf("expected input ignored while too small, got %d points", n)
	}

	screen := platformcore.NewScreen(40, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Resize") {
		t.Errorf("expected resize hint, got:\n%s", screen.String())
	}
}

func TestGameShrinksCells(t *testing.T) {
	g := newTestGame(t, nil)
	g.Resize(20, 14)

	if g.tooSmall {
		t.Fatal("expected board to fit with smaller cells")
	}
	if g.cellW >= config.DefaultRatioConfig().Layout.CellWidth {
		t.Errorf("expected cells to shrink, got width %d", g.cellW)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, nil)
	click(g, core.P(0, 0))
	click(g, core.P(0, 2))
	click(g, core.P(1, 2))

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Ratio", "Level 1/2", "Quota:", "■", "┃", "━"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in render", want)
		}
	}

	// Start, end and hover markers cover their points; the interior
	// vertex shows the path joint.
	vx, vy := g.screenPos(core.P(0, 2))
	if got := screen.Get(vx, vy); got != '╋' {
		t.Errorf("expected path joint at (0,2), got %q", got)
	}
	hx, hy := g.screenPos(core.P(1, 2))
	if got := screen.Get(hx, hy); got != '◆' {
		t.Errorf("expected hover marker at (1,2), got %q", got)
	}

	sx, sy := g.screenPos(core.P(1, 1))
	if got := screen.Get(sx+1+g.cellW/2, sy-(g.cellH+1)/2); got != '■' {
		t.Errorf("expected square piece in cell (1,1), got %q", got)
	}
	ex, ey := g.screenPos(core.P(2, 2))
	if got := screen.Get(ex, ey); got != '■' {
		t.Errorf("expected end marker, got %q", got)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(Options{Config: config.DefaultRatioConfig()}); !errors.Is(err, core.ErrNoLevels) {
		t.Errorf("expected ErrNoLevels, got %v", err)
	}

	if _, err := New(Options{Levels: testLevels(t), Config: config.DefaultRatioConfig(), StartLevel: 3}); err == nil {
		t.Error("expected error for start level past the end")
	}

	cfg := config.DefaultRatioConfig()
	cfg.Rules.Policy = "nope"
	if _, err := New(Options{Levels: testLevels(t), Config: cfg}); err == nil {
		t.Error("expected error for unknown policy")
	}
}
