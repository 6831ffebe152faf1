package core_test

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"

	"github.com/vovakirdan/ratio/internal/games/ratio/core"
)

func testLayout() core.Layout {
	return core.Layout{
		Origin: f64.Vec2{3, 2},
		Cell:   f64.Vec2{7, 3},
		Margin: f64.Vec2{2, 1},
	}
}

func TestMapperCenterIsExact(t *testing.T) {
	lvl := emptyLevel(t, 4, 4, core.P(0, 0), core.P(3, 3))
	layout := testLayout()
	m := core.NewMapper(0)

	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			p := core.P(x, y)
			h := m.Map(layout, layout.Center(p), lvl)
			if h.Point != p {
				t.Errorf("center of %s mapped to %s", p, h.Point)
			}
			if h.Distance != 0 {
				t.Errorf("center of %s: expected distance 0, got %f", p, h.Distance)
			}
			if !h.Eligible {
				t.Errorf("center of %s: expected eligible", p)
			}
		}
	}
}

func TestMapperSnapRadius(t *testing.T) {
	lvl := emptyLevel(t, 4, 4, core.P(0, 0), core.P(3, 3))
	layout := testLayout()
	m := core.NewMapper(2.5)
	c := layout.Center(core.P(1, 2))

	testCases := []struct {
		name     string
		pointer  f64.Vec2
		point    core.Point
		eligible bool
	}{
		{"near", f64.Vec2{c[0] + 1, c[1] + 1}, core.P(1, 2), true},
		{"at radius", f64.Vec2{c[0] + 2.5, c[1]}, core.P(1, 2), false},
		{"cell middle", f64.Vec2{c[0] + 4, c[1] + 1}, core.P(1, 2), false},
		{"next point", f64.Vec2{c[0] + 5, c[1]}, core.P(2, 2), false},
		{"outside grid", layout.Center(core.P(4, 0)), core.P(4, 0), false},
		{"left of grid", layout.Center(core.P(-1, 0)), core.P(-1, 0), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := m.Map(layout, tc.pointer, lvl)
			if h.Point != tc.point {
				t.Errorf("expected %s, got %s", tc.point, h.Point)
			}
			if h.Eligible != tc.eligible {
				t.Errorf("expected eligible=%v, got %v (distance %f)", tc.eligible, h.Eligible, h.Distance)
			}
		})
	}
}

func TestNearestZeroPitch(t *testing.T) {
	_, d := core.Nearest(core.Layout{}, f64.Vec2{1, 1})
	if !math.IsInf(d, 1) {
		t.Errorf("expected infinite distance, got %f", d)
	}
}

func TestNewMapperDefault(t *testing.T) {
	if m := core.NewMapper(-1); m.SnapRadius != core.DefaultSnapRadius {
		t.Errorf("expected default radius %f, got %f", core.DefaultSnapRadius, m.SnapRadius)
	}
}
