package ratio

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/ratio/internal/core"
	"github.com/vovakirdan/ratio/internal/games/ratio/core"
)

// pieceGlyph returns the rune and color of a piece type.
func pieceGlyph(t core.CellType) (rune, platformcore.Color) {
	switch t {
	case core.CellSquare:
		return '■', platformcore.ColorSquare
	case core.CellTriangle:
		return '▲', platformcore.ColorTriangle
	case core.CellCircle:
		return '●', platformcore.ColorCircle
	default:
		return ' ', platformcore.ColorDefault
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderPath(dst)
	g.renderMarkers(dst)
	g.renderFooter(dst)

	if g.session.State() == core.StateFinished {
		g.renderOverlay(dst, "All levels played", fmt.Sprintf("Solved %d of %d | R: replay | any key: exit", g.solved, g.session.LevelCount()))
	}
}

// renderHUD draws the status lines above the board.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	lvl := g.session.Level()
	title := lvl.ID
	if lvl.Name != "" && lvl.Name != lvl.ID {
		title += " " + lvl.Name
	}
	hud := fmt.Sprintf(" Ratio | Level %d/%d: %s | Solved: %d | Rule: %s",
		g.session.LevelIndex()+1, g.session.LevelCount(), title, g.solved, g.policy.Name())
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorTitle)

	// Quota pieces
	x := 1
	dst.DrawTextWithColor(x, 1, "Quota:", platformcore.ColorMuted)
	x += 7
	for _, t := range []core.CellType{core.CellSquare, core.CellTriangle, core.CellCircle} {
		r, c := pieceGlyph(t)
		dst.SetWithColor(x, 1, r, c)
		n := fmt.Sprintf("x%d", lvl.Quota.Get(t))
		dst.DrawTextWithColor(x+1, 1, n, platformcore.ColorText)
		x += len(n) + 3
	}

	if g.last != nil {
		msg, color := "not solved", platformcore.ColorBad
		if g.last.Solved {
			msg, color = "solved", platformcore.ColorGood
		}
		result := fmt.Sprintf("Last: %s %s, %d regions", g.last.LevelID, msg, len(g.last.Regions))
		dst.DrawTextWithColor(x+2, 1, result, color)
	}

	dst.DrawHLine(0, 2, dst.Width(), '─', platformcore.ColorMuted)
}

// renderBoard draws the gutter lattice and the pieces.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	lvl := g.session.Level()
	lc := g.opts.Config.Layout
	pitchX := g.cellW + lc.MarginX
	pitchY := g.cellH + lc.MarginY

	left, bottom := g.screenPos(core.P(0, 0))
	right, top := g.screenPos(core.P(lvl.Width, lvl.Height))

	for j := 0; j <= lvl.Height; j++ {
		dst.DrawHLine(left, bottom-j*pitchY, right-left+1, '─', platformcore.ColorMuted)
	}
	for i := 0; i <= lvl.Width; i++ {
		dst.DrawVLine(left+i*pitchX, top, bottom-top+1, '│', platformcore.ColorMuted)
	}

	// Lattice points; only points inside the grid can be picked.
	for j := 0; j <= lvl.Height; j++ {
		for i := 0; i <= lvl.Width; i++ {
			x, y := g.screenPos(core.P(i, j))
			if lvl.InBounds(core.P(i, j)) {
				dst.SetWithColor(x, y, '┼', platformcore.ColorText)
			} else {
				dst.SetWithColor(x, y, '┼', platformcore.ColorMuted)
			}
		}
	}

	// Pieces sit in the middle of their cell, up and right of the cell's point.
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			r, c := pieceGlyph(lvl.At(x, y).Type)
			if r == ' ' {
				continue
			}
			sx, sy := g.screenPos(core.P(x, y))
			dst.SetWithColor(sx+1+g.cellW/2, sy-(g.cellH+1)/2, r, c)
		}
	}
}

// renderPath draws the path being built along the gutters.
func (g *Game) renderPath(dst *platformcore.Screen) {
	path := g.session.Path()
	for i := 1; i < len(path); i++ {
		ax, ay := g.screenPos(path[i-1])
		bx, by := g.screenPos(path[i])
		if ay == by {
			x0, x1 := min(ax, bx), max(ax, bx)
			dst.DrawHLine(x0, ay, x1-x0+1, '━', platformcore.ColorPath)
		} else {
			y0, y1 := min(ay, by), max(ay, by)
			dst.DrawVLine(ax, y0, y1-y0+1, '┃', platformcore.ColorPath)
		}
	}
	for _, p := range path {
		x, y := g.screenPos(p)
		dst.SetWithColor(x, y, '╋', platformcore.ColorPath)
	}
}

// renderMarkers draws the start and end points and the hovered point.
func (g *Game) renderMarkers(dst *platformcore.Screen) {
	lvl := g.session.Level()

	sx, sy := g.screenPos(lvl.Start)
	dst.SetWithColor(sx, sy, 'O', platformcore.ColorStart)
	ex, ey := g.screenPos(lvl.End)
	dst.SetWithColor(ex, ey, '■', platformcore.ColorEnd)

	h := g.out.Hover
	if !h.Eligible || g.out.Level != lvl {
		return
	}
	color := platformcore.ColorHoverMuted
	if g.session.Check(h.Point) == core.Accepted {
		color = platformcore.ColorHover
	}
	hx, hy := g.screenPos(h.Point)
	dst.SetWithColor(hx, hy, '◆', color)
}

// renderFooter draws the controls hint on the last line.
func (g *Game) renderFooter(dst *platformcore.Screen) {
	hint := " Click points on one row or column from O to ■ | Any key: clear path | R: restart | Q: quit"
	if utf8.RuneCountInString(hint) > dst.Width() {
		hint = " Click O..■ | key: clear | R | Q"
	}
	dst.DrawTextWithColor(0, dst.Height()-1, hint, platformcore.ColorMuted)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	boxW := maxLen + 4
	boxH := 5
	box := platformcore.NewRect(
		platformcore.Clamp((w-boxW)/2, 0, w),
		platformcore.Clamp((h-boxH)/2, 0, h),
		boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, platformcore.ColorTitle)

	_, cy := box.Center()
	dst.DrawTextCentered(cy-1, line1)
	dst.DrawTextCentered(cy+1, line2)
}
