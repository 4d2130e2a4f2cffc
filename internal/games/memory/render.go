package memory

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-memory/internal/core"
)

const (
	cellWidth   = 5 // Width of each cell (including left border)
	cellHeight  = 2 // Height of each cell (including top border)
	hudHeight   = 3
	minHUDWidth = 32
)

// boardLayout is where the grid sits on screen for the current board.
type boardLayout struct {
	side   int
	boardX int
	boardY int
	boardW int
	boardH int
}

func (g *Game) layout() boardLayout {
	side := max(g.session.GridSize(), 1)
	l := boardLayout{
		side:   side,
		boardW: side*cellWidth + 1,
		boardH: side*cellHeight + 1,
		boardY: hudHeight + 1,
	}
	l.boardX = max((g.screenW-l.boardW)/2, 0)
	return l
}

// bounds is the screen area covered by the grid, outer border included.
func (l boardLayout) bounds() core.Rect {
	return core.NewRect(l.boardX, l.boardY, l.boardW, l.boardH)
}

// TileAt maps a screen position to the board index drawn there.
// Grid lines and the empty cell of odd-sided grids are not tiles.
func (g *Game) TileAt(x, y int) (int, bool) {
	if g.session == nil || g.tooSmall {
		return 0, false
	}
	l := g.layout()
	if !l.bounds().Contains(x, y) {
		return 0, false
	}
	dx, dy := x-l.boardX, y-l.boardY
	if dx%cellWidth == 0 || dy%cellHeight == 0 {
		return 0, false
	}
	idx := (dy/cellHeight)*l.side + dx/cellWidth
	if idx >= len(g.session.State().Board) {
		return 0, false
	}
	return idx, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderHUD(dst, l)
	g.renderGrid(dst, l)
	g.renderTiles(dst, l)
	g.renderOverlays(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen, l boardLayout) {
	s := g.session
	hudW := max(l.boardW, minHUDWidth)
	hudX := max((g.screenW-hudW)/2, 0)

	title := g.Title()
	dst.DrawTextColored(hudX+(hudW-len(title))/2, 0, title, core.ColorBrightYellow)

	scoreColor := core.ColorDefault
	if s.Score() <= s.Rules().MismatchPenalty {
		scoreColor = core.ColorBrightRed
	}
	dst.DrawTextColored(hudX, 1, fmt.Sprintf("Score: %d", s.Score()), scoreColor)

	levelStr := fmt.Sprintf("Level %d", s.Level())
	dst.DrawText(hudX+hudW-len(levelStr), 1, levelStr)

	dst.DrawText(hudX, 2, fmt.Sprintf("Moves: %d", s.Moves()))
	pairs := fmt.Sprintf("Pairs %d/%d", s.State().MatchedPairs(), s.State().Pairs())
	dst.DrawText(hudX+hudW-len(pairs), 2, pairs)
}

// renderGrid draws the shared-border grid lines.
func (g *Game) renderGrid(dst *core.Screen, l boardLayout) {
	n := l.side
	for y := range n + 1 {
		for x := range n + 1 {
			px := l.boardX + x*cellWidth
			py := l.boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles draws every card face inside its cell.
func (g *Game) renderTiles(dst *core.Screen, l boardLayout) {
	for _, t := range g.session.Tiles() {
		cellX := l.boardX + (t.Index%l.side)*cellWidth + 1
		cellY := l.boardY + (t.Index/l.side)*cellHeight + 1

		face, color := tileFace(t)
		if t.Index == g.cursor && g.session.State().Accepting() {
			face = "[" + face + "]"
		} else {
			face = " " + face + " "
		}
		dst.DrawTextColored(cellX, cellY, face, color)
	}
}

// tileFace returns the glyph and color a tile is drawn with.
func tileFace(t TileView) (string, core.Color) {
	switch {
	case t.Matched:
		return Glyph(t.ID), core.ColorBrightGreen
	case t.Active:
		return Glyph(t.ID), core.PaletteColor(t.ID)
	default:
		return "??", core.ColorBlue
	}
}

func (g *Game) renderOverlays(dst *core.Screen, l boardLayout) {
	s := g.session
	centerX, centerY := l.bounds().Center()

	switch {
	case s.GameOver():
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightRed,
			"YOU LOST",
			fmt.Sprintf("Level %d  Moves %d", s.Level(), s.Moves()),
			"Retry or exit?",
			"R: Retry  X: Exit")
	case s.Paused():
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightYellow, "PAUSED", "Press P to resume")
	case s.Celebrating():
		secs := int(math.Ceil(s.CelebrationRemaining().Seconds()))
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightGreen,
			fmt.Sprintf("LEVEL %d CLEARED!", s.Level()),
			fmt.Sprintf("Next level in %d...", secs))
	}
}

// drawOverlay draws a centered, boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, c)

	for i, line := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = c
		}
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space/Click: Flip | P: Pause | R: Retry | X/Q: Exit"
}
