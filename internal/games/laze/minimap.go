package laze

import (
	"github.com/vovakirdan/tui-laze/internal/core"
	"github.com/vovakirdan/tui-laze/internal/maze"
	"github.com/vovakirdan/tui-laze/internal/nav"
)

// Minimap glyphs.
const (
	MapWallChar = '█'
	MapExitChar = '◆'
	MapHintChar = '·'
)

// arrowFor returns the player marker for a yaw in degrees.
func arrowFor(yaw float64) rune {
	switch int((wrapDegrees(yaw)+45)/90) % 4 {
	case 0:
		return '▲'
	case 1:
		return '▶'
	case 2:
		return '▼'
	default:
		return '◀'
	}
}

// mapWindow is the part of the grid shown on the minimap.
type mapWindow struct {
	panel  core.Rect
	origin maze.Point // grid cell drawn at the panel's top-left interior
	cols   int        // grid cells across
	rows   int        // grid cells down
	cellW  int        // characters per grid cell
}

// layoutMinimap fits the grid into the upper-right part of view, scrolling
// around the player when the grid does not fit.
func layoutMinimap(grid *maze.Grid, player maze.Point, view core.Rect) (mapWindow, bool) {
	maxW := view.W/2 - 2
	maxH := view.H - 4
	if maxW < 5 || maxH < 5 {
		return mapWindow{}, false
	}

	cellW := 2
	if grid.Width()*2 > maxW {
		cellW = 1
	}
	cols := min(grid.Width(), maxW/cellW)
	rows := min(grid.Height(), maxH)

	origin := maze.Point{
		X: core.Clamp(player.X-cols/2, 0, grid.Width()-cols),
		Y: core.Clamp(player.Y-rows/2, 0, grid.Height()-rows),
	}

	w := cols*cellW + 2
	h := rows + 2
	panel := core.NewRect(view.Right()-w-1, view.Y+1, w, h)
	return mapWindow{panel: panel, origin: origin, cols: cols, rows: rows, cellW: cellW}, true
}

func (g *Game) renderMinimap(dst *core.Screen, view core.Rect) {
	grid := g.world.Grid()
	pos := g.world.Position()
	player := nav.CellAt(pos)

	win, ok := layoutMinimap(grid, player, view)
	if !ok {
		return
	}
	dst.DrawPanel(win.panel, core.ColorSea)

	onRoute := make(map[maze.Point]bool)
	if g.showHint {
		for _, p := range g.hint() {
			onRoute[p] = true
		}
	}

	put := func(p maze.Point, r rune, c core.Color) {
		x := win.panel.X + 1 + (p.X-win.origin.X)*win.cellW
		y := win.panel.Y + 1 + (p.Y - win.origin.Y)
		dst.SetColor(x, y, r, c)
		if win.cellW == 2 && r == MapWallChar {
			dst.SetColor(x+1, y, r, c)
		}
	}

	for row := 0; row < win.rows; row++ {
		for col := 0; col < win.cols; col++ {
			p := maze.Point{X: win.origin.X + col, Y: win.origin.Y + row}
			switch {
			case !grid.IsOpen(p.X, p.Y):
				put(p, MapWallChar, core.ColorNavy)
			case p == grid.Exit():
				put(p, MapExitChar, core.ColorBrightCyan)
			case onRoute[p]:
				put(p, MapHintChar, core.ColorYellow)
			}
		}
	}

	if player.X >= win.origin.X && player.X < win.origin.X+win.cols &&
		player.Y >= win.origin.Y && player.Y < win.origin.Y+win.rows {
		put(player, arrowFor(g.player.Yaw), core.ColorPink)
	}
}
