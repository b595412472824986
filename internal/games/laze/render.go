package laze

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-laze/internal/core"
	"github.com/vovakirdan/tui-laze/internal/maze"
	"github.com/vovakirdan/tui-laze/internal/nav"
)

// Minimum terminal size for the first-person view.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Visual characters for rendering
const (
	StarChar      = '.'
	BrightStar    = '*'
	FloorGridChar = '·'
	WallEdgeChar  = '│'
)

// wallRunes orders wall textures from nearest to farthest.
var wallRunes = []rune{'█', '▓', '▒', '░'}

// star is a fixed point on the sky dome.
type star struct {
	azimuth   float64 // degrees
	elevation float64 // 0 at the horizon, 1 at the top of the view
	bright    bool
}

func makeStars(seed int64, n int) []star {
	rng := rand.New(rand.NewSource(seed ^ 0x5eed))
	stars := make([]star, n)
	for i := range stars {
		stars[i] = star{
			azimuth:   rng.Float64() * 360,
			elevation: 0.15 + rng.Float64()*0.85,
			bright:    rng.Intn(5) == 0,
		}
	}
	return stars
}

// rayHit describes where a ray stopped.
type rayHit struct {
	dist  float64 // perpendicular distance to the camera plane
	side  int     // 0 = crossed a vertical grid line, 1 = horizontal
	wallU float64 // hit position along the wall face, [0, 1)
	exit  bool
}

// castRay walks the grid with DDA from (px, pz) in direction (dx, dz).
// Coordinates are shifted by half a cell so cell c spans [c, c+1).
// ok is false when nothing was hit within maxDepth.
func castRay(g *maze.Grid, exit maze.Point, px, pz, dx, dz, maxDepth float64) (rayHit, bool) {
	mapX, mapZ := int(math.Floor(px)), int(math.Floor(pz))

	deltaX, deltaZ := math.Inf(1), math.Inf(1)
	if dx != 0 {
		deltaX = math.Abs(1 / dx)
	}
	if dz != 0 {
		deltaZ = math.Abs(1 / dz)
	}

	stepX, stepZ := 1, 1
	sideX := (float64(mapX) + 1 - px) * deltaX
	if dx < 0 {
		stepX = -1
		sideX = (px - float64(mapX)) * deltaX
	}
	sideZ := (float64(mapZ) + 1 - pz) * deltaZ
	if dz < 0 {
		stepZ = -1
		sideZ = (pz - float64(mapZ)) * deltaZ
	}

	for {
		var hit rayHit
		if sideX < sideZ {
			hit.dist = sideX
			sideX += deltaX
			mapX += stepX
			hit.side = 0
		} else {
			hit.dist = sideZ
			sideZ += deltaZ
			mapZ += stepZ
			hit.side = 1
		}
		if hit.dist > maxDepth {
			return rayHit{}, false
		}

		cell := maze.Point{X: mapX, Y: mapZ}
		if cell == exit || !g.IsOpen(mapX, mapZ) {
			if hit.side == 0 {
				hit.wallU = pz + hit.dist*dz
			} else {
				hit.wallU = px + hit.dist*dx
			}
			hit.wallU -= math.Floor(hit.wallU)
			hit.exit = cell == exit
			return hit, true
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if g.world == nil {
		return
	}
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, "enlarge the terminal", core.ColorYellow)
		return
	}

	view := core.NewRect(0, 1, w, h-2)
	g.renderView(dst, view)
	if g.showMap {
		g.renderMinimap(dst, view)
	}
	g.renderHUD(dst)

	switch {
	case g.gameOver:
		g.renderGameOver(dst)
	case g.paused:
		g.renderPaused(dst)
	case g.banner > 0:
		g.renderBanner(dst)
	}
}

// horizon returns the screen row of the horizon for the current pitch.
func (g *Game) horizon(view core.Rect) int {
	return view.Y + view.H/2 - int(g.player.Pitch/90*float64(view.H))
}

func (g *Game) renderView(dst *core.Screen, view core.Rect) {
	grid := g.world.Grid()
	exit := grid.Exit()
	pos := g.world.Position()
	px, pz := pos.X+0.5, pos.Z+0.5

	fwd, side := nav.Heading(g.player.Yaw)
	plane := math.Tan(g.cfg.Camera.FOV * math.Pi / 360)
	horizon := g.horizon(view)
	eye := g.player.EyeY
	scale := float64(view.H)
	maxDepth := g.cfg.Render.MaxDepth

	g.renderSky(dst, view, horizon)

	for col := 0; col < view.W; col++ {
		camX := 2*float64(col)/float64(view.W) - 1
		rayX := fwd.X + side.X*plane*camX
		rayZ := fwd.Z + side.Z*plane*camX
		x := view.X + col

		hit, ok := castRay(grid, exit, px, pz, rayX, rayZ, maxDepth)

		floorFrom := max(horizon+1, view.Y)
		if ok {
			lineH := scale / max(hit.dist, 0.05)
			top := horizon - int((1-eye)*lineH)
			bottom := horizon + int(eye*lineH)
			for y := max(top, view.Y); y <= min(bottom, view.Bottom()-1); y++ {
				r, c := g.wallCell(hit)
				dst.SetColor(x, y, r, c)
			}
			floorFrom = max(bottom+1, view.Y)
		}

		for y := floorFrom; y < view.Bottom(); y++ {
			p := float64(y - horizon)
			if p <= 0 {
				continue
			}
			rowDist := eye * scale / p
			if g.cfg.Render.Fog && rowDist > maxDepth*0.6 {
				continue
			}
			if onGridLine(px+rayX*rowDist, pz+rayZ*rowDist) {
				dst.SetColor(x, y, FloorGridChar, core.ColorGrid)
			}
		}
	}
}

// wallCell picks the glyph and color for a wall slice.
func (g *Game) wallCell(hit rayHit) (rune, core.Color) {
	if hit.exit {
		if (g.tick/15)%2 == 0 {
			return '▓', core.ColorBrightCyan
		}
		return '▒', core.ColorBrightCyan
	}

	maxDepth := g.cfg.Render.MaxDepth
	t := hit.dist / maxDepth
	if hit.side == 1 {
		t += 0.15
	}
	color := core.Shade(core.WallShades, t)

	if hit.dist < maxDepth/3 && (hit.wallU < 0.05 || hit.wallU > 0.95) {
		return WallEdgeChar, core.ColorNeon
	}

	i := int(hit.dist / 3)
	if g.cfg.Render.Fog && t > 0.75 {
		i = len(wallRunes) - 1
	}
	return wallRunes[min(i, len(wallRunes)-1)], color
}

func onGridLine(x, z float64) bool {
	const width = 0.08
	fx, fz := x-math.Floor(x), z-math.Floor(z)
	return fx < width || fx > 1-width || fz < width || fz > 1-width
}

// renderSky draws the stars and the sun above the horizon. Walls drawn
// afterwards cover them.
func (g *Game) renderSky(dst *core.Screen, view core.Rect, horizon int) {
	fov := g.cfg.Camera.FOV
	skyH := horizon - view.Y
	if skyH <= 0 {
		return
	}

	column := func(azimuth float64) (int, bool) {
		rel := wrapDegrees(azimuth-g.player.Yaw+180) - 180
		if math.Abs(rel) > fov/2 {
			return 0, false
		}
		return view.X + int((rel/fov+0.5)*float64(view.W)), true
	}

	for _, s := range g.stars {
		x, ok := column(s.azimuth)
		if !ok {
			continue
		}
		y := horizon - 1 - int(s.elevation*float64(skyH))
		if y < view.Y {
			continue
		}
		if s.bright {
			dst.SetColor(x, y, BrightStar, core.ColorBrightWhite)
		} else {
			dst.SetColor(x, y, StarChar, core.ColorViolet)
		}
	}

	// The sun sits low in the north.
	if x, ok := column(0); ok && skyH > 3 {
		dst.DrawTextColor(x-2, horizon-3, "▄███▄", core.ColorOrange)
		dst.DrawTextColor(x-3, horizon-2, "███████", core.ColorPink)
		dst.DrawTextColor(x-3, horizon-1, "▀▀▀▀▀▀▀", core.ColorDusk)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	grid := g.world.Grid()

	mode := "ENDLESS"
	if g.mode == ModeDaily {
		mode = "DAILY"
	}
	status := fmt.Sprintf(" %s  LEVEL %d  %dx%d  CLEARED %d  EXIT %.1f  %s",
		mode, g.world.Level(), grid.Width(), grid.Height(),
		g.world.Cleared(), g.world.DistanceToExit(), g.player.Compass())
	dst.DrawTextColor(0, 0, padRight(status, w), core.ColorBrightCyan)

	help := " WASD move  ←→ turn  J/K look  SHIFT run  SPACE jump  TAB map  F hint  P pause  Q quit"
	dst.DrawTextColor(0, h-1, padRight(help, w), core.ColorGray)
}

func (g *Game) renderBanner(dst *core.Screen) {
	grid := g.world.Grid()
	lines := []string{
		fmt.Sprintf("LEVEL %d CLEARED", g.world.Cleared()),
		fmt.Sprintf("entering a %dx%d maze", grid.Width(), grid.Height()),
	}
	drawDialog(dst, lines, core.ColorBrightCyan)
}

func (g *Game) renderPaused(dst *core.Screen) {
	lines := []string{
		"PAUSED",
		"",
		"P resume   G give up   Q quit",
	}
	drawDialog(dst, lines, core.ColorYellow)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []string{
		"RUN OVER",
		"",
		fmt.Sprintf("levels cleared: %d", g.world.Cleared()),
		fmt.Sprintf("seed: %d", g.seed),
	}
	if g.err != nil {
		lines = append(lines, g.err.Error())
	}
	lines = append(lines, "", "R new run   B menu   Q quit")
	drawDialog(dst, lines, core.ColorRed)
}

// drawDialog draws centred lines inside a boxed panel.
func drawDialog(dst *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	r := core.CenteredRect(width+6, len(lines)+2, dst.Width(), dst.Height())
	dst.DrawPanel(r, c)
	for i, l := range lines {
		x := r.X + (r.W-utf8.RuneCountInString(l))/2
		dst.DrawTextColor(x, r.Y+1+i, l, c)
	}
}

func padRight(s string, w int) string {
	if n := utf8.RuneCountInString(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
