// Package nav answers movement questions against a maze grid: which
// continuous positions are walkable, how a displacement resolves against
// walls, and whether a position has reached the exit.
//
// World coordinates map to grid cells by rounding: X selects the column and
// Z selects the row, so cell (c, r) covers [c-0.5, c+0.5) x [r-0.5, r+0.5).
package nav

import (
	"math"

	"github.com/vovakirdan/tui-laze/internal/maze"
)

const (
	// Buffer is the clearance kept between the player and a wall face.
	Buffer = 0.3

	// ExitRadius is the planar distance from the exit cell centre that
	// counts as reaching it.
	ExitRadius = 1.0
)

// Vec2 is a position or displacement on the XZ plane.
type Vec2 struct {
	X float64
	Z float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Z: v.Z + o.Z}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Z: v.Z * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Z)
}

// IsWalkable reports whether the continuous position (x, z) lies in an open
// cell. Positions beyond half a cell outside the grid are never walkable.
func IsWalkable(g *maze.Grid, x, z float64) bool {
	w, h := float64(g.Width()), float64(g.Height())
	if x < -0.5 || z < -0.5 || x > w-0.5 || z > h-0.5 {
		return false
	}

	// Halves round away from zero (2.5 -> 3), not to even.
	col := int(math.Round(x))
	row := int(math.Round(z))
	if !g.InBounds(col, row) {
		return false
	}
	return g.At(col, row) == maze.Open
}

// ResolveMove applies d to pos one axis at a time with the default Buffer.
func ResolveMove(g *maze.Grid, pos, d Vec2) Vec2 {
	return ResolveMoveBuffered(g, pos, d, Buffer)
}

// ResolveMoveBuffered applies d to pos one axis at a time. The X component
// is checked first at the original Z; the Z component is then checked at the
// resulting X. Each check looks buffer units past the target in the
// direction of travel, and a blocked axis is dropped while the other still
// applies, which lets the player slide along walls.
func ResolveMoveBuffered(g *maze.Grid, pos, d Vec2, buffer float64) Vec2 {
	out := pos

	if d.X != 0 {
		ahead := out.X + d.X + math.Copysign(buffer, d.X)
		if IsWalkable(g, ahead, out.Z) {
			out.X += d.X
		}
	}

	if d.Z != 0 {
		ahead := out.Z + d.Z + math.Copysign(buffer, d.Z)
		if IsWalkable(g, out.X, ahead) {
			out.Z += d.Z
		}
	}

	return out
}

// CheckExit reports whether pos is within ExitRadius of the exit cell centre.
func CheckExit(pos Vec2, exit maze.Point) bool {
	return CheckExitRadius(pos, exit, ExitRadius)
}

// CheckExitRadius is CheckExit with an explicit radius.
func CheckExitRadius(pos Vec2, exit maze.Point, radius float64) bool {
	return Distance(pos, exit) < radius
}

// Distance returns the planar distance from pos to the centre of cell p.
func Distance(pos Vec2, p maze.Point) float64 {
	return math.Hypot(pos.X-float64(p.X), pos.Z-float64(p.Y))
}

// CellCenter returns the world position of the centre of cell p.
func CellCenter(p maze.Point) Vec2 {
	return Vec2{X: float64(p.X), Z: float64(p.Y)}
}

// CellAt returns the grid cell containing pos.
func CellAt(pos Vec2) maze.Point {
	return maze.Point{X: int(math.Round(pos.X)), Y: int(math.Round(pos.Z))}
}

// Heading returns the unit forward and right-hand side vectors for a yaw
// angle in degrees. Yaw 0 faces -Z (north on the grid); yaw grows clockwise.
func Heading(yawDeg float64) (forward, side Vec2) {
	rad := yawDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	forward = Vec2{X: sin, Z: -cos}
	side = Vec2{X: cos, Z: sin}
	return forward, side
}

// Displacement combines forward and strafe intents (each typically -1, 0
// or 1) into a planar step of the given speed.
func Displacement(yawDeg, forward, strafe, speed float64) Vec2 {
	f, s := Heading(yawDeg)
	return f.Scale(forward).Add(s.Scale(strafe)).Scale(speed)
}
