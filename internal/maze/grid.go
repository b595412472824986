// Package maze generates perfect mazes on odd-sized grids and provides the
// grid type the rest of the game walks on. It has no dependencies on the
// presentation layer so generation stays deterministic and testable.
package maze

import (
	"fmt"
	"strings"
)

// Cell is the state of a single grid square.
type Cell uint8

const (
	Wall Cell = iota
	Open
)

// String returns the cell's ASCII form.
func (c Cell) String() string {
	if c == Wall {
		return "#"
	}
	return "."
}

// Point is a grid coordinate. X is the column, Y is the row.
// In world space X maps to the X axis and Y to the Z axis.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is a height×width array of cells stored row-major.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid allocates a grid with every cell set to Wall.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height), // Wall is the zero value
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) is inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y). Out-of-bounds reads return Wall.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.width+x]
}

// IsOpen reports whether (x, y) is an in-bounds open cell.
func (g *Grid) IsOpen(x, y int) bool {
	return g.At(x, y) == Open
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = c
}

// Start is the cell carving begins from.
func (g *Grid) Start() Point {
	return Point{X: 1, Y: 1}
}

// Entrance is the west border breach next to the start cell.
func (g *Grid) Entrance() Point {
	return Point{X: 0, Y: 1}
}

// Exit is the east border breach next to the far corner.
func (g *Grid) Exit() Point {
	return Point{X: g.width - 1, Y: g.height - 2}
}

// IsBreach reports whether p is the entrance or the exit.
func (g *Grid) IsBreach(p Point) bool {
	return p == g.Entrance() || p == g.Exit()
}

// OpenCount returns the number of open cells.
func (g *Grid) OpenCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Open {
			n++
		}
	}
	return n
}

// Neighbors returns the in-bounds open cells orthogonally adjacent to p.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range orthogonal {
		n := Point{X: p.X + d.X, Y: p.Y + d.Y}
		if g.IsOpen(n.X, n.Y) {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns the grid as strings, '#' for walls and '.' for open cells.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		sb.Reset()
		sb.Grow(g.width)
		for x := 0; x < g.width; x++ {
			if g.At(x, y) == Wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// FromRows builds a grid from text rows. '#' is a wall; '.' and ' ' are
// open. All rows must have the same length.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("maze: empty grid")
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("maze: empty first row")
	}

	g := NewGrid(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("maze: row %d has length %d, expected %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			switch row[x] {
			case '#':
				g.Set(x, y, Wall)
			case '.', ' ':
				g.Set(x, y, Open)
			default:
				return nil, fmt.Errorf("maze: unexpected %q at row %d col %d", row[x], y, x)
			}
		}
	}
	return g, nil
}

var orthogonal = []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
