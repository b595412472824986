package maze

import (
	"errors"
	"fmt"
	"math/rand"
)

// MinSize is the smallest grid dimension generation produces.
const MinSize = 3

// ErrInvalidSize is returned for non-positive requested dimensions.
var ErrInvalidSize = errors.New("maze: size must be positive")

// Source supplies uniformly distributed draws in [0, n).
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded math/rand source.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Normalize maps a requested dimension to the grid dimension actually
// generated: even values grow by one and anything below MinSize becomes
// MinSize. Non-positive values are rejected.
func Normalize(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	if n%2 == 0 {
		n++
	}
	if n < MinSize {
		n = MinSize
	}
	return n, nil
}

// steps are the four carving moves, two cells apart.
var steps = [4]Point{{0, 2}, {0, -2}, {2, 0}, {-2, 0}}

// Generate carves a perfect maze with a randomized iterative depth-first
// search starting at (1,1), then breaches the west border next to the start
// and the east border next to the far corner.
//
// The returned grid is complete; on error no grid is returned.
func Generate(width, height int, src Source) (*Grid, error) {
	w, err := Normalize(width)
	if err != nil {
		return nil, err
	}
	h, err := Normalize(height)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("maze: nil random source")
	}

	c := newCarver(NewGrid(w, h), src)
	c.carve(Point{X: 1, Y: 1})

	g := c.grid
	entrance, exit := g.Entrance(), g.Exit()
	g.Set(entrance.X, entrance.Y, Open)
	g.Set(exit.X, exit.Y, Open)
	return g, nil
}

// carver holds the mutable state of one generation run.
type carver struct {
	grid  *Grid
	src   Source
	stack []Point
	dirs  [4]Point
}

func newCarver(g *Grid, src Source) *carver {
	return &carver{
		grid:  g,
		src:   src,
		stack: make([]Point, 0, (g.width/2)*(g.height/2)),
		dirs:  steps,
	}
}

func (c *carver) carve(start Point) {
	c.grid.Set(start.X, start.Y, Open)
	c.stack = append(c.stack, start)

	for len(c.stack) > 0 {
		cur := c.stack[len(c.stack)-1]
		c.shuffle()

		advanced := false
		for _, d := range c.dirs {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if !c.grid.InBounds(nx, ny) || c.grid.At(nx, ny) != Wall {
				continue
			}
			c.grid.Set(cur.X+d.X/2, cur.Y+d.Y/2, Open)
			c.grid.Set(nx, ny, Open)
			c.stack = append(c.stack, Point{X: nx, Y: ny})
			advanced = true
			break
		}
		if !advanced {
			c.stack = c.stack[:len(c.stack)-1]
		}
	}
}

// shuffle resets dirs and permutes it (Fisher-Yates).
func (c *carver) shuffle() {
	c.dirs = steps
	for i := len(c.dirs) - 1; i > 0; i-- {
		j := c.src.Intn(i + 1)
		c.dirs[i], c.dirs[j] = c.dirs[j], c.dirs[i]
	}
}
