package maze

import "fmt"

// ValidationError describes a broken grid invariant.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) error {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks that g is a well-formed generated maze:
//   - odd dimensions of at least MinSize
//   - closed border apart from the entrance and exit breaches
//   - wall on every even/even lattice point
//   - every open cell reachable from the start
//   - open cells other than the breaches form a tree
func Validate(g *Grid) error {
	w, h := g.Width(), g.Height()
	if w < MinSize || h < MinSize || w%2 == 0 || h%2 == 0 {
		return invalid("BAD_SIZE", "grid is %dx%d, need odd dimensions >= %d", w, h, MinSize)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := Point{X: x, Y: y}
			onBorder := x == 0 || y == 0 || x == w-1 || y == h-1
			switch {
			case g.IsBreach(p):
				if !g.IsOpen(x, y) {
					return invalid("BREACH_CLOSED", "breach cell (%d,%d) is a wall", x, y)
				}
			case onBorder && g.IsOpen(x, y):
				return invalid("BORDER_OPEN", "border cell (%d,%d) is open", x, y)
			case x%2 == 0 && y%2 == 0 && g.IsOpen(x, y):
				return invalid("PARITY", "lattice cell (%d,%d) is open", x, y)
			}
		}
	}

	reach := Reachable(g, g.Start())
	if open := g.OpenCount(); len(reach) != open {
		return invalid("DISCONNECTED", "%d of %d open cells reachable from start", len(reach), open)
	}

	nodes, edges := 0, 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := Point{X: x, Y: y}
			if !g.IsOpen(x, y) || g.IsBreach(p) {
				continue
			}
			nodes++
			if right := (Point{X: x + 1, Y: y}); g.IsOpen(right.X, right.Y) && !g.IsBreach(right) {
				edges++
			}
			if down := (Point{X: x, Y: y + 1}); g.IsOpen(down.X, down.Y) && !g.IsBreach(down) {
				edges++
			}
		}
	}
	if edges != nodes-1 {
		return invalid("CYCLE", "%d passages between %d cells, a tree has %d", edges, nodes, nodes-1)
	}

	return nil
}
