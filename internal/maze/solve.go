package maze

// Reachable flood-fills open cells from start using 4-neighbour adjacency.
// A closed start yields an empty set.
func Reachable(g *Grid, start Point) map[Point]bool {
	seen := make(map[Point]bool)
	if !g.IsOpen(start.X, start.Y) {
		return seen
	}

	queue := []Point{start}
	seen[start] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(cur) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}

// Solve returns the shortest open path from start to goal, both ends
// included, or nil when goal cannot be reached.
func Solve(g *Grid, start, goal Point) []Point {
	if !g.IsOpen(start.X, start.Y) || !g.IsOpen(goal.X, goal.Y) {
		return nil
	}

	cameFrom := map[Point]Point{start: start}
	queue := []Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == goal {
			var path []Point
			for p := goal; p != start; p = cameFrom[p] {
				path = append(path, p)
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, n := range g.Neighbors(cur) {
			if _, ok := cameFrom[n]; !ok {
				cameFrom[n] = cur
				queue = append(queue, n)
			}
		}
	}
	return nil
}

// Stats summarises a generated grid.
type Stats struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	OpenCells  int `json:"open_cells"`
	DeadEnds   int `json:"dead_ends"`
	PathLength int `json:"path_length"` // cells on the start→exit path, 0 if unsolvable
}

// Measure computes Stats for g.
func Measure(g *Grid) Stats {
	s := Stats{
		Width:     g.Width(),
		Height:    g.Height(),
		OpenCells: g.OpenCount(),
	}
	for y := 1; y < g.Height()-1; y++ {
		for x := 1; x < g.Width()-1; x++ {
			if g.IsOpen(x, y) && len(g.Neighbors(Point{X: x, Y: y})) == 1 {
				s.DeadEnds++
			}
		}
	}
	s.PathLength = len(Solve(g, g.Start(), g.Exit()))
	return s
}

// Overlay renders g like Rows with every cell of path replaced by mark.
func Overlay(g *Grid, path []Point, mark byte) []string {
	rows := g.Rows()
	if len(path) == 0 {
		return rows
	}
	buf := make([][]byte, len(rows))
	for y, r := range rows {
		buf[y] = []byte(r)
	}
	for _, p := range path {
		if g.InBounds(p.X, p.Y) {
			buf[p.Y][p.X] = mark
		}
	}
	for y := range buf {
		rows[y] = string(buf[y])
	}
	return rows
}
