// Package world holds the state of one endless maze run: the active grid,
// its size and level number, and the player's planar position. Reaching the
// exit swaps in a larger freshly generated maze.
package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-laze/internal/maze"
	"github.com/vovakirdan/tui-laze/internal/nav"
)

// Config controls level sizing and movement resolution.
type Config struct {
	StartSize  int     // requested size of the first maze
	Step       int     // size increase per cleared level, 0 keeps the size fixed
	MaxSize    int     // cap on the requested size, 0 means unbounded
	Buffer     float64 // wall clearance used by collision checks
	ExitRadius float64 // distance to the exit cell centre that completes a level
}

// DefaultConfig returns the standard progression: 11, 15, 19, ...
func DefaultConfig() Config {
	return Config{
		StartSize:  11,
		Step:       4,
		Buffer:     nav.Buffer,
		ExitRadius: nav.ExitRadius,
	}
}

// Validate checks that cfg can drive a run.
func (c Config) Validate() error {
	if c.StartSize <= 0 {
		return fmt.Errorf("world: start size must be positive, got %d", c.StartSize)
	}
	if c.Step < 0 {
		return fmt.Errorf("world: step must not be negative, got %d", c.Step)
	}
	if c.MaxSize < 0 {
		return fmt.Errorf("world: max size must not be negative, got %d", c.MaxSize)
	}
	if c.MaxSize > 0 && c.MaxSize < c.StartSize {
		return fmt.Errorf("world: max size %d is below start size %d", c.MaxSize, c.StartSize)
	}
	if c.Buffer < 0 || c.Buffer >= 0.5 {
		return fmt.Errorf("world: buffer must be in [0, 0.5), got %v", c.Buffer)
	}
	if c.ExitRadius <= 0 {
		return fmt.Errorf("world: exit radius must be positive, got %v", c.ExitRadius)
	}
	return nil
}

// Event reports what a Move caused.
type Event int

const (
	EventNone Event = iota
	EventLevelComplete
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventLevelComplete:
		return "LevelComplete"
	default:
		return "Unknown"
	}
}

// StartPosition is where the player stands at the start of every level.
var StartPosition = nav.Vec2{X: 1.5, Z: 1.5}

// World is a single run. It is not safe for concurrent use.
type World struct {
	cfg   Config
	src   maze.Source
	grid  *maze.Grid
	size  int
	level int
	pos   nav.Vec2

	pathCells int // shortest start-to-exit path of the active grid
}

// New generates the first level and places the player at StartPosition.
func New(cfg Config, src maze.Source) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("world: nil random source")
	}

	w := &World{cfg: cfg, src: src}
	if err := w.load(cfg.StartSize); err != nil {
		return nil, err
	}
	w.level = 1
	return w, nil
}

// load builds a complete grid for size and only then makes it active.
func (w *World) load(size int) error {
	g, err := maze.Generate(size, size, w.src)
	if err != nil {
		return fmt.Errorf("world: generate level of size %d: %w", size, err)
	}
	w.grid = g
	w.size = size
	w.pos = StartPosition
	w.pathCells = len(maze.Solve(g, g.Start(), g.Exit()))
	return nil
}

// Move resolves d against the active grid and checks for the exit. When the
// exit is reached the next level is generated before Move returns.
func (w *World) Move(d nav.Vec2) (Event, error) {
	w.pos = nav.ResolveMoveBuffered(w.grid, w.pos, d, w.cfg.Buffer)
	if !nav.CheckExitRadius(w.pos, w.grid.Exit(), w.cfg.ExitRadius) {
		return EventNone, nil
	}
	if err := w.Advance(); err != nil {
		return EventNone, err
	}
	return EventLevelComplete, nil
}

// Advance moves to the next level: size grows by the configured step (up to
// MaxSize when set) and the player returns to StartPosition. On error the
// current level stays active.
func (w *World) Advance() error {
	next := w.NextSize()
	if err := w.load(next); err != nil {
		return err
	}
	w.level++
	return nil
}

// NextSize is the requested size of the level after the current one.
func (w *World) NextSize() int {
	next := w.size + w.cfg.Step
	if w.cfg.MaxSize > 0 && next > w.cfg.MaxSize {
		next = w.cfg.MaxSize
	}
	return next
}

// Grid returns the active maze.
func (w *World) Grid() *maze.Grid { return w.grid }

// Size returns the requested size of the active maze.
func (w *World) Size() int { return w.size }

// Level returns the 1-based level number.
func (w *World) Level() int { return w.level }

// Cleared returns how many levels have been completed.
func (w *World) Cleared() int { return w.level - 1 }

// Position returns the player's planar position.
func (w *World) Position() nav.Vec2 { return w.pos }

// SetPosition teleports the player without collision checks.
func (w *World) SetPosition(p nav.Vec2) { w.pos = p }

// Exit returns the exit cell of the active maze.
func (w *World) Exit() maze.Point { return w.grid.Exit() }

// DistanceToExit returns the planar distance to the exit cell centre.
func (w *World) DistanceToExit() float64 {
	return nav.Distance(w.pos, w.grid.Exit())
}

// PathCells returns the length of the shortest start-to-exit path in cells.
func (w *World) PathCells() int { return w.pathCells }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }
