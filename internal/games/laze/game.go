// Package laze implements the first-person maze explorer. The player walks a
// generated labyrinth, and every exit leads into a larger fresh maze.
package laze

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-laze/internal/config"
	"github.com/vovakirdan/tui-laze/internal/core"
	"github.com/vovakirdan/tui-laze/internal/maze"
	"github.com/vovakirdan/tui-laze/internal/nav"
	"github.com/vovakirdan/tui-laze/internal/registry"
	"github.com/vovakirdan/tui-laze/internal/world"
)

// Mode IDs.
const (
	IDEndless = "laze"
	IDDaily   = "laze_daily"
)

// Mode selects how a run is seeded.
type Mode int

const (
	ModeEndless Mode = iota // seeded from --seed or the clock
	ModeDaily               // seeded from the UTC date
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select the
// configured defaults.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// loadConfig resolves the config file and preset chosen on the command line.
func loadConfig() config.LazeConfig {
	cfg, err := config.LoadLaze(configPath)
	if err != nil {
		cfg = config.DefaultLazeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyLazePreset(&cfg, difficultyPreset)
	}
	return cfg
}

// DailySeed derives the seed shared by every daily run on t's UTC date.
func DailySeed(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	return int64(y*10000 + int(m)*100 + d)
}

// Game implements registry.Game for both modes.
type Game struct {
	mode    Mode
	cfg     config.LazeConfig
	custom  bool // cfg was supplied by NewWithConfig
	runtime core.RuntimeConfig
	now     func() time.Time

	seed   int64
	world  *world.World
	player Player
	stars  []star

	tick       int
	paused     bool
	gameOver   bool
	showMap    bool
	showHint   bool
	banner     int // ticks left on the level-complete banner
	levelTicks int // ticks spent on the current level
	err        error

	hintFrom maze.Point
	hintPath []maze.Point
}

// New creates a game in the given mode. Configuration is loaded on Reset.
func New(mode Mode) *Game {
	return &Game{mode: mode, now: time.Now}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(mode Mode, cfg config.LazeConfig) *Game {
	return &Game{mode: mode, cfg: cfg, custom: true, now: time.Now}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeDaily {
		return IDDaily
	}
	return IDEndless
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeDaily {
		return "Laze: Daily Labyrinth"
	}
	return "Laze: Endless Labyrinth"
}

// Reset starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.err = nil
	if !g.custom {
		g.cfg = loadConfig()
	}
	if err := g.cfg.Validate(); err != nil {
		// A rejected config still yields a playable run on the defaults.
		g.err = err
		g.cfg = config.DefaultLazeConfig()
	}

	switch {
	case g.mode == ModeDaily:
		g.seed = DailySeed(g.now())
	case cfg.Seed != 0:
		g.seed = cfg.Seed
	default:
		g.seed = g.now().UnixNano()
	}

	g.tick = 0
	g.paused = false
	g.gameOver = false
	g.showMap = g.cfg.Render.Minimap
	g.showHint = g.cfg.Render.Hint
	g.banner = 0
	g.levelTicks = 0
	g.hintPath = nil

	w, err := world.New(worldConfig(g.cfg), maze.NewSource(g.seed))
	if err != nil {
		// Unreachable with a validated config; keep the run playable anyway.
		g.err = err
		g.cfg = config.DefaultLazeConfig()
		if w, err = world.New(world.DefaultConfig(), maze.NewSource(g.seed)); err != nil {
			panic(fmt.Sprintf("laze: default world: %v", err))
		}
	}
	g.world = w
	g.player = newPlayer(g.cfg.Physics.GroundLevel)
	g.stars = makeStars(g.seed, g.cfg.Render.Stars)
}

func worldConfig(cfg config.LazeConfig) world.Config {
	return world.Config{
		StartSize:  cfg.Maze.StartSize,
		Step:       cfg.Maze.Step,
		MaxSize:    cfg.Maze.MaxSize,
		Buffer:     cfg.Movement.Buffer,
		ExitRadius: cfg.Movement.ExitRadius,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		if in.Has(core.ActionGiveUp) {
			g.paused = false
			g.gameOver = true
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionMap) {
		g.showMap = !g.showMap
	}
	if in.Has(core.ActionHint) {
		g.showHint = !g.showHint
		if g.showHint {
			g.showMap = true
		}
	}

	g.tick++
	g.levelTicks++
	if g.banner > 0 {
		g.banner--
	}

	g.player.Look(in, g.cfg.Camera)

	speed := g.cfg.Movement.WalkSpeed
	if in.Has(core.ActionRun) {
		speed = g.cfg.Movement.RunSpeed
	}
	d := nav.Displacement(
		g.player.Yaw,
		in.Axis(core.ActionForward, core.ActionBackward),
		in.Axis(core.ActionStrafeRight, core.ActionStrafeLeft),
		speed,
	)

	result := core.StepResult{}
	ev, err := g.world.Move(d)
	if err != nil {
		g.err = err
		g.gameOver = true
		result.State = g.State()
		return result
	}
	if ev == world.EventLevelComplete {
		result.LevelComplete = true
		g.banner = g.cfg.Render.BannerTicks
		g.levelTicks = 0
		g.hintPath = nil
		g.player.Land(g.cfg.Physics.GroundLevel)
	}

	g.player.Fall(in.Has(core.ActionJump), g.cfg.Physics)

	result.State = g.State()
	return result
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	level := 0
	if g.world != nil {
		level = g.world.Level()
	}
	return core.GameState{
		Score:    max(level-1, 0),
		Level:    level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 { return g.seed }

// World exposes the run state for rendering and records.
func (g *Game) World() *world.World { return g.world }

// Ticks returns the number of simulated ticks in this run.
func (g *Game) Ticks() int { return g.tick }

// Err returns the last configuration or generation error, if any.
func (g *Game) Err() error { return g.err }

// Report summarises the run so far.
func (g *Game) Report() registry.Report {
	return registry.Report{
		Seed:      g.seed,
		Levels:    g.world.Cleared(),
		MaxSize:   g.world.Size(),
		PathCells: g.world.PathCells(),
		Ticks:     g.tick,
	}
}

// hint returns the route from the player's cell to the exit, recomputed
// only when the player changes cell.
func (g *Game) hint() []maze.Point {
	cell := nav.CellAt(g.world.Position())
	if g.hintPath != nil && cell == g.hintFrom {
		return g.hintPath
	}
	g.hintFrom = cell

	grid := g.world.Grid()
	from := cell
	if !grid.IsOpen(from.X, from.Y) {
		// The start position sits on a cell corner.
		from = grid.Start()
	}
	g.hintPath = maze.Solve(grid, from, grid.Exit())
	return g.hintPath
}

var (
	_ registry.Game     = (*Game)(nil)
	_ registry.Reporter = (*Game)(nil)
)

func init() {
	registry.Register(IDEndless, func() registry.Game {
		return New(ModeEndless)
	})
	registry.Register(IDDaily, func() registry.Game {
		return New(ModeDaily)
	})
}
