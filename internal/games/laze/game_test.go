package laze

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-laze/internal/config"
	"github.com/vovakirdan/tui-laze/internal/core"
	"github.com/vovakirdan/tui-laze/internal/maze"
	"github.com/vovakirdan/tui-laze/internal/nav"
	"github.com/vovakirdan/tui-laze/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(seed int64) *Game {
	g := NewWithConfig(ModeEndless, config.DefaultLazeConfig())
	g.Reset(testRuntime(seed))
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		switch {
		case i%50 < 20:
			inputs[i] = frame(core.ActionForward)
		case i%50 < 30:
			inputs[i] = frame(core.ActionTurnRight, core.ActionStrafeLeft)
		case i%50 < 45:
			inputs[i] = frame(core.ActionForward, core.ActionRun)
		default:
			inputs[i] = frame(core.ActionJump, core.ActionLookUp)
		}
	}

	run := func() Snapshot {
		g := newTestGame(12345)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("Determinism failed:\n run1=%+v\n run2=%+v", s1, s2)
	}
	if s1.Tick != len(inputs) {
		t.Errorf("Tick = %d, expected %d", s1.Tick, len(inputs))
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(42)

	if g.Seed() != 42 {
		t.Errorf("Seed() = %d, expected 42", g.Seed())
	}
	state := g.State()
	if state.Score != 0 || state.Level != 1 || state.GameOver || state.Paused {
		t.Errorf("initial State() = %+v", state)
	}
	if pos := g.World().Position(); pos != (nav.Vec2{X: 1.5, Z: 1.5}) {
		t.Errorf("start position = %+v, expected (1.5, 1.5)", pos)
	}
	if g.World().Size() != 11 {
		t.Errorf("Size() = %d, expected 11", g.World().Size())
	}
	if g.player.EyeY != 0.5 || g.player.Yaw != StartYaw {
		t.Errorf("player = %+v", g.player)
	}

	for i := 0; i < 30; i++ {
		g.Step(frame(core.ActionForward, core.ActionTurnLeft))
	}
	g.Reset(testRuntime(42))

	if g.Ticks() != 0 {
		t.Errorf("Ticks() after Reset = %d, expected 0", g.Ticks())
	}
	if g.player.Yaw != StartYaw {
		t.Errorf("Yaw after Reset = %v, expected %v", g.player.Yaw, StartYaw)
	}
}

func TestGameInvalidConfigFallsBack(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*config.LazeConfig)
	}{
		{"negative stars", func(c *config.LazeConfig) { c.Render.Stars = -1 }},
		{"negative pitch", func(c *config.LazeConfig) { c.Camera.MaxPitch = -30 }},
		{"zero fov", func(c *config.LazeConfig) { c.Camera.FOV = 0 }},
		{"zero start", func(c *config.LazeConfig) { c.Maze.StartSize = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultLazeConfig()
			tt.mod(&cfg)
			g := NewWithConfig(ModeEndless, cfg)
			g.Reset(testRuntime(5))

			if g.Err() == nil {
				t.Error("Err() = nil, expected the validation error")
			}
			if g.cfg != config.DefaultLazeConfig() {
				t.Errorf("cfg = %+v, expected defaults", g.cfg)
			}
			if g.World() == nil || g.World().Size() != 11 {
				t.Fatal("expected a playable default world")
			}

			g.Step(frame(core.ActionLookUp, core.ActionForward))
			screen := core.NewScreen(80, 24)
			g.Render(screen)
			if g.player.Pitch < -g.cfg.Camera.MaxPitch || g.player.Pitch > g.cfg.Camera.MaxPitch {
				t.Errorf("Pitch = %v outside ±%v", g.player.Pitch, g.cfg.Camera.MaxPitch)
			}
		})
	}
}

func TestGameSeedFromClock(t *testing.T) {
	g := NewWithConfig(ModeEndless, config.DefaultLazeConfig())
	g.now = func() time.Time { return time.Unix(0, 987654321) }
	g.Reset(testRuntime(0))

	if g.Seed() != 987654321 {
		t.Errorf("Seed() = %d, expected clock nanos", g.Seed())
	}
}

func TestDailySeed(t *testing.T) {
	day := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	if got := DailySeed(day); got != 20261016 {
		t.Errorf("DailySeed() = %d, expected 20261016", got)
	}

	// Late evening west of UTC is already the next UTC day.
	local := time.Date(2026, 10, 16, 23, 0, 0, 0, time.FixedZone("EST", -5*3600))
	if got := DailySeed(local); got != 20261017 {
		t.Errorf("DailySeed(local) = %d, expected 20261017", got)
	}

	g := NewWithConfig(ModeDaily, config.DefaultLazeConfig())
	g.now = func() time.Time { return day }
	g.Reset(testRuntime(777))
	if g.Seed() != 20261016 {
		t.Errorf("daily Seed() = %d, expected the date seed even with --seed", g.Seed())
	}
	if g.ID() != IDDaily {
		t.Errorf("ID() = %q, expected %q", g.ID(), IDDaily)
	}

	other := NewWithConfig(ModeDaily, config.DefaultLazeConfig())
	other.now = func() time.Time { return day.Add(3 * time.Hour) }
	other.Reset(testRuntime(0))
	if other.Snapshot().GridHash != g.Snapshot().GridHash {
		t.Error("daily runs on the same date should share the maze")
	}
}

func TestGameJump(t *testing.T) {
	g := newTestGame(1)
	ph := g.cfg.Physics

	g.Step(frame(core.ActionJump))
	if !g.player.Jumping {
		t.Fatal("Jumping = false after jump")
	}
	want := ph.GroundLevel + ph.JumpImpulse - ph.Gravity
	if !almostEqual(g.player.EyeY, want) {
		t.Errorf("EyeY = %v, expected %v", g.player.EyeY, want)
	}

	// A second press mid-air does not add impulse.
	vel := g.player.VelY
	g.Step(frame(core.ActionJump))
	if !almostEqual(g.player.VelY, vel-ph.Gravity) {
		t.Errorf("VelY = %v, expected %v (no double jump)", g.player.VelY, vel-ph.Gravity)
	}

	for i := 0; i < 100; i++ {
		g.Step(frame())
	}
	if g.player.Jumping || g.player.EyeY != ph.GroundLevel || g.player.VelY != 0 {
		t.Errorf("player should have landed, got %+v", g.player)
	}
}

func TestGameCamera(t *testing.T) {
	g := newTestGame(1)

	for i := 0; i < 100; i++ {
		g.Step(frame(core.ActionLookDown))
	}
	if g.player.Pitch != 80 {
		t.Errorf("Pitch = %v, expected clamp at 80", g.player.Pitch)
	}
	for i := 0; i < 200; i++ {
		g.Step(frame(core.ActionLookUp))
	}
	if g.player.Pitch != -80 {
		t.Errorf("Pitch = %v, expected clamp at -80", g.player.Pitch)
	}

	g.Step(frame(core.ActionTurnLeft))
	if !almostEqual(g.player.Yaw, 357) {
		t.Errorf("Yaw = %v, expected wrap to 357", g.player.Yaw)
	}
	g.Step(frame(core.ActionTurnRight))
	if !almostEqual(g.player.Yaw, 0) {
		t.Errorf("Yaw = %v, expected 0", g.player.Yaw)
	}
}

func TestGamePauseAndGiveUp(t *testing.T) {
	g := newTestGame(1)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	ticks := g.Ticks()
	g.Step(frame(core.ActionForward))
	if g.Ticks() != ticks {
		t.Error("paused game should not advance")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Fatal("second pause should resume")
	}

	g.Step(frame(core.ActionPause))
	result := g.Step(frame(core.ActionGiveUp))
	if !result.State.GameOver || result.State.Paused {
		t.Errorf("give up from pause: State = %+v", result.State)
	}

	// Give up outside pause is ignored.
	g2 := newTestGame(1)
	g2.Step(frame(core.ActionGiveUp))
	if g2.State().GameOver {
		t.Error("give up without pause should be ignored")
	}
}

func TestGameLevelComplete(t *testing.T) {
	g := newTestGame(3)
	exit := g.World().Exit()
	g.World().SetPosition(nav.Vec2{X: float64(exit.X) - 0.5, Z: float64(exit.Y)})

	result := g.Step(frame())
	if !result.LevelComplete {
		t.Fatal("LevelComplete = false next to the exit")
	}
	if result.State.Score != 1 || result.State.Level != 2 {
		t.Errorf("State = %+v, expected score 1 level 2", result.State)
	}
	if g.World().Size() != 15 {
		t.Errorf("Size() = %d, expected 15", g.World().Size())
	}
	if g.World().Position() != (nav.Vec2{X: 1.5, Z: 1.5}) {
		t.Errorf("Position() = %+v, expected reset", g.World().Position())
	}
	if g.banner != g.cfg.Render.BannerTicks {
		t.Errorf("banner = %d, expected %d", g.banner, g.cfg.Render.BannerTicks)
	}

	next := g.Step(frame())
	if next.LevelComplete {
		t.Error("LevelComplete should only be set on the completing tick")
	}
}

func TestGameToggles(t *testing.T) {
	g := newTestGame(5)

	g.Step(frame(core.ActionMap))
	if !g.showMap {
		t.Error("Map should toggle the minimap on")
	}
	g.Step(frame(core.ActionMap))
	if g.showMap {
		t.Error("Map should toggle the minimap off")
	}

	g.Step(frame(core.ActionHint))
	if !g.showHint || !g.showMap {
		t.Error("Hint should enable the route and the minimap")
	}

	path := g.hint()
	if len(path) == 0 {
		t.Fatal("hint() returned no route")
	}
	if path[len(path)-1] != g.World().Exit() {
		t.Errorf("route ends at %v, expected exit %v", path[len(path)-1], g.World().Exit())
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(9)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.Row(0), "LEVEL 1") {
		t.Errorf("HUD row = %q, expected LEVEL 1", screen.Row(0))
	}
	if !strings.Contains(screen.Row(23), "pause") {
		t.Errorf("help row = %q", screen.Row(23))
	}

	g.Step(frame(core.ActionMap))
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), MapExitChar) {
		t.Error("minimap should show the exit")
	}

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	g.Step(frame(core.ActionGiveUp))
	g.Render(screen)
	if !strings.Contains(screen.String(), "RUN OVER") {
		t.Error("game over overlay missing")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(9)
	screen := core.NewScreen(30, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "enlarge") {
		t.Errorf("small screen = %q", screen.String())
	}
}

func TestCastRay(t *testing.T) {
	grid, err := maze.FromRows([]string{
		"#####",
		"....#",
		"###.#",
		"#....",
		"#####",
	})
	if err != nil {
		t.Fatal(err)
	}

	// From the centre of (1,1) looking east the wall face of (4,1) is 2.5 away.
	hit, ok := castRay(grid, grid.Exit(), 1.5, 1.5, 1, 0, 20)
	if !ok || hit.exit || hit.side != 0 || !almostEqual(hit.dist, 2.5) {
		t.Errorf("east ray = %+v ok=%v", hit, ok)
	}

	// From (3,3) looking east the exit cell is next door.
	hit, ok = castRay(grid, grid.Exit(), 3.5, 3.5, 1, 0, 20)
	if !ok || !hit.exit || !almostEqual(hit.dist, 0.5) {
		t.Errorf("exit ray = %+v ok=%v", hit, ok)
	}

	// Looking south from (3,1) the ray crosses horizontal lines.
	hit, ok = castRay(grid, grid.Exit(), 3.5, 1.5, 0, 1, 20)
	if !ok || hit.side != 1 || !almostEqual(hit.dist, 2.5) {
		t.Errorf("south ray = %+v ok=%v", hit, ok)
	}

	// Depth limit
	if _, ok := castRay(grid, grid.Exit(), 1.5, 1.5, 1, 0, 1); ok {
		t.Error("ray beyond max depth should miss")
	}
}

func TestArrowAndCompass(t *testing.T) {
	tests := []struct {
		yaw     float64
		arrow   rune
		compass string
	}{
		{0, '▲', "N"},
		{90, '▶', "E"},
		{180, '▼', "S"},
		{270, '◀', "W"},
		{350, '▲', "N"},
		{44, '▲', "NE"},
	}
	for _, tt := range tests {
		if got := arrowFor(tt.yaw); got != tt.arrow {
			t.Errorf("arrowFor(%v) = %q, expected %q", tt.yaw, got, tt.arrow)
		}
		p := Player{Yaw: tt.yaw}
		if got := p.Compass(); got != tt.compass {
			t.Errorf("Compass(%v) = %q, expected %q", tt.yaw, got, tt.compass)
		}
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDEndless, IDDaily} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%s).ID() = %q", id, g.ID())
		}
	}
}
