package laze

import (
	"hash/fnv"
	"math"
)

// Snapshot is a compact, comparable view of a run. Positions and angles are
// scaled by 1000 so two runs fed the same seed and input compare equal.
type Snapshot struct {
	Tick     int
	Seed     int64
	Level    int
	Size     int
	GridHash uint64
	PosX     int
	PosZ     int
	EyeY     int
	Yaw      int
	Pitch    int
	Jumping  bool
	Paused   bool
	GameOver bool
}

// Snapshot returns the current state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	pos := g.world.Position()
	return Snapshot{
		Tick:     g.tick,
		Seed:     g.seed,
		Level:    g.world.Level(),
		Size:     g.world.Size(),
		GridHash: gridHash(g.world.Grid().String()),
		PosX:     milli(pos.X),
		PosZ:     milli(pos.Z),
		EyeY:     milli(g.player.EyeY),
		Yaw:      milli(g.player.Yaw),
		Pitch:    milli(g.player.Pitch),
		Jumping:  g.player.Jumping,
		Paused:   g.paused,
		GameOver: g.gameOver,
	}
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

func gridHash(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s)) //nolint:errcheck // hash writes never fail
	return h.Sum64()
}
