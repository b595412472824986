package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     int64  // RNG seed, 0 lets the game pick one
	Player   string // Display name used for score records
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
		Player:   "anonymous",
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Levels cleared
	Level    int  // Level currently being played
	GameOver bool // The run has ended
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// LevelComplete is set on the tick a level was cleared.
	LevelComplete bool
}
