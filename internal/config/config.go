// Package config provides YAML-based game configuration loading, difficulty
// presets and environment defaults for laze.
package config

import "fmt"

// LazeConfig contains all tunables for the maze game.
type LazeConfig struct {
	Maze     MazeConfig     `yaml:"maze"`
	Movement MovementConfig `yaml:"movement"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Camera   CameraConfig   `yaml:"camera"`
	Render   RenderConfig   `yaml:"render"`
}

// MazeConfig defines level sizing.
type MazeConfig struct {
	StartSize int `yaml:"start_size"` // Requested size of the first level
	Step      int `yaml:"step"`       // Size growth per cleared level (0 = fixed)
	MaxSize   int `yaml:"max_size"`   // Growth cap, 0 = unbounded
}

// MovementConfig defines planar movement and collision.
type MovementConfig struct {
	WalkSpeed  float64 `yaml:"walk_speed"`  // Cells per tick
	RunSpeed   float64 `yaml:"run_speed"`   // Cells per tick while running
	Buffer     float64 `yaml:"buffer"`      // Wall clearance
	ExitRadius float64 `yaml:"exit_radius"` // Distance that completes a level
}

// PhysicsConfig defines vertical motion.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	GroundLevel float64 `yaml:"ground_level"` // Eye height when standing
}

// CameraConfig defines view rotation.
type CameraConfig struct {
	TurnSpeed float64 `yaml:"turn_speed"` // Degrees of yaw per tick
	LookSpeed float64 `yaml:"look_speed"` // Degrees of pitch per tick
	MaxPitch  float64 `yaml:"max_pitch"`
	FOV       float64 `yaml:"fov"` // Horizontal field of view in degrees
}

// RenderConfig defines the raycaster and overlays.
type RenderConfig struct {
	MaxDepth    float64 `yaml:"max_depth"` // Rays stop after this many cells
	Fog         bool    `yaml:"fog"`
	Stars       int     `yaml:"stars"`
	Minimap     bool    `yaml:"minimap"`      // Minimap visible at level start
	Hint        bool    `yaml:"hint"`         // Draw the solution on the minimap
	BannerTicks int     `yaml:"banner_ticks"` // Level-complete banner duration
}

// Validate rejects values the game cannot run with.
func (c LazeConfig) Validate() error {
	switch {
	case c.Maze.StartSize <= 0:
		return fmt.Errorf("config: maze.start_size must be positive, got %d", c.Maze.StartSize)
	case c.Maze.Step < 0:
		return fmt.Errorf("config: maze.step must not be negative, got %d", c.Maze.Step)
	case c.Maze.MaxSize < 0:
		return fmt.Errorf("config: maze.max_size must not be negative, got %d", c.Maze.MaxSize)
	case c.Maze.MaxSize > 0 && c.Maze.MaxSize < c.Maze.StartSize:
		return fmt.Errorf("config: maze.max_size %d is below start_size %d", c.Maze.MaxSize, c.Maze.StartSize)
	case c.Movement.WalkSpeed <= 0 || c.Movement.RunSpeed <= 0:
		return fmt.Errorf("config: movement speeds must be positive")
	case c.Movement.Buffer <= 0 || c.Movement.Buffer >= 0.5:
		return fmt.Errorf("config: movement.buffer must be in (0, 0.5), got %v", c.Movement.Buffer)
	case c.Movement.ExitRadius <= 0:
		return fmt.Errorf("config: movement.exit_radius must be positive, got %v", c.Movement.ExitRadius)
	case c.Physics.Gravity <= 0 || c.Physics.JumpImpulse <= 0:
		return fmt.Errorf("config: physics.gravity and physics.jump_impulse must be positive")
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("config: camera.fov must be in (0, 180), got %v", c.Camera.FOV)
	case c.Camera.MaxPitch < 0 || c.Camera.MaxPitch >= 90:
		return fmt.Errorf("config: camera.max_pitch must be in [0, 90), got %v", c.Camera.MaxPitch)
	case c.Camera.TurnSpeed < 0 || c.Camera.LookSpeed < 0:
		return fmt.Errorf("config: camera.turn_speed and camera.look_speed must not be negative")
	case c.Render.MaxDepth <= 0:
		return fmt.Errorf("config: render.max_depth must be positive, got %v", c.Render.MaxDepth)
	case c.Render.Stars < 0:
		return fmt.Errorf("config: render.stars must not be negative, got %d", c.Render.Stars)
	case c.Render.BannerTicks < 0:
		return fmt.Errorf("config: render.banner_ticks must not be negative, got %d", c.Render.BannerTicks)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables growth.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
