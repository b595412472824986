package config

import (
	_ "embed"
)

//go:embed defaults/laze.yaml
var defaultLazeYAML []byte

// DefaultLazeConfig returns the built-in configuration.
func DefaultLazeConfig() LazeConfig {
	return LazeConfig{
		Maze: MazeConfig{
			StartSize: 11,
			Step:      4,
			MaxSize:   0,
		},
		Movement: MovementConfig{
			WalkSpeed:  0.07,
			RunSpeed:   0.15,
			Buffer:     0.3,
			ExitRadius: 1.0,
		},
		Physics: PhysicsConfig{
			Gravity:     0.005,
			JumpImpulse: 0.12,
			GroundLevel: 0.5,
		},
		Camera: CameraConfig{
			TurnSpeed: 3.0,
			LookSpeed: 2.0,
			MaxPitch:  80,
			FOV:       66,
		},
		Render: RenderConfig{
			MaxDepth:    24,
			Fog:         true,
			Stars:       48,
			Minimap:     false,
			Hint:        false,
			BannerTicks: 60,
		},
	}
}
