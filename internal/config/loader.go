package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLaze loads the game configuration.
// Search order: customPath -> ~/.laze/configs/laze.yaml -> ./configs/laze.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadLaze(customPath string) (LazeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultLazeConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decodeLaze(data)
		if err != nil {
			return DefaultLazeConfig(), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("laze.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeLaze(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "laze.yaml")); err == nil {
		if cfg, err := decodeLaze(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeLaze(defaultLazeYAML)
	if err != nil {
		return DefaultLazeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeLaze parses data over the hard-coded defaults and validates the result.
func decodeLaze(data []byte) (LazeConfig, error) {
	cfg := DefaultLazeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".laze", "configs", filename)
}

// ApplyLazePreset adjusts maze sizing for a difficulty preset.
// Fixed keeps the configured start size and disables growth.
func ApplyLazePreset(cfg *LazeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Maze.StartSize = 7
		cfg.Maze.Step = 2
	case DifficultyNormal:
		cfg.Maze.StartSize = 11
		cfg.Maze.Step = 4
	case DifficultyHard:
		cfg.Maze.StartSize = 21
		cfg.Maze.Step = 6
	case DifficultyFixed:
		cfg.Maze.Step = 0
	}
	if cfg.Maze.MaxSize > 0 && cfg.Maze.MaxSize < cfg.Maze.StartSize {
		cfg.Maze.MaxSize = cfg.Maze.StartSize
	}
}

// Marshal renders cfg as YAML.
func Marshal(cfg LazeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
