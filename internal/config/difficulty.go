package config

// SizeSchedule calculates the requested maze size for each level.
type SizeSchedule struct {
	cfg MazeConfig
}

// NewSizeSchedule creates a schedule from maze settings.
func NewSizeSchedule(cfg MazeConfig) *SizeSchedule {
	return &SizeSchedule{cfg: cfg}
}

// IsProgressive returns whether mazes grow between levels.
func (s *SizeSchedule) IsProgressive() bool {
	return s.cfg.Step > 0
}

// SizeAt returns the requested size for a 1-based level number.
// Levels below 1 are treated as level 1.
func (s *SizeSchedule) SizeAt(level int) int {
	if level < 1 {
		level = 1
	}
	size := s.cfg.StartSize + (level-1)*s.cfg.Step
	if s.cfg.MaxSize > 0 && size > s.cfg.MaxSize {
		size = s.cfg.MaxSize
	}
	return size
}

// CappedAt returns the first level whose size hits MaxSize, or 0 when the
// schedule never stops growing.
func (s *SizeSchedule) CappedAt() int {
	if s.cfg.MaxSize <= 0 || s.cfg.Step <= 0 {
		return 0
	}
	span := s.cfg.MaxSize - s.cfg.StartSize
	if span <= 0 {
		return 1
	}
	return 1 + (span+s.cfg.Step-1)/s.cfg.Step
}
