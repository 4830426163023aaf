package config

import "math"

// Progress is the input of a difficulty calculation.
type Progress struct {
	Wave  int // 1-based wave number
	Score int
	Ticks int
}

// DifficultyManager derives dynamic parameters from run progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled reports whether the level moves during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty in [0, 1]. It interpolates from the
// initial level to 1.0 as progress reaches Progression.MaxAt.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "wave":
		// Wave 1 is the starting point.
		progress = float64(p.Wave-1) / maxAt
	case "score":
		progress = float64(p.Score) / maxAt
	case "time":
		progress = float64(p.Ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemySpeed scales the formation base speed by the current level.
func (d *DifficultyManager) EnemySpeed(base float64, p Progress) float64 {
	return base * (1.0 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier)
}

// BombInterval shortens the boss bomb interval as the level grows.
// The result never drops below a quarter of base, nor below one tick.
func (d *DifficultyManager) BombInterval(base int, p Progress) int {
	reduction := int(d.Level(p) * float64(d.cfg.Scaling.BombReduction))
	result := base - reduction
	floor := max(base/4, 1)
	if result < floor {
		result = floor
	}
	return result
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
