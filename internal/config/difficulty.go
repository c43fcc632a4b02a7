package config

import "math"

// DifficultyManager derives spawn pacing and enemy speed from progress.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0.0, 1.0)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// elapsed is scaled simulation time in seconds.
func (d *DifficultyManager) Level(score uint64, elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.cfg.InitialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.cfg.InitialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.cfg.InitialLevel + progress*(1.0-d.cfg.InitialLevel)
}

// EnemySpeed scales the base enemy speed. Disabled progression returns base unchanged.
func (d *DifficultyManager) EnemySpeed(base float64, score uint64, elapsed float64) float64 {
	if !d.IsEnabled() {
		return base
	}
	return base * (1.0 + d.Level(score, elapsed)*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval shortens the base spawn interval, never below a quarter of it.
func (d *DifficultyManager) SpawnInterval(base float64, score uint64, elapsed float64) float64 {
	if !d.IsEnabled() {
		return base
	}
	reduction := clampF(d.Level(score, elapsed)*d.cfg.Scaling.SpawnReduction, 0.0, 0.75)
	return base * (1.0 - reduction)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
