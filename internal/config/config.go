// Package config provides YAML-based game configuration loading and
// difficulty management for Sky Combat.
package config

// SkyCombatConfig contains all tunables of the simulation.
type SkyCombatConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Game       GameConfig       `yaml:"game"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Cloud      CloudConfig      `yaml:"cloud"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Sprites    []SpriteConfig   `yaml:"sprites"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig is the size of the playfield in world units.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// HalfWidth returns the horizontal walk limit.
func (a ArenaConfig) HalfWidth() float64 {
	return float64(a.Width / 2)
}

// GameConfig holds loop-level timings and scoring.
type GameConfig struct {
	Speed             float64 `yaml:"speed"`               // Global speed multiplier
	SpawnInterval     float64 `yaml:"spawn_interval"`      // Scaled time between enemy spawns
	InitialSpawnDelay float64 `yaml:"initial_spawn_delay"` // Scaled time before the first spawn
	KillBonus         uint64  `yaml:"kill_bonus"`
	Clouds            int     `yaml:"clouds"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Health          int     `yaml:"health"`
	Speed           float64 `yaml:"speed"`
	StartX          float64 `yaml:"start_x"`
	StartY          float64 `yaml:"start_y"`
	ShootInterval   float64 `yaml:"shoot_interval"`
	Radius          int     `yaml:"radius"`
	MuzzleOffset    int     `yaml:"muzzle_offset"` // Horizontal offset of each gun
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	ProjectileRange float64 `yaml:"projectile_range"` // Despawn radius around the player
}

// EnemyConfig defines enemy ships and their shots.
type EnemyConfig struct {
	Health          int        `yaml:"health"`
	Speed           float64    `yaml:"speed"`
	ShootInterval   float64    `yaml:"shoot_interval"`
	Radius          int        `yaml:"radius"`
	SpawnAbove      float64    `yaml:"spawn_above"` // Spawn height above the arena top
	ExitMargin      int        `yaml:"exit_margin"`
	FiringBand      BandConfig `yaml:"firing_band"`
	ProjectileSpeed float64    `yaml:"projectile_speed"`
	ProjectileRange float64    `yaml:"projectile_range"`
	ProjectileFloor int        `yaml:"projectile_floor"` // Shots below this y are dropped
}

// BandConfig is an exclusive vertical window.
type BandConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether min < y < max.
func (b BandConfig) Contains(y int) bool {
	return y > b.Min && y < b.Max
}

// CloudConfig defines the parallax clouds.
type CloudConfig struct {
	MinPillows int `yaml:"min_pillows"`
	MaxPillows int `yaml:"max_pillows"`
	OffsetX    int `yaml:"offset_x"`
	OffsetY    int `yaml:"offset_y"`
	PillowSize int `yaml:"pillow_size"`
	MinSpeed   int `yaml:"min_speed"`
	MaxSpeed   int `yaml:"max_speed"`
}

// ExplosionConfig defines the hit effect.
type ExplosionConfig struct {
	Lifetime  float64 `yaml:"lifetime"`
	Particles int     `yaml:"particles"`
	Jitter    int     `yaml:"jitter"`
	Radius    int     `yaml:"radius"`
}

// SpriteConfig is a sprite definition as written in YAML.
type SpriteConfig struct {
	ID     string   `yaml:"id"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Color  string   `yaml:"color"`
	Art    []string `yaml:"art"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score, or whole seconds of scaled time, at max difficulty
}

// ScalingConfig defines the magnitude of difficulty changes at max level.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed factor
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Fraction removed from the spawn interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Unknown values yield "".
func ParsePreset(name string) DifficultyPreset {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
