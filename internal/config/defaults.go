package config

import (
	_ "embed"
)

//go:embed defaults/skycombat.yaml
var defaultSkyCombatYAML []byte

// DefaultSkyCombatConfig returns the built-in configuration. It mirrors
// defaults/skycombat.yaml and is used when the embedded file cannot be parsed.
func DefaultSkyCombatConfig() SkyCombatConfig {
	return SkyCombatConfig{
		Arena: ArenaConfig{
			Width:  256,
			Height: 256,
		},
		Game: GameConfig{
			Speed:             10.0,
			SpawnInterval:     10.0,
			InitialSpawnDelay: 20.0,
			KillBonus:         100,
			Clouds:            30,
		},
		Player: PlayerConfig{
			Health:          3,
			Speed:           10.0,
			StartX:          0.0,
			StartY:          25.0,
			ShootInterval:   1.0,
			Radius:          3,
			MuzzleOffset:    10,
			ProjectileSpeed: 30.0,
			ProjectileRange: 400.0,
		},
		Enemy: EnemyConfig{
			Health:          5,
			Speed:           5.0,
			ShootInterval:   10.0,
			Radius:          5,
			SpawnAbove:      50.0,
			ExitMargin:      20,
			FiringBand:      BandConfig{Min: 30, Max: 250},
			ProjectileSpeed: 10.0,
			ProjectileRange: 300.0,
			ProjectileFloor: -20,
		},
		Cloud: CloudConfig{
			MinPillows: 20,
			MaxPillows: 30,
			OffsetX:    30,
			OffsetY:    10,
			PillowSize: 10,
			MinSpeed:   2,
			MaxSpeed:   5,
		},
		Explosion: ExplosionConfig{
			Lifetime:  5.0,
			Particles: 10,
			Jitter:    5,
			Radius:    3,
		},
		Sprites: []SpriteConfig{
			{ID: "player", Width: 16, Height: 16, Color: "blue", Art: []string{` /^\ `, `<=#=>`}},
			{ID: "enemy", Width: 16, Height: 16, Color: "gray", Art: []string{`<=#=>`, ` \v/ `}},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnReduction:  0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSkyCombatYAML
}
