package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/sky-combat/internal/core"
)

// ErrInvalidConfig is returned by Validate for unusable values.
var ErrInvalidConfig = errors.New("invalid config")

// LoadSkyCombat loads the game configuration.
// Search order: customPath -> ~/.skycombat/configs/skycombat.yaml -> ./configs/skycombat.yaml -> embedded default
func LoadSkyCombat(customPath string) (SkyCombatConfig, error) {
	var cfg SkyCombatConfig

	// A custom path is explicit, so failures are reported instead of skipped
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err = parse(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("skycombat.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "skycombat.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultSkyCombatYAML)
	if err != nil {
		return DefaultSkyCombatConfig(), nil
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults, so partial files
// only override the keys they mention.
func parse(data []byte) (SkyCombatConfig, error) {
	cfg := DefaultSkyCombatConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg SkyCombatConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skycombat", "configs", filename)
}

// Validate rejects values the simulation cannot run with.
func (c SkyCombatConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must be positive, got %dx%d", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	case c.Game.Speed <= 0:
		return fmt.Errorf("%w: game.speed must be positive", ErrInvalidConfig)
	case c.Game.SpawnInterval <= 0:
		return fmt.Errorf("%w: game.spawn_interval must be positive", ErrInvalidConfig)
	case c.Player.Health <= 0:
		return fmt.Errorf("%w: player.health must be positive", ErrInvalidConfig)
	case c.Player.ShootInterval <= 0 || c.Enemy.ShootInterval <= 0:
		return fmt.Errorf("%w: shoot intervals must be positive", ErrInvalidConfig)
	case c.Enemy.Health <= 0:
		return fmt.Errorf("%w: enemy.health must be positive", ErrInvalidConfig)
	case c.Cloud.MaxPillows < c.Cloud.MinPillows:
		return fmt.Errorf("%w: cloud.max_pillows below min_pillows", ErrInvalidConfig)
	case c.Explosion.Lifetime <= 0:
		return fmt.Errorf("%w: explosion.lifetime must be positive", ErrInvalidConfig)
	}
	return nil
}

// SpriteBank builds the sprite bank described by the configuration.
func (c SkyCombatConfig) SpriteBank() (*core.SpriteBank, error) {
	bank := core.NewSpriteBank()
	for _, sc := range c.Sprites {
		if sc.ID == "" {
			return nil, fmt.Errorf("%w: sprite without id", ErrInvalidConfig)
		}
		color := core.ColorWhite
		if sc.Color != "" {
			parsed, ok := core.ParseColor(sc.Color)
			if !ok {
				return nil, fmt.Errorf("%w: sprite %q has unknown color %q", ErrInvalidConfig, sc.ID, sc.Color)
			}
			color = parsed
		}
		bank.Add(core.Sprite{
			ID:     core.SpriteID(sc.ID),
			Width:  sc.Width,
			Height: sc.Height,
			Art:    sc.Art,
			Color:  color,
		})
	}
	return bank, nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SkyCombatConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 5
		cfg.Enemy.ShootInterval = 14
	case DifficultyHard:
		cfg.Player.Health = 2
		cfg.Enemy.ShootInterval = 7
	}
}
