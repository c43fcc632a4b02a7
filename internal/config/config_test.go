package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/sky-combat/internal/core"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	def := DefaultSkyCombatConfig()

	if cfg.Arena != def.Arena {
		t.Errorf("arena = %+v, expected %+v", cfg.Arena, def.Arena)
	}
	if cfg.Game != def.Game {
		t.Errorf("game = %+v, expected %+v", cfg.Game, def.Game)
	}
	if cfg.Player != def.Player {
		t.Errorf("player = %+v, expected %+v", cfg.Player, def.Player)
	}
	if cfg.Enemy != def.Enemy {
		t.Errorf("enemy = %+v, expected %+v", cfg.Enemy, def.Enemy)
	}
	if cfg.Cloud != def.Cloud {
		t.Errorf("cloud = %+v, expected %+v", cfg.Cloud, def.Cloud)
	}
	if cfg.Explosion != def.Explosion {
		t.Errorf("explosion = %+v, expected %+v", cfg.Explosion, def.Explosion)
	}
	if len(cfg.Sprites) != len(def.Sprites) {
		t.Fatalf("sprites = %d, expected %d", len(cfg.Sprites), len(def.Sprites))
	}
	for i := range cfg.Sprites {
		if cfg.Sprites[i].ID != def.Sprites[i].ID || cfg.Sprites[i].Art[0] != def.Sprites[i].Art[0] {
			t.Errorf("sprite %d = %+v, expected %+v", i, cfg.Sprites[i], def.Sprites[i])
		}
	}
	if cfg.Difficulty.Enabled {
		t.Error("progression should be disabled by default")
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  health: 7\ngame:\n  speed: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSkyCombat(path)
	if err != nil {
		t.Fatalf("LoadSkyCombat() failed: %v", err)
	}
	if cfg.Player.Health != 7 {
		t.Errorf("player.health = %d, expected 7", cfg.Player.Health)
	}
	if cfg.Game.Speed != 4 {
		t.Errorf("game.speed = %v, expected 4", cfg.Game.Speed)
	}
	if cfg.Enemy.Health != 5 {
		t.Errorf("unmentioned keys should keep defaults, enemy.health = %d", cfg.Enemy.Health)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadSkyCombat(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("game:\n  speed: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSkyCombat(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero speed should fail validation, got %v", err)
	}
}

func TestSpriteBankFromConfig(t *testing.T) {
	bank, err := DefaultSkyCombatConfig().SpriteBank()
	if err != nil {
		t.Fatalf("SpriteBank() failed: %v", err)
	}
	if err := bank.Require("player", "enemy"); err != nil {
		t.Fatalf("default sprites missing: %v", err)
	}
	s, _ := bank.Get("player")
	if s.Color != core.ColorBlue || s.Width != 16 {
		t.Errorf("player sprite = %+v", s)
	}

	cfg := DefaultSkyCombatConfig()
	cfg.Sprites[0].Color = "chartreuse"
	if _, err := cfg.SpriteBank(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown sprite color should fail, got %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		health  int
		level   float64
	}{
		{"", false, 3, 0.0},
		{DifficultyFixed, false, 3, 0.0},
		{DifficultyEasy, true, 5, 0.0},
		{DifficultyNormal, true, 3, 0.3},
		{DifficultyHard, true, 2, 0.7},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSkyCombatConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Player.Health != tc.health {
				t.Errorf("health = %d, expected %d", cfg.Player.Health, tc.health)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("initial level = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
		})
	}

	if ParsePreset("insane") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestDifficultyDisabledIsConstant(t *testing.T) {
	d := NewDifficultyManager(DefaultSkyCombatConfig().Difficulty)
	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.SpawnInterval(10, 100000, 1e6); got != 10 {
		t.Errorf("SpawnInterval = %v, expected 10", got)
	}
	if got := d.EnemySpeed(5, 100000, 1e6); got != 5 {
		t.Errorf("EnemySpeed = %v, expected 5", got)
	}
}

func TestDifficultyProgression(t *testing.T) {
	cfg := DefaultSkyCombatConfig().Difficulty
	cfg.Enabled = true
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0 {
		t.Errorf("Level at start = %v, expected 0", got)
	}
	if got := d.Level(2500, 0); got != 0.5 {
		t.Errorf("Level at half = %v, expected 0.5", got)
	}
	if got := d.Level(1_000_000, 0); got != 1 {
		t.Errorf("Level should clamp to 1, got %v", got)
	}
	if got := d.EnemySpeed(5, 5000, 0); got != 10 {
		t.Errorf("EnemySpeed at max = %v, expected 10", got)
	}
	if got := d.SpawnInterval(10, 5000, 0); got != 5 {
		t.Errorf("SpawnInterval at max = %v, expected 5", got)
	}
}
