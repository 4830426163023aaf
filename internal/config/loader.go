package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by validation failures.
var ErrInvalidConfig = errors.New("invalid config")

// Load reads the configuration of a variant.
// Search order: customPath -> ~/.invasion/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default.
// Only an explicit customPath can produce an error; broken files in the
// implicit locations are skipped.
func Load(v Variant, customPath string) (InvasionConfig, error) {
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return InvasionConfig{}, err
		}
		return cfg, nil
	}

	name := string(v) + ".yaml"
	candidates := []string{filepath.Join("configs", name)}
	if p := userConfigPath(name); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, p := range candidates {
		if cfg, err := readFile(p); err == nil {
			return cfg, nil
		}
	}

	var cfg InvasionConfig
	if err := yaml.Unmarshal(DefaultYAML(v), &cfg); err != nil || cfg.Validate() != nil {
		return DefaultFor(v), nil
	}
	return cfg, nil
}

func readFile(path string) (InvasionConfig, error) {
	var cfg InvasionConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the per-user config location, or "" without a home dir.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invasion", "configs", filename)
}

// Validate checks the values the simulation divides by or sizes entities with.
func (c InvasionConfig) Validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{c.Ship.Width > 0 && c.Ship.Height > 0, "ship size must be positive"},
		{c.Ship.Speed > 0, "ship speed must be positive"},
		{c.Ship.Lives > 0, "ship lives must be positive"},
		{c.Ship.MaxBullets > 0, "ship max_bullets must be positive"},
		{c.Bullets.Width > 0 && c.Bullets.Height > 0, "bullet size must be positive"},
		{c.Bullets.Speed > 0, "bullet speed must be positive"},
		{c.Enemies.Width > 0 && c.Enemies.Height > 0, "enemy size must be positive"},
		{c.Enemies.MaxRows > 0, "enemies max_rows must be positive"},
		{c.Enemies.BasePerWave > 0, "enemies base_per_wave must be positive"},
		{c.Enemies.BaseSpeed > 0, "enemy base_speed must be positive"},
		{!c.Boss.Enabled || (c.Boss.Every > 0 && c.Boss.Health > 0), "boss every and health must be positive"},
		{!c.PowerUps.Enabled || (c.PowerUps.Width > 0 && c.PowerUps.Height > 0), "power-up size must be positive"},
		{!c.PowerUps.Enabled || c.PowerUps.ShieldWeight+c.PowerUps.LifeWeight > 0, "power-up weights must not both be zero"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.name)
		}
	}
	return nil
}

// ApplyPreset modifies cfg for a difficulty preset. An empty preset is a no-op.
func ApplyPreset(cfg *InvasionConfig, preset DifficultyPreset) {
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
		cfg.Ship.Lives = 5
		cfg.Ship.MaxBullets++
		cfg.Enemies.BaseSpeed *= 0.75
	case DifficultyHard:
		cfg.Ship.Lives = 2
		cfg.Enemies.BaseSpeed *= 1.25
	}
	if cfg.Ship.MaxLives < cfg.Ship.Lives {
		cfg.Ship.MaxLives = cfg.Ship.Lives
	}
}
