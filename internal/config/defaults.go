package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

//go:embed defaults/invasion_classic.yaml
var defaultClassicYAML []byte

// Variant names the config file of a game variant.
type Variant string

const (
	VariantFull    Variant = "invasion"
	VariantClassic Variant = "invasion_classic"
)

// DefaultInvasionConfig returns the built-in configuration of the full variant.
// It mirrors defaults/invasion.yaml and is used if the embedded file is broken.
func DefaultInvasionConfig() InvasionConfig {
	return InvasionConfig{
		Ship: ShipConfig{
			Width:        5,
			Height:       2,
			Speed:        0.8,
			Lives:        3,
			MaxLives:     9,
			FireCooldown: 10,
			MaxBullets:   3,
		},
		Bullets: BulletConfig{
			Width:     1,
			Height:    1,
			Speed:     0.6,
			BombSpeed: 0.25,
		},
		Enemies: EnemyConfig{
			Width:        5,
			Height:       2,
			GapX:         2,
			GapY:         1,
			Top:          2,
			MaxRows:      5,
			BasePerWave:  5,
			ExtraPerWave: 3,
			WaveDescent:  1,
			MaxDescent:   6,
			BaseSpeed:    0.12,
			Drop:         1,
			Points:       10,
		},
		Boss: BossConfig{
			Enabled:      true,
			FromWave:     5,
			Every:        5,
			Health:       3,
			Points:       50,
			BombInterval: 120,
		},
		PowerUps: PowerUpConfig{
			Enabled:        true,
			SpawnPerMille:  2,
			Width:          3,
			Height:         1,
			FallSpeed:      0.1,
			ShieldDuration: 300, // 5 seconds
			ShieldWeight:   1,
			LifeWeight:     1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 12,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
				BombReduction:   60,
			},
		},
	}
}

// DefaultClassicConfig returns the built-in configuration of the classic variant.
func DefaultClassicConfig() InvasionConfig {
	cfg := DefaultInvasionConfig()
	cfg.Ship.MaxLives = cfg.Ship.Lives
	cfg.Boss = BossConfig{}
	cfg.PowerUps = PowerUpConfig{}
	cfg.Difficulty.Scaling = ScalingConfig{SpeedMultiplier: 1.0}
	return cfg
}

// DefaultFor returns the hardcoded defaults of a variant.
func DefaultFor(v Variant) InvasionConfig {
	if v == VariantClassic {
		return DefaultClassicConfig()
	}
	return DefaultInvasionConfig()
}

// DefaultYAML returns the embedded default YAML of a variant, or nil.
func DefaultYAML(v Variant) []byte {
	switch v {
	case VariantFull:
		return defaultInvasionYAML
	case VariantClassic:
		return defaultClassicYAML
	default:
		return nil
	}
}
