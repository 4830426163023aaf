// Package config loads YAML game configuration and manages difficulty
// presets for the invasion games.
package config

// InvasionConfig contains all tunables of the shooter.
// Distances are in cells, speeds in cells per tick, durations in ticks.
type InvasionConfig struct {
	Ship       ShipConfig       `yaml:"ship"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Boss       BossConfig       `yaml:"boss"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	Lives        int     `yaml:"lives"`
	MaxLives     int     `yaml:"max_lives"`
	FireCooldown int     `yaml:"fire_cooldown"`
	MaxBullets   int     `yaml:"max_bullets"`
}

// BulletConfig defines player bullets and boss bombs.
type BulletConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	BombSpeed float64 `yaml:"bomb_speed"`
}

// EnemyConfig defines the alien formation.
type EnemyConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	GapX         int     `yaml:"gap_x"`
	GapY         int     `yaml:"gap_y"`
	Top          int     `yaml:"top"`
	MaxRows      int     `yaml:"max_rows"`
	BasePerWave  int     `yaml:"base_per_wave"`
	ExtraPerWave int     `yaml:"extra_per_wave"`
	WaveDescent  int     `yaml:"wave_descent"`
	MaxDescent   int     `yaml:"max_descent"`
	BaseSpeed    float64 `yaml:"base_speed"`
	Drop         int     `yaml:"drop"`
	Points       int     `yaml:"points"`
}

// BossConfig defines boss aliens. Bosses only appear when Enabled.
type BossConfig struct {
	Enabled      bool `yaml:"enabled"`
	FromWave     int  `yaml:"from_wave"`
	Every        int  `yaml:"every"`
	Health       int  `yaml:"health"`
	Points       int  `yaml:"points"`
	BombInterval int  `yaml:"bomb_interval"`
}

// PowerUpConfig defines falling pickups.
type PowerUpConfig struct {
	Enabled        bool    `yaml:"enabled"`
	SpawnPerMille  int     `yaml:"spawn_per_mille"` // Chance per tick, out of 1000
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	FallSpeed      float64 `yaml:"fall_speed"`
	ShieldDuration int     `yaml:"shield_duration"`
	ShieldWeight   int     `yaml:"shield_weight"`
	LifeWeight     int     `yaml:"life_weight"`
}

// DifficultyConfig defines how enemy speed grows.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives the difficulty level.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wave", "score", "time" or "none"
	MaxAt int    `yaml:"max_at"` // Wave/score/ticks at which the level reaches 1.0
}

// ScalingConfig defines the size of difficulty effects at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed factor
	BombReduction   int     `yaml:"bomb_reduction"`   // Ticks removed from the boss bomb interval
}

// DifficultyPreset is a named difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the starting difficulty level for a preset.
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
