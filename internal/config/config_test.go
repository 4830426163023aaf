package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	for _, v := range []Variant{VariantFull, VariantClassic} {
		var cfg InvasionConfig
		if err := yaml.Unmarshal(DefaultYAML(v), &cfg); err != nil {
			t.Fatalf("%s: embedded YAML does not parse: %v", v, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("%s: embedded YAML is invalid: %v", v, err)
		}
		want := DefaultFor(v)
		if cfg.Ship != want.Ship || cfg.Enemies != want.Enemies || cfg.Boss.Enabled != want.Boss.Enabled ||
			cfg.PowerUps.Enabled != want.PowerUps.Enabled {
			t.Errorf("%s: embedded YAML and DefaultFor disagree:\n%+v\n%+v", v, cfg, want)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	cfg := DefaultInvasionConfig()
	cfg.Ship.Lives = 7
	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	loaded, err := Load(VariantFull, path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Ship.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", loaded.Ship.Lives)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(VariantFull, filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ship: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(VariantFull, bad); err == nil {
		t.Error("unparseable custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("ship:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(VariantFull, invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid config error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load(VariantClassic, "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.PowerUps.Enabled || cfg.Boss.Enabled {
		t.Error("classic variant should have power-ups and bosses disabled")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		enabled   bool
		initLevel float64
	}{
		{DifficultyEasy, 5, true, 0.0},
		{DifficultyNormal, 3, true, 0.3},
		{DifficultyHard, 2, true, 0.7},
		{DifficultyFixed, 3, false, 0.0},
		{"", 3, true, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultInvasionConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Ship.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Ship.Lives, tc.lives)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initLevel)
			}
			if cfg.Ship.MaxLives < cfg.Ship.Lives {
				t.Errorf("MaxLives %d below Lives %d", cfg.Ship.MaxLives, cfg.Ship.Lives)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) failed")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestDifficultyLevelByWave(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "wave", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, BombReduction: 60},
	})

	if got := d.Level(Progress{Wave: 1}); got != 0 {
		t.Errorf("Level at wave 1 = %v, expected 0", got)
	}
	if got := d.Level(Progress{Wave: 6}); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level at wave 6 = %v, expected 0.5", got)
	}
	if got := d.Level(Progress{Wave: 50}); got != 1 {
		t.Errorf("Level should clamp at 1, got %v", got)
	}

	if got := d.EnemySpeed(0.2, Progress{Wave: 11}); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("EnemySpeed at max = %v, expected 0.4", got)
	}
	if got := d.BombInterval(120, Progress{Wave: 11}); got != 60 {
		t.Errorf("BombInterval at max = %d, expected 60", got)
	}
	if got := d.BombInterval(8, Progress{Wave: 11}); got != 2 {
		t.Errorf("BombInterval floor = %d, expected 2", got)
	}
}

func TestDifficultyDisabledStaysAtInitial(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.7,
		Progression:  ProgressionConfig{Type: "wave", MaxAt: 10},
	})
	if d.IsEnabled() {
		t.Error("disabled manager reports enabled")
	}
	if got := d.Level(Progress{Wave: 9}); got != 0.7 {
		t.Errorf("Level = %v, expected initial 0.7", got)
	}
}

func TestDifficultyScoreAndTime(t *testing.T) {
	score := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
	})
	if got := score.Level(Progress{Score: 25}); got != 0.25 {
		t.Errorf("score Level = %v, expected 0.25", got)
	}

	ticks := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 0},
	})
	if got := ticks.Level(Progress{Ticks: 5}); got != 1 {
		t.Errorf("time Level with max_at 0 = %v, expected 1", got)
	}
}
