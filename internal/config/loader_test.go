package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML InvadersConfig
	if err := yaml.Unmarshal(GetDefaultYAML("invaders"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultInvadersConfig() {
		t.Errorf("embedded YAML and DefaultInvadersConfig diverge:\nyaml: %+v\ncode: %+v", fromYAML, DefaultInvadersConfig())
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadInvadersCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("grid:\n  rows: 3\n  columns: 5\ngameplay:\n  lives: 7\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}

	if cfg.Grid.Rows != 3 || cfg.Grid.Columns != 5 {
		t.Errorf("grid = %dx%d, expected 3x5", cfg.Grid.Rows, cfg.Grid.Columns)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	// Untouched keys keep their defaults
	if cfg.Bolts.Speed != DefaultInvadersConfig().Bolts.Speed {
		t.Errorf("bolt speed = %v, expected default", cfg.Bolts.Speed)
	}
}

func TestLoadInvadersCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadInvaders(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  rows: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadInvaders(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("zero rows should be ErrInvalidConfig, got %v", err)
	}
}

func TestLoadInvadersFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
	}{
		{"zero columns", func(c *InvadersConfig) { c.Grid.Columns = 0 }},
		{"negative interval", func(c *InvadersConfig) { c.March.Interval = -1 }},
		{"zero fire rate", func(c *InvadersConfig) { c.Bolts.FireRate = 0 }},
		{"zero death frames", func(c *InvadersConfig) { c.Gameplay.DeathFrames = 0 }},
		{"zero lives", func(c *InvadersConfig) { c.Gameplay.Lives = 0 }},
		{"negative h_sep", func(c *InvadersConfig) { c.Grid.HSep = -2 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyInvadersPreset(t *testing.T) {
	base := DefaultInvadersConfig()

	easy := base
	ApplyInvadersPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives != 5 || easy.Bolts.FireRate != base.Bolts.FireRate+5 {
		t.Errorf("easy preset: lives=%d fire_rate=%d", easy.Gameplay.Lives, easy.Bolts.FireRate)
	}

	hard := base
	ApplyInvadersPreset(&hard, DifficultyHard)
	if hard.Gameplay.Lives != 2 || hard.March.Interval >= base.March.Interval {
		t.Errorf("hard preset: lives=%d interval=%v", hard.Gameplay.Lives, hard.March.Interval)
	}
	if hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard initial level = %v, expected 0.7", hard.Difficulty.InitialLevel)
	}

	fixed := base
	ApplyInvadersPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable difficulty")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard)")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestDecodeEmbedded(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
		invalid bool
	}{
		{"shipped defaults", string(GetDefaultYAML("invaders")), false, false},
		{"malformed", "grid: [1, 2\n", true, false},
		{"zero rows", "grid:\n  rows: 0\n", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := decodeEmbedded([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeEmbedded() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.invalid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
			if cfg != DefaultInvadersConfig() {
				t.Errorf("expected defaults back, got %+v", cfg)
			}
		})
	}
}
