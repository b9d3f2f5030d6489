package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for unusable parameter values.
var ErrInvalidConfig = errors.New("invalid config")

// LoadInvaders loads Invaders configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
// Files are decoded over the defaults, so a file may set only the keys it changes.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("invaders.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "invaders.yaml")); ok {
		return c, nil
	}

	return decodeEmbedded(GetDefaultYAML("invaders"))
}

// decodeEmbedded decodes the built-in defaults over DefaultInvadersConfig.
// A failure here means the embedded file is broken.
func decodeEmbedded(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultInvadersConfig(), fmt.Errorf("failed to parse embedded defaults: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultInvadersConfig(), fmt.Errorf("embedded defaults: %w", err)
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, malformed or invalid files are skipped.
func tryLoad(path string) (InvadersConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InvadersConfig{}, false
	}
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvadersConfig{}, false
	}
	if cfg.Validate() != nil {
		return InvadersConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}

// Validate checks that every parameter a wave depends on is usable.
func (c InvadersConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"grid.alien_width", c.Grid.AlienWidth},
		{"grid.alien_height", c.Grid.AlienHeight},
		{"march.h_walk", c.March.HWalk},
		{"march.v_walk", c.March.VWalk},
		{"march.interval", c.March.Interval},
		{"ship.width", c.Ship.Width},
		{"ship.height", c.Ship.Height},
		{"ship.speed", c.Ship.Speed},
		{"bolts.width", c.Bolts.Width},
		{"bolts.height", c.Bolts.Height},
		{"bolts.speed", c.Bolts.Speed},
		{"gameplay.death_duration", c.Gameplay.DeathDuration},
	}
	for _, p := range positive {
		if !(p.val > 0) || math.IsInf(p.val, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.val)
		}
	}

	switch {
	case c.Grid.Rows < 1:
		return fmt.Errorf("%w: grid.rows must be at least 1, got %d", ErrInvalidConfig, c.Grid.Rows)
	case c.Grid.Columns < 1:
		return fmt.Errorf("%w: grid.columns must be at least 1, got %d", ErrInvalidConfig, c.Grid.Columns)
	case c.Bolts.FireRate < 1:
		return fmt.Errorf("%w: bolts.fire_rate must be at least 1, got %d", ErrInvalidConfig, c.Bolts.FireRate)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: gameplay.lives must be at least 1, got %d", ErrInvalidConfig, c.Gameplay.Lives)
	case c.Gameplay.DeathFrames < 1:
		return fmt.Errorf("%w: gameplay.death_frames must be at least 1, got %d", ErrInvalidConfig, c.Gameplay.DeathFrames)
	case c.Gameplay.AlienPoints < 0:
		return fmt.Errorf("%w: gameplay.alien_points must not be negative", ErrInvalidConfig)
	case c.Grid.HSep < 0 || c.Grid.VSep < 0 || c.Grid.Ceiling < 0 || c.March.Margin < 0:
		return fmt.Errorf("%w: separations and margins must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Bolts.FireRate += 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.March.Interval *= 0.75
	}
}
