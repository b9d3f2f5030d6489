// Package config provides YAML-based game configuration loading and
// difficulty scaling for the invaders modes.
package config

// InvadersConfig contains all configuration for a wave of Invaders.
// Distances are in world cells, durations in seconds.
type InvadersConfig struct {
	Grid       InvadersGrid      `yaml:"grid"`
	March      InvadersMarch     `yaml:"march"`
	Ship       InvadersShip      `yaml:"ship"`
	Bolts      InvadersBolts     `yaml:"bolts"`
	Gameplay   InvadersGameplay  `yaml:"gameplay"`
	Collision  InvadersCollision `yaml:"collision"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// InvadersGrid defines the alien formation layout.
type InvadersGrid struct {
	Rows        int     `yaml:"rows"`
	Columns     int     `yaml:"columns"`
	AlienWidth  float64 `yaml:"alien_width"`
	AlienHeight float64 `yaml:"alien_height"`
	HSep        float64 `yaml:"h_sep"`
	VSep        float64 `yaml:"v_sep"`
	Ceiling     float64 `yaml:"ceiling"` // Gap between the top row and the top of the world
}

// InvadersMarch defines formation movement.
type InvadersMarch struct {
	HWalk    float64 `yaml:"h_walk"`
	VWalk    float64 `yaml:"v_walk"`
	Interval float64 `yaml:"interval"`
	Margin   float64 `yaml:"margin"` // 0 means use grid.h_sep
}

// InvadersShip defines the player ship.
type InvadersShip struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Bottom float64 `yaml:"bottom"`
	Speed  float64 `yaml:"speed"`
}

// InvadersBolts defines projectile parameters.
type InvadersBolts struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`     // Cells per frame
	FireRate int     `yaml:"fire_rate"` // Upper bound of march steps between enemy shots
}

// InvadersGameplay defines scoring, lives and the death animation.
type InvadersGameplay struct {
	Lives         int     `yaml:"lives"`
	AlienPoints   int     `yaml:"alien_points"`
	DefenseLine   float64 `yaml:"defense_line"`
	DeathDuration float64 `yaml:"death_duration"`
	DeathFrames   int     `yaml:"death_frames"`
}

// InvadersCollision selects the hit-box model.
type InvadersCollision struct {
	// LegacyCorners reproduces the classic hit test: target-sized corners
	// around the bolt center, with the bottom-right corner collapsed onto
	// the bottom-left one.
	LegacyCorners bool `yaml:"legacy_corners"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`    // March speed added at max difficulty
	FireRateReduction int     `yaml:"fire_rate_reduction"` // Fire-rate bound reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
