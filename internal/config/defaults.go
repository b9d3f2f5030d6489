package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default Invaders configuration.
// It mirrors defaults/invaders.yaml and backs it up if the embed is unreadable.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Grid: InvadersGrid{
			Rows:        5,
			Columns:     10,
			AlienWidth:  3,
			AlienHeight: 1,
			HSep:        2,
			VSep:        1,
			Ceiling:     2,
		},
		March: InvadersMarch{
			HWalk:    1,
			VWalk:    1,
			Interval: 0.4,
		},
		Ship: InvadersShip{
			Width:  5,
			Height: 1,
			Bottom: 1,
			Speed:  1,
		},
		Bolts: InvadersBolts{
			Width:    1,
			Height:   1,
			Speed:    0.5,
			FireRate: 10,
		},
		Gameplay: InvadersGameplay{
			Lives:         3,
			AlienPoints:   10,
			DefenseLine:   3,
			DeathDuration: 2.0,
			DeathFrames:   8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 0,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				FireRateReduction: 5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders", "invaders_classic":
		return defaultInvadersYAML
	default:
		return nil
	}
}
