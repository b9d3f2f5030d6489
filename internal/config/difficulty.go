package config

import "github.com/vovakirdan/tui-invaders/internal/core"

// DifficultyManager turns a DifficultyConfig into concrete wave timing.
// The level runs from InitialLevel at the start to 1 once progression
// reaches MaxAt. A disabled manager returns base values unchanged.
type DifficultyManager struct {
	cfg  DifficultyConfig
	base float64
}

func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, base: core.ClampF(cfg.InitialLevel, 0, 1)}
}

// Level returns the difficulty level in [0, 1] for the given score and
// elapsed ticks.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	p := d.cfg.Progression
	if !d.cfg.Enabled {
		return d.base
	}

	var done float64
	switch p.Type {
	case "score":
		done = float64(score)
	case "time":
		done = float64(ticks)
	default:
		return d.base
	}
	done = core.ClampF(done/float64(max(p.MaxAt, 1)), 0, 1)
	return d.base + done*(1-d.base)
}

// MarchInterval scales the seconds between formation steps. At level 1 the
// formation moves SpeedMultiplier+1 times as fast.
func (d *DifficultyManager) MarchInterval(base float64, score, ticks int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	return base / (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// FireRate lowers the bound on march steps between enemy shots, never
// below one.
func (d *DifficultyManager) FireRate(base, score, ticks int) int {
	if !d.cfg.Enabled {
		return base
	}
	cut := int(d.Level(score, ticks) * float64(d.cfg.Scaling.FireRateReduction))
	return max(base-cut, 1)
}
