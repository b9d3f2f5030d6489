package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator generates a square wave whose pitch slides from one
// frequency to another over its duration, fading out as it goes.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep from one frequency to another.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: max(sr.N(d), 1),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		sample := 0.25
		if g.phase >= 0.5 {
			sample = -0.25
		}
		sample *= 1 - progress

		g.phase += freq / float64(g.sr)
		if g.phase >= 1 {
			g.phase -= 1
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// BlastGenerator generates a noise burst over a low rumble with an
// exponential decay.
type BlastGenerator struct {
	sr     beep.SampleRate
	rumble float64
	decay  float64
	pos    int
	seed   uint32
}

// NewBlastGenerator creates a blast. Larger decay values die out faster.
func NewBlastGenerator(sr beep.SampleRate, rumble, decay float64) *BlastGenerator {
	return &BlastGenerator{
		sr:     sr,
		rumble: rumble,
		decay:  decay,
		seed:   0x2545f491,
	}
}

func (g *BlastGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * g.decay)

		g.seed = g.seed*1664525 + 1013904223
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		sample := envelope * (0.3*noise + 0.3*math.Sin(2*math.Pi*g.rumble*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlastGenerator) Err() error {
	return nil
}
