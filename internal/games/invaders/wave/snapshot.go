package wave

import "math"

// Snapshot is a flat copy of a wave's state for determinism checks and
// debugging. Uses primitive types only for stable hashing.
type Snapshot struct {
	Frame     uint64
	Score     int
	Lives     int
	Dead      bool
	Win       bool
	Direction int
	MarchTime float64
	Steps     int
	FireAt    int

	HasShip   bool
	ShipX     float64
	Struck    bool
	Exploding bool
	Elapsed   float64

	// Each slot is 3 values: Alive (0/1), X, Y. Index is row*columns + col.
	AlienData []float64

	// Each bolt is 3 values: X, Y, VY.
	BoltData []float64

	// Zero unless the wave draws from a SimpleRNG.
	RNGState uint64
}

// Snapshot returns the current state.
func (w *Wave) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:     w.frame,
		Score:     w.score,
		Lives:     w.lives,
		Dead:      w.dead,
		Win:       w.win,
		Direction: w.direction,
		MarchTime: w.marchTime,
		Steps:     w.steps,
		FireAt:    w.fireAt,
		HasShip:   w.ship != nil,
		Struck:    w.struck,
		Exploding: w.explosion.Active(),
		Elapsed:   w.explosion.Elapsed(),
		AlienData: make([]float64, 0, len(w.grid.slots)*3),
		BoltData:  make([]float64, 0, w.bolts.Len()*3),
	}
	if w.ship != nil {
		snap.ShipX = w.ship.X
	}

	for _, a := range w.grid.slots {
		if a == nil {
			snap.AlienData = append(snap.AlienData, 0, 0, 0)
			continue
		}
		snap.AlienData = append(snap.AlienData, 1, a.X, a.Y)
	}

	for _, b := range w.bolts.All() {
		snap.BoltData = append(snap.BoltData, b.X, b.Y, b.VY)
	}

	if r, ok := w.rng.(*SimpleRNG); ok {
		snap.RNGState = r.State()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Steps)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FireAt)    //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.MarchTime)
	h = h*31 + math.Float64bits(snap.ShipX)
	h = h*31 + math.Float64bits(snap.Elapsed)

	for _, b := range []bool{snap.Dead, snap.Win, snap.HasShip, snap.Struck, snap.Exploding} {
		h *= 31
		if b {
			h++
		}
	}

	for _, v := range snap.AlienData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BoltData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.RNGState

	return h
}
