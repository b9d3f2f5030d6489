package wave

import "testing"

// testParams returns a 3x5 formation in a 60x30 world.
// Column c sits at x = 5(c+1); rows 0, 1, 2 sit at y = 24, 26, 28.
// The ship spawns at (30, 1.5).
func testParams() Params {
	return Params{
		Rows:          3,
		Columns:       5,
		AlienWidth:    3,
		AlienHeight:   1,
		HSep:          2,
		VSep:          1,
		Ceiling:       2,
		Width:         60,
		Height:        30,
		DefenseLine:   3,
		HWalk:         1,
		VWalk:         1,
		MarchInterval: 0.4,
		ShipWidth:     5,
		ShipHeight:    1,
		ShipBottom:    1,
		ShipSpeed:     1,
		BoltWidth:     1,
		BoltHeight:    1,
		BoltSpeed:     0.5,
		FireRate:      10,
		Lives:         3,
		AlienPoints:   10,
		DeathDuration: 2,
		DeathFrames:   8,
	}
}

// fixedRand always returns the same value, reduced into range.
type fixedRand int

func (r fixedRand) Intn(n int) int { return int(r) % n }

// countingSounds records audio cues.
type countingSounds struct {
	destroyed int
	hits      int
}

func (s *countingSounds) AlienDestroyed() { s.destroyed++ }
func (s *countingSounds) ShipHit()        { s.hits++ }

func mustUpdate(t *testing.T, w *Wave, dt float64, in Input) {
	t.Helper()
	if err := w.Update(dt, in); err != nil {
		t.Fatalf("Update(%v) failed: %v", dt, err)
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	fn()
}
