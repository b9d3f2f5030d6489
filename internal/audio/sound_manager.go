package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays the game's effects through the system speaker.
// Every method is safe to call before Initialize succeeds; it then does nothing.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64 // Base-2 exponent; 0 is unity gain
	initialized bool
}

// NewSoundManager creates a sound manager. volume is a base-2 exponent:
// 0 plays at unity gain, -1 at half, 1 at double.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and stops accepting cues.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// AlienDestroyed plays a short descending zap.
func (sm *SoundManager) AlienDestroyed() {
	sm.play(NewSweepGenerator(sampleRate, 1400, 200, 120*time.Millisecond))
}

// ShipHit plays a heavy blast.
func (sm *SoundManager) ShipHit() {
	sm.play(beep.Take(sampleRate.N(600*time.Millisecond), NewBlastGenerator(sampleRate, 55, 5)))
}

// play adds a one-shot streamer to the mixer.
func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	v := &effects.Volume{Streamer: s, Base: 2, Volume: sm.volume}
	speaker.Lock()
	sm.mixer.Add(v)
	speaker.Unlock()
}
