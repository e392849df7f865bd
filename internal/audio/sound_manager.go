package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player receives the events of each simulation step.
type Player interface {
	Play(events []core.Event)
}

// Nop is a Player that discards events.
type Nop struct{}

// Play does nothing.
func (Nop) Play([]core.Event) {}

// SoundManager plays one cue per event kind through the speaker.
// Until Initialize succeeds every call is a no-op, so a machine without
// an audio device just plays silently.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager with the given volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues the cues for a step's events. Several events of the same
// kind in one step, such as a multi-brick hit, sound once.
func (sm *SoundManager) Play(events []core.Event) {
	if len(events) == 0 {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streams := cuesFor(events, sampleRate, sm.volume)
	if len(streams) == 0 {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streams...)
	speaker.Unlock()
}

// cuesFor builds the streams for a batch of events, one per kind.
func cuesFor(events []core.Event, rate beep.SampleRate, volume float64) []beep.Streamer {
	seen := make(map[core.EventKind]bool, len(events))
	var streams []beep.Streamer
	for _, ev := range events {
		if seen[ev.Kind] {
			continue
		}
		seen[ev.Kind] = true
		if s := Cue(ev.Kind, rate, volume); s != nil {
			streams = append(streams, s)
		}
	}
	return streams
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no Close for the speaker; clearing the mixer silences it
	sm.initialized = false
}
