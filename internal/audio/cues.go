package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Note frequencies in Hz.
const (
	noteE3 = 164.81
	noteG3 = 196.00
	noteA3 = 220.00
	noteE4 = 329.63
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
	noteE6 = 1318.51
)

// Cue builds the sound for an event kind at the given volume.
// Returns nil for kinds without a sound.
func Cue(kind core.EventKind, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer

	switch kind {
	case core.EventWallHit:
		s = tone(noteA3, 40*time.Millisecond, WaveSquare, rate)
	case core.EventPaddleHit:
		s = tone(noteA4, 60*time.Millisecond, WaveTriangle, rate)
	case core.EventBrickHit:
		// Bell: fundamental plus a quieter octave
		d := 90 * time.Millisecond
		s = beep.Mix(
			newVolume(tone(noteE5, d, WaveSine, rate), 0.7),
			newVolume(tone(noteE6, d, WaveSine, rate), 0.3),
		)
	case core.EventLifeLost:
		s = arpeggio([]float64{noteE4, noteA3}, 120*time.Millisecond, WaveSaw, rate)
	case core.EventLevelUp:
		s = arpeggio([]float64{noteC5, noteE5, noteG5}, 80*time.Millisecond, WaveTriangle, rate)
	case core.EventGameWon:
		s = arpeggio([]float64{noteC5, noteE5, noteG5, noteC6}, 110*time.Millisecond, WaveTriangle, rate)
	case core.EventGameLost:
		s = arpeggio([]float64{noteA3, noteG3, noteE3}, 160*time.Millisecond, WaveSaw, rate)
	default:
		return nil
	}

	return newVolume(s, volume)
}
