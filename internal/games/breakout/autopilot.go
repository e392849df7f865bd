package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Event is a step event stamped with the frame it happened on.
type Event struct {
	Frame uint64
	core.Event
}

// Autopilot steers the paddle under the ball. It drives headless runs.
type Autopilot struct {
	// Offset shifts the aim point from the paddle center, in canvas units.
	// A small offset makes the ball leave the paddle at an angle.
	Offset float64
}

// Intent returns the direction that brings the paddle toward the ball.
func (a Autopilot) Intent(s *State) Intent {
	aim := s.Paddle.CenterX() + a.Offset
	switch {
	case s.Ball.X > aim+s.Paddle.Step:
		return Intent{Dir: DirRight}
	case s.Ball.X < aim-s.Paddle.Step:
		return Intent{Dir: DirLeft}
	default:
		return Intent{}
	}
}

// Run plays a whole game with the autopilot, up to maxFrames ticks, and
// returns the final state along with every event produced.
func (a Autopilot) Run(s State, rng Rand, maxFrames int) (State, []Event) {
	s = s.Clone()
	var log []Event
	for i := 0; i < maxFrames && !s.Progress.Over; i++ {
		for _, ev := range s.Advance(a.Intent(&s), rng) {
			log = append(log, Event{Frame: s.Frame, Event: ev})
		}
	}
	return s, log
}
