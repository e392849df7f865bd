package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Direction is the keyboard intent for one tick.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// Intent is the player's input for one tick.
// When HasTarget is set the paddle centers on Target and Dir is ignored.
type Intent struct {
	Dir       Direction
	Target    float64 // Canvas x
	HasTarget bool
}

// IntentFromKeys builds an intent from held direction keys.
// Right wins when both are held.
func IntentFromKeys(left, right bool) Intent {
	switch {
	case right:
		return Intent{Dir: DirRight}
	case left:
		return Intent{Dir: DirLeft}
	default:
		return Intent{}
	}
}

// PointAt builds an absolute pointer intent.
func PointAt(x float64) Intent {
	return Intent{Target: x, HasTarget: true}
}

// Progress tracks score, lives and level.
type Progress struct {
	Score   int
	Lives   int
	Level   int // 1-based
	Over    bool
	Outcome core.Outcome
}

// State is the complete simulation state.
type State struct {
	Paddle   Paddle
	Ball     Ball
	Grid     Grid
	Progress Progress
	Frame    uint64

	cfg config.BreakoutConfig
}

// NewState creates the initial state: paddle centered, ball above it,
// full grid for level 1. The config is expected to be valid.
func NewState(cfg config.BreakoutConfig, rng Rand) State {
	s := State{
		Paddle: Paddle{
			X:      (cfg.Canvas.Width - cfg.Paddle.Width) / 2,
			Y:      cfg.PaddleY(),
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
			Step:   cfg.Paddle.Step,
		},
		Ball: Ball{
			Radius: cfg.Ball.Radius,
			Speed:  cfg.Ball.Speed,
		},
		Grid: NewGrid(cfg, 1),
		Progress: Progress{
			Lives: cfg.Gameplay.Lives,
			Level: 1,
		},
		cfg: cfg,
	}
	s.spawnBall(rng)
	return s
}

// Config returns the configuration the state was built with.
func (s *State) Config() config.BreakoutConfig {
	return s.cfg
}

// Clone creates a deep copy of the state.
func (s State) Clone() State {
	clone := s
	clone.Grid = s.Grid.Clone()
	clone.cfg.Bricks.Colors = append([]string(nil), s.cfg.Bricks.Colors...)
	return clone
}

// spawnBall puts the ball at the horizontal center, resting on the paddle
// row, with a random horizontal direction. Speed is kept.
func (s *State) spawnBall(rng Rand) {
	s.Ball.X = s.cfg.Canvas.Width / 2
	s.Ball.Y = s.Paddle.Y - s.Ball.Radius
	s.Ball.DX = s.cfg.Ball.SpawnDX * (rng.Float64()*2 - 1)
	s.Ball.DY = s.cfg.Ball.SpawnDY
}

// Step is the pure transition: it returns the next state and the events
// produced, leaving s untouched. A finished game steps to itself.
func Step(s State, in Intent, rng Rand) (State, []core.Event) {
	next := s.Clone()
	events := next.Advance(in, rng)
	return next, events
}

// Advance applies one tick in place and returns the events in detection
// order. Phases run in a fixed sequence: paddle, ball, walls, paddle hit,
// bricks, then game-over and level checks.
func (s *State) Advance(in Intent, rng Rand) []core.Event {
	if s.Progress.Over {
		return nil
	}
	s.Frame++

	var events []core.Event

	s.movePaddle(in)
	s.Ball.Move()

	hit := CheckWalls(&s.Ball, s.cfg.Canvas.Width, s.cfg.Canvas.Height)
	if hit.Side {
		events = append(events, core.Event{Kind: core.EventWallHit})
	}
	if hit.Top {
		events = append(events, core.Event{Kind: core.EventWallHit})
	}
	if hit.Bottom {
		s.Progress.Lives--
		events = append(events, core.Event{Kind: core.EventLifeLost})
		if s.cfg.Rules.ResetSpeedOnLifeLoss {
			s.Ball.Speed = s.cfg.Ball.Speed
		}
		s.spawnBall(rng)
	}

	if TouchesPaddle(&s.Ball, &s.Paddle, s.cfg.Rules.PaddleHit) {
		Deflect(&s.Ball, &s.Paddle, s.cfg.Ball, rng)
		events = append(events, core.Event{Kind: core.EventPaddleHit})
	}

	for _, h := range CheckBricks(&s.Ball, &s.Grid, s.cfg.Bricks, s.cfg.Ball.Jitter, rng) {
		s.Progress.Score += s.cfg.Gameplay.ScoreUnit
		events = append(events, core.Event{
			Kind:   core.EventBrickHit,
			Row:    h.Row,
			Col:    h.Col,
			Points: s.cfg.Gameplay.ScoreUnit,
		})
	}

	// Loss wins over a simultaneous final clear.
	if s.Progress.Lives <= 0 {
		s.Progress.Over = true
		s.Progress.Outcome = core.OutcomeLoss
		return append(events, core.Event{Kind: core.EventGameLost})
	}

	if s.Grid.Cleared() {
		s.Progress.Level++
		if s.Progress.Level > s.cfg.Gameplay.MaxLevel {
			s.Progress.Over = true
			s.Progress.Outcome = core.OutcomeWin
			return append(events, core.Event{Kind: core.EventGameWon})
		}
		s.Grid = NewGrid(s.cfg, s.Progress.Level)
		events = append(events, core.Event{Kind: core.EventLevelUp})
	}

	return events
}

func (s *State) movePaddle(in Intent) {
	w := s.cfg.Canvas.Width
	switch {
	case in.HasTarget:
		s.Paddle.CenterOn(in.Target, w)
	case in.Dir == DirRight:
		s.Paddle.MoveRight(w)
	case in.Dir == DirLeft:
		s.Paddle.MoveLeft(w)
	}
}

// GameState converts progress to the platform state.
func (s *State) GameState() core.GameState {
	return core.GameState{
		Score:    s.Progress.Score,
		Lives:    s.Progress.Lives,
		Level:    s.Progress.Level,
		GameOver: s.Progress.Over,
		Outcome:  s.Progress.Outcome,
	}
}
