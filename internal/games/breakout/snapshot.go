package breakout

import (
	"math"
)

// BrickSnapshot is the rendered view of one brick.
type BrickSnapshot struct {
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Alive bool    `json:"alive"`
	Color string  `json:"color"`
}

// Snapshot is a read-only view of the simulation for renderers and
// spectators. Uses primitive types only for stable serialization.
type Snapshot struct {
	Frame uint64 `json:"frame"`

	CanvasW float64 `json:"canvas_w"`
	CanvasH float64 `json:"canvas_h"`

	PaddleX float64 `json:"paddle_x"`
	PaddleY float64 `json:"paddle_y"`
	PaddleW float64 `json:"paddle_w"`
	PaddleH float64 `json:"paddle_h"`

	BallX      float64 `json:"ball_x"`
	BallY      float64 `json:"ball_y"`
	BallRadius float64 `json:"ball_radius"`
	BallDX     float64 `json:"ball_dx"`
	BallDY     float64 `json:"ball_dy"`
	BallSpeed  float64 `json:"ball_speed"`

	BrickW float64         `json:"brick_w"`
	BrickH float64         `json:"brick_h"`
	Bricks []BrickSnapshot `json:"bricks"`

	Score    int    `json:"score"`
	Lives    int    `json:"lives"`
	Level    int    `json:"level"`
	GameOver bool   `json:"game_over"`
	Outcome  string `json:"outcome"`
}

// Snapshot returns the current state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	bricks := make([]BrickSnapshot, 0, s.Grid.Rows()*s.Grid.Columns())
	for r, row := range s.Grid.Bricks {
		for c, b := range row {
			bricks = append(bricks, BrickSnapshot{
				Row:   r,
				Col:   c,
				X:     b.X,
				Y:     b.Y,
				Alive: b.Alive,
				Color: b.Color,
			})
		}
	}

	return Snapshot{
		Frame:      s.Frame,
		CanvasW:    s.cfg.Canvas.Width,
		CanvasH:    s.cfg.Canvas.Height,
		PaddleX:    s.Paddle.X,
		PaddleY:    s.Paddle.Y,
		PaddleW:    s.Paddle.Width,
		PaddleH:    s.Paddle.Height,
		BallX:      s.Ball.X,
		BallY:      s.Ball.Y,
		BallRadius: s.Ball.Radius,
		BallDX:     s.Ball.DX,
		BallDY:     s.Ball.DY,
		BallSpeed:  s.Ball.Speed,
		BrickW:     s.Grid.Width,
		BrickH:     s.Grid.Height,
		Bricks:     bricks,
		Score:      s.Progress.Score,
		Lives:      s.Progress.Lives,
		Level:      s.Progress.Level,
		GameOver:   s.Progress.Over,
		Outcome:    s.Progress.Outcome.String(),
	}
}

// BricksRemaining counts alive bricks in the snapshot.
func (snap *Snapshot) BricksRemaining() int {
	n := 0
	for _, b := range snap.Bricks {
		if b.Alive {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by bit pattern, so two runs match only if every
// intermediate value was identical.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	for _, f := range []float64{
		snap.PaddleX, snap.BallX, snap.BallY,
		snap.BallDX, snap.BallDY, snap.BallSpeed,
	} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation

	for _, b := range snap.Bricks {
		if b.Alive {
			h = h*31 + 1
		} else {
			h = h * 31
		}
	}

	if snap.GameOver {
		h = h*31 + 1
	}
	return h
}
