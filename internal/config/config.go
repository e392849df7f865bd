// Package config provides YAML/TOML game configuration loading for the
// game platform.
package config

import (
	"errors"
	"fmt"
)

// Paddle collision modes.
const (
	PaddleHitLoose  = "loose"  // Center x inside paddle span and ball below paddle top
	PaddleHitStrict = "strict" // Circle overlaps the paddle rectangle
)

// BreakoutConfig contains all configuration for the Breakout game.
// Distances are in canvas pixels, velocities in pixels per tick.
type BreakoutConfig struct {
	Canvas   BreakoutCanvas   `yaml:"canvas" toml:"canvas"`
	Paddle   BreakoutPaddle   `yaml:"paddle" toml:"paddle"`
	Ball     BreakoutBall     `yaml:"ball" toml:"ball"`
	Bricks   BreakoutBricks   `yaml:"bricks" toml:"bricks"`
	Gameplay BreakoutGameplay `yaml:"gameplay" toml:"gameplay"`
	Rules    BreakoutRules    `yaml:"rules" toml:"rules"`
}

// BreakoutCanvas defines the playfield size.
type BreakoutCanvas struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BreakoutPaddle defines paddle geometry and movement.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	MarginBottom float64 `yaml:"margin_bottom" toml:"margin_bottom"`
	Step         float64 `yaml:"step" toml:"step"` // Horizontal move per tick
}

// BreakoutBall defines ball geometry and physics.
type BreakoutBall struct {
	Radius float64 `yaml:"radius" toml:"radius"`

	// Speed is the initial scalar speed applied on paddle hits.
	Speed float64 `yaml:"speed" toml:"speed"`

	// SpawnDX bounds |dx| at spawn; the direction is randomized.
	SpawnDX float64 `yaml:"spawn_dx" toml:"spawn_dx"`
	SpawnDY float64 `yaml:"spawn_dy" toml:"spawn_dy"`

	// SpeedGrowth multiplies Speed on every paddle hit.
	SpeedGrowth float64 `yaml:"speed_growth" toml:"speed_growth"`

	// Jitter is the half-width of the uniform velocity noise.
	Jitter float64 `yaml:"jitter" toml:"jitter"`

	// MaxDeflectionDeg is the bounce angle off the paddle edge.
	MaxDeflectionDeg float64 `yaml:"max_deflection_deg" toml:"max_deflection_deg"`
}

// BreakoutBricks defines the brick grid.
type BreakoutBricks struct {
	Rows      int      `yaml:"rows" toml:"rows"`
	Columns   int      `yaml:"columns" toml:"columns"`
	Width     float64  `yaml:"width" toml:"width"`
	Height    float64  `yaml:"height" toml:"height"`
	MarginTop float64  `yaml:"margin_top" toml:"margin_top"`
	Colors    []string `yaml:"colors" toml:"colors"` // Fresh brick color per level, cycling
	DeadColor string   `yaml:"dead_color" toml:"dead_color"`
}

// BreakoutGameplay defines scoring and progression.
type BreakoutGameplay struct {
	Lives     int `yaml:"lives" toml:"lives"`
	ScoreUnit int `yaml:"score_unit" toml:"score_unit"`
	MaxLevel  int `yaml:"max_level" toml:"max_level"`
}

// BreakoutRules selects between reference-compatible and corrected behaviors.
type BreakoutRules struct {
	PaddleHit            string `yaml:"paddle_hit" toml:"paddle_hit"`
	ResetSpeedOnLifeLoss bool   `yaml:"reset_speed_on_life_loss" toml:"reset_speed_on_life_loss"`
}

// PaddleY returns the fixed top edge of the paddle.
func (c BreakoutConfig) PaddleY() float64 {
	return c.Canvas.Height - c.Paddle.MarginBottom - c.Paddle.Height
}

// GridWidth returns the total width of one brick row.
func (c BreakoutConfig) GridWidth() float64 {
	return c.Bricks.Width * float64(c.Bricks.Columns)
}

// Validate reports every setting that would break the simulation's invariants.
func (c BreakoutConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("canvas.width", c.Canvas.Width)
	positive("canvas.height", c.Canvas.Height)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.step", c.Paddle.Step)
	positive("ball.radius", c.Ball.Radius)
	positive("ball.speed", c.Ball.Speed)
	positive("bricks.width", c.Bricks.Width)
	positive("bricks.height", c.Bricks.Height)

	if c.Paddle.Width > c.Canvas.Width {
		errs = append(errs, fmt.Errorf("paddle.width %v exceeds canvas.width %v", c.Paddle.Width, c.Canvas.Width))
	}
	if c.PaddleY() <= 0 {
		errs = append(errs, errors.New("paddle does not fit vertically in the canvas"))
	}
	if c.Ball.SpeedGrowth < 1 {
		errs = append(errs, fmt.Errorf("ball.speed_growth must be >= 1, got %v", c.Ball.SpeedGrowth))
	}
	if c.Ball.Jitter < 0 {
		errs = append(errs, fmt.Errorf("ball.jitter must not be negative, got %v", c.Ball.Jitter))
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Columns <= 0 {
		errs = append(errs, fmt.Errorf("bricks grid must be at least 1x1, got %dx%d", c.Bricks.Rows, c.Bricks.Columns))
	}
	if c.GridWidth() > c.Canvas.Width {
		errs = append(errs, fmt.Errorf("brick grid width %v exceeds canvas.width %v", c.GridWidth(), c.Canvas.Width))
	}
	if bottom := c.Bricks.MarginTop + c.Bricks.Height*float64(c.Bricks.Rows); bottom >= c.PaddleY() {
		errs = append(errs, fmt.Errorf("brick grid bottom %v overlaps the paddle row", bottom))
	}
	if len(c.Bricks.Colors) == 0 {
		errs = append(errs, errors.New("bricks.colors must list at least one color"))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.ScoreUnit <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.score_unit must be positive, got %d", c.Gameplay.ScoreUnit))
	}
	if c.Gameplay.MaxLevel <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.max_level must be positive, got %d", c.Gameplay.MaxLevel))
	}
	switch c.Rules.PaddleHit {
	case PaddleHitLoose, PaddleHitStrict:
	default:
		errs = append(errs, fmt.Errorf("rules.paddle_hit must be %q or %q, got %q", PaddleHitLoose, PaddleHitStrict, c.Rules.PaddleHit))
	}

	return errors.Join(errs...)
}
