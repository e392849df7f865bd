package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// It mirrors defaults/breakout.yaml and is the fallback when the embedded
// file cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas: BreakoutCanvas{
			Width:  400,
			Height: 500,
		},
		Paddle: BreakoutPaddle{
			Width:        100,
			Height:       20,
			MarginBottom: 50,
			Step:         5,
		},
		Ball: BreakoutBall{
			Radius:           8,
			Speed:            10,
			SpawnDX:          3,
			SpawnDY:          -3,
			SpeedGrowth:      1.01,
			Jitter:           0.5,
			MaxDeflectionDeg: 60,
		},
		Bricks: BreakoutBricks{
			Rows:      4,
			Columns:   6,
			Width:     50,
			Height:    20,
			MarginTop: 40,
			Colors:    []string{"#FF5733", "#33C1FF", "#9B59B6", "#2ECC71", "#F1C40F"},
			DeadColor: "#2e3548",
		},
		Gameplay: BreakoutGameplay{
			Lives:     3,
			ScoreUnit: 10,
			MaxLevel:  5,
		},
		Rules: BreakoutRules{
			PaddleHit:            PaddleHitLoose,
			ResetSpeedOnLifeLoss: false,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
