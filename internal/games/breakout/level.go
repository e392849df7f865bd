// Package breakout implements a paddle-and-ball brick breaker.
//
// The simulation is a pure transition over State: Step takes a state, a
// per-frame Intent and a random source and returns the next state plus the
// events detected during the frame. Game wraps it for the game platform.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Brick is a single cell of the brick grid.
// All bricks share the grid's width and height.
type Brick struct {
	X, Y  float64 // Top-left corner
	Alive bool
	Color string // "#rrggbb"
}

// Grid holds the bricks of the current level, indexed [row][col].
type Grid struct {
	Bricks [][]Brick
	Width  float64 // Brick width
	Height float64 // Brick height
}

// NewGrid builds a fully alive grid for the given level, centered horizontally.
func NewGrid(cfg config.BreakoutConfig, level int) Grid {
	startX := (cfg.Canvas.Width - cfg.GridWidth()) / 2
	color := levelColor(cfg, level)

	bricks := make([][]Brick, cfg.Bricks.Rows)
	for r := range bricks {
		bricks[r] = make([]Brick, cfg.Bricks.Columns)
		for c := range bricks[r] {
			bricks[r][c] = Brick{
				X:     startX + float64(c)*cfg.Bricks.Width,
				Y:     float64(r)*cfg.Bricks.Height + cfg.Bricks.MarginTop,
				Alive: true,
				Color: color,
			}
		}
	}

	return Grid{
		Bricks: bricks,
		Width:  cfg.Bricks.Width,
		Height: cfg.Bricks.Height,
	}
}

// levelColor picks the fresh brick color for a 1-based level.
func levelColor(cfg config.BreakoutConfig, level int) string {
	colors := cfg.Bricks.Colors
	if len(colors) == 0 {
		return "#FF5733"
	}
	if level < 1 {
		level = 1
	}
	return colors[(level-1)%len(colors)]
}

// Box returns the brick rectangle in canvas coordinates.
func (g *Grid) Box(row, col int) core.Box {
	b := g.Bricks[row][col]
	return core.BoxFromRect(b.X, b.Y, g.Width, g.Height)
}

// Rows returns the number of brick rows.
func (g *Grid) Rows() int {
	return len(g.Bricks)
}

// Columns returns the number of brick columns.
func (g *Grid) Columns() int {
	if len(g.Bricks) == 0 {
		return 0
	}
	return len(g.Bricks[0])
}

// CountAlive returns the number of remaining bricks.
func (g *Grid) CountAlive() int {
	count := 0
	for _, row := range g.Bricks {
		for _, b := range row {
			if b.Alive {
				count++
			}
		}
	}
	return count
}

// Cleared reports whether every brick has been destroyed.
func (g *Grid) Cleared() bool {
	for _, row := range g.Bricks {
		for _, b := range row {
			if b.Alive {
				return false
			}
		}
	}
	return true
}

// Clone creates a deep copy of the grid.
func (g Grid) Clone() Grid {
	clone := g
	clone.Bricks = make([][]Brick, len(g.Bricks))
	for i, row := range g.Bricks {
		clone.Bricks[i] = make([]Brick, len(row))
		copy(clone.Bricks[i], row)
	}
	return clone
}
