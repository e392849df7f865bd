package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball represents the ball in canvas coordinates.
type Ball struct {
	X, Y   float64 // Center
	Radius float64
	Speed  float64 // Scalar used when bouncing off the paddle
	DX, DY float64 // Velocity per tick
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// Box returns the ball's bounding square.
func (b *Ball) Box() core.Box {
	return core.BoxAround(b.X, b.Y, b.Radius)
}

// Paddle represents the player's paddle. Y never changes during a game.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Step          float64
}

// Right returns the paddle's right edge.
func (p *Paddle) Right() float64 {
	return p.X + p.Width
}

// CenterX returns the paddle's horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Box returns the paddle rectangle.
func (p *Paddle) Box() core.Box {
	return core.BoxFromRect(p.X, p.Y, p.Width, p.Height)
}

// MoveRight advances one step if the right edge is still inside the canvas.
// The check happens before the move, so the paddle can touch the wall.
func (p *Paddle) MoveRight(canvasW float64) {
	if p.Right() < canvasW {
		p.X += p.Step
	}
	p.clamp(canvasW)
}

// MoveLeft advances one step left if the paddle is not already at the wall.
func (p *Paddle) MoveLeft(canvasW float64) {
	if p.X > 0 {
		p.X -= p.Step
	}
	p.clamp(canvasW)
}

// CenterOn places the paddle's center at x, clamped to the canvas.
func (p *Paddle) CenterOn(x, canvasW float64) {
	p.X = x - p.Width/2
	p.clamp(canvasW)
}

// clamp keeps the paddle inside [0, canvasW-width]. Only matters when the
// step does not divide the free space evenly.
func (p *Paddle) clamp(canvasW float64) {
	p.X = core.ClampF(p.X, 0, canvasW-p.Width)
}

// WallHit describes which walls the ball touched this tick.
type WallHit struct {
	Side   bool
	Top    bool
	Bottom bool
}

// CheckWalls reflects the ball off the side and top walls and reports
// whether it crossed the bottom edge. The ball is not pushed back inside,
// so a fast ball may register the same wall on consecutive ticks.
func CheckWalls(ball *Ball, canvasW, canvasH float64) WallHit {
	var hit WallHit

	if ball.X+ball.Radius > canvasW || ball.X-ball.Radius < 0 {
		ball.DX = -ball.DX
		hit.Side = true
	}

	if ball.Y-ball.Radius < 0 {
		ball.DY = -ball.DY
		hit.Top = true
	}

	if ball.Y+ball.Radius > canvasH {
		hit.Bottom = true
	}

	return hit
}

// TouchesPaddle reports whether the ball hits the paddle under the given rule.
//
// The loose rule only looks at the ball's center: strictly inside the
// paddle's horizontal span and below its top edge. The strict rule tests
// the circle against the paddle rectangle.
func TouchesPaddle(ball *Ball, paddle *Paddle, rule string) bool {
	if rule == config.PaddleHitStrict {
		nearestX := core.ClampF(ball.X, paddle.X, paddle.Right())
		nearestY := core.ClampF(ball.Y, paddle.Y, paddle.Y+paddle.Height)
		dx := ball.X - nearestX
		dy := ball.Y - nearestY
		return dx*dx+dy*dy < ball.Radius*ball.Radius
	}

	return ball.X > paddle.X && ball.X < paddle.Right() && ball.Y > paddle.Y
}

// Deflect sets a new velocity after a paddle hit.
// The hit offset from the paddle center maps linearly onto an angle in
// [-maxDeg, maxDeg] from vertical, then both axes get independent jitter.
// Speed grows by the configured factor afterwards.
func Deflect(ball *Ball, paddle *Paddle, cfg config.BreakoutBall, rng Rand) {
	collide := (ball.X - paddle.CenterX()) / (paddle.Width / 2)
	angle := collide * cfg.MaxDeflectionDeg * math.Pi / 180

	ball.DX = ball.Speed*math.Sin(angle) + symmetric(rng, cfg.Jitter)
	ball.DY = -ball.Speed*math.Cos(angle) + symmetric(rng, cfg.Jitter)
	ball.Speed *= cfg.SpeedGrowth
}

// BrickHit identifies a destroyed brick.
type BrickHit struct {
	Row, Col int
}

// CheckBricks destroys every alive brick overlapping the ball's bounding
// box, scanning row-major. Each hit flips the vertical velocity and adds
// jitter to both axes, so an even number of hits in one tick cancels the
// flip. Hits are returned in scan order.
func CheckBricks(ball *Ball, grid *Grid, cfg config.BreakoutBricks, jitter float64, rng Rand) []BrickHit {
	var hits []BrickHit
	ballBox := ball.Box()

	for r := range grid.Bricks {
		for c := range grid.Bricks[r] {
			brick := &grid.Bricks[r][c]
			if !brick.Alive || !ballBox.Overlaps(grid.Box(r, c)) {
				continue
			}

			brick.Alive = false
			brick.Color = cfg.DeadColor
			ball.DY = -ball.DY + symmetric(rng, jitter)
			ball.DX += symmetric(rng, jitter)
			hits = append(hits, BrickHit{Row: r, Col: c})
		}
	}

	return hits
}
