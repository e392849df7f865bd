package breakout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar  = '▀'
	BallChar    = '●'
	BrickChar   = '█'
	BorderHoriz = '─'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 2

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the simulation to the game platform.
// It owns the state and the random source and projects canvas
// coordinates onto terminal cells.
type Game struct {
	state  State
	rng    *SimpleRNG
	paused bool

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig
	fixed   bool // cfg was supplied by the caller, skip loading

	// Layout (computed from screen size)
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Breakout game instance.
// The configuration is loaded on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	return &Game{cfg: cfg, fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixed {
		cfg, err := config.LoadBreakout(configPath)
		if err != nil {
			cfg = config.DefaultBreakoutConfig()
		}
		g.cfg = cfg
	}

	g.minScreenW = 30
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = NewSimpleRNG(seed)
	g.state = NewState(g.cfg, g.rng)
	g.paused = false
}

// Resize updates the screen projection without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state.Progress.Over {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.state.Progress.Over {
		g.paused = !g.paused
	}

	if g.paused || g.state.Progress.Over {
		return core.StepResult{State: g.State()}
	}

	events := g.state.Advance(IntentFromInput(in, g.canvasX), g.rng)
	return core.StepResult{State: g.State(), Events: events}
}

// IntentFromInput converts platform input to a simulation intent.
// A pointer, when present, wins over direction keys; toCanvas maps a
// screen column to a canvas x.
func IntentFromInput(in core.InputFrame, toCanvas func(col int) float64) Intent {
	if x, _, ok := in.Pointer(); ok && toCanvas != nil {
		return PointAt(toCanvas(x))
	}
	return IntentFromKeys(in.Has(core.ActionLeft), in.Has(core.ActionRight))
}

// SimState returns a copy of the simulation state.
func (g *Game) SimState() State {
	return g.state.Clone()
}

// Snapshot returns the current read-only view for renderers.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}

// fieldH returns the number of screen rows used by the playfield.
func (g *Game) fieldH() int {
	return g.runtime.ScreenH - hudRows
}

// cellX projects a canvas x onto a screen column.
func (g *Game) cellX(x float64) int {
	return int(x * float64(g.runtime.ScreenW) / g.cfg.Canvas.Width)
}

// cellY projects a canvas y onto a screen row.
func (g *Game) cellY(y float64) int {
	return hudRows + int(y*float64(g.fieldH())/g.cfg.Canvas.Height)
}

// canvasX maps the center of a screen column back to canvas x.
func (g *Game) canvasX(col int) float64 {
	return (float64(col) + 0.5) * g.cfg.Canvas.Width / float64(g.runtime.ScreenW)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	p := g.state.Progress

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", p.Score), core.ColorYellow)
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", p.Lives))

	level := core.Min(p.Level, g.cfg.Gameplay.MaxLevel)
	levelText := fmt.Sprintf("Level: %d/%d", level, g.cfg.Gameplay.MaxLevel)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
}

// renderBricks draws all alive bricks. Every brick covers at least one cell.
func (g *Game) renderBricks(dst *core.Screen) {
	grid := &g.state.Grid
	for _, row := range grid.Bricks {
		for _, b := range row {
			if !b.Alive {
				continue
			}

			x0, x1 := g.cellX(b.X), g.cellX(b.X+grid.Width)
			y0, y1 := g.cellY(b.Y), g.cellY(b.Y+grid.Height)
			if y1 <= y0 {
				y1 = y0 + 1
			}
			// Leave a gap between neighbours
			if x1-x0 > 1 {
				x1--
			}

			color := core.ColorFromHex(b.Color)
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					dst.SetColored(x, y, BrickChar, color)
				}
			}
		}
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	p := &g.state.Paddle
	y := g.cellY(p.Y)
	for x := g.cellX(p.X); x < g.cellX(p.Right()); x++ {
		dst.SetColored(x, y, PaddleChar, core.ColorBrightYellow)
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen) {
	b := &g.state.Ball
	dst.SetColored(g.cellX(b.X), g.cellY(b.Y), BallChar, core.ColorBrightWhite)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	p := g.state.Progress
	switch {
	case p.Outcome == core.OutcomeLoss:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", p.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case p.Outcome == core.OutcomeWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", p.Score)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)

	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
// The level is capped at the last one, so a won game reports MaxLevel.
func (g *Game) State() core.GameState {
	st := g.state.GameState()
	st.Paused = g.paused
	if last := g.cfg.Gameplay.MaxLevel; last > 0 && st.Level > last {
		st.Level = last
	}
	return st
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
