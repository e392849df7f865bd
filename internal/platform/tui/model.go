// Package tui runs games in the terminal with Bubble Tea: the fixed-rate
// tick loop, input mapping, the menu and scoreboard, and the SSH server.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/spectate"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Publisher receives one spectator frame per simulated tick.
type Publisher interface {
	Publish(v any) error
}

// snapshotter is implemented by games that expose a renderer-neutral view.
type snapshotter interface {
	Snapshot() breakout.Snapshot
}

// resizer is implemented by games that can change their projection
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// Options are the optional collaborators of a Model.
type Options struct {
	Sounds     audio.Player // Receives step events; nil plays nothing
	Spectators Publisher    // Receives snapshots; nil disables spectating
	Player     string       // Name stored with results
	LatchTicks int          // Ticks a key press is held; 0 uses DefaultLatchTicks
	Logger     *log.Logger  // nil disables logging
	InSession  bool         // Back from a paused or finished game returns to the menu

	// Renderer styles the game screen; nil uses the local terminal.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	render     *ScreenRenderer
	keys       *KeyMapper
	latch      DirectionLatch
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the result has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sounds == nil {
		opts.Sounds = audio.Nop{}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		render:     NewScreenRenderer(opts.Renderer),
		keys:       NewKeyMapper(),
		latch:      NewDirectionLatch(opts.LatchTicks),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.latch.Press(action)
	case core.ActionBack:
		// Back leaves a paused or finished game; otherwise it pauses
		if m.opts.InSession && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			return m, nil
		}
		if !m.gameState.GameOver {
			m.inputFrame.Set(core.ActionPause)
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse turns pointer movement into an absolute paddle target.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion, tea.MouseActionPress:
		m.inputFrame.SetPointer(msg.X, msg.Y)
		m.latch.Release()
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that only project the simulation keep their state
	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.latch.Release()
		m.inputFrame.Clear()
		m.publish(nil)
		return m, tickCmd(m.config.TickRate)
	}

	m.latch.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if len(result.Events) > 0 {
		m.opts.Sounds.Play(result.Events)
	}
	if !result.State.Paused {
		m.publish(result.Events)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// publish sends the current snapshot to spectators, if any.
func (m *Model) publish(events []core.Event) {
	if m.opts.Spectators == nil {
		return
	}
	s, ok := m.game.(snapshotter)
	if !ok {
		return
	}
	if err := m.opts.Spectators.Publish(spectate.NewFrame(s.Snapshot(), events)); err != nil && m.opts.Logger != nil {
		m.opts.Logger.Debug("Spectator publish failed", "err", err)
	}
}

// saveResult records the finished game. Empty games are not recorded.
func (m *Model) saveResult() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	res := storage.Result{
		GameID:  m.game.ID(),
		Player:  m.opts.Player,
		Score:   m.gameState.Score,
		Level:   m.gameState.Level,
		Outcome: m.gameState.Outcome.String(),
	}
	if s, ok := m.game.(snapshotter); ok {
		res.Frames = s.Snapshot().Frame
	}

	if _, err := m.store.SaveResult(res); err != nil {
		if m.opts.Logger != nil {
			m.opts.Logger.Warn("Failed to save score", "err", err)
		}
		return
	}
	if m.opts.Logger != nil {
		m.opts.Logger.Info("Game finished", "player", res.Player, "score", res.Score,
			"level", res.Level, "outcome", res.Outcome)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// GameState returns the state observed on the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.render.Render(m.screen)
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Mouse hover steers the paddle
	)

	_, err := p.Run()
	return err
}
