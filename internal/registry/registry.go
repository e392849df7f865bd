// Package registry maps game IDs to factories. Games add themselves from
// init, so the terminal front end and the CLI never import a game package
// directly.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// DefaultID is the game started when no ID is given.
const DefaultID = "breakout"

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// Game is what the front end drives. Implementations are pure simulation:
// no terminal, no clock, no I/O.
type Game interface {
	// ID is the stable key used by the CLI and the score store.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new game for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions held during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry // sorted by ID
)

// Register adds a game. It panics on a duplicate ID, since that can only
// be a wiring mistake between init functions.
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: empty id or nil factory")
	}

	mu.Lock()
	defer mu.Unlock()

	i, found := slices.BinarySearchFunc(entries, id, func(e entry, id string) int {
		return strings.Compare(e.info.ID, id)
	})
	if found {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	info := GameInfo{ID: id, Title: f().Title()}
	entries = slices.Insert(entries, i, entry{info: info, factory: f})
}

// List returns every registered game, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, len(entries))
	for i, e := range entries {
		out[i] = e.info
	}
	return out
}

func lookup(id string) (entry, bool) {
	mu.RLock()
	defer mu.RUnlock()

	i, found := slices.BinarySearchFunc(entries, id, func(e entry, id string) int {
		return strings.Compare(e.info.ID, id)
	})
	if !found {
		return entry{}, false
	}
	return entries[i], true
}

// Create builds a new instance of the game. An empty id means DefaultID.
func Create(id string) (Game, error) {
	if id == "" {
		id = DefaultID
	}
	e, ok := lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}
