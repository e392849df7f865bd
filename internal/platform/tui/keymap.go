package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "h", "left":
		return core.ActionLeft, false
	case "d", "l", "right":
		return core.ActionRight, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// DefaultLatchTicks is how long one key press keeps the paddle moving.
// Terminals report presses and auto-repeats, never releases, so a held key
// looks like a burst of presses separated by the repeat interval.
const DefaultLatchTicks = 8

// DirectionLatch turns discrete key presses into a held direction.
// Each press re-arms the latch; the opposite direction replaces it at once.
type DirectionLatch struct {
	action core.Action
	left   int
	hold   int
}

// NewDirectionLatch creates a latch that holds each press for the given ticks.
func NewDirectionLatch(hold int) DirectionLatch {
	if hold <= 0 {
		hold = DefaultLatchTicks
	}
	return DirectionLatch{hold: hold}
}

// Press arms the latch for a direction action. Other actions are ignored.
func (l *DirectionLatch) Press(a core.Action) {
	if a != core.ActionLeft && a != core.ActionRight {
		return
	}
	l.action = a
	l.left = l.hold
}

// Release drops any held direction.
func (l *DirectionLatch) Release() {
	l.action = core.ActionNone
	l.left = 0
}

// Apply sets the held direction on the frame and counts one tick down.
func (l *DirectionLatch) Apply(frame *core.InputFrame) {
	if l.left <= 0 {
		return
	}
	frame.Set(l.action)
	l.left--
	if l.left == 0 {
		l.action = core.ActionNone
	}
}

// Held returns the direction currently latched.
func (l *DirectionLatch) Held() core.Action {
	if l.left <= 0 {
		return core.ActionNone
	}
	return l.action
}
