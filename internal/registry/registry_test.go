package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type stubGame struct{ id, title string }

func (g stubGame) ID() string                          { return g.id }
func (g stubGame) Title() string                       { return g.title }
func (g stubGame) Reset(core.RuntimeConfig)            {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                 {}
func (g stubGame) State() core.GameState               { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zz-stub", func() Game { return stubGame{"zz-stub", "Stub Z"} })
	Register("aa-stub", func() Game { return stubGame{"aa-stub", "Stub A"} })

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Fatalf("List() not sorted: %v", games)
		}
	}

	var found bool
	for _, g := range games {
		if g.ID == "aa-stub" {
			found = g.Title == "Stub A"
		}
	}
	if !found {
		t.Errorf("List() = %v, expected aa-stub with its title", games)
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub Z" {
		t.Errorf("Title() = %q, expected Stub Z", g.Title())
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return stubGame{"dup-stub", "Dup"} })

	defer func() {
		if recover() == nil {
			t.Error("second Register() with the same id should panic")
		}
	}()
	Register("dup-stub", func() Game { return stubGame{"dup-stub", "Dup"} })
}
