package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are dropped
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(0, 100) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 2)

	s.SetColored(1, 0, '█', ColorOrange)
	cell := s.GetCell(1, 0)
	if cell.Rune != '█' || cell.Color != ColorOrange {
		t.Errorf("GetCell(1, 0) = %+v, expected orange block", cell)
	}

	s.DrawTextColored(0, 1, "hi", ColorYellow)
	if s.GetCell(0, 1).Color != ColorYellow || s.GetCell(1, 1).Color != ColorYellow {
		t.Error("DrawTextColored should color every rune")
	}

	// Plain Set resets the color
	s.Set(1, 0, 'x')
	if s.GetCell(1, 0).Color != ColorDefault {
		t.Error("Set should write the default color")
	}

	s.Clear()
	if s.GetCell(0, 1) != blankCell {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 1)
	s.DrawTextCentered(0, "GAME OVER")

	if got := strings.TrimSpace(s.Row(0)); got != "GAME OVER" {
		t.Errorf("Row(0) = %q, expected GAME OVER", got)
	}
	if s.Get(5, 0) != 'G' {
		t.Errorf("Text should start at column 5, got %q", s.Get(5, 0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Errorf("Box corners wrong:\n%s", s.String())
	}
	if s.Get(2, 0) != '─' || s.Get(0, 1) != '│' {
		t.Errorf("Box edges wrong:\n%s", s.String())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawHLine(0, 0, 3, '=')
	s.Set(1, 1, 'o')

	expected := "===\n o "
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColored(2, 2, 'X', ColorRed)

	s.Resize(10, 10)
	if s.Width() != 10 || s.Height() != 10 {
		t.Fatalf("Resize failed: got %dx%d", s.Width(), s.Height())
	}
	if c := s.GetCell(2, 2); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("Resize should preserve content, got %+v", c)
	}

	s.Resize(2, 2)
	if s.Get(1, 1) != ' ' {
		t.Errorf("Shrunk screen should keep blank cell, got %q", s.Get(1, 1))
	}
}
