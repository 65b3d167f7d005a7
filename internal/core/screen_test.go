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
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if s.GetCell(5, 5).Color != ColorRed {
		t.Errorf("GetCell(5, 5).Color = %d, expected red", s.GetCell(5, 5).Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, got row %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.Set(3, 2, 'Z')
	s.DrawBox(1, 1, 6, 4)

	if s.Get(1, 1) != '+' || s.Get(6, 4) != '+' {
		t.Error("DrawBox corners missing")
	}
	if s.Get(3, 1) != '-' || s.Get(1, 2) != '|' {
		t.Error("DrawBox edges missing")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("DrawBox should blank its interior")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(2, 2, 'X')
	s.Set(4, 4, 'Y')

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize dimensions = %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve content inside the new bounds")
	}

	s.Resize(6, 6)
	if s.Get(4, 4) != ' ' {
		t.Error("Content cut by shrinking should not come back")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "abc" || lines[1] != "de " {
		t.Errorf("String() = %q", s.String())
	}
}
