// Package core provides fundamental types and utilities for the game platform.
// It contains no Bubble Tea dependency to keep game logic pure and testable.
package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Color represents a foreground color for a screen cell.
type Color uint8

// Colors used by games and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorGray
	ColorBrightWhite
	ColorOrange
)

// Cell is one character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a 2D cell buffer for rendering game graphics.
// Games draw into it; the platform turns it into styled terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	old := s.cells
	oldW, oldH := s.width, s.height

	s.width = max(width, 0)
	s.height = max(height, 0)
	s.allocate()
	s.Clear()

	for y := 0; y < min(oldH, s.height); y++ {
		copy(s.cells[y], old[y][:min(oldW, s.width)])
	}
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places a rune at the given position with the default color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a rune with a color. Out-of-bounds coordinates are ignored.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position, or space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, or a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y). Text is clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes colored text starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	col := x
	for _, r := range text {
		s.SetColored(col, y, r, c)
		col += max(runewidth.RuneWidth(r), 1)
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextCenteredColored(y, text, ColorDefault)
}

// DrawTextCenteredColored draws colored text centered on row y.
func (s *Screen) DrawTextCenteredColored(y int, text string, c Color) {
	x := (s.width - runewidth.StringWidth(text)) / 2
	s.DrawTextColored(x, y, text, c)
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r)
	}
}

// DrawBox draws a box outline and blanks its interior.
func (s *Screen) DrawBox(x, y, w, h int) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			top, bottom := row == y, row == y+h-1
			left, right := col == x, col == x+w-1
			switch {
			case (top || bottom) && (left || right):
				s.Set(col, row, '+')
			case top || bottom:
				s.Set(col, row, '-')
			case left || right:
				s.Set(col, row, '|')
			default:
				s.Set(col, row, ' ')
			}
		}
	}
}

// String converts the screen buffer to plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
