package tui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crazytype/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// GameKey is the result of mapping one key press during play.
type GameKey struct {
	Action core.Action // ActionNone if the key is not a command
	Rune   rune        // typed letter, 0 if none
	Quit   bool
}

// MapGameKey maps a key press given the current game state. While a
// session is running every letter is typing input, so commands use
// control keys there. Before the first start and after game over the
// single-letter shortcuts (r, e, b, q) apply instead.
func (km *KeyMapper) MapGameKey(msg tea.KeyMsg, st core.GameState) GameKey {
	playing := st.Started && !st.GameOver && !st.Paused

	switch msg.String() {
	case "ctrl+c":
		return GameKey{Action: core.ActionQuit, Quit: true}
	case "esc", "ctrl+p":
		if st.GameOver || !st.Started {
			return GameKey{Action: core.ActionBack}
		}
		return GameKey{Action: core.ActionPause}
	case "enter", " ":
		return GameKey{Action: core.ActionConfirm}
	case "ctrl+r":
		return GameKey{Action: core.ActionRestart}
	case "ctrl+e":
		return GameKey{Action: core.ActionExport}
	case "ctrl+d", "f3":
		return GameKey{Action: core.ActionDebug}
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return GameKey{}
	}
	r := msg.Runes[0]

	if playing {
		if unicode.IsLetter(r) {
			return GameKey{Rune: r}
		}
		return GameKey{}
	}
	if st.Paused {
		return GameKey{}
	}

	switch unicode.ToLower(r) {
	case 'q':
		return GameKey{Action: core.ActionQuit, Quit: true}
	case 'b':
		return GameKey{Action: core.ActionBack}
	case 'r':
		if st.GameOver {
			return GameKey{Action: core.ActionRestart}
		}
	case 'e':
		if st.GameOver {
			return GameKey{Action: core.ActionExport}
		}
	}
	return GameKey{}
}

// ApplyGameKey maps msg into frame and reports whether it was a quit
// request and the resolved action.
func (km *KeyMapper) ApplyGameKey(msg tea.KeyMsg, st core.GameState, frame *core.InputFrame) GameKey {
	k := km.MapGameKey(msg, st)
	if k.Rune != 0 {
		frame.Type(k.Rune)
	}
	if k.Action != core.ActionNone {
		frame.Set(k.Action)
	}
	return k
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
