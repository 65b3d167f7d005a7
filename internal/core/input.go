package core

import (
	"time"
	"unicode"
)

// Action represents a semantic game action, abstracted from physical key presses.
// Typed letters are not actions; they travel in InputFrame.Keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow - menu navigation
	ActionDown           // Down arrow - menu navigation
	ActionConfirm        // Enter - confirm selection / start session
	ActionBack           // Escape on game over - back to menu
	ActionRestart        // Restart after game over
	ActionQuit           // Ctrl+C - exit game/session
	ActionPause          // Escape / Ctrl+P - pause/unpause game
	ActionExport         // Export the last game-over summary
	ActionDebug          // Toggle debug overlay
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionExport:
		return "Export"
	case ActionDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// PlayerID identifies a seat at the keyboard in hot-seat play.
type PlayerID int

const (
	Player1 PlayerID = iota + 1
	Player2
)

// Other returns the opposite seat.
func (p PlayerID) Other() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Keys holds typed letters in arrival order.
	Keys []rune

	// Delta is the wall-clock time since the previous frame.
	// Zero means the game should assume one nominal tick.
	Delta time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Type appends a typed character. Anything that is not a letter is dropped.
func (f *InputFrame) Type(r rune) {
	if !unicode.IsLetter(r) {
		return
	}
	f.Keys = append(f.Keys, r)
}

// Clear resets all actions and keys for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Keys = f.Keys[:0]
	f.Delta = 0
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
