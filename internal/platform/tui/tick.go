// Package tui provides the Bubble Tea integration for crazytype.
// It handles the terminal UI loop, input mapping, menus and SSH play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time between two ticks, zero for the first one.
// Long stalls are left to the engine's own clamp.
func frameDelta(prev, now time.Time) time.Duration {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return now.Sub(prev)
}
