package crazytype

import "github.com/vovakirdan/crazytype/internal/core"

// PlayerTally is one hot-seat player's share of the session.
type PlayerTally struct {
	Player        core.PlayerID
	Score         int
	Typed         int
	Correct       int
	Streak        int
	LongestStreak int
	Words         int
}

// hotseat alternates the active player on a fixed elapsed-time interval.
type hotseat struct {
	enabled  bool
	interval float64
	active   core.PlayerID
	nextAt   float64
	tallies  [2]PlayerTally
}

func (h *hotseat) reset(enabled bool, interval float64) {
	h.enabled = enabled && interval > 0
	h.interval = interval
	h.active = core.Player1
	h.nextAt = interval
	h.tallies = [2]PlayerTally{{Player: core.Player1}, {Player: core.Player2}}
}

func (h *hotseat) current() *PlayerTally {
	if h.active == core.Player2 {
		return &h.tallies[1]
	}
	return &h.tallies[0]
}

// due reports whether the active player should switch at the given time,
// and switches if so. Call repeatedly until it returns false.
func (h *hotseat) due(elapsed float64) bool {
	if !h.enabled || elapsed < h.nextAt {
		return false
	}
	h.active = h.active.Other()
	h.nextAt += h.interval
	return true
}

func (h *hotseat) keystroke(hit bool, points int) {
	if !h.enabled {
		return
	}
	t := h.current()
	t.Typed++
	if !hit {
		t.Streak = 0
		return
	}
	t.Correct++
	t.Score += points
	t.Streak++
	if t.Streak > t.LongestStreak {
		t.LongestStreak = t.Streak
	}
}

func (h *hotseat) completed(points int) {
	if !h.enabled {
		return
	}
	t := h.current()
	t.Words++
	t.Score += points
}

func (h *hotseat) missed() {
	if h.enabled {
		h.current().Streak = 0
	}
}

func (h *hotseat) snapshot() []PlayerTally {
	if !h.enabled {
		return nil
	}
	out := make([]PlayerTally, len(h.tallies))
	copy(out, h.tallies[:])
	return out
}
