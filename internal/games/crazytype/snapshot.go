package crazytype

import (
	"math"

	"github.com/vovakirdan/crazytype/internal/core"
)

// WordView is the read-only presentation of a falling word.
type WordView struct {
	ID       uint64
	Text     string
	Progress int
	X, Y     float64
	Tier     string
}

// Snapshot is a read-only view of the engine for presentation and
// determinism checks.
type Snapshot struct {
	Phase         Phase
	Mode          Mode
	Score         int
	Streak        int
	LongestStreak int
	HighScore     int
	Accuracy      int
	WPM           int
	Level         int
	Lives         int
	MaxLives      int
	Typed         int
	Correct       int
	Elapsed       float64
	TimeLeft      float64 // timer mode only
	SpawnInterval float64 // milliseconds
	PowerUps      []PowerUpStatus
	Words         []WordView
	Hotseat       bool
	ActivePlayer  core.PlayerID
	Players       []PlayerTally
}

// ActiveWordCount returns the number of words on the playfield.
func (s Snapshot) ActiveWordCount() int {
	return len(s.Words)
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	words := make([]WordView, len(e.active))
	for i, w := range e.active {
		words[i] = WordView{
			ID:       w.ID,
			Text:     w.Text,
			Progress: w.Progress,
			X:        w.X,
			Y:        w.Y,
			Tier:     w.Tier,
		}
	}

	snap := Snapshot{
		Phase:         e.phase,
		Mode:          e.mode,
		Score:         e.score,
		Streak:        e.streak,
		LongestStreak: e.bestStreak,
		HighScore:     max(e.highScore, e.score),
		Accuracy:      e.Accuracy(),
		WPM:           e.WPM(),
		Level:         e.level,
		Lives:         e.lives,
		MaxLives:      e.settings.MaxLives,
		Typed:         e.typed,
		Correct:       e.correct,
		Elapsed:       e.elapsed,
		SpawnInterval: e.spawnIntervalMs,
		PowerUps:      e.powerUps.statuses(),
		Words:         words,
		Hotseat:       e.hotseat.enabled,
		ActivePlayer:  e.hotseat.active,
		Players:       e.hotseat.snapshot(),
	}
	if e.mode == ModeTimer {
		snap.TimeLeft = math.Max(0, float64(e.timerLength)-e.elapsed)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	var h uint64
	mix := func(v uint64) { h = h*31 + v }

	mix(uint64(len(s.Phase)))
	for _, v := range []int{s.Score, s.Streak, s.Level, s.Lives, s.Typed, s.Correct, len(s.PowerUps)} {
		mix(uint64(v)) //#nosec G115 -- hash computation
	}
	mix(math.Float64bits(s.Elapsed))
	mix(math.Float64bits(s.SpawnInterval))

	for _, w := range s.Words {
		mix(w.ID)
		mix(uint64(w.Progress)) //#nosec G115 -- hash computation
		mix(math.Float64bits(w.X))
		mix(math.Float64bits(w.Y))
		for _, r := range w.Text {
			mix(uint64(r)) //#nosec G115 -- hash computation
		}
	}
	return h
}
