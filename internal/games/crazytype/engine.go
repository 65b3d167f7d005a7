// Package crazytype implements a falling-word typing game.
//
// Engine is the pure game core: it owns the session state, moves on Advance,
// reacts to ProcessKeystroke and publishes a read-only Snapshot. It never
// reads a clock or starts goroutines, so two engines built with the same
// settings, seed and word source behave identically.
package crazytype

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"unicode"

	"github.com/vovakirdan/crazytype/internal/core"
)

// Phase is the engine lifecycle state.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseRunning  Phase = "running"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
)

// GameOverReason says why a session ended.
type GameOverReason string

const (
	ReasonLives GameOverReason = "lives"
	ReasonTimer GameOverReason = "timer"
)

// Summary is the end-of-session report.
type Summary struct {
	Mode          Mode
	TimerLength   int
	Reason        GameOverReason
	Score         int
	Accuracy      int
	WPM           int
	LongestStreak int // best streak of this session
	Level         int
	Elapsed       float64
	Typed         int
	Correct       int
	WordsTyped    int
	WordsMissed   int
	HighScore     int
	NewHighScore  bool
	NewBestStreak bool
	Players       []PlayerTally // hot-seat tallies, nil when disabled
	RecordsErr    error         // failure reading or writing Records
}

// Option customises an Engine.
type Option func(*Engine)

// WithSeed seeds the engine's random source.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithRecords sets the personal-best store.
func WithRecords(r Records) Option {
	return func(e *Engine) { e.records = r }
}

// WithEventSink sets the event receiver.
func WithEventSink(s EventSink) Option {
	return func(e *Engine) {
		if s != nil {
			e.sink = s
		}
	}
}

// Engine is the falling-word game state machine. Not safe for concurrent use.
type Engine struct {
	settings Settings
	words    WordSource
	records  Records
	sink     EventSink
	seed     int64
	rng      *rand.Rand

	phase       Phase
	mode        Mode
	timerLength int
	reason      GameOverReason

	elapsed         float64
	nextSpawnAt     float64
	spawnIntervalMs float64
	level           int
	spawnedInLevel  int

	score         int
	lives         int
	streak        int
	sessionStreak int // best streak this session
	bestStreak    int // best streak ever, including stored record
	highScore     int
	typed         int
	correct       int
	wordsTyped    int
	wordsMissed   int

	active   []*FallingWord
	nextID   uint64
	powerUps powerUpTimers
	hotseat  hotseat
	summary  *Summary
}

// NewEngine creates an idle engine.
func NewEngine(settings Settings, words WordSource, opts ...Option) *Engine {
	e := &Engine{
		settings: settings,
		words:    words,
		sink:     nopSink{},
		phase:    PhaseIdle,
		level:    1,
		lives:    settings.MaxLives,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rng = rand.New(rand.NewSource(e.seed)) //#nosec G404 -- game randomness
	e.spawnIntervalMs = settings.BaseSpawnIntervalMs
	return e
}

// Settings returns the engine settings.
func (e *Engine) Settings() Settings { return e.settings }

// Phase returns the lifecycle state.
func (e *Engine) Phase() Phase { return e.phase }

// Running reports whether a session is in progress, paused or not.
func (e *Engine) Running() bool {
	return e.phase == PhaseRunning || e.phase == PhasePaused
}

// Paused reports whether the running session is paused.
func (e *Engine) Paused() bool { return e.phase == PhasePaused }

// Summary returns the last game-over summary.
func (e *Engine) Summary() (Summary, bool) {
	if e.summary == nil {
		return Summary{}, false
	}
	return *e.summary, true
}

// Start begins a new session, discarding any previous one.
// timerLength is only used in ModeTimer.
func (e *Engine) Start(mode Mode, timerLength int) {
	if mode != ModeEndless {
		mode = ModeTimer
	}
	e.mode = mode
	e.timerLength = timerLength
	e.reason = ""
	e.summary = nil

	e.elapsed = 0
	e.nextSpawnAt = 0
	e.spawnIntervalMs = e.settings.BaseSpawnIntervalMs
	e.level = 1
	e.spawnedInLevel = 0

	e.score = 0
	e.lives = e.settings.MaxLives
	e.streak = 0
	e.sessionStreak = 0
	e.typed = 0
	e.correct = 0
	e.wordsTyped = 0
	e.wordsMissed = 0

	e.active = e.active[:0]
	e.powerUps.reset()
	e.hotseat.reset(e.settings.Hotseat, e.settings.HotseatInterval)

	e.highScore, e.bestStreak = 0, 0
	if e.records != nil {
		if hs, err := e.records.HighScore(); err == nil {
			e.highScore = hs
		}
		if ls, err := e.records.LongestStreak(); err == nil {
			e.bestStreak = ls
		}
	}

	e.phase = PhaseRunning
	e.emit(Event{Type: EventStart})
}

// Pause freezes a running session. Returns false if nothing changed.
func (e *Engine) Pause() bool {
	if e.phase != PhaseRunning {
		return false
	}
	e.phase = PhasePaused
	return true
}

// Resume continues a paused session. Returns false if nothing changed.
func (e *Engine) Resume() bool {
	if e.phase != PhasePaused {
		return false
	}
	e.phase = PhaseRunning
	return true
}

// TogglePause flips between running and paused.
func (e *Engine) TogglePause() bool {
	if e.phase == PhasePaused {
		return e.Resume()
	}
	return e.Pause()
}

// Advance moves the session forward by dt seconds.
func (e *Engine) Advance(dt float64) {
	if e.phase != PhaseRunning || math.IsNaN(dt) || dt < 0 {
		return
	}
	if limit := e.settings.MaxFrameDelta; limit > 0 && dt > limit {
		dt = limit
	}

	e.elapsed += dt
	e.powerUps.tick(dt)

	for e.hotseat.due(e.elapsed) {
		e.emit(Event{Type: EventHotseatSwitch, Player: e.hotseat.active})
	}

	if e.elapsed >= e.nextSpawnAt {
		if e.spawnWord() {
			e.rollPowerUp()
			e.updateDifficulty()
		}
		e.nextSpawnAt = e.elapsed + e.spawnIntervalMs/1000*e.spawnFactor()
	}

	if e.moveWords(dt) {
		return
	}

	if e.mode == ModeTimer && e.elapsed >= float64(e.timerLength) {
		e.endGame(ReasonTimer)
	}
}

// moveWords advances every word and handles misses.
// Returns true if the session ended.
func (e *Engine) moveWords(dt float64) bool {
	factor := 1.0
	if e.powerUps.active(PowerUpSlow) {
		factor = e.settings.SlowSpeedFactor
	}
	bottom := e.settings.bottom()

	kept := e.active[:0]
	for i, w := range e.active {
		w.Y += w.Speed * factor * dt
		if w.Y <= bottom {
			kept = append(kept, w)
			continue
		}

		w.State = WordMissed
		e.wordsMissed++
		e.lives--
		e.streak = 0
		e.hotseat.missed()

		if e.lives <= 0 {
			e.lives = 0
			kept = append(kept, e.active[i+1:]...)
			e.active = kept
			e.endGame(ReasonLives)
			return true
		}
	}
	e.active = kept
	return false
}

// ProcessKeystroke applies one typed character and reports whether it
// advanced a word. Non-letters and keystrokes outside a running session
// are ignored.
func (e *Engine) ProcessKeystroke(ch rune) bool {
	if e.phase != PhaseRunning || !unicode.IsLetter(ch) {
		return false
	}
	ch = unicode.ToLower(ch)
	e.typed++

	var target *FallingWord
	for _, w := range e.active {
		if w.matches(ch) {
			target = w
			break
		}
	}

	if target == nil {
		e.streak = 0
		e.hotseat.keystroke(false, 0)
		return false
	}

	target.Progress++
	target.HitPoints--
	e.correct++
	e.bumpStreak(1)

	base := 10 + target.Progress*2 + e.level*3
	mult := 1 + math.Min(float64(e.streak)/25, 2.5)
	power := 1.0
	if e.powerUps.active(PowerUpDouble) {
		power = e.settings.DoubleMultiplier
	}
	points := int(math.Round(float64(base) * mult * power))
	e.score += points
	e.hotseat.keystroke(true, points)

	if target.done() {
		e.completeWord(target)
	}
	return true
}

func (e *Engine) completeWord(w *FallingWord) {
	w.State = WordCompleted
	e.removeWord(w)
	e.wordsTyped++

	bonus := 20 + e.level*5
	e.score += bonus
	e.hotseat.completed(bonus)
	e.bumpStreak(2)
	e.rollPowerUp()
}

func (e *Engine) removeWord(target *FallingWord) {
	for i, w := range e.active {
		if w == target {
			e.active = append(e.active[:i], e.active[i+1:]...)
			return
		}
	}
}

func (e *Engine) bumpStreak(n int) {
	e.streak += n
	if e.streak > e.sessionStreak {
		e.sessionStreak = e.streak
	}
	if e.streak > e.bestStreak {
		e.bestStreak = e.streak
	}
}

// spawnWord adds a word at the top of the field. Returns false when the
// source had nothing to give.
func (e *Engine) spawnWord() bool {
	text := ""
	if e.words != nil {
		text = e.words.NextWord()
	}
	if text == "" {
		return false
	}

	tier := pickTier(e.rng, e.settings.Tiers)
	speed := float64(randInt(e.rng, tier.MinSpeed, tier.MaxSpeed))
	x := float64(randInt(e.rng, 10, int(e.settings.FieldWidth)-80))

	e.nextID++
	e.active = append(e.active, newFallingWord(e.nextID, text, tier, speed, x, e.settings.SpawnY))
	return true
}

func (e *Engine) updateDifficulty() {
	target := e.settings.LevelWordTarget
	if target <= 0 {
		return
	}
	e.spawnedInLevel++
	if e.spawnedInLevel < target {
		return
	}

	e.spawnedInLevel = 0
	e.level++
	e.spawnIntervalMs = math.Max(e.settings.MinSpawnIntervalMs, e.spawnIntervalMs*e.settings.SpawnAcceleration)
	e.emit(Event{Type: EventLevelUp})
}

func (e *Engine) spawnFactor() float64 {
	if e.powerUps.active(PowerUpSlow) {
		return e.settings.SlowSpawnFactor
	}
	return 1
}

func (e *Engine) rollPowerUp() {
	if e.rng.Float64() >= e.settings.PowerUpChance {
		return
	}
	e.ActivatePowerUp(PowerUpKind(e.rng.Intn(int(powerUpKindCount))))
}

// ActivatePowerUp applies a power-up immediately. Timed power-ups that are
// already active get their countdown refreshed.
func (e *Engine) ActivatePowerUp(kind PowerUpKind) {
	if !e.Running() {
		return
	}
	switch kind {
	case PowerUpDouble:
		e.powerUps.activate(kind, e.settings.DoubleDuration)
	case PowerUpSlow:
		e.powerUps.activate(kind, e.settings.SlowDuration)
	case PowerUpClear:
		for _, w := range e.active {
			w.State = WordCleared
		}
		e.active = e.active[:0]
	default:
		return
	}
	e.emit(Event{Type: EventPowerUp, PowerUp: kind})
}

// PowerUpActive reports whether a timed power-up is currently active.
func (e *Engine) PowerUpActive(kind PowerUpKind) bool {
	return e.powerUps.active(kind)
}

// Accuracy is the percentage of keystrokes that matched, 100 before any.
func (e *Engine) Accuracy() int {
	if e.typed == 0 {
		return 100
	}
	return int(math.Round(float64(e.correct) / float64(e.typed) * 100))
}

// WPM is words per minute with a word counted as five correct keystrokes.
func (e *Engine) WPM() int {
	minutes := math.Max(e.elapsed, 0.001) / 60
	return int(math.Round(float64(e.correct) / 5 / minutes))
}

func (e *Engine) endGame(reason GameOverReason) {
	e.phase = PhaseGameOver
	e.reason = reason

	s := Summary{
		Mode:          e.mode,
		TimerLength:   e.timerLength,
		Reason:        reason,
		Score:         e.score,
		Accuracy:      e.Accuracy(),
		WPM:           e.WPM(),
		LongestStreak: e.sessionStreak,
		Level:         e.level,
		Elapsed:       e.elapsed,
		Typed:         e.typed,
		Correct:       e.correct,
		WordsTyped:    e.wordsTyped,
		WordsMissed:   e.wordsMissed,
		HighScore:     e.highScore,
		Players:       e.hotseat.snapshot(),
	}
	if e.mode != ModeTimer {
		s.TimerLength = 0
	}

	e.saveRecords(&s)
	e.summary = &s
	e.emit(Event{Type: EventGameOver, Summary: &s})
}

// saveRecords compares the session against stored bests and writes any
// that were beaten.
func (e *Engine) saveRecords(s *Summary) {
	if e.records == nil {
		if s.Score > e.highScore {
			e.highScore = s.Score
			s.HighScore = s.Score
			s.NewHighScore = true
		}
		return
	}

	var errs []error

	stored, err := e.records.HighScore()
	if err != nil {
		errs = append(errs, fmt.Errorf("read high score: %w", err))
	} else if s.Score > stored {
		if err := e.records.SetHighScore(s.Score); err != nil {
			errs = append(errs, fmt.Errorf("write high score: %w", err))
		}
		s.NewHighScore = true
		stored = s.Score
	}
	if stored > e.highScore {
		e.highScore = stored
	}
	s.HighScore = e.highScore

	storedStreak, err := e.records.LongestStreak()
	if err != nil {
		errs = append(errs, fmt.Errorf("read longest streak: %w", err))
	} else if s.LongestStreak > storedStreak {
		if err := e.records.SetLongestStreak(s.LongestStreak); err != nil {
			errs = append(errs, fmt.Errorf("write longest streak: %w", err))
		}
		s.NewBestStreak = true
	}

	s.RecordsErr = errors.Join(errs...)
}

func (e *Engine) emit(ev Event) {
	ev.Mode = e.mode
	ev.Elapsed = e.elapsed
	ev.Level = e.level
	ev.Score = e.score
	e.sink.Emit(ev)
}

// ActivePlayer returns the hot-seat player currently typing.
func (e *Engine) ActivePlayer() core.PlayerID {
	return e.hotseat.active
}
