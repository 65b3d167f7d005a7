package crazytype

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/crazytype/internal/core"
	"github.com/vovakirdan/crazytype/internal/wordlist"
)

type fixedWords struct {
	words []string
	next  int
}

func (f *fixedWords) NextWord() string {
	w := f.words[f.next%len(f.words)]
	f.next++
	return w
}

func words(list ...string) *fixedWords {
	return &fixedWords{words: list}
}

type recorder struct {
	events []Event
}

func (r *recorder) Emit(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(t EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

type failingRecords struct{}

func (failingRecords) HighScore() (int, error)     { return 0, errors.New("disk gone") }
func (failingRecords) SetHighScore(int) error      { return errors.New("disk gone") }
func (failingRecords) LongestStreak() (int, error) { return 0, errors.New("disk gone") }
func (failingRecords) SetLongestStreak(int) error  { return errors.New("disk gone") }

// quietSettings disables random power-ups so scoring is predictable.
func quietSettings() Settings {
	s := DefaultSettings()
	s.PowerUpChance = 0
	return s
}

// dropSettings gives a tiny field with one fixed-speed tier and no
// second spawn, so miss timing is exact.
func dropSettings(lives int) Settings {
	s := quietSettings()
	s.Tiers = []Tier{{Name: "easy", MinSpeed: 100, MaxSpeed: 100, Weight: 1}}
	s.BaseSpawnIntervalMs = 1e9
	s.FieldHeight = 100
	s.BottomMargin = 0
	s.SpawnY = 0
	s.MaxLives = lives
	return s
}

func startedEngine(t *testing.T, s Settings, src WordSource, opts ...Option) *Engine {
	t.Helper()
	e := NewEngine(s, src, opts...)
	e.Start(ModeEndless, 0)
	e.Advance(0.01) // first spawn
	if got := len(e.Snapshot().Words); got != 1 {
		t.Fatalf("expected one word after first advance, got %d", got)
	}
	return e
}

func typeString(e *Engine, s string) {
	for _, r := range s {
		e.ProcessKeystroke(r)
	}
}

func TestStartResetsSession(t *testing.T) {
	e := NewEngine(quietSettings(), words("cat"))
	if e.Phase() != PhaseIdle {
		t.Fatalf("new engine phase = %s, want idle", e.Phase())
	}

	e.Start(ModeTimer, 60)
	e.Advance(0.01)
	typeString(e, "cx")
	e.Start(ModeTimer, 120)

	snap := e.Snapshot()
	if snap.Phase != PhaseRunning || !e.Running() {
		t.Errorf("phase = %s, want running", snap.Phase)
	}
	if snap.Score != 0 || snap.Streak != 0 || snap.Typed != 0 || snap.Correct != 0 {
		t.Errorf("counters not reset: %+v", snap)
	}
	if snap.Level != 1 || snap.Lives != 3 || len(snap.Words) != 0 {
		t.Errorf("level=%d lives=%d words=%d, want 1/3/0", snap.Level, snap.Lives, len(snap.Words))
	}
	if snap.TimeLeft != 120 {
		t.Errorf("TimeLeft = %v, want 120", snap.TimeLeft)
	}
}

func TestAdvanceNoOps(t *testing.T) {
	e := NewEngine(quietSettings(), words("cat"))
	e.Advance(1)
	if e.Snapshot().Elapsed != 0 {
		t.Error("Advance before Start should do nothing")
	}

	e.Start(ModeEndless, 0)
	e.Advance(-1)
	e.Advance(math.NaN())
	if e.Snapshot().Elapsed != 0 {
		t.Error("negative or NaN dt should be ignored")
	}

	e.Pause()
	e.Advance(0.1)
	if e.Snapshot().Elapsed != 0 {
		t.Error("Advance while paused should do nothing")
	}
}

func TestAdvanceClampsLargeDelta(t *testing.T) {
	e := NewEngine(quietSettings(), words("cat"))
	e.Start(ModeEndless, 0)
	e.Advance(10)
	if got := e.Snapshot().Elapsed; got != 0.25 {
		t.Errorf("Elapsed = %v, want clamp to 0.25", got)
	}
}

func TestFirstSpawnPlacement(t *testing.T) {
	s := quietSettings()
	e := startedEngine(t, s, words("cat"))

	w := e.Snapshot().Words[0]
	if w.ID != 1 || w.Text != "cat" || w.Progress != 0 {
		t.Errorf("unexpected word %+v", w)
	}
	if w.X < 10 || w.X > s.FieldWidth-80 {
		t.Errorf("X = %v outside [10, %v]", w.X, s.FieldWidth-80)
	}
	// Spawned at SpawnY then moved for 0.01s at 45..125 units/s.
	if w.Y < s.SpawnY+0.45-1e-9 || w.Y > s.SpawnY+1.25+1e-9 {
		t.Errorf("Y = %v, want within one step of spawn", w.Y)
	}
}

func TestCompletingCat(t *testing.T) {
	e := startedEngine(t, quietSettings(), words("cat"))

	if !e.ProcessKeystroke('c') || !e.ProcessKeystroke('A') || !e.ProcessKeystroke('t') {
		t.Fatal("expected every keystroke to hit")
	}

	snap := e.Snapshot()
	if snap.Streak != 5 {
		t.Errorf("streak = %d, want 5", snap.Streak)
	}
	if snap.Correct != 3 || snap.Typed != 3 {
		t.Errorf("correct/typed = %d/%d, want 3/3", snap.Correct, snap.Typed)
	}
	if len(snap.Words) != 0 {
		t.Errorf("completed word still active: %+v", snap.Words)
	}
	// 16 + 18 + 21 for the keystrokes, 25 completion bonus.
	if snap.Score != 80 {
		t.Errorf("score = %d, want 80", snap.Score)
	}
	if snap.LongestStreak != 5 {
		t.Errorf("longest streak = %d, want 5", snap.LongestStreak)
	}
}

func TestMissOnLastLifeEndsGameInSameAdvance(t *testing.T) {
	rec := &recorder{}
	e := startedEngine(t, dropSettings(1), words("dog"), WithEventSink(rec))

	for i := 0; i < 10; i++ {
		if e.Phase() != PhaseRunning {
			t.Fatalf("phase = %s before advance %d", e.Phase(), i)
		}
		y := e.Snapshot().Words[0].Y
		e.Advance(0.25)
		if y+25 > 100 {
			break
		}
	}

	if e.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, want game over", e.Phase())
	}
	snap := e.Snapshot()
	if snap.Lives != 0 || snap.Streak != 0 {
		t.Errorf("lives=%d streak=%d, want 0/0", snap.Lives, snap.Streak)
	}
	sum, ok := e.Summary()
	if !ok || sum.Reason != ReasonLives || sum.WordsMissed != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if rec.count(EventGameOver) != 1 {
		t.Errorf("gameover events = %d, want 1", rec.count(EventGameOver))
	}

	elapsed := snap.Elapsed
	e.Advance(0.1)
	if e.Snapshot().Elapsed != elapsed {
		t.Error("Advance after game over should do nothing")
	}
}

func TestMissCostsLifeAndStreak(t *testing.T) {
	e := startedEngine(t, dropSettings(3), words("dog"))
	typeString(e, "do")
	if e.Snapshot().Streak != 2 {
		t.Fatalf("streak = %d, want 2", e.Snapshot().Streak)
	}

	for range 5 {
		e.Advance(0.25)
	}

	snap := e.Snapshot()
	if snap.Lives != 2 || snap.Streak != 0 || len(snap.Words) != 0 {
		t.Errorf("lives=%d streak=%d words=%d, want 2/0/0", snap.Lives, snap.Streak, len(snap.Words))
	}
	if e.Phase() != PhaseRunning {
		t.Errorf("phase = %s, want running", e.Phase())
	}
}

func TestWrongKeyResetsStreak(t *testing.T) {
	e := startedEngine(t, quietSettings(), words("cat"))
	typeString(e, "ca")
	score := e.Snapshot().Score

	if e.ProcessKeystroke('z') {
		t.Fatal("z should not match")
	}
	snap := e.Snapshot()
	if snap.Streak != 0 {
		t.Errorf("streak = %d, want 0", snap.Streak)
	}
	if snap.Typed != 3 || snap.Correct != 2 {
		t.Errorf("typed/correct = %d/%d, want 3/2", snap.Typed, snap.Correct)
	}
	if snap.Score != score {
		t.Errorf("score changed on miss: %d -> %d", score, snap.Score)
	}
	if snap.Accuracy != 67 {
		t.Errorf("accuracy = %d, want 67", snap.Accuracy)
	}
	if snap.LongestStreak != 2 {
		t.Errorf("longest streak = %d, want 2", snap.LongestStreak)
	}
}

func TestNonLetterIgnored(t *testing.T) {
	e := startedEngine(t, quietSettings(), words("cat"))
	for _, r := range []rune{'1', ' ', '-', '\n'} {
		if e.ProcessKeystroke(r) {
			t.Errorf("%q should not match", r)
		}
	}
	if snap := e.Snapshot(); snap.Typed != 0 {
		t.Errorf("typed = %d, want 0", snap.Typed)
	}
}

func TestKeystrokeIgnoredWhenNotRunning(t *testing.T) {
	e := NewEngine(quietSettings(), words("cat"))
	if e.ProcessKeystroke('c') {
		t.Error("keystroke before Start should be ignored")
	}

	e = startedEngine(t, quietSettings(), words("cat"))
	e.Pause()
	e.ProcessKeystroke('c')
	if e.Snapshot().Typed != 0 {
		t.Error("keystroke while paused should be ignored")
	}
}

func TestOldestWordWinsTie(t *testing.T) {
	s := quietSettings()
	s.BaseSpawnIntervalMs = 100
	e := NewEngine(s, words("cat", "car"))
	e.Start(ModeEndless, 0)
	e.Advance(0.01)
	e.Advance(0.2)

	ws := e.Snapshot().Words
	if len(ws) != 2 {
		t.Fatalf("expected 2 words, got %d", len(ws))
	}

	e.ProcessKeystroke('c')
	ws = e.Snapshot().Words
	if ws[0].Text != "cat" || ws[0].Progress != 1 || ws[1].Progress != 0 {
		t.Errorf("expected oldest word to advance, got %+v", ws)
	}

	e.ProcessKeystroke('a')
	e.ProcessKeystroke('r')
	ws = e.Snapshot().Words
	if ws[0].Progress != 2 {
		t.Errorf("cat progress = %d, want 2", ws[0].Progress)
	}
	if ws[1].Progress != 0 || e.Snapshot().Streak != 0 {
		t.Errorf("r should miss since car is still at its first letter: %+v", ws)
	}
}

func TestDoubleScoring(t *testing.T) {
	e := startedEngine(t, quietSettings(), words("cat"))
	e.ActivatePowerUp(PowerUpDouble)
	e.ProcessKeystroke('c')

	// round(15 * 1.04 * 2)
	if got := e.Snapshot().Score; got != 31 {
		t.Errorf("score = %d, want 31", got)
	}
}

func TestPowerUpRefreshesInsteadOfStacking(t *testing.T) {
	e := startedEngine(t, quietSettings(), words("cat"))
	e.ActivatePowerUp(PowerUpDouble)
	for range 16 {
		e.Advance(0.25)
	}
	e.ActivatePowerUp(PowerUpDouble)

	ups := e.Snapshot().PowerUps
	if len(ups) != 1 || ups[0].Kind != PowerUpDouble || ups[0].Remaining != 10 {
		t.Errorf("power-ups = %+v, want one Double with 10s", ups)
	}
}

func TestPowerUpExpires(t *testing.T) {
	e := startedEngine(t, quietSettings(), words("cat"))
	e.ActivatePowerUp(PowerUpSlow)
	for range 27 {
		e.Advance(0.25)
	}
	if !e.PowerUpActive(PowerUpSlow) {
		t.Fatal("Slow should still be active after 6.75s")
	}
	for range 2 {
		e.Advance(0.25)
	}
	if e.PowerUpActive(PowerUpSlow) {
		t.Error("Slow should expire after 7s")
	}
	if len(e.Snapshot().PowerUps) != 0 {
		t.Error("expired power-up still listed")
	}
}

func TestSlowReducesFallSpeed(t *testing.T) {
	s := quietSettings()
	normal := NewEngine(s, words("cat"), WithSeed(3))
	slow := NewEngine(s, words("cat"), WithSeed(3))
	normal.Start(ModeEndless, 0)
	slow.Start(ModeEndless, 0)
	slow.ActivatePowerUp(PowerUpSlow)

	normal.Advance(0.1)
	slow.Advance(0.1)

	dn := normal.Snapshot().Words[0].Y - s.SpawnY
	ds := slow.Snapshot().Words[0].Y - s.SpawnY
	if math.Abs(ds-dn*s.SlowSpeedFactor) > 1e-9 {
		t.Errorf("slow moved %v, want %v", ds, dn*s.SlowSpeedFactor)
	}

	for range 16 {
		normal.Advance(0.1)
		slow.Advance(0.1)
	}
	// 1.7s in: normal spawned again at 1.5s, slow waits until 2.34s.
	if n, sl := len(normal.Snapshot().Words), len(slow.Snapshot().Words); n != 2 || sl != 1 {
		t.Errorf("words normal=%d slow=%d, want 2/1", n, sl)
	}
}

func TestClearRemovesWordsWithoutScoring(t *testing.T) {
	rec := &recorder{}
	e := startedEngine(t, quietSettings(), words("cat"), WithEventSink(rec))
	score := e.Snapshot().Score

	e.ActivatePowerUp(PowerUpClear)
	snap := e.Snapshot()
	if len(snap.Words) != 0 {
		t.Errorf("words after clear = %d", len(snap.Words))
	}
	if snap.Score != score || snap.Lives != 3 {
		t.Errorf("clear changed score or lives: %+v", snap)
	}
	if len(snap.PowerUps) != 0 {
		t.Error("clear should not be listed as a timed power-up")
	}
	if rec.count(EventPowerUp) != 1 {
		t.Errorf("powerup events = %d, want 1", rec.count(EventPowerUp))
	}
}

func TestLevelUp(t *testing.T) {
	s := quietSettings()
	s.LevelWordTarget = 3
	s.BaseSpawnIntervalMs = 100
	s.SpawnAcceleration = 0.5
	s.MinSpawnIntervalMs = 60
	rec := &recorder{}
	e := NewEngine(s, words("cat"), WithEventSink(rec))
	e.Start(ModeEndless, 0)

	for range 3 {
		e.Advance(0.2)
	}
	snap := e.Snapshot()
	if snap.Level != 2 {
		t.Errorf("level = %d, want 2", snap.Level)
	}
	if snap.SpawnInterval != 60 {
		t.Errorf("spawn interval = %v, want floor 60", snap.SpawnInterval)
	}
	if rec.count(EventLevelUp) != 1 {
		t.Errorf("levelup events = %d, want 1", rec.count(EventLevelUp))
	}

	for range 3 {
		e.Advance(0.2)
	}
	if got := e.Snapshot().Level; got != 3 {
		t.Errorf("level = %d, want 3", got)
	}
}

func TestLevelUpDisabled(t *testing.T) {
	s := quietSettings()
	s.LevelWordTarget = 0
	s.BaseSpawnIntervalMs = 100
	e := NewEngine(s, words("cat"))
	e.Start(ModeEndless, 0)
	for range 20 {
		e.Advance(0.2)
	}
	if got := e.Snapshot().Level; got != 1 {
		t.Errorf("level = %d, want 1", got)
	}
}

func TestTimerModeEnds(t *testing.T) {
	e := NewEngine(quietSettings(), words("cat"))
	e.Start(ModeTimer, 1)
	for range 3 {
		e.Advance(0.25)
	}
	if e.Phase() != PhaseRunning {
		t.Fatalf("phase = %s at 0.75s", e.Phase())
	}
	e.Advance(0.25)
	if e.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s at 1s, want game over", e.Phase())
	}
	sum, _ := e.Summary()
	if sum.Reason != ReasonTimer || sum.TimerLength != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Accuracy != 100 || sum.WPM != 0 {
		t.Errorf("accuracy/wpm = %d/%d, want 100/0", sum.Accuracy, sum.WPM)
	}
}

func TestEndlessIgnoresTimer(t *testing.T) {
	e := NewEngine(quietSettings(), words("cat"))
	e.Start(ModeEndless, 1)
	for range 8 {
		e.Advance(0.25)
	}
	if e.Phase() != PhaseRunning {
		t.Errorf("phase = %s, want running", e.Phase())
	}
}

func TestWPM(t *testing.T) {
	e := startedEngine(t, quietSettings(), words("cat"))
	typeString(e, "cat")
	// 3 correct in 0.01s: (3/5) / (0.01/60) = 3600
	if got := e.WPM(); got != 3600 {
		t.Errorf("WPM = %d, want 3600", got)
	}
}

func TestRecordsWrittenWhenBeaten(t *testing.T) {
	rec := &MemoryRecords{High: 50, Streak: 10}
	s := dropSettings(1)
	s.BaseSpawnIntervalMs = 500
	e := startedEngine(t, s, words("cat"), WithRecords(rec))
	typeString(e, "cat")
	endByMiss(t, e)

	sum, _ := e.Summary()
	if !sum.NewHighScore || rec.High != sum.Score {
		t.Errorf("high score not written: summary=%+v records=%+v", sum, rec)
	}
	if sum.NewBestStreak || rec.Streak != 10 {
		t.Errorf("streak record should be kept: summary=%+v records=%+v", sum, rec)
	}
	if sum.RecordsErr != nil {
		t.Errorf("unexpected RecordsErr: %v", sum.RecordsErr)
	}
}

func TestRecordsKeptWhenNotBeaten(t *testing.T) {
	rec := &MemoryRecords{High: 1000, Streak: 1}
	e := startedEngine(t, dropSettings(1), words("cat"), WithRecords(rec))
	typeString(e, "ca")
	endByMiss(t, e)

	sum, _ := e.Summary()
	if sum.NewHighScore || rec.High != 1000 || sum.HighScore != 1000 {
		t.Errorf("high score overwritten: summary=%+v records=%+v", sum, rec)
	}
	if !sum.NewBestStreak || rec.Streak != 2 {
		t.Errorf("streak record not written: summary=%+v records=%+v", sum, rec)
	}
}

func TestRecordsErrorReported(t *testing.T) {
	e := startedEngine(t, dropSettings(1), words("cat"), WithRecords(failingRecords{}))
	endByMiss(t, e)

	sum, ok := e.Summary()
	if !ok || sum.RecordsErr == nil {
		t.Error("expected RecordsErr to be set")
	}
	if e.Phase() != PhaseGameOver {
		t.Error("records failure must not block game over")
	}
}

// endByMiss drops the current word past the bottom of a dropSettings field.
func endByMiss(t *testing.T, e *Engine) {
	t.Helper()
	for range 10 {
		if e.Phase() == PhaseGameOver {
			return
		}
		e.Advance(0.25)
	}
	if e.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, want game over", e.Phase())
	}
}

func TestEventsEmitted(t *testing.T) {
	rec := &recorder{}
	e := NewEngine(quietSettings(), words("cat"), WithEventSink(rec))
	e.Start(ModeTimer, 1)
	for range 4 {
		e.Advance(0.25)
	}

	if len(rec.events) < 2 {
		t.Fatalf("events = %+v", rec.events)
	}
	if rec.events[0].Type != EventStart || rec.events[0].Mode != ModeTimer {
		t.Errorf("first event = %+v, want start", rec.events[0])
	}
	last := rec.events[len(rec.events)-1]
	if last.Type != EventGameOver || last.Summary == nil {
		t.Errorf("last event = %+v, want gameover with summary", last)
	}
	if p := last.Payload(); p["accuracy"] != 100 || p["reason"] != "timer" {
		t.Errorf("gameover payload = %v", p)
	}
}

func TestPauseTransitions(t *testing.T) {
	e := NewEngine(quietSettings(), words("cat"))
	if e.Pause() || e.Resume() {
		t.Error("pause/resume should fail while idle")
	}

	e.Start(ModeEndless, 0)
	if !e.TogglePause() || !e.Paused() || !e.Running() {
		t.Error("expected paused and still running")
	}
	if !e.TogglePause() || e.Paused() {
		t.Error("expected resumed")
	}
}

func TestHotseatSwitchesPlayers(t *testing.T) {
	s := quietSettings()
	s.Hotseat = true
	s.HotseatInterval = 1
	rec := &recorder{}
	e := startedEngine(t, s, words("cat"), WithEventSink(rec))

	if e.ActivePlayer() != core.Player1 {
		t.Fatalf("active = %d, want player 1", e.ActivePlayer())
	}
	e.ProcessKeystroke('z')

	for range 4 {
		e.Advance(0.25)
	}
	if e.ActivePlayer() != core.Player2 {
		t.Fatalf("active = %d, want player 2", e.ActivePlayer())
	}
	if rec.count(EventHotseatSwitch) != 1 {
		t.Errorf("hotseat_switch events = %d, want 1", rec.count(EventHotseatSwitch))
	}

	e.ProcessKeystroke('c')
	players := e.Snapshot().Players
	if len(players) != 2 {
		t.Fatalf("players = %+v", players)
	}
	if players[0].Typed != 1 || players[0].Correct != 0 {
		t.Errorf("player 1 tally = %+v", players[0])
	}
	if players[1].Typed != 1 || players[1].Correct != 1 || players[1].Score != 16 {
		t.Errorf("player 2 tally = %+v", players[1])
	}
}

func TestPickTier(t *testing.T) {
	tiers := DefaultSettings().Tiers
	rng := rand.New(rand.NewSource(1))
	counts := map[string]int{}
	for range 10000 {
		counts[pickTier(rng, tiers).Name]++
	}
	if !(counts["easy"] > counts["medium"] && counts["medium"] > counts["hard"]) {
		t.Errorf("tier distribution does not follow weights: %v", counts)
	}

	zero := []Tier{{Name: "first"}, {Name: "second"}}
	if got := pickTier(rng, zero).Name; got != "first" {
		t.Errorf("zero weights picked %q, want first", got)
	}
}

func TestInvariantsUnderRandomPlay(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		s := DefaultSettings()
		s.PowerUpChance = 0.3
		e := NewEngine(s, wordlist.NewSource(nil, seed), WithSeed(seed))
		e.Start(ModeEndless, 0)
		rng := rand.New(rand.NewSource(seed))

		prev := e.Snapshot()
		for i := 0; i < 20000 && e.Phase() != PhaseGameOver; i++ {
			if rng.Intn(2) == 0 {
				ch := rune('a' + rng.Intn(26))
				if !e.ProcessKeystroke(ch) && e.Snapshot().Streak != 0 {
					t.Fatalf("seed %d: streak not reset after wrong key", seed)
				}
			}
			e.Advance(rng.Float64() * 0.05)

			snap := e.Snapshot()
			if snap.Lives > prev.Lives || snap.Lives < 0 {
				t.Fatalf("seed %d: lives went %d -> %d", seed, prev.Lives, snap.Lives)
			}
			if snap.Score < prev.Score {
				t.Fatalf("seed %d: score went %d -> %d", seed, prev.Score, snap.Score)
			}
			if snap.Accuracy < 0 || snap.Accuracy > 100 {
				t.Fatalf("seed %d: accuracy %d out of range", seed, snap.Accuracy)
			}
			for _, w := range snap.Words {
				if w.Progress < 0 || w.Progress >= len([]rune(w.Text)) {
					t.Fatalf("seed %d: word %+v has invalid progress", seed, w)
				}
			}
			prev = snap
		}
	}
}
