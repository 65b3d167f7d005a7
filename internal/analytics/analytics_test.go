package analytics

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crazytype/internal/games/crazytype"
	"github.com/vovakirdan/crazytype/internal/storage"
)

type countingSink struct {
	n int
}

func (c *countingSink) Emit(crazytype.Event) { c.n++ }

func TestMultiForwards(t *testing.T) {
	a, b := &countingSink{}, &countingSink{}
	m := Multi{a, nil, b}
	m.Emit(crazytype.Event{Type: crazytype.EventStart})
	m.Emit(crazytype.Event{Type: crazytype.EventLevelUp})

	if a.n != 2 || b.n != 2 {
		t.Errorf("counts = %d/%d, want 2/2", a.n, b.n)
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	sink := NewLogSink(logger, "crazytype")

	sink.Emit(crazytype.Event{Type: crazytype.EventLevelUp, Level: 4})
	sink.Emit(crazytype.Event{
		Type:    crazytype.EventGameOver,
		Summary: &crazytype.Summary{Accuracy: 91, WPM: 50, Reason: crazytype.ReasonTimer},
	})

	out := buf.String()
	for _, want := range []string{"event=levelup", "level=4", "event=gameover", "wpm=50", "game=crazytype"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestStoreSinkRecordsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	sink := NewStoreSink(store, "crazytype", log.New(&buf))

	sink.Emit(crazytype.Event{Type: crazytype.EventStart, Mode: crazytype.ModeTimer})
	runID := sink.RunID()
	if runID == "" {
		t.Fatal("start should open a run")
	}
	sink.Emit(crazytype.Event{Type: crazytype.EventPowerUp, PowerUp: crazytype.PowerUpSlow})
	sink.Emit(crazytype.Event{
		Type: crazytype.EventGameOver,
		Summary: &crazytype.Summary{
			Mode: crazytype.ModeTimer, TimerLength: 60, Score: 640, Accuracy: 96,
			WPM: 44, LongestStreak: 21, Level: 3, Reason: crazytype.ReasonTimer,
		},
	})

	events, err := store.EventsForRun(runID)
	if err != nil {
		t.Fatalf("EventsForRun() failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %+v", events)
	}
	if events[1].Payload["powerup"] != "SLOW" {
		t.Errorf("powerup payload = %v", events[1].Payload)
	}

	runs, err := store.TopRuns("crazytype", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != runID || runs[0].Score != 640 || runs[0].TimerSecs != 60 {
		t.Errorf("runs = %+v", runs)
	}

	sink.Emit(crazytype.Event{Type: crazytype.EventStart})
	if sink.RunID() == runID {
		t.Error("a new start should open a new run")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected warnings: %s", buf.String())
	}
}

func TestStoreSinkWithEngine(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	sink := NewStoreSink(store, crazytype.IDTimer, nil)
	s := crazytype.DefaultSettings()
	e := crazytype.NewEngine(s, nopWords{}, crazytype.WithEventSink(sink), crazytype.WithRecords(store.RecordBook(crazytype.IDTimer)))
	e.Start(crazytype.ModeTimer, 1)
	for range 4 {
		e.Advance(0.25)
	}

	if e.Phase() != crazytype.PhaseGameOver {
		t.Fatalf("phase = %s", e.Phase())
	}
	n, err := store.CountEvents(crazytype.IDTimer, "gameover")
	if err != nil || n != 1 {
		t.Errorf("gameover events = %d, %v", n, err)
	}
	runs, _ := store.TopRuns(crazytype.IDTimer, 10)
	if len(runs) != 1 || runs[0].EndReason != "timer" {
		t.Errorf("runs = %+v", runs)
	}
}

type nopWords struct{}

func (nopWords) NextWord() string { return "" }
