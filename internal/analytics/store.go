package analytics

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/crazytype/internal/games/crazytype"
	"github.com/vovakirdan/crazytype/internal/storage"
)

// StoreSink persists events and, on game over, the finished run.
// Every start event opens a new run ID that groups the events after it.
type StoreSink struct {
	store  *storage.Store
	gameID string
	logger *log.Logger
	runID  string
}

// NewStoreSink creates a sink writing to store. Write failures are logged
// to logger and otherwise ignored so play is never interrupted.
func NewStoreSink(store *storage.Store, gameID string, logger *log.Logger) *StoreSink {
	if logger == nil {
		logger = log.Default()
	}
	return &StoreSink{store: store, gameID: gameID, logger: logger}
}

// RunID returns the ID of the current or last run, empty before the first start.
func (s *StoreSink) RunID() string {
	return s.runID
}

// Emit stores ev.
func (s *StoreSink) Emit(ev crazytype.Event) {
	if s.store == nil {
		return
	}
	if ev.Type == crazytype.EventStart || s.runID == "" {
		s.runID = uuid.NewString()
	}

	_, err := s.store.SaveEvent(storage.EventRecord{
		RunID:   s.runID,
		GameID:  s.gameID,
		Type:    string(ev.Type),
		Payload: ev.Payload(),
	})
	if err != nil {
		s.logger.Warn("failed to save event", "event", ev.Type, "err", err)
	}

	if ev.Type == crazytype.EventGameOver && ev.Summary != nil {
		if _, err := s.store.SaveRun(RunFromSummary(s.runID, s.gameID, *ev.Summary)); err != nil {
			s.logger.Warn("failed to save run", "run", s.runID, "err", err)
		}
	}
}

// RunFromSummary converts an engine summary into a storage row.
func RunFromSummary(runID, gameID string, sum crazytype.Summary) storage.Run {
	return storage.Run{
		ID:            runID,
		GameID:        gameID,
		Mode:          string(sum.Mode),
		TimerSecs:     sum.TimerLength,
		Score:         sum.Score,
		Accuracy:      sum.Accuracy,
		WPM:           sum.WPM,
		LongestStreak: sum.LongestStreak,
		Level:         sum.Level,
		WordsTyped:    sum.WordsTyped,
		WordsMissed:   sum.WordsMissed,
		DurationSecs:  sum.Elapsed,
		EndReason:     string(sum.Reason),
	}
}
