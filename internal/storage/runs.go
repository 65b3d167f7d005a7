package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one finished typing session.
type Run struct {
	ID            string // UUID; generated by SaveRun when empty
	GameID        string
	Mode          string
	TimerSecs     int
	Score         int
	Accuracy      int
	WPM           int
	LongestStreak int
	Level         int
	WordsTyped    int
	WordsMissed   int
	DurationSecs  float64
	EndReason     string
	CreatedAt     time.Time
}

// SaveRun stores a finished run and returns its ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, game_id, mode, timer_secs, score, accuracy, wpm, longest_streak, level,
		  words_typed, words_missed, duration_secs, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.GameID,
		run.Mode,
		run.TimerSecs,
		run.Score,
		run.Accuracy,
		run.WPM,
		run.LongestStreak,
		run.Level,
		run.WordsTyped,
		run.WordsMissed,
		run.DurationSecs,
		run.EndReason,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run.ID, nil
}

// TopRuns returns the best runs for a game, highest score first.
// Ties go to the earlier run.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, seq ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentRuns returns the latest runs for a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY seq DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

const runColumns = `run_id, game_id, mode, timer_secs, score, accuracy, wpm, longest_streak, level,
		        words_typed, words_missed, duration_secs, end_reason, created_at`

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.GameID,
			&r.Mode,
			&r.TimerSecs,
			&r.Score,
			&r.Accuracy,
			&r.WPM,
			&r.LongestStreak,
			&r.Level,
			&r.WordsTyped,
			&r.WordsMissed,
			&r.DurationSecs,
			&r.EndReason,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
