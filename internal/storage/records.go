package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// Record names.
const (
	RecordHighScore     = "high_score"
	RecordLongestStreak = "longest_streak"
)

// Record returns a named personal record for a game, 0 if unset.
func (s *Store) Record(gameID, name string) (int, error) {
	var value int
	err := s.db.QueryRow(
		"SELECT value FROM records WHERE game_id = ? AND name = ?",
		gameID, name,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read record %s: %w", name, err)
	}
	return value, nil
}

// SetRecord stores a named personal record, replacing any previous value.
func (s *Store) SetRecord(gameID, name string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO records (game_id, name, value) VALUES (?, ?, ?)
		 ON CONFLICT(game_id, name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		gameID, name, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write record %s: %w", name, err)
	}
	return nil
}

// Records returns all personal records of a game keyed by name.
func (s *Store) Records(gameID string) (map[string]int, error) {
	rows, err := s.db.Query("SELECT name, value FROM records WHERE game_id = ?", gameID)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var name string
		var value int
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("storage: cannot scan record: %w", err)
		}
		out[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// RecordBook is the personal-best view of one game, as used by the engine.
type RecordBook struct {
	store  *Store
	gameID string
}

// RecordBook returns the record book for gameID.
func (s *Store) RecordBook(gameID string) *RecordBook {
	return &RecordBook{store: s, gameID: gameID}
}

// HighScore returns the stored high score.
func (b *RecordBook) HighScore() (int, error) {
	return b.store.Record(b.gameID, RecordHighScore)
}

// SetHighScore stores a new high score.
func (b *RecordBook) SetHighScore(score int) error {
	return b.store.SetRecord(b.gameID, RecordHighScore, score)
}

// LongestStreak returns the stored longest streak.
func (b *RecordBook) LongestStreak() (int, error) {
	return b.store.Record(b.gameID, RecordLongestStreak)
}

// SetLongestStreak stores a new longest streak.
func (b *RecordBook) SetLongestStreak(streak int) error {
	return b.store.SetRecord(b.gameID, RecordLongestStreak, streak)
}
