package storage

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventRecord is a stored analytics event.
type EventRecord struct {
	ID        int64
	RunID     string
	GameID    string
	Type      string
	Payload   map[string]any
	CreatedAt time.Time
}

// SaveEvent appends an analytics event. The payload is stored as JSON.
func (s *Store) SaveEvent(ev EventRecord) (int64, error) {
	payload := []byte("{}")
	if ev.Payload != nil {
		data, err := json.Marshal(ev.Payload)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot encode event payload: %w", err)
		}
		payload = data
	}

	result, err := s.db.Exec(
		"INSERT INTO events (run_id, game_id, type, payload) VALUES (?, ?, ?, ?)",
		ev.RunID, ev.GameID, ev.Type, string(payload),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// EventsForRun returns the events of one run in insertion order.
func (s *Store) EventsForRun(runID string) ([]EventRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, type, payload, created_at
		 FROM events
		 WHERE run_id = ?
		 ORDER BY id ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var events []EventRecord
	for rows.Next() {
		var ev EventRecord
		var payload string
		var createdAt any
		if err := rows.Scan(&ev.ID, &ev.RunID, &ev.GameID, &ev.Type, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan event: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &ev.Payload); err != nil {
			return nil, fmt.Errorf("storage: cannot decode event payload: %w", err)
		}
		ev.CreatedAt = parseTime(createdAt)
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return events, nil
}

// CountEvents returns how many events of the given type a game has logged.
func (s *Store) CountEvents(gameID, eventType string) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM events WHERE game_id = ? AND type = ?",
		gameID, eventType,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count events: %w", err)
	}
	return n, nil
}
