package crazytype

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// ExportRecord is the JSON form of a finished session.
type ExportRecord struct {
	Score         int    `json:"score"`
	Accuracy      int    `json:"accuracy"`
	WPM           int    `json:"wpm"`
	LongestStreak int    `json:"longestStreak"`
	Timestamp     int64  `json:"timestamp"` // unix milliseconds
	Mode          string `json:"mode,omitempty"`
	Level         int    `json:"level,omitempty"`
}

// NewExportRecord builds an export record for s finished at the given time.
func NewExportRecord(s Summary, at time.Time) ExportRecord {
	return ExportRecord{
		Score:         s.Score,
		Accuracy:      s.Accuracy,
		WPM:           s.WPM,
		LongestStreak: s.LongestStreak,
		Timestamp:     at.UnixMilli(),
		Mode:          string(s.Mode),
		Level:         s.Level,
	}
}

// ExportSummary writes s as indented JSON.
func ExportSummary(w io.Writer, s Summary, at time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewExportRecord(s, at)); err != nil {
		return fmt.Errorf("crazytype: export summary: %w", err)
	}
	return nil
}
