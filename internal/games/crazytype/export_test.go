package crazytype

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"
)

func TestExportSummary(t *testing.T) {
	s := Summary{Mode: ModeTimer, Score: 420, Accuracy: 97, WPM: 55, LongestStreak: 18, Level: 3}
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := ExportSummary(&buf, s, at); err != nil {
		t.Fatalf("ExportSummary failed: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	want := map[string]float64{
		"score":         420,
		"accuracy":      97,
		"wpm":           55,
		"longestStreak": 18,
		"timestamp":     float64(at.UnixMilli()),
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
	if got["mode"] != "timer" {
		t.Errorf("mode = %v, want timer", got["mode"])
	}
}
