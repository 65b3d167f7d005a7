package httpapi

import (
	"net/http"
	"time"

	"github.com/vovakirdan/crazytype/internal/registry"
	"github.com/vovakirdan/crazytype/internal/storage"
)

type healthRes struct {
	Status  string `json:"status"`
	Storage bool   `json:"storage"`
	Games   int    `json:"games"`
	Plays   int    `json:"plays"`
}

type gameRes struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type leaderboardEntry struct {
	Rank          int       `json:"rank"`
	RunID         string    `json:"runId"`
	Score         int       `json:"score"`
	WPM           int       `json:"wpm"`
	Accuracy      int       `json:"accuracy"`
	LongestStreak int       `json:"longestStreak"`
	Level         int       `json:"level"`
	Mode          string    `json:"mode"`
	Timestamp     time.Time `json:"timestamp"`
}

type recordsRes struct {
	GameID        string     `json:"gameId"`
	HighScore     int        `json:"highScore"`
	LongestStreak int        `json:"longestStreak"`
	Plays         int        `json:"plays"`
	AvgScore      float64    `json:"avgScore"`
	BestWPM       int        `json:"bestWpm"`
	LastPlayed    *time.Time `json:"lastPlayed,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	res := healthRes{Status: "OK", Games: len(registry.List())}
	if s.store != nil {
		res.Storage = true
		stats, err := s.store.GetAllGamesStats()
		if err != nil {
			s.logger.Error("health stats", "error", err)
			res.Status = "DEGRADED"
		}
		for _, st := range stats {
			res.Plays += st.GamesCount
		}
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	games := registry.List()
	res := make([]gameRes, len(games))
	for i, g := range games {
		res[i] = gameRes{ID: g.ID, Title: g.Title}
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameFromPath(w, r)
	if !ok || !s.requireStore(w) {
		return
	}

	runs, err := s.store.TopRuns(gameID, parseLimit(r))
	if err != nil {
		s.logger.Error("leaderboard", "game", gameID, "error", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	writeJSON(w, http.StatusOK, leaderboard(runs))
}

// leaderboard ranks runs in the order given.
func leaderboard(runs []storage.Run) []leaderboardEntry {
	out := make([]leaderboardEntry, len(runs))
	for i, run := range runs {
		out[i] = leaderboardEntry{
			Rank:          i + 1,
			RunID:         run.ID,
			Score:         run.Score,
			WPM:           run.WPM,
			Accuracy:      run.Accuracy,
			LongestStreak: run.LongestStreak,
			Level:         run.Level,
			Mode:          run.Mode,
			Timestamp:     run.CreatedAt.UTC(),
		}
	}
	return out
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	gameID, ok := gameFromPath(w, r)
	if !ok || !s.requireStore(w) {
		return
	}

	records, err := s.store.Records(gameID)
	if err != nil {
		s.logger.Error("records", "game", gameID, "error", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	stats, err := s.store.GetGameStats(gameID)
	if err != nil {
		s.logger.Error("game stats", "game", gameID, "error", err)
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}

	res := recordsRes{
		GameID:        gameID,
		HighScore:     records[storage.RecordHighScore],
		LongestStreak: records[storage.RecordLongestStreak],
		Plays:         stats.GamesCount,
		AvgScore:      stats.AvgScore,
		BestWPM:       stats.BestWPM,
	}
	if !stats.LastPlayed.IsZero() {
		last := stats.LastPlayed.UTC()
		res.LastPlayed = &last
	}
	writeJSON(w, http.StatusOK, res)
}
