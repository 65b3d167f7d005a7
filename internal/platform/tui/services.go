package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crazytype/internal/analytics"
	"github.com/vovakirdan/crazytype/internal/config"
	"github.com/vovakirdan/crazytype/internal/games/crazytype"
	"github.com/vovakirdan/crazytype/internal/registry"
	"github.com/vovakirdan/crazytype/internal/storage"
)

// Services carries what a play session needs besides the game itself.
// Store and Logger may be nil; play works without persistence.
type Services struct {
	Store      *storage.Store
	Logger     *log.Logger
	ConfigPath string
	Preset     config.DifficultyPreset
	Words      []string
	DataDir    string // base for exports and screenshots, default ~/.crazytype
}

// Selection describes which session the player picked.
type Selection struct {
	GameID      string
	TimerLength int // seconds, timer mode only
	Hotseat     bool
	Preset      config.DifficultyPreset // empty uses Services.Preset
}

// logger returns the configured logger or one that discards output.
func (s Services) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.New(io.Discard)
}

// dataDir resolves the directory for exports and screenshots.
func (s Services) dataDir() string {
	if s.DataDir != "" {
		return s.DataDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".crazytype"
	}
	return filepath.Join(home, ".crazytype")
}

// ExportDir is where game-over summaries are written.
func (s Services) ExportDir() string {
	return filepath.Join(s.dataDir(), "exports")
}

// ScreenshotDir is where screen dumps are written.
func (s Services) ScreenshotDir() string {
	return filepath.Join(s.dataDir(), "screenshots")
}

// NewGame creates the selected game and wires records and analytics into it.
func (s Services) NewGame(sel Selection) (registry.Game, error) {
	game, err := registry.Create(sel.GameID)
	if err != nil {
		return nil, err
	}

	ct, ok := game.(*crazytype.Game)
	if !ok {
		return game, nil
	}

	logger := s.logger()
	sinks := analytics.Multi{analytics.NewLogSink(logger, sel.GameID)}
	preset := s.Preset
	if sel.Preset != "" {
		preset = sel.Preset
	}
	opts := crazytype.Options{
		ConfigPath:  s.ConfigPath,
		Preset:      preset,
		TimerLength: sel.TimerLength,
		Hotseat:     sel.Hotseat,
		Words:       s.Words,
	}
	if s.Store != nil {
		opts.Records = s.Store.RecordBook(sel.GameID)
		sinks = append(sinks, analytics.NewStoreSink(s.Store, sel.GameID, logger))
	}
	opts.Sink = sinks
	ct.Configure(opts)

	return ct, nil
}

// exportSummary writes the last summary of game as JSON into dir.
func exportSummary(game registry.Game, dir string, now time.Time) (string, error) {
	sp, ok := game.(interface {
		Summary() (crazytype.Summary, bool)
	})
	if !ok {
		return "", fmt.Errorf("tui: game %s has no summary", game.ID())
	}
	sum, ok := sp.Summary()
	if !ok {
		return "", fmt.Errorf("tui: no finished session to export")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create export dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.json", game.ID(), now.Format("20060102_150405")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("tui: create export: %w", err)
	}
	if err := crazytype.ExportSummary(f, sum, now); err != nil {
		f.Close()
		return "", fmt.Errorf("tui: write export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("tui: close export: %w", err)
	}
	return path, nil
}
