package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/crazytype/internal/config"
	"github.com/vovakirdan/crazytype/internal/core"
	"github.com/vovakirdan/crazytype/internal/games/crazytype"
	"github.com/vovakirdan/crazytype/internal/platform/tui"
	"github.com/vovakirdan/crazytype/internal/registry"
	"github.com/vovakirdan/crazytype/internal/storage"
	"github.com/vovakirdan/crazytype/internal/wordlist"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger creates a logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// tuiLogger returns a logger for alt-screen commands. Without --log-file
// logs are dropped, since stderr shares the terminal with the game.
// The returned closer must be called on exit.
func tuiLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}
	}
	path, err := config.ExpandHome(flagLogFile)
	if err != nil {
		fail("%v", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fail("cannot open log file: %v", err)
	}
	return newLogger(f, "crazytype"), func() { _ = f.Close() }
}

// openStore opens the scores database. Play works without it, so failures
// only produce a warning.
func openStore(path string) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// loadServices builds the shared session services from the global flags.
func loadServices(store *storage.Store, logger *log.Logger) tui.Services {
	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		preset = config.ParsePreset(flagDifficulty)
		if preset == "" {
			fail("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	if flagConfig != "" {
		if _, err := config.Load(flagConfig); err != nil {
			fail("%v", err)
		}
	}

	var words []string
	if flagWords != "" {
		path, err := config.ExpandHome(flagWords)
		if err != nil {
			fail("%v", err)
		}
		words, err = wordlist.LoadWords(path)
		if err != nil {
			fail("%v", err)
		}
	}

	return tui.Services{
		Store:      store,
		Logger:     logger,
		ConfigPath: flagConfig,
		Preset:     preset,
		Words:      words,
	}
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// resolveMode maps a mode name or registry ID to a registry ID.
func resolveMode(arg string) (string, error) {
	switch arg {
	case "", "timer":
		return crazytype.IDTimer, nil
	case "endless":
		return crazytype.IDEndless, nil
	}
	if registry.Exists(arg) {
		return arg, nil
	}
	return "", fmt.Errorf("unknown mode %q (run 'crazytype list')", arg)
}
