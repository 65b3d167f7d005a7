// Package analytics turns engine events into log lines and stored rows.
package analytics

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crazytype/internal/games/crazytype"
)

// LogSink writes every event as a structured log line.
type LogSink struct {
	logger *log.Logger
	gameID string
}

// NewLogSink creates a sink logging to logger. A nil logger uses the
// charmbracelet/log default logger.
func NewLogSink(logger *log.Logger, gameID string) *LogSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSink{logger: logger, gameID: gameID}
}

// Emit logs ev. Game over is logged at info level, the rest at debug.
func (s *LogSink) Emit(ev crazytype.Event) {
	kv := []any{"game", s.gameID, "event", string(ev.Type)}
	for k, v := range ev.Payload() {
		kv = append(kv, k, v)
	}

	switch ev.Type {
	case crazytype.EventGameOver, crazytype.EventStart:
		s.logger.Info("game event", kv...)
	default:
		s.logger.Debug("game event", kv...)
	}
}

// Multi fans an event out to several sinks in order.
type Multi []crazytype.EventSink

// Emit forwards ev to every non-nil sink.
func (m Multi) Emit(ev crazytype.Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(ev)
		}
	}
}
