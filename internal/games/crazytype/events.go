package crazytype

import "github.com/vovakirdan/crazytype/internal/core"

// EventType names an analytics event.
type EventType string

const (
	EventStart         EventType = "start"
	EventLevelUp       EventType = "levelup"
	EventGameOver      EventType = "gameover"
	EventPowerUp       EventType = "powerup"
	EventHotseatSwitch EventType = "hotseat_switch"
)

// Event is published by the engine. Only the fields relevant to Type are set.
type Event struct {
	Type    EventType
	Mode    Mode
	Elapsed float64
	Level   int
	Score   int
	PowerUp PowerUpKind
	Player  core.PlayerID
	Summary *Summary // gameover only
}

// Payload flattens the event into key/value pairs for sinks that serialise it.
func (e Event) Payload() map[string]any {
	p := map[string]any{
		"mode":    string(e.Mode),
		"elapsed": e.Elapsed,
		"level":   e.Level,
		"score":   e.Score,
	}

	switch e.Type {
	case EventPowerUp:
		p["powerup"] = e.PowerUp.String()
	case EventHotseatSwitch:
		p["player"] = int(e.Player)
	case EventGameOver:
		if e.Summary != nil {
			p["accuracy"] = e.Summary.Accuracy
			p["wpm"] = e.Summary.WPM
			p["longest_streak"] = e.Summary.LongestStreak
			p["reason"] = string(e.Summary.Reason)
		}
	}
	return p
}

// EventSink receives engine events. Emit is called synchronously from the
// engine and must not call back into it.
type EventSink interface {
	Emit(Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// Emit calls f(ev).
func (f EventSinkFunc) Emit(ev Event) { f(ev) }

type nopSink struct{}

func (nopSink) Emit(Event) {}
