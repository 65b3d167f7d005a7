package crazytype

import "github.com/vovakirdan/crazytype/internal/config"

// Mode selects how a session ends.
type Mode string

const (
	ModeTimer   Mode = "timer"
	ModeEndless Mode = "endless"
)

// Tier is a named difficulty bucket with a speed range and selection weight.
type Tier struct {
	Name     string
	MinSpeed int
	MaxSpeed int
	Weight   float64
}

// Settings is the immutable engine configuration, fixed at construction.
// Durations and times are in seconds unless the name says otherwise.
type Settings struct {
	BaseSpawnIntervalMs float64
	SpawnAcceleration   float64
	MinSpawnIntervalMs  float64
	LevelWordTarget     int // words spawned per level; 0 disables level ups

	Tiers []Tier

	PowerUpChance    float64
	DoubleDuration   float64
	SlowDuration     float64
	DoubleMultiplier float64
	SlowSpeedFactor  float64
	SlowSpawnFactor  float64

	MaxLives      int
	MaxFrameDelta float64 // larger deltas are clamped; 0 disables clamping

	FieldWidth   float64
	FieldHeight  float64
	SpawnY       float64
	BottomMargin float64

	Hotseat         bool
	HotseatInterval float64
}

// SettingsFromConfig converts a loaded config into engine settings.
func SettingsFromConfig(cfg config.CrazyTypeConfig) Settings {
	tiers := make([]Tier, len(cfg.Tiers))
	for i, t := range cfg.Tiers {
		tiers[i] = Tier{Name: t.Name, MinSpeed: t.MinSpeed, MaxSpeed: t.MaxSpeed, Weight: t.Weight}
	}

	return Settings{
		BaseSpawnIntervalMs: cfg.Spawn.BaseIntervalMs,
		SpawnAcceleration:   cfg.Spawn.Acceleration,
		MinSpawnIntervalMs:  cfg.Spawn.MinIntervalMs,
		LevelWordTarget:     cfg.Spawn.LevelWordTarget,
		Tiers:               tiers,
		PowerUpChance:       cfg.PowerUps.Chance,
		DoubleDuration:      cfg.PowerUps.DoubleSeconds,
		SlowDuration:        cfg.PowerUps.SlowSeconds,
		DoubleMultiplier:    cfg.PowerUps.DoubleMultiplier,
		SlowSpeedFactor:     cfg.PowerUps.SlowSpeedFactor,
		SlowSpawnFactor:     cfg.PowerUps.SlowSpawnFactor,
		MaxLives:            cfg.Gameplay.MaxLives,
		MaxFrameDelta:       cfg.Gameplay.MaxFrameDelta,
		FieldWidth:          cfg.Field.Width,
		FieldHeight:         cfg.Field.Height,
		SpawnY:              cfg.Field.SpawnY,
		BottomMargin:        cfg.Field.BottomMargin,
		Hotseat:             cfg.Hotseat.Enabled,
		HotseatInterval:     cfg.Hotseat.IntervalSeconds,
	}
}

// DefaultSettings returns settings built from the default configuration.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultCrazyTypeConfig())
}

// bottom is the y coordinate past which a word counts as missed.
func (s Settings) bottom() float64 {
	return s.FieldHeight - s.BottomMargin
}
