package config

import (
	_ "embed"
)

//go:embed defaults/crazytype.yaml
var defaultCrazyTypeYAML []byte

// DefaultCrazyTypeConfig returns the built-in configuration.
func DefaultCrazyTypeConfig() CrazyTypeConfig {
	return CrazyTypeConfig{
		Spawn: SpawnConfig{
			BaseIntervalMs:  1400,
			Acceleration:    0.92,
			MinIntervalMs:   380,
			LevelWordTarget: 14,
		},
		Tiers: []TierConfig{
			{Name: "easy", MinSpeed: 45, MaxSpeed: 70, Weight: 0.5},
			{Name: "medium", MinSpeed: 70, MaxSpeed: 95, Weight: 0.35},
			{Name: "hard", MinSpeed: 95, MaxSpeed: 125, Weight: 0.15},
		},
		PowerUps: PowerUpConfig{
			Chance:           0.05,
			DoubleSeconds:    10,
			SlowSeconds:      7,
			DoubleMultiplier: 2.0,
			SlowSpeedFactor:  0.4,
			SlowSpawnFactor:  1.6,
		},
		Gameplay: GameplayConfig{
			MaxLives:      3,
			TimerModes:    []int{60, 120},
			MaxFrameDelta: 0.25,
		},
		Field: FieldConfig{
			Width:        800,
			Height:       600,
			SpawnY:       -25,
			BottomMargin: 8,
		},
		Hotseat: HotseatConfig{
			Enabled:         false,
			IntervalSeconds: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `config dump`.
func DefaultYAML() []byte {
	return defaultCrazyTypeYAML
}
