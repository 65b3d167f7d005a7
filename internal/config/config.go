// Package config provides YAML/TOML game configuration loading and
// difficulty presets for crazytype.
package config

import (
	"errors"
	"fmt"
)

// CrazyTypeConfig contains all tunables of the falling-word engine.
type CrazyTypeConfig struct {
	Spawn    SpawnConfig    `yaml:"spawn" toml:"spawn"`
	Tiers    []TierConfig   `yaml:"tiers" toml:"tiers"`
	PowerUps PowerUpConfig  `yaml:"powerups" toml:"powerups"`
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
	Field    FieldConfig    `yaml:"field" toml:"field"`
	Hotseat  HotseatConfig  `yaml:"hotseat" toml:"hotseat"`
}

// SpawnConfig controls spawn cadence and level progression.
type SpawnConfig struct {
	BaseIntervalMs  float64 `yaml:"base_interval_ms" toml:"base_interval_ms"`
	Acceleration    float64 `yaml:"acceleration" toml:"acceleration"`         // interval multiplier per level
	MinIntervalMs   float64 `yaml:"min_interval_ms" toml:"min_interval_ms"`   // floor for the interval
	LevelWordTarget int     `yaml:"level_word_target" toml:"level_word_target"` // 0 disables level ups
}

// TierConfig is a named difficulty bucket with a fall speed range and weight.
type TierConfig struct {
	Name     string  `yaml:"name" toml:"name"`
	MinSpeed int     `yaml:"min_speed" toml:"min_speed"` // field units per second
	MaxSpeed int     `yaml:"max_speed" toml:"max_speed"`
	Weight   float64 `yaml:"weight" toml:"weight"`
}

// PowerUpConfig controls power-up rolls and effects.
type PowerUpConfig struct {
	Chance           float64 `yaml:"chance" toml:"chance"` // 0.0 - 1.0
	DoubleSeconds    float64 `yaml:"double_seconds" toml:"double_seconds"`
	SlowSeconds      float64 `yaml:"slow_seconds" toml:"slow_seconds"`
	DoubleMultiplier float64 `yaml:"double_multiplier" toml:"double_multiplier"`
	SlowSpeedFactor  float64 `yaml:"slow_speed_factor" toml:"slow_speed_factor"`
	SlowSpawnFactor  float64 `yaml:"slow_spawn_factor" toml:"slow_spawn_factor"`
}

// GameplayConfig holds session rules.
type GameplayConfig struct {
	MaxLives      int     `yaml:"max_lives" toml:"max_lives"`
	TimerModes    []int   `yaml:"timer_modes" toml:"timer_modes"` // selectable timer lengths in seconds
	MaxFrameDelta float64 `yaml:"max_frame_delta" toml:"max_frame_delta"`
}

// FieldConfig describes the abstract playfield words fall through.
type FieldConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	SpawnY       float64 `yaml:"spawn_y" toml:"spawn_y"`
	BottomMargin float64 `yaml:"bottom_margin" toml:"bottom_margin"`
}

// HotseatConfig controls two-player alternation.
type HotseatConfig struct {
	Enabled         bool    `yaml:"enabled" toml:"enabled"`
	IntervalSeconds float64 `yaml:"interval_seconds" toml:"interval_seconds"`
}

// Validate reports the first setting that would break the engine.
func (c CrazyTypeConfig) Validate() error {
	switch {
	case c.Spawn.BaseIntervalMs <= 0:
		return errors.New("config: spawn.base_interval_ms must be positive")
	case c.Spawn.Acceleration <= 0 || c.Spawn.Acceleration > 1:
		return errors.New("config: spawn.acceleration must be in (0, 1]")
	case c.Spawn.MinIntervalMs <= 0:
		return errors.New("config: spawn.min_interval_ms must be positive")
	case c.Spawn.LevelWordTarget < 0:
		return errors.New("config: spawn.level_word_target must not be negative")
	case len(c.Tiers) == 0:
		return errors.New("config: at least one tier is required")
	case c.PowerUps.Chance < 0 || c.PowerUps.Chance > 1:
		return errors.New("config: powerups.chance must be in [0, 1]")
	case c.Gameplay.MaxLives <= 0:
		return errors.New("config: gameplay.max_lives must be positive")
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return errors.New("config: field dimensions must be positive")
	}
	for _, t := range c.Tiers {
		if t.MinSpeed <= 0 || t.MaxSpeed < t.MinSpeed {
			return fmt.Errorf("config: tier %q has an invalid speed range", t.Name)
		}
		if t.Weight < 0 {
			return fmt.Errorf("config: tier %q has a negative weight", t.Name)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty values give "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// SpeedScaleForPreset returns the fall speed multiplier for a preset.
func SpeedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *CrazyTypeConfig, preset DifficultyPreset) {
	scale := SpeedScaleForPreset(preset)
	if scale != 1.0 {
		tiers := make([]TierConfig, len(cfg.Tiers))
		for i, t := range cfg.Tiers {
			t.MinSpeed = max(1, int(float64(t.MinSpeed)*scale))
			t.MaxSpeed = max(t.MinSpeed, int(float64(t.MaxSpeed)*scale))
			tiers[i] = t
		}
		cfg.Tiers = tiers
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.MaxLives = 5
		cfg.PowerUps.Chance = 0.08
	case DifficultyHard:
		cfg.Gameplay.MaxLives = 2
		cfg.PowerUps.Chance = 0.03
		cfg.Spawn.BaseIntervalMs *= 0.85
	case DifficultyFixed:
		// No progression: the level and spawn interval never change.
		cfg.Spawn.LevelWordTarget = 0
	}
}
