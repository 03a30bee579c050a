// Package config provides YAML-based game configuration loading,
// range clamping, and difficulty presets for the cascade platform.
package config

import (
	"github.com/vovakirdan/elemental-cascade/internal/core"
	"github.com/vovakirdan/elemental-cascade/internal/games/cascade"
)

// CascadeConfig contains all tunables for the cascade game.
type CascadeConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Disaster DisasterConfig `yaml:"disaster"`
	Wave     WaveConfig     `yaml:"wave"`
}

// BoardConfig defines the grid and the dispenser reservoir.
type BoardConfig struct {
	Columns           int `yaml:"columns"`
	Rows              int `yaml:"rows"`
	Kinds             int `yaml:"kinds"`
	DuplicatesPerKind int `yaml:"duplicates_per_kind"`
}

// DisasterConfig defines disaster pressure.
type DisasterConfig struct {
	InitialMoveInterval float64 `yaml:"initial_move_interval"`
	MinMoveInterval     float64 `yaml:"min_move_interval"`
	MaxMoveInterval     float64 `yaml:"max_move_interval"`
	PerWaveSpeedup      float64 `yaml:"per_wave_speedup"`
	MaxActive           int     `yaml:"max_active"`
	WavesPerAdditional  int     `yaml:"waves_per_additional"`
	ScorePerDisaster    int     `yaml:"score_per_disaster"`
	SpawnRetries        int     `yaml:"spawn_retries"`
}

// WaveConfig defines wave progression. Mode is "score" or "time"; the two
// are mutually exclusive.
type WaveConfig struct {
	Mode         string  `yaml:"mode"`
	ScorePerWave int     `yaml:"score_per_wave"`
	Multiplier   float64 `yaml:"multiplier"`
	TimePerWave  float64 `yaml:"time_per_wave"`
}

// Normalize clamps every tunable to its documented range. Out-of-range
// values are silently corrected, never an error: a config can come from a
// hand-edited file and the game must still start.
func (c *CascadeConfig) Normalize() {
	c.Board.Columns = core.Clamp(c.Board.Columns, 4, 12)
	c.Board.Rows = core.Clamp(c.Board.Rows, 4, 12)
	c.Board.Kinds = core.Clamp(c.Board.Kinds, 3, cascade.NumKinds)
	c.Board.DuplicatesPerKind = core.Clamp(c.Board.DuplicatesPerKind, 5, 100)

	// The reservoir must cover the whole grid with draws to spare,
	// otherwise the initial fill runs dry.
	cells := c.Board.Columns * c.Board.Rows
	minDup := cells/c.Board.Kinds + 1
	if c.Board.DuplicatesPerKind < minDup {
		c.Board.DuplicatesPerKind = minDup
	}

	c.Disaster.MinMoveInterval = core.ClampF(c.Disaster.MinMoveInterval, 0.25, 30)
	c.Disaster.MaxMoveInterval = core.ClampF(c.Disaster.MaxMoveInterval, c.Disaster.MinMoveInterval, 60)
	c.Disaster.InitialMoveInterval = core.ClampF(c.Disaster.InitialMoveInterval,
		c.Disaster.MinMoveInterval, c.Disaster.MaxMoveInterval)
	c.Disaster.PerWaveSpeedup = core.ClampF(c.Disaster.PerWaveSpeedup, 0, 5)
	c.Disaster.MaxActive = core.Clamp(c.Disaster.MaxActive, 1, 10)
	c.Disaster.WavesPerAdditional = core.Clamp(c.Disaster.WavesPerAdditional, 1, 20)
	c.Disaster.ScorePerDisaster = core.Clamp(c.Disaster.ScorePerDisaster, 0, 10000)
	c.Disaster.SpawnRetries = core.Clamp(c.Disaster.SpawnRetries, 1, 32)

	if c.Wave.Mode != string(cascade.WaveModeTime) {
		c.Wave.Mode = string(cascade.WaveModeScore)
	}
	c.Wave.ScorePerWave = core.Clamp(c.Wave.ScorePerWave, 100, 100000)
	c.Wave.Multiplier = core.ClampF(c.Wave.Multiplier, 0.1, 10)
	c.Wave.TimePerWave = core.ClampF(c.Wave.TimePerWave, 5, 600)
}

// Params converts the config into engine parameters. Normalize is applied
// first so the engine always receives in-range values.
func (c CascadeConfig) Params() cascade.Params {
	c.Normalize()
	return cascade.Params{
		Columns:           c.Board.Columns,
		Rows:              c.Board.Rows,
		Kinds:             c.Board.Kinds,
		DuplicatesPerKind: c.Board.DuplicatesPerKind,

		InitialMoveInterval: c.Disaster.InitialMoveInterval,
		MinMoveInterval:     c.Disaster.MinMoveInterval,
		MaxMoveInterval:     c.Disaster.MaxMoveInterval,
		PerWaveSpeedup:      c.Disaster.PerWaveSpeedup,

		MaxActiveDisasters:         c.Disaster.MaxActive,
		WavesPerAdditionalDisaster: c.Disaster.WavesPerAdditional,
		ScorePerDisaster:           c.Disaster.ScorePerDisaster,
		SpawnRetries:               c.Disaster.SpawnRetries,

		WaveMode:       cascade.WaveMode(c.Wave.Mode),
		ScorePerWave:   c.Wave.ScorePerWave,
		WaveMultiplier: c.Wave.Multiplier,
		TimePerWave:    c.Wave.TimePerWave,
	}
}
