package config

import (
	_ "embed"
)

//go:embed defaults/cascade.yaml
var defaultCascadeYAML []byte

// DefaultCascadeConfig returns the default cascade configuration: the
// classic 6x8 board with all five kinds and ten duplicates each.
func DefaultCascadeConfig() CascadeConfig {
	return CascadeConfig{
		Board: BoardConfig{
			Columns:           6,
			Rows:              8,
			Kinds:             5,
			DuplicatesPerKind: 10,
		},
		Disaster: DisasterConfig{
			InitialMoveInterval: 5.0,
			MinMoveInterval:     1.0,
			MaxMoveInterval:     10.0,
			PerWaveSpeedup:      0.5,
			MaxActive:           5,
			WavesPerAdditional:  3,
			ScorePerDisaster:    500,
			SpawnRetries:        8,
		},
		Wave: WaveConfig{
			Mode:         "score",
			ScorePerWave: 1000,
			Multiplier:   1.5,
			TimePerWave:  30.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "cascade", "cascade_timed":
		return defaultCascadeYAML
	default:
		return nil
	}
}
