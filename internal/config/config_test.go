package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/elemental-cascade/internal/games/cascade"
)

func TestNormalizeClampsRanges(t *testing.T) {
	cfg := CascadeConfig{
		Board: BoardConfig{
			Columns:           100,
			Rows:              -3,
			Kinds:             9,
			DuplicatesPerKind: 1,
		},
		Disaster: DisasterConfig{
			InitialMoveInterval: 500,
			MinMoveInterval:     -1,
			MaxMoveInterval:     1000,
			PerWaveSpeedup:      99,
			MaxActive:           0,
			WavesPerAdditional:  0,
			ScorePerDisaster:    -5,
			SpawnRetries:        1000,
		},
		Wave: WaveConfig{
			Mode:         "bogus",
			ScorePerWave: 1,
			Multiplier:   100,
			TimePerWave:  0,
		},
	}
	cfg.Normalize()

	if cfg.Board.Columns != 12 {
		t.Errorf("Columns = %d, want 12", cfg.Board.Columns)
	}
	if cfg.Board.Rows != 4 {
		t.Errorf("Rows = %d, want 4", cfg.Board.Rows)
	}
	if cfg.Board.Kinds != cascade.NumKinds {
		t.Errorf("Kinds = %d, want %d", cfg.Board.Kinds, cascade.NumKinds)
	}
	if cfg.Disaster.MinMoveInterval != 0.25 {
		t.Errorf("MinMoveInterval = %v, want 0.25", cfg.Disaster.MinMoveInterval)
	}
	if cfg.Disaster.MaxMoveInterval != 60 {
		t.Errorf("MaxMoveInterval = %v, want 60", cfg.Disaster.MaxMoveInterval)
	}
	if cfg.Disaster.InitialMoveInterval != 60 {
		t.Errorf("InitialMoveInterval = %v, want 60", cfg.Disaster.InitialMoveInterval)
	}
	if cfg.Disaster.MaxActive != 1 {
		t.Errorf("MaxActive = %d, want 1", cfg.Disaster.MaxActive)
	}
	if cfg.Disaster.ScorePerDisaster != 0 {
		t.Errorf("ScorePerDisaster = %d, want 0", cfg.Disaster.ScorePerDisaster)
	}
	if cfg.Disaster.SpawnRetries != 32 {
		t.Errorf("SpawnRetries = %d, want 32", cfg.Disaster.SpawnRetries)
	}
	if cfg.Wave.Mode != string(cascade.WaveModeScore) {
		t.Errorf("Mode = %q, want score", cfg.Wave.Mode)
	}
	if cfg.Wave.ScorePerWave != 100 {
		t.Errorf("ScorePerWave = %d, want 100", cfg.Wave.ScorePerWave)
	}
	if cfg.Wave.Multiplier != 10 {
		t.Errorf("Multiplier = %v, want 10", cfg.Wave.Multiplier)
	}
	if cfg.Wave.TimePerWave != 5 {
		t.Errorf("TimePerWave = %v, want 5", cfg.Wave.TimePerWave)
	}
}

func TestNormalizeGrowsReservoirToCoverGrid(t *testing.T) {
	cfg := DefaultCascadeConfig()
	cfg.Board.Columns = 12
	cfg.Board.Rows = 12
	cfg.Board.Kinds = 3
	cfg.Board.DuplicatesPerKind = 5
	cfg.Normalize()

	// 144 cells over 3 kinds needs at least 49 duplicates per kind.
	if got, want := cfg.Board.DuplicatesPerKind, 144/3+1; got != want {
		t.Errorf("DuplicatesPerKind = %d, want %d", got, want)
	}
}

func TestNormalizeKeepsValidConfigUntouched(t *testing.T) {
	cfg := DefaultCascadeConfig()
	want := cfg
	cfg.Normalize()
	if cfg != want {
		t.Errorf("Normalize changed a valid config: %+v", cfg)
	}
}

func TestParamsConversion(t *testing.T) {
	p := DefaultCascadeConfig().Params()

	if p.Columns != 6 || p.Rows != 8 {
		t.Errorf("grid = %dx%d, want 6x8", p.Columns, p.Rows)
	}
	if p.Kinds != 5 || p.DuplicatesPerKind != 10 {
		t.Errorf("population = %d kinds x %d, want 5x10", p.Kinds, p.DuplicatesPerKind)
	}
	if p.WaveMode != cascade.WaveModeScore {
		t.Errorf("WaveMode = %q, want score", p.WaveMode)
	}
	if p.ScorePerDisaster != 500 {
		t.Errorf("ScorePerDisaster = %d, want 500", p.ScorePerDisaster)
	}
}

func TestApplyCascadePreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		wantInterval float64
		wantMax      int
	}{
		{DifficultyEasy, 7.0, 3},
		{DifficultyNormal, 5.0, 5},
		{DifficultyHard, 3.0, 7},
	}
	for _, tt := range tests {
		cfg := DefaultCascadeConfig()
		ApplyCascadePreset(&cfg, tt.preset)
		if cfg.Disaster.InitialMoveInterval != tt.wantInterval {
			t.Errorf("%s: InitialMoveInterval = %v, want %v",
				tt.preset, cfg.Disaster.InitialMoveInterval, tt.wantInterval)
		}
		if cfg.Disaster.MaxActive != tt.wantMax {
			t.Errorf("%s: MaxActive = %d, want %d", tt.preset, cfg.Disaster.MaxActive, tt.wantMax)
		}
	}
}

func TestApplyCascadePresetFixed(t *testing.T) {
	cfg := DefaultCascadeConfig()
	ApplyCascadePreset(&cfg, DifficultyFixed)
	if cfg.Disaster.PerWaveSpeedup != 0 {
		t.Errorf("PerWaveSpeedup = %v, want 0", cfg.Disaster.PerWaveSpeedup)
	}
	if cfg.Disaster.MaxActive != 1 {
		t.Errorf("MaxActive = %d, want 1", cfg.Disaster.MaxActive)
	}
}

func TestApplyCascadePresetUnknownLeavesConfig(t *testing.T) {
	cfg := DefaultCascadeConfig()
	want := cfg
	ApplyCascadePreset(&cfg, "nightmare")
	if cfg != want {
		t.Errorf("unknown preset changed the config: %+v", cfg)
	}
}

func TestLoadCascadeFromCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cascade.yaml")
	data := []byte("board:\n  columns: 8\n  rows: 10\n  kinds: 4\n  duplicates_per_kind: 25\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCascade(path)
	if err != nil {
		t.Fatalf("LoadCascade: %v", err)
	}
	if cfg.Board.Columns != 8 || cfg.Board.Rows != 10 {
		t.Errorf("grid = %dx%d, want 8x10", cfg.Board.Columns, cfg.Board.Rows)
	}
	// Omitted sections normalize into valid ranges.
	if cfg.Disaster.MaxActive < 1 {
		t.Errorf("MaxActive = %d, want >= 1", cfg.Disaster.MaxActive)
	}
	if cfg.Wave.Mode != "score" {
		t.Errorf("Mode = %q, want score", cfg.Wave.Mode)
	}
}

func TestLoadCascadeMissingCustomPathFails(t *testing.T) {
	if _, err := LoadCascade(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}
}

func TestLoadCascadeFallsBackToEmbedded(t *testing.T) {
	// Run from a directory with no local configs so the loader lands on
	// the embedded default.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadCascade("")
	if err != nil {
		t.Fatalf("LoadCascade: %v", err)
	}
	if cfg != DefaultCascadeConfig() {
		t.Errorf("embedded default mismatch: %+v", cfg)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if GetDefaultYAML("cascade") == nil {
		t.Error("no embedded default for cascade")
	}
	if GetDefaultYAML("cascade_timed") == nil {
		t.Error("no embedded default for cascade_timed")
	}
	if GetDefaultYAML("tetris") != nil {
		t.Error("unknown game should have no default")
	}
}
