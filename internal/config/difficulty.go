package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyCascadePreset rewrites the config's disaster pressure for a preset.
// "fixed" freezes progression by zeroing the per-wave speedup and keeping
// a single disaster on the board; the other presets retune the starting
// pressure and leave progression on. Unknown presets leave the config
// untouched.
func ApplyCascadePreset(cfg *CascadeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Disaster.InitialMoveInterval = 7.0
		cfg.Disaster.PerWaveSpeedup = 0.25
		cfg.Disaster.MaxActive = 3
		cfg.Disaster.WavesPerAdditional = 4
	case DifficultyNormal:
		cfg.Disaster.InitialMoveInterval = 5.0
		cfg.Disaster.PerWaveSpeedup = 0.5
		cfg.Disaster.MaxActive = 5
		cfg.Disaster.WavesPerAdditional = 3
	case DifficultyHard:
		cfg.Disaster.InitialMoveInterval = 3.0
		cfg.Disaster.PerWaveSpeedup = 0.75
		cfg.Disaster.MaxActive = 7
		cfg.Disaster.WavesPerAdditional = 2
	case DifficultyFixed:
		cfg.Disaster.PerWaveSpeedup = 0
		cfg.Disaster.MaxActive = 1
	}
	cfg.Normalize()
}
