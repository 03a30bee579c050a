package cascade

// WaveMode selects how waves advance.
type WaveMode string

const (
	WaveModeScore WaveMode = "score"
	WaveModeTime  WaveMode = "time"
)

// Params holds every engine tunable. The config package builds these from
// YAML; tests build them directly.
type Params struct {
	Columns           int
	Rows              int
	Kinds             int
	DuplicatesPerKind int

	InitialMoveInterval float64
	MinMoveInterval     float64
	MaxMoveInterval     float64
	PerWaveSpeedup      float64

	MaxActiveDisasters         int
	WavesPerAdditionalDisaster int
	ScorePerDisaster           int
	SpawnRetries               int

	WaveMode       WaveMode
	ScorePerWave   int
	WaveMultiplier float64
	TimePerWave    float64
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Columns:           6,
		Rows:              8,
		Kinds:             NumKinds,
		DuplicatesPerKind: 10,

		InitialMoveInterval: 5.0,
		MinMoveInterval:     1.0,
		MaxMoveInterval:     10.0,
		PerWaveSpeedup:      0.5,

		MaxActiveDisasters:         5,
		WavesPerAdditionalDisaster: 3,
		ScorePerDisaster:           500,
		SpawnRetries:               8,

		WaveMode:       WaveModeScore,
		ScorePerWave:   1000,
		WaveMultiplier: 1.5,
		TimePerWave:    30.0,
	}
}
