package cascade

// WaveController tracks the current wave and derives the disaster
// pressure from it: how many units may be active and how fast they move.
type WaveController struct {
	params    Params
	wave      int
	sinceWave float64
}

func NewWaveController(params Params) *WaveController {
	return &WaveController{params: params, wave: 1}
}

// Wave returns the current wave number, starting at 1.
func (w *WaveController) Wave() int {
	return w.wave
}

// Observe feeds the controller the current score and the elapsed tick
// time. At most one wave advances per call.
//
// In score mode the threshold for staying on wave N is
// scorePerWave * multiplier * (N-1), so wave 1 promotes on the first
// observation. That front-loads the ramp: the game opens on wave 2
// pressure and the real gates start at wave 3.
func (w *WaveController) Observe(score int, dt float64) {
	switch w.params.WaveMode {
	case WaveModeTime:
		w.sinceWave += dt
		if w.sinceWave >= w.params.TimePerWave {
			w.NextWave()
		}
	default:
		threshold := float64(w.params.ScorePerWave) * w.params.WaveMultiplier * float64(w.wave-1)
		if float64(score) >= threshold {
			w.NextWave()
		}
	}
}

// NextWave advances to the next wave and restarts the wave timer.
func (w *WaveController) NextWave() {
	w.wave++
	w.sinceWave = 0
}

// MaxDisasters returns how many units may be active on the current wave.
func (w *WaveController) MaxDisasters() int {
	n := w.wave / w.params.WavesPerAdditionalDisaster
	if n < 1 {
		n = 1
	}
	if n > w.params.MaxActiveDisasters {
		n = w.params.MaxActiveDisasters
	}
	return n
}

// MoveInterval returns the seconds between disaster moves on the current
// wave, clamped to the configured bounds.
func (w *WaveController) MoveInterval() float64 {
	interval := w.params.InitialMoveInterval - float64(w.wave-1)*w.params.PerWaveSpeedup
	if interval < w.params.MinMoveInterval {
		interval = w.params.MinMoveInterval
	}
	if interval > w.params.MaxMoveInterval {
		interval = w.params.MaxMoveInterval
	}
	return interval
}
