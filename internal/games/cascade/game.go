package cascade

import (
	"math/rand"

	"github.com/vovakirdan/elemental-cascade/internal/core"
	"github.com/vovakirdan/elemental-cascade/internal/registry"
)

// Mode selects the wave progression the game variant runs with.
type Mode string

const (
	ModeScore Mode = "score"
	ModeTimed Mode = "timed"
)

// ParamsSource supplies engine parameters at Reset time. The cmd layer
// installs a config-backed loader; tests install fixed params.
type ParamsSource func(mode Mode) Params

// Game wraps the board engine in the platform game interface: it owns the
// cursor, translates semantic actions into swap attempts, and drives the
// board's disaster clock with fixed ticks.
type Game struct {
	mode   Mode
	rng    *rand.Rand
	tick   uint64
	params Params
	board  *Board

	cursor   Position
	selected *Position

	secondsPerTick float64
	elapsedTicks   uint64

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level variables for config, set by the cmd layer before the
// game is created (same pattern as the per-game setters the platform
// expects).
var (
	configPath       string
	difficultyPreset string
	paramsSource     ParamsSource
)

// SetConfigPath sets the config file path used at the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// GetConfigPath returns the currently selected config path.
func GetConfigPath() string {
	return configPath
}

// SetDifficultyPreset sets the difficulty preset name used at the next
// Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// GetDifficultyPreset returns the currently selected preset name.
func GetDifficultyPreset() string {
	return difficultyPreset
}

// SetParamsSource installs the loader that turns config path + preset +
// mode into engine parameters. Installed by the cmd layer to keep this
// package free of config dependencies.
func SetParamsSource(src ParamsSource) {
	paramsSource = src
}

// New creates a score-progression cascade game.
func New() *Game {
	return &Game{mode: ModeScore}
}

// NewTimed creates a time-progression cascade game.
func NewTimed() *Game {
	return &Game{mode: ModeTimed}
}

func init() {
	registry.Register("cascade", func() registry.Game {
		return New()
	})
	registry.Register("cascade_timed", func() registry.Game {
		return NewTimed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeTimed {
		return "cascade_timed"
	}
	return "cascade"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeTimed {
		return "Elemental Cascade (Timed Waves)"
	}
	return "Elemental Cascade"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false
	g.selected = nil
	g.elapsedTicks = 0

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.secondsPerTick = 1.0 / float64(tickRate)

	g.params = g.loadParams()
	g.board = NewBoard(g.params, g.rng)
	g.cursor = Position{Col: g.params.Columns / 2, Row: g.params.Rows / 2}

	g.checkScreenSize()
}

// loadParams resolves engine parameters for this run.
func (g *Game) loadParams() Params {
	var p Params
	if paramsSource != nil {
		p = paramsSource(g.mode)
	} else {
		p = DefaultParams()
	}
	if g.mode == ModeTimed {
		p.WaveMode = WaveModeTime
	} else {
		p.WaveMode = WaveModeScore
	}
	return p
}

// Board exposes the underlying board for display collaborators.
func (g *Game) Board() *Board {
	return g.board
}

// Cursor returns the current cursor position in board coordinates.
func (g *Game) Cursor() Position {
	return g.cursor
}

// Selected returns the currently selected tile position, if any.
func (g *Game) Selected() (Position, bool) {
	if g.selected == nil {
		return Position{}, false
	}
	return *g.selected, true
}

// checkScreenSize checks if the screen is large enough for the board plus
// the HUD.
func (g *Game) checkScreenSize() {
	minW := g.params.Columns*2 + 3
	minH := g.params.Rows + 4
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		// Restart is handled by the platform; nothing to simulate.
		return core.StepResult{State: g.State()}
	}

	g.board.SettleFresh()
	g.handleInput(in)

	res := g.board.Tick(g.secondsPerTick)
	if res.Lost {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// handleInput moves the cursor and resolves the select-select swap
// gesture: the first select marks a tile, a second select on an orthogonal
// neighbor attempts the swap, anywhere else moves the selection.
func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = clampInt(g.cursor.Row+1, 0, g.params.Rows-1)
	case in.Has(core.ActionDown):
		g.cursor.Row = clampInt(g.cursor.Row-1, 0, g.params.Rows-1)
	case in.Has(core.ActionLeft):
		g.cursor.Col = clampInt(g.cursor.Col-1, 0, g.params.Columns-1)
	case in.Has(core.ActionRight):
		g.cursor.Col = clampInt(g.cursor.Col+1, 0, g.params.Columns-1)
	}

	if in.Has(core.ActionBack) {
		g.selected = nil
	}

	if !in.Has(core.ActionSelect) {
		return
	}

	if g.selected == nil {
		sel := g.cursor
		g.selected = &sel
		return
	}
	if *g.selected == g.cursor {
		g.selected = nil
		return
	}
	if g.selected.ManhattanDistance(g.cursor) == 1 {
		g.board.AttemptSwap(*g.selected, g.cursor)
		g.selected = nil
		return
	}
	sel := g.cursor
	g.selected = &sel
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	wave := 0
	if g.board != nil {
		score = g.board.Score()
		wave = g.board.Wave()
	}
	return core.GameState{
		Score:    score,
		Wave:     wave,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
