package cascade

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// CellSnapshot is one grid cell in a snapshot: the kind index for a
// resource tile, -1 for a disaster, -2 for an empty cell.
type CellSnapshot int

const (
	cellDisaster CellSnapshot = -1
	cellEmpty    CellSnapshot = -2
)

// Snapshot captures the complete game state for determinism testing and
// replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Score     int
	Wave      int
	Disasters int
	CursorCol int
	CursorRow int
	Reservoir int
	Grid      [][]CellSnapshot // [col][row], row 0 at the bottom
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		CursorCol: g.cursor.Col,
		CursorRow: g.cursor.Row,
		State:     state,
	}
	if g.board == nil {
		return snap
	}

	snap.Score = g.board.Score()
	snap.Wave = g.board.Wave()
	snap.Disasters = g.board.ActiveDisasters()
	snap.Reservoir = g.board.dispenser.Remaining()

	snap.Grid = make([][]CellSnapshot, g.board.width)
	for x := 0; x < g.board.width; x++ {
		snap.Grid[x] = make([]CellSnapshot, g.board.height)
		for y := 0; y < g.board.height; y++ {
			t := g.board.grid[x][y]
			switch {
			case t == nil:
				snap.Grid[x][y] = cellEmpty
			case t.IsDisaster():
				snap.Grid[x][y] = cellDisaster
			default:
				snap.Grid[x][y] = CellSnapshot(t.kind)
			}
		}
	}
	return snap
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Tick != other.Tick || s.Mode != other.Mode || s.Score != other.Score ||
		s.Wave != other.Wave || s.Disasters != other.Disasters ||
		s.CursorCol != other.CursorCol || s.CursorRow != other.CursorRow ||
		s.Reservoir != other.Reservoir || s.State != other.State {
		return false
	}
	if len(s.Grid) != len(other.Grid) {
		return false
	}
	for x := range s.Grid {
		if len(s.Grid[x]) != len(other.Grid[x]) {
			return false
		}
		for y := range s.Grid[x] {
			if s.Grid[x][y] != other.Grid[x][y] {
				return false
			}
		}
	}
	return true
}
