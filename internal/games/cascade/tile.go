// Package cascade implements a tile-matching puzzle: swap adjacent
// resource tiles to form runs of three, destroy the disasters that crawl
// down the board, and survive waves of increasing pressure.
package cascade

// Kind identifies one of the resource tile kinds.
type Kind int

const (
	KindSun Kind = iota
	KindEarth
	KindWind
	KindWater
	KindTree

	// NumKinds is the number of distinct resource kinds.
	NumKinds = 5
)

func (k Kind) String() string {
	switch k {
	case KindSun:
		return "sun"
	case KindEarth:
		return "earth"
	case KindWind:
		return "wind"
	case KindWater:
		return "water"
	case KindTree:
		return "tree"
	default:
		return "unknown"
	}
}

// Position is a board cell address. Row 0 is the bottom row; disasters
// descend toward it.
type Position struct {
	Col int
	Row int
}

// ManhattanDistance returns the grid distance to another position.
// Orthogonal neighbors are at distance 1.
func (p Position) ManhattanDistance(o Position) int {
	dc := p.Col - o.Col
	if dc < 0 {
		dc = -dc
	}
	dr := p.Row - o.Row
	if dr < 0 {
		dr = -dr
	}
	return dc + dr
}

// tileState tracks where a tile currently lives in its lifecycle.
type tileState int

const (
	stateInReservoir tileState = iota
	stateOnGrid
	stateDestroyed
)

// Tile is either a resource tile or the grid presence of a disaster unit.
// Resource tiles cycle between the dispenser reservoir and the grid;
// disaster tiles are created with their unit and destroyed with it.
type Tile struct {
	kind     Kind
	disaster *DisasterUnit
	state    tileState
	pos      Position

	inRowMatch    bool
	inColumnMatch bool
	fresh         bool
}

func newResourceTile(k Kind) *Tile {
	return &Tile{kind: k, state: stateInReservoir}
}

// Kind returns the resource kind. Meaningless for disaster tiles.
func (t *Tile) Kind() Kind {
	return t.kind
}

// IsDisaster reports whether this tile belongs to a disaster unit.
func (t *Tile) IsDisaster() bool {
	return t.disaster != nil
}

// Position returns the tile's current grid cell.
func (t *Tile) Position() Position {
	return t.pos
}

// IsInMatch reports whether the last match pass flagged this tile.
// Disaster tiles never participate in matches.
func (t *Tile) IsInMatch() bool {
	if t.IsDisaster() {
		return false
	}
	return t.inRowMatch || t.inColumnMatch
}

// Fresh reports whether the tile was drawn since the last settle pass.
func (t *Tile) Fresh() bool {
	return t.fresh
}

// setPosition moves the tile to a cell and clears stale match flags.
func (t *Tile) setPosition(p Position) {
	t.pos = p
	t.inRowMatch = false
	t.inColumnMatch = false
}

// TileView is the read-only cell description handed to renderers.
type TileView struct {
	Kind     Kind
	Disaster bool
	InMatch  bool
	Fresh    bool
}
