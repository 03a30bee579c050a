package cascade

import "math/rand"

// scorePerTile is the score awarded for each removed board tile,
// disasters included. Destroyed disasters additionally pay the
// per-disaster bounty from the params.
const scorePerTile = 100

// SwapResult reports what a resolved cascade removed. TilesRemoved counts
// every cleared cell, destroyed disasters included.
type SwapResult struct {
	TilesRemoved       int
	DisastersDestroyed int
}

// SwapOutcome is the result of a player swap attempt.
type SwapOutcome struct {
	Accepted   bool
	ScoreDelta int
}

// TickResult reports what one simulation tick changed. Lost is true only
// on the tick the game is lost; later ticks are inert.
type TickResult struct {
	Lost       bool
	ScoreDelta int
}

// Board is the full game state: the tile grid, the dispenser reservoir,
// the active disaster units, and the wave controller that scales their
// pressure. Grid cells are addressed [col][row] with row 0 at the bottom.
type Board struct {
	params Params
	rng    *rand.Rand

	width  int
	height int
	grid   [][]*Tile

	dispenser *Dispenser
	waves     *WaveController
	active    []*DisasterUnit

	score   int
	elapsed float64
	lost    bool
}

// NewBoard creates a board, deals it with guarded draws so no initial
// runs exist, and spawns the first disaster on the top row.
func NewBoard(params Params, rng *rand.Rand) *Board {
	b := &Board{
		params:    params,
		rng:       rng,
		width:     params.Columns,
		height:    params.Rows,
		dispenser: NewDispenser(rng, params.Kinds, params.DuplicatesPerKind),
		waves:     NewWaveController(params),
	}
	b.grid = make([][]*Tile, b.width)
	for x := range b.grid {
		b.grid[x] = make([]*Tile, b.height)
	}
	b.fillInitial()
	b.spawnDisaster()
	return b
}

// fillInitial deals the whole grid left-to-right, bottom-to-top with
// guarded draws. Near reservoir exhaustion a forced placement can still
// leave a run; such a deal is swept back into the reservoir and redealt
// from a fresh shuffle until the board comes up clean.
func (b *Board) fillInitial() {
	for {
		for y := 0; y < b.height; y++ {
			for x := 0; x < b.width; x++ {
				b.placeFresh(x, y)
			}
		}
		if !b.hasAnyRun() {
			return
		}
		for x := 0; x < b.width; x++ {
			for y := 0; y < b.height; y++ {
				b.removeTile(Position{x, y})
			}
		}
		b.dispenser.reshuffle()
	}
}

// hasAnyRun reports whether any cell participates in a run of three.
func (b *Board) hasAnyRun() bool {
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if b.hasHorizontalMatch(x, y) || b.hasVerticalMatch(x, y) {
				return true
			}
		}
	}
	return false
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Score returns the accumulated score.
func (b *Board) Score() int { return b.score }

// Lost reports whether a disaster has reached the bottom row.
func (b *Board) Lost() bool { return b.lost }

// Wave returns the current wave number.
func (b *Board) Wave() int { return b.waves.Wave() }

// Waves exposes the wave controller.
func (b *Board) Waves() *WaveController { return b.waves }

// Elapsed returns the total simulated time in seconds.
func (b *Board) Elapsed() float64 { return b.elapsed }

// TileAt returns the tile at a position, or nil when the position is out
// of bounds or the cell is empty.
func (b *Board) TileAt(p Position) *Tile {
	if p.Col < 0 || p.Col >= b.width || p.Row < 0 || p.Row >= b.height {
		return nil
	}
	return b.grid[p.Col][p.Row]
}

// ViewAt returns the render view of a cell and whether it is occupied.
func (b *Board) ViewAt(p Position) (TileView, bool) {
	t := b.TileAt(p)
	if t == nil {
		return TileView{}, false
	}
	return TileView{
		Kind:     t.kind,
		Disaster: t.IsDisaster(),
		InMatch:  t.IsInMatch(),
		Fresh:    t.fresh,
	}, true
}

// ActiveDisasters returns the number of live disaster units.
func (b *Board) ActiveDisasters() int {
	n := 0
	for _, u := range b.active {
		if !u.destroyed {
			n++
		}
	}
	return n
}

// TimeUntilNextDisasterMove returns the shortest move countdown across
// live units, or 0 when none are active.
func (b *Board) TimeUntilNextDisasterMove() float64 {
	min := 0.0
	found := false
	for _, u := range b.active {
		if u.destroyed {
			continue
		}
		if !found || u.untilMove < min {
			min = u.untilMove
			found = true
		}
	}
	return min
}

// sameKind reports whether the cell holds a resource tile of the kind.
func (b *Board) sameKind(x, y int, k Kind) bool {
	t := b.TileAt(Position{x, y})
	return t != nil && !t.IsDisaster() && t.kind == k
}

// willCreateMatch reports whether placing a tile of the kind at (x, y)
// would complete a run of three with the tiles already on the grid: four
// directional checks, each needing both cells at offsets 1 and 2 on one
// side to hold the kind. Used to guard dispenser draws during fills.
func (b *Board) willCreateMatch(x, y int, k Kind) bool {
	if b.sameKind(x-2, y, k) && b.sameKind(x-1, y, k) {
		return true
	}
	if b.sameKind(x+1, y, k) && b.sameKind(x+2, y, k) {
		return true
	}
	if b.sameKind(x, y-2, k) && b.sameKind(x, y-1, k) {
		return true
	}
	if b.sameKind(x, y+1, k) && b.sameKind(x, y+2, k) {
		return true
	}
	return false
}

// hasHorizontalMatch reports whether the tile at (x, y) is part of a
// horizontal run of three.
func (b *Board) hasHorizontalMatch(x, y int) bool {
	t := b.TileAt(Position{x, y})
	if t == nil || t.IsDisaster() {
		return false
	}
	k := t.kind
	if b.sameKind(x-2, y, k) && b.sameKind(x-1, y, k) {
		return true
	}
	if b.sameKind(x-1, y, k) && b.sameKind(x+1, y, k) {
		return true
	}
	if b.sameKind(x+1, y, k) && b.sameKind(x+2, y, k) {
		return true
	}
	return false
}

// hasVerticalMatch reports whether the tile at (x, y) is part of a
// vertical run of three.
func (b *Board) hasVerticalMatch(x, y int) bool {
	t := b.TileAt(Position{x, y})
	if t == nil || t.IsDisaster() {
		return false
	}
	k := t.kind
	if b.sameKind(x, y-2, k) && b.sameKind(x, y-1, k) {
		return true
	}
	if b.sameKind(x, y-1, k) && b.sameKind(x, y+1, k) {
		return true
	}
	if b.sameKind(x, y+1, k) && b.sameKind(x, y+2, k) {
		return true
	}
	return false
}

// CanSwap reports whether two tiles form a legal player swap: both on the
// grid, orthogonal neighbors, neither a disaster, and the swap produces
// at least one run. The check is speculative; the board is unchanged
// afterward.
func (b *Board) CanSwap(a, c *Tile) bool {
	if a == nil || c == nil || a == c {
		return false
	}
	if a.state != stateOnGrid || c.state != stateOnGrid {
		return false
	}
	if a.IsDisaster() || c.IsDisaster() {
		return false
	}
	if a.pos.ManhattanDistance(c.pos) != 1 {
		return false
	}

	p1, p2 := a.pos, c.pos
	b.swapCells(p1, p2)
	ok := b.hasHorizontalMatch(p1.Col, p1.Row) || b.hasVerticalMatch(p1.Col, p1.Row) ||
		b.hasHorizontalMatch(p2.Col, p2.Row) || b.hasVerticalMatch(p2.Col, p2.Row)
	b.swapCells(p1, p2)
	return ok
}

// swapCells exchanges the contents of two in-bounds cells.
func (b *Board) swapCells(p1, p2 Position) {
	t1 := b.grid[p1.Col][p1.Row]
	t2 := b.grid[p2.Col][p2.Row]
	b.grid[p1.Col][p1.Row] = t2
	b.grid[p2.Col][p2.Row] = t1
	if t1 != nil {
		t1.setPosition(p2)
	}
	if t2 != nil {
		t2.setPosition(p1)
	}
}

// SwapTiles swaps two tiles unconditionally and resolves the resulting
// cascade: remove runs, refill, repeat until the board is stable. The
// loop is hard-capped at one pass per board cell; every pass clears at
// least three cells.
func (b *Board) SwapTiles(a, c *Tile) SwapResult {
	b.swapCells(a.pos, c.pos)

	var res SwapResult
	for pass := 0; pass < b.width*b.height; pass++ {
		total, destroyed := b.removeMatches()
		if total == 0 {
			break
		}
		res.TilesRemoved += total
		res.DisastersDestroyed += destroyed
		b.refill()
	}
	return res
}

// AttemptSwap validates and executes a player swap between two
// positions. Illegal swaps leave the board untouched; legal ones resolve
// the cascade and add the score.
func (b *Board) AttemptSwap(p1, p2 Position) SwapOutcome {
	if b.lost {
		return SwapOutcome{}
	}
	a := b.TileAt(p1)
	c := b.TileAt(p2)
	if !b.CanSwap(a, c) {
		return SwapOutcome{}
	}

	r := b.SwapTiles(a, c)
	delta := r.TilesRemoved*scorePerTile + r.DisastersDestroyed*b.params.ScorePerDisaster
	b.score += delta
	return SwapOutcome{Accepted: true, ScoreDelta: delta}
}

// removeMatches flags every run of three and clears the flagged tiles.
// A disaster orthogonally adjacent to a removed tile is destroyed first.
// Returns the number of cleared cells and how many of them were
// disasters.
func (b *Board) removeMatches() (int, int) {
	for x := 1; x < b.width-1; x++ {
		for y := 0; y < b.height; y++ {
			t := b.grid[x][y]
			if t == nil || t.IsDisaster() {
				continue
			}
			if b.sameKind(x-1, y, t.kind) && b.sameKind(x+1, y, t.kind) {
				b.grid[x-1][y].inRowMatch = true
				t.inRowMatch = true
				b.grid[x+1][y].inRowMatch = true
			}
		}
	}
	for x := 0; x < b.width; x++ {
		for y := 1; y < b.height-1; y++ {
			t := b.grid[x][y]
			if t == nil || t.IsDisaster() {
				continue
			}
			if b.sameKind(x, y-1, t.kind) && b.sameKind(x, y+1, t.kind) {
				b.grid[x][y-1].inColumnMatch = true
				t.inColumnMatch = true
				b.grid[x][y+1].inColumnMatch = true
			}
		}
	}

	total, destroyed := 0, 0
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			t := b.grid[x][y]
			if t == nil || !t.IsInMatch() {
				continue
			}
			neighbors := []Position{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}}
			for _, n := range neighbors {
				nt := b.TileAt(n)
				if nt != nil && nt.IsDisaster() && !nt.disaster.destroyed {
					b.destroyDisaster(nt.disaster)
					total++
					destroyed++
				}
			}
			b.removeTile(Position{x, y})
			total++
		}
	}
	return total, destroyed
}

// removeTile clears a cell and returns the tile to the reservoir.
func (b *Board) removeTile(p Position) {
	t := b.grid[p.Col][p.Row]
	if t == nil {
		return
	}
	b.grid[p.Col][p.Row] = nil
	b.dispenser.Return(t)
}

// destroyDisaster takes a unit off the grid. The unit stays in the
// active list until the next tick purges it, so callers iterating the
// list this tick still see it.
func (b *Board) destroyDisaster(u *DisasterUnit) {
	p := u.Position()
	if b.grid[p.Col][p.Row] == u.tile {
		b.grid[p.Col][p.Row] = nil
	}
	u.destroyed = true
	u.tile.state = stateDestroyed
}

// refill compacts every column downward and fills the remaining holes
// with guarded draws. Disasters descend only on their own clock, so
// gravity neither pulls them down nor drops tiles past them; a hole
// under a disaster is filled by a fresh draw instead.
func (b *Board) refill() {
	for x := 0; x < b.width; x++ {
		write := 0
		for y := 0; y < b.height; y++ {
			t := b.grid[x][y]
			if t == nil {
				continue
			}
			if t.IsDisaster() {
				write = y + 1
				continue
			}
			if write != y {
				b.grid[x][write] = t
				t.setPosition(Position{x, write})
				b.grid[x][y] = nil
			}
			write++
		}
		for y := 0; y < b.height; y++ {
			if b.grid[x][y] == nil {
				b.placeFresh(x, y)
			}
		}
	}
}

// placeFresh fills a cell from the dispenser, avoiding draws that would
// complete a run. When every waiting tile would complete one, the draw
// falls back to the front tile so the cell never stays empty.
func (b *Board) placeFresh(x, y int) {
	tile := b.dispenser.DrawAvoiding(func(k Kind) bool {
		return b.willCreateMatch(x, y, k)
	})
	if tile == nil {
		return
	}
	tile.state = stateOnGrid
	tile.setPosition(Position{x, y})
	b.grid[x][y] = tile
}

// SettleFresh clears the fresh flag on every grid tile. The display
// layer calls this once the previous frame has shown the new tiles.
func (b *Board) SettleFresh() {
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if t := b.grid[x][y]; t != nil {
				t.fresh = false
			}
		}
	}
}

// spawnDisaster places a new unit on a random top-row cell, retrying a
// bounded number of times when the picked cell already holds a disaster.
// A displaced resource tile goes back to the reservoir.
func (b *Board) spawnDisaster() {
	top := b.height - 1
	col := b.rng.Intn(b.width)
	for i := 0; i < b.params.SpawnRetries; i++ {
		t := b.grid[col][top]
		if t == nil || !t.IsDisaster() {
			break
		}
		col = b.rng.Intn(b.width)
	}
	if t := b.grid[col][top]; t != nil {
		if t.IsDisaster() {
			return
		}
		b.grid[col][top] = nil
		b.dispenser.Return(t)
	}

	u := newDisasterUnit(b.waves.MoveInterval())
	u.tile.state = stateOnGrid
	u.tile.setPosition(Position{col, top})
	b.grid[col][top] = u.tile
	b.active = append(b.active, u)
}

// Tick advances the simulation: purge destroyed units, let the wave
// controller observe progress, spawn up to the wave's disaster cap, and
// step every unit whose countdown fired. A unit stepping below row 0
// loses the game; the board is inert afterward.
func (b *Board) Tick(dt float64) TickResult {
	var res TickResult
	if b.lost {
		return res
	}
	b.elapsed += dt

	b.purgeDisasters()
	b.waves.Observe(b.score, dt)
	if b.ActiveDisasters() < b.waves.MaxDisasters() {
		b.spawnDisaster()
	}

	for _, u := range b.active {
		if u.destroyed {
			continue
		}
		u.untilMove -= dt
		if u.untilMove > 0 {
			continue
		}
		lost, delta := b.moveDisaster(u)
		res.ScoreDelta += delta
		if lost {
			b.lost = true
			res.Lost = true
			return res
		}
		u.untilMove = u.moveInterval
	}
	return res
}

// moveDisaster steps a unit one row down with a random sideways drift.
// Reports whether the step fell off the bottom, and any cascade score
// from the tile the unit displaced.
func (b *Board) moveDisaster(u *DisasterUnit) (bool, int) {
	p := u.Position()
	if p.Row-1 < 0 {
		return true, 0
	}

	target := Position{p.Col + b.stepDelta(p), p.Row - 1}
	dest := b.grid[target.Col][target.Row]
	if dest != nil && dest.IsDisaster() {
		// Drift blocked by another unit; fall straight down instead.
		target = Position{p.Col, p.Row - 1}
		dest = b.grid[target.Col][target.Row]
		if dest != nil && dest.IsDisaster() {
			return false, 0
		}
	}

	if dest == nil {
		b.grid[p.Col][p.Row] = nil
		u.tile.setPosition(target)
		b.grid[target.Col][target.Row] = u.tile
		return false, 0
	}

	r := b.SwapTiles(u.tile, dest)
	delta := r.TilesRemoved*scorePerTile + r.DisastersDestroyed*b.params.ScorePerDisaster
	b.score += delta
	return false, delta
}

// stepDelta picks the sideways drift for a step, excluding directions
// that would leave the board.
func (b *Board) stepDelta(p Position) int {
	choices := make([]int, 0, 3)
	if p.Col > 0 {
		choices = append(choices, -1)
	}
	choices = append(choices, 0)
	if p.Col < b.width-1 {
		choices = append(choices, 1)
	}
	return choices[b.rng.Intn(len(choices))]
}

// purgeDisasters drops destroyed units from the active list.
func (b *Board) purgeDisasters() {
	keep := b.active[:0]
	for _, u := range b.active {
		if u.destroyed {
			continue
		}
		keep = append(keep, u)
	}
	b.active = keep
}
