package cascade

import (
	"math/rand"
	"testing"
)

// buildBoard constructs a board from an explicit layout without going
// through the dispenser fill. Rows are listed top-down for readability;
// row 0 of the grid is the bottom. The dispenser is fully stocked so
// refills during cascades always have tiles to draw.
func buildBoard(t *testing.T, rowsTopDown [][]Kind, seed int64) *Board {
	t.Helper()
	h := len(rowsTopDown)
	w := len(rowsTopDown[0])

	params := DefaultParams()
	params.Columns = w
	params.Rows = h

	rng := rand.New(rand.NewSource(seed))
	b := &Board{
		params:    params,
		rng:       rng,
		width:     w,
		height:    h,
		dispenser: NewDispenser(rng, params.Kinds, params.DuplicatesPerKind),
		waves:     NewWaveController(params),
	}
	b.grid = make([][]*Tile, w)
	for x := range b.grid {
		b.grid[x] = make([]*Tile, h)
	}
	for i, row := range rowsTopDown {
		y := h - 1 - i
		for x, k := range row {
			tile := newResourceTile(k)
			tile.state = stateOnGrid
			tile.setPosition(Position{x, y})
			b.grid[x][y] = tile
		}
	}
	return b
}

// placeDisaster puts a disaster unit at a position, recycling whatever
// resource tile occupied the cell.
func placeDisaster(b *Board, p Position, interval float64) *DisasterUnit {
	if t := b.grid[p.Col][p.Row]; t != nil {
		b.grid[p.Col][p.Row] = nil
		b.dispenser.Return(t)
	}
	u := newDisasterUnit(interval)
	u.tile.state = stateOnGrid
	u.tile.setPosition(p)
	b.grid[p.Col][p.Row] = u.tile
	b.active = append(b.active, u)
	return u
}

// patternLayout builds a rows-top-down layout with kind (x+2y) mod 5,
// which contains no runs of equal kinds in any row or column.
func patternLayout(w, h int) [][]Kind {
	rows := make([][]Kind, h)
	for i := 0; i < h; i++ {
		y := h - 1 - i
		row := make([]Kind, w)
		for x := 0; x < w; x++ {
			row[x] = Kind((x + 2*y) % NumKinds)
		}
		rows[i] = row
	}
	return rows
}

func countResourceTiles(b *Board) int {
	n := b.dispenser.Remaining()
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if t := b.grid[x][y]; t != nil && !t.IsDisaster() {
				n++
			}
		}
	}
	return n
}

func assertNoMatches(t *testing.T, b *Board) {
	t.Helper()
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if b.hasHorizontalMatch(x, y) {
				t.Errorf("horizontal match at (%d,%d)", x, y)
			}
			if b.hasVerticalMatch(x, y) {
				t.Errorf("vertical match at (%d,%d)", x, y)
			}
		}
	}
}

func TestNewBoardHasNoInitialMatches(t *testing.T) {
	for _, seed := range []int64{1, 42, 84, 12345, 987654321} {
		params := DefaultParams() // 6x8, 5 kinds, 10 duplicates
		b := NewBoard(params, rand.New(rand.NewSource(seed)))
		assertNoMatches(t, b)
	}
}

// smallestParams is the tightest board the config layer can produce:
// few kinds and a barely sufficient reservoir, which maximizes the
// pressure on guarded draws.
func smallestParams() Params {
	params := DefaultParams()
	params.Columns = 4
	params.Rows = 4
	params.Kinds = 3
	params.DuplicatesPerKind = 6
	return params
}

func TestNewBoardNoInitialMatchesSeedSweep(t *testing.T) {
	configs := []struct {
		name   string
		params Params
	}{
		{"default", DefaultParams()},
		{"smallest", smallestParams()},
	}
	for _, cfg := range configs {
		t.Run(cfg.name, func(t *testing.T) {
			for seed := int64(0); seed < 500; seed++ {
				b := NewBoard(cfg.params, rand.New(rand.NewSource(seed)))
				for x := 0; x < b.Width(); x++ {
					for y := 0; y < b.Height(); y++ {
						if b.hasHorizontalMatch(x, y) || b.hasVerticalMatch(x, y) {
							t.Fatalf("seed %d: run through (%d,%d) after setup", seed, x, y)
						}
					}
				}
			}
		})
	}
}

func TestNewBoardSpawnsFirstDisaster(t *testing.T) {
	b := NewBoard(DefaultParams(), rand.New(rand.NewSource(7)))
	if got := b.ActiveDisasters(); got != 1 {
		t.Errorf("ActiveDisasters() = %d, want 1", got)
	}
	// The disaster sits on the top row.
	found := false
	for x := 0; x < b.Width(); x++ {
		if tile := b.TileAt(Position{x, b.Height() - 1}); tile != nil && tile.IsDisaster() {
			found = true
		}
	}
	if !found {
		t.Error("no disaster on the top row after setup")
	}
}

func TestTileAtOutOfBounds(t *testing.T) {
	b := buildBoard(t, patternLayout(5, 5), 1)

	positions := []Position{
		{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {-10, -10}, {100, 100},
	}
	for _, p := range positions {
		if got := b.TileAt(p); got != nil {
			t.Errorf("TileAt(%v) = %v, want nil", p, got)
		}
		if _, ok := b.ViewAt(p); ok {
			t.Errorf("ViewAt(%v) reported occupied", p)
		}
	}
}

func TestCanSwapSymmetry(t *testing.T) {
	b := buildBoard(t, patternLayout(6, 8), 3)

	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			a := b.TileAt(Position{x, y})
			for _, np := range []Position{{x + 1, y}, {x, y + 1}} {
				c := b.TileAt(np)
				if c == nil {
					continue
				}
				if b.CanSwap(a, c) != b.CanSwap(c, a) {
					t.Errorf("CanSwap not symmetric for (%d,%d)<->%v", x, y, np)
				}
			}
		}
	}
}

func TestCanSwapRejectsNonAdjacent(t *testing.T) {
	b := buildBoard(t, patternLayout(6, 6), 3)

	pairs := []struct {
		a, c Position
	}{
		{Position{0, 0}, Position{0, 0}}, // distance 0
		{Position{0, 0}, Position{1, 1}}, // diagonal
		{Position{0, 0}, Position{2, 0}}, // distance 2
		{Position{1, 1}, Position{4, 5}},
	}
	for _, p := range pairs {
		a := b.TileAt(p.a)
		c := b.TileAt(p.c)
		if b.CanSwap(a, c) {
			t.Errorf("CanSwap(%v, %v) = true, want false", p.a, p.c)
		}
	}
}

func TestCanSwapRejectsDisasters(t *testing.T) {
	b := buildBoard(t, patternLayout(6, 6), 3)
	placeDisaster(b, Position{2, 2}, 5.0)

	d := b.TileAt(Position{2, 2})
	n := b.TileAt(Position{2, 3})
	if b.CanSwap(d, n) || b.CanSwap(n, d) {
		t.Error("CanSwap involving a disaster must be false")
	}
}

func TestCanSwapLeavesNoSideEffect(t *testing.T) {
	b := buildBoard(t, patternLayout(6, 6), 3)

	before := make(map[Position]Kind)
	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			before[Position{x, y}] = b.TileAt(Position{x, y}).Kind()
		}
	}

	for x := 0; x < b.Width()-1; x++ {
		for y := 0; y < b.Height(); y++ {
			b.CanSwap(b.TileAt(Position{x, y}), b.TileAt(Position{x + 1, y}))
		}
	}

	for p, k := range before {
		tile := b.TileAt(p)
		if tile == nil || tile.Kind() != k {
			t.Fatalf("board mutated at %v after CanSwap probes", p)
		}
		if tile.Position() != p {
			t.Fatalf("tile at %v carries stale position %v", p, tile.Position())
		}
	}
}

func TestAttemptSwapSingleMatchScores300(t *testing.T) {
	// Pattern layout with four cells overridden so that swapping
	// (3,3)<->(4,3) completes a vertical Sun run in the rightmost column
	// and nothing else. The refilled cells sit on the right edge where a
	// guarded draw can never complete a new run, so the cascade resolves
	// in exactly one pass: 3 tiles x 100.
	layout := [][]Kind{
		{KindWater, KindTree, KindSun, KindEarth, KindSun},  // row 4 (top)
		{KindEarth, KindWind, KindWater, KindSun, KindWind}, // row 3
		{KindTree, KindSun, KindEarth, KindWind, KindSun},   // row 2
		{KindWind, KindWater, KindTree, KindSun, KindEarth}, // row 1
		{KindSun, KindEarth, KindWind, KindWater, KindTree}, // row 0
	}
	b := buildBoard(t, layout, 99)
	assertNoMatches(t, b)

	out := b.AttemptSwap(Position{3, 3}, Position{4, 3})
	if !out.Accepted {
		t.Fatal("swap should be legal")
	}
	if out.ScoreDelta != 300 {
		t.Errorf("ScoreDelta = %d, want 300", out.ScoreDelta)
	}
	if b.Score() != 300 {
		t.Errorf("Score() = %d, want 300", b.Score())
	}
	assertNoMatches(t, b)

	// Every cell is occupied again after the refill.
	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			if b.TileAt(Position{x, y}) == nil {
				t.Errorf("cell (%d,%d) left empty after cascade", x, y)
			}
		}
	}
}

func TestAttemptSwapRejectsWithoutMatch(t *testing.T) {
	b := buildBoard(t, patternLayout(5, 5), 11)

	// No swap on the pattern board produces a match.
	out := b.AttemptSwap(Position{1, 1}, Position{2, 1})
	if out.Accepted {
		t.Error("swap without a resulting match must be rejected")
	}
	if out.ScoreDelta != 0 {
		t.Errorf("rejected swap ScoreDelta = %d, want 0", out.ScoreDelta)
	}
	if b.TileAt(Position{1, 1}).Kind() != Kind((1+2)%NumKinds) {
		t.Error("rejected swap must not mutate the board")
	}
}

func TestAttemptSwapRejectsOutOfBounds(t *testing.T) {
	b := buildBoard(t, patternLayout(5, 5), 11)

	out := b.AttemptSwap(Position{-1, 0}, Position{0, 0})
	if out.Accepted || out.ScoreDelta != 0 {
		t.Error("out-of-bounds swap must be rejected with zero score")
	}
}

func TestResourceTileConservation(t *testing.T) {
	params := DefaultParams() // 6x8, 5 kinds, 10 duplicates = 50 tiles
	rng := rand.New(rand.NewSource(21))
	b := NewBoard(params, rng)

	total := params.Kinds * params.DuplicatesPerKind
	if got := countResourceTiles(b); got != total {
		t.Fatalf("after setup: %d resource tiles, want %d", got, total)
	}

	// Hammer the board with swap attempts and disaster ticks.
	for x := 0; x < b.Width()-1; x++ {
		for y := 0; y < b.Height()-1; y++ {
			b.AttemptSwap(Position{x, y}, Position{x + 1, y})
			b.AttemptSwap(Position{x, y}, Position{x, y + 1})
		}
	}
	for i := 0; i < 50 && !b.Lost(); i++ {
		b.Tick(0.5)
	}

	if got := countResourceTiles(b); got != total {
		t.Errorf("after play: %d resource tiles, want %d", got, total)
	}
}

func TestCascadeLeavesNoRuns(t *testing.T) {
	for _, seed := range []int64{5, 17, 4242} {
		b := NewBoard(DefaultParams(), rand.New(rand.NewSource(seed)))

		// Execute every legal swap we can find once.
		swaps := 0
		for x := 0; x < b.Width() && swaps < 10; x++ {
			for y := 0; y < b.Height() && swaps < 10; y++ {
				if b.AttemptSwap(Position{x, y}, Position{x + 1, y}).Accepted {
					swaps++
				}
			}
		}
		assertNoMatches(t, b)
	}
}

func TestCascadeTerminatesOnSmallBoard(t *testing.T) {
	// Unconditional swaps force cascades regardless of legality; every
	// resolution must come back, leave no runs, and conserve the tile
	// population even when refills drain the reservoir.
	params := smallestParams()
	total := params.Kinds * params.DuplicatesPerKind

	for _, seed := range []int64{2, 84, 183, 7777} {
		b := NewBoard(params, rand.New(rand.NewSource(seed)))

		for x := 0; x < b.Width()-1; x++ {
			for y := 0; y < b.Height(); y++ {
				a := b.TileAt(Position{x, y})
				c := b.TileAt(Position{x + 1, y})
				if a == nil || c == nil || a.IsDisaster() || c.IsDisaster() {
					continue
				}
				b.SwapTiles(a, c)
				assertNoMatches(t, b)
			}
		}
		if got := countResourceTiles(b); got != total {
			t.Errorf("seed %d: %d resource tiles, want %d", seed, got, total)
		}
	}
}

func TestDisasterDescendsOneRowPerMove(t *testing.T) {
	b := buildBoard(t, patternLayout(5, 5), 77)
	u := placeDisaster(b, Position{2, 3}, 1.0)

	prevRow := u.Position().Row
	for i := 0; i < 10 && !b.Lost(); i++ {
		res := b.Tick(1.0)
		if u.Destroyed() {
			return
		}
		if res.Lost {
			break
		}
		if got := u.Position().Row; got != prevRow-1 {
			t.Fatalf("after move %d: row %d, want %d", i+1, got, prevRow-1)
		}
		prevRow--
	}
	if !b.Lost() {
		t.Error("disaster never reached the bottom")
	}
}

func TestDisasterBlockedByUnitsBelowSkipsMove(t *testing.T) {
	// Disasters occupy the straight-down cell and both drift targets, so
	// the unit has nowhere to go. It stays put for that interval instead
	// of descending; the game is not lost and nothing scores.
	b := buildBoard(t, patternLayout(5, 5), 19)
	placeDisaster(b, Position{1, 1}, 100.0)
	placeDisaster(b, Position{2, 1}, 100.0)
	placeDisaster(b, Position{3, 1}, 100.0)
	u := placeDisaster(b, Position{2, 2}, 1.0)

	lost, delta := b.moveDisaster(u)
	if lost {
		t.Fatal("fully blocked unit must not lose the game")
	}
	if delta != 0 {
		t.Errorf("blocked move scored %d, want 0", delta)
	}
	if got := u.Position(); got != (Position{2, 2}) {
		t.Errorf("blocked unit at %v, want it to stay at (2,2)", got)
	}
}

func TestLossReportedExactlyOnce(t *testing.T) {
	b := buildBoard(t, patternLayout(5, 5), 13)
	placeDisaster(b, Position{2, 0}, 0.5)

	res := b.Tick(1.0)
	if !res.Lost {
		t.Fatal("expected loss on first tick")
	}
	if !b.Lost() {
		t.Fatal("board should be in the loss state")
	}

	for i := 0; i < 5; i++ {
		if again := b.Tick(1.0); again.Lost {
			t.Fatal("loss must be reported exactly once")
		}
	}

	// The board is inert after the loss.
	if out := b.AttemptSwap(Position{0, 0}, Position{1, 0}); out.Accepted {
		t.Error("swaps must be rejected after the loss")
	}
}

func TestDisasterDestroyedByAdjacentMatch(t *testing.T) {
	// Same single-match setup as the scoring test, with a disaster parked
	// next to the run that forms in the rightmost column.
	layout := [][]Kind{
		{KindWater, KindTree, KindSun, KindEarth, KindSun},
		{KindEarth, KindWind, KindWater, KindSun, KindWind},
		{KindTree, KindSun, KindEarth, KindWind, KindSun},
		{KindWind, KindWater, KindTree, KindSun, KindEarth},
		{KindSun, KindEarth, KindWind, KindWater, KindTree},
	}
	b := buildBoard(t, layout, 31)
	u := placeDisaster(b, Position{3, 2}, 100.0) // left of (4,2), part of the run

	out := b.AttemptSwap(Position{3, 3}, Position{4, 3})
	if !out.Accepted {
		t.Fatal("swap should be legal")
	}
	if !u.Destroyed() {
		t.Fatal("disaster adjacent to the match must be destroyed")
	}
	// 3 resource tiles + 1 disaster, each 100, plus the disaster bounty.
	want := 4*100 + b.params.ScorePerDisaster
	if out.ScoreDelta != want {
		t.Errorf("ScoreDelta = %d, want %d", out.ScoreDelta, want)
	}

	// The unit purges from the active set on the next tick (the tick may
	// spawn a fresh disaster, so check membership, not the count).
	b.Tick(0.01)
	for _, active := range b.active {
		if active == u {
			t.Error("destroyed unit still in the active set after purge")
		}
	}
}

func TestSpawnReplacesResourceTile(t *testing.T) {
	b := buildBoard(t, patternLayout(6, 6), 55)
	before := countResourceTiles(b)

	b.spawnDisaster()

	if got := b.ActiveDisasters(); got != 1 {
		t.Fatalf("ActiveDisasters() = %d, want 1", got)
	}
	if got := countResourceTiles(b); got != before {
		t.Errorf("displaced tile not recycled: %d resource tiles, want %d", got, before)
	}
}

func TestWillCreateMatchLookBack(t *testing.T) {
	// Two Suns to the left of (2,0) and two Winds below (4,2).
	layout := [][]Kind{
		{KindTree, KindWater, KindEarth, KindTree, KindWind}, // row 2 (top)
		{KindWater, KindEarth, KindTree, KindSun, KindWind},  // row 1
		{KindSun, KindSun, KindTree, KindWater, KindWind},    // row 0
	}
	b := buildBoard(t, layout, 8)
	// Free the probe cells so occupancy mirrors a fill in progress.
	b.grid[2][0] = nil
	b.grid[4][2] = nil

	tests := []struct {
		name string
		x, y int
		kind Kind
		want bool
	}{
		{"completes horizontal run", 2, 0, KindSun, true},
		{"different kind horizontal", 2, 0, KindTree, false},
		{"completes vertical run", 4, 2, KindWind, true},
		{"different kind vertical", 4, 2, KindSun, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.willCreateMatch(tt.x, tt.y, tt.kind); got != tt.want {
				t.Errorf("willCreateMatch(%d,%d,%v) = %v, want %v",
					tt.x, tt.y, tt.kind, got, tt.want)
			}
		})
	}
}

func TestTimeUntilNextDisasterMove(t *testing.T) {
	b := buildBoard(t, patternLayout(6, 6), 9)
	if got := b.TimeUntilNextDisasterMove(); got != 0 {
		t.Errorf("with no disasters: %v, want 0", got)
	}

	placeDisaster(b, Position{1, 4}, 4.0)
	placeDisaster(b, Position{4, 4}, 2.0)
	if got := b.TimeUntilNextDisasterMove(); got != 2.0 {
		t.Errorf("TimeUntilNextDisasterMove() = %v, want 2.0", got)
	}
}
