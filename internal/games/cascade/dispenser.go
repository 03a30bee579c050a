package cascade

import "math/rand"

// reshuffleFraction is the share of the full population that may be drawn
// before the reservoir is reshuffled. Reshuffling keeps long sessions from
// replaying the same tile order once the draw/return cycle stabilizes.
const reshuffleFraction = 0.75

// Dispenser owns the fixed tile population. Tiles removed from the grid
// come back here; draws hand them out again in shuffled order. The
// population never grows or shrinks.
type Dispenser struct {
	rng       *rand.Rand
	reservoir []*Tile
	drawCount int
	threshold int
}

// NewDispenser creates a shuffled reservoir with duplicates of each kind.
func NewDispenser(rng *rand.Rand, kinds, duplicates int) *Dispenser {
	d := &Dispenser{
		rng:       rng,
		reservoir: make([]*Tile, 0, kinds*duplicates),
		threshold: int(float64(kinds*duplicates) * reshuffleFraction),
	}
	for k := 0; k < kinds; k++ {
		for i := 0; i < duplicates; i++ {
			d.reservoir = append(d.reservoir, newResourceTile(Kind(k)))
		}
	}
	d.shuffle()
	return d
}

// Draw hands out the next tile, marked fresh, or nil when the reservoir
// is empty. Crossing the reshuffle threshold reshuffles what remains.
func (d *Dispenser) Draw() *Tile {
	if len(d.reservoir) == 0 {
		return nil
	}
	if d.drawCount >= d.threshold {
		d.reshuffle()
	}
	t := d.reservoir[0]
	d.reservoir = d.reservoir[1:]
	d.drawCount++
	t.fresh = true
	return t
}

// DrawAvoiding hands out the first waiting tile whose kind the blocked
// predicate clears, marked fresh. The scan visits each waiting tile at
// most once and never reshuffles mid-scan, so a clear tile is found
// whenever the reservoir holds one; when every waiting tile is blocked
// the front tile is handed out regardless. Returns nil only when the
// reservoir is empty.
func (d *Dispenser) DrawAvoiding(blocked func(Kind) bool) *Tile {
	if len(d.reservoir) == 0 {
		return nil
	}
	if d.drawCount >= d.threshold {
		d.reshuffle()
	}
	pick := 0
	for i, t := range d.reservoir {
		if !blocked(t.kind) {
			pick = i
			break
		}
	}
	t := d.reservoir[pick]
	d.reservoir = append(d.reservoir[:pick], d.reservoir[pick+1:]...)
	d.drawCount++
	t.fresh = true
	return t
}

// Return puts a tile back into the reservoir with its grid flags cleared.
func (d *Dispenser) Return(t *Tile) {
	t.state = stateInReservoir
	t.fresh = false
	t.inRowMatch = false
	t.inColumnMatch = false
	d.reservoir = append(d.reservoir, t)
}

// Remaining returns the number of tiles waiting in the reservoir.
func (d *Dispenser) Remaining() int {
	return len(d.reservoir)
}

// reshuffle reorders the reservoir and restarts the draw count.
func (d *Dispenser) reshuffle() {
	d.shuffle()
	d.drawCount = 0
}

func (d *Dispenser) shuffle() {
	d.rng.Shuffle(len(d.reservoir), func(i, j int) {
		d.reservoir[i], d.reservoir[j] = d.reservoir[j], d.reservoir[i]
	})
}
