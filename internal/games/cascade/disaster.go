package cascade

// DisasterUnit is one crawling hazard. It owns its grid tile and a move
// countdown; the board advances the countdown each tick and steps the
// unit one row down when it fires.
type DisasterUnit struct {
	tile         *Tile
	moveInterval float64
	untilMove    float64
	destroyed    bool
}

func newDisasterUnit(interval float64) *DisasterUnit {
	u := &DisasterUnit{
		moveInterval: interval,
		untilMove:    interval,
	}
	u.tile = &Tile{disaster: u, state: stateInReservoir}
	return u
}

// Position returns the unit's current grid cell.
func (u *DisasterUnit) Position() Position {
	return u.tile.pos
}

// MoveInterval returns the seconds between the unit's moves.
func (u *DisasterUnit) MoveInterval() float64 {
	return u.moveInterval
}

// TimeUntilMove returns the seconds until the unit next steps down.
func (u *DisasterUnit) TimeUntilMove() float64 {
	return u.untilMove
}

// Destroyed reports whether a match has taken this unit out. Destroyed
// units stay in the board's active list until the next tick purges them.
func (u *DisasterUnit) Destroyed() bool {
	return u.destroyed
}
