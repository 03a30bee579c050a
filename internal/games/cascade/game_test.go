package cascade

import (
	"testing"

	"github.com/vovakirdan/elemental-cascade/internal/core"
)

func testRuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// scriptFrame produces a deterministic input pattern that mixes cursor
// movement with select presses so swaps actually happen.
func scriptFrame(tick int) core.InputFrame {
	in := core.NewInputFrame()
	switch tick % 11 {
	case 0:
		in.Set(core.ActionLeft)
	case 2:
		in.Set(core.ActionSelect)
	case 3:
		in.Set(core.ActionRight)
	case 5:
		in.Set(core.ActionSelect)
	case 7:
		in.Set(core.ActionUp)
	case 9:
		in.Set(core.ActionDown)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	a := New()
	b := New()
	a.Reset(testRuntimeConfig(1234))
	b.Reset(testRuntimeConfig(1234))

	for i := 0; i < 900; i++ {
		a.Step(scriptFrame(i))
		b.Step(scriptFrame(i))
		if i%60 == 0 && !a.Snapshot().Equal(b.Snapshot()) {
			t.Fatalf("same-seed games diverged at tick %d", i)
		}
	}
	if !a.Snapshot().Equal(b.Snapshot()) {
		t.Fatal("same-seed games diverged by the final tick")
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New()
	b := New()
	a.Reset(testRuntimeConfig(1))
	b.Reset(testRuntimeConfig(2))

	if a.Snapshot().Equal(b.Snapshot()) {
		t.Error("different seeds produced identical boards")
	}
}

func TestCursorClampsToBoard(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(5))

	press := func(a core.Action) {
		in := core.NewInputFrame()
		in.Set(a)
		g.Step(in)
	}

	for i := 0; i < 20; i++ {
		press(core.ActionLeft)
	}
	if g.Cursor().Col != 0 {
		t.Errorf("cursor col = %d, want 0", g.Cursor().Col)
	}
	for i := 0; i < 20; i++ {
		press(core.ActionDown)
	}
	if g.Cursor().Row != 0 {
		t.Errorf("cursor row = %d, want 0", g.Cursor().Row)
	}
	for i := 0; i < 20; i++ {
		press(core.ActionRight)
	}
	if g.Cursor().Col != g.params.Columns-1 {
		t.Errorf("cursor col = %d, want %d", g.Cursor().Col, g.params.Columns-1)
	}
	for i := 0; i < 20; i++ {
		press(core.ActionUp)
	}
	if g.Cursor().Row != g.params.Rows-1 {
		t.Errorf("cursor row = %d, want %d", g.Cursor().Row, g.params.Rows-1)
	}
}

func TestSelectGesture(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(6))

	press := func(a core.Action) {
		in := core.NewInputFrame()
		in.Set(a)
		g.Step(in)
	}

	press(core.ActionSelect)
	sel, ok := g.Selected()
	if !ok || sel != g.Cursor() {
		t.Fatal("first select must mark the cursor cell")
	}

	// Selecting the same cell again clears the mark.
	press(core.ActionSelect)
	if _, ok := g.Selected(); ok {
		t.Fatal("second select on the same cell must clear the selection")
	}

	// Select, move to a neighbor, select again: the swap attempt clears
	// the selection whether or not it was legal.
	press(core.ActionSelect)
	press(core.ActionRight)
	press(core.ActionSelect)
	if _, ok := g.Selected(); ok {
		t.Error("swap attempt must clear the selection")
	}

	// Back cancels a pending selection.
	press(core.ActionSelect)
	press(core.ActionBack)
	if _, ok := g.Selected(); ok {
		t.Error("back must clear the selection")
	}

	// Selecting a far cell moves the mark instead of swapping.
	press(core.ActionSelect)
	press(core.ActionRight)
	press(core.ActionRight)
	press(core.ActionSelect)
	sel, ok = g.Selected()
	if !ok || sel != g.Cursor() {
		t.Error("select on a non-adjacent cell must move the mark there")
	}
}

func TestPauseTogglesAndFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(7))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot()
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}
	after := g.Snapshot()
	// Only the tick counter advances while paused.
	before.Tick = after.Tick
	if !before.Equal(after) {
		t.Error("board state changed while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause press should resume")
	}
}

func TestTooSmallScreenPausesGame(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 8, ScreenH: 5, TickRate: 60, Seed: 9})

	if got := g.Snapshot().State; got != StatePausedSmall {
		t.Errorf("snapshot state = %q, want %q", got, StatePausedSmall)
	}
	if !g.State().Paused {
		t.Error("too-small screen must report paused")
	}
}

func TestModeSelectsWaveProgression(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig(3))
	if g.params.WaveMode != WaveModeScore {
		t.Errorf("score variant WaveMode = %q, want %q", g.params.WaveMode, WaveModeScore)
	}
	if g.ID() != "cascade" {
		t.Errorf("ID() = %q, want cascade", g.ID())
	}

	tg := NewTimed()
	tg.Reset(testRuntimeConfig(3))
	if tg.params.WaveMode != WaveModeTime {
		t.Errorf("timed variant WaveMode = %q, want %q", tg.params.WaveMode, WaveModeTime)
	}
	if tg.ID() != "cascade_timed" {
		t.Errorf("ID() = %q, want cascade_timed", tg.ID())
	}
}
