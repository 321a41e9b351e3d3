package session

import (
	"errors"
	"math/rand/v2"
	"testing"

	"minesweep/pkg/engine/world"
	"minesweep/pkg/game/board"
	"minesweep/pkg/game/difficulty"
)

func TestReveal_CornerNextToMineDoesNotCascade(t *testing.T) {
	s, _, _ := newTestSession(t, 3, 3, pt(1, 1))
	_ = s.Click(pt(0, 0), Primary)
	if got := s.board.CountState(board.Revealed); got != 1 {
		t.Errorf("revealed cells = %d, want 1", got)
	}
	if got := stateAt(s, pt(0, 0)); got != board.Revealed {
		t.Errorf("0:0 state = %v, want Revealed", got)
	}
	if got := s.Changed(); len(got) != 1 || got[0] != pt(0, 0) {
		t.Errorf("Changed() = %v, want [0:0]", got)
	}
}

func TestReveal_FloodStopsAtNumbers(t *testing.T) {
	// . . 1 *
	// . . 1 1
	// . . . .
	s, _, _ := newTestSession(t, 4, 3, pt(3, 0))
	_ = s.Click(pt(0, 0), Primary)
	if s.State() != Won {
		t.Errorf("State() = %v, want Won", s.State())
	}
	if got := stateAt(s, pt(3, 0)); got != board.Covered {
		t.Errorf("mine state = %v, want Covered", got)
	}
	if got := len(s.Changed()); got != 11 {
		t.Errorf("len(Changed()) = %d, want 11", got)
	}
}

func TestReveal_FloodSkipsFlaggedAndQuestioned(t *testing.T) {
	s, _, _ := newTestSession(t, 5, 1, pt(4, 0))
	_ = s.Click(pt(1, 0), Secondary)
	_ = s.Click(pt(2, 0), Secondary)
	_ = s.Click(pt(2, 0), Secondary)
	_ = s.Click(pt(0, 0), Primary)
	if got := stateAt(s, pt(1, 0)); got != board.Flagged {
		t.Errorf("flagged cell state = %v, want Flagged", got)
	}
	if got := stateAt(s, pt(2, 0)); got != board.Questioned {
		t.Errorf("questioned cell state = %v, want Questioned", got)
	}
	if got := stateAt(s, pt(3, 0)); got != board.Covered {
		t.Errorf("cell behind flag = %v, want Covered", got)
	}
}

// expectedFlood computes the zero region containing start plus its border
// by walking the grid independently of the session code
func expectedFlood(b *board.Board, start int) map[int]bool {
	want := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.Cell(cur).Adjacent != 0 {
			continue
		}
		p := b.Cell(cur).Point
		for _, d := range world.AllDirections() {
			n := b.CellAt(p.Step(d))
			if n == nil || n.Mine {
				continue
			}
			idx := b.Index(n.Point)
			if !want[idx] {
				want[idx] = true
				stack = append(stack, idx)
			}
		}
	}
	return want
}

func TestReveal_FloodMatchesConnectedRegion(t *testing.T) {
	cfg := difficulty.Config{Level: difficulty.Hard, Columns: 30, Rows: 16, Mines: 60}
	for seed := uint64(1); seed <= 25; seed++ {
		b, err := board.Generate(cfg, rand.New(rand.NewPCG(seed, seed)))
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}
		start := -1
		for idx := 0; idx < b.Len(); idx++ {
			if !b.Cell(idx).Mine && b.Cell(idx).Adjacent == 0 {
				start = idx
				break
			}
		}
		if start < 0 {
			continue
		}
		want := expectedFlood(b, start)

		s := New(b, cfg.Level)
		_ = s.Click(b.Cell(start).Point, Primary)

		for idx := 0; idx < b.Len(); idx++ {
			c := b.Cell(idx)
			revealed := c.State == board.Revealed
			if revealed != want[idx] {
				t.Errorf("seed %d: cell %v revealed = %v, want %v", seed, c.Point, revealed, want[idx])
			}
			if c.Mine && c.State.IsOpen() {
				t.Errorf("seed %d: flood fill opened mine %v", seed, c.Point)
			}
		}
		if s.State() == Lost {
			t.Errorf("seed %d: flood fill lost the game", seed)
		}
	}
}

func TestChord_SatisfiedRevealsCoveredNeighbors(t *testing.T) {
	// * 1 .
	// 1 1 .
	// . . .
	s, _, _ := newTestSession(t, 3, 3, pt(0, 0))
	_ = s.Click(pt(1, 1), Primary)
	_ = s.Click(pt(0, 0), Secondary)
	_ = s.Click(pt(1, 1), Tertiary)

	if s.State() != Won {
		t.Errorf("State() = %v, want Won", s.State())
	}
	if got := stateAt(s, pt(0, 0)); got != board.Flagged {
		t.Errorf("flagged mine = %v, want Flagged", got)
	}
	if got := s.board.CountState(board.Revealed); got != 8 {
		t.Errorf("revealed = %d, want 8", got)
	}
}

func TestChord_UnsatisfiedIsNoOp(t *testing.T) {
	s, _, rec := newTestSession(t, 3, 3, pt(0, 0))
	_ = s.Click(pt(1, 1), Primary)
	before := s.board.Cells()
	updates := rec.updates

	_ = s.Click(pt(1, 1), Tertiary)

	after := s.board.Cells()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("cell %v changed from %+v to %+v", before[i].Point, before[i], after[i])
		}
	}
	if rec.updates != updates {
		t.Error("unsatisfied chord fired OnUpdate")
	}
}

func TestChord_TooManyFlagsIsNoOp(t *testing.T) {
	s, _, _ := newTestSession(t, 3, 3, pt(0, 0))
	_ = s.Click(pt(1, 1), Primary)
	_ = s.Click(pt(0, 0), Secondary)
	_ = s.Click(pt(2, 2), Secondary)
	_ = s.Click(pt(1, 1), Tertiary)
	if got := s.board.CountState(board.Revealed); got != 1 {
		t.Errorf("revealed = %d, want 1", got)
	}
}

func TestChord_OnCoveredCellIsNoOp(t *testing.T) {
	s, _, _ := newTestSession(t, 3, 3, pt(0, 0))
	_ = s.Click(pt(2, 2), Tertiary)
	if got := s.board.CountState(board.Revealed); got != 0 {
		t.Errorf("revealed = %d, want 0", got)
	}
}

func TestChord_DetonationShortCircuits(t *testing.T) {
	// Mine north of the center, wrong flag south-east. Neighbors are swept
	// clockwise from north, so the mine is hit first and the east cell is
	// never opened.
	s, _, rec := newTestSession(t, 3, 3, pt(1, 0))
	_ = s.Click(pt(1, 1), Primary)
	_ = s.Click(pt(2, 2), Secondary)
	_ = s.Click(pt(1, 1), Tertiary)

	if s.State() != Lost {
		t.Fatalf("State() = %v, want Lost", s.State())
	}
	if got := stateAt(s, pt(1, 0)); got != board.Detonated {
		t.Errorf("mine = %v, want Detonated", got)
	}
	if got := stateAt(s, pt(2, 1)); got != board.Covered {
		t.Errorf("east neighbor = %v, want Covered after short circuit", got)
	}
	if rec.losses != 1 {
		t.Errorf("losses = %d, want 1", rec.losses)
	}
}

func TestPressRelease_SameCellFires(t *testing.T) {
	s, _, _ := newTestSession(t, 3, 3, pt(1, 1))
	_ = s.Press(pt(0, 0), Primary)
	tiles := s.Tiles()
	if !tiles[0].Pressed[Primary] {
		t.Error("0:0 not pressed after Press")
	}
	if got := stateAt(s, pt(0, 0)); got != board.Covered {
		t.Errorf("state after Press = %v, want Covered", got)
	}
	_ = s.Release(pt(0, 0), Primary)
	if got := stateAt(s, pt(0, 0)); got != board.Revealed {
		t.Errorf("state after Release = %v, want Revealed", got)
	}
	if s.Tiles()[0].Pressed[Primary] {
		t.Error("0:0 still pressed after Release")
	}
}

func TestPressRelease_DragOffCancels(t *testing.T) {
	s, _, _ := newTestSession(t, 3, 3, pt(1, 1))
	_ = s.Press(pt(0, 0), Primary)
	_ = s.Hover(pt(2, 2), Primary)
	if s.Tiles()[0].Pressed[Primary] {
		t.Error("0:0 still shown pressed after dragging off")
	}
	_ = s.Release(pt(2, 2), Primary)
	if got := s.board.CountState(board.Revealed); got != 0 {
		t.Errorf("revealed = %d after release off the pressed cell, want 0", got)
	}
}

func TestPressRelease_DragBackFires(t *testing.T) {
	s, _, _ := newTestSession(t, 3, 3, pt(1, 1))
	_ = s.Press(pt(0, 0), Secondary)
	_ = s.Hover(pt(1, 0), Secondary)
	_ = s.Hover(pt(0, 0), Secondary)
	if !s.Tiles()[0].Pressed[Secondary] {
		t.Error("0:0 not pressed after dragging back")
	}
	_ = s.Release(pt(0, 0), Secondary)
	if got := stateAt(s, pt(0, 0)); got != board.Flagged {
		t.Errorf("state = %v, want Flagged", got)
	}
}

func TestPressRelease_OverlappingButtons(t *testing.T) {
	s, _, _ := newTestSession(t, 3, 3, pt(1, 1))
	_ = s.Press(pt(0, 0), Primary)
	_ = s.Press(pt(2, 2), Secondary)
	_ = s.Release(pt(2, 2), Secondary)
	_ = s.Release(pt(0, 0), Primary)
	if got := stateAt(s, pt(2, 2)); got != board.Flagged {
		t.Errorf("2:2 = %v, want Flagged", got)
	}
	if got := stateAt(s, pt(0, 0)); got != board.Revealed {
		t.Errorf("0:0 = %v, want Revealed", got)
	}
}

func TestPressRelease_ReleaseWithoutPressIsNoOp(t *testing.T) {
	s, _, rec := newTestSession(t, 3, 3, pt(1, 1))
	_ = s.Release(pt(0, 0), Primary)
	if got := stateAt(s, pt(0, 0)); got != board.Covered {
		t.Errorf("state = %v, want Covered", got)
	}
	if rec.updates != 0 {
		t.Errorf("updates = %d, want 0", rec.updates)
	}
}

func TestPress_TertiaryDepressesNeighbors(t *testing.T) {
	s, _, _ := newTestSession(t, 3, 3, pt(1, 1))
	_ = s.Press(pt(0, 0), Tertiary)
	tiles := s.Tiles()
	for _, idx := range []int{0, 1, 3, 4} {
		if !tiles[idx].Pressed[Tertiary] {
			t.Errorf("tile %v not pressed by Tertiary", tiles[idx].Point)
		}
	}
	if tiles[8].Pressed[Tertiary] {
		t.Error("tile 2:2 pressed but is not a neighbor")
	}
	_ = s.Release(pt(0, 0), Tertiary)
	for _, tile := range s.Tiles() {
		if tile.Pressed[Tertiary] {
			t.Errorf("tile %v still pressed after release", tile.Point)
		}
	}
}

func TestUnknownButtonIsRejected(t *testing.T) {
	s, _, rec := newTestSession(t, 3, 3, pt(1, 1))
	ops := map[string]func(world.Point, Button) error{
		"Press":   s.Press,
		"Hover":   s.Hover,
		"Release": s.Release,
		"Click":   s.Click,
	}
	for name, op := range ops {
		for _, b := range []Button{Button(-1), Button(ButtonCount), Button(7)} {
			if err := op(pt(0, 0), b); !errors.Is(err, ErrInvalidButton) {
				t.Errorf("%s(Button(%d)) error = %v, want %v", name, int(b), err, ErrInvalidButton)
			}
		}
	}
	if rec.updates != 0 {
		t.Errorf("updates = %d, want 0", rec.updates)
	}
	if st := stateAt(s, pt(0, 0)); st != board.Covered {
		t.Errorf("cell 0:0 = %v, want Covered", st)
	}
}
