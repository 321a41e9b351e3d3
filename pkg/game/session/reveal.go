package session

import (
	"github.com/zyedidia/generic/queue"

	"minesweep/pkg/game/board"
)

// revealLocked handles a primary click
func (s *Session) revealLocked(idx int, out *outcome) {
	if s.board.Cell(idx).State != board.Covered {
		return
	}
	if s.uncoverLocked(idx) {
		s.finish(Lost, out)
		return
	}
	out.updated = true
	s.checkWonLocked(out)
}

// cycleFlagLocked handles a secondary click:
// Covered -> Flagged -> Questioned -> Covered
func (s *Session) cycleFlagLocked(idx int, out *outcome) {
	c := s.board.Cell(idx)
	switch c.State {
	case board.Covered:
		c.State = board.Flagged
		s.flags++
	case board.Flagged:
		c.State = board.Questioned
		s.flags--
	case board.Questioned:
		c.State = board.Covered
	default:
		return
	}
	s.changed.Put(idx)
	out.updated = true
	s.checkWonLocked(out)
}

// chordLocked handles a tertiary click. A revealed cell whose flagged
// neighbors match its mine count uncovers all its covered neighbors. The
// sweep stops at the first mine.
func (s *Session) chordLocked(idx int, out *outcome) {
	c := s.board.Cell(idx)
	if c.State != board.Revealed {
		return
	}
	if c.Adjacent != s.board.FlaggedNeighbors(idx) {
		return
	}

	for _, n := range s.board.Neighbors(idx) {
		if s.board.Cell(n).State != board.Covered {
			continue
		}
		if s.uncoverLocked(n) {
			s.finish(Lost, out)
			return
		}
		out.updated = true
	}
	s.checkWonLocked(out)
}

// uncoverLocked reveals a covered cell and, when it has no adjacent mines,
// flood fills outward through covered cells. Flagged and questioned cells
// are left alone. Returns true if the cell was a mine.
func (s *Session) uncoverLocked(idx int) bool {
	c := s.board.Cell(idx)
	if c.State != board.Covered {
		return false
	}
	s.changed.Put(idx)
	if c.Mine {
		c.State = board.Detonated
		return true
	}
	c.State = board.Revealed
	if c.Adjacent != 0 {
		return false
	}

	// The neighbor graph has cycles; a cell is enqueued only at the moment
	// it flips from Covered to Revealed, so each cell is expanded once.
	work := queue.New[int]()
	work.Enqueue(idx)
	for !work.Empty() {
		cur := work.Dequeue()
		for _, n := range s.board.Neighbors(cur) {
			nc := s.board.Cell(n)
			if nc.State != board.Covered || nc.Mine {
				continue
			}
			nc.State = board.Revealed
			s.changed.Put(n)
			if nc.Adjacent == 0 {
				work.Enqueue(n)
			}
		}
	}
	return false
}

// checkWonLocked ends the game when no safe cell is left unrevealed
func (s *Session) checkWonLocked(out *outcome) {
	if s.state != Running {
		return
	}
	if s.board.Cleared() {
		s.finish(Won, out)
	}
}
