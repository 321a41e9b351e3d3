// Package session runs a single game on a board: the Running/Won/Lost state
// machine, the click protocol, and the game clock.
package session

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/zyedidia/generic/mapset"

	"minesweep/pkg/engine/world"
	"minesweep/pkg/game/board"
	"minesweep/pkg/game/difficulty"
)

// ErrOutOfRange is returned when a click addresses a cell outside the board
var ErrOutOfRange = errors.New("cell out of range")

// State is the state of a game session
type State int

const (
	Running State = iota
	Won
	Lost
)

// String returns the name of the state
func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// IsTerminal returns true for Won and Lost
func (s State) IsTerminal() bool {
	return s == Won || s == Lost
}

// Hooks are called synchronously at the end of the operation that caused
// them, after the session lock has been released. Any of them may be nil.
type Hooks struct {
	// OnUpdate fires after any operation that changed the session
	OnUpdate func()
	// OnWin fires once when the last safe cell is revealed
	OnWin func(level difficulty.Level, elapsed time.Duration)
	// OnLose fires once when a mine is uncovered
	OnLose func(elapsed time.Duration)
}

// Option configures a Session
type Option func(*Session)

// WithClock replaces the wall clock, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithHooks sets the notification callbacks
func WithHooks(h Hooks) Option {
	return func(s *Session) {
		s.hooks = h
	}
}

// Tile is a read-only view of one cell
type Tile struct {
	Point    world.Point
	State    board.State
	Adjacent int
	Mine     bool
	Pressed  [ButtonCount]bool
}

// Session is one game on one board. All methods are safe to call from
// multiple goroutines; mutation is serialised by a single lock.
type Session struct {
	mu sync.Mutex

	board *board.Board
	level difficulty.Level
	state State

	now    func() time.Time
	start  time.Time
	frozen time.Duration

	hooks Hooks

	flags   int
	pressed [][ButtonCount]bool
	anchor  [ButtonCount]int
	changed mapset.Set[int]
}

// New starts a session on b. The clock starts immediately.
func New(b *board.Board, level difficulty.Level, opts ...Option) *Session {
	s := &Session{
		board:   b,
		level:   level,
		state:   Running,
		now:     time.Now,
		pressed: make([][ButtonCount]bool, b.Len()),
		changed: mapset.New[int](),
	}
	for i := range s.anchor {
		s.anchor[i] = noAnchor
	}
	for _, opt := range opts {
		opt(s)
	}
	s.start = s.now()
	return s
}

// locate converts a point to a cell index, or fails with ErrOutOfRange
func (s *Session) locate(p world.Point) (int, error) {
	if !s.board.Contains(p) {
		return 0, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfRange, p, s.board.Columns(), s.board.Rows())
	}
	return s.board.Index(p), nil
}

// State returns the current session state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Level returns the difficulty the board was built for
func (s *Session) Level() difficulty.Level {
	return s.level
}

// Columns returns the board width
func (s *Session) Columns() int {
	return s.board.Columns()
}

// Rows returns the board height
func (s *Session) Rows() int {
	return s.board.Rows()
}

// MineCount returns the number of mines on the board
func (s *Session) MineCount() int {
	return s.board.MineCount()
}

// MinesRemaining returns the mine count minus the number of flags placed.
// It goes negative when the player over-flags.
func (s *Session) MinesRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.MineCount() - s.flags
}

// Elapsed returns the time since the session started, or the frozen time
// once the session has ended. It never mutates the session.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsedLocked()
}

func (s *Session) elapsedLocked() time.Duration {
	if s.state == Running {
		return s.now().Sub(s.start)
	}
	return s.frozen
}

// Tiles returns a snapshot of every cell in row-major order. Mines and
// counts of unopened cells stay hidden while the game is running.
func (s *Session) Tiles() []Tile {
	s.mu.Lock()
	defer s.mu.Unlock()

	tiles := make([]Tile, s.board.Len())
	for idx := range tiles {
		c := s.board.Cell(idx)
		t := Tile{
			Point:   c.Point,
			State:   c.State,
			Pressed: s.pressed[idx],
		}
		if s.state.IsTerminal() || c.State.IsOpen() {
			t.Adjacent = c.Adjacent
			t.Mine = c.Mine
		}
		tiles[idx] = t
	}
	return tiles
}

// Changed returns the cells whose state changed during the most recent
// operation, in row-major order
func (s *Session) Changed() []world.Point {
	s.mu.Lock()
	defer s.mu.Unlock()

	indices := make([]int, 0, s.changed.Size())
	s.changed.Each(func(idx int) {
		indices = append(indices, idx)
	})
	slices.Sort(indices)

	points := make([]world.Point, len(indices))
	for i, idx := range indices {
		points[i] = s.board.Cell(idx).Point
	}
	return points
}

// outcome collects what an operation did so hooks can be fired after the
// lock is released
type outcome struct {
	updated  bool
	terminal State
	elapsed  time.Duration
}

// finish transitions to a terminal state and freezes the clock
func (s *Session) finish(st State, out *outcome) {
	s.state = st
	s.frozen = s.now().Sub(s.start)
	out.terminal = st
	out.elapsed = s.frozen
	out.updated = true
}

// notify fires hooks for an outcome. Must be called without the lock held.
func (s *Session) notify(out outcome) {
	if out.updated && s.hooks.OnUpdate != nil {
		s.hooks.OnUpdate()
	}
	switch out.terminal {
	case Won:
		if s.hooks.OnWin != nil {
			s.hooks.OnWin(s.level, out.elapsed)
		}
	case Lost:
		if s.hooks.OnLose != nil {
			s.hooks.OnLose(out.elapsed)
		}
	}
}

// resetChangedLocked starts a new change set for the next operation
func (s *Session) resetChangedLocked() {
	s.changed = mapset.New[int]()
}
