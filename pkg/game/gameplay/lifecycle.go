// Package gameplay owns the current game and routes player commands to it.
package gameplay

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"minesweep/pkg/engine/world"
	"minesweep/pkg/game/board"
	"minesweep/pkg/game/difficulty"
	"minesweep/pkg/game/leaderboard"
	"minesweep/pkg/game/session"
	"minesweep/pkg/game/state"
	"minesweep/pkg/game/text"
)

// ErrNoGame is returned when a click arrives before the first StartGame
var ErrNoGame = errors.New("no game started")

// Option configures a Game
type Option func(*Game)

// WithRand sets the random source used for mine placement
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithClock replaces the wall clock used by new sessions
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// WithHooks registers presentation observers. They are called after the
// game's own bookkeeping for the same event.
func WithHooks(h session.Hooks) Option {
	return func(g *Game) {
		g.hooks = h
	}
}

// Game owns the current session. Starting a game replaces the previous
// session and board entirely.
type Game struct {
	state.MessageLog

	mu       sync.Mutex
	session  *session.Session
	board    *board.Board
	config   difficulty.Config
	portrait bool
	lastRank int

	recorder leaderboard.Recorder
	rng      *rand.Rand
	now      func() time.Time
	hooks    session.Hooks

	// scores is the leaderboard view requested by the last intent
	scores *ScoreView
	help   bool

	// QuitRequested is set when the player asks to leave
	QuitRequested bool
}

// New creates a game with no session. recorder may be nil.
func New(recorder leaderboard.Recorder, opts ...Option) *Game {
	g := &Game{
		recorder: recorder,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	return g
}

// SetPortrait makes later games swap columns and rows after the larger
// dimension has been assigned to columns, for tall displays
func (g *Game) SetPortrait(portrait bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.portrait = portrait
}

// StartGame builds a new board and session. On error the previous session
// is left untouched.
func (g *Game) StartGame(level difficulty.Level, size difficulty.Size, mines int) error {
	cfg, err := difficulty.Resolve(level, size, mines)
	if err != nil {
		return err
	}

	g.mu.Lock()
	if g.portrait {
		cfg = cfg.Swapped()
	}
	b, err := board.Generate(cfg, g.rng)
	if err != nil {
		g.mu.Unlock()
		return err
	}
	var s *session.Session
	s = session.New(b, cfg.Level, session.WithClock(g.now),
		session.WithHooks(g.sessionHooks(func() *session.Session { return s })))
	g.session = s
	g.board = b
	g.config = cfg
	g.lastRank = 0
	g.mu.Unlock()

	g.ClearMessages()
	g.AddMessage(text.Get("GAME_STARTED", cfg.Level.String(), cfg.Columns, cfg.Rows, cfg.Mines))
	if g.hooks.OnUpdate != nil {
		g.hooks.OnUpdate()
	}
	return nil
}

// Restart starts a fresh board with the current configuration
func (g *Game) Restart() error {
	g.mu.Lock()
	cfg := g.config
	started := g.session != nil
	g.mu.Unlock()

	if !started {
		return ErrNoGame
	}
	// Resolve puts the larger dimension back in columns before any swap
	return g.StartGame(cfg.Level, difficulty.Size{Columns: cfg.Columns, Rows: cfg.Rows}, cfg.Mines)
}

// sessionHooks wires a new session to the leaderboard and message log, then
// forwards to the presentation hooks. A session that has since been
// replaced still records its win but no longer touches LastRank or the
// message log.
func (g *Game) sessionHooks(owner func() *session.Session) session.Hooks {
	return session.Hooks{
		OnUpdate: func() {
			if g.hooks.OnUpdate != nil {
				g.hooks.OnUpdate()
			}
		},
		OnWin: func(level difficulty.Level, elapsed time.Duration) {
			rank := 0
			if g.recorder != nil {
				rank = g.recorder.Record(level, elapsed)
			}
			if g.isCurrent(owner(), func() { g.lastRank = rank }) {
				g.AddMessage(text.Get("GAME_WON", elapsed.Seconds()))
				if rank > 0 {
					g.AddMessage(text.Get("NEW_RECORD", rank, level.String()))
				}
			}
			if g.hooks.OnWin != nil {
				g.hooks.OnWin(level, elapsed)
			}
		},
		OnLose: func(elapsed time.Duration) {
			if g.isCurrent(owner(), nil) {
				g.AddMessage(text.Get("GAME_LOST", elapsed.Seconds()))
			}
			if g.hooks.OnLose != nil {
				g.hooks.OnLose(elapsed)
			}
		},
	}
}

// isCurrent reports whether s is still the game's session and, if so,
// runs update under the game lock
func (g *Game) isCurrent(s *session.Session, update func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if s == nil || g.session != s {
		return false
	}
	if update != nil {
		update()
	}
	return true
}

// Session returns the current session, or nil before the first game
func (g *Game) Session() *session.Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session
}

// Board returns the current board, or nil before the first game. Mine
// placement and counts are fixed; cell states belong to the session and
// must not be changed through it.
func (g *Game) Board() *board.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board
}

// Config returns the configuration of the current board as played,
// including any orientation swap
func (g *Game) Config() difficulty.Config {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.config
}

// LastRank returns the leaderboard rank earned by the current session's
// win, or 0
func (g *Game) LastRank() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastRank
}

// Press forwards a button press to the current session
func (g *Game) Press(p world.Point, b session.Button) error {
	s := g.Session()
	if s == nil {
		return ErrNoGame
	}
	return s.Press(p, b)
}

// Hover forwards pointer movement to the current session
func (g *Game) Hover(p world.Point, b session.Button) error {
	s := g.Session()
	if s == nil {
		return ErrNoGame
	}
	return s.Hover(p, b)
}

// Release forwards a button release to the current session
func (g *Game) Release(p world.Point, b session.Button) error {
	s := g.Session()
	if s == nil {
		return ErrNoGame
	}
	return s.Release(p, b)
}

// Click forwards a complete click to the current session
func (g *Game) Click(p world.Point, b session.Button) error {
	s := g.Session()
	if s == nil {
		return ErrNoGame
	}
	return s.Click(p, b)
}
