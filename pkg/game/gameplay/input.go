package gameplay

import (
	"errors"
	"strconv"

	engineinput "minesweep/pkg/engine/input"
	"minesweep/pkg/game/difficulty"
	"minesweep/pkg/game/leaderboard"
	"minesweep/pkg/game/session"
	"minesweep/pkg/game/text"
)

// ScoreView is a leaderboard table waiting to be shown
type ScoreView struct {
	Level   difficulty.Level
	Entries []leaderboard.Entry
}

// scoreTable is implemented by recorders that can list their entries
type scoreTable interface {
	Entries(level difficulty.Level) []leaderboard.Entry
}

// ProcessIntent handles a high-level input intent from the tiered input
// system. Problems the player should see are logged as messages; the
// returned error is for callers that want to inspect them.
func ProcessIntent(g *Game, intent engineinput.Intent) error {
	g.mu.Lock()
	g.scores = nil
	g.help = false
	g.mu.Unlock()

	switch intent.Action {
	case engineinput.ActionNone:
		g.AddMessage(text.Get("UNKNOWN_COMMAND"))
		return nil

	case engineinput.ActionHelp:
		g.mu.Lock()
		g.help = true
		g.mu.Unlock()
		g.AddMessage(text.Get("HELP"))
		return nil

	case engineinput.ActionQuit:
		g.QuitRequested = true
		return nil

	case engineinput.ActionReveal:
		return clickIntent(g, intent, session.Primary)

	case engineinput.ActionFlag:
		return clickIntent(g, intent, session.Secondary)

	case engineinput.ActionChord:
		return clickIntent(g, intent, session.Tertiary)

	case engineinput.ActionRestart:
		err := g.Restart()
		if errors.Is(err, ErrNoGame) {
			g.AddMessage(text.Get("NO_GAME"))
		}
		return err

	case engineinput.ActionNewGame:
		return newGameIntent(g, intent.Args)

	case engineinput.ActionScores:
		return scoresIntent(g, intent.Args)
	}

	g.AddMessage(text.Get("UNKNOWN_COMMAND"))
	return nil
}

// clickIntent applies a cell command as a full press and release
func clickIntent(g *Game, intent engineinput.Intent, button session.Button) error {
	if !intent.HasPoint {
		g.AddMessage(text.Get("NEED_COORDINATES"))
		return nil
	}
	err := g.Click(intent.Point, button)
	switch {
	case errors.Is(err, session.ErrOutOfRange):
		g.AddMessage(text.Get("OUT_OF_RANGE", intent.Point.Col, intent.Point.Row))
	case errors.Is(err, ErrNoGame):
		g.AddMessage(text.Get("NO_GAME"))
	}
	return err
}

// newGameIntent parses "[level [columns rows [mines]]]". Without a level the
// current one is reused; custom boards without a mine count get the
// suggested density.
func newGameIntent(g *Game, args []string) error {
	cfg := g.Config()
	level := cfg.Level
	size := difficulty.Size{Columns: cfg.Columns, Rows: cfg.Rows}
	mines := cfg.Mines

	if len(args) > 0 {
		l, err := difficulty.ParseLevel(args[0])
		if err != nil {
			g.AddMessage(text.Get("INVALID_GAME", err))
			return err
		}
		level = l
	}
	if level == difficulty.Custom && len(args) >= 3 {
		cols, errC := strconv.Atoi(args[1])
		rows, errR := strconv.Atoi(args[2])
		if err := errors.Join(errC, errR); err != nil {
			err = errors.Join(difficulty.ErrInvalidConfiguration, err)
			g.AddMessage(text.Get("INVALID_GAME", err))
			return err
		}
		size = difficulty.Size{Columns: cols, Rows: rows}
		mines = difficulty.SuggestedMines(size)
		if len(args) >= 4 {
			m, err := strconv.Atoi(args[3])
			if err != nil {
				err = errors.Join(difficulty.ErrInvalidConfiguration, err)
				g.AddMessage(text.Get("INVALID_GAME", err))
				return err
			}
			mines = m
		}
	}

	if err := g.StartGame(level, size, mines); err != nil {
		g.AddMessage(text.Get("INVALID_GAME", err))
		return err
	}
	return nil
}

// scoresIntent queues the leaderboard for the requested or current level
func scoresIntent(g *Game, args []string) error {
	level := g.Config().Level
	if len(args) > 0 {
		l, err := difficulty.ParseLevel(args[0])
		if err != nil {
			g.AddMessage(text.Get("INVALID_GAME", err))
			return err
		}
		level = l
	}
	if !level.IsRanked() {
		g.AddMessage(text.Get("SCORES_UNRANKED"))
		return nil
	}

	table, ok := g.recorder.(scoreTable)
	if !ok {
		return nil
	}
	g.mu.Lock()
	g.scores = &ScoreView{Level: level, Entries: table.Entries(level)}
	g.mu.Unlock()
	return nil
}

// PendingScores returns the leaderboard view requested by the last intent,
// or nil
func (g *Game) PendingScores() *ScoreView {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scores
}

// PendingHelp reports whether the last intent asked for the command list
func (g *Game) PendingHelp() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.help
}
