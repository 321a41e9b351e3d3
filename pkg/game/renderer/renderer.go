// Package renderer holds the backend-independent parts of drawing a board.
package renderer

import (
	"fmt"
	"strings"

	"minesweep/pkg/game/board"
	"minesweep/pkg/game/session"
	"minesweep/pkg/game/text"
)

// Glyphs for each cell appearance
const (
	IconCovered   = "■"
	IconPressed   = "□"
	IconFlag      = "⚑"
	IconQuestion  = "?"
	IconEmpty     = "·"
	IconMine      = "*"
	IconDetonated = "✸"
	IconWrongFlag = "✗"
)

// TileGlyph returns the glyph and style for a tile. Once the game is over,
// unflagged mines are shown and flags on safe cells are marked wrong.
func TileGlyph(t session.Tile, st session.State) (string, TextStyle) {
	switch t.State {
	case board.Detonated:
		return IconDetonated, StyleDetonated
	case board.Revealed:
		if t.Adjacent == 0 {
			return IconEmpty, StyleEmpty
		}
		return fmt.Sprint(t.Adjacent), CountStyle(t.Adjacent)
	case board.Flagged:
		if st.IsTerminal() && !t.Mine {
			return IconWrongFlag, StyleWrongFlag
		}
		return IconFlag, StyleFlag
	}

	if st.IsTerminal() && t.Mine {
		return IconMine, StyleMine
	}
	for _, pressed := range t.Pressed {
		if pressed {
			return IconPressed, StylePressed
		}
	}
	if t.State == board.Questioned {
		return IconQuestion, StyleQuestion
	}
	return IconCovered, StyleCovered
}

// StatusKey returns the message key describing a session state
func StatusKey(st session.State) string {
	switch st {
	case session.Won:
		return "STATUS_WON"
	case session.Lost:
		return "STATUS_LOST"
	default:
		return "STATUS_RUNNING"
	}
}

// StatusLine renders the one-line summary shown above the board
func StatusLine(s *session.Session) string {
	return text.Get("STATUS_LINE", s.Level().String(), s.Columns(), s.Rows(),
		s.MinesRemaining(), s.Elapsed().Seconds(), text.Get(StatusKey(s.State())))
}

// BoardLines draws the board with column and row labels. style is applied
// to every glyph.
func BoardLines(s *session.Session, style func(string, TextStyle) string) []string {
	cols := s.Columns()
	tiles := s.Tiles()
	st := s.State()

	lines := make([]string, 0, s.Rows()+1)

	var header strings.Builder
	header.WriteString("    ")
	for col := 0; col < cols; col++ {
		header.WriteString(style(fmt.Sprintf("%2d", col%100), StyleSubtle))
	}
	lines = append(lines, header.String())

	for row := 0; row < s.Rows(); row++ {
		var line strings.Builder
		line.WriteString(style(fmt.Sprintf("%3d ", row), StyleSubtle))
		for col := 0; col < cols; col++ {
			glyph, ts := TileGlyph(tiles[row*cols+col], st)
			line.WriteString(" ")
			line.WriteString(style(glyph, ts))
		}
		lines = append(lines, line.String())
	}
	return lines
}
