// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"minesweep/pkg/game/gameplay"
	"minesweep/pkg/game/renderer"
	"minesweep/pkg/game/session"
)

const mapDumpFilename = "board.txt"

var errNoGame = errors.New("no game to dump")

// WriteBoardDump writes the current game to out: metadata, legend, the
// player's view, the full layout and the mine coordinates. The first write
// error is returned.
func WriteBoardDump(out io.Writer, g *gameplay.Game) error {
	s := g.Session()
	b := g.Board()
	if s == nil || b == nil {
		return errNoGame
	}
	cfg := g.Config()

	// bufio.Writer keeps the first error and reports it on Flush
	w := bufio.NewWriter(out)

	fmt.Fprintln(w, "=== BOARD DUMP ===")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "level: %s\n", cfg.Level)
	fmt.Fprintf(w, "columns: %d\n", cfg.Columns)
	fmt.Fprintf(w, "rows: %d\n", cfg.Rows)
	fmt.Fprintf(w, "mines: %d\n", cfg.Mines)
	fmt.Fprintf(w, "state: %s\n", s.State())
	fmt.Fprintf(w, "mines_remaining: %d\n", s.MinesRemaining())
	fmt.Fprintf(w, "elapsed: %.3f\n", s.Elapsed().Seconds())
	fmt.Fprintln(w, "coordinate_system: col:row (0-based)")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "* = mine  . = no adjacent mines  1-8 = adjacent mines  # = covered  F = flag  ? = question  X = detonated")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Player view ---")
	writeView(w, s)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Layout ---")
	fmt.Fprint(w, b.String())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Mines ---")
	for idx := 0; idx < b.Len(); idx++ {
		if c := b.Cell(idx); c.Mine {
			fmt.Fprintf(w, "  %s\n", c.Point)
		}
	}
	return w.Flush()
}

// writeView draws the board as the session presents it
func writeView(w io.Writer, s *session.Session) {
	st := s.State()
	tiles := s.Tiles()
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.Columns(); col++ {
			fmt.Fprintf(w, "%c", viewSymbol(tiles[row*s.Columns()+col], st))
		}
		fmt.Fprintln(w)
	}
}

func viewSymbol(t session.Tile, st session.State) rune {
	glyph, style := renderer.TileGlyph(t, st)
	switch style {
	case renderer.StyleFlag, renderer.StyleWrongFlag:
		return 'F'
	case renderer.StyleQuestion:
		return '?'
	case renderer.StyleDetonated:
		return 'X'
	case renderer.StyleMine:
		return '*'
	case renderer.StyleEmpty:
		return '.'
	case renderer.StyleCovered, renderer.StylePressed:
		return '#'
	}
	return []rune(glyph)[0]
}

// DumpBoardToFile writes a full debug dump of the current game to
// board.txt in dir and returns its absolute path.
func DumpBoardToFile(dir string, g *gameplay.Game) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}

	if err := WriteBoardDump(f, g); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", absPath, err)
	}
	return absPath, nil
}
