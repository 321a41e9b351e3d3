package renderer

import (
	"strings"
	"testing"

	"minesweep/pkg/engine/world"
	"minesweep/pkg/game/board"
	"minesweep/pkg/game/difficulty"
	"minesweep/pkg/game/session"
)

func plain(s string, _ TextStyle) string { return s }

func TestTileGlyph(t *testing.T) {
	tests := []struct {
		name  string
		tile  session.Tile
		state session.State
		glyph string
		style TextStyle
	}{
		{"covered", session.Tile{State: board.Covered}, session.Running, IconCovered, StyleCovered},
		{"pressed", session.Tile{State: board.Covered, Pressed: [session.ButtonCount]bool{true}}, session.Running, IconPressed, StylePressed},
		{"flag", session.Tile{State: board.Flagged}, session.Running, IconFlag, StyleFlag},
		{"question", session.Tile{State: board.Questioned}, session.Running, IconQuestion, StyleQuestion},
		{"empty", session.Tile{State: board.Revealed}, session.Running, IconEmpty, StyleEmpty},
		{"three", session.Tile{State: board.Revealed, Adjacent: 3}, session.Running, "3", StyleCount3},
		{"detonated", session.Tile{State: board.Detonated, Mine: true}, session.Lost, IconDetonated, StyleDetonated},
		{"mine shown", session.Tile{State: board.Covered, Mine: true}, session.Lost, IconMine, StyleMine},
		{"wrong flag", session.Tile{State: board.Flagged}, session.Lost, IconWrongFlag, StyleWrongFlag},
		{"right flag", session.Tile{State: board.Flagged, Mine: true}, session.Won, IconFlag, StyleFlag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			glyph, style := TileGlyph(tt.tile, tt.state)
			if glyph != tt.glyph || style != tt.style {
				t.Errorf("TileGlyph() = %q, %v, want %q, %v", glyph, style, tt.glyph, tt.style)
			}
		})
	}
}

func TestCountStyle(t *testing.T) {
	if CountStyle(1) != StyleCount1 || CountStyle(8) != StyleCount8 {
		t.Error("CountStyle does not map 1..8 onto StyleCount1..StyleCount8")
	}
	if CountStyle(0) != StyleEmpty || CountStyle(9) != StyleEmpty {
		t.Error("CountStyle out of range should be StyleEmpty")
	}
}

func TestBoardLines(t *testing.T) {
	b, _ := board.FromMines(3, 2, world.Point{Col: 2, Row: 1})
	s := session.New(b, difficulty.Custom)
	_ = s.Click(world.Point{Col: 0, Row: 0}, session.Primary)

	lines := BoardLines(s, plain)
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	if !strings.HasSuffix(lines[0], " 0 1 2") {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "  0  · 1 "+IconCovered {
		t.Errorf("row 0 = %q", lines[1])
	}
	if lines[2] != "  1  · 1 "+IconCovered {
		t.Errorf("row 1 = %q", lines[2])
	}
}

func TestStatusLine(t *testing.T) {
	b, _ := board.FromMines(3, 2, world.Point{Col: 2, Row: 1})
	s := session.New(b, difficulty.Custom)
	got := StatusLine(s)
	if !strings.HasPrefix(got, "Custom  3x2  Mines: 1") || !strings.HasSuffix(got, "[Running]") {
		t.Errorf("StatusLine() = %q", got)
	}
}
