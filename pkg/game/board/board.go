// Package board owns the minefield: cell storage, mine placement and the
// per-cell adjacent mine counts.
package board

import (
	"fmt"
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"

	"minesweep/pkg/engine/world"
	"minesweep/pkg/game/difficulty"
)

// Board is an R x C matrix of cells with a fixed number of mines
type Board struct {
	grid  *world.Grid
	cells []Cell
	mines int
}

// newEmpty allocates every cell covered and mine free, with adjacency linked
func newEmpty(cols, rows int) *Board {
	grid := world.NewGrid(cols, rows)
	b := &Board{
		grid:  grid,
		cells: make([]Cell, grid.Len()),
	}
	for idx := range b.cells {
		b.cells[idx] = Cell{Point: grid.Point(idx), State: Covered}
	}
	return b
}

// Generate builds a board for cfg, placing mines uniformly at random by
// rejection sampling. The first click is not guaranteed to be safe.
func Generate(cfg difficulty.Config, rng *rand.Rand) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	b := newEmpty(cfg.Columns, cfg.Rows)

	placed := 0
	for placed < cfg.Mines {
		row := rng.IntN(cfg.Rows)
		col := rng.IntN(cfg.Columns)
		cell := &b.cells[b.grid.Index(world.Point{Col: col, Row: row})]
		if cell.Mine {
			continue
		}
		cell.Mine = true
		placed++
	}
	b.mines = placed

	b.countAdjacent()
	return b, nil
}

// FromMines builds a board with mines at exactly the given points.
// Duplicate points count once. The board must end up with at least one
// mine and at least one safe cell.
func FromMines(cols, rows int, mines ...world.Point) (*Board, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: board %dx%d has no cells", difficulty.ErrInvalidConfiguration, cols, rows)
	}

	b := newEmpty(cols, rows)
	seen := mapset.New[world.Point]()
	for _, p := range mines {
		if !b.grid.Contains(p) {
			return nil, fmt.Errorf("%w: mine %v outside %dx%d board", difficulty.ErrInvalidConfiguration, p, cols, rows)
		}
		if seen.Has(p) {
			continue
		}
		seen.Put(p)
		b.cells[b.grid.Index(p)].Mine = true
	}
	cfg := difficulty.Config{Level: difficulty.Custom, Columns: cols, Rows: rows, Mines: seen.Size()}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b.mines = seen.Size()

	b.countAdjacent()
	return b, nil
}

// countAdjacent fills in Adjacent for every cell from the final mine layout
func (b *Board) countAdjacent() {
	for idx := range b.cells {
		count := 0
		for _, n := range b.grid.Neighbors(idx) {
			if b.cells[n].Mine {
				count++
			}
		}
		b.cells[idx].Adjacent = count
	}
}

// Grid returns the board topology
func (b *Board) Grid() *world.Grid {
	return b.grid
}

// Columns returns the number of columns
func (b *Board) Columns() int {
	return b.grid.Cols()
}

// Rows returns the number of rows
func (b *Board) Rows() int {
	return b.grid.Rows()
}

// Len returns the number of cells
func (b *Board) Len() int {
	return len(b.cells)
}

// MineCount returns the number of mines placed on the board
func (b *Board) MineCount() int {
	return b.mines
}

// Contains checks if a point is on the board
func (b *Board) Contains(p world.Point) bool {
	return b.grid.Contains(p)
}

// Index converts an in-bounds point to its cell index
func (b *Board) Index(p world.Point) int {
	return b.grid.Index(p)
}

// Cell returns the cell at idx. The pointer stays valid for the board's
// lifetime.
func (b *Board) Cell(idx int) *Cell {
	return &b.cells[idx]
}

// CellAt returns the cell at p, or nil if p is out of bounds
func (b *Board) CellAt(p world.Point) *Cell {
	if !b.grid.Contains(p) {
		return nil
	}
	return &b.cells[b.grid.Index(p)]
}

// Neighbors returns the indices adjacent to idx
func (b *Board) Neighbors(idx int) []int {
	return b.grid.Neighbors(idx)
}

// FlaggedNeighbors counts the flagged cells around idx
func (b *Board) FlaggedNeighbors(idx int) int {
	count := 0
	for _, n := range b.grid.Neighbors(idx) {
		if b.cells[n].State == Flagged {
			count++
		}
	}
	return count
}

// CountState counts cells in the given state
func (b *Board) CountState(s State) int {
	count := 0
	for i := range b.cells {
		if b.cells[i].State == s {
			count++
		}
	}
	return count
}

// CountMines counts mined cells
func (b *Board) CountMines() int {
	count := 0
	for i := range b.cells {
		if b.cells[i].Mine {
			count++
		}
	}
	return count
}

// Cleared returns true when every safe cell has been revealed. Mined cells
// may be in any state that is not Revealed.
func (b *Board) Cleared() bool {
	for i := range b.cells {
		if !b.cells[i].Mine && b.cells[i].State != Revealed {
			return false
		}
	}
	return true
}

// Cells returns a copy of every cell in row-major order
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// String draws the board for debugging: '*' mine, digits for counts, '.'
// for zero.
func (b *Board) String() string {
	buf := make([]byte, 0, (b.Columns()+1)*b.Rows())
	for idx, c := range b.cells {
		switch {
		case c.Mine:
			buf = append(buf, '*')
		case c.Adjacent == 0:
			buf = append(buf, '.')
		default:
			buf = append(buf, byte('0'+c.Adjacent))
		}
		if (idx+1)%b.Columns() == 0 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
