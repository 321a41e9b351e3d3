// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Point addresses a cell by column and row
type Point struct {
	Col int
	Row int
}

// String returns the point as "col:row"
func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Col, p.Row)
}

// Step returns the point one cell away in the given direction
func (p Point) Step(dir Direction) Point {
	dc, dr := dir.Delta()
	return Point{Col: p.Col + dc, Row: p.Row + dr}
}

// Grid is the topology of a rectangular board. Cells are stored by the
// owner in a flat slice indexed row-major; the grid only knows how those
// indices relate to each other.
type Grid struct {
	cols int
	rows int

	// neighbors[i] lists the indices adjacent to cell i, computed once in Build
	neighbors [][]int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(cols, rows int) *Grid {
	g := &Grid{}
	g.Build(cols, rows)
	return g
}

// Build initializes the grid with the given dimensions and links every cell
// to its in-bounds compass neighbors. Links never cross the grid edge.
func (g *Grid) Build(cols, rows int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.cols = cols
	g.rows = rows
	g.neighbors = make([][]int, cols*rows)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := Point{Col: col, Row: row}
			idx := g.Index(p)
			links := make([]int, 0, 8)
			for _, dir := range AllDirections() {
				n := p.Step(dir)
				if g.Contains(n) {
					links = append(links, g.Index(n))
				}
			}
			g.neighbors[idx] = links
		}
	}
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Len returns the number of cells in the grid
func (g *Grid) Len() int {
	return g.cols * g.rows
}

// Contains checks if a point is within grid bounds
func (g *Grid) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Index converts a point to its flat index. The point must be in bounds.
func (g *Grid) Index(p Point) int {
	return p.Row*g.cols + p.Col
}

// Point converts a flat index back to its column and row
func (g *Grid) Point(idx int) Point {
	return Point{Col: idx % g.cols, Row: idx / g.cols}
}

// Neighbors returns the indices adjacent to idx. The returned slice is
// shared and must not be modified.
func (g *Grid) Neighbors(idx int) []int {
	if idx < 0 || idx >= len(g.neighbors) {
		return nil
	}
	return g.neighbors[idx]
}

// IsOnPerimeter checks if a point is on the edge of the grid
func (g *Grid) IsOnPerimeter(p Point) bool {
	if !g.Contains(p) {
		return false
	}
	return p.Row == 0 || p.Row == g.rows-1 || p.Col == 0 || p.Col == g.cols-1
}
