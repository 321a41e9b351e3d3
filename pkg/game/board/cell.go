package board

import "minesweep/pkg/engine/world"

// State is the visible state of a cell
type State int

const (
	Covered State = iota
	Flagged
	Questioned
	Revealed
	Detonated
)

// String returns the name of the state
func (s State) String() string {
	switch s {
	case Covered:
		return "Covered"
	case Flagged:
		return "Flagged"
	case Questioned:
		return "Questioned"
	case Revealed:
		return "Revealed"
	case Detonated:
		return "Detonated"
	default:
		return "Unknown"
	}
}

// IsOpen returns true once a cell has been uncovered, safely or not.
// Open cells never change state again.
func (s State) IsOpen() bool {
	return s == Revealed || s == Detonated
}

// Cell is a single square of the minefield
type Cell struct {
	Point world.Point

	Mine  bool
	State State

	// Adjacent is the number of mines among the neighbors, fixed after generation
	Adjacent int
}
