// Package difficulty defines the board presets and validates custom boards.
package difficulty

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfiguration is returned when a board cannot be built from the
// requested parameters.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Level is a named board configuration
type Level int

const (
	Simple Level = iota
	Normal
	Hard
	Custom
)

// Ranked lists the levels that keep a best-time leaderboard
var Ranked = []Level{Simple, Normal, Hard}

// String returns the display name of the level
func (l Level) String() string {
	switch l {
	case Simple:
		return "Simple"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	case Custom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// IsValid returns true for the four known levels
func (l Level) IsValid() bool {
	return l >= Simple && l <= Custom
}

// IsRanked returns true if wins on this level are recorded on a leaderboard
func (l Level) IsRanked() bool {
	return l >= Simple && l <= Hard
}

// ParseLevel converts a case-insensitive level name to a Level
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "simple", "easy":
		return Simple, nil
	case "normal", "medium":
		return Normal, nil
	case "hard", "expert":
		return Hard, nil
	case "custom":
		return Custom, nil
	}
	return Simple, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfiguration, name)
}

// Size is a requested board size in cells
type Size struct {
	Columns int
	Rows    int
}

// Range is an inclusive integer range
type Range struct {
	Min int
	Max int
}

// Contains reports whether v lies within the range
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Limits offered by the custom board dialog. Resolve does not enforce them,
// they are for presentation layers that want to bound their inputs.
var (
	ColumnRange = Range{Min: 10, Max: 30}
	RowRange    = Range{Min: 10, Max: 24}
)

// Config is a fully resolved board configuration
type Config struct {
	Level   Level
	Columns int
	Rows    int
	Mines   int
}

// Cells returns the number of cells on the board
func (c Config) Cells() int {
	return c.Columns * c.Rows
}

// Validate checks the board can hold the requested mines with at least one
// safe cell left over
func (c Config) Validate() error {
	if c.Columns < 1 || c.Rows < 1 {
		return fmt.Errorf("%w: board %dx%d has no cells", ErrInvalidConfiguration, c.Columns, c.Rows)
	}
	if c.Mines < 1 || c.Mines >= c.Cells() {
		return fmt.Errorf("%w: %d mines on a %dx%d board, want 1..%d",
			ErrInvalidConfiguration, c.Mines, c.Columns, c.Rows, c.Cells()-1)
	}
	return nil
}

// WithinCustomLimits reports whether the size fits the custom dialog ranges.
// Orientation is ignored, rows and columns are checked after canonicalization.
func (c Config) WithinCustomLimits() bool {
	return ColumnRange.Contains(c.Columns) && RowRange.Contains(c.Rows)
}

// Swapped returns the configuration with columns and rows exchanged
func (c Config) Swapped() Config {
	c.Columns, c.Rows = c.Rows, c.Columns
	return c
}

// Preset returns the fixed configuration for a preset level
func Preset(l Level) (Config, bool) {
	switch l {
	case Simple:
		return Config{Level: Simple, Columns: 10, Rows: 10, Mines: 10}, true
	case Normal:
		return Config{Level: Normal, Columns: 16, Rows: 16, Mines: 40}, true
	case Hard:
		return Config{Level: Hard, Columns: 30, Rows: 16, Mines: 99}, true
	default:
		return Config{}, false
	}
}

// Resolve builds the configuration for a level. Presets ignore size and
// mines; Custom takes both from the caller. The larger dimension always ends
// up in Columns.
func Resolve(l Level, size Size, mines int) (Config, error) {
	var cfg Config
	switch {
	case !l.IsValid():
		return Config{}, fmt.Errorf("%w: unknown difficulty %d", ErrInvalidConfiguration, int(l))
	case l == Custom:
		cfg = Config{Level: Custom, Columns: size.Columns, Rows: size.Rows, Mines: mines}
	default:
		cfg, _ = Preset(l)
	}

	if cfg.Columns < cfg.Rows {
		cfg = cfg.Swapped()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SuggestedMines is the default mine count offered for a custom board
func SuggestedMines(size Size) int {
	n := size.Columns * size.Rows / 3
	if n < 1 {
		n = 1
	}
	return n
}
