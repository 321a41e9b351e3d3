// Package config loads game settings from MINESWEEP_* environment variables.
package config

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/caarlos0/env/v11"

	"minesweep/pkg/game/difficulty"
)

// Prefix is prepended to every variable name
const Prefix = "MINESWEEP_"

// Orientation choices
const (
	OrientationAuto      = "auto"
	OrientationLandscape = "landscape"
	OrientationPortrait  = "portrait"
)

// Config holds the settings for a play session
type Config struct {
	Difficulty  string `env:"DIFFICULTY" envDefault:"simple"`
	Columns     int    `env:"COLUMNS" envDefault:"16"`
	Rows        int    `env:"ROWS" envDefault:"16"`
	Mines       int    `env:"MINES"`
	Player      string `env:"PLAYER" envDefault:"anonymous"`
	Seed        uint64 `env:"SEED"`
	NoColor     bool   `env:"NO_COLOR"`
	Orientation string `env:"ORIENTATION" envDefault:"auto"`
}

// Load reads the configuration from the process environment
func Load() (Config, error) {
	return parse(env.Options{Prefix: Prefix})
}

// LoadFrom reads the configuration from the given variables instead of the
// process environment
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that do not depend on the board itself
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Orientation) {
	case OrientationAuto, OrientationLandscape, OrientationPortrait:
	default:
		return fmt.Errorf("unknown orientation %q", c.Orientation)
	}
	return nil
}

// Level returns the configured difficulty
func (c Config) Level() (difficulty.Level, error) {
	return difficulty.ParseLevel(c.Difficulty)
}

// Size returns the configured custom board size
func (c Config) Size() difficulty.Size {
	return difficulty.Size{Columns: c.Columns, Rows: c.Rows}
}

// MineCount returns the configured custom mine count, or the suggested
// count for the size when none was set
func (c Config) MineCount() int {
	if c.Mines > 0 {
		return c.Mines
	}
	return difficulty.SuggestedMines(c.Size())
}

// Rand returns a random source seeded from Seed, or nil for a time based
// source when Seed is 0
func (c Config) Rand() *rand.Rand {
	if c.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(c.Seed, c.Seed))
}

// Portrait resolves the orientation setting; auto defers to detect
func (c Config) Portrait(detect func() bool) bool {
	switch strings.ToLower(c.Orientation) {
	case OrientationPortrait:
		return true
	case OrientationLandscape:
		return false
	default:
		return detect != nil && detect()
	}
}
