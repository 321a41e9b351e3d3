package config

import (
	"errors"
	"testing"

	"minesweep/pkg/game/difficulty"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom error = %v", err)
	}
	want := Config{Difficulty: "simple", Columns: 16, Rows: 16, Player: "anonymous", Orientation: "auto"}
	if cfg != want {
		t.Errorf("LoadFrom() = %+v, want %+v", cfg, want)
	}
	if lvl, _ := cfg.Level(); lvl != difficulty.Simple {
		t.Errorf("Level() = %v, want Simple", lvl)
	}
	if cfg.Rand() != nil {
		t.Error("Rand() with zero seed should be nil")
	}
}

func TestLoadFrom_Values(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"MINESWEEP_DIFFICULTY":  "custom",
		"MINESWEEP_COLUMNS":     "20",
		"MINESWEEP_ROWS":        "12",
		"MINESWEEP_MINES":       "50",
		"MINESWEEP_PLAYER":      "alice",
		"MINESWEEP_SEED":        "99",
		"MINESWEEP_NO_COLOR":    "true",
		"MINESWEEP_ORIENTATION": "portrait",
	})
	if err != nil {
		t.Fatalf("LoadFrom error = %v", err)
	}
	if lvl, _ := cfg.Level(); lvl != difficulty.Custom {
		t.Errorf("Level() = %v, want Custom", lvl)
	}
	if cfg.Size() != (difficulty.Size{Columns: 20, Rows: 12}) || cfg.MineCount() != 50 {
		t.Errorf("size/mines = %+v/%d", cfg.Size(), cfg.MineCount())
	}
	if cfg.Player != "alice" || !cfg.NoColor || cfg.Seed != 99 {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.Portrait(func() bool { return false }) {
		t.Error("Portrait() = false with orientation=portrait")
	}
	if cfg.Rand() == nil {
		t.Error("Rand() = nil with a seed")
	}
}

func TestLoadFrom_InvalidDifficulty(t *testing.T) {
	_, err := LoadFrom(map[string]string{"MINESWEEP_DIFFICULTY": "nightmare"})
	if !errors.Is(err, difficulty.ErrInvalidConfiguration) {
		t.Errorf("LoadFrom error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestLoadFrom_InvalidNumber(t *testing.T) {
	if _, err := LoadFrom(map[string]string{"MINESWEEP_COLUMNS": "wide"}); err == nil {
		t.Error("LoadFrom with non-numeric columns error = nil")
	}
}

func TestLoadFrom_InvalidOrientation(t *testing.T) {
	if _, err := LoadFrom(map[string]string{"MINESWEEP_ORIENTATION": "sideways"}); err == nil {
		t.Error("LoadFrom with bad orientation error = nil")
	}
}

func TestMineCount_Suggested(t *testing.T) {
	cfg := Config{Columns: 12, Rows: 10}
	if got := cfg.MineCount(); got != 40 {
		t.Errorf("MineCount() = %d, want 40", got)
	}
}

func TestPortrait_Auto(t *testing.T) {
	cfg := Config{Orientation: "auto"}
	if !cfg.Portrait(func() bool { return true }) {
		t.Error("auto Portrait with tall detector = false")
	}
	if cfg.Portrait(nil) {
		t.Error("auto Portrait with nil detector = true")
	}
	if (Config{Orientation: "landscape"}).Portrait(func() bool { return true }) {
		t.Error("landscape Portrait = true")
	}
}
