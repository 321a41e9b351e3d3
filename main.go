package main

import (
	"errors"
	"flag"
	"io"
	"log"

	"github.com/gookit/color"

	"minesweep/pkg/engine/input"
	"minesweep/pkg/engine/terminal"
	"minesweep/pkg/game/config"
	"minesweep/pkg/game/devtools"
	"minesweep/pkg/game/gameplay"
	"minesweep/pkg/game/leaderboard"
	"minesweep/pkg/game/renderer"
	"minesweep/pkg/game/renderer/tui"
	"minesweep/pkg/game/text"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// flags default to the environment so either can be used
	flag.StringVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "simple, normal, hard or custom")
	flag.IntVar(&cfg.Columns, "columns", cfg.Columns, "custom board columns")
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "custom board rows")
	flag.IntVar(&cfg.Mines, "mines", cfg.Mines, "custom mine count, 0 for the suggested count")
	flag.StringVar(&cfg.Player, "player", cfg.Player, "name recorded on the leaderboard")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for a random board")
	flag.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	flag.StringVar(&cfg.Orientation, "orientation", cfg.Orientation, "auto, landscape or portrait")
	dumpDir := flag.String("dump", "", "write a debug dump of the first board to board.txt in this directory")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	level, _ := cfg.Level()

	if cfg.NoColor {
		color.Enable = false
	}

	var r renderer.Renderer = tui.New()
	r.Init()

	g := gameplay.New(leaderboard.New(cfg.Player), gameplay.WithRand(cfg.Rand()))
	g.SetPortrait(cfg.Portrait(terminal.IsPortrait))
	if err := g.StartGame(level, cfg.Size(), cfg.MineCount()); err != nil {
		log.Fatalf("start game: %v", err)
	}

	if *dumpDir != "" {
		path, err := devtools.DumpBoardToFile(*dumpDir, g)
		if err != nil {
			log.Fatalf("dump: %v", err)
		}
		log.Printf("board dumped to %s", path)
	}

	for !g.QuitRequested {
		mainLoop(g, r)
	}

	r.ShowMessage(text.Get("GOODBYE"))
}

func mainLoop(g *gameplay.Game, r renderer.Renderer) {
	if input.IsInteractive() {
		r.Clear()
	}
	r.RenderFrame(g)

	intent, err := r.GetInput()
	if errors.Is(err, io.EOF) {
		g.QuitRequested = true
		r.ShowMessage("")
		return
	}
	if err != nil {
		log.Printf("input: %v", err)
		g.QuitRequested = true
		return
	}

	// problems the player should see are already in the message log
	_ = gameplay.ProcessIntent(g, intent)
}
