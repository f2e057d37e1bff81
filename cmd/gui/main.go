package main

import (
	"flag"
	"log"

	"github.com/lk16/stacker/internal/config"
	"github.com/lk16/stacker/internal/gui"
	"github.com/lk16/stacker/internal/tetris"
)

func main() {
	cfg := config.LoadGameConfig()

	flag.IntVar(&cfg.BoardWidth, "width", cfg.BoardWidth, "number of columns")
	flag.IntVar(&cfg.BoardHeight, "height", cfg.BoardHeight, "number of rows")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the tetromino sequence, 0 for a random seed")
	flag.Parse()

	config.SetLogLevel()

	game, err := tetris.NewGame(tetris.NewBagSequence(cfg.Seed), cfg.BoardWidth, cfg.BoardHeight)
	if err != nil {
		log.Fatalf("failed to create game: %v", err)
	}

	gui.NewWindow(game, cfg).Run()
}
