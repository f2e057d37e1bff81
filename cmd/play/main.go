package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/lk16/stacker/internal/config"
	"github.com/lk16/stacker/internal/scoreboard"
	"github.com/lk16/stacker/internal/tetris"
	"github.com/lk16/stacker/internal/tui"
)

func main() {
	cfg := config.LoadGameConfig()

	flag.IntVar(&cfg.BoardWidth, "width", cfg.BoardWidth, "number of columns")
	flag.IntVar(&cfg.BoardHeight, "height", cfg.BoardHeight, "number of rows")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the tetromino sequence, 0 for a random seed")
	name := flag.String("name", os.Getenv("USER"), "player name used when submitting scores")
	logFile := flag.String("log", "", "write logs to this file, logs are discarded if empty")
	flag.Parse()

	// Log lines would be drawn over the game.
	logOutput, err := openLog(*logFile)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer logOutput.Close()
	config.SetLogOutput(logOutput)

	game, err := tetris.NewGame(tetris.NewBagSequence(cfg.Seed), cfg.BoardWidth, cfg.BoardHeight)
	if err != nil {
		log.Fatalf("failed to create game: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}

	if err = screen.Init(); err != nil {
		log.Fatalf("failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	app := tui.New(screen, game, cfg)

	if clientConfig := config.LoadClientConfigOptional(); clientConfig != nil {
		app.WithSubmitter(*name, scoreboard.NewAPIClient(clientConfig, false))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = app.Run(ctx); err != nil && ctx.Err() == nil {
		screen.Fini()
		log.Fatalf("game stopped: %v", err)
	}
}

type discardCloser struct {
	io.Writer
}

func (discardCloser) Close() error {
	return nil
}

func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return discardCloser{io.Discard}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
