package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/lk16/stacker/internal/bot"
	"github.com/lk16/stacker/internal/config"
	"github.com/lk16/stacker/internal/models"
	"github.com/lk16/stacker/internal/moves"
	"github.com/lk16/stacker/internal/scoreboard"
	"github.com/lk16/stacker/internal/tetris"
)

const submitTimeout = 5 * time.Second

func main() {
	cfg := config.LoadGameConfig()

	flag.IntVar(&cfg.BoardWidth, "width", cfg.BoardWidth, "number of columns")
	flag.IntVar(&cfg.BoardHeight, "height", cfg.BoardHeight, "number of rows")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed of the tetromino sequence, 0 for a random seed")
	script := flag.String("moves", "", "comma separated moves to replay, for example left,cw,drop. The bot plays if empty")
	pieces := flag.Int("pieces", 1000, "maximum number of tetrominoes the bot places, 0 for no limit")
	name := flag.String("name", "", "submit the result to the score server under this player name")
	verbose := flag.Bool("verbose", false, "log requests to the score server")
	flag.Parse()

	config.SetLogLevel()

	game, err := tetris.NewGame(tetris.NewBagSequence(cfg.Seed), cfg.BoardWidth, cfg.BoardHeight)
	if err != nil {
		log.Fatalf("failed to create game: %v", err)
	}

	start := time.Now()

	if *script != "" {
		list, err := moves.ParseList(*script)
		if err != nil {
			log.Fatalf("failed to parse moves: %v", err)
		}

		applied, err := moves.Play(game, list)
		if err != nil {
			log.Fatalf("failed to replay moves: %v", err)
		}
		fmt.Printf("applied %d of %d moves\n", applied, len(list))
	} else {
		placed, err := bot.New(bot.DefaultWeights).Run(game, *pieces)
		if err != nil {
			log.Fatalf("bot failed: %v", err)
		}
		fmt.Printf("bot placed %d tetrominoes in %s\n", placed, time.Since(start).Round(time.Millisecond))
	}

	fmt.Print(game.Board().String())
	fmt.Printf("score: %d\nlines: %d\nlevel: %d\ngame over: %t\n", game.Score(), game.Lines(), game.Level(), game.IsGameOver())

	if *name == "" {
		return
	}

	client := scoreboard.NewAPIClient(config.LoadClientConfig(), *verbose)

	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()

	entry, err := client.SubmitScore(ctx, models.NewScoreSubmission(*name, game))
	if err != nil {
		log.Fatalf("failed to submit score: %v", err)
	}
	fmt.Printf("submitted score %d as %s\n", entry.Score, entry.ID)
}
