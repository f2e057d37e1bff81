package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lk16/stacker/internal/config"
	"github.com/lk16/stacker/internal/models"
	"github.com/lk16/stacker/internal/tetris"
)

const (
	submitTimeout = 3 * time.Second
)

// Submitter sends finished games to the score server.
type Submitter interface {
	SubmitScore(ctx context.Context, submission models.ScoreSubmission) (models.ScoreEntry, error)
}

// App plays a game in the terminal.
type App struct {
	screen tcell.Screen
	game   *tetris.Game
	tick   time.Duration

	// submitter is nil when scores are not submitted.
	submitter  Submitter
	playerName string

	// submitted prevents submitting the same game twice.
	submitted bool

	// status is a message shown below the score.
	status string
}

// New creates an App drawing on an initialized screen.
func New(screen tcell.Screen, game *tetris.Game, cfg *config.GameConfig) *App {
	return &App{
		screen: screen,
		game:   game,
		tick:   cfg.Tick,
	}
}

// WithSubmitter makes the App submit the score of every finished game.
func (a *App) WithSubmitter(playerName string, submitter Submitter) *App {
	a.playerName = playerName
	a.submitter = submitter
	return a
}

// HandleKey handles a key press and returns false if the App should quit.
func (a *App) HandleKey(ev *tcell.EventKey) bool {
	action, move := bindKey(ev)

	switch action {
	case actionQuit:
		return false
	case actionReset:
		a.game.Reset()
		a.submitted = false
		a.status = ""
	case actionMove:
		if a.game.IsGameOver() {
			return true
		}

		if _, err := a.game.Apply(move); err != nil && !errors.Is(err, tetris.ErrNoActiveTetromino) {
			slog.Error("failed to apply move", "move", move.String(), "error", err)
		}
	case actionNone:
	}

	return true
}

// Tick advances the game by one clock tick.
func (a *App) Tick() {
	if a.game.IsGameOver() {
		if _, ok := a.game.Board().ActiveTetromino(); !ok {
			a.submitOnce()
			return
		}
	}

	if err := a.game.Clock(); err != nil && !errors.Is(err, tetris.ErrSequenceExhausted) {
		slog.Error("clock tick failed", "error", err)
	}
}

func (a *App) submitOnce() {
	if a.submitted || a.submitter == nil {
		return
	}
	a.submitted = true

	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()

	entry, err := a.submitter.SubmitScore(ctx, models.NewScoreSubmission(a.playerName, a.game))
	if err != nil {
		slog.Warn("failed to submit score", "error", err)
		a.status = "Score not submitted"
		return
	}

	a.status = fmt.Sprintf("Submitted %d for %s", entry.Score, entry.PlayerName)
}

// Run plays until the player quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)

	go a.screen.ChannelEvents(events, quit)

	level := a.game.Level()
	ticker := time.NewTicker(config.TickInterval(a.tick, level))
	defer ticker.Stop()

	a.Draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}

			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
		case <-ticker.C:
			a.Tick()

			if a.game.Level() != level {
				level = a.game.Level()
				ticker.Reset(config.TickInterval(a.tick, level))
			}
		}

		a.Draw()
	}
}
