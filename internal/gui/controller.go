package gui

import (
	"errors"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lk16/stacker/internal/config"
	"github.com/lk16/stacker/internal/moves"
	"github.com/lk16/stacker/internal/tetris"
)

type Controller struct {
	// game is the game being played
	game *tetris.Game

	// tick is the clock interval at level 1
	tick time.Duration

	// elapsed is the time since the last clock tick
	elapsed time.Duration

	// hints computes bot placements in the background
	hints *hintListener

	// pieceID goes up whenever a tetromino is issued
	pieceID int

	// hadActive is whether the board had an active tetromino after the previous update
	hadActive bool

	// hintEnabled indicates if we show where the bot would drop the active tetromino
	hintEnabled bool

	paused bool
}

func NewWindow(game *tetris.Game, cfg *config.GameConfig) *Controller {
	hints := newHintListener()
	go hints.Listen()

	return &Controller{
		game:  game,
		tick:  cfg.Tick,
		hints: hints,
	}
}

func (c *Controller) Run() {
	rl.SetTraceLogLevel(rl.LogError)

	board := c.game.Board()
	rl.InitWindow(windowWidthPx(board.Width()), windowHeightPx(board.Height()), "Stacker")
	defer rl.CloseWindow()
	defer close(c.hints.requestChan)

	rl.SetTargetFPS(60)

	windowDrawer := newWindowDrawer(c)

	for !rl.WindowShouldClose() {
		c.handleEvents()
		c.advance(time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)))
		windowDrawer.draw()
	}
}

func (c *Controller) handleEvents() {
	for {
		key := rl.GetKeyPressed()
		if key == rl.KeyNull {
			break
		}

		c.OnKeyPress(key)
	}
}

// advance runs the clock for the time passed since the previous frame.
func (c *Controller) advance(frameTime time.Duration) {
	if c.paused {
		return
	}

	c.elapsed += frameTime

	interval := config.TickInterval(c.tick, c.game.Level())
	for c.elapsed >= interval {
		c.elapsed -= interval

		if err := c.game.Clock(); err != nil && !errors.Is(err, tetris.ErrSequenceExhausted) {
			slog.Error("clock tick failed", "error", err)
		}
	}

	c.OnBoardChange()
}

func (c *Controller) applyMove(move tetris.Move) {
	if c.paused || c.game.IsGameOver() {
		return
	}

	if _, err := c.game.Apply(move); err != nil && !errors.Is(err, tetris.ErrNoActiveTetromino) {
		slog.Error("failed to apply move", "move", move.String(), "error", err)
	}
}

func (c *Controller) OnKeyPress(key int32) {
	switch key {
	case rl.KeyLeft:
		c.applyMove(moves.Left)
	case rl.KeyRight:
		c.applyMove(moves.Right)
	case rl.KeyDown:
		c.applyMove(moves.Down)
	case rl.KeyUp, rl.KeyX:
		c.applyMove(moves.Clockwise)
	case rl.KeyZ:
		c.applyMove(moves.CounterClockwise)
	case rl.KeySpace:
		c.applyMove(moves.HardDrop)

	// Print current board.
	case rl.KeyD:
		slog.Info("current board", "board", "\n"+c.game.Board().String())

	// Restart game
	case rl.KeyN:
		c.game.Reset()
		c.elapsed = 0

	// Toggle showing where the bot would drop the active tetromino
	case rl.KeyH:
		c.hintEnabled = !c.hintEnabled
		c.hadActive = false

	case rl.KeyP:
		c.paused = !c.paused
	}

	c.OnBoardChange()
}

// OnBoardChange requests a hint whenever a new tetromino is issued.
func (c *Controller) OnBoardChange() {
	_, hasActive := c.game.Board().ActiveTetromino()

	if hasActive && !c.hadActive {
		c.pieceID++

		if c.hintEnabled {
			c.hints.requestChan <- hintRequest{pieceID: c.pieceID, board: c.game.Board().Copy()}
		}
	}

	c.hadActive = hasActive
}

func (c *Controller) GetDrawArgs() *DrawArgs {
	next, hasNext := c.game.NextTetromino()

	args := &DrawArgs{
		Board:    c.game.Board(),
		Next:     next,
		HasNext:  hasNext,
		Score:    c.game.Score(),
		Lines:    c.game.Lines(),
		Level:    c.game.Level(),
		GameOver: c.game.IsGameOver(),
		Paused:   c.paused,
	}

	if c.hintEnabled {
		args.Hint = c.hints.Lookup(c.pieceID)
	}

	return args
}
