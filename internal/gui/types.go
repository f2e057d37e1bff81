package gui

import "github.com/lk16/stacker/internal/tetris"

// DrawArgs contains arguments for drawing the window content.
type DrawArgs struct {
	// Board is the current board, including the active tetromino
	Board *tetris.Board

	// Next is the tetromino issued after the active one, if any
	Next    tetris.Tetromino
	HasNext bool

	// Hint is where the bot would drop the active tetromino
	Hint *tetris.ActiveTetromino

	Score int
	Lines int
	Level int

	// GameOver indicates the next tetromino no longer fits
	GameOver bool

	// Paused indicates the clock is stopped
	Paused bool
}
