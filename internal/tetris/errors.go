package tetris

import "errors"

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrNoActiveTetromino is returned when a move is attempted without an active tetromino.
	ErrNoActiveTetromino = errors.New("board has no active tetromino")

	// ErrSequenceExhausted is returned when the tetromino sequence runs dry.
	ErrSequenceExhausted = errors.New("tetromino sequence exhausted")

	// ErrInvalidDimensions is returned for boards without any cells.
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
)
