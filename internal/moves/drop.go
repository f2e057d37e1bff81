package moves

import (
	"github.com/lk16/stacker/internal/tetris"
)

// Drop is a hard drop: the active tetromino moves down until the next step
// down would not fit. It does not lock the tetromino, that happens on the
// following clock ticks.
type Drop struct{}

// IsValid checks that there is an active tetromino. Dropping zero rows is allowed.
func (Drop) IsValid(board *tetris.Board) bool {
	_, ok := board.ActiveTetromino()
	return ok
}

// Apply returns a copy of board with the active tetromino dropped.
func (Drop) Apply(board *tetris.Board) (*tetris.Board, error) {
	if _, ok := board.ActiveTetromino(); !ok {
		return nil, tetris.ErrNoActiveTetromino
	}

	dropped := board.Copy()

	// Every step moves one row down, so the loop ends within height steps.
	for range board.Height() {
		if !Down.IsValid(dropped) {
			break
		}

		next, err := Down.Apply(dropped)
		if err != nil {
			return nil, err
		}
		dropped = next
	}

	return dropped, nil
}

// Distance returns how many rows a hard drop would move the active tetromino.
func (Drop) Distance(board *tetris.Board) int {
	active, ok := board.ActiveTetromino()
	if !ok {
		return 0
	}

	rows := 0
	for rows < board.Height() && fits(board, active.Translate(0, -(rows+1))) {
		rows++
	}
	return rows
}

func (Drop) String() string {
	return "drop"
}
