package moves

import (
	"fmt"

	"github.com/lk16/stacker/internal/tetris"
)

// Rotation turns the active tetromino around its center. Rotations that do
// not fit are rejected, the tetromino is never shifted to make room.
type Rotation struct {
	// Steps is the number of quarter turns, positive is clockwise.
	Steps int
}

func (r Rotation) step(tetromino tetris.ActiveTetromino) tetris.ActiveTetromino {
	return tetromino.Rotate(r.Steps)
}

// IsValid checks if the rotated tetromino stays on the board without overlapping placed cells.
func (r Rotation) IsValid(board *tetris.Board) bool {
	return isValidStep(board, r)
}

// Apply returns a copy of board with the active tetromino rotated.
func (r Rotation) Apply(board *tetris.Board) (*tetris.Board, error) {
	return applyStep(board, r)
}

func (r Rotation) String() string {
	switch r {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	default:
		return fmt.Sprintf("rotate(%d)", r.Steps)
	}
}
