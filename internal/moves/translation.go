package moves

import (
	"fmt"

	"github.com/lk16/stacker/internal/tetris"
)

// Translation moves the active tetromino by a fixed offset.
type Translation struct {
	DX int
	DY int
}

func (t Translation) step(tetromino tetris.ActiveTetromino) tetris.ActiveTetromino {
	return tetromino.Translate(t.DX, t.DY)
}

// IsValid checks if the moved tetromino stays on the board without overlapping placed cells.
func (t Translation) IsValid(board *tetris.Board) bool {
	return isValidStep(board, t)
}

// Apply returns a copy of board with the active tetromino moved.
func (t Translation) Apply(board *tetris.Board) (*tetris.Board, error) {
	return applyStep(board, t)
}

func (t Translation) String() string {
	switch t {
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("translate(%d,%d)", t.DX, t.DY)
	}
}
