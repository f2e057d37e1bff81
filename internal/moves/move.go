package moves

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lk16/stacker/internal/tetris"
)

// ErrUnknownMove is returned by Parse for unrecognized move names.
var ErrUnknownMove = errors.New("unknown move")

var (
	Left             = Translation{DX: -1}
	Right            = Translation{DX: 1}
	Down             = Translation{DY: -1}
	Up               = Translation{DY: 1} // Only used to simulate positions, never offered to players.
	Clockwise        = Rotation{Steps: 1}
	CounterClockwise = Rotation{Steps: -1}
	HardDrop         = Drop{}
)

// stepper computes the position of the active tetromino after one step of a move.
type stepper interface {
	step(tetromino tetris.ActiveTetromino) tetris.ActiveTetromino
}

// isValidStep checks one step of a move against the placed cells of board.
func isValidStep(board *tetris.Board, s stepper) bool {
	active, ok := board.ActiveTetromino()
	if !ok {
		return false
	}

	return fits(board, s.step(active))
}

// fits checks that a tetromino stays on the board and does not overlap placed cells.
// The active tetromino is not part of the placed cells, so it never blocks itself.
func fits(board *tetris.Board, candidate tetris.ActiveTetromino) bool {
	if !board.InBounds(candidate.BoundingBox()) {
		return false
	}

	return !board.Collides(candidate)
}

// applyStep returns a copy of board with one step of a move applied.
func applyStep(board *tetris.Board, s stepper) (*tetris.Board, error) {
	active, ok := board.ActiveTetromino()
	if !ok {
		return nil, tetris.ErrNoActiveTetromino
	}

	updated := board.Copy()
	updated.SetActiveTetromino(s.step(active))
	return updated, nil
}

// Parse returns the move with the given name.
func Parse(name string) (tetris.Move, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	case "down", "d":
		return Down, nil
	case "cw", "rotate", "clockwise":
		return Clockwise, nil
	case "ccw", "counterclockwise":
		return CounterClockwise, nil
	case "drop", "hard-drop":
		return HardDrop, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMove, name)
	}
}

// ParseList parses a comma separated list of move names.
func ParseList(s string) ([]tetris.Move, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	names := strings.Split(s, ",")
	parsed := make([]tetris.Move, 0, len(names))

	for _, name := range names {
		move, err := Parse(name)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, move)
	}

	return parsed, nil
}
