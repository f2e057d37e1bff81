package moves

import (
	"errors"
	"fmt"

	"github.com/lk16/stacker/internal/tetris"
)

// Play replays script on game. A tetromino is issued first when there is
// none. Every move is followed by one clock tick, except a hard drop, after
// which the game is clocked until the tetromino is locked. The tetromino left
// after the script is locked the same way. Invalid moves are skipped.
// Play returns the number of moves that were applied.
func Play(game *tetris.Game, script []tetris.Move) (int, error) {
	applied := 0

	for _, move := range script {
		if _, ok := game.Board().ActiveTetromino(); !ok {
			if game.IsGameOver() {
				return applied, nil
			}

			if err := clock(game); err != nil {
				return applied, err
			}
		}

		ok, err := game.Apply(move)
		if err != nil && !errors.Is(err, tetris.ErrNoActiveTetromino) {
			return applied, fmt.Errorf("failed to play %s: %w", move, err)
		}
		if ok {
			applied++
		}

		if _, isDrop := move.(Drop); isDrop {
			err = lockActive(game)
		} else {
			err = clock(game)
		}

		if err != nil {
			return applied, err
		}
	}

	return applied, lockActive(game)
}

// lockActive clocks until the active tetromino is locked.
func lockActive(game *tetris.Game) error {
	// Every tick moves the tetromino down, lands it or locks it.
	for range game.Board().Height() + 2 {
		if _, ok := game.Board().ActiveTetromino(); !ok {
			return nil
		}

		if err := clock(game); err != nil {
			return err
		}
	}
	return nil
}

// clock runs one clock tick. Running out of tetrominoes is not an error, it ends the game.
func clock(game *tetris.Game) error {
	if err := game.Clock(); err != nil && !errors.Is(err, tetris.ErrSequenceExhausted) {
		return err
	}
	return nil
}
