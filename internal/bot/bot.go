package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/lk16/stacker/internal/moves"
	"github.com/lk16/stacker/internal/tetris"
)

// ErrNoPlacement is returned when the active tetromino cannot be dropped anywhere.
var ErrNoPlacement = errors.New("no placement found")

// Plan is a list of moves that drops the active tetromino in a chosen place.
type Plan struct {
	Moves  []tetris.Move
	Landed tetris.ActiveTetromino
	Score  float64
}

// Bot picks placements greedily, looking only at the active tetromino.
type Bot struct {
	weights Weights
}

func New(weights Weights) *Bot {
	return &Bot{weights: weights}
}

// candidateMoves returns the moves that rotate the active tetromino rotations
// times clockwise, shift it by dx columns and then drop it.
func candidateMoves(rotations, dx int) []tetris.Move {
	list := make([]tetris.Move, 0, rotations+abs(dx)+1)

	for range rotations {
		list = append(list, moves.Clockwise)
	}

	shift := moves.Right
	if dx < 0 {
		shift = moves.Left
	}

	for range abs(dx) {
		list = append(list, shift)
	}

	return append(list, moves.HardDrop)
}

// simulate applies moves to a copy of board. It returns false if any move is invalid.
func simulate(board *tetris.Board, list []tetris.Move) (*tetris.Board, bool) {
	for _, move := range list {
		if !move.IsValid(board) {
			return nil, false
		}

		var err error
		if board, err = move.Apply(board); err != nil {
			return nil, false
		}
	}
	return board, true
}

// Plan finds the best reachable placement of the active tetromino.
func (b *Bot) Plan(board *tetris.Board) (Plan, error) {
	if _, ok := board.ActiveTetromino(); !ok {
		return Plan{}, tetris.ErrNoActiveTetromino
	}

	best := Plan{Score: math.Inf(-1)}
	seen := make(map[string]struct{})

	for rotations := range 4 {
		for dx := -board.Width(); dx <= board.Width(); dx++ {
			list := candidateMoves(rotations, dx)

			dropped, ok := simulate(board, list)
			if !ok {
				continue
			}

			landed, _ := dropped.ActiveTetromino()
			if !dropped.CanPlace(landed) {
				continue
			}

			// Different move lists can end in the same place.
			key := landed.String()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			after := dropped.Copy()
			after.PlaceTetromino(landed)
			after.ClearActiveTetromino()
			rows := after.ClearFullLines()

			score := b.weights.evaluate(after, landed, rows)
			if score > best.Score {
				best = Plan{Moves: list, Landed: landed, Score: score}
			}
		}
	}

	if best.Moves == nil {
		return Plan{}, ErrNoPlacement
	}

	return best, nil
}

// PlayPiece plans and plays one tetromino, issuing one first if needed.
// It returns false if the game is over and nothing was placed.
func (b *Bot) PlayPiece(game *tetris.Game) (bool, error) {
	if _, ok := game.Board().ActiveTetromino(); !ok {
		if game.IsGameOver() {
			return false, nil
		}

		if err := game.Clock(); err != nil && !errors.Is(err, tetris.ErrSequenceExhausted) {
			return false, err
		}
	}

	if _, ok := game.Board().ActiveTetromino(); !ok {
		return false, nil
	}

	plan, err := b.Plan(game.Board())
	if err != nil {
		return false, err
	}

	for _, move := range plan.Moves {
		if _, err = game.Apply(move); err != nil {
			return false, fmt.Errorf("failed to play plan: %w", err)
		}
	}

	// Land and lock.
	for {
		if _, ok := game.Board().ActiveTetromino(); !ok {
			break
		}
		if err = game.Clock(); err != nil {
			return false, err
		}
	}

	slog.Debug("bot placed tetromino", "landed", plan.Landed.String(), "score", plan.Score, "lines", game.Lines())

	return true, nil
}

// Run plays until the game is over or maxPieces tetrominoes are placed.
// A maxPieces of zero means no limit. It returns the number of placed tetrominoes.
func (b *Bot) Run(game *tetris.Game, maxPieces int) (int, error) {
	pieces := 0

	for maxPieces == 0 || pieces < maxPieces {
		placed, err := b.PlayPiece(game)
		if err != nil {
			if errors.Is(err, ErrNoPlacement) {
				return pieces, nil
			}
			return pieces, err
		}

		if !placed {
			break
		}

		pieces++
	}

	return pieces, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
