package tetris

import (
	"fmt"
	"log/slog"
)

// Move is a transformation of the active tetromino. Moves are checked with
// IsValid before Apply produces the updated board. Neither method modifies
// the board passed in.
type Move interface {
	IsValid(board *Board) bool
	Apply(board *Board) (*Board, error)
	String() string
}

// lineScores is the score for clearing 0 to 4 rows at once.
var lineScores = [...]int{0, 100, 300, 500, 800}

// extraLineScore is added for every row beyond four cleared at once.
const extraLineScore = 400

// ScoreForLines returns the points awarded for clearing rows at once.
func ScoreForLines(rows int) int {
	if rows <= 0 {
		return 0
	}

	last := len(lineScores) - 1
	if rows <= last {
		return lineScores[rows]
	}

	return lineScores[last] + (rows-last)*extraLineScore
}

// Game is a running game: it applies moves, drives gravity on every clock
// tick, locks landed tetrominoes and keeps the score.
type Game struct {
	// sequence hands out new tetrominoes, it is kept on Reset.
	sequence Sequence

	// nextTetromino is shown to the player and becomes active once the current one is locked.
	nextTetromino ActiveTetromino

	// hasNext is false once the sequence ran out.
	hasNext bool

	board *Board

	lines int
	score int
}

// NewGame creates a game with an empty board and draws the first tetromino.
func NewGame(sequence Sequence, width, height int) (*Game, error) {
	board, err := NewBoard(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	g := &Game{
		sequence: sequence,
		board:    board,
	}

	if err := g.drawNext(); err != nil {
		return nil, err
	}

	return g, nil
}

// Lines returns the number of rows removed so far.
func (g *Game) Lines() int {
	return g.lines
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Level returns the level, which goes up every ten rows removed.
func (g *Game) Level() int {
	return g.lines/10 + 1
}

// Board returns the live board. Callers must treat it as read-only.
func (g *Game) Board() *Board {
	return g.board
}

// NextTetromino returns the tetromino that will be issued next.
func (g *Game) NextTetromino() (Tetromino, bool) {
	return g.nextTetromino.Tetromino(), g.hasNext
}

// IsGameOver checks if the next tetromino can no longer be placed.
func (g *Game) IsGameOver() bool {
	return !g.hasNext || !g.board.CanPlace(g.nextTetromino)
}

// Reset clears the board, lines and score. The sequence continues where it was.
func (g *Game) Reset() {
	g.lines = 0
	g.score = 0
	g.board = &Board{
		width:  g.board.width,
		height: g.board.height,
		cells:  make([]Kind, g.board.width*g.board.height),
	}
}

// Apply applies a move if it is valid. Invalid moves are ignored and return false.
func (g *Game) Apply(move Move) (bool, error) {
	if _, ok := g.board.ActiveTetromino(); !ok {
		return false, fmt.Errorf("cannot apply %s: %w", move, ErrNoActiveTetromino)
	}

	if !move.IsValid(g.board) {
		return false, nil
	}

	board, err := move.Apply(g.board)
	if err != nil {
		return false, fmt.Errorf("failed to apply %s: %w", move, err)
	}

	g.board = board
	return true, nil
}

// Clock advances the game by one tick. A falling tetromino either moves down
// one row or is marked as landed. A landed tetromino is locked on the next
// tick, after which full rows are removed. Without an active tetromino the
// next one is issued, unless the game is over.
func (g *Game) Clock() error {
	active, ok := g.board.ActiveTetromino()

	switch {
	case ok && !active.HasLanded():
		if g.board.IsAtBottom(active) || g.board.HasTetrominoBelow(active) {
			g.board.SetActiveTetromino(active.Landed())
			return nil
		}

		g.board.SetActiveTetromino(active.Translate(0, -1))
	case ok:
		g.lock(active)
	default:
		return g.issueNext()
	}

	return nil
}

func (g *Game) lock(active ActiveTetromino) {
	g.board.PlaceTetromino(active)
	g.board.ClearActiveTetromino()

	rows := g.board.ClearFullLines()
	g.lines += rows
	g.score += ScoreForLines(rows)

	slog.Debug("locked tetromino", "tetromino", active.String(), "rows", rows, "lines", g.lines, "score", g.score)
}

func (g *Game) issueNext() error {
	if !g.hasNext {
		return ErrSequenceExhausted
	}

	if !g.board.CanPlace(g.nextTetromino) {
		slog.Debug("game over", "next", g.nextTetromino.String(), "lines", g.lines, "score", g.score)
		return nil
	}

	g.board.SetActiveTetromino(g.nextTetromino)
	return g.drawNext()
}

// drawNext takes a new tetromino from the sequence and centers it near the top.
func (g *Game) drawNext() error {
	tetromino, ok := g.sequence.Next()
	if !ok {
		g.hasNext = false
		return ErrSequenceExhausted
	}

	g.nextTetromino = NewActiveTetromino(g.board.width/2, g.board.height-2, tetromino)
	g.hasNext = true
	return nil
}
