package tetris

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// translateMove is a minimal Move used to drive the game without the moves package.
type translateMove struct {
	dx int
	dy int
}

func (m translateMove) IsValid(board *Board) bool {
	active, ok := board.ActiveTetromino()
	if !ok {
		return false
	}

	moved := active.Translate(m.dx, m.dy)
	return board.InBounds(moved.BoundingBox()) && !board.Collides(moved)
}

func (m translateMove) Apply(board *Board) (*Board, error) {
	active, ok := board.ActiveTetromino()
	if !ok {
		return nil, ErrNoActiveTetromino
	}

	updated := board.Copy()
	updated.SetActiveTetromino(active.Translate(m.dx, m.dy))
	return updated, nil
}

func (m translateMove) String() string {
	return "translate"
}

// clockUntilLocked spawns a tetromino if needed and clocks until it is locked.
// It returns the number of ticks used.
func clockUntilLocked(t *testing.T, game *Game) int {
	t.Helper()

	ticks := 0
	if _, ok := game.Board().ActiveTetromino(); !ok {
		require.NoError(t, game.Clock())
		ticks++
	}

	for range 1000 {
		if _, ok := game.Board().ActiveTetromino(); !ok {
			return ticks
		}
		require.NoError(t, game.Clock())
		ticks++
	}

	require.FailNow(t, "tetromino was never locked")
	return ticks
}

func TestNewGame(t *testing.T) {
	game, err := NewGame(NewCyclicSequence(T, O), 10, 20)
	require.NoError(t, err)

	require.Equal(t, 0, game.Lines())
	require.Equal(t, 0, game.Score())
	require.Equal(t, 1, game.Level())
	require.False(t, game.IsGameOver())

	next, ok := game.NextTetromino()
	require.True(t, ok)
	require.Equal(t, T, next.Kind())

	_, ok = game.Board().ActiveTetromino()
	require.False(t, ok)
}

func TestNewGameErrors(t *testing.T) {
	_, err := NewGame(NewCyclicSequence(T), 0, 20)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = NewGame(NewFixedSequence(), 10, 20)
	require.ErrorIs(t, err, ErrSequenceExhausted)
}

func TestGameClockSpawn(t *testing.T) {
	game, err := NewGame(NewCyclicSequence(T, O), 10, 20)
	require.NoError(t, err)

	require.NoError(t, game.Clock())

	active, ok := game.Board().ActiveTetromino()
	require.True(t, ok)
	require.Equal(t, T, active.Kind())
	require.Equal(t, Point{X: 5, Y: 18}, active.Position())

	next, ok := game.NextTetromino()
	require.True(t, ok)
	require.Equal(t, O, next.Kind())
}

func TestGameFallsToFloorAndLocks(t *testing.T) {
	game, err := NewGame(NewCyclicSequence(O), 10, 20)
	require.NoError(t, err)

	// One tick to spawn, 18 ticks to fall from row 18, one to land, one to lock.
	ticks := clockUntilLocked(t, game)
	require.Equal(t, 21, ticks)

	require.False(t, game.IsGameOver())
	require.Equal(t, 0, game.Lines())
	require.Equal(t, 0, game.Score())

	board := game.Board()
	require.Equal(t, 4, board.PlacedCount())
	for _, p := range []Point{{5, 0}, {6, 0}, {5, 1}, {6, 1}} {
		kind, err := board.PlacedAt(p.X, p.Y)
		require.NoError(t, err)
		require.Equal(t, O, kind)
	}
}

func TestGameLandingIsSeparateFromLocking(t *testing.T) {
	game, err := NewGame(NewCyclicSequence(O), 4, 4)
	require.NoError(t, err)

	// Spawn at row 2, fall to rows 0 and 1.
	for range 3 {
		require.NoError(t, game.Clock())
	}

	active, ok := game.Board().ActiveTetromino()
	require.True(t, ok)
	require.False(t, active.HasLanded())
	require.Equal(t, 0, active.BoundingBox().MinY)

	require.NoError(t, game.Clock())
	active, ok = game.Board().ActiveTetromino()
	require.True(t, ok)
	require.True(t, active.HasLanded())
	require.Equal(t, 0, game.Board().PlacedCount())

	require.NoError(t, game.Clock())
	_, ok = game.Board().ActiveTetromino()
	require.False(t, ok)
	require.Equal(t, 4, game.Board().PlacedCount())
}

func TestGameStacksOnPlacedCells(t *testing.T) {
	game, err := NewGame(NewCyclicSequence(O), 6, 8)
	require.NoError(t, err)

	clockUntilLocked(t, game)
	clockUntilLocked(t, game)

	expected := mustParseBoard(t, `
		......
		......
		......
		......
		...OO.
		...OO.
		...OO.
		...OO.
	`)
	require.Equal(t, expected.PlacedCells(), game.Board().PlacedCells())
}

func TestGameClearsLine(t *testing.T) {
	game, err := NewGame(NewCyclicSequence(I), 5, 6)
	require.NoError(t, err)

	board := game.Board()
	require.NoError(t, board.SetPlaced(0, 0, J))
	require.NoError(t, board.SetPlaced(0, 1, T))

	clockUntilLocked(t, game)

	require.Equal(t, 1, game.Lines())
	require.Equal(t, ScoreForLines(1), game.Score())

	expected := mustParseBoard(t, `
		.....
		.....
		.....
		.....
		.....
		T....
	`)
	require.Equal(t, expected.PlacedCells(), game.Board().PlacedCells())
	require.False(t, game.IsGameOver())
}

func TestGameOver(t *testing.T) {
	game, err := NewGame(NewCyclicSequence(O), 6, 6)
	require.NoError(t, err)

	// The O tetromino spawns with cells in rows 4 and 5, columns 3 and 4.
	require.NoError(t, game.Board().SetPlaced(3, 4, Z))
	require.True(t, game.IsGameOver())

	before := game.Board().String()
	for range 5 {
		require.NoError(t, game.Clock())
		require.True(t, game.IsGameOver())
		require.Equal(t, before, game.Board().String())
	}

	_, ok := game.Board().ActiveTetromino()
	require.False(t, ok)
}

func TestGameOverAfterFilling(t *testing.T) {
	game, err := NewGame(NewCyclicSequence(O), 4, 6)
	require.NoError(t, err)

	for range 100 {
		if game.IsGameOver() {
			break
		}
		require.NoError(t, game.Clock())
	}

	require.True(t, game.IsGameOver())
	require.Equal(t, 0, game.Lines())
}

func TestGameApply(t *testing.T) {
	game, err := NewGame(NewCyclicSequence(O), 6, 6)
	require.NoError(t, err)

	_, err = game.Apply(translateMove{dx: -1})
	require.ErrorIs(t, err, ErrNoActiveTetromino)

	require.NoError(t, game.Clock())
	before := game.Board()

	applied, err := game.Apply(translateMove{dx: -1})
	require.NoError(t, err)
	require.True(t, applied)
	require.NotSame(t, before, game.Board())

	active, _ := game.Board().ActiveTetromino()
	require.Equal(t, Point{X: 2, Y: 4}, active.Position())

	// The top of the board blocks moving up, the board stays untouched.
	current := game.Board()
	applied, err = game.Apply(translateMove{dy: 1})
	require.NoError(t, err)
	require.False(t, applied)
	require.Same(t, current, game.Board())
}

func TestGameReset(t *testing.T) {
	game, err := NewGame(NewCyclicSequence(I, O, T), 6, 8)
	require.NoError(t, err)

	require.NoError(t, game.Board().SetPlaced(0, 0, Z))
	require.NoError(t, game.Clock())

	next, _ := game.NextTetromino()
	require.Equal(t, O, next.Kind())

	game.Reset()

	require.Equal(t, 0, game.Lines())
	require.Equal(t, 0, game.Score())
	require.Equal(t, 0, game.Board().PlacedCount())
	require.Equal(t, 6, game.Board().Width())
	require.Equal(t, 8, game.Board().Height())

	_, ok := game.Board().ActiveTetromino()
	require.False(t, ok)

	// The sequence is not restarted.
	require.NoError(t, game.Clock())
	active, ok := game.Board().ActiveTetromino()
	require.True(t, ok)
	require.Equal(t, O, active.Kind())

	next, _ = game.NextTetromino()
	require.Equal(t, T, next.Kind())
}

func TestGameSequenceExhausted(t *testing.T) {
	game, err := NewGame(NewFixedSequence(O), 6, 6)
	require.NoError(t, err)

	err = game.Clock()
	require.ErrorIs(t, err, ErrSequenceExhausted)

	_, ok := game.Board().ActiveTetromino()
	require.True(t, ok)
	require.True(t, game.IsGameOver())

	_, ok = game.NextTetromino()
	require.False(t, ok)
}

func TestScoreForLines(t *testing.T) {
	tests := []struct {
		rows int
		want int
	}{
		{-1, 0},
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
		{5, 1200},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ScoreForLines(tt.rows), "rows=%d", tt.rows)
	}

	for rows := range 10 {
		require.LessOrEqual(t, ScoreForLines(rows), ScoreForLines(rows+1))
	}
}

func TestGameLevel(t *testing.T) {
	game, err := NewGame(NewCyclicSequence(O), 4, 4)
	require.NoError(t, err)

	game.lines = 9
	require.Equal(t, 1, game.Level())

	game.lines = 10
	require.Equal(t, 2, game.Level())
}
