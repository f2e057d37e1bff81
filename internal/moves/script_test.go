package moves

import (
	"testing"

	"github.com/lk16/stacker/internal/tetris"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	game, err := tetris.NewGame(tetris.NewCyclicSequence(tetris.I), 8, 10)
	require.NoError(t, err)

	script, err := ParseList("left,left,left,drop,right,drop")
	require.NoError(t, err)

	applied, err := Play(game, script)
	require.NoError(t, err)
	require.Equal(t, 6, applied)

	// Two horizontal I tetrominoes fill the bottom row and clear it.
	require.Equal(t, 1, game.Lines())
	require.Equal(t, tetris.ScoreForLines(1), game.Score())
	require.Equal(t, 0, game.Board().PlacedCount())

	_, ok := game.Board().ActiveTetromino()
	require.False(t, ok)
}

func TestPlaySkipsInvalidMoves(t *testing.T) {
	game, err := tetris.NewGame(tetris.NewCyclicSequence(tetris.O), 4, 6)
	require.NoError(t, err)

	// The O starts against the right wall.
	applied, err := Play(game, []tetris.Move{Right, Right, Left})
	require.NoError(t, err)
	require.Equal(t, 1, applied)

	expected, err := tetris.ParseBoard(`
		....
		....
		....
		....
		.OO.
		.OO.
	`)
	require.NoError(t, err)
	require.Equal(t, expected.PlacedCells(), game.Board().PlacedCells())
}

func TestPlayStopsAtGameOver(t *testing.T) {
	game, err := tetris.NewGame(tetris.NewCyclicSequence(tetris.O), 4, 4)
	require.NoError(t, err)

	script := make([]tetris.Move, 50)
	for i := range script {
		script[i] = HardDrop
	}

	_, err = Play(game, script)
	require.NoError(t, err)
	require.True(t, game.IsGameOver())
}

func TestPlayExhaustedSequence(t *testing.T) {
	game, err := tetris.NewGame(tetris.NewFixedSequence(tetris.T), 6, 6)
	require.NoError(t, err)

	applied, err := Play(game, []tetris.Move{HardDrop, HardDrop, HardDrop})
	require.NoError(t, err)
	require.Equal(t, 1, applied)
	require.Equal(t, 4, game.Board().PlacedCount())
	require.True(t, game.IsGameOver())
}
