package moves

import (
	"testing"

	"github.com/lk16/stacker/internal/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardWithActive(t *testing.T, rows string, active tetris.ActiveTetromino) *tetris.Board {
	t.Helper()

	board, err := tetris.ParseBoard(rows)
	require.NoError(t, err)

	board.SetActiveTetromino(active)
	return board
}

func activeOf(t *testing.T, board *tetris.Board) tetris.ActiveTetromino {
	t.Helper()

	active, ok := board.ActiveTetromino()
	require.True(t, ok)
	return active
}

const emptyRows = `
	......
	......
	......
	......
	......
	......
`

func TestTranslation(t *testing.T) {
	tests := []struct {
		name   string
		move   Translation
		active tetris.ActiveTetromino
		want   bool
	}{
		{"left", Left, tetris.NewActiveTetromino(2, 2, tetris.NewTetromino(tetris.T)), true},
		{"left at wall", Left, tetris.NewActiveTetromino(1, 2, tetris.NewTetromino(tetris.T)), false},
		{"right", Right, tetris.NewActiveTetromino(3, 2, tetris.NewTetromino(tetris.T)), true},
		{"right at wall", Right, tetris.NewActiveTetromino(4, 2, tetris.NewTetromino(tetris.T)), false},
		{"down", Down, tetris.NewActiveTetromino(3, 1, tetris.NewTetromino(tetris.T)), true},
		{"down at floor", Down, tetris.NewActiveTetromino(3, 0, tetris.NewTetromino(tetris.T)), false},
		{"up", Up, tetris.NewActiveTetromino(3, 3, tetris.NewTetromino(tetris.T)), true},
		{"up at top", Up, tetris.NewActiveTetromino(3, 4, tetris.NewTetromino(tetris.T)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardWithActive(t, emptyRows, tt.active)
			require.Equal(t, tt.want, tt.move.IsValid(board))

			updated, err := tt.move.Apply(board)
			require.NoError(t, err)

			// The original board is never changed.
			require.Equal(t, tt.active, activeOf(t, board))

			moved := activeOf(t, updated)
			require.Equal(t, tt.active.Position().X+tt.move.DX, moved.Position().X)
			require.Equal(t, tt.active.Position().Y+tt.move.DY, moved.Position().Y)
		})
	}
}

func TestTranslationBlockedByPlacedCells(t *testing.T) {
	rows := `
		......
		......
		......
		.....Z
		......
		......
	`
	board := boardWithActive(t, rows, tetris.NewActiveTetromino(3, 2, tetris.NewTetromino(tetris.T)))

	require.False(t, Right.IsValid(board))
	require.True(t, Left.IsValid(board))
	require.True(t, Down.IsValid(board))

	// Cells occupied by the active tetromino itself never block it.
	moved, err := Down.Apply(board)
	require.NoError(t, err)
	require.True(t, Up.IsValid(moved))
}

func TestTranslationRoundTrip(t *testing.T) {
	start := tetris.NewActiveTetromino(3, 2, tetris.NewTetromino(tetris.S))
	board := boardWithActive(t, emptyRows, start)

	pairs := [][2]Translation{{Left, Right}, {Right, Left}, {Down, Up}, {Up, Down}}
	for _, pair := range pairs {
		t.Run(pair[0].String()+"-"+pair[1].String(), func(t *testing.T) {
			require.True(t, pair[0].IsValid(board))
			there, err := pair[0].Apply(board)
			require.NoError(t, err)

			require.True(t, pair[1].IsValid(there))
			back, err := pair[1].Apply(there)
			require.NoError(t, err)

			active := activeOf(t, back)
			require.Equal(t, start.Position(), active.Position())
			require.ElementsMatch(t, start.Cells(), active.Cells())
		})
	}
}

func TestRotation(t *testing.T) {
	board := boardWithActive(t, emptyRows, tetris.NewActiveTetromino(2, 2, tetris.NewTetromino(tetris.T)))

	require.True(t, Clockwise.IsValid(board))
	rotated, err := Clockwise.Apply(board)
	require.NoError(t, err)
	require.Equal(t, 1, activeOf(t, rotated).Tetromino().Orientation())
	require.Equal(t, 0, activeOf(t, board).Tetromino().Orientation())

	require.True(t, CounterClockwise.IsValid(rotated))
	back, err := CounterClockwise.Apply(rotated)
	require.NoError(t, err)
	require.Equal(t, activeOf(t, board), activeOf(t, back))
}

func TestRotationRejectedAtWall(t *testing.T) {
	// A vertical I against the left wall cannot turn back to horizontal.
	vertical := tetris.NewActiveTetromino(0, 3, tetris.NewTetromino(tetris.I).Rotate(1))
	board := boardWithActive(t, emptyRows, vertical)

	require.False(t, CounterClockwise.IsValid(board))
	require.False(t, Clockwise.IsValid(board))
}

func TestRotationRejectedByPlacedCells(t *testing.T) {
	rows := `
		......
		......
		......
		......
		..J...
		......
	`
	board := boardWithActive(t, rows, tetris.NewActiveTetromino(2, 2, tetris.NewTetromino(tetris.T)))

	// Turning clockwise would claim the cell below the center.
	require.False(t, Clockwise.IsValid(board))
	require.False(t, CounterClockwise.IsValid(board))
}

func TestDrop(t *testing.T) {
	board := boardWithActive(t, emptyRows, tetris.NewActiveTetromino(2, 4, tetris.NewTetromino(tetris.L)))

	require.True(t, HardDrop.IsValid(board))
	require.Equal(t, 4, HardDrop.Distance(board))

	dropped, err := HardDrop.Apply(board)
	require.NoError(t, err)

	active := activeOf(t, dropped)
	require.Equal(t, 0, active.BoundingBox().MinY)
	require.False(t, active.HasLanded())
	require.True(t, dropped.IsAtBottom(active))
	require.Equal(t, 0, dropped.PlacedCount())

	require.Equal(t, tetris.Point{X: 2, Y: 4}, activeOf(t, board).Position())
}

func TestDropOntoStack(t *testing.T) {
	rows := `
		......
		......
		......
		......
		......
		..OO..
	`
	board := boardWithActive(t, rows, tetris.NewActiveTetromino(3, 4, tetris.NewTetromino(tetris.I)))

	dropped, err := HardDrop.Apply(board)
	require.NoError(t, err)

	active := activeOf(t, dropped)
	require.Equal(t, 1, active.BoundingBox().MinY)
	require.True(t, dropped.HasTetrominoBelow(active))

	// Dropping an already dropped tetromino changes nothing.
	again, err := HardDrop.Apply(dropped)
	require.NoError(t, err)
	require.Equal(t, active, activeOf(t, again))
}

func TestDropAlwaysLands(t *testing.T) {
	rows := `
		........
		........
		........
		........
		........
		........
		.Z....J.
		ZZ.I..J.
		Z..I.JJ.
		O..I.LLL
		OO.ISSL.
	`

	for _, kind := range tetris.AllKinds {
		for orientation := range 4 {
			for x := range 8 {
				active := tetris.NewActiveTetromino(x, 8, tetris.NewTetromino(kind).Rotate(orientation))
				board := boardWithActive(t, rows, active)
				if !board.CanPlace(active) {
					continue
				}

				dropped, err := HardDrop.Apply(board)
				require.NoError(t, err)

				landed := activeOf(t, dropped)
				assert.True(t, dropped.IsAtBottom(landed) || dropped.HasTetrominoBelow(landed), "%s", landed)
				assert.True(t, dropped.CanPlace(landed), "%s", landed)
				assert.LessOrEqual(t, active.Position().Y-landed.Position().Y, board.Height())
				assert.False(t, Down.IsValid(dropped), "%s", landed)
			}
		}
	}
}

func TestMovesWithoutActiveTetromino(t *testing.T) {
	board, err := tetris.NewBoard(6, 6)
	require.NoError(t, err)

	all := []tetris.Move{Left, Right, Down, Up, Clockwise, CounterClockwise, HardDrop}
	for _, move := range all {
		t.Run(move.String(), func(t *testing.T) {
			require.False(t, move.IsValid(board))

			_, err := move.Apply(board)
			require.ErrorIs(t, err, tetris.ErrNoActiveTetromino)
		})
	}

	require.Equal(t, 0, HardDrop.Distance(board))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    tetris.Move
		wantErr error
	}{
		{"left", Left, nil},
		{" Right ", Right, nil},
		{"down", Down, nil},
		{"cw", Clockwise, nil},
		{"ccw", CounterClockwise, nil},
		{"drop", HardDrop, nil},
		{"up", nil, ErrUnknownMove},
		{"", nil, ErrUnknownMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move, err := Parse(tt.name)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, move)
		})
	}
}

func TestParseList(t *testing.T) {
	parsed, err := ParseList("left,cw,drop")
	require.NoError(t, err)
	require.Equal(t, []tetris.Move{Left, Clockwise, HardDrop}, parsed)

	parsed, err = ParseList("  ")
	require.NoError(t, err)
	require.Empty(t, parsed)

	_, err = ParseList("left,jump")
	require.ErrorIs(t, err, ErrUnknownMove)
}

func TestMoveString(t *testing.T) {
	require.Equal(t, "left", Left.String())
	require.Equal(t, "up", Up.String())
	require.Equal(t, "translate(2,0)", Translation{DX: 2}.String())
	require.Equal(t, "cw", Clockwise.String())
	require.Equal(t, "rotate(2)", Rotation{Steps: 2}.String())
	require.Equal(t, "drop", HardDrop.String())
}
