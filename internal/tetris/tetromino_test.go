package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangle(t *testing.T) {
	r := NewRectangle(3, 4, -1, 2)
	require.Equal(t, Rectangle{MinX: -1, MaxX: 3, MinY: 2, MaxY: 4}, r)
	require.Equal(t, 5, r.Width())
	require.Equal(t, 3, r.Height())

	require.True(t, r.Contains(-1, 2))
	require.True(t, r.Contains(3, 4))
	require.False(t, r.Contains(4, 4))
	require.False(t, r.Contains(0, 1))

	moved := r.Translate(2, -2)
	require.Equal(t, Rectangle{MinX: 1, MaxX: 5, MinY: 0, MaxY: 2}, moved)
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind  Kind
		want  string
		color Color
	}{
		{Empty, "_", NoColor},
		{I, "I", Cyan},
		{J, "J", Blue},
		{L, "L", Orange},
		{O, "O", Yellow},
		{S, "S", Green},
		{T, "T", Magenta},
		{Z, "Z", Red},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.kind.String())
			require.Equal(t, tt.color, tt.kind.Color())

			parsed, err := ParseKind(tt.want[0])
			require.NoError(t, err)
			require.Equal(t, tt.kind, parsed)
		})
	}
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind('.')
	require.NoError(t, err)
	require.Equal(t, Empty, kind)

	_, err = ParseKind('X')
	require.Error(t, err)
}

func TestTetrominoCells(t *testing.T) {
	tests := []struct {
		name   string
		tetro  Tetromino
		want   []Point
		bounds Rectangle
	}{
		{
			name:   "T spawn",
			tetro:  NewTetromino(T),
			want:   []Point{{0, 1}, {-1, 0}, {0, 0}, {1, 0}},
			bounds: Rectangle{MinX: -1, MaxX: 1, MinY: 0, MaxY: 1},
		},
		{
			name:   "T clockwise",
			tetro:  NewTetromino(T).Rotate(1),
			want:   []Point{{1, 0}, {0, 1}, {0, 0}, {0, -1}},
			bounds: Rectangle{MinX: 0, MaxX: 1, MinY: -1, MaxY: 1},
		},
		{
			name:   "I spawn",
			tetro:  NewTetromino(I),
			want:   []Point{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
			bounds: Rectangle{MinX: -1, MaxX: 2, MinY: 0, MaxY: 0},
		},
		{
			name:   "I clockwise",
			tetro:  NewTetromino(I).Rotate(1),
			want:   []Point{{0, 1}, {0, 0}, {0, -1}, {0, -2}},
			bounds: Rectangle{MinX: 0, MaxX: 0, MinY: -2, MaxY: 1},
		},
		{
			name:   "O",
			tetro:  NewTetromino(O),
			want:   []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			bounds: Rectangle{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ElementsMatch(t, tt.want, tt.tetro.Cells())
			require.Equal(t, tt.bounds, tt.tetro.BoundingBox())

			for y := tt.bounds.MinY - 1; y <= tt.bounds.MaxY+1; y++ {
				for x := tt.bounds.MinX - 1; x <= tt.bounds.MaxX+1; x++ {
					assert.Equal(t, containsPoint(tt.want, x, y), tt.tetro.IsWithin(x, y), "(%d, %d)", x, y)
				}
			}
		})
	}
}

func containsPoint(points []Point, x, y int) bool {
	for _, p := range points {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

func TestTetrominoRotate(t *testing.T) {
	for _, kind := range AllKinds {
		t.Run(kind.String(), func(t *testing.T) {
			tetro := NewTetromino(kind)

			require.Equal(t, tetro, tetro.Rotate(4))
			require.Equal(t, tetro, tetro.Rotate(1).Rotate(-1))
			require.Equal(t, tetro.Rotate(3), tetro.Rotate(-1))
			require.Len(t, tetro.Rotate(1).Cells(), 4)
			require.Equal(t, kind, tetro.Rotate(2).Kind())
		})
	}

	o := NewTetromino(O)
	require.Equal(t, o, o.Rotate(1))
	require.Equal(t, 0, o.Rotate(3).Orientation())
}

func TestEmptyTetromino(t *testing.T) {
	var tetro Tetromino
	require.Empty(t, tetro.Cells())
	require.False(t, tetro.IsWithin(0, 0))
	require.Equal(t, NoColor, tetro.Color())
}

func TestActiveTetromino(t *testing.T) {
	active := NewActiveTetromino(4, 10, NewTetromino(T))

	require.Equal(t, T, active.Kind())
	require.Equal(t, Point{X: 4, Y: 10}, active.Position())
	require.False(t, active.HasLanded())
	require.Equal(t, Rectangle{MinX: 3, MaxX: 5, MinY: 10, MaxY: 11}, active.BoundingBox())
	require.ElementsMatch(t, []Point{{4, 11}, {3, 10}, {4, 10}, {5, 10}}, active.Cells())
	require.True(t, active.IsWithin(4, 11))
	require.False(t, active.IsWithin(3, 11))

	landed := active.Landed()
	require.True(t, landed.HasLanded())
	require.False(t, active.HasLanded())

	moved := landed.Translate(-1, -2)
	require.False(t, moved.HasLanded())
	require.Equal(t, Point{X: 3, Y: 8}, moved.Position())
	require.Equal(t, Point{X: 4, Y: 10}, active.Position())

	rotated := active.Rotate(1)
	require.Equal(t, 1, rotated.Tetromino().Orientation())
	require.Equal(t, 0, active.Tetromino().Orientation())
	require.Equal(t, "T1@(4,10)", rotated.String())
}
