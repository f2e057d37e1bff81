package tetris

import "fmt"

// Piece is anything that claims cells on a board.
type Piece interface {
	BoundingBox() Rectangle
	IsWithin(x, y int) bool
	Kind() Kind
}

// ActiveTetromino is a tetromino bound to a board position. Values are never
// modified in place: every transformation returns a new ActiveTetromino, so a
// candidate position can be checked without disturbing the original.
type ActiveTetromino struct {
	tetromino Tetromino

	// x and y locate the rotation center on the board.
	x int
	y int

	hasLanded bool
}

// NewActiveTetromino places a tetromino with its rotation center at (x, y).
func NewActiveTetromino(x, y int, tetromino Tetromino) ActiveTetromino {
	return ActiveTetromino{
		tetromino: tetromino,
		x:         x,
		y:         y,
	}
}

// Tetromino returns the underlying shape.
func (a ActiveTetromino) Tetromino() Tetromino {
	return a.tetromino
}

// Kind returns the kind of the underlying shape.
func (a ActiveTetromino) Kind() Kind {
	return a.tetromino.Kind()
}

// Position returns the board coordinates of the rotation center.
func (a ActiveTetromino) Position() Point {
	return Point{X: a.x, Y: a.y}
}

// HasLanded returns whether the tetromino was found unable to fall further.
func (a ActiveTetromino) HasLanded() bool {
	return a.hasLanded
}

// Landed returns a copy marked as landed.
func (a ActiveTetromino) Landed() ActiveTetromino {
	a.hasLanded = true
	return a
}

// BoundingBox returns the bounding box in board coordinates.
func (a ActiveTetromino) BoundingBox() Rectangle {
	return a.tetromino.BoundingBox().Translate(a.x, a.y)
}

// IsWithin checks if board cell (x, y) is covered by this tetromino.
func (a ActiveTetromino) IsWithin(x, y int) bool {
	return a.tetromino.IsWithin(x-a.x, y-a.y)
}

// Cells returns the covered board cells.
func (a ActiveTetromino) Cells() []Point {
	cells := a.tetromino.Cells()
	for i := range cells {
		cells[i].X += a.x
		cells[i].Y += a.y
	}
	return cells
}

// Translate returns a falling copy moved by dx columns and dy rows.
func (a ActiveTetromino) Translate(dx, dy int) ActiveTetromino {
	return ActiveTetromino{
		tetromino: a.tetromino,
		x:         a.x + dx,
		y:         a.y + dy,
	}
}

// Rotate returns a falling copy turned by steps quarter turns around its center.
func (a ActiveTetromino) Rotate(steps int) ActiveTetromino {
	return ActiveTetromino{
		tetromino: a.tetromino.Rotate(steps),
		x:         a.x,
		y:         a.y,
	}
}

func (a ActiveTetromino) String() string {
	return fmt.Sprintf("%s@(%d,%d)", a.tetromino, a.x, a.y)
}
