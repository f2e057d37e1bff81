package tetris

import (
	"fmt"
)

// Kind identifies one of the seven tetromino shapes. The zero value is Empty,
// which is used for free cells on a board.
type Kind uint8

const (
	Empty Kind = iota
	I
	J
	L
	O
	S
	T
	Z
)

// AllKinds lists every non-empty kind in a stable order.
var AllKinds = [7]Kind{I, J, L, O, S, T, Z}

// Color is the display color of a tetromino.
type Color uint8

const (
	NoColor Color = iota
	Cyan
	Blue
	Orange
	Yellow
	Green
	Magenta
	Red
)

var colorNames = [...]string{
	NoColor: "none",
	Cyan:    "cyan",
	Blue:    "blue",
	Orange:  "orange",
	Yellow:  "yellow",
	Green:   "green",
	Magenta: "magenta",
	Red:     "red",
}

// String returns the lowercase name of the color.
func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", c)
	}
	return colorNames[c]
}

// Point is an offset or coordinate on the board grid.
type Point struct {
	X int
	Y int
}

type shapeDef struct {
	letter byte
	color  Color

	// cells are offsets from the rotation center in spawn orientation, y pointing up.
	cells [4]Point

	// rotates is false for shapes that look the same in every orientation.
	rotates bool
}

var shapes = [...]shapeDef{
	Empty: {letter: '_', color: NoColor},
	I:     {letter: 'I', color: Cyan, rotates: true, cells: [4]Point{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}},
	J:     {letter: 'J', color: Blue, rotates: true, cells: [4]Point{{-1, 1}, {-1, 0}, {0, 0}, {1, 0}}},
	L:     {letter: 'L', color: Orange, rotates: true, cells: [4]Point{{1, 1}, {-1, 0}, {0, 0}, {1, 0}}},
	O:     {letter: 'O', color: Yellow, rotates: false, cells: [4]Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	S:     {letter: 'S', color: Green, rotates: true, cells: [4]Point{{-1, 0}, {0, 0}, {0, 1}, {1, 1}}},
	T:     {letter: 'T', color: Magenta, rotates: true, cells: [4]Point{{0, 1}, {-1, 0}, {0, 0}, {1, 0}}},
	Z:     {letter: 'Z', color: Red, rotates: true, cells: [4]Point{{-1, 1}, {0, 1}, {0, 0}, {1, 0}}},
}

// String returns the single letter used for the kind in board dumps.
func (k Kind) String() string {
	if int(k) >= len(shapes) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return string(shapes[k].letter)
}

// Color returns the display color of the kind.
func (k Kind) Color() Color {
	if int(k) >= len(shapes) {
		return NoColor
	}
	return shapes[k].color
}

// IsEmpty checks if the kind denotes a free cell.
func (k Kind) IsEmpty() bool {
	return k == Empty
}

// ParseKind converts a board dump letter back to a kind. Both '_' and '.' mean Empty.
func ParseKind(letter byte) (Kind, error) {
	if letter == '.' {
		return Empty, nil
	}

	for kind, shape := range shapes {
		if shape.letter == letter {
			return Kind(kind), nil //nolint:gosec
		}
	}

	return Empty, fmt.Errorf("unknown tetromino letter %q", letter)
}

// Tetromino is a shape in a given orientation, positioned around the origin.
type Tetromino struct {
	kind Kind

	// orientation is the number of clockwise quarter turns from spawn orientation, in [0,4).
	orientation int
}

// NewTetromino creates a tetromino of the given kind in spawn orientation.
func NewTetromino(kind Kind) Tetromino {
	return Tetromino{kind: kind}
}

// Kind returns the shape kind.
func (t Tetromino) Kind() Kind {
	return t.kind
}

// Color returns the display color.
func (t Tetromino) Color() Color {
	return t.kind.Color()
}

// Orientation returns the number of clockwise quarter turns applied.
func (t Tetromino) Orientation() int {
	return t.orientation
}

// Rotate returns the tetromino turned by steps quarter turns, positive is clockwise.
func (t Tetromino) Rotate(steps int) Tetromino {
	if !shapes[t.kind].rotates {
		return t
	}

	orientation := (t.orientation + steps) % 4
	if orientation < 0 {
		orientation += 4
	}

	return Tetromino{kind: t.kind, orientation: orientation}
}

// Cells returns the occupied offsets relative to the rotation center.
func (t Tetromino) Cells() []Point {
	if t.kind == Empty {
		return nil
	}

	base := shapes[t.kind].cells
	cells := make([]Point, len(base))

	for i, cell := range base {
		x, y := cell.X, cell.Y

		// A clockwise quarter turn maps (x, y) to (y, -x) when y points up.
		for range t.orientation {
			x, y = y, -x
		}

		cells[i] = Point{X: x, Y: y}
	}

	return cells
}

// BoundingBox returns the smallest rectangle around all cells, relative to the rotation center.
func (t Tetromino) BoundingBox() Rectangle {
	cells := t.Cells()
	if len(cells) == 0 {
		return Rectangle{}
	}

	box := Rectangle{MinX: cells[0].X, MaxX: cells[0].X, MinY: cells[0].Y, MaxY: cells[0].Y}
	for _, cell := range cells[1:] {
		box.MinX = min(box.MinX, cell.X)
		box.MaxX = max(box.MaxX, cell.X)
		box.MinY = min(box.MinY, cell.Y)
		box.MaxY = max(box.MaxY, cell.Y)
	}

	return box
}

// IsWithin checks if the relative point (x, y) is covered by this tetromino.
func (t Tetromino) IsWithin(x, y int) bool {
	if !t.BoundingBox().Contains(x, y) {
		return false
	}

	for _, cell := range t.Cells() {
		if cell.X == x && cell.Y == y {
			return true
		}
	}

	return false
}

// String returns the kind letter followed by the orientation, e.g. "T1".
func (t Tetromino) String() string {
	return fmt.Sprintf("%s%d", t.kind, t.orientation)
}
