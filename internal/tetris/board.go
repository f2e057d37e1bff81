package tetris

import (
	"fmt"
	"strings"
)

// Board is a grid of locked tetromino cells with an optional active tetromino
// drawn on top. Row 0 is the bottom row.
type Board struct {
	width  int
	height int

	// cells is a row-major list of placed cells, Empty where free.
	cells []Kind

	// activeTetromino is the tetromino being controlled, if any. It is never
	// written into cells and is shared between copies, which is safe because
	// ActiveTetromino values are never modified.
	activeTetromino *ActiveTetromino
}

// NewBoard creates an empty board.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	return &Board{
		width:  width,
		height: height,
		cells:  make([]Kind, width*height),
	}, nil
}

// ParseBoard creates a board from rows as printed by String, top row first.
// Pipes are ignored, '_' and '.' are free cells. All cells are placed cells.
func ParseBoard(s string) (*Board, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), "|", "")
		if line != "" {
			rows = append(rows, line)
		}
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows found", ErrInvalidDimensions)
	}

	board, err := NewBoard(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if len(row) != board.width {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", i, len(row), board.width)
		}

		y := board.height - 1 - i
		for x := range board.width {
			kind, err := ParseKind(row[x])
			if err != nil {
				return nil, fmt.Errorf("failed to parse row %d: %w", i, err)
			}
			board.cells[board.index(x, y)] = kind
		}
	}

	return board, nil
}

// Copy returns an independent copy. Changes to the placed cells of either board
// are never visible in the other.
func (b *Board) Copy() *Board {
	cells := make([]Kind, len(b.cells))
	copy(cells, b.cells)

	return &Board{
		width:           b.width,
		height:          b.height,
		cells:           cells,
		activeTetromino: b.activeTetromino,
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// ActiveTetromino returns the active tetromino and whether there is one.
func (b *Board) ActiveTetromino() (ActiveTetromino, bool) {
	if b.activeTetromino == nil {
		return ActiveTetromino{}, false
	}
	return *b.activeTetromino, true
}

// SetActiveTetromino replaces the active tetromino.
func (b *Board) SetActiveTetromino(tetromino ActiveTetromino) {
	b.activeTetromino = &tetromino
}

// ClearActiveTetromino removes the active tetromino.
func (b *Board) ClearActiveTetromino() {
	b.activeTetromino = nil
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) isInside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) checkBounds(x, y int) error {
	if !b.isInside(x, y) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfBounds, x, y, b.width, b.height)
	}
	return nil
}

// CellAt returns what occupies a cell, including the active tetromino.
func (b *Board) CellAt(x, y int) (Kind, error) {
	if err := b.checkBounds(x, y); err != nil {
		return Empty, err
	}

	if b.activeTetromino != nil && b.activeTetromino.IsWithin(x, y) {
		return b.activeTetromino.Kind(), nil
	}

	return b.cells[b.index(x, y)], nil
}

// PlacedAt returns the locked occupant of a cell, ignoring the active tetromino.
func (b *Board) PlacedAt(x, y int) (Kind, error) {
	if err := b.checkBounds(x, y); err != nil {
		return Empty, err
	}
	return b.cells[b.index(x, y)], nil
}

// SetPlaced writes a locked cell. Passing Empty clears the cell.
func (b *Board) SetPlaced(x, y int, kind Kind) error {
	if err := b.checkBounds(x, y); err != nil {
		return err
	}
	b.cells[b.index(x, y)] = kind
	return nil
}

// InBounds checks if a rectangle lies completely on the board.
func (b *Board) InBounds(r Rectangle) bool {
	return r.MinX >= 0 && r.MaxX < b.width && r.MinY >= 0 && r.MaxY < b.height
}

// CanPlace checks that every cell claimed by piece is on the board and not
// taken by a placed cell. This is how the end of the game is detected.
func (b *Board) CanPlace(piece Piece) bool {
	r := piece.BoundingBox()

	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			if !piece.IsWithin(x, y) {
				continue
			}

			if !b.isInside(x, y) || !b.cells[b.index(x, y)].IsEmpty() {
				return false
			}
		}
	}

	return true
}

// Collides checks if piece claims any on-board cell that is already placed.
// Cells outside the board are ignored, callers check bounds separately.
func (b *Board) Collides(piece Piece) bool {
	r := piece.BoundingBox()

	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			if b.isInside(x, y) && piece.IsWithin(x, y) && !b.cells[b.index(x, y)].IsEmpty() {
				return true
			}
		}
	}

	return false
}

// IsAtBottom checks if moving tetromino one row down would leave the board.
func (b *Board) IsAtBottom(tetromino ActiveTetromino) bool {
	return tetromino.Translate(0, -1).BoundingBox().MinY < 0
}

// HasTetrominoBelow checks if moving tetromino one row down would hit a placed cell.
func (b *Board) HasTetrominoBelow(tetromino ActiveTetromino) bool {
	return b.Collides(tetromino.Translate(0, -1))
}

// PlaceTetromino writes every cell claimed by piece into the placed cells
// without checking them first. Claimed cells outside the board are skipped.
func (b *Board) PlaceTetromino(piece Piece) {
	r := piece.BoundingBox()
	kind := piece.Kind()

	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			if b.isInside(x, y) && piece.IsWithin(x, y) {
				b.cells[b.index(x, y)] = kind
			}
		}
	}
}

// IsRowFull checks if every column of row y holds a placed cell.
func (b *Board) IsRowFull(y int) bool {
	for x := range b.width {
		if b.cells[b.index(x, y)].IsEmpty() {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, bottom first.
func (b *Board) FullRows() []int {
	rows := make([]int, 0)
	for y := range b.height {
		if b.IsRowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearFullLines removes all full rows and returns how many were removed.
// Rows above a removed row move down by one for every removed row below them,
// the rows freed at the top become empty.
func (b *Board) ClearFullLines() int {
	target := 0

	for y := range b.height {
		if b.IsRowFull(y) {
			continue
		}

		if target != y {
			copy(b.cells[b.index(0, target):b.index(0, target+1)], b.cells[b.index(0, y):b.index(0, y+1)])
		}
		target++
	}

	cleared := b.height - target
	clear(b.cells[b.index(0, target):])

	return cleared
}

// PlacedCount returns the number of placed cells.
func (b *Board) PlacedCount() int {
	count := 0
	for _, kind := range b.cells {
		if !kind.IsEmpty() {
			count++
		}
	}
	return count
}

// PlacedCells returns a copy of the placed cells in row-major order.
func (b *Board) PlacedCells() []Kind {
	cells := make([]Kind, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// String returns the board with the active tetromino, top row first.
func (b *Board) String() string {
	var builder strings.Builder

	for y := b.height - 1; y >= 0; y-- {
		builder.WriteString("|")
		for x := range b.width {
			kind, _ := b.CellAt(x, y) //nolint:errcheck
			builder.WriteString(kind.String())
			builder.WriteString("|")
		}
		builder.WriteString("\n")
	}

	return builder.String()
}
