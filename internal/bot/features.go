package bot

import (
	"github.com/lk16/stacker/internal/tetris"
)

// Weights scores a placement as a weighted sum of board features.
// Positive weights reward a feature, negative weights punish it.
type Weights struct {
	LandingHeight  float64
	RowsCleared    float64
	RowTransitions float64
	ColTransitions float64
	Holes          float64
	WellSums       float64
}

// DefaultWeights are Dellacherie's hand tuned weights.
var DefaultWeights = Weights{
	LandingHeight:  -1,
	RowsCleared:    1,
	RowTransitions: -1,
	ColTransitions: -1,
	Holes:          -4,
	WellSums:       -1,
}

// grid is a read-only view of the placed cells of a board.
type grid struct {
	width  int
	height int
	cells  []tetris.Kind
}

func newGrid(board *tetris.Board) grid {
	return grid{
		width:  board.Width(),
		height: board.Height(),
		cells:  board.PlacedCells(),
	}
}

// filled returns whether a cell is taken. Walls and floor count as taken.
func (g grid) filled(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 {
		return true
	}
	if y >= g.height {
		return false
	}
	return !g.cells[y*g.width+x].IsEmpty()
}

// rowTransitions counts horizontally neighboring cells of which one is filled.
func (g grid) rowTransitions() int {
	count := 0
	for y := range g.height {
		for x := 0; x <= g.width; x++ {
			if g.filled(x-1, y) != g.filled(x, y) {
				count++
			}
		}
	}
	return count
}

// colTransitions counts vertically neighboring cells of which one is filled.
func (g grid) colTransitions() int {
	count := 0
	for x := range g.width {
		for y := range g.height {
			if g.filled(x, y-1) != g.filled(x, y) {
				count++
			}
		}
	}
	return count
}

// holes counts empty cells with a filled cell somewhere above them.
func (g grid) holes() int {
	count := 0
	for x := range g.width {
		covered := false
		for y := g.height - 1; y >= 0; y-- {
			if g.filled(x, y) {
				covered = true
			} else if covered {
				count++
			}
		}
	}
	return count
}

// wellSums adds up every well, a well of depth n counting 1+2+...+n.
func (g grid) wellSums() int {
	sum := 0
	for x := range g.width {
		depth := 0
		for y := g.height - 1; y >= 0; y-- {
			if !g.filled(x, y) && g.filled(x-1, y) && g.filled(x+1, y) {
				depth++
				sum += depth
			} else {
				depth = 0
			}
		}
	}
	return sum
}

// evaluate scores a board after the tetromino that landed at landed was locked and rows were cleared.
func (w Weights) evaluate(board *tetris.Board, landed tetris.ActiveTetromino, rowsCleared int) float64 {
	box := landed.BoundingBox()
	landingHeight := float64(box.MinY+box.MaxY) / 2

	g := newGrid(board)

	return w.LandingHeight*landingHeight +
		w.RowsCleared*float64(rowsCleared) +
		w.RowTransitions*float64(g.rowTransitions()) +
		w.ColTransitions*float64(g.colTransitions()) +
		w.Holes*float64(g.holes()) +
		w.WellSums*float64(g.wellSums())
}
