package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lk16/stacker/internal/tetris"
)

const (
	CellSize     = 30
	SidebarWidth = 180
	Padding      = 10
	FontSize     = 20
)

func windowWidthPx(columns int) int32 {
	return int32(columns*CellSize + SidebarWidth) //nolint:gosec
}

func windowHeightPx(rows int) int32 {
	return int32(rows * CellSize) //nolint:gosec
}

var (
	backgroundColor = rl.NewColor(20, 20, 30, 255)
	gridColor       = rl.NewColor(40, 40, 55, 255)
	textColor       = rl.RayWhite
)

type windowDrawer struct {
	controller *Controller
}

func newWindowDrawer(controller *Controller) *windowDrawer {
	return &windowDrawer{controller: controller}
}

func (w *windowDrawer) kindToColor(kind tetris.Kind) rl.Color {
	switch kind.Color() {
	case tetris.Cyan:
		return rl.SkyBlue
	case tetris.Blue:
		return rl.Blue
	case tetris.Orange:
		return rl.Orange
	case tetris.Yellow:
		return rl.Yellow
	case tetris.Green:
		return rl.Green
	case tetris.Magenta:
		return rl.Magenta
	case tetris.Red:
		return rl.Red
	default:
		return backgroundColor
	}
}

func (w *windowDrawer) draw() {
	args := w.controller.GetDrawArgs()
	board := args.Board

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	for y := range board.Height() {
		for x := range board.Width() {
			kind, _ := board.CellAt(x, y) //nolint:errcheck
			w.drawCell(x, y, board.Height(), kind)
		}
	}

	if args.Hint != nil {
		w.drawHint(*args.Hint, board.Height())
	}

	w.drawSidebar(args)

	rl.EndDrawing()
}

// getCellCorner returns the top left pixel of a board cell. Row 0 is drawn at the bottom.
func (w *windowDrawer) getCellCorner(x, y, rows int) (int32, int32) {
	px := x * CellSize
	py := (rows - 1 - y) * CellSize

	return int32(px), int32(py) //nolint:gosec
}

func (w *windowDrawer) drawCell(x, y, rows int, kind tetris.Kind) {
	px, py := w.getCellCorner(x, y, rows)

	if kind.IsEmpty() {
		rl.DrawRectangleLines(px, py, CellSize, CellSize, gridColor)
		return
	}

	rl.DrawRectangle(px+1, py+1, CellSize-2, CellSize-2, w.kindToColor(kind))
}

func (w *windowDrawer) drawHint(hint tetris.ActiveTetromino, rows int) {
	color := rl.Fade(w.kindToColor(hint.Kind()), 0.5)

	for _, cell := range hint.Cells() {
		px, py := w.getCellCorner(cell.X, cell.Y, rows)
		rl.DrawRectangleLines(px+2, py+2, CellSize-4, CellSize-4, color)
	}
}

func (w *windowDrawer) drawSidebar(args *DrawArgs) {
	left := int32(args.Board.Width()*CellSize + Padding) //nolint:gosec
	top := int32(Padding)

	lines := []string{
		fmt.Sprintf("Score %d", args.Score),
		fmt.Sprintf("Lines %d", args.Lines),
		fmt.Sprintf("Level %d", args.Level),
		"Next",
	}

	for _, line := range lines {
		rl.DrawText(line, left, top, FontSize, textColor)
		top += FontSize + Padding
	}

	if args.HasNext {
		w.drawPreview(args.Next, left, top)
	}
	top += 3 * CellSize

	switch {
	case args.GameOver:
		rl.DrawText("GAME OVER", left, top, FontSize, rl.Red)
		rl.DrawText("n: new game", left, top+FontSize+Padding, FontSize/2, textColor)
	case args.Paused:
		rl.DrawText("PAUSED", left, top, FontSize, rl.Yellow)
	}
}

func (w *windowDrawer) drawPreview(next tetris.Tetromino, left, top int32) {
	box := next.BoundingBox()
	color := w.kindToColor(next.Kind())
	size := int32(CellSize / 2)

	for _, cell := range next.Cells() {
		px := left + int32(cell.X-box.MinX)*size //nolint:gosec
		py := top + int32(box.MaxY-cell.Y)*size  //nolint:gosec
		rl.DrawRectangle(px+1, py+1, size-2, size-2, color)
	}
}
