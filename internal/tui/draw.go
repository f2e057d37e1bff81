package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lk16/stacker/internal/tetris"
)

const (
	cellWidth   = 2
	marginLeft  = 1
	marginTop   = 1
	sidebarGap  = 3
	previewRows = 4
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func kindStyle(kind tetris.Kind) tcell.Style {
	var color tcell.Color

	switch kind.Color() {
	case tetris.Cyan:
		color = tcell.ColorAqua
	case tetris.Blue:
		color = tcell.ColorBlue
	case tetris.Orange:
		color = tcell.ColorOrange
	case tetris.Yellow:
		color = tcell.ColorYellow
	case tetris.Green:
		color = tcell.ColorGreen
	case tetris.Magenta:
		color = tcell.ColorFuchsia
	case tetris.Red:
		color = tcell.ColorRed
	default:
		return tcell.StyleDefault
	}

	return tcell.StyleDefault.Foreground(color).Background(color)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// drawCell draws one board cell at screen column x and row y.
func drawCell(screen tcell.Screen, x, y int, kind tetris.Kind) {
	if kind.IsEmpty() {
		screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		screen.SetContent(x+1, y, '.', nil, borderStyle)
		return
	}

	style := kindStyle(kind)
	screen.SetContent(x, y, '█', nil, style)
	screen.SetContent(x+1, y, '█', nil, style)
}

// drawBoard draws the board inside a border and returns the column right of it.
func drawBoard(screen tcell.Screen, board *tetris.Board) int {
	left := marginLeft
	right := left + 1 + board.Width()*cellWidth
	bottom := marginTop + board.Height()

	for row := marginTop; row < bottom; row++ {
		screen.SetContent(left, row, '│', nil, borderStyle)
		screen.SetContent(right, row, '│', nil, borderStyle)
	}

	screen.SetContent(left, bottom, '└', nil, borderStyle)
	screen.SetContent(right, bottom, '┘', nil, borderStyle)
	for col := left + 1; col < right; col++ {
		screen.SetContent(col, bottom, '─', nil, borderStyle)
	}

	for y := range board.Height() {
		row := marginTop + board.Height() - 1 - y
		for x := range board.Width() {
			kind, _ := board.CellAt(x, y) //nolint:errcheck
			drawCell(screen, left+1+x*cellWidth, row, kind)
		}
	}

	return right + 1
}

// drawPreview draws the next tetromino in a box of previewRows rows starting at row top.
func drawPreview(screen tcell.Screen, left, top int, next tetris.Tetromino) {
	box := next.BoundingBox()

	for _, cell := range next.Cells() {
		x := left + (cell.X-box.MinX)*cellWidth
		y := top + previewRows - 1 - (cell.Y - box.MinY)
		drawCell(screen, x, y, next.Kind())
	}
}

func (a *App) drawSidebar(left int) {
	row := marginTop

	drawText(a.screen, left, row, textStyle, fmt.Sprintf("Score  %d", a.game.Score()))
	row++
	drawText(a.screen, left, row, textStyle, fmt.Sprintf("Lines  %d", a.game.Lines()))
	row++
	drawText(a.screen, left, row, textStyle, fmt.Sprintf("Level  %d", a.game.Level()))
	row += 2

	drawText(a.screen, left, row, textStyle, "Next")
	row++
	if next, ok := a.game.NextTetromino(); ok {
		drawPreview(a.screen, left, row, next)
	}
	row += previewRows + 1

	if a.game.IsGameOver() {
		drawText(a.screen, left, row, alertStyle, "GAME OVER")
		row++
		drawText(a.screen, left, row, textStyle, "r: restart  q: quit")
		row++
	}

	if a.status != "" {
		row++
		drawText(a.screen, left, row, textStyle, a.status)
	}
}

// Draw renders the whole game.
func (a *App) Draw() {
	a.screen.Clear()
	right := drawBoard(a.screen, a.game.Board())
	a.drawSidebar(right + sidebarGap)
	a.screen.Show()
}
