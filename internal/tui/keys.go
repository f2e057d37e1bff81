package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lk16/stacker/internal/moves"
	"github.com/lk16/stacker/internal/tetris"
)

type action int

const (
	actionNone action = iota
	actionMove
	actionReset
	actionQuit
)

// keyBindings maps runes to moves. Arrow keys are handled in bindKey.
var keyBindings = map[rune]tetris.Move{
	'h': moves.Left,
	'l': moves.Right,
	'j': moves.Down,
	'k': moves.Clockwise,
	'x': moves.Clockwise,
	'z': moves.CounterClockwise,
	' ': moves.HardDrop,
}

// bindKey returns what a key press should do.
func bindKey(ev *tcell.EventKey) (action, tetris.Move) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, nil
	case tcell.KeyLeft:
		return actionMove, moves.Left
	case tcell.KeyRight:
		return actionMove, moves.Right
	case tcell.KeyDown:
		return actionMove, moves.Down
	case tcell.KeyUp:
		return actionMove, moves.Clockwise
	case tcell.KeyRune:
	default:
		return actionNone, nil
	}

	switch ev.Rune() {
	case 'q':
		return actionQuit, nil
	case 'r':
		return actionReset, nil
	}

	if move, ok := keyBindings[ev.Rune()]; ok {
		return actionMove, move
	}

	return actionNone, nil
}
