package gui

import (
	"log/slog"
	"sync"

	"github.com/lk16/stacker/internal/bot"
	"github.com/lk16/stacker/internal/tetris"
)

// hintRequest asks for the bot placement of the active tetromino on board.
type hintRequest struct {
	// pieceID identifies the active tetromino, it goes up whenever one is issued.
	pieceID int
	board   *tetris.Board
}

// hintListener computes bot placements in the background, so planning never delays a frame.
type hintListener struct {
	// requestChan receives boards to plan for. Closing it stops the listener.
	requestChan chan hintRequest

	bot *bot.Bot

	mu sync.Mutex

	// hints maps piece IDs to their landing spot, nil if there is none.
	hints map[int]*tetris.ActiveTetromino
}

func newHintListener() *hintListener {
	return &hintListener{
		requestChan: make(chan hintRequest, 20),
		bot:         bot.New(bot.DefaultWeights),
		hints:       make(map[int]*tetris.ActiveTetromino),
	}
}

func (l *hintListener) Listen() {
	for req := range l.requestChan {
		l.plan(req)
	}
}

func (l *hintListener) plan(req hintRequest) {
	var hint *tetris.ActiveTetromino

	plan, err := l.bot.Plan(req.board)
	if err != nil {
		slog.Debug("no hint found", "piece", req.pieceID, "error", err)
	} else {
		hint = &plan.Landed
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Hints of earlier tetrominoes are never looked up again.
	clear(l.hints)
	l.hints[req.pieceID] = hint
}

// Lookup returns the hint for a tetromino, nil if it is not computed yet.
func (l *hintListener) Lookup(pieceID int) *tetris.ActiveTetromino {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.hints[pieceID]
}
