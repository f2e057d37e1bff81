package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lk16/stacker/internal/config"
	"github.com/lk16/stacker/internal/tetris"
)

// maxRowsPerLock is the most rows a single tetromino can complete.
const maxRowsPerLock = 4

// ScoreSubmission is the payload for submitting the result of a finished game.
type ScoreSubmission struct {
	PlayerName  string `json:"player_name"`
	Score       int    `json:"score"`
	Lines       int    `json:"lines"`
	BoardWidth  int    `json:"board_width"`
	BoardHeight int    `json:"board_height"`
}

// NewScoreSubmission creates a submission from a finished game.
func NewScoreSubmission(playerName string, game *tetris.Game) ScoreSubmission {
	return ScoreSubmission{
		PlayerName:  playerName,
		Score:       game.Score(),
		Lines:       game.Lines(),
		BoardWidth:  game.Board().Width(),
		BoardHeight: game.Board().Height(),
	}
}

// MaxScoreForLines returns the highest score reachable by clearing lines rows.
func MaxScoreForLines(lines int) int {
	return (lines/maxRowsPerLock)*tetris.ScoreForLines(maxRowsPerLock) + tetris.ScoreForLines(lines%maxRowsPerLock)
}

// Validate checks if the submission could come from a real game.
func (s *ScoreSubmission) Validate() error {
	name := strings.TrimSpace(s.PlayerName)
	if name == "" {
		return errors.New("player name is empty")
	}

	if len(name) > config.MaxPlayerNameLength {
		return fmt.Errorf("player name is longer than %d characters", config.MaxPlayerNameLength)
	}

	if s.BoardWidth < maxRowsPerLock || s.BoardHeight < maxRowsPerLock {
		return fmt.Errorf("board must be at least %dx%d", maxRowsPerLock, maxRowsPerLock)
	}

	if s.Lines < 0 {
		return errors.New("lines must not be negative")
	}

	if s.Score < 0 {
		return errors.New("score must not be negative")
	}

	if s.Score > MaxScoreForLines(s.Lines) {
		return fmt.Errorf("score %d is not reachable with %d lines", s.Score, s.Lines)
	}

	if s.Score%tetris.ScoreForLines(1) != 0 {
		return fmt.Errorf("score %d is not a multiple of %d", s.Score, tetris.ScoreForLines(1))
	}

	return nil
}

// ScoreEntry is a stored score.
type ScoreEntry struct {
	ID          string    `json:"id"           db:"id"`
	PlayerName  string    `json:"player_name"  db:"player_name"`
	Score       int       `json:"score"        db:"score"`
	Lines       int       `json:"lines"        db:"lines"`
	BoardWidth  int       `json:"board_width"  db:"board_width"`
	BoardHeight int       `json:"board_height" db:"board_height"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
}

// TopScoresResponse lists the best scores, best first.
type TopScoresResponse struct {
	Scores []ScoreEntry `json:"scores"`
}

// VersionResponse describes the running server build.
type VersionResponse struct {
	Commit string `json:"commit"`
}
