package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/stacker/internal/config"
	"github.com/lk16/stacker/internal/models"
	"github.com/lk16/stacker/internal/repository"
	"github.com/lk16/stacker/internal/services"
)

const (
	lookupTimeout = 2 * time.Second
)

// Conn is the part of a websocket connection used by the Handler.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
}

// TopScoresFunc loads at most limit best scores.
type TopScoresFunc func(ctx context.Context, limit int) ([]models.ScoreEntry, error)

type Handler struct {
	topScores TopScoresFunc
	ws        Conn
}

// NewHandler creates a new Handler that reads scores from the score repository.
func NewHandler(ws Conn, services *services.Services) *Handler {
	repo := repository.NewScoreRepositoryFromServices(services)
	return NewHandlerWithLookup(ws, repo.TopScores)
}

// NewHandlerWithLookup creates a new Handler using a custom score lookup.
func NewHandlerWithLookup(ws Conn, topScores TopScoresFunc) *Handler {
	return &Handler{topScores: topScores, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", string(msg))

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	switch req.Event {
	case "":
		return nil, errors.New("event field is either empty or missing")
	case eventTopScoresRequest:
		return h.handleTopScoresRequest(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle serves requests until the connection fails.
// A request that cannot be served is answered with an error message and does not close the connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return err
		}

		resp, err := h.handleMessage(req)
		if err != nil {
			resp = &Outgoing{ID: req.ID, Error: err.Error()}
		}

		if err = h.writeMessage(resp); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) handleTopScoresRequest(req *Incoming) (*Outgoing, error) {
	reqData := TopScoresRequest{Limit: config.TopScoresLimit}
	if len(req.Data) > 0 {
		if err := json.Unmarshal(req.Data, &reqData); err != nil {
			return nil, fmt.Errorf("top scores request unmarshal error: %w", err)
		}
	}

	if reqData.Limit < 1 || reqData.Limit > config.MaxTopScoresLimit {
		return nil, fmt.Errorf("limit must be between 1 and %d", config.MaxTopScoresLimit)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	scores, err := h.topScores(ctx, reqData.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to lookup top scores: %w", err)
	}

	outgoing := &Outgoing{
		ID:   req.ID,
		Data: models.TopScoresResponse{Scores: scores},
	}

	return outgoing, nil
}
