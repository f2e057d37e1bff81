package ws

import (
	"encoding/json"
)

const eventTopScoresRequest = "top_scores_request"

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID    int    `json:"id"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type TopScoresRequest struct {
	Limit int `json:"limit"`
}
