package scoreboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lk16/stacker/internal/config"
	"github.com/lk16/stacker/internal/models"
)

const (
	clientTimeout = 2 * time.Second
)

// ErrUnauthorized is returned when the server rejects the configured token.
var ErrUnauthorized = errors.New("unauthorized")

// APIClient talks to the score server.
type APIClient struct {
	// config contains details on how to connect to the server
	config *config.ClientConfig

	// verbose is whether to log requests as curl commands, useful for debugging
	verbose bool

	httpClient *http.Client
}

func NewAPIClient(config *config.ClientConfig, verbose bool) *APIClient {
	return &APIClient{
		config:  config,
		verbose: verbose,
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

func (c *APIClient) logVerbose(msg string, args ...any) {
	if c.verbose {
		slog.Info(msg, args...)
	}
}

func (c *APIClient) logRequestAsCurl(request *http.Request) {
	// Do not build string if we're not logging it
	if !c.verbose {
		return
	}

	var builder strings.Builder
	builder.WriteString("curl -X ")
	builder.WriteString(request.Method)
	builder.WriteString(" '")
	builder.WriteString(request.URL.String())
	builder.WriteString("'")

	for key, values := range request.Header {
		for _, value := range values {
			if strings.EqualFold(key, "x-token") {
				value = "***"
			}
			fmt.Fprintf(&builder, " -H '%s: %s'", strings.ToLower(key), value)
		}
	}

	if request.Body != nil && request.Body != http.NoBody {
		body, err := io.ReadAll(request.Body)
		if err != nil {
			c.logVerbose("Failed to read request body", "error", err)
		}

		if len(body) > 0 {
			builder.WriteString(" -d '")
			builder.WriteString(strings.ReplaceAll(strings.TrimSpace(string(body)), "'", "'\\''"))
			builder.WriteString("'")
		}

		// Restore the original body
		request.Body = io.NopCloser(bytes.NewBuffer(body))
	}

	c.logVerbose("Sending request", "curl", builder.String())
}

func (c *APIClient) request(ctx context.Context, method string, path string, payload any) ([]byte, error) {
	var body io.Reader = http.NoBody

	if payload != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return nil, fmt.Errorf("failed to encode payload: %w", err)
		}
		body = buf
	}

	request, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.config.ServerURL, "/")+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	request.Header.Set("x-token", c.config.Token)

	c.logRequestAsCurl(request)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logVerbose("Received response", "status", response.Status, "body", string(responseBody))

	if response.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var errorBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(responseBody, &errorBody) == nil && errorBody.Error != "" {
			return nil, fmt.Errorf("server returned %v: %s", response.Status, errorBody.Error)
		}
		return nil, fmt.Errorf("server returned unexpected status %v", response.Status)
	}

	return responseBody, nil
}

// SubmitScore sends the result of a finished game and returns the stored entry.
func (c *APIClient) SubmitScore(ctx context.Context, submission models.ScoreSubmission) (models.ScoreEntry, error) {
	if err := submission.Validate(); err != nil {
		return models.ScoreEntry{}, fmt.Errorf("invalid submission: %w", err)
	}

	body, err := c.request(ctx, http.MethodPost, "/api/scores", submission)
	if err != nil {
		return models.ScoreEntry{}, fmt.Errorf("failed to submit score: %w", err)
	}

	var entry models.ScoreEntry
	if err = json.Unmarshal(body, &entry); err != nil {
		return models.ScoreEntry{}, fmt.Errorf("failed to decode submit score response: %w", err)
	}

	return entry, nil
}

// TopScores fetches at most limit best scores, best first.
func (c *APIClient) TopScores(ctx context.Context, limit int) ([]models.ScoreEntry, error) {
	body, err := c.request(ctx, http.MethodGet, "/api/scores/top?limit="+strconv.Itoa(limit), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get top scores: %w", err)
	}

	var parsed models.TopScoresResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode top scores response: %w", err)
	}

	return parsed.Scores, nil
}
