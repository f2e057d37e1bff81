package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lk16/stacker/internal/config"
	"github.com/lk16/stacker/internal/models"
	"github.com/lk16/stacker/internal/services"
	"github.com/redis/go-redis/v9"
)

const (
	topScoresKey        = "top_scores"
	scoreEntriesKey     = "score_entries"
	topScoresTTL        = 10 * time.Minute
	cacheRefreshLockKey = "top_scores_refresh_lock"
	cacheRefreshLockTTL = 10 * time.Second
	cachedScoresCount   = config.MaxTopScoresLimit
)

// ErrInvalidLimit is returned when a top scores limit is out of range.
var ErrInvalidLimit = errors.New("invalid limit")

const scoresSchema = `
	CREATE TABLE IF NOT EXISTS scores (
		id           UUID PRIMARY KEY,
		player_name  TEXT NOT NULL,
		score        INTEGER NOT NULL,
		lines        INTEGER NOT NULL,
		board_width  INTEGER NOT NULL,
		board_height INTEGER NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS scores_ranking_idx ON scores (score DESC, created_at ASC);
`

// ScoreRepository stores finished games in postgres and caches the best ones in Redis.
type ScoreRepository struct {
	services *services.Services
}

// NewScoreRepository creates a new ScoreRepository.
func NewScoreRepository(c *fiber.Ctx) *ScoreRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &ScoreRepository{
		services: services,
	}
}

func NewScoreRepositoryFromServices(services *services.Services) *ScoreRepository {
	return &ScoreRepository{
		services: services,
	}
}

// EnsureSchema creates the scores table if it does not exist yet.
func (repo *ScoreRepository) EnsureSchema(ctx context.Context) error {
	if _, err := repo.services.Postgres.ExecContext(ctx, scoresSchema); err != nil {
		return fmt.Errorf("error creating scores table: %w", err)
	}
	return nil
}

// SubmitScore stores a validated submission and returns the stored entry.
func (repo *ScoreRepository) SubmitScore(ctx context.Context, submission models.ScoreSubmission) (models.ScoreEntry, error) {
	entry := models.ScoreEntry{
		ID:          uuid.New().String(),
		PlayerName:  submission.PlayerName,
		Score:       submission.Score,
		Lines:       submission.Lines,
		BoardWidth:  submission.BoardWidth,
		BoardHeight: submission.BoardHeight,
		CreatedAt:   time.Now().UTC(),
	}

	query := `
		INSERT INTO scores (id, player_name, score, lines, board_width, board_height, created_at)
		VALUES (:id, :player_name, :score, :lines, :board_width, :board_height, :created_at)
	`

	if _, err := repo.services.Postgres.NamedExecContext(ctx, query, entry); err != nil {
		return models.ScoreEntry{}, fmt.Errorf("error inserting score: %w", err)
	}

	// A missing cache is rebuilt from postgres on the next read.
	exists, err := repo.services.Redis.Exists(ctx, topScoresKey).Result()
	if err != nil {
		return models.ScoreEntry{}, fmt.Errorf("error checking top scores cache: %w", err)
	}

	if exists == 0 {
		return entry, nil
	}

	if err = repo.addToCache(ctx, entry); err != nil {
		// postgres has the score, drop the cache so it cannot go stale
		slog.Warn("dropping top scores cache", "error", err)
		repo.services.Redis.Del(ctx, topScoresKey, scoreEntriesKey)
	}

	return entry, nil
}

func (repo *ScoreRepository) addToCache(ctx context.Context, entry models.ScoreEntry) error {
	redisConn := repo.services.Redis

	jsonData, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("error marshaling score entry: %w", err)
	}

	_, err = redisConn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, topScoresKey, redis.Z{Score: float64(entry.Score), Member: entry.ID})
		pipe.HSet(ctx, scoreEntriesKey, entry.ID, jsonData)
		return nil
	})
	if err != nil {
		return fmt.Errorf("error caching score: %w", err)
	}

	// Evict everything below the cached ranking.
	evicted, err := redisConn.ZRange(ctx, topScoresKey, 0, -int64(cachedScoresCount)-1).Result()
	if err != nil {
		return fmt.Errorf("error finding evicted scores: %w", err)
	}

	if len(evicted) == 0 {
		return nil
	}

	_, err = redisConn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByRank(ctx, topScoresKey, 0, int64(len(evicted))-1)
		pipe.HDel(ctx, scoreEntriesKey, evicted...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("error evicting scores: %w", err)
	}

	return nil
}

// TopScores returns at most limit best scores, best first.
// Equal scores are ordered by submission time, earliest first.
func (repo *ScoreRepository) TopScores(ctx context.Context, limit int) ([]models.ScoreEntry, error) {
	if limit < 1 || limit > cachedScoresCount {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	entries, err := repo.cachedTopScores(ctx)
	if err != nil {
		slog.Warn("reading top scores cache failed", "error", err)
	}

	if len(entries) == 0 {
		entries, err = repo.loadTopScores(ctx)
		if err != nil {
			return nil, err
		}

		if err = repo.tryRefreshCache(ctx, entries); err != nil {
			slog.Warn("refreshing top scores cache failed", "error", err)
		}
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}

func (repo *ScoreRepository) cachedTopScores(ctx context.Context) ([]models.ScoreEntry, error) {
	redisConn := repo.services.Redis

	ids, err := redisConn.ZRevRange(ctx, topScoresKey, 0, int64(cachedScoresCount)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("error reading top scores: %w", err)
	}

	if len(ids) == 0 {
		return nil, nil
	}

	values, err := redisConn.HMGet(ctx, scoreEntriesKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("error reading score entries: %w", err)
	}

	entries := make([]models.ScoreEntry, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("score entry %s is missing from cache", ids[i])
		}

		var entry models.ScoreEntry
		if err = json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("error unmarshaling score entry: %w", err)
		}
		entries = append(entries, entry)
	}

	sortScores(entries)
	return entries, nil
}

func (repo *ScoreRepository) loadTopScores(ctx context.Context) ([]models.ScoreEntry, error) {
	query := `
		SELECT id, player_name, score, lines, board_width, board_height, created_at
		FROM scores
		ORDER BY score DESC, created_at ASC
		LIMIT $1
	`

	entries := make([]models.ScoreEntry, 0)
	if err := repo.services.Postgres.SelectContext(ctx, &entries, query, cachedScoresCount); err != nil {
		return nil, fmt.Errorf("error loading top scores: %w", err)
	}

	return entries, nil
}

// tryRefreshCache replaces the cached ranking, unless another process is already doing so.
func (repo *ScoreRepository) tryRefreshCache(ctx context.Context, entries []models.ScoreEntry) error {
	if len(entries) == 0 {
		return nil
	}

	redisConn := repo.services.Redis
	lockAcquired, err := redisConn.SetNX(ctx, cacheRefreshLockKey, "1", cacheRefreshLockTTL).Result()
	if err != nil {
		return fmt.Errorf("error acquiring cache refresh lock: %w", err)
	}

	if !lockAcquired {
		return nil
	}

	defer redisConn.Del(ctx, cacheRefreshLockKey)

	members := make([]redis.Z, 0, len(entries))
	fields := make(map[string]interface{}, len(entries))

	for _, entry := range entries {
		jsonData, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("error marshaling score entry: %w", err)
		}

		members = append(members, redis.Z{Score: float64(entry.Score), Member: entry.ID})
		fields[entry.ID] = jsonData
	}

	_, err = redisConn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, topScoresKey, scoreEntriesKey)
		pipe.ZAdd(ctx, topScoresKey, members...)
		pipe.HSet(ctx, scoreEntriesKey, fields)
		pipe.Expire(ctx, topScoresKey, topScoresTTL)
		pipe.Expire(ctx, scoreEntriesKey, topScoresTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("error storing top scores cache: %w", err)
	}

	slog.Debug("refreshed top scores cache", "count", len(entries))
	return nil
}

func sortScores(entries []models.ScoreEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
}
