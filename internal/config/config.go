package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	MaxPlayerNameLength = 32
	TopScoresLimit      = 10
	MaxTopScoresLimit   = 100

	DefaultBoardWidth  = 10
	DefaultBoardHeight = 20
	DefaultTick        = 500 * time.Millisecond
	MinTick            = 50 * time.Millisecond
)

// ServerConfig holds all configuration values of the score server loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvMust("STACKER_SERVER_HOST"),
		ServerPort:        getEnvMust("STACKER_SERVER_PORT"),
		RedisURL:          getEnvMust("STACKER_REDIS_URL"),
		PostgresURL:       getEnvMust("STACKER_POSTGRES_URL"),
		BasicAuthUsername: getEnvMust("STACKER_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("STACKER_BASIC_AUTH_PASS"),
		Token:             getEnvMust("STACKER_TOKEN"),
		Prefork:           getEnvMustBool("STACKER_PREFORK"),
	}
}

// ClientConfig tells front ends where to submit scores.
type ClientConfig struct {
	ServerURL string
	Token     string
}

func LoadClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerURL: getEnvMust("STACKER_SERVER_URL"),
		Token:     getEnvMust("STACKER_TOKEN"),
	}
}

// LoadClientConfigOptional returns nil when no score server is configured.
func LoadClientConfigOptional() *ClientConfig {
	if os.Getenv("STACKER_SERVER_URL") == "" {
		return nil
	}
	return LoadClientConfig()
}

// GameConfig holds the board and timing settings of local games.
type GameConfig struct {
	BoardWidth  int
	BoardHeight int
	Tick        time.Duration

	// Seed seeds the tetromino sequence, zero means a time based seed.
	Seed uint64
}

func LoadGameConfig() *GameConfig {
	return &GameConfig{
		BoardWidth:  getEnvInt("STACKER_BOARD_WIDTH", DefaultBoardWidth),
		BoardHeight: getEnvInt("STACKER_BOARD_HEIGHT", DefaultBoardHeight),
		Tick:        time.Duration(getEnvInt("STACKER_TICK_MS", int(DefaultTick/time.Millisecond))) * time.Millisecond,
		Seed:        uint64(getEnvInt("STACKER_SEED", 0)), //nolint:gosec
	}
}

// TickInterval returns the time between clock ticks at a level. It shrinks by
// a tenth of the base tick for every level, down to MinTick.
func TickInterval(base time.Duration, level int) time.Duration {
	interval := base - time.Duration(level-1)*base/10
	return max(interval, MinTick)
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

// getEnvInt returns the environment variable as a non-negative integer or fallback if it is not set.
func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		slog.Error("Cannot load environment variable, it must be a non-negative integer", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}
