package config

import (
	"fmt"
	"time"

	"github.com/gamespark-labs/gamespark/internal/configs/env"
)

// Config holds all configuration for the application
type Config struct {
	// MongoDB
	MongoURI    string
	MongoDBName string

	// Redis
	RedisHost               string
	RedisPassword           string
	RedisStreamKey          string
	RedisConsumerGroup      string
	RedisDeadLetterKey      string
	StreamRetentionDuration time.Duration

	// JWT
	JWTSecret string
	JWTIssuer string

	// Rate Limiting
	RateLimitRPS float64

	// Uniqueness engine
	SimilarityThreshold float64
	GenreWeight         float64
	PlatformWeight      float64
	MechanicsWeight     float64
	ThemeWeight         float64
	CorpusLimit         int
	FuzzyTextMatching   bool

	// Logging
	LogLevel string

	// Server
	ServerPort string
}

func Load() (*Config, error) {
	cfg := &Config{}

	// MongoDB
	cfg.MongoURI = env.GetEnv("MONGO_URI", "")
	cfg.MongoDBName = env.GetEnv("MONGO_DB_NAME", "")

	// Redis
	cfg.RedisHost = env.GetEnv("REDIS_HOST", "localhost:6379")
	cfg.RedisPassword = env.GetEnv("REDIS_PASSWORD", "")
	cfg.RedisStreamKey = env.GetEnv("REDIS_STREAM_KEY", "ideas:stream")
	cfg.RedisConsumerGroup = env.GetEnv("REDIS_CONSUMER_GROUP", "ideas:group")
	cfg.RedisDeadLetterKey = env.GetEnv("REDIS_DEAD_LETTER_KEY", "ideas:dlq")
	retentionHours := env.GetEnvInt("STREAM_RETENTION_DURATION", 24)
	cfg.StreamRetentionDuration = time.Duration(retentionHours) * time.Hour

	// JWT
	cfg.JWTSecret = env.GetEnv("JWT_SECRET", "")
	cfg.JWTIssuer = env.GetEnv("JWT_ISSUER", "gamespark")

	// Rate Limiting
	cfg.RateLimitRPS = env.GetEnvFloat("RATE_LIMIT_RPS", 10.0)

	// Uniqueness engine. The threshold and weights are tunable; defaults are
	// the documented distribution.
	cfg.SimilarityThreshold = env.GetEnvFloat("SIMILARITY_THRESHOLD", 0.70)
	cfg.GenreWeight = env.GetEnvFloat("GENRE_WEIGHT", 0.40)
	cfg.PlatformWeight = env.GetEnvFloat("PLATFORM_WEIGHT", 0.20)
	cfg.MechanicsWeight = env.GetEnvFloat("MECHANICS_WEIGHT", 0.25)
	cfg.ThemeWeight = env.GetEnvFloat("THEME_WEIGHT", 0.15)
	cfg.CorpusLimit = env.GetEnvInt("CORPUS_LIMIT", 100)
	cfg.FuzzyTextMatching = env.GetEnvBool("FUZZY_TEXT_MATCHING", false)

	// Logging
	cfg.LogLevel = env.GetEnv("LOG_LEVEL", "info")

	// Server
	cfg.ServerPort = env.GetEnv("SERVER_PORT", "8080")

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.MongoDBName == "" {
		return fmt.Errorf("MONGO_DB_NAME is required")
	}
	if c.RedisHost == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("SIMILARITY_THRESHOLD must be in (0, 1]")
	}
	if c.GenreWeight < 0 || c.PlatformWeight < 0 || c.MechanicsWeight < 0 || c.ThemeWeight < 0 {
		return fmt.Errorf("similarity weights must not be negative")
	}
	if c.GenreWeight+c.PlatformWeight+c.MechanicsWeight+c.ThemeWeight <= 0 {
		return fmt.Errorf("similarity weights must sum to a positive value")
	}
	if c.CorpusLimit <= 0 {
		return fmt.Errorf("CORPUS_LIMIT must be greater than 0")
	}
	if c.StreamRetentionDuration <= 0 {
		return fmt.Errorf("STREAM_RETENTION_DURATION must be greater than 0")
	}
	return nil
}
