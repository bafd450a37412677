package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gamespark-labs/gamespark/internal/api"
	"github.com/gamespark-labs/gamespark/internal/config"
	"github.com/gamespark-labs/gamespark/internal/configs/env"
	"github.com/gamespark-labs/gamespark/internal/generator"
	"github.com/gamespark-labs/gamespark/internal/infra/mongo"
	redisInfra "github.com/gamespark-labs/gamespark/internal/infra/redis"
	"github.com/gamespark-labs/gamespark/internal/logger"
	"github.com/gamespark-labs/gamespark/internal/metrics"
	"github.com/gamespark-labs/gamespark/internal/repository"
	"github.com/gamespark-labs/gamespark/internal/stream"
	"github.com/gamespark-labs/gamespark/internal/uniqueness"
	"github.com/gamespark-labs/gamespark/internal/worker"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := env.LoadEnv(); err != nil {
		log.Warn().Err(err).Msg("Failed to load .env file, continuing with system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid configuration: %v", err))
	}

	logger.Init(cfg.LogLevel)
	log.Info().Msg("Starting GameSpark server")

	metrics.InitPrometheus()
	log.Info().Msg("Prometheus metrics initialized")

	// Metrics server on its own port
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:    ":2112",
		Handler: metricsMux,
	}
	go func() {
		log.Info().Str("port", "2112").Msg("Metrics server started")
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Metrics server failed to start")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect MongoDB
	mongoClient, err := mongo.NewClient(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create MongoDB client")
	}
	defer mongoClient.Close(ctx)

	// Connect Redis
	redisClient, err := redisInfra.NewClient(ctx, cfg.RedisHost, cfg.RedisPassword, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Redis client")
	}
	defer redisClient.Close()

	mongoRepo := repository.NewMongoRepository(mongoClient)
	ideasRepo := repository.NewIdeasRepository(mongoRepo)

	analyzer := uniqueness.NewAnalyzer(ideasRepo, uniqueness.Config{
		Weights: uniqueness.Weights{
			Genre:     cfg.GenreWeight,
			Platform:  cfg.PlatformWeight,
			Mechanics: cfg.MechanicsWeight,
			Theme:     cfg.ThemeWeight,
		},
		FuzzyText:   cfg.FuzzyTextMatching,
		Threshold:   cfg.SimilarityThreshold,
		CorpusLimit: cfg.CorpusLimit,
	})

	generatorSvc := generator.NewService()

	// Worker pool for stream ingestion. Closed explicitly during shutdown,
	// after the consumer that submits to it has stopped.
	workerPool := worker.NewPool(ctx)

	// Redis stream consumer for community idea submissions
	retryHandler := stream.NewRetryHandler(redisClient.Client, cfg.RedisDeadLetterKey)

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "unknown"
	}
	consumerName := fmt.Sprintf("consumer-%s-%d-%s", hostname, os.Getpid(), uuid.New().String()[:8])
	consumer := stream.NewConsumer(
		redisClient.Client,
		cfg.RedisStreamKey,
		cfg.RedisConsumerGroup,
		consumerName,
		ideasRepo,
		retryHandler,
		workerPool,
		cfg.StreamRetentionDuration,
	)
	log.Info().Str("consumer_name", consumerName).Msg("Redis stream consumer initialized")

	router := api.SetupRoutes(cfg, ideasRepo, analyzer, generatorSvc, redisClient)

	// Start Redis consumer in background
	consumerCtx, consumerCancel := context.WithCancel(ctx)
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		if err := consumer.Start(consumerCtx); err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("Redis consumer error")
		}
	}()
	log.Info().Msg("Redis consumer started")

	srv := api.StartServer(router, cfg.ServerPort)

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down gracefully...")

	if err := api.ShutdownServer(srv, 30*time.Second); err != nil {
		log.Error().Err(err).Msg("Error shutting down Gin server")
	}

	// Stop the consumer before the pool so nothing submits to a closing pool
	consumerCancel()
	<-consumerDone
	workerPool.Close()

	metricsCtx, metricsCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer metricsCancel()
	if err := metricsServer.Shutdown(metricsCtx); err != nil {
		log.Error().Err(err).Msg("Error shutting down metrics server")
	}

	log.Info().Msg("Shutdown complete")
}
