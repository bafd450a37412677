package api

import (
	"github.com/gamespark-labs/gamespark/internal/config"
	"github.com/gamespark-labs/gamespark/internal/generator"
	"github.com/gamespark-labs/gamespark/internal/infra/redis"
	"github.com/gamespark-labs/gamespark/internal/uniqueness"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	cfg *config.Config,
	store IdeasStore,
	analyzer *uniqueness.Analyzer,
	gen *generator.Service,
	redisClient *redis.Client,
) *gin.Engine {
	router := gin.Default()

	handler := NewHandler(cfg, store, analyzer, gen, redisClient)

	rateLimiter := NewRateLimiter(cfg.RateLimitRPS, int(cfg.RateLimitRPS*2))

	router.Use(ErrorHandlerMiddleware())

	// Health endpoint (no auth)
	router.GET("/health", handler.Health)

	// API routes (with auth and rate limiting)
	api := router.Group("/api/v1")
	api.Use(JWTAuthMiddleware(cfg.JWTSecret))
	api.Use(RateLimitMiddleware(rateLimiter))
	{
		api.POST("/ideas/generate", handler.Generate)
		api.POST("/ideas/refine", handler.Refine)
		api.POST("/ideas/analyze", handler.Analyze)
		api.POST("/ideas/enhance", handler.Enhance)
		api.GET("/ideas/recent", handler.Recent)
	}

	return router
}
