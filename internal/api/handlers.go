package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gamespark-labs/gamespark/internal/config"
	"github.com/gamespark-labs/gamespark/internal/generator"
	"github.com/gamespark-labs/gamespark/internal/infra/redis"
	"github.com/gamespark-labs/gamespark/internal/metrics"
	"github.com/gamespark-labs/gamespark/internal/models"
	"github.com/gamespark-labs/gamespark/internal/uniqueness"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const defaultRecentLimit = 20

// IdeasStore is the persistence surface the handlers need
type IdeasStore interface {
	InsertIdea(ctx context.Context, idea *models.GameIdea) error
	GetRecentPublicIdeas(ctx context.Context, limit int) ([]*models.GameIdea, error)
}

// Handler holds dependencies for handlers
type Handler struct {
	cfg         *config.Config
	store       IdeasStore
	analyzer    *uniqueness.Analyzer
	generator   *generator.Service
	redisClient *redis.Client
}

func NewHandler(
	cfg *config.Config,
	store IdeasStore,
	analyzer *uniqueness.Analyzer,
	gen *generator.Service,
	redisClient *redis.Client,
) *Handler {
	return &Handler{
		cfg:         cfg,
		store:       store,
		analyzer:    analyzer,
		generator:   gen,
		redisClient: redisClient,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// Generate creates a new idea, analyzes its uniqueness, merges the suggested
// enhancements when the verdict is not unique, and persists the result. The
// enhance-on-collision policy lives here; the engine only reports.
func (h *Handler) Generate(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	ctx := c.Request.Context()

	idea := h.generator.Generate(ctx, req.Parameters)
	h.updateStatus(ctx, idea.ID, models.StepGenerating)
	metrics.IdeasGenerated.Inc()

	h.updateStatus(ctx, idea.ID, models.StepAnalyzing)
	analysis := h.analyze(ctx, idea)

	if !analysis.IsUnique && len(analysis.SuggestedEnhancements) > 0 {
		h.updateStatus(ctx, idea.ID, models.StepEnhancing)
		idea = uniqueness.Apply(idea, analysis.SuggestedEnhancements)
		idea.SimilarityScore = analysis.SimilarityScore
		metrics.EnhancementsApplied.Add(float64(len(analysis.SuggestedEnhancements)))
	}

	if userID, ok := c.Get("user_id"); ok {
		if id, ok := userID.(string); ok {
			idea.UserID = id
		}
	}

	if err := h.store.InsertIdea(ctx, idea); err != nil {
		log.Error().Err(err).Str("ideaId", idea.ID).Msg("Failed to persist idea")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to store idea",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	h.updateStatus(ctx, idea.ID, models.StepCompleted)

	c.JSON(http.StatusOK, models.IdeaResponse{
		Idea:     idea,
		Analysis: analysis,
		Step:     models.StepCompleted,
	})
}

// Refine deepens an existing idea and re-analyzes it. The refined idea is
// returned to the caller, not persisted; saving is a separate decision.
func (h *Handler) Refine(c *gin.Context) {
	var req models.IdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	ctx := c.Request.Context()

	refined := h.generator.Refine(ctx, &req.Idea)
	h.updateStatus(ctx, refined.ID, models.StepAnalyzing)
	analysis := h.analyze(ctx, refined)
	h.updateStatus(ctx, refined.ID, models.StepCompleted)

	c.JSON(http.StatusOK, models.IdeaResponse{
		Idea:     refined,
		Analysis: analysis,
		Step:     models.StepCompleted,
	})
}

// Analyze returns a uniqueness verdict without side effects
func (h *Handler) Analyze(c *gin.Context) {
	var req models.IdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	start := time.Now()
	analysis, err := h.analyzer.Analyze(c.Request.Context(), &req.Idea)
	if err != nil {
		if errors.Is(err, uniqueness.ErrMalformedIdea) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: err.Error(),
				Code:  "MALFORMED_IDEA",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to analyze idea",
			Code:  "INTERNAL_ERROR",
		})
		return
	}
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	metrics.AnalysisCount.WithLabelValues(verdictLabel(analysis)).Inc()

	c.JSON(http.StatusOK, analysis)
}

// Enhance applies an explicit enhancement list to an idea
func (h *Handler) Enhance(c *gin.Context) {
	var req models.EnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	enriched := uniqueness.Apply(&req.Idea, req.Enhancements)
	metrics.EnhancementsApplied.Add(float64(len(req.Enhancements)))

	c.JSON(http.StatusOK, models.IdeaResponse{
		Idea: enriched,
		Step: models.StepCompleted,
	})
}

// Recent returns the most recent public ideas
func (h *Handler) Recent(c *gin.Context) {
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "limit must be a positive integer",
				Code:  "INVALID_REQUEST",
			})
			return
		}
		limit = parsed
	}
	if limit > h.cfg.CorpusLimit {
		limit = h.cfg.CorpusLimit
	}

	ideas, err := h.store.GetRecentPublicIdeas(c.Request.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch recent ideas")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to fetch ideas",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ideas": ideas})
}

// analyze runs the analyzer and absorbs validation errors into the safe
// default; generated ideas always pass validation, so a failure here means a
// caller-supplied idea on the refine path.
func (h *Handler) analyze(ctx context.Context, idea *models.GameIdea) *models.UniquenessAnalysis {
	start := time.Now()
	analysis, err := h.analyzer.Analyze(ctx, idea)
	if err != nil {
		log.Warn().Err(err).Str("ideaId", idea.ID).Msg("Uniqueness analysis skipped")
		return &models.UniquenessAnalysis{
			IsUnique:              true,
			SimilarIdeas:          []*models.GameIdea{},
			SuggestedEnhancements: []string{},
			ConfidenceLevel:       "low",
		}
	}
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	metrics.AnalysisCount.WithLabelValues(verdictLabel(analysis)).Inc()

	return analysis
}

func (h *Handler) updateStatus(ctx context.Context, ideaID string, step models.Step) {
	if h.redisClient == nil {
		return
	}
	if err := generator.UpdateStatus(ctx, h.redisClient, ideaID, step); err != nil {
		log.Warn().Err(err).Str("ideaId", ideaID).Msg("Failed to update pipeline status")
	}
}

func verdictLabel(analysis *models.UniquenessAnalysis) string {
	if analysis.IsUnique {
		return "unique"
	}
	return "similar"
}
