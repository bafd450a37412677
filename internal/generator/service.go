package generator

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/gamespark-labs/gamespark/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Service produces game ideas from the template catalog. Template selection
// is the only source of randomness; everything downstream of generation is
// deterministic.
type Service struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewService() *Service {
	return &Service{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Service) pickTemplate() ideaTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ideaTemplates[s.rng.Intn(len(ideaTemplates))]
}

// Generate builds a new idea from a template, overlaying the caller's
// parameters where provided.
func (s *Service) Generate(ctx context.Context, params models.GameParameters) *models.GameIdea {
	prompt := BuildPrompt(params)
	log.Debug().Int("promptLength", len(prompt)).Msg("Built generation prompt")

	tmpl := s.pickTemplate()

	idea := &models.GameIdea{
		ID:                    uuid.New().String(),
		Title:                 tmpl.Title,
		Genre:                 orDefault(params.Genre, tmpl.Genre),
		Platform:              orDefaultSlice(params.Platform, []string{"PC", "Mobile"}),
		Complexity:            orDefault(params.Complexity, models.ComplexityMedium),
		Description:           tmpl.Description,
		CoreGameplay:          tmpl.CoreGameplay,
		UniqueFeatures:        append([]string(nil), tmpl.UniqueFeatures...),
		TargetAudience:        orDefault(params.TargetAudience, "Casual Gamers"),
		EstimatedDevTime:      orDefault(params.Timeframe, "6-12 months"),
		Monetization:          orDefault(params.MonetizationPreference, "Premium with DLC"),
		ArtStyle:              "Modern minimalist with vibrant accents",
		TechnicalRequirements: append([]string(nil), defaultTechnicalRequirements...),
		TeamSize:              orDefault(params.TeamSize, "3-5 people"),
		BudgetEstimate:        orDefault(params.Budget, "$25K - $75K"),
		MarketingHooks:        append([]string(nil), defaultMarketingHooks...),
		CompetitorAnalysis:    "Similar to popular indie hits but with unique twist",
		RiskFactors:           append([]string(nil), defaultRiskFactors...),
		MVPFeatures:           append([]string(nil), defaultMVPFeatures...),
		IsPublic:              true,
		CreatedAt:             time.Now(),
	}

	return idea
}

// Refine returns a deepened copy of an existing idea: extra narrative in the
// description, accessibility and community features, and a scope-risk entry.
func (s *Service) Refine(ctx context.Context, idea *models.GameIdea) *models.GameIdea {
	refined := *idea
	refined.Description = idea.Description + " Enhanced with deeper narrative elements and improved accessibility features."
	refined.UniqueFeatures = append(append([]string(nil), idea.UniqueFeatures...),
		"Advanced accessibility options",
		"Community-driven content creation tools",
		"Cross-platform progression sync",
	)
	refined.MarketingHooks = append(append([]string(nil), idea.MarketingHooks...),
		"Inclusive design for all players",
		"User-generated content potential",
	)
	refined.RiskFactors = append(append([]string(nil), idea.RiskFactors...),
		"Feature creep with community tools - maintain focused scope",
	)
	refined.MVPFeatures = append(append([]string(nil), idea.MVPFeatures...),
		"Basic accessibility settings",
		"Community feedback system",
	)

	return &refined
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func orDefaultSlice(value, fallback []string) []string {
	if len(value) > 0 {
		return append([]string(nil), value...)
	}
	return append([]string(nil), fallback...)
}
