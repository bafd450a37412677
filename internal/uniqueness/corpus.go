package uniqueness

import (
	"context"
	"time"

	"github.com/gamespark-labs/gamespark/internal/models"
)

// CorpusProvider supplies the ideas a candidate is compared against.
// The analyzer treats it as read-only and never retries a failed fetch.
type CorpusProvider interface {
	FetchRecent(ctx context.Context, limit int) ([]*models.GameIdea, error)
}

// SampleCorpus returns the built-in comparison set used when the provider is
// unavailable or empty. Three ideas spanning distinct genres, so the
// analyzer always has something to compare against.
func SampleCorpus() []*models.GameIdea {
	return []*models.GameIdea{
		{
			ID:           "sample-1",
			Title:        "Match Master",
			Genre:        "Puzzle",
			Platform:     []string{"Mobile"},
			Complexity:   models.ComplexitySimple,
			Description:  "A colorful match-3 puzzle game with power-ups and daily challenges.",
			CoreGameplay: "Match three or more gems to clear them from the board and complete objectives.",
			UniqueFeatures: []string{
				"Power-up combinations",
				"Daily challenges",
				"Social leaderboards",
			},
			TargetAudience:   "Casual Gamers",
			EstimatedDevTime: "3-6 months",
			CreatedAt:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "sample-2",
			Title:        "Cyber Runner",
			Genre:        "Action",
			Platform:     []string{"PC", "Console"},
			Complexity:   models.ComplexityMedium,
			Description:  "Fast-paced cyberpunk parkour game with neon-lit environments.",
			CoreGameplay: "Navigate through vertical city levels using parkour and wall-running.",
			UniqueFeatures: []string{
				"Wall-running mechanics",
				"Neon visual effects",
				"Electronic soundtrack",
			},
			TargetAudience:   "Young Adults (18-25)",
			EstimatedDevTime: "6-12 months",
			CreatedAt:        time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "sample-3",
			Title:        "Space Explorer",
			Genre:        "Adventure",
			Platform:     []string{"PC"},
			Complexity:   models.ComplexityComplex,
			Description:  "Explore vast alien worlds and uncover ancient mysteries.",
			CoreGameplay: "Exploration-based gameplay with puzzle-solving and resource management.",
			UniqueFeatures: []string{
				"Procedural planet generation",
				"Alien language decoding",
				"Base building",
			},
			TargetAudience:   "Hardcore Gamers",
			EstimatedDevTime: "1-2 years",
			CreatedAt:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}
