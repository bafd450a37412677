package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/gamespark-labs/gamespark/internal/infra/redis"
	"github.com/gamespark-labs/gamespark/internal/models"
	"github.com/rs/zerolog/log"
)

// UpdateStatus records the current pipeline step for an idea in Redis so the
// UI can poll generation progress. Keys expire after 12 hours.
func UpdateStatus(ctx context.Context, redisClient *redis.Client, ideaID string, step models.Step) error {
	validSteps := map[models.Step]bool{
		models.StepIdle:       true,
		models.StepGenerating: true,
		models.StepAnalyzing:  true,
		models.StepEnhancing:  true,
		models.StepCompleted:  true,
	}
	if !validSteps[step] {
		return fmt.Errorf("unknown step: %s", step)
	}

	rkey := "idea_status:" + ideaID

	err := redisClient.Set(ctx, rkey, string(step), 12*time.Hour).Err()
	if err != nil {
		log.Error().Err(err).
			Str("step", string(step)).
			Str("ideaId", ideaID).
			Str("redisKey", rkey).
			Msg("Failed to update status in Redis")
		return fmt.Errorf("failed to update status in Redis: %w", err)
	}

	log.Trace().
		Str("step", string(step)).
		Str("ideaId", ideaID).
		Msg("Status updated in Redis")

	return nil
}
