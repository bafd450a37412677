package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	maxRetries     = 3
	initialBackoff = 1 * time.Second
)

// RetryHandler retries message processing with exponential backoff and moves
// messages that keep failing to a dead-letter list.
type RetryHandler struct {
	client        *redis.Client
	deadLetterKey string
}

func NewRetryHandler(client *redis.Client, deadLetterKey string) *RetryHandler {
	return &RetryHandler{
		client:        client,
		deadLetterKey: deadLetterKey,
	}
}

// RetryWithBackoff runs fn up to maxRetries times. After the final failure
// the message is pushed to the dead-letter list and the last error returned.
func (h *RetryHandler) RetryWithBackoff(ctx context.Context, fn func() error, messageID string, fields map[string]interface{}) error {
	var lastErr error
	backoff := initialBackoff

	for attempt := 1; attempt <= maxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		log.Warn().
			Err(lastErr).
			Str("message_id", messageID).
			Int("attempt", attempt).
			Msg("Message processing failed")

		if attempt == maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	if err := h.sendToDeadLetter(ctx, messageID, fields, lastErr); err != nil {
		log.Error().Err(err).Str("message_id", messageID).Msg("Failed to push message to dead-letter list")
	}

	return lastErr
}

func (h *RetryHandler) sendToDeadLetter(ctx context.Context, messageID string, fields map[string]interface{}, cause error) error {
	entry := map[string]interface{}{
		"message_id": messageID,
		"fields":     fields,
		"error":      cause.Error(),
		"failed_at":  time.Now().Format(time.RFC3339),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal dead-letter entry: %w", err)
	}

	if err := h.client.LPush(ctx, h.deadLetterKey, data).Err(); err != nil {
		return fmt.Errorf("failed to push dead-letter entry: %w", err)
	}

	log.Info().
		Str("message_id", messageID).
		Str("dead_letter_key", h.deadLetterKey).
		Msg("Message moved to dead-letter list")

	return nil
}
