package stream

import (
	"encoding/json"
	"fmt"

	"github.com/gamespark-labs/gamespark/internal/models"
)

// StreamMessage is a parsed Redis stream entry
type StreamMessage struct {
	ID     string
	Fields map[string]string
}

// ParseSubmission decodes an idea submission from a stream message. The
// submission travels as a JSON document in the "payload" field.
func ParseSubmission(msg *StreamMessage) (*models.GameIdea, error) {
	payload, ok := msg.Fields["payload"]
	if !ok || payload == "" {
		return nil, fmt.Errorf("message %s has no payload field", msg.ID)
	}

	var idea models.GameIdea
	if err := json.Unmarshal([]byte(payload), &idea); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submission: %w", err)
	}

	if idea.Title == "" {
		return nil, fmt.Errorf("submission is missing title")
	}
	if idea.Genre == "" {
		return nil, fmt.Errorf("submission is missing genre")
	}
	if idea.Description == "" {
		return nil, fmt.Errorf("submission is missing description")
	}

	return &idea, nil
}
