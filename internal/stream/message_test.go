package stream

import (
	"encoding/json"
	"testing"

	"github.com/gamespark-labs/gamespark/internal/models"
)

func TestParseSubmission(t *testing.T) {
	payload, err := json.Marshal(models.GameIdea{
		ID:           "sub-1",
		Title:        "Tide Caller",
		Genre:        "Adventure",
		Platform:     []string{"PC"},
		Description:  "Command the ocean tides to reshape islands.",
		CoreGameplay: "Manipulate water levels to open paths and solve puzzles.",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	idea, err := ParseSubmission(&StreamMessage{
		ID:     "1-0",
		Fields: map[string]string{"payload": string(payload)},
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if idea.Title != "Tide Caller" {
		t.Errorf("title = %q, want %q", idea.Title, "Tide Caller")
	}
	if idea.Genre != "Adventure" {
		t.Errorf("genre = %q, want %q", idea.Genre, "Adventure")
	}
}

func TestParseSubmissionErrors(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
	}{
		{"missing payload", map[string]string{}},
		{"empty payload", map[string]string{"payload": ""}},
		{"invalid json", map[string]string{"payload": "{not json"}},
		{"missing title", map[string]string{"payload": `{"genre":"Puzzle","description":"d"}`}},
		{"missing genre", map[string]string{"payload": `{"title":"T","description":"d"}`}},
		{"missing description", map[string]string{"payload": `{"title":"T","genre":"Puzzle"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSubmission(&StreamMessage{ID: "1-0", Fields: tt.fields})
			if err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
