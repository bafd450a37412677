package uniqueness

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gamespark-labs/gamespark/internal/models"
)

type stubProvider struct {
	ideas []*models.GameIdea
	err   error
	panic bool
}

func (p *stubProvider) FetchRecent(ctx context.Context, limit int) ([]*models.GameIdea, error) {
	if p.panic {
		panic("provider blew up")
	}
	if p.err != nil {
		return nil, p.err
	}
	if len(p.ideas) > limit {
		return p.ideas[:limit], nil
	}
	return p.ideas, nil
}

func corpusOf(n int, genre string) []*models.GameIdea {
	ideas := make([]*models.GameIdea, 0, n)
	for i := 0; i < n; i++ {
		ideas = append(ideas, &models.GameIdea{
			ID:           fmt.Sprintf("corpus-%d", i),
			Genre:        genre,
			Platform:     []string{"PC"},
			Description:  fmt.Sprintf("description %d", i),
			CoreGameplay: fmt.Sprintf("gameplay %d", i),
		})
	}
	return ideas
}

func TestAnalyzeDuplicateNotUnique(t *testing.T) {
	candidate := testIdea()
	duplicate := testIdea()
	duplicate.ID = "existing-1"

	analyzer := NewAnalyzer(&stubProvider{ideas: []*models.GameIdea{duplicate}}, Config{})

	analysis, err := analyzer.Analyze(context.Background(), candidate)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if analysis.IsUnique {
		t.Error("identical candidate reported as unique")
	}
	if analysis.SimilarityScore < DefaultThreshold {
		t.Errorf("similarity score %f below threshold for an identical idea", analysis.SimilarityScore)
	}
	if len(analysis.SimilarIdeas) != 1 || analysis.SimilarIdeas[0].ID != "existing-1" {
		t.Errorf("expected the duplicate in similar ideas, got %+v", analysis.SimilarIdeas)
	}
	if len(analysis.SuggestedEnhancements) < 1 || len(analysis.SuggestedEnhancements) > 4 {
		t.Errorf("expected 1-4 suggestions, got %d", len(analysis.SuggestedEnhancements))
	}
}

func TestAnalyzeDistinctIdeaUnique(t *testing.T) {
	candidate := &models.GameIdea{
		ID:           "candidate",
		Genre:        "Horror",
		Platform:     []string{"VR"},
		Description:  "a dark mansion full of spirits",
		CoreGameplay: "hide from the entity and solve rituals",
	}

	analyzer := NewAnalyzer(&stubProvider{ideas: corpusOf(10, "Puzzle")}, Config{})

	analysis, err := analyzer.Analyze(context.Background(), candidate)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if !analysis.IsUnique {
		t.Error("fully distinct candidate reported as not unique")
	}
	if analysis.SimilarityScore != 0.0 {
		t.Errorf("similarity score = %f, want 0.0", analysis.SimilarityScore)
	}
	if len(analysis.SuggestedEnhancements) != 0 {
		t.Errorf("unique verdict should carry no suggestions, got %v", analysis.SuggestedEnhancements)
	}
}

func TestAnalyzeThresholdConsistency(t *testing.T) {
	candidate := testIdea()
	corpora := [][]*models.GameIdea{
		{testIdea()},
		corpusOf(5, "Puzzle"),
		corpusOf(5, "Horror"),
	}

	for i, corpus := range corpora {
		analyzer := NewAnalyzer(&stubProvider{ideas: corpus}, Config{})
		analysis, err := analyzer.Analyze(context.Background(), candidate)
		if err != nil {
			t.Fatalf("corpus %d: analyze failed: %v", i, err)
		}

		want := analysis.SimilarityScore < analyzer.Threshold()
		if analysis.IsUnique != want {
			t.Errorf("corpus %d: isUnique = %v but maxSimilarity = %f with threshold %f",
				i, analysis.IsUnique, analysis.SimilarityScore, analyzer.Threshold())
		}
	}
}

func TestAnalyzeConfidenceLevels(t *testing.T) {
	tests := []struct {
		corpusSize int
		want       string
	}{
		{3, "low"},
		{19, "low"},
		{20, "medium"},
		{49, "medium"},
		{50, "high"},
		{80, "high"},
	}

	candidate := testIdea()
	for _, tt := range tests {
		analyzer := NewAnalyzer(&stubProvider{ideas: corpusOf(tt.corpusSize, "Horror")}, Config{})
		analysis, err := analyzer.Analyze(context.Background(), candidate)
		if err != nil {
			t.Fatalf("analyze failed: %v", err)
		}
		if analysis.ConfidenceLevel != tt.want {
			t.Errorf("corpus size %d: confidence = %q, want %q", tt.corpusSize, analysis.ConfidenceLevel, tt.want)
		}
	}
}

func TestAnalyzeSimilarIdeasCappedAndOrdered(t *testing.T) {
	candidate := testIdea()

	// Five identical corpus entries all score 1.0; only three survive, in
	// provider order since the sort is stable
	corpus := make([]*models.GameIdea, 0, 5)
	for i := 0; i < 5; i++ {
		dup := testIdea()
		dup.ID = fmt.Sprintf("dup-%d", i)
		corpus = append(corpus, dup)
	}

	analyzer := NewAnalyzer(&stubProvider{ideas: corpus}, Config{})
	analysis, err := analyzer.Analyze(context.Background(), candidate)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if len(analysis.SimilarIdeas) != 3 {
		t.Fatalf("expected 3 similar ideas, got %d", len(analysis.SimilarIdeas))
	}
	for i, idea := range analysis.SimilarIdeas {
		want := fmt.Sprintf("dup-%d", i)
		if idea.ID != want {
			t.Errorf("similar idea %d = %q, want %q (ties must keep provider order)", i, idea.ID, want)
		}
	}
}

func TestAnalyzeProviderErrorFallsBackToSampleCorpus(t *testing.T) {
	candidate := testIdea() // Puzzle/Mobile, close to the Match Master sample

	analyzer := NewAnalyzer(&stubProvider{err: errors.New("backend unreachable")}, Config{})
	analysis, err := analyzer.Analyze(context.Background(), candidate)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	// Scored against the 3-idea sample set: low confidence, nonzero score
	// from the shared genre and platform
	if analysis.ConfidenceLevel != "low" {
		t.Errorf("confidence = %q, want %q", analysis.ConfidenceLevel, "low")
	}
	if analysis.SimilarityScore <= 0.0 {
		t.Errorf("expected a nonzero score against the sample corpus, got %f", analysis.SimilarityScore)
	}
}

func TestAnalyzeEmptyCorpusFallsBackToSampleCorpus(t *testing.T) {
	candidate := testIdea()

	analyzer := NewAnalyzer(&stubProvider{ideas: nil}, Config{})
	analysis, err := analyzer.Analyze(context.Background(), candidate)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if analysis.ConfidenceLevel != "low" {
		t.Errorf("confidence = %q, want %q", analysis.ConfidenceLevel, "low")
	}
}

func TestAnalyzeCatastrophicFailureSafeDefault(t *testing.T) {
	candidate := testIdea()

	analyzer := NewAnalyzer(&stubProvider{panic: true}, Config{})
	analysis, err := analyzer.Analyze(context.Background(), candidate)
	if err != nil {
		t.Fatalf("analyze should absorb the failure, got error: %v", err)
	}

	if !analysis.IsUnique {
		t.Error("safe default verdict must be unique")
	}
	if analysis.SimilarityScore != 0.0 {
		t.Errorf("safe default score = %f, want 0.0", analysis.SimilarityScore)
	}
	if analysis.ConfidenceLevel != "low" {
		t.Errorf("safe default confidence = %q, want %q", analysis.ConfidenceLevel, "low")
	}
	if len(analysis.SuggestedEnhancements) != 0 {
		t.Errorf("safe default must carry no suggestions, got %v", analysis.SuggestedEnhancements)
	}
}

func TestAnalyzeRejectsMalformedIdea(t *testing.T) {
	tests := []struct {
		name string
		idea *models.GameIdea
	}{
		{"nil idea", nil},
		{"missing genre", &models.GameIdea{Description: "d", CoreGameplay: "g"}},
		{"missing description", &models.GameIdea{Genre: "Puzzle", CoreGameplay: "g"}},
		{"missing gameplay", &models.GameIdea{Genre: "Puzzle", Description: "d"}},
	}

	analyzer := NewAnalyzer(&stubProvider{ideas: corpusOf(3, "Puzzle")}, Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := analyzer.Analyze(context.Background(), tt.idea)
			if !errors.Is(err, ErrMalformedIdea) {
				t.Fatalf("expected ErrMalformedIdea, got %v", err)
			}
		})
	}
}

func TestAnalyzeCustomThreshold(t *testing.T) {
	candidate := testIdea()
	// Same genre, full platform overlap, different text: 0.40 + 0.20 = 0.60
	neighbor := testIdea()
	neighbor.ID = "neighbor"
	neighbor.Description = "an entirely different concept"
	neighbor.CoreGameplay = "different mechanics altogether"
	neighbor.UniqueFeatures = []string{"other feature"}
	neighbor.ArtStyle = "other style"

	strict := NewAnalyzer(&stubProvider{ideas: []*models.GameIdea{neighbor}}, Config{Threshold: 0.50})
	analysis, err := strict.Analyze(context.Background(), candidate)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if analysis.IsUnique {
		t.Errorf("score %f should breach the lowered 0.50 threshold", analysis.SimilarityScore)
	}

	lax := NewAnalyzer(&stubProvider{ideas: []*models.GameIdea{neighbor}}, Config{Threshold: 0.90})
	analysis, err = lax.Analyze(context.Background(), candidate)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if !analysis.IsUnique {
		t.Errorf("score %f should stay below the raised 0.90 threshold", analysis.SimilarityScore)
	}
}
