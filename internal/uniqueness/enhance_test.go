package uniqueness

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gamespark-labs/gamespark/internal/models"
)

func TestSuggestCapAndUniqueness(t *testing.T) {
	genres := []string{"Puzzle", "Action", "Adventure", "Simulation", "RPG", "Horror", ""}
	platformSets := [][]string{nil, {"Mobile"}, {"PC", "VR"}, {"Mobile", "PC", "VR"}}
	complexities := []string{models.ComplexitySimple, models.ComplexityMedium, models.ComplexityComplex, ""}

	for _, genre := range genres {
		for _, platforms := range platformSets {
			for _, complexity := range complexities {
				idea := &models.GameIdea{
					Genre:      genre,
					Platform:   platforms,
					Complexity: complexity,
				}

				suggestions := Suggest(idea, nil)

				if len(suggestions) == 0 {
					t.Errorf("genre=%q platforms=%v complexity=%q: no suggestions", genre, platforms, complexity)
				}
				if len(suggestions) > 4 {
					t.Errorf("genre=%q platforms=%v complexity=%q: %d suggestions exceeds cap", genre, platforms, complexity, len(suggestions))
				}

				seen := make(map[string]bool)
				for _, s := range suggestions {
					if seen[s] {
						t.Errorf("duplicate suggestion %q for genre=%q platforms=%v complexity=%q", s, genre, platforms, complexity)
					}
					seen[s] = true
				}
			}
		}
	}
}

func TestSuggestOrderingGenreFirst(t *testing.T) {
	idea := &models.GameIdea{
		Genre:      "Puzzle",
		Platform:   []string{"Mobile"},
		Complexity: models.ComplexitySimple,
	}

	suggestions := Suggest(idea, nil)

	want := []string{
		"Add time manipulation mechanics",
		"Include collaborative multiplayer solving",
		"Add gesture-based controls",
		"Add progressive difficulty scaling",
	}
	if !reflect.DeepEqual(suggestions, want) {
		t.Fatalf("suggestions = %v, want %v", suggestions, want)
	}
}

func TestSuggestUnknownGenreGetsGenericFallback(t *testing.T) {
	idea := &models.GameIdea{Genre: "Roguelike Deckbuilder"}

	suggestions := Suggest(idea, nil)

	if len(suggestions) != 2 {
		t.Fatalf("expected the 2 generic suggestions, got %v", suggestions)
	}
	for _, want := range genericEnhancements {
		found := false
		for _, s := range suggestions {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Errorf("generic suggestion %q missing from %v", want, suggestions)
		}
	}
}

func TestSuggestComplexTier(t *testing.T) {
	idea := &models.GameIdea{Genre: "Horror", Complexity: models.ComplexityComplex}

	suggestions := Suggest(idea, nil)

	joined := strings.Join(suggestions, "|")
	if !strings.Contains(joined, "emergent gameplay") && !strings.Contains(joined, "user-generated content") {
		t.Errorf("complex tier suggestions missing from %v", suggestions)
	}
}

func TestApplyMergesEnhancements(t *testing.T) {
	idea := testIdea()
	enhancements := []string{"Add time manipulation mechanics", "Add gesture-based controls"}

	enriched := Apply(idea, enhancements)

	wantFeatures := len(idea.UniqueFeatures) + len(enhancements)
	if len(enriched.UniqueFeatures) != wantFeatures {
		t.Errorf("feature count = %d, want %d", len(enriched.UniqueFeatures), wantFeatures)
	}
	for i, e := range enhancements {
		got := enriched.UniqueFeatures[len(idea.UniqueFeatures)+i]
		if got != e {
			t.Errorf("enhancement %d appended as %q, want %q", i, got, e)
		}
	}

	wantSuffix := " Enhanced with unique elements: Add time manipulation mechanics, Add gesture-based controls."
	if enriched.Description != idea.Description+wantSuffix {
		t.Errorf("description = %q, want original plus template sentence", enriched.Description)
	}

	if len(enriched.MarketingHooks) != len(idea.MarketingHooks)+2 {
		t.Errorf("marketing hooks = %d, want %d", len(enriched.MarketingHooks), len(idea.MarketingHooks)+2)
	}

	if !reflect.DeepEqual(enriched.UniquenessEnhancements, enhancements) {
		t.Errorf("recorded enhancements = %v, want %v", enriched.UniquenessEnhancements, enhancements)
	}
}

func TestApplyEmptyListIsIdentity(t *testing.T) {
	idea := testIdea()
	originalDescription := idea.Description
	originalFeatures := append([]string(nil), idea.UniqueFeatures...)

	enriched := Apply(idea, nil)

	if enriched.Description != originalDescription {
		t.Errorf("description changed on empty enhancement list: %q", enriched.Description)
	}
	if !reflect.DeepEqual(enriched.UniqueFeatures, originalFeatures) {
		t.Errorf("features changed on empty enhancement list: %v", enriched.UniqueFeatures)
	}
	if len(enriched.MarketingHooks) != len(idea.MarketingHooks) {
		t.Errorf("marketing hooks changed on empty enhancement list")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	idea := testIdea()
	originalDescription := idea.Description
	originalFeatureCount := len(idea.UniqueFeatures)

	_ = Apply(idea, []string{"Add gesture-based controls"})

	if idea.Description != originalDescription {
		t.Error("input description mutated")
	}
	if len(idea.UniqueFeatures) != originalFeatureCount {
		t.Error("input feature list mutated")
	}
}
