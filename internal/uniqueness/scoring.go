package uniqueness

import (
	"strings"

	"github.com/gamespark-labs/gamespark/internal/models"
)

// Weights holds the contribution of each similarity signal.
// The score is normalized by the weight sum, so tuned weights that do not
// sum to 1.0 still produce a score in [0, 1].
type Weights struct {
	Genre     float64
	Platform  float64
	Mechanics float64
	Theme     float64
}

// DefaultWeights returns the documented default distribution.
func DefaultWeights() Weights {
	return Weights{
		Genre:     0.40,
		Platform:  0.20,
		Mechanics: 0.25,
		Theme:     0.15,
	}
}

func (w Weights) total() float64 {
	return w.Genre + w.Platform + w.Mechanics + w.Theme
}

// Scorer computes weighted similarity between two ideas.
// FuzzyText switches the mechanics and theme terms from exact-hash equality
// to token-set Jaccard over the underlying text. The exact-hash default is
// coarse and misses near-duplicate phrasing; that is the documented
// behavior, and the fuzzy mode is an opt-in upgrade behind the same weight
// slots.
type Scorer struct {
	Weights   Weights
	FuzzyText bool
}

// NewScorer returns a scorer with the default weights and exact-hash text
// matching.
func NewScorer() *Scorer {
	return &Scorer{Weights: DefaultWeights()}
}

// Similarity returns a weighted similarity score in [0, 1].
func (s *Scorer) Similarity(a, b *models.GameIdea) float64 {
	w := s.Weights
	if w.total() <= 0 {
		w = DefaultWeights()
	}

	fpA := Fingerprint(a)
	fpB := Fingerprint(b)

	score := 0.0

	// Genre match is binary, not fuzzy
	if fpA.Genre == fpB.Genre {
		score += w.Genre
	}

	score += jaccard(a.Platform, b.Platform) * w.Platform

	if s.FuzzyText {
		score += TokenSimilarity(mechanicsText(a), mechanicsText(b)) * w.Mechanics
		score += TokenSimilarity(themeText(a), themeText(b)) * w.Theme
	} else {
		if fpA.MechanicsHash == fpB.MechanicsHash {
			score += w.Mechanics
		}
		if fpA.ThemeHash == fpB.ThemeHash {
			score += w.Theme
		}
	}

	return score / w.total()
}

// Similarity computes the default weighted similarity between two ideas.
func Similarity(a, b *models.GameIdea) float64 {
	return NewScorer().Similarity(a, b)
}

// jaccard computes |intersection| / |union| over the lower-cased tag sets.
// Two empty sets score 0.0, not NaN.
func jaccard(tagsA, tagsB []string) float64 {
	setA := make(map[string]bool, len(tagsA))
	for _, t := range tagsA {
		setA[strings.ToLower(t)] = true
	}

	setB := make(map[string]bool, len(tagsB))
	for _, t := range tagsB {
		setB[strings.ToLower(t)] = true
	}

	intersection := 0
	for t := range setA {
		if setB[t] {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}

func mechanicsText(idea *models.GameIdea) string {
	return strings.Join(idea.UniqueFeatures, " ") + " " + idea.CoreGameplay
}

func themeText(idea *models.GameIdea) string {
	return idea.Description + " " + idea.ArtStyle
}
