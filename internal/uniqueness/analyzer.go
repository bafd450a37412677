package uniqueness

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/gamespark-labs/gamespark/internal/models"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultThreshold is the similarity score at or above which an idea is
	// considered not unique
	DefaultThreshold = 0.70

	// DefaultCorpusLimit caps how many recent ideas are fetched for comparison
	DefaultCorpusLimit = 100

	// DefaultMaxSimilar caps how many similar ideas the verdict reports
	DefaultMaxSimilar = 3
)

// ErrMalformedIdea is returned when a candidate is missing required fields
var ErrMalformedIdea = errors.New("malformed idea")

// Config tunes the analyzer. Zero-value fields fall back to the defaults.
type Config struct {
	Weights     Weights
	FuzzyText   bool
	Threshold   float64
	CorpusLimit int
	MaxSimilar  int
	Fallback    []*models.GameIdea
}

// Analyzer scores candidate ideas against the corpus and produces a
// uniqueness verdict. It holds no mutable state; concurrent Analyze calls
// are safe.
type Analyzer struct {
	provider    CorpusProvider
	scorer      *Scorer
	threshold   float64
	corpusLimit int
	maxSimilar  int
	fallback    []*models.GameIdea
}

func NewAnalyzer(provider CorpusProvider, cfg Config) *Analyzer {
	weights := cfg.Weights
	if weights.total() <= 0 {
		weights = DefaultWeights()
	}
	threshold := cfg.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	corpusLimit := cfg.CorpusLimit
	if corpusLimit <= 0 {
		corpusLimit = DefaultCorpusLimit
	}
	maxSimilar := cfg.MaxSimilar
	if maxSimilar <= 0 {
		maxSimilar = DefaultMaxSimilar
	}
	fallback := cfg.Fallback
	if fallback == nil {
		fallback = SampleCorpus()
	}

	return &Analyzer{
		provider:    provider,
		scorer:      &Scorer{Weights: weights, FuzzyText: cfg.FuzzyText},
		threshold:   threshold,
		corpusLimit: corpusLimit,
		maxSimilar:  maxSimilar,
		fallback:    fallback,
	}
}

// Threshold returns the configured similarity threshold.
func (a *Analyzer) Threshold() float64 {
	return a.threshold
}

// Validate rejects candidates missing the fields the fingerprint depends on.
func Validate(idea *models.GameIdea) error {
	if idea == nil {
		return fmt.Errorf("%w: idea is nil", ErrMalformedIdea)
	}
	if idea.Genre == "" {
		return fmt.Errorf("%w: genre is required", ErrMalformedIdea)
	}
	if idea.Description == "" {
		return fmt.Errorf("%w: description is required", ErrMalformedIdea)
	}
	if idea.CoreGameplay == "" {
		return fmt.Errorf("%w: core gameplay is required", ErrMalformedIdea)
	}
	return nil
}

// Analyze scores the candidate against the corpus and returns a verdict.
// The only error it returns is validation; every failure in the analysis
// path itself degrades to the safe default verdict so uniqueness scoring
// never blocks the generation flow.
func (a *Analyzer) Analyze(ctx context.Context, idea *models.GameIdea) (analysis *models.UniquenessAnalysis, err error) {
	if err := Validate(idea); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("ideaId", idea.ID).Msg("Uniqueness analysis failed, returning safe default")
			analysis = safeDefault()
			err = nil
		}
	}()

	corpus := a.fetchCorpus(ctx)
	if len(corpus) == 0 {
		return safeDefault(), nil
	}

	// Score in provider order so repeated analysis of the same snapshot is
	// reproducible
	results := make([]models.SimilarityResult, 0, len(corpus))
	maxSimilarity := 0.0
	for _, existing := range corpus {
		score := a.scorer.Similarity(idea, existing)
		results = append(results, models.SimilarityResult{Idea: existing, Similarity: score})
		if score > maxSimilarity {
			maxSimilarity = score
		}
	}

	similar := make([]models.SimilarityResult, 0)
	for _, r := range results {
		if r.Similarity >= a.threshold {
			similar = append(similar, r)
		}
	}
	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].Similarity > similar[j].Similarity
	})
	if len(similar) > a.maxSimilar {
		similar = similar[:a.maxSimilar]
	}

	similarIdeas := make([]*models.GameIdea, 0, len(similar))
	for _, r := range similar {
		similarIdeas = append(similarIdeas, r.Idea)
	}

	isUnique := maxSimilarity < a.threshold

	suggestions := []string{}
	if !isUnique {
		suggestions = Suggest(idea, similarIdeas)
	}

	log.Debug().
		Str("ideaId", idea.ID).
		Float64("maxSimilarity", maxSimilarity).
		Bool("isUnique", isUnique).
		Int("corpusSize", len(corpus)).
		Msg("Uniqueness analysis completed")

	return &models.UniquenessAnalysis{
		IsUnique:              isUnique,
		SimilarityScore:       maxSimilarity,
		SimilarIdeas:          similarIdeas,
		SuggestedEnhancements: suggestions,
		ConfidenceLevel:       confidenceLevel(len(corpus)),
	}, nil
}

// fetchCorpus queries the provider and falls back to the built-in sample set
// on failure or empty result. A failed fetch is handled once, not retried.
func (a *Analyzer) fetchCorpus(ctx context.Context) []*models.GameIdea {
	if a.provider == nil {
		return a.fallback
	}

	corpus, err := a.provider.FetchRecent(ctx, a.corpusLimit)
	if err != nil {
		log.Warn().Err(err).Msg("Corpus fetch failed, using sample corpus")
		return a.fallback
	}
	if len(corpus) == 0 {
		log.Debug().Msg("Corpus is empty, using sample corpus")
		return a.fallback
	}

	return corpus
}

func confidenceLevel(corpusSize int) string {
	switch {
	case corpusSize >= 50:
		return "high"
	case corpusSize >= 20:
		return "medium"
	default:
		return "low"
	}
}

func safeDefault() *models.UniquenessAnalysis {
	return &models.UniquenessAnalysis{
		IsUnique:              true,
		SimilarityScore:       0,
		SimilarIdeas:          []*models.GameIdea{},
		SuggestedEnhancements: []string{},
		ConfidenceLevel:       "low",
	}
}
