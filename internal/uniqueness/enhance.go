package uniqueness

import (
	"strings"

	"github.com/gamespark-labs/gamespark/internal/models"
)

// maxSuggestions caps the enhancement list returned by Suggest
const maxSuggestions = 4

var genreEnhancements = map[string][]string{
	"Puzzle": {
		"Add time manipulation mechanics",
		"Include collaborative multiplayer solving",
		"Integrate AR/VR perspective shifts",
		"Add procedural puzzle generation",
		"Include narrative-driven puzzle contexts",
	},
	"Action": {
		"Add environmental destruction physics",
		"Include time-dilation combat mechanics",
		"Add cooperative AI companion system",
		"Include dynamic weather affecting gameplay",
		"Add parkour with momentum-based movement",
	},
	"Adventure": {
		"Add branching narrative with consequence tracking",
		"Include procedural world generation",
		"Add companion relationship systems",
		"Include crafting with resource scarcity",
		"Add multiple timeline mechanics",
	},
	"Simulation": {
		"Add realistic economic systems",
		"Include climate/weather simulation",
		"Add social dynamics modeling",
		"Include procedural event generation",
		"Add cross-generational progression",
	},
	"RPG": {
		"Add classless skill evolution system",
		"Include dynamic world that changes without player",
		"Add reputation system affecting all interactions",
		"Include procedural quest generation",
		"Add multi-character perspective switching",
	},
}

var genericEnhancements = []string{
	"Add a unique mechanic twist on the core loop",
	"Enhance player agency with meaningful choices",
}

var platformEnhancements = map[string][]string{
	"Mobile": {
		"Add gesture-based controls",
		"Include location-based features",
		"Add social sharing integration",
		"Include offline-first design",
	},
	"VR": {
		"Add haptic feedback integration",
		"Include room-scale movement",
		"Add hand tracking mechanics",
		"Include spatial audio design",
	},
	"PC": {
		"Add mod support and community tools",
		"Include advanced graphics options",
		"Add keyboard shortcut customization",
		"Include streaming integration",
	},
}

var simpleEnhancements = []string{
	"Add progressive difficulty scaling",
	"Include accessibility options",
}

var complexEnhancements = []string{
	"Add emergent gameplay systems",
	"Include user-generated content tools",
}

// Fixed marketing hooks appended by Apply when enhancements are merged
var enhancementMarketingHooks = []string{
	"Unique twist on familiar genre",
	"Never-before-seen feature combination",
}

// Suggest proposes differentiation tactics for an idea that scored too close
// to existing ones. Deterministic lookup-and-compose: genre suggestions
// first, then one per platform tag, then complexity-tier extras. Duplicates
// are removed preserving first occurrence and the result is capped at four.
func Suggest(idea *models.GameIdea, similarIdeas []*models.GameIdea) []string {
	suggestions := make([]string, 0, maxSuggestions*2)

	genreList, ok := genreEnhancements[idea.Genre]
	if !ok || len(genreList) == 0 {
		genreList = genericEnhancements
	}
	suggestions = append(suggestions, take(genreList, 2)...)

	for _, platform := range idea.Platform {
		suggestions = append(suggestions, take(platformEnhancements[platform], 1)...)
	}

	switch idea.Complexity {
	case models.ComplexitySimple:
		suggestions = append(suggestions, simpleEnhancements...)
	case models.ComplexityComplex:
		suggestions = append(suggestions, complexEnhancements...)
	}

	return dedupe(suggestions, maxSuggestions)
}

// Apply merges accepted enhancements into a copy of the idea. The input is
// never mutated. An empty enhancement list returns an unchanged copy with no
// template sentence appended.
func Apply(idea *models.GameIdea, enhancements []string) *models.GameIdea {
	enriched := *idea
	enriched.Platform = append([]string(nil), idea.Platform...)
	enriched.UniqueFeatures = append([]string(nil), idea.UniqueFeatures...)
	enriched.MarketingHooks = append([]string(nil), idea.MarketingHooks...)
	enriched.TechnicalRequirements = append([]string(nil), idea.TechnicalRequirements...)
	enriched.RiskFactors = append([]string(nil), idea.RiskFactors...)
	enriched.MVPFeatures = append([]string(nil), idea.MVPFeatures...)
	enriched.UniquenessEnhancements = append([]string(nil), idea.UniquenessEnhancements...)

	if len(enhancements) == 0 {
		return &enriched
	}

	enriched.UniqueFeatures = append(enriched.UniqueFeatures, enhancements...)
	enriched.Description = idea.Description + " Enhanced with unique elements: " + strings.Join(enhancements, ", ") + "."
	enriched.MarketingHooks = append(enriched.MarketingHooks, enhancementMarketingHooks...)
	enriched.UniquenessEnhancements = append([]string(nil), enhancements...)

	return &enriched
}

func take(list []string, n int) []string {
	if len(list) < n {
		n = len(list)
	}
	return list[:n]
}

func dedupe(list []string, limit int) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, limit)
	for _, s := range list {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}
