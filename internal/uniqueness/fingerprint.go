package uniqueness

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gamespark-labs/gamespark/internal/models"
)

// Fingerprint derives a comparable summary of an idea. Ideas with the same
// genre, platform set, feature/gameplay text and description/art-style text
// always produce the same fingerprint.
func Fingerprint(idea *models.GameIdea) *models.IdeaFingerprint {
	return &models.IdeaFingerprint{
		ID:               idea.ID,
		Genre:            strings.ToLower(idea.Genre),
		PlatformHash:     platformKey(idea.Platform),
		MechanicsHash:    hashString(strings.Join(idea.UniqueFeatures, " ") + idea.CoreGameplay),
		ThemeHash:        hashString(idea.Description + idea.ArtStyle),
		ComplexityWeight: complexityWeight(idea.Complexity),
		CreatedAt:        idea.CreatedAt,
	}
}

// platformKey builds an order-insensitive key from the platform tags:
// lower-cased, de-duplicated, sorted, joined with "-".
func platformKey(platforms []string) string {
	set := make(map[string]bool, len(platforms))
	for _, p := range platforms {
		set[strings.ToLower(p)] = true
	}

	keys := make([]string, 0, len(set))
	for p := range set {
		keys = append(keys, p)
	}
	sort.Strings(keys)

	return strings.Join(keys, "-")
}

// hashString folds a rolling polynomial hash into a 32-bit integer and
// renders its absolute value in base-36. Stable across runs; not
// cryptographic, collisions are acceptable at corpus scale.
func hashString(s string) string {
	var h int32
	for _, r := range s {
		h = h<<5 - h + int32(r)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}

	return strconv.FormatInt(v, 36)
}

// complexityWeight maps the three-tier enumeration to 1/2/3.
// Unknown or missing complexity defaults to Medium.
func complexityWeight(complexity string) int {
	switch complexity {
	case models.ComplexitySimple:
		return 1
	case models.ComplexityMedium:
		return 2
	case models.ComplexityComplex:
		return 3
	default:
		return 2
	}
}
