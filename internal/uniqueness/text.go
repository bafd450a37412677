package uniqueness

import (
	"strings"
	"unicode"
)

// minTokenLength filters out short filler words before comparison
const minTokenLength = 3

// TokenSimilarity computes Jaccard similarity between the token sets of two
// free-text fields. Text is lower-cased, punctuation is stripped, and tokens
// shorter than three characters are ignored. Used by the opt-in fuzzy text
// mode of the scorer.
func TokenSimilarity(a, b string) float64 {
	tokensA := tokenize(a)
	tokensB := tokenize(b)

	if len(tokensA) == 0 && len(tokensB) == 0 {
		return 0.0
	}

	intersection := 0
	for t := range tokensA {
		if tokensB[t] {
			intersection++
		}
	}

	union := len(tokensA) + len(tokensB) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}

func tokenize(s string) map[string]bool {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(' ')
		}
	}

	tokens := make(map[string]bool)
	for _, t := range strings.Fields(b.String()) {
		if len(t) < minTokenLength {
			continue
		}
		tokens[t] = true
	}

	return tokens
}
