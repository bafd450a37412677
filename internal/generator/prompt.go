package generator

import (
	"strings"

	"github.com/gamespark-labs/gamespark/internal/models"
)

// BuildPrompt renders the generation parameters into the prompt that would
// be sent to a generative model. The template generator below does not call
// a model; the prompt is kept for logging and for the eventual integration.
func BuildPrompt(params models.GameParameters) string {
	var b strings.Builder
	b.WriteString("Generate a realistic, actionable game concept with the following constraints:\n\n")

	if params.Genre != "" {
		b.WriteString("Genre: " + params.Genre + "\n")
	}
	if len(params.Platform) > 0 {
		b.WriteString("Platform(s): " + strings.Join(params.Platform, ", ") + "\n")
	}
	if params.Complexity != "" {
		b.WriteString("Complexity: " + params.Complexity + "\n")
	}
	if params.TargetAudience != "" {
		b.WriteString("Target Audience: " + params.TargetAudience + "\n")
	}
	if params.Budget != "" {
		b.WriteString("Budget: " + params.Budget + "\n")
	}
	if params.TeamSize != "" {
		b.WriteString("Team Size: " + params.TeamSize + "\n")
	}
	if params.Timeframe != "" {
		b.WriteString("Development Time: " + params.Timeframe + "\n")
	}
	if params.MonetizationPreference != "" {
		b.WriteString("Monetization: " + params.MonetizationPreference + "\n")
	}
	if params.Theme != "" {
		b.WriteString("Theme/Setting: " + params.Theme + "\n")
	}
	if params.CustomPrompt != "" {
		b.WriteString("Additional Requirements: " + params.CustomPrompt + "\n")
	}

	b.WriteString(`
Please provide a comprehensive game concept that includes:
- Compelling title and core concept
- Detailed gameplay mechanics
- Unique selling points
- Realistic development scope
- Marketing potential
- Risk assessment
- MVP feature breakdown
- Technical requirements

Focus on creating something achievable within the given constraints while still being innovative and marketable.`)

	return b.String()
}
