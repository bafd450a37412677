package models

import (
	"time"
)

type Step string

const (
	StepIdle       Step = "idle"
	StepGenerating Step = "generating"
	StepAnalyzing  Step = "analyzing"
	StepEnhancing  Step = "enhancing"
	StepCompleted  Step = "completed"
)

// Complexity tiers for a game idea
const (
	ComplexitySimple  = "Simple"
	ComplexityMedium  = "Medium"
	ComplexityComplex = "Complex"
)

// GameIdea represents a generated game concept stored in MongoDB
type GameIdea struct {
	ID                     string    `bson:"_id,omitempty" json:"id"`
	Title                  string    `bson:"title" json:"title"`
	Genre                  string    `bson:"genre" json:"genre"`
	Platform               []string  `bson:"platform" json:"platform"`
	Complexity             string    `bson:"complexity" json:"complexity"` // Simple, Medium, Complex
	Description            string    `bson:"description" json:"description"`
	CoreGameplay           string    `bson:"core_gameplay" json:"coreGameplay"`
	UniqueFeatures         []string  `bson:"unique_features" json:"uniqueFeatures"`
	TargetAudience         string    `bson:"target_audience" json:"targetAudience"`
	EstimatedDevTime       string    `bson:"estimated_dev_time" json:"estimatedDevTime"`
	Monetization           string    `bson:"monetization,omitempty" json:"monetization,omitempty"`
	ArtStyle               string    `bson:"art_style,omitempty" json:"artStyle,omitempty"`
	TechnicalRequirements  []string  `bson:"technical_requirements,omitempty" json:"technicalRequirements,omitempty"`
	TeamSize               string    `bson:"team_size,omitempty" json:"teamSize,omitempty"`
	BudgetEstimate         string    `bson:"budget_estimate,omitempty" json:"budgetEstimate,omitempty"`
	MarketingHooks         []string  `bson:"marketing_hooks,omitempty" json:"marketingHooks,omitempty"`
	CompetitorAnalysis     string    `bson:"competitor_analysis,omitempty" json:"competitorAnalysis,omitempty"`
	RiskFactors            []string  `bson:"risk_factors,omitempty" json:"riskFactors,omitempty"`
	MVPFeatures            []string  `bson:"mvp_features,omitempty" json:"mvpFeatures,omitempty"`
	UserID                 string    `bson:"user_id,omitempty" json:"userId,omitempty"`
	IsPublic               bool      `bson:"is_public" json:"isPublic"`
	SimilarityScore        float64   `bson:"similarity_score,omitempty" json:"similarityScore,omitempty"`
	UniquenessEnhancements []string  `bson:"uniqueness_enhancements,omitempty" json:"uniquenessEnhancements,omitempty"`
	CreatedAt              time.Time `bson:"created_at" json:"createdAt"`
}

// GameParameters holds the user constraints collected by the generation form
type GameParameters struct {
	Genre                  string   `json:"genre,omitempty"`
	Platform               []string `json:"platform,omitempty"`
	Complexity             string   `json:"complexity,omitempty"`
	TargetAudience         string   `json:"targetAudience,omitempty"`
	Budget                 string   `json:"budget,omitempty"`
	TeamSize               string   `json:"teamSize,omitempty"`
	Timeframe              string   `json:"timeframe,omitempty"`
	MonetizationPreference string   `json:"monetizationPreference,omitempty"`
	Theme                  string   `json:"theme,omitempty"`
	CustomPrompt           string   `json:"customPrompt,omitempty"`
}
