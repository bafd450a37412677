package models

import (
	"time"
)

// IdeaFingerprint is a derived summary of an idea used for comparison.
// It is recomputed on demand and never persisted on its own.
type IdeaFingerprint struct {
	ID               string    `json:"id"`
	Genre            string    `json:"genre"`
	PlatformHash     string    `json:"platformHash"`
	MechanicsHash    string    `json:"mechanicsHash"`
	ThemeHash        string    `json:"themeHash"`
	ComplexityWeight int       `json:"complexityWeight"`
	CreatedAt        time.Time `json:"createdAt"`
}

// SimilarityResult pairs a corpus idea with its similarity score
type SimilarityResult struct {
	Idea       *GameIdea `json:"idea"`
	Similarity float64   `json:"similarity"`
}

// UniquenessAnalysis is the verdict returned by the analyzer
type UniquenessAnalysis struct {
	IsUnique              bool        `json:"isUnique"`
	SimilarityScore       float64     `json:"similarityScore"`
	SimilarIdeas          []*GameIdea `json:"similarIdeas"`
	SuggestedEnhancements []string    `json:"suggestedEnhancements"`
	ConfidenceLevel       string      `json:"confidenceLevel"` // high, medium, low
}

// GenerateRequest is the payload for the generate endpoint
type GenerateRequest struct {
	Parameters GameParameters `json:"parameters"`
}

// IdeaRequest wraps an idea for refine and analyze endpoints
type IdeaRequest struct {
	Idea GameIdea `json:"idea" binding:"required"`
}

// EnhanceRequest is the payload for explicit enhancement application
type EnhanceRequest struct {
	Idea         GameIdea `json:"idea" binding:"required"`
	Enhancements []string `json:"enhancements"`
}

// IdeaResponse is returned by generate and refine endpoints
type IdeaResponse struct {
	Idea     *GameIdea           `json:"idea"`
	Analysis *UniquenessAnalysis `json:"analysis,omitempty"`
	Step     Step                `json:"step"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
