// Package types provides type definitions for structured data used throughout the career-forge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// ExperienceRecord is a single experience the model extracted from the resume
// (a role, project, or achievement). Organization defaults to "N/A" when the
// resume does not name one.
type ExperienceRecord struct {
	Category     string `json:"category"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Description  string `json:"description"`
}

// StructuredAnalysis is the fixed output contract for the LLM resume analysis.
// The model is asked to fill every field; SuggestedRank and SuggestedLevel are
// additionally bounds-checked here because the model's self-reported values
// cannot be trusted beyond what the response schema enforces.
type StructuredAnalysis struct {
	UserName          string              `json:"user_name"`
	JobTitle          string              `json:"job_title"`
	Summary           string              `json:"summary"`
	SuggestedRank     string              `json:"suggested_rank" validate:"required,oneof=E D C B A S"`
	SuggestedLevel    int                 `json:"suggested_level" validate:"required,min=1,max=99"`
	Skills            map[string][]string `json:"skills"`
	Experiences       []ExperienceRecord  `json:"experiences"`
	InferredStrengths []string            `json:"inferred_strengths"`
}

// structValidator is shared; validator.Validate is safe for concurrent use.
var structValidator = validator.New()

// Validate enforces the rank and level bounds the model was asked to honor
func (a *StructuredAnalysis) Validate() error {
	return structValidator.Struct(a)
}

// AnalysisResult is the full response payload for one analysis request:
// profile plus quests, and on the LLM path the extracted experiences.
// It is assembled once and never mutated after construction.
type AnalysisResult struct {
	Profile     UserProfile        `json:"profile"`
	Quests      []Quest            `json:"quests"`
	Experiences []ExperienceRecord `json:"experiences,omitempty"`
}
