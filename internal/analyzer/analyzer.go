// Package analyzer produces a structured resume analysis with a single
// JSON-constrained call to the generative model.
package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/career-forge/internal/llm"
	"github.com/jonathan/career-forge/internal/prompts"
	"github.com/jonathan/career-forge/internal/schemas"
	"github.com/jonathan/career-forge/internal/types"
)

// ErrServiceUnavailable indicates the generative model credential is not
// configured. Callers map this to a distinct "service unavailable" status
// rather than a generic failure.
var ErrServiceUnavailable = errors.New("generative model is not configured: missing API key")

// AnalysisError indicates the model call failed or returned output that does
// not conform to the requested schema. It is a hard stop for the analysis
// path: no partial or best-effort result is produced.
type AnalysisError struct {
	Stage string // "generate", "schema", "decode", or "bounds"
	Cause error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("resume analysis failed at %s: %v", e.Stage, e.Cause)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// Analyzer sends resume text to the model and validates the structured reply.
// It is stateless and safe for concurrent use.
type Analyzer struct {
	client llm.Client
}

// New creates an Analyzer. A nil client means no credential was configured;
// Analyze then reports ErrServiceUnavailable per call.
func New(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze runs one structured-extraction call over the resume text.
// The request pins temperature to zero and constrains the response to JSON;
// the reply is checked against the analysis schema and the rank/level bounds
// before being returned.
func (a *Analyzer) Analyze(ctx context.Context, resumeText string) (*types.StructuredAnalysis, error) {
	if a.client == nil {
		return nil, ErrServiceUnavailable
	}

	prompt := prompts.Format(
		prompts.MustGet("analysis.json", "resume_analysis"),
		map[string]string{"ResumeText": resumeText},
	)

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierAnalysis, 0.0)
	if err != nil {
		return nil, &AnalysisError{Stage: "generate", Cause: err}
	}

	if err := schemas.ValidateAnalysis(raw); err != nil {
		return nil, &AnalysisError{Stage: "schema", Cause: err}
	}

	var analysis types.StructuredAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, &AnalysisError{Stage: "decode", Cause: err}
	}

	if err := analysis.Validate(); err != nil {
		return nil, &AnalysisError{Stage: "bounds", Cause: err}
	}

	for i := range analysis.Experiences {
		if analysis.Experiences[i].Organization == "" {
			analysis.Experiences[i].Organization = "N/A"
		}
	}

	return &analysis, nil
}
