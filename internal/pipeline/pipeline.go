// Package pipeline orchestrates resume analysis from raw upload to assembled
// result. Two variants exist: the LLM path (primary) runs one structured
// extraction call; the rule-based path matches a static taxonomy against
// annotated text. Each request flows through as an independent, synchronous
// sequence with no shared mutable state.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/jonathan/career-forge/internal/analyzer"
	"github.com/jonathan/career-forge/internal/annotate"
	"github.com/jonathan/career-forge/internal/extract"
	"github.com/jonathan/career-forge/internal/features"
	"github.com/jonathan/career-forge/internal/gamification"
	"github.com/jonathan/career-forge/internal/llm"
	"github.com/jonathan/career-forge/internal/types"
)

// Mode selects which analysis variant handles a request.
type Mode string

// Available pipeline modes.
const (
	ModeLLM   Mode = "llm"
	ModeRules Mode = "rules"
)

// ErrEmptyDocument indicates extraction produced no usable text. The file was
// accepted but unreadable, an unprocessable-entity condition rather than a
// server fault.
var ErrEmptyDocument = errors.New("no text could be extracted from the document")

// Options configures a Pipeline.
type Options struct {
	// Mode defaults to ModeLLM.
	Mode Mode
	// Client is the generative model client; nil when no credential is
	// configured, in which case the LLM path reports service-unavailable
	// per request.
	Client llm.Client
	// Annotator overrides the NLP binding on the rule-based path.
	// Defaults to the prose-backed annotator.
	Annotator annotate.Annotator
	// Rand seeds template quest selection; nil uses a time-seeded source.
	Rand *rand.Rand
}

// Pipeline runs uploaded documents through one analysis variant. All fields
// are read-only after construction, so one Pipeline serves concurrent
// requests.
type Pipeline struct {
	mode      Mode
	annotator annotate.Annotator
	extractor *features.Extractor
	analyzer  *analyzer.Analyzer
	template  *gamification.TemplateQuestGenerator
	model     *gamification.ModelQuestGenerator

	// extractText is swappable in tests; production always uses extract.Text.
	extractText func(data []byte, contentType string) (string, error)
}

// New constructs a Pipeline. On the rule-based path the annotator and
// taxonomy are initialized here so a broken NLP setup fails at startup,
// never at request time.
func New(opts Options) (*Pipeline, error) {
	mode := opts.Mode
	if mode == "" {
		mode = ModeLLM
	}

	p := &Pipeline{
		mode:        mode,
		extractText: extract.Text,
	}

	switch mode {
	case ModeRules:
		annotator := opts.Annotator
		if annotator == nil {
			var err error
			annotator, err = annotate.New()
			if err != nil {
				return nil, fmt.Errorf("rule-based pipeline unavailable: %w", err)
			}
		}
		extractor, err := features.NewExtractor(features.DefaultTaxonomy(), annotator)
		if err != nil {
			return nil, fmt.Errorf("failed to compile skill taxonomy: %w", err)
		}
		p.annotator = annotator
		p.extractor = extractor
		p.template = gamification.NewTemplateQuestGenerator(opts.Rand)
	case ModeLLM:
		p.analyzer = analyzer.New(opts.Client)
		p.model = gamification.NewModelQuestGenerator(opts.Client)
	default:
		return nil, fmt.Errorf("unknown pipeline mode: %s", mode)
	}

	return p, nil
}

// Analyze runs one document through the configured variant and assembles the
// response. Extraction and analysis failures abort the request; quest
// generation failures never do.
func (p *Pipeline) Analyze(ctx context.Context, data []byte, contentType string) (*types.AnalysisResult, error) {
	rawText, err := p.extractText(data, contentType)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rawText) == "" {
		return nil, ErrEmptyDocument
	}

	if p.mode == ModeRules {
		return p.analyzeWithRules(rawText)
	}
	return p.analyzeWithModel(ctx, rawText)
}

func (p *Pipeline) analyzeWithRules(rawText string) (*types.AnalysisResult, error) {
	doc, err := p.annotator.Annotate(rawText)
	if err != nil {
		return nil, fmt.Errorf("annotation failed: %w", err)
	}

	found := p.extractor.Extract(&annotate.ParsedResume{RawText: rawText, Doc: doc})
	profile := gamification.ProfileFromFeatures(found)
	quests := p.template.Generate(profile)

	return assemble(profile, quests, nil), nil
}

func (p *Pipeline) analyzeWithModel(ctx context.Context, rawText string) (*types.AnalysisResult, error) {
	analysis, err := p.analyzer.Analyze(ctx, rawText)
	if err != nil {
		return nil, err
	}

	profile := gamification.ProfileFromAnalysis(analysis)
	quests := p.model.Generate(ctx, analysis)

	return assemble(profile, quests, analysis.Experiences), nil
}

// assemble packages profile, quests, and experiences into the response
// payload. Pure composition: nothing is validated or mutated here.
func assemble(profile types.UserProfile, quests []types.Quest, experiences []types.ExperienceRecord) *types.AnalysisResult {
	if quests == nil {
		quests = []types.Quest{}
	}
	return &types.AnalysisResult{
		Profile:     profile,
		Quests:      quests,
		Experiences: experiences,
	}
}
