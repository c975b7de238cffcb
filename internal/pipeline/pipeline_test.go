package pipeline

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-forge/internal/analyzer"
	"github.com/jonathan/career-forge/internal/annotate"
	"github.com/jonathan/career-forge/internal/extract"
	"github.com/jonathan/career-forge/internal/features"
	"github.com/jonathan/career-forge/internal/llm"
	"github.com/jonathan/career-forge/internal/types"
)

// fakeClient answers the analysis and quest calls with scripted responses,
// keyed by model tier.
type fakeClient struct {
	responses map[llm.ModelTier]string
	calls     int
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, tier llm.ModelTier, _ float32) (string, error) {
	f.calls++
	return f.responses[tier], nil
}

func (f *fakeClient) Close() error { return nil }

// fakeAnnotator splits on whitespace, standing in for the NLP model.
type fakeAnnotator struct{}

func (f *fakeAnnotator) Annotate(text string) (*annotate.Document, error) {
	return &annotate.Document{Tokens: strings.Fields(text)}, nil
}

// withText overrides extraction so tests can feed plain text through the
// pipeline without crafting real PDF bytes.
func withText(p *Pipeline, text string) {
	p.extractText = func(data []byte, contentType string) (string, error) {
		return extractOrText(data, contentType, text)
	}
}

func extractOrText(data []byte, contentType, text string) (string, error) {
	// Preserve the real content-type gate.
	if _, err := extract.Text(nil, contentType); err != nil {
		return "", err
	}
	return text, nil
}

func TestAnalyze_UnsupportedTypeFailsBeforeAnyDownstreamWork(t *testing.T) {
	client := &fakeClient{}
	p, err := New(Options{Mode: ModeLLM, Client: client})
	require.NoError(t, err)

	_, err = p.Analyze(context.Background(), []byte("png bytes"), "image/png")

	var unsupported *extract.UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, 0, client.calls)
}

func TestAnalyze_UnreadableDocumentIsEmptyDocument(t *testing.T) {
	client := &fakeClient{}
	p, err := New(Options{Mode: ModeLLM, Client: client})
	require.NoError(t, err)

	_, err = p.Analyze(context.Background(), []byte("not a real pdf"), extract.ContentTypePDF)

	assert.ErrorIs(t, err, ErrEmptyDocument)
	assert.Equal(t, 0, client.calls)
}

func TestAnalyze_MissingCredentialIsServiceUnavailable(t *testing.T) {
	p, err := New(Options{Mode: ModeLLM, Client: nil})
	require.NoError(t, err)
	withText(p, "a perfectly readable resume")

	_, err = p.Analyze(context.Background(), []byte("pdf bytes"), extract.ContentTypePDF)

	assert.ErrorIs(t, err, analyzer.ErrServiceUnavailable)
}

func TestAnalyze_LLMPathAssemblesFullResult(t *testing.T) {
	client := &fakeClient{responses: map[llm.ModelTier]string{
		llm.TierAnalysis: `{
			"user_name": "Ada Lovelace",
			"job_title": "Software Engineer",
			"summary": "An experienced engineer.",
			"suggested_rank": "B",
			"suggested_level": 42,
			"skills": {"TechnicalSkills": ["Go", "Python"]},
			"experiences": [{"category": "Project", "title": "Engine", "description": "Built it."}],
			"inferred_strengths": ["Analytical thinking"]
		}`,
		llm.TierQuests: `[
			{"title": "Daily Go Practice", "description": "Solve one exercise.", "category": "TechnicalSkills", "rewards": ["+50 XP Go"]}
		]`,
	}}
	p, err := New(Options{Mode: ModeLLM, Client: client})
	require.NoError(t, err)
	withText(p, "resume text")

	result, err := p.Analyze(context.Background(), []byte("pdf bytes"), extract.ContentTypePDF)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", result.Profile.UserName)
	assert.Equal(t, types.RankB, result.Profile.MainRank)
	assert.Equal(t, 42, result.Profile.Level)
	assert.Len(t, result.Profile.Skills, 2)
	require.Len(t, result.Quests, 1)
	assert.Equal(t, "Daily Go Practice", result.Quests[0].Title)
	require.Len(t, result.Experiences, 1)
	assert.Equal(t, "N/A", result.Experiences[0].Organization)
	assert.Equal(t, 2, client.calls)
}

func TestAnalyze_RuleBasedPathWithFiveTechnicalSkills(t *testing.T) {
	p, err := New(Options{
		Mode:      ModeRules,
		Annotator: &fakeAnnotator{},
		Rand:      rand.New(rand.NewSource(7)),
	})
	require.NoError(t, err)
	// Five skills, each in exactly one technical taxonomy category.
	withText(p, "Python Docker PostgreSQL Figma Jira")

	result, err := p.Analyze(context.Background(), []byte("pdf bytes"), extract.ContentTypePDF)
	require.NoError(t, err)

	assert.Equal(t, types.RankE, result.Profile.MainRank)
	assert.Equal(t, 1, result.Profile.Level)
	assert.Equal(t, 0, result.Profile.XP)
	assert.Len(t, result.Profile.Skills, 5)
	require.Len(t, result.Quests, 2)
	for _, quest := range result.Quests {
		assert.NotEqual(t, features.SoftSkillCategory, quest.Category)
	}
	assert.Empty(t, result.Experiences)
}

func TestAnalyze_RuleBasedPathEmptySkillProfileHasNoQuests(t *testing.T) {
	p, err := New(Options{Mode: ModeRules, Annotator: &fakeAnnotator{}})
	require.NoError(t, err)
	withText(p, "a resume mentioning nothing from the taxonomy")

	result, err := p.Analyze(context.Background(), []byte("pdf bytes"), extract.ContentTypePDF)
	require.NoError(t, err)

	assert.Equal(t, types.RankE, result.Profile.MainRank)
	assert.Empty(t, result.Profile.Skills)
	assert.Empty(t, result.Quests)
	assert.NotNil(t, result.Quests)
}

func TestNew_UnknownModeFails(t *testing.T) {
	_, err := New(Options{Mode: "telepathy"})
	assert.Error(t, err)
}
