package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_AnalysisPromptExists(t *testing.T) {
	prompt, err := Get("analysis.json", "resume_analysis")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.ResumeText}}")
	assert.Contains(t, prompt, "suggested_rank")
}

func TestGet_QuestPromptExists(t *testing.T) {
	prompt, err := Get("quests.json", "quest_master")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.AnalysisContext}}")
	assert.Contains(t, prompt, "Quest Master")
}

func TestGet_UnknownKeyFails(t *testing.T) {
	_, err := Get("analysis.json", "nonexistent_key")
	assert.Error(t, err)
}

func TestGet_UnknownFileFails(t *testing.T) {
	_, err := Get("missing.json", "resume_analysis")
	assert.Error(t, err)
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	result := Format("Analyze this: {{.ResumeText}}", map[string]string{
		"ResumeText": "resume content here",
	})
	assert.Equal(t, "Analyze this: resume content here", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "value"})
	assert.Equal(t, "value and {{.Unknown}}", result)
}

func TestMustGet_PanicsOnMissingPrompt(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("analysis.json", "nonexistent_key")
	})
}
