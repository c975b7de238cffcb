package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const conformingAnalysis = `{
	"user_name": "Ada Lovelace",
	"job_title": "Software Engineer",
	"summary": "An experienced engineer.",
	"suggested_rank": "B",
	"suggested_level": 42,
	"skills": {"TechnicalSkills": ["Python"]},
	"experiences": [{"category": "Project", "title": "Engine", "description": "Built it."}],
	"inferred_strengths": ["Analytical thinking"]
}`

func TestValidateAnalysis_AcceptsConformingPayload(t *testing.T) {
	assert.NoError(t, ValidateAnalysis(conformingAnalysis))
}

func TestValidateAnalysis_RejectsMissingFields(t *testing.T) {
	err := ValidateAnalysis(`{"user_name": "Ada Lovelace"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateAnalysis_RejectsUnknownRank(t *testing.T) {
	payload := `{
		"user_name": "User",
		"job_title": "Engineer",
		"summary": "Summary.",
		"suggested_rank": "Z",
		"suggested_level": 10,
		"skills": {},
		"experiences": [],
		"inferred_strengths": []
	}`
	assert.Error(t, ValidateAnalysis(payload))
}

func TestValidateAnalysis_RejectsNonJSON(t *testing.T) {
	assert.Error(t, ValidateAnalysis("not json at all"))
}

func TestValidateQuests_AcceptsConformingPayload(t *testing.T) {
	payload := `[
		{"title": "Daily Go Practice", "description": "Solve one exercise.", "category": "TechnicalSkills", "rewards": ["+50 XP Go"]}
	]`
	assert.NoError(t, ValidateQuests(payload))
}

func TestValidateQuests_RejectsMissingQuestFields(t *testing.T) {
	err := ValidateQuests(`[{"title": "Incomplete quest"}]`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestValidateQuests_RejectsObjectInsteadOfArray(t *testing.T) {
	assert.Error(t, ValidateQuests(`{"title": "Not a list"}`))
}
