//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSkill_StartingValues(t *testing.T) {
	skill := NewSkill("Python", "PROGRAMMING")

	assert.Equal(t, "Python", skill.Name)
	assert.Equal(t, "PROGRAMMING", skill.Category)
	assert.Equal(t, 1, skill.Level)
	assert.Equal(t, 0, skill.XP)
	assert.Equal(t, 100, skill.XPToNextLevel)
}

func TestUserProfile_JSONMarshaling(t *testing.T) {
	profile := UserProfile{
		UserName: "Ada Lovelace",
		JobTitle: "Software Engineer",
		MainRank: "C",
		Level:    3,
		XP:       0,
		Skills:   []Skill{NewSkill("Go", "PROGRAMMING")},
	}

	data, err := json.MarshalIndent(profile, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"main_rank": "C"`)
	assert.Contains(t, string(data), `"xp_to_next_level": 100`)
}

func TestUserProfile_OmitsEmptyIdentity(t *testing.T) {
	data, err := json.Marshal(UserProfile{MainRank: "E", Level: 1})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "user_name")
	assert.NotContains(t, string(data), "job_title")
}
