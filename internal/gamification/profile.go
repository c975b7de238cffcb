// Package gamification turns analysis output into gamified profiles and quests.
package gamification

import (
	"sort"

	"github.com/jonathan/career-forge/internal/features"
	"github.com/jonathan/career-forge/internal/types"
)

// Defaults applied when the model could not identify the candidate.
const (
	DefaultUserName = "User"
	DefaultJobTitle = "Aspiring Professional"
)

// Rank thresholds for the rule-based path. The rank is a pure function of
// the total skill count, so this path tops out at C; higher ranks are only
// reachable through the model's suggestion. That is a known limitation of
// the rule-based scoring, not something to silently correct here.
const (
	rankCThreshold = 30
	rankDThreshold = 15
)

// ProfileFromFeatures converts extracted features into a starting profile.
// Skills are flattened category by category (categories in sorted order,
// skills in first-occurrence order) so the result is deterministic.
func ProfileFromFeatures(found features.ExtractedFeatures) types.UserProfile {
	categories := make([]string, 0, len(found.Skills))
	for category := range found.Skills {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var skills []types.Skill
	for _, category := range categories {
		for _, name := range found.Skills[category] {
			skills = append(skills, types.NewSkill(name, category))
		}
	}

	rank := types.RankE
	switch {
	case len(skills) > rankCThreshold:
		rank = types.RankC
	case len(skills) > rankDThreshold:
		rank = types.RankD
	}

	return types.UserProfile{
		MainRank: rank,
		Level:    1,
		XP:       0,
		Skills:   skills,
	}
}

// ProfileFromAnalysis maps the model's structured analysis into a profile.
// The suggested rank and level are taken verbatim; the analyzer has already
// enforced their bounds.
func ProfileFromAnalysis(analysis *types.StructuredAnalysis) types.UserProfile {
	categories := make([]string, 0, len(analysis.Skills))
	for category := range analysis.Skills {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var skills []types.Skill
	for _, category := range categories {
		for _, name := range analysis.Skills[category] {
			skills = append(skills, types.NewSkill(name, category))
		}
	}

	userName := analysis.UserName
	if userName == "" {
		userName = DefaultUserName
	}
	jobTitle := analysis.JobTitle
	if jobTitle == "" {
		jobTitle = DefaultJobTitle
	}

	return types.UserProfile{
		UserName: userName,
		JobTitle: jobTitle,
		MainRank: analysis.SuggestedRank,
		Level:    analysis.SuggestedLevel,
		XP:       0,
		Skills:   skills,
	}
}
