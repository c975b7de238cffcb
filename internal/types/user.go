// Package types provides type definitions for structured data used throughout the career-forge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Rank labels, ordered E < D < C < B < A < S.
const (
	RankE = "E"
	RankD = "D"
	RankC = "C"
	RankB = "B"
	RankA = "A"
	RankS = "S"
)

// Ranks lists every valid rank in ascending order.
var Ranks = []string{RankE, RankD, RankC, RankB, RankA, RankS}

// Skill represents a single, levelable skill in the user's profile
type Skill struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	Level         int    `json:"level"`
	XP            int    `json:"xp"`
	XPToNextLevel int    `json:"xp_to_next_level"`
}

// NewSkill returns a Skill with the standard starting progression values
func NewSkill(name, category string) Skill {
	return Skill{
		Name:          name,
		Category:      category,
		Level:         1,
		XP:            0,
		XPToNextLevel: 100,
	}
}

// UserProfile represents the complete gamified user profile built from one analysis
type UserProfile struct {
	UserName string  `json:"user_name,omitempty"`
	JobTitle string  `json:"job_title,omitempty"`
	MainRank string  `json:"main_rank"`
	Level    int     `json:"level"`
	XP       int     `json:"xp"`
	Skills   []Skill `json:"skills"`
}
