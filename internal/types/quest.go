// Package types provides type definitions for structured data used throughout the career-forge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Quest represents a single, actionable improvement task for the user.
// Quests are immutable once generated and are not persisted across requests.
type Quest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Rewards     []string `json:"rewards"`
}
