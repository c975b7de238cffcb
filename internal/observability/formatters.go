// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-forge/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow is the default number of skills to display
	maxSkillsToShow = 10
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of a gamified profile.
func (p *Printer) PrintProfile(profile *types.UserProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	if profile.UserName != "" {
		sb.WriteString(fmt.Sprintf("Name:   %s\n", profile.UserName))
	}
	if profile.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Title:  %s\n", profile.JobTitle))
	}
	sb.WriteString(fmt.Sprintf("Rank:   %s\n", profile.MainRank))
	sb.WriteString(fmt.Sprintf("Level:  %d\n", profile.Level))
	sb.WriteString(fmt.Sprintf("XP:     %d\n", profile.XP))

	if len(profile.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(profile.Skills), maxSkillsToShow)
		for i := 0; i < count; i++ {
			skill := profile.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, Lv %d)\n", skill.Name, skill.Category, skill.Level))
		}
		if len(profile.Skills) > maxSkillsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxSkillsToShow))
		}
	}

	p.printBox("Profile", strings.TrimRight(sb.String(), "\n"))
}

// PrintQuests outputs a human-readable quest list.
func (p *Printer) PrintQuests(quests []types.Quest) {
	if len(quests) == 0 {
		p.printBox("Quests", "No quests generated")
		return
	}

	var sb strings.Builder
	for i, quest := range quests {
		sb.WriteString(fmt.Sprintf("%d. %s [%s]\n", i+1, quest.Title, quest.Category))
		sb.WriteString(fmt.Sprintf("   %s\n", quest.Description))
		if len(quest.Rewards) > 0 {
			sb.WriteString(fmt.Sprintf("   Rewards: %s\n", strings.Join(quest.Rewards, ", ")))
		}
	}

	p.printBox(fmt.Sprintf("Quests (%d)", len(quests)), strings.TrimRight(sb.String(), "\n"))
}
