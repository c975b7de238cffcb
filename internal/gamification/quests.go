package gamification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/jonathan/career-forge/internal/features"
	"github.com/jonathan/career-forge/internal/llm"
	"github.com/jonathan/career-forge/internal/prompts"
	"github.com/jonathan/career-forge/internal/schemas"
	"github.com/jonathan/career-forge/internal/types"
)

// Selection caps for the template strategy.
const (
	maxTechnicalQuests = 2
	maxSoftQuests      = 1
)

// questTemplate is a string pattern instantiated with a skill name.
// Each pattern contains exactly one %s placeholder.
type questTemplate struct {
	title       string
	description string
	reward      string
}

var technicalTemplates = []questTemplate{
	{
		title:       "Daily %s Practice",
		description: "Spend 30 focused minutes working on a small %s exercise or kata today.",
		reward:      "+50 XP %s",
	},
	{
		title:       "Ship Something With %s",
		description: "Build and publish a small project that uses %s, even a rough prototype counts.",
		reward:      "+100 XP %s",
	},
	{
		title:       "Teach %s to Someone",
		description: "Write a short post or explain a %s concept to a colleague; teaching exposes gaps.",
		reward:      "+75 XP %s",
	},
}

var softTemplates = []questTemplate{
	{
		title:       "Level Up Your %s",
		description: "Find one situation this week where you can deliberately practice %s, and reflect on it afterwards.",
		reward:      "+25 XP %s",
	},
	{
		title:       "%s in Action",
		description: "Ask a teammate for honest feedback on your %s and pick one thing to improve.",
		reward:      "+25 XP %s",
	},
}

func (t questTemplate) instantiate(skill types.Skill) types.Quest {
	return types.Quest{
		Title:       fmt.Sprintf(t.title, skill.Name),
		Description: fmt.Sprintf(t.description, skill.Name),
		Category:    skill.Category,
		Rewards:     []string{fmt.Sprintf(t.reward, skill.Name)},
	}
}

// TemplateQuestGenerator builds quests from static templates. The randomness
// source is injectable so tests can pin selection with a fixed seed.
// It never fails: an empty profile simply yields no quests.
type TemplateQuestGenerator struct {
	rng *rand.Rand
}

// NewTemplateQuestGenerator creates a template generator. A nil rng gets a
// time-seeded source.
func NewTemplateQuestGenerator(rng *rand.Rand) *TemplateQuestGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &TemplateQuestGenerator{rng: rng}
}

// Generate produces up to two technical-skill quests and one soft-skill
// quest, choosing skills at random without replacement and a random template
// for each.
func (g *TemplateQuestGenerator) Generate(profile types.UserProfile) []types.Quest {
	var technical, soft []types.Skill
	for _, skill := range profile.Skills {
		if skill.Category == features.SoftSkillCategory {
			soft = append(soft, skill)
		} else {
			technical = append(technical, skill)
		}
	}

	var quests []types.Quest
	for _, skill := range g.pick(technical, maxTechnicalQuests) {
		tmpl := technicalTemplates[g.rng.Intn(len(technicalTemplates))]
		quests = append(quests, tmpl.instantiate(skill))
	}
	for _, skill := range g.pick(soft, maxSoftQuests) {
		tmpl := softTemplates[g.rng.Intn(len(softTemplates))]
		quests = append(quests, tmpl.instantiate(skill))
	}
	return quests
}

// pick selects up to n skills at random without replacement.
func (g *TemplateQuestGenerator) pick(skills []types.Skill, n int) []types.Skill {
	if len(skills) <= n {
		return skills
	}
	picked := make([]types.Skill, 0, n)
	for _, idx := range g.rng.Perm(len(skills))[:n] {
		picked = append(picked, skills[idx])
	}
	return picked
}

// ModelQuestGenerator asks the generative model to synthesize personalized
// quests from the full structured analysis. Quest generation is never allowed
// to abort the request: every failure degrades to the fallback quest, and a
// missing credential degrades to no quests at all.
type ModelQuestGenerator struct {
	client llm.Client
}

// NewModelQuestGenerator creates a model-backed generator. A nil client means
// no credential was configured; Generate then returns an empty list.
func NewModelQuestGenerator(client llm.Client) *ModelQuestGenerator {
	return &ModelQuestGenerator{client: client}
}

// fallbackQuest is returned whenever the model call or its output fails.
func fallbackQuest() types.Quest {
	return types.Quest{
		Title:       "Explore Your Profile",
		Description: "Review the skills and experiences identified in your profile. Think about which skill you'd like to improve first.",
		Category:    "Intelligence",
		Rewards:     []string{"+10 XP Self-Awareness"},
	}
}

// Generate requests 3-4 quests spanning daily, side-mission, and weekly
// cadences. A slightly raised temperature keeps suggestions varied.
func (g *ModelQuestGenerator) Generate(ctx context.Context, analysis *types.StructuredAnalysis) []types.Quest {
	if g.client == nil {
		log.Printf("Warning: generative model not configured, skipping quest generation")
		return nil
	}

	analysisContext, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		log.Printf("Error serializing analysis for quest generation: %v", err)
		return []types.Quest{fallbackQuest()}
	}

	prompt := prompts.Format(
		prompts.MustGet("quests.json", "quest_master"),
		map[string]string{"AnalysisContext": string(analysisContext)},
	)

	raw, err := g.client.GenerateJSON(ctx, prompt, llm.TierQuests, 0.5)
	if err != nil {
		log.Printf("Error generating quests with model: %v", err)
		return []types.Quest{fallbackQuest()}
	}

	if err := schemas.ValidateQuests(raw); err != nil {
		log.Printf("Model returned non-conforming quests: %v", err)
		return []types.Quest{fallbackQuest()}
	}

	var quests []types.Quest
	if err := json.Unmarshal([]byte(raw), &quests); err != nil {
		log.Printf("Error decoding quests: %v", err)
		return []types.Quest{fallbackQuest()}
	}
	return quests
}
