// Package llm provides the Gemini client abstraction used by the analysis engine.
package llm

// ModelTier represents the capability level needed for a call
type ModelTier string

const (
	// TierAnalysis is for the structured resume extraction call, which needs
	// careful reading of long documents.
	TierAnalysis ModelTier = "analysis"
	// TierQuests is for quest synthesis, a lighter creative task.
	TierQuests ModelTier = "quests"
)

// Config holds the model selection for the application
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierAnalysis: "gemini-2.5-pro",
			TierQuests:   "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fall back to the analysis model, the most capable one configured.
	if model, ok := c.Models[TierAnalysis]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{Models: make(map[ModelTier]string)}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
