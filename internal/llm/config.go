// Package llm routes copilot workflows to completion models by capability
// tier, so call sites pick a cost/quality level instead of a model name.
package llm

// ModelTier selects how much model capability a workflow call pays for.
type ModelTier string

const (
	// TierLite is for cheap extraction tasks: skills, location, experience years
	TierLite ModelTier = "lite"
	// TierStandard is for moderate generation: outreach email drafting
	TierStandard ModelTier = "standard"
	// TierAdvanced is for full match analysis of a candidate against a recruiter query
	TierAdvanced ModelTier = "advanced"
)

// Provider identifies the completion backend.
type Provider string

// ProviderGemini is the only backend currently wired.
const ProviderGemini Provider = "gemini"

// Config holds the per-tier model routing for one provider.
// The zero value routes nothing; start from DefaultGeminiConfig.
type Config struct {
	Provider Provider
	Lite     string
	Standard string
	Advanced string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini tier mapping
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Lite:     "gemini-2.5-flash-lite",
		Standard: "gemini-2.5-flash",
		Advanced: "gemini-2.5-pro",
	}
}

// GetModel resolves the model name for a tier. An unset or unknown tier
// falls back to standard, then lite, so a partially configured Config
// still routes every call somewhere.
func (c *Config) GetModel(tier ModelTier) string {
	var model string
	switch tier {
	case TierLite:
		model = c.Lite
	case TierStandard:
		model = c.Standard
	case TierAdvanced:
		model = c.Advanced
	}
	if model == "" {
		model = c.Standard
	}
	if model == "" {
		model = c.Lite
	}
	return model
}

// WithModel returns a copy of the Config with one tier's model replaced.
// The receiver is not modified.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	next := *c
	switch tier {
	case TierLite:
		next.Lite = model
	case TierStandard:
		next.Standard = model
	case TierAdvanced:
		next.Advanced = model
	}
	return &next
}
