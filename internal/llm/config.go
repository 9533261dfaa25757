// Package llm provides the text-completion oracle abstraction and its
// provider implementations. The oracle is treated as an opaque,
// non-deterministic function from prompt to text; callers own timeouts
// and retry policy.
package llm

// ModelTier represents the capability level requested for a call.
type ModelTier string

const (
	// TierLite is for cheap structured extraction prompts.
	TierLite ModelTier = "lite"
	// TierStandard is for prompts that need more coverage, such as
	// multi-skill roadmap synthesis.
	TierStandard ModelTier = "standard"
)

// Provider identifies a completion backend.
type Provider string

const (
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is any OpenAI-compatible endpoint, including
	// locally hosted models that speak the OpenAI chat API.
	ProviderOpenAI Provider = "openai"
)

// Config holds provider selection and per-tier model names.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
	// BaseURL overrides the provider endpoint. Only honored by the
	// OpenAI-compatible provider; empty means the provider default.
	BaseURL string
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// DefaultOpenAIConfig returns a configuration for an OpenAI-compatible
// endpoint. baseURL may be empty for the hosted API.
func DefaultOpenAIConfig(baseURL string) *Config {
	return &Config{
		Provider: ProviderOpenAI,
		Models: map[ModelTier]string{
			TierLite:     "gpt-4o-mini",
			TierStandard: "gpt-4o",
		},
		BaseURL: baseURL,
	}
}

// GetModel returns the model name for a tier, falling back to the lite
// model when the requested tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier's model replaced.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string, len(c.Models)),
		BaseURL:  c.BaseURL,
	}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}
