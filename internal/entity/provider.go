package entity

// GenerationMethod tells the caller which path produced a result.
type GenerationMethod string

const (
	MethodLocalLLM        GenerationMethod = "local_llm"
	MethodFallbackDefault GenerationMethod = "fallback_default"
	MethodHostedDirect    GenerationMethod = "hosted_direct"
	MethodLocalFallback   GenerationMethod = "local_fallback"
)

// GenerateOptions are the sampling parameters sent with a prompt.
type GenerateOptions struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
}

const (
	ProviderStatusRunning    = "running"
	ProviderStatusError      = "error"
	ProviderStatusConfigured = "configured"
	ProviderStatusMissing    = "not_configured"
)

// ProviderStatus describes whether a backend is currently usable.
type ProviderStatus struct {
	Available       bool     `json:"available"`
	Status          string   `json:"status"`
	AvailableModels []string `json:"available_models,omitempty"`
	CurrentModel    string   `json:"current_model,omitempty"`
	Configured      *bool    `json:"configured,omitempty"`
	MaxTokens       int      `json:"max_tokens,omitempty"`
	Temperature     float64  `json:"temperature,omitempty"`
	Message         string   `json:"message,omitempty"`
}
