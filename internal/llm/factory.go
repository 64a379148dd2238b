package llm

import (
	"fmt"
	"strings"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Options carries provider-specific settings; zero values fall back to
// each client's defaults.
type Options struct {
	GeminiBaseURL  string
	GeminiModel    string
	GeminiSampling bool
	OpenAIBaseURL  string
	OpenAIModel    string
}

func NewClient(provider string, opts Options) (Client, error) {
	switch strings.ToLower(provider) {
	case ProviderGemini, "":
		geminiOpts := []GeminiOption{}
		if opts.GeminiBaseURL != "" {
			geminiOpts = append(geminiOpts, WithBaseURL(opts.GeminiBaseURL))
		}
		if !opts.GeminiSampling {
			geminiOpts = append(geminiOpts, WithoutSampling())
		}
		return NewGemini(opts.GeminiModel, geminiOpts...), nil
	case ProviderOpenAI:
		return NewOpenAI(opts.OpenAIBaseURL, opts.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
