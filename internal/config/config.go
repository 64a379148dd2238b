package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type CredentialMode string

const (
	// ModeStore reads the API key from the local secrets store; the
	// user supplies it through the settings surface.
	ModeStore CredentialMode = "store"
	// ModeStatic uses the key baked into the configuration.
	ModeStatic CredentialMode = "static"
)

type Config struct {
	// LLM settings
	LLMProvider    string `env:"LLM_PROVIDER" envDefault:"gemini"`
	GeminiBaseURL  string `env:"GEMINI_BASE_URL"`
	GeminiModel    string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GeminiSampling bool   `env:"GEMINI_SAMPLING" envDefault:"true"`
	OpenAIBaseURL  string `env:"OPENAI_BASE_URL"`
	OpenAIModel    string `env:"OPENAI_MODEL"`

	// Credential handling
	CredentialMode CredentialMode `env:"CREDENTIAL_MODE" envDefault:"store"`
	GeminiAPIKey   string         `env:"GEMINI_API_KEY"`

	// Storage
	SecretsFilePath string `env:"SECRETS_FILE_PATH" envDefault:"data/secrets.json"`

	// Text to speech
	TTSCommand  string  `env:"TTS_COMMAND"`
	TTSLanguage string  `env:"TTS_LANGUAGE" envDefault:"en-US"`
	TTSPitch    float64 `env:"TTS_PITCH" envDefault:"1.0"`
	TTSRate     float64 `env:"TTS_RATE" envDefault:"0.5"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
