package config

import (
	"os"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Config holds everything the server needs to run. It is built once in main
// and passed into constructors; nothing reads environment variables after
// startup.
type Config struct {
	Address     string `env:"ADDRESS" envDefault:":8000"`
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Which llm.Client implementation to wire: "ollama" or "openai".
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"ollama"`

	OllamaBaseURL string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaModel   string `env:"OLLAMA_MODEL" envDefault:"mistral"`

	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	// Deliberately not ,required: a missing key is a recoverable condition
	// handled per request by the evaluation pipeline, not a startup failure.
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`

	// Ceiling for any single provider call, liveness probe included.
	LLMTimeoutSeconds int `env:"LLM_TIMEOUT_SECONDS" envDefault:"120"`
}

// Load reads .env (outside production) and parses the environment into a
// Config.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
