package main

import (
	"time"

	"github.com/Adit10076/vetai-backend/internal/config"
	"github.com/Adit10076/vetai-backend/internal/evaluation"
	"github.com/Adit10076/vetai-backend/internal/llm"
	"github.com/Adit10076/vetai-backend/internal/router"

	"github.com/sirupsen/logrus"
)

func main() {

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("❌ Invalid configuration: %v", err)
	}

	// ───────────────────────── LOGGING ─────────────────────────
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.AppEnv == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	// ───────────────────────── LLM ─────────────────────────
	timeout := time.Duration(cfg.LLMTimeoutSeconds) * time.Second

	var client llm.Client
	switch cfg.LLMProvider {
	case "openai":
		client = llm.NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, timeout)
	default:
		client = llm.NewOllamaClient(cfg.OllamaBaseURL, cfg.OllamaModel, timeout)
	}

	// A missing key is not fatal: every evaluation just gets the fallback
	// until one is configured.
	if cfg.LLMProvider == "openai" && cfg.OpenAIAPIKey == "" {
		logrus.Warn("OPENAI_API_KEY not set; evaluations will fall back")
	}

	// ───────────────────────── EVALUATION ─────────────────────────
	evalService := evaluation.NewService(client)
	evalHandler := evaluation.NewHandler(evalService)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(cfg, evalHandler)

	// ───────────────────────── START ─────────────────────────
	logrus.Infof("🚀 API running at http://localhost%s (provider: %s)", cfg.Address, client.Name())
	if err := r.Run(cfg.Address); err != nil {
		logrus.Fatalf("❌ Server exited: %v", err)
	}
}
