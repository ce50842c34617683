// Package config loads configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/nimblefox/pullover/internal/game"
	"github.com/nimblefox/pullover/internal/provider"
)

// Config holds runtime settings.
type Config struct {
	Provider       string
	APIKey         string
	Model          string
	Temperature    float64
	TopP           float64
	MaxTokens      int
	MaxTurns       int
	RequestTimeout time.Duration
	StartingMoney  int
	TicketPenalty  int
	WarningBonus   int
	ScorePolicy    game.ScorePolicy
	RosterPath     string
}

// Load reads env vars, applies defaults, and validates required fields.
func Load() Config {
	cfg := Config{
		Provider:    os.Getenv("AI_PROVIDER"),
		APIKey:      os.Getenv("AI_API_KEY"),
		Model:       os.Getenv("AI_MODEL"),
		ScorePolicy: game.ScorePolicy(os.Getenv("SCORE_POLICY")),
		RosterPath:  os.Getenv("ROSTER_PATH"),
	}

	cfg.Temperature = getEnvFloat("AI_TEMPERATURE", 1.0)
	cfg.TopP = getEnvFloat("AI_TOP_P", 0.95)
	cfg.MaxTokens = getEnvInt("AI_MAX_TOKENS", 1024)
	cfg.MaxTurns = getEnvInt("MAX_TURNS", 3)
	cfg.RequestTimeout = time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 10)) * time.Second
	cfg.StartingMoney = getEnvInt("STARTING_MONEY", 2000)
	cfg.TicketPenalty = getEnvInt("TICKET_PENALTY", 500)
	cfg.WarningBonus = getEnvInt("WARNING_BONUS", 1)

	if cfg.Provider == "" {
		cfg.Provider = provider.ProviderGemini
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.ScorePolicy == "" {
		cfg.ScorePolicy = game.ScoreWarningBonus
	}

	if cfg.APIKey == "" {
		log.Fatal("AI_API_KEY environment variable is required")
	}

	return cfg
}

// ProviderConfig maps the loaded settings onto the adapter config.
func (c Config) ProviderConfig() provider.Config {
	return provider.Config{
		Provider: c.Provider,
		APIKey:   c.APIKey,
		Model:    c.Model,
		Generation: provider.GenerationSettings{
			Temperature: c.Temperature,
			TopP:        c.TopP,
			MaxTokens:   c.MaxTokens,
		},
	}
}

// EconomyConfig maps the loaded settings onto the ledger config.
func (c Config) EconomyConfig() game.EconomyConfig {
	return game.EconomyConfig{
		StartingMoney: c.StartingMoney,
		TicketPenalty: c.TicketPenalty,
		WarningBonus:  c.WarningBonus,
		Policy:        c.ScorePolicy,
	}
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}
