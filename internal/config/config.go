package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
)

type Config struct {
	// Logging
	LogLevel string

	// Ledger
	RecentWindow int
	UndoMatch    string

	// Display
	Currency   string
	RenderMode string
	Prompt     string
}

func Load() *Config {
	cfg := &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),

		RecentWindow: getEnvInt("RECENT_WINDOW", 5),
		UndoMatch:    getEnv("UNDO_MATCH", "id"),

		Currency:   strings.ToUpper(getEnv("CURRENCY", "INR")),
		RenderMode: getEnv("RENDER_MODE", "plain"),
		Prompt:     getEnv("PROMPT", "> "),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if c.RecentWindow < 1 {
		errors = append(errors, fmt.Sprintf("invalid recent window %d: must be at least 1", c.RecentWindow))
	} else if c.RecentWindow > 100 {
		errors = append(errors, fmt.Sprintf("invalid recent window %d: must be at most 100", c.RecentWindow))
	}

	validMatches := []string{"id", "value"}
	if !oneOf(validMatches, c.UndoMatch) {
		errors = append(errors, fmt.Sprintf("invalid undo match '%s': must be one of %v", c.UndoMatch, validMatches))
	}

	if c.Currency == "" {
		errors = append(errors, "currency cannot be empty")
	} else if money.GetCurrency(c.Currency) == nil {
		errors = append(errors, fmt.Sprintf("unknown currency '%s': must be an ISO 4217 code", c.Currency))
	}

	validModes := []string{"plain", "markdown"}
	if !oneOf(validModes, c.RenderMode) {
		errors = append(errors, fmt.Sprintf("invalid render mode '%s': must be one of %v", c.RenderMode, validModes))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func oneOf(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
