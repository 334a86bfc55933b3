// Package config resolves runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const (
	DefaultWindowTitle = "Total Price"
	DefaultBackground  = "white"
)

// Config holds the settings read at startup.
type Config struct {
	LogLevel    zerolog.Level
	LogJSON     bool
	WindowTitle string
	Background  string
	// LogoPath is an optional image shown above the form.
	LogoPath string
}

// Load reads LOG_LEVEL, DEBUG, MEAL_LOG_JSON, MEAL_WINDOW_TITLE,
// MEAL_BACKGROUND and MEAL_LOGO.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:    zerolog.InfoLevel,
		WindowTitle: DefaultWindowTitle,
		Background:  DefaultBackground,
	}

	level, err := determineLogLevel()
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	if v := os.Getenv("MEAL_LOG_JSON"); v != "" {
		cfg.LogJSON, err = strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("MEAL_LOG_JSON: %w", err)
		}
	}
	if v := strings.TrimSpace(os.Getenv("MEAL_WINDOW_TITLE")); v != "" {
		cfg.WindowTitle = v
	}
	if v := strings.TrimSpace(os.Getenv("MEAL_BACKGROUND")); v != "" {
		cfg.Background = v
	}
	cfg.LogoPath = strings.TrimSpace(os.Getenv("MEAL_LOGO"))

	return cfg, nil
}

func determineLogLevel() (zerolog.Level, error) {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	switch raw {
	case "":
		if os.Getenv("DEBUG") == "1" {
			return zerolog.DebugLevel, nil
		}
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}

	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
