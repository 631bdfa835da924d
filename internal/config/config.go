// Package config provides configuration loading and validation for the server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// AppConfig holds process-wide configuration. Values come from environment
// variables (optionally via a .env file loaded at startup), with an optional
// JSON config file supplying defaults for anything the environment leaves
// unset.
type AppConfig struct {
	// Port is the HTTP listen port.
	Port int `json:"port,omitempty"`
	// DatabaseURL is the PostgreSQL connection URL.
	DatabaseURL string `json:"database_url,omitempty"`
	// GeminiAPIKey authenticates against the generation endpoint.
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	// GenerationEndpoint overrides the generateContent endpoint (tests,
	// proxies). Empty means the public API.
	GenerationEndpoint string `json:"generation_endpoint,omitempty"`
	// GenerationProvider selects "rest" or "sdk".
	GenerationProvider string `json:"generation_provider,omitempty"`
	// LaTeXCompileURL is the remote LaTeX-to-PDF compile endpoint.
	LaTeXCompileURL string `json:"latex_compile_url,omitempty"`
}

// fromEnv reads AppConfig from the environment without validating or
// applying defaults, so file values can fill the gaps.
func fromEnv() (*AppConfig, error) {
	cfg := &AppConfig{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GenerationEndpoint: os.Getenv("GENERATION_ENDPOINT"),
		GenerationProvider: os.Getenv("GENERATION_PROVIDER"),
		LaTeXCompileURL:    os.Getenv("LATEX_COMPILE_URL"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}
	return cfg, nil
}

// Load reads AppConfig from the environment. DATABASE_URL and GEMINI_API_KEY
// are required; everything else has a default.
func Load() (*AppConfig, error) {
	return LoadWithFile("")
}

// LoadWithFile reads AppConfig from the environment, filling unset values
// from the JSON config file at path when one is given. Environment variables
// always win over file values.
func LoadWithFile(path string) (*AppConfig, error) {
	cfg, err := fromEnv()
	if err != nil {
		return nil, err
	}

	if path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}

	if cfg.Port == 0 {
		cfg.Port = 8000
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile parses an AppConfig from a JSON file.
func LoadFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// MergeWithDefaults returns a new AppConfig with zero-valued fields filled
// from defaults.
func (c *AppConfig) MergeWithDefaults(defaults AppConfig) AppConfig {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GenerationEndpoint == "" {
		result.GenerationEndpoint = defaults.GenerationEndpoint
	}
	if result.GenerationProvider == "" {
		result.GenerationProvider = defaults.GenerationProvider
	}
	if result.LaTeXCompileURL == "" {
		result.LaTeXCompileURL = defaults.LaTeXCompileURL
	}
	return result
}

// Validate checks that required configuration is present and sane.
func (c *AppConfig) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}
