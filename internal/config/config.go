// Package config provides environment-backed configuration for the
// career-forge services.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/jonathan/career-forge/internal/pipeline"
)

// Environment variable names.
const (
	EnvAPIKey = "GEMINI_API_KEY"
	EnvMode   = "ANALYSIS_MODE"
	EnvPort   = "PORT"
)

const defaultPort = 8080

// Config is the process-wide configuration: constructed once at startup,
// read-only afterwards, and passed into components explicitly.
type Config struct {
	// APIKey is the generative model credential. May be empty: the LLM
	// path then reports service-unavailable per request instead of the
	// process refusing to start, so the rule-based path can still serve.
	APIKey string
	// Mode selects the default pipeline variant.
	Mode pipeline.Mode
	// Port is the HTTP listen port.
	Port int
}

// Load reads configuration from the environment. Missing-credential
// detection happens here, eagerly, and is logged once at startup.
func Load() *Config {
	cfg := &Config{
		APIKey: os.Getenv(EnvAPIKey),
		Mode:   pipeline.ModeLLM,
		Port:   defaultPort,
	}

	if mode := os.Getenv(EnvMode); mode != "" {
		cfg.Mode = pipeline.Mode(mode)
	}

	if port := os.Getenv(EnvPort); port != "" {
		if parsed, err := strconv.Atoi(port); err == nil && parsed > 0 {
			cfg.Port = parsed
		} else {
			log.Printf("Warning: ignoring invalid %s value %q", EnvPort, port)
		}
	}

	if cfg.APIKey == "" {
		log.Printf("Warning: %s is not set; LLM-based analysis will be unavailable", EnvAPIKey)
	}

	return cfg
}
