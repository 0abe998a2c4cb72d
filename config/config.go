// Package config loads auth-gate configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	Port                string        // Service port
	RedisURL            string        // Redis connection URL (cache + event stream)
	MemberManagementURL string        // Authoritative member directory endpoint
	EventStream         string        // Redis Stream key for unauthorized events
	RejectionDenom      int           // Reject 1 in N attempts; 0 disables the gate
	MemberTimeout       time.Duration // Member directory request timeout
	CacheTTL            time.Duration // Cached record TTL; 0 = no expiry
}

// Load reads configuration from environment variables. Missing
// required values are a startup failure, not a per-request one.
func Load() (*Config, error) {
	config := &Config{
		Port:                getEnv("PORT", "9600"),
		RedisURL:            getEnv("REDIS_URL", ""),
		MemberManagementURL: getEnv("MEMBER_MANAGEMENT_URL", ""),
		EventStream:         getEnv("AUTH_EVENT_STREAM", "auth.unauthorized"),
		RejectionDenom:      20,
		MemberTimeout:       5 * time.Second,
		CacheTTL:            0,
	}

	if v := os.Getenv("REJECTION_DENOMINATOR"); v != "" {
		denom, err := strconv.Atoi(v)
		if err != nil || denom < 0 {
			return nil, fmt.Errorf("invalid REJECTION_DENOMINATOR: %q", v)
		}
		config.RejectionDenom = denom
	}

	if v := os.Getenv("MEMBER_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MEMBER_TIMEOUT format: %w", err)
		}
		config.MemberTimeout = timeout
	}

	if v := os.Getenv("CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CACHE_TTL format: %w", err)
		}
		config.CacheTTL = ttl
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.RedisURL == "" {
		return fmt.Errorf("REDIS_URL is required")
	}

	if c.MemberManagementURL == "" {
		return fmt.Errorf("MEMBER_MANAGEMENT_URL is required")
	}

	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	if c.EventStream == "" {
		return fmt.Errorf("AUTH_EVENT_STREAM cannot be empty")
	}

	if c.MemberTimeout <= 0 {
		return fmt.Errorf("MEMBER_TIMEOUT must be positive")
	}

	if c.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL cannot be negative")
	}

	return nil
}

// getEnv retrieves an environment variable or returns a fallback
// value. A KEY_FILE variable pointing at a readable file takes
// precedence, for secrets mounted by the orchestrator.
func getEnv(key, fallback string) string {
	if file := os.Getenv(key + "_FILE"); file != "" {
		content, err := os.ReadFile(file)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
