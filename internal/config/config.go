package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds process configuration read from the environment
type Config struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	EngineURL     string
	EngineTimeout time.Duration

	// DatabaseURL selects the PostgreSQL configuration store; empty means in-memory
	DatabaseURL string

	Version     string
	Environment string
	TracePretty bool
}

var bindings = map[string]string{
	"port":             "PORT",
	"read_timeout":     "SERVER_READ_TIMEOUT",
	"write_timeout":    "SERVER_WRITE_TIMEOUT",
	"shutdown_timeout": "SERVER_SHUTDOWN_TIMEOUT",
	"engine_url":       "GROUNDCITE_ENGINE_URL",
	"engine_timeout":   "GROUNDCITE_ENGINE_TIMEOUT",
	"database_url":     "DATABASE_URL",
	"version":          "APP_VERSION",
	"environment":      "APP_ENVIRONMENT",
	"trace_pretty":     "TRACE_PRETTY",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("read_timeout", 15*time.Second)
	// Engine calls may run for minutes; keep the write deadline above the engine timeout
	v.SetDefault("write_timeout", 330*time.Second)
	v.SetDefault("shutdown_timeout", 30*time.Second)
	v.SetDefault("engine_url", "http://localhost:8001")
	v.SetDefault("engine_timeout", 300*time.Second)
	v.SetDefault("database_url", "")
	v.SetDefault("version", "1.0.0")
	v.SetDefault("environment", "development")
	v.SetDefault("trace_pretty", false)
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	cfg := &Config{
		Port:            strings.TrimSpace(v.GetString("port")),
		ReadTimeout:     v.GetDuration("read_timeout"),
		WriteTimeout:    v.GetDuration("write_timeout"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		EngineURL:       strings.TrimRight(strings.TrimSpace(v.GetString("engine_url")), "/"),
		EngineTimeout:   v.GetDuration("engine_timeout"),
		DatabaseURL:     strings.TrimSpace(v.GetString("database_url")),
		Version:         v.GetString("version"),
		Environment:     v.GetString("environment"),
		TracePretty:     v.GetBool("trace_pretty"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.EngineURL == "" {
		return fmt.Errorf("GROUNDCITE_ENGINE_URL must not be empty")
	}

	durations := map[string]time.Duration{
		"SERVER_READ_TIMEOUT":       c.ReadTimeout,
		"SERVER_WRITE_TIMEOUT":      c.WriteTimeout,
		"SERVER_SHUTDOWN_TIMEOUT":   c.ShutdownTimeout,
		"GROUNDCITE_ENGINE_TIMEOUT": c.EngineTimeout,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s must be a positive duration, got %s", name, d)
		}
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Port
}
