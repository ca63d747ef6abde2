// Package config loads fooddash configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the dashboard and the dev server.
type Config struct {
	API       APIConfig
	Server    ServerConfig
	Telemetry TelemetryConfig
	LogLevel  string
	LogFile   string
	// ConfirmDelete asks before deleting a food. Off by default: deletes are immediate.
	ConfirmDelete bool
}

type APIConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type ServerConfig struct {
	Host            string
	Port            string
	DBPath          string // empty = in-memory repository
	SeedFile        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type TelemetryConfig struct {
	Endpoint    string
	ServiceName string
	Insecure    bool
}

// LoadEnvFile loads variables from a dotenv file. A missing file is not an error;
// variables already set in the environment win.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL:        getEnv("FOODDASH_API_URL", "http://localhost:3333"),
			RequestTimeout: getEnvAsDuration("FOODDASH_REQUEST_TIMEOUT", 10*time.Second),
		},
		Server: ServerConfig{
			Host:            getEnv("HOST", "127.0.0.1"),
			Port:            getEnv("PORT", "3333"),
			DBPath:          getEnv("FOODDASH_DB", ""),
			SeedFile:        getEnv("FOODDASH_SEED", ""),
			ReadTimeout:     getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Telemetry: TelemetryConfig{
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "fooddash"),
			Insecure:    getEnvAsBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		},
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("FOODDASH_LOG_FILE", filepath.Join(os.TempDir(), "fooddash.log")),
		ConfirmDelete: getEnvAsBool("FOODDASH_CONFIRM_DELETE", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("FOODDASH_API_URL must be an absolute URL, got %q", c.API.BaseURL)
	}
	if c.API.RequestTimeout <= 0 {
		return fmt.Errorf("FOODDASH_REQUEST_TIMEOUT must be positive")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}

// ServerAddr returns host:port for the dev server.
func (c *Config) ServerAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts Go durations ("5s") or plain seconds ("5").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
