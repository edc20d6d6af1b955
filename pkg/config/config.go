package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// Only this package reads environment variables.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// External data sources
	Yahoo  YahooConfig
	Scrape ScrapeConfig

	// Screening sweep
	Screening ScreeningConfig

	// Cache
	CacheTTL time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

// YahooConfig holds Yahoo Finance API configuration
type YahooConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ScrapeConfig holds the supplemental bank-ratio scraper configuration
type ScrapeConfig struct {
	BaseURL string
	Timeout time.Duration
	Enabled bool
}

// ScreeningConfig holds screening sweep configuration
type ScreeningConfig struct {
	Concurrency int           // worker count, 1..5
	RatePerSec  float64       // provider requests per second
	ItemDelay   time.Duration // politeness delay between items per worker
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8087"),
		Env:  getEnv("ENV", "development"),

		Yahoo: YahooConfig{
			BaseURL: getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"),
			Timeout: getEnvAsDuration("YAHOO_TIMEOUT", "15s"),
		},

		Scrape: ScrapeConfig{
			BaseURL: getEnv("SCRAPE_BASE_URL", "https://www.idnfinancials.com"),
			Timeout: getEnvAsDuration("SCRAPE_TIMEOUT", "10s"),
			Enabled: getEnvAsBool("SCRAPE_ENABLED", true),
		},

		Screening: ScreeningConfig{
			Concurrency: getEnvAsInt("SCREEN_CONCURRENCY", 1),
			RatePerSec:  getEnvAsFloat("SCREEN_RATE_PER_SEC", 2.0),
			ItemDelay:   getEnvAsDuration("SCREEN_ITEM_DELAY", "500ms"),
		},

		CacheTTL: getEnvAsDuration("CACHE_TTL", "10m"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if configuration values are sane
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	// Provider rate limits: never more than 5 concurrent fetchers
	if c.Screening.Concurrency < 1 {
		c.Screening.Concurrency = 1
	}
	if c.Screening.Concurrency > 5 {
		return fmt.Errorf("SCREEN_CONCURRENCY must be at most 5")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
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

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
