package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	FRED_BASE_URL=https://api.stlouisfed.org/fred
//	FRED_API_KEY=abcdef0123456789
//	FRED_TIMEOUT=15s
//	CACHE_DIR=./data/cache
//	CACHE_TTL_FAST=1h
//	CACHE_TTL_SLOW=12h
//	CACHE_TTL_GLACIAL=24h
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Upstream UpstreamConfig // Economic-data provider settings
	Cache    CacheConfig    // Cache store location and TTL policy
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// UpstreamConfig defines how to reach the FRED-compatible data provider.
type UpstreamConfig struct {
	BaseURL string        // API root, e.g. "https://api.stlouisfed.org/fred"
	APIKey  string        // Provider API key
	Timeout time.Duration // Per-request HTTP timeout
}

// CacheConfig defines the embedded cache store and its TTL tiers.
//
// TTLFast applies to daily/weekly series, TTLSlow to monthly, TTLGlacial to
// quarterly/annual. Fresher upstream data expires from the cache sooner.
type CacheConfig struct {
	Dir        string
	TTLFast    time.Duration
	TTLSlow    time.Duration
	TTLGlacial time.Duration
}

// AppConfig is the globally accessible configuration instance, populated once
// via LoadConfig().
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit: if required variables are missing, validateConfig() terminates
// the app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("FRED_BASE_URL", "https://api.stlouisfed.org/fred")
	viper.SetDefault("FRED_API_KEY", "")
	viper.SetDefault("FRED_TIMEOUT", "15s")

	viper.SetDefault("CACHE_DIR", "./data/cache")
	viper.SetDefault("CACHE_TTL_FAST", "1h")
	viper.SetDefault("CACHE_TTL_SLOW", "12h")
	viper.SetDefault("CACHE_TTL_GLACIAL", "24h")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Upstream: UpstreamConfig{
			BaseURL: viper.GetString("FRED_BASE_URL"),
			APIKey:  viper.GetString("FRED_API_KEY"),
			Timeout: viper.GetDuration("FRED_TIMEOUT"),
		},
		Cache: CacheConfig{
			Dir:        viper.GetString("CACHE_DIR"),
			TTLFast:    viper.GetDuration("CACHE_TTL_FAST"),
			TTLSlow:    viper.GetDuration("CACHE_TTL_SLOW"),
			TTLGlacial: viper.GetDuration("CACHE_TTL_GLACIAL"),
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing. The upstream API key is the only secret
// and has no sane default.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Upstream.BaseURL == "" {
		missing = append(missing, "FRED_BASE_URL")
	}
	if AppConfig.Upstream.APIKey == "" {
		missing = append(missing, "FRED_API_KEY")
	}
	if AppConfig.Cache.Dir == "" {
		missing = append(missing, "CACHE_DIR")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
