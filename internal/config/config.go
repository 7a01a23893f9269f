package config

import (
	"os"
	"strconv"
)

// DefaultFeedURL is the NVD 1.1 "modified CVEs" feed. It includes all
// recently modified CVEs regardless of severity.
const DefaultFeedURL = "https://nvd.nist.gov/feeds/json/cve/1.1/nvdcve-1.1-modified.json.gz"

// Config holds all application configuration.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Feed and persistence
	FeedURL      string
	StorePath    string
	MetadataPath string

	// MinScore drops fetched records scored below it before they are
	// persisted. Zero disables the filter; records without a score are
	// never dropped.
	MinScore float64

	// Session
	SessionSecret string // Used for signing cookies
	RedisURL      string // Optional Redis session storage, e.g. "redis://localhost:6379"

	// Site branding
	SiteTitle string // env: SITE_TITLE, default: "CVE Tracker"
}

// Load builds the configuration from defaults, the optional YAML config
// file, and environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	cfg := &Config{
		Env:           "development",
		ServerAddr:    ":3000",
		BaseURL:       "http://localhost:3000",
		FeedURL:       DefaultFeedURL,
		StorePath:     "critical_cves.csv",
		MetadataPath:  "last_updated.txt",
		SessionSecret: "change-me-in-production-min-32-chars",
		SiteTitle:     "CVE Tracker",
	}

	if err := cfg.applyFile(getEnv("CONFIG_FILE", "config.yaml")); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	setEnv(&c.Env, "ENV")
	setEnv(&c.ServerAddr, "SERVER_ADDR")
	setEnv(&c.BaseURL, "BASE_URL")
	setEnv(&c.FeedURL, "FEED_URL")
	setEnv(&c.StorePath, "STORE_PATH")
	setEnv(&c.MetadataPath, "METADATA_PATH")
	setEnv(&c.SessionSecret, "SESSION_SECRET")
	setEnv(&c.RedisURL, "REDIS_URL")
	setEnv(&c.SiteTitle, "SITE_TITLE")

	if v := os.Getenv("MIN_SCORE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.MinScore = f
		}
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func setEnv(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
