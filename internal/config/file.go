package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional config.yaml. Unset fields leave the
// corresponding Config value untouched.
type fileConfig struct {
	Env          string   `yaml:"env"`
	ServerAddr   string   `yaml:"server_addr"`
	BaseURL      string   `yaml:"base_url"`
	FeedURL      string   `yaml:"feed_url"`
	StorePath    string   `yaml:"store_path"`
	MetadataPath string   `yaml:"metadata_path"`
	MinScore     *float64 `yaml:"min_score"`
	SiteTitle    string   `yaml:"site_title"`
}

// applyFile overlays settings from the YAML config file. A missing file
// is fine; the file is optional.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	setIf(&c.Env, fc.Env)
	setIf(&c.ServerAddr, fc.ServerAddr)
	setIf(&c.BaseURL, fc.BaseURL)
	setIf(&c.FeedURL, fc.FeedURL)
	setIf(&c.StorePath, fc.StorePath)
	setIf(&c.MetadataPath, fc.MetadataPath)
	setIf(&c.SiteTitle, fc.SiteTitle)
	if fc.MinScore != nil {
		c.MinScore = *fc.MinScore
	}

	return nil
}

func setIf(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
