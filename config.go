// Optional YAML configuration for default conversion settings

package main

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"
)

// Config holds conversion settings. Command-line flags take precedence
type Config struct {
	OutputDir        string   `yaml:"output_dir"`
	GeneMap          string   `yaml:"gene_map"`
	TranscriptMap    string   `yaml:"transcript_map"`
	Categories       []string `yaml:"filter_category"`
	Levels           []string `yaml:"levels"`
	CompressionLevel int      `yaml:"compression_level"`
	LogLevel         string   `yaml:"log_level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		OutputDir:        "output",
		Levels:           []string{"gene", "transcript"},
		CompressionLevel: gzip.DefaultCompression,
		LogLevel:         "info",
	}
}

// LoadConfig reads configuration from a YAML file. An empty path yields the
// defaults
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	if err := checkInputExists(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config %s: %v", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %v", path, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.OutputDir == "" {
		cfg.OutputDir = defaults.OutputDir
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = defaults.Levels
	}
	if cfg.CompressionLevel == 0 {
		cfg.CompressionLevel = defaults.CompressionLevel
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
}

// validate checks settings that cannot be caught while parsing
func (cfg *Config) validate() error {
	if cfg.CompressionLevel != gzip.DefaultCompression &&
		(cfg.CompressionLevel < gzip.BestSpeed || cfg.CompressionLevel > gzip.BestCompression) {
		return fmt.Errorf("compression level must be -1 or between %d and %d", gzip.BestSpeed, gzip.BestCompression)
	}
	if len(cfg.Levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}
	seen := make(map[string]bool, len(cfg.Levels))
	for _, l := range cfg.Levels {
		if l == "" {
			return fmt.Errorf("empty level name")
		}
		if seen[l] {
			return fmt.Errorf("level %q given more than once", l)
		}
		seen[l] = true
	}
	return nil
}
