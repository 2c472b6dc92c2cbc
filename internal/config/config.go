package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel string `yaml:"log_level"`

	Server  ServerConfig  `yaml:"server"`
	Lookup  LookupConfig  `yaml:"lookup"`
	Catalog CatalogConfig `yaml:"catalog"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	MaxUploadBytes int64    `yaml:"max_upload_bytes"`
	AllowedTypes   []string `yaml:"allowed_types"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LookupConfig struct {
	URL            string `yaml:"url"`
	APIKey         string `yaml:"api_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type CatalogConfig struct {
	// Path to the sqlite catalog file. Empty runs from the built-in
	// seed catalog without persistence.
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads a YAML configuration file and fills in defaults for any
// field left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = 10 << 20
	}
	if len(cfg.Server.AllowedTypes) == 0 {
		cfg.Server.AllowedTypes = []string{
			"audio/mpeg",
			"audio/wav",
			"audio/x-wav",
			"audio/ogg",
			"audio/mp4",
			"audio/flac",
		}
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
	if cfg.Lookup.TimeoutSeconds == 0 {
		cfg.Lookup.TimeoutSeconds = 5
	}
}
