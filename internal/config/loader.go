package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when CONFIG_PATH is unset.
const DefaultPath = "./config.yaml"

// Load reads the configuration named by CONFIG_PATH. Without CONFIG_PATH,
// DefaultPath is used when present and the environment alone otherwise.
// Environment variables override YAML values, which override env-default tags.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadFile(path)
	}

	_, err := os.Stat(DefaultPath)
	switch {
	case err == nil:
		return LoadFile(DefaultPath)
	case errors.Is(err, fs.ErrNotExist):
		return load(func(cfg *Config) error { return cleanenv.ReadEnv(cfg) }, "env")
	default:
		return nil, fmt.Errorf("config: stat %s: %w", DefaultPath, err)
	}
}

// LoadFile reads the YAML file at path, applies environment overrides and
// validates the result. A missing file is an error.
func LoadFile(path string) (*Config, error) {
	return load(func(cfg *Config) error { return cleanenv.ReadConfig(path, cfg) }, path)
}

func load(read func(*Config) error, source string) (*Config, error) {
	var cfg Config
	if err := read(&cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate %s: %w", source, err)
	}
	return &cfg, nil
}
