package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load builds the inventory server configuration. Values come from, in
// increasing priority: env-default tags, the YAML file, environment variables.
//
// The file is CONFIG_PATH, or ./config.yaml when CONFIG_PATH is unset or
// empty. A missing file is an error only when CONFIG_PATH names it; a missing
// ./config.yaml means env-only configuration, which is how the container
// image runs. The result is validated before it is returned.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := configPath()

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// configPath reports the YAML path and whether CONFIG_PATH chose it.
func configPath() (string, bool) {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p, true
	}
	return defaultConfigPath, false
}
