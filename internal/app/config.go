package app

import "errors"

// DefaultWorkers bounds the validation worker pool when no explicit count
// is configured.
const DefaultWorkers = 4

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestsPath string // root of the .hcl manifest tree

	LogFormat string
	LogLevel  string
	Workers   int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestsPath == "" {
		return nil, errors.New("ManifestsPath is a required configuration field and cannot be empty")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}

	return &cfg, nil
}
