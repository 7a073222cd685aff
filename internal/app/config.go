package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DefinitionPath string // hcl or yaml files
	OutputPath     string // empty derives "<behavior name>.xml"

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.DefinitionPath == "" {
		return nil, errors.New("DefinitionPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
