package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// configValidate is shared; validator caches struct metadata per instance.
var configValidate = validator.New()

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ModelPath is a manifest file or a directory of them. Empty means a
	// model without parameters.
	ModelPath string

	LogFormat string `validate:"oneof=text json"`
	LogLevel  string `validate:"oneof=debug info warn error"`
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := configValidate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
