// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by translating.space.
const EnvPrefix = "TRANSLATING_SPACE_"

// ParseEnv loads configuration from TRANSLATING_SPACE_* environment variables.
// Struct tags name the variable without the prefix.
func ParseEnv(target any) error {
	return ParseEnvWithPrefix(target, EnvPrefix)
}

// ParseEnvWithPrefix loads configuration using an explicit variable prefix.
func ParseEnvWithPrefix(target any, prefix string) error {
	if target == nil {
		return fmt.Errorf("parse env: target is required")
	}
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
