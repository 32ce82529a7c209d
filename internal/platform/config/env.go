// Package config loads command configuration from the environment and handles
// fatal exits for command entry points.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name declared in `env` struct tags.
const EnvPrefix = "JINTEROP_"

// ParseEnv loads target from JINTEROP_* environment variables.
func ParseEnv(target any) error {
	return ParseEnvWithPrefix(target, EnvPrefix)
}

// ParseEnvWithPrefix loads target from environment variables named prefix plus
// the tag name.
func ParseEnvWithPrefix(target any, prefix string) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
