package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// MergeFromEnv overrides config values from SPRITEGEN_* environment
// variables. Unset variables leave the current values untouched.
func (c *Config) MergeFromEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}
