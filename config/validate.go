package config

import (
	"fmt"
	"os"
	"strings"

	"spritegen/command"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	// Required fields
	if c.Input == "" {
		errors = append(errors, "input path is required")
	} else {
		// Check if input path exists
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("input path does not exist: %s", c.Input))
		}
	}

	if c.OutputDir == "" {
		errors = append(errors, "output directory is required")
	}

	// Validate grid dimensions
	if c.Columns <= 0 {
		errors = append(errors, "columns must be positive")
	}
	if c.TileWidth <= 0 {
		errors = append(errors, "tile width must be positive")
	}
	if c.TileHeight <= 0 {
		errors = append(errors, "tile height must be positive")
	}

	// Validate sampling interval
	if c.Interval <= 0 {
		errors = append(errors, "interval must be positive")
	}

	// Validate format
	if _, err := command.ParseFormat(c.Format); err != nil {
		errors = append(errors, fmt.Sprintf("invalid format '%s', must be one of: %s",
			c.Format, strings.Join(FormatValues(), ", ")))
	}

	// Validate quality
	if c.Quality < 1 || c.Quality > 100 {
		errors = append(errors, "quality must be between 1 and 100")
	}

	// Validate workers (0 is valid, means auto-detect)
	if c.Workers < 0 {
		errors = append(errors, "workers cannot be negative (use 0 for auto-detect)")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
