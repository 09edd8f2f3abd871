package config

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validatePaneSizes(config)...)
	validationErrors = append(validationErrors, validateSeparator(config)...)
	validationErrors = append(validationErrors, validateSnapping(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validatePaneSizes(config *Config) []string {
	var validationErrors []string
	sizes := config.Pane.InitialSizes
	if len(sizes) != 2 {
		validationErrors = append(validationErrors, fmt.Sprintf("pane.initial_sizes must have exactly 2 entries, got %d", len(sizes)))
	} else {
		for _, s := range sizes {
			if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
				validationErrors = append(validationErrors, "pane.initial_sizes must be finite and non-negative")
				break
			}
		}
		if sizes[0]+sizes[1] == 0 {
			validationErrors = append(validationErrors, "pane.initial_sizes must not both be zero")
		}
	}
	if config.Pane.CollapsedSize < 0 {
		validationErrors = append(validationErrors, "pane.collapsed_size must be non-negative")
	}
	return validationErrors
}

func validateSeparator(config *Config) []string {
	var validationErrors []string
	if config.Pane.SeparatorWidth < 1 {
		validationErrors = append(validationErrors, "pane.separator_width must be at least 1")
	}
	if !hexColorPattern.MatchString(config.Pane.SeparatorColor) {
		validationErrors = append(validationErrors, "pane.separator_color must be a hex color like #000000")
	}
	if !hexColorPattern.MatchString(config.Pane.MovingSeparatorColor) {
		validationErrors = append(validationErrors, "pane.moving_separator_color must be a hex color like #808080")
	}
	if config.Pane.CollapseButtonOffset < 0 || config.Pane.CollapseButtonOffset > 100 {
		validationErrors = append(validationErrors, "pane.collapse_button_offset must be between 0 and 100")
	}
	return validationErrors
}

func validateSnapping(config *Config) []string {
	if config.Pane.SnapRadius < 0 {
		return []string{"pane.snap_radius must be non-negative"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}
