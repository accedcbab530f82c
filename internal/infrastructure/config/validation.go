package config

import (
	"fmt"
	"strings"

	"github.com/plumekit/plume/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateEditor(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level %q must be one of: trace, debug, info, warn, error", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format %q must be one of: console, json", config.Logging.Format))
	}

	return validationErrors
}

func validateEditor(config *Config) []string {
	var validationErrors []string

	if !entity.ValidZoom(config.Editor.DefaultZoom) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("editor.default_zoom %d must be between %d and %d",
				config.Editor.DefaultZoom, entity.ZoomMin, entity.ZoomMax))
	}

	if config.Editor.ZoomStep < 1 || config.Editor.ZoomStep > 50 {
		validationErrors = append(validationErrors,
			fmt.Sprintf("editor.zoom_step %d must be between 1 and 50", config.Editor.ZoomStep))
	}

	return validationErrors
}
