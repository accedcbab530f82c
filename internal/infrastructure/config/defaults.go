package config

import "github.com/plumekit/plume/internal/domain/entity"

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	filePerm = 0o644
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "", // resolved to the XDG data directory at load time
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Editor: EditorConfig{
			DefaultZoom: entity.ZoomDefault,
			ZoomStep:    entity.ZoomStep,
		},
	}
}

// setDefaults registers default values with Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("database.path", defaults.Database.Path)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("editor.default_zoom", defaults.Editor.DefaultZoom)
	m.viper.SetDefault("editor.zoom_step", defaults.Editor.ZoomStep)
}
