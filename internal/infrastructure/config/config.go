// Package config handles application configuration loading and watching.
package config

// Config represents the complete configuration for plume.
type Config struct {
	// Database holds storage settings for durable application state.
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	// Logging controls log verbosity and output format.
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Editor controls text editor behavior shared by every editing surface.
	Editor EditorConfig `mapstructure:"editor" toml:"editor" json:"editor"`
}

// DatabaseConfig holds SQLite storage settings.
type DatabaseConfig struct {
	// Path is the SQLite database file; empty means the XDG data directory.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" toml:"level" json:"level"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" toml:"format" json:"format"`
}

// EditorConfig holds editor-wide settings.
type EditorConfig struct {
	// DefaultZoom is the zoom percentage used before any zoom has been saved.
	DefaultZoom int `mapstructure:"default_zoom" toml:"default_zoom" json:"default_zoom"`
	// ZoomStep is the percentage added/removed by a single zoom action.
	ZoomStep int `mapstructure:"zoom_step" toml:"zoom_step" json:"zoom_step"`
}
