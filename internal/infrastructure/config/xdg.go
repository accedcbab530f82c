package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "plume"

// GetConfigDir returns the directory holding the config file, following the
// XDG base directory spec.
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user config directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// GetDataDir returns the directory holding user data (database), following
// the XDG base directory spec.
func GetDataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", appDirName), nil
}

// GetDatabaseFile returns the default SQLite database path.
func GetDatabaseFile() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "plume.db"), nil
}

// EnsureDirectories creates the config and data directories if missing.
func EnsureDirectories() error {
	const dirPerm = 0o750

	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	dataDir, err := GetDataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	return nil
}
