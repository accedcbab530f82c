package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadsOnExternalChange(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	reloaded := make(chan *Config, 1)
	mgr.OnConfigChange(func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default: // a single edit can fire several fsnotify events
		}
	})
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch(), "watching twice is a no-op")

	configFile := filepath.Join(configHome, "plume", "config.toml")
	updated := `[database]
path = ""

[logging]
level = "debug"
format = "console"

[editor]
default_zoom = 130
zoom_step = 10
`
	require.NoError(t, os.WriteFile(configFile, []byte(updated), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, 130, cfg.Editor.DefaultZoom)
	case <-time.After(5 * time.Second):
		t.Fatal("reload callback was not invoked after external config change")
	}

	cfg := mgr.Get()
	assert.Equal(t, 130, cfg.Editor.DefaultZoom, "manager state follows the file")
}
