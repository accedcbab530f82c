// Package cli wires dependencies for CLI commands.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/plumekit/plume/internal/application/usecase"
	"github.com/plumekit/plume/internal/cli/styles"
	"github.com/plumekit/plume/internal/domain/build"
	"github.com/plumekit/plume/internal/domain/repository"
	"github.com/plumekit/plume/internal/infrastructure/config"
	"github.com/plumekit/plume/internal/infrastructure/persistence/sqlite"
	"github.com/plumekit/plume/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info

	db       *sql.DB
	Settings repository.SettingsRepository
	ZoomUC   *usecase.ManageZoomUseCase

	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	cfg := loadConfig()
	theme := styles.NewTheme()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("PLUME_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.NewFromConfigValues(logLevel, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	db, err := sqlite.NewConnection(logging.WithComponent(ctx, "database"), cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug().Str("db_path", cfg.Database.Path).Msg("database connected")

	settingsRepo := sqlite.NewSettingsRepository(db)
	zoomUC := usecase.NewManageZoomUseCase(settingsRepo, cfg.Editor.DefaultZoom)

	return &App{
		Config:   cfg,
		Theme:    theme,
		db:       db,
		Settings: settingsRepo,
		ZoomUC:   zoomUC,
		ctx:      ctx,
	}, nil
}

// loadConfig loads the configuration, falling back to defaults on error.
func loadConfig() *config.Config {
	manager, err := config.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: config manager unavailable, using defaults: %v\n", err)
		return config.DefaultConfig()
	}
	if err := manager.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config, using defaults: %v\n", err)
		cfg := config.DefaultConfig()
		if dbPath, pathErr := config.GetDatabaseFile(); pathErr == nil {
			cfg.Database.Path = dbPath
		}
		return cfg
	}
	return manager.Get()
}

// Ctx returns the application context carrying the logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Close releases application resources.
func (a *App) Close() error {
	return sqlite.Close(a.db)
}
