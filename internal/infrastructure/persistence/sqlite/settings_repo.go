package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/plumekit/plume/internal/domain/entity"
	"github.com/plumekit/plume/internal/domain/repository"
	"github.com/plumekit/plume/internal/logging"
)

// Settings keys. Values are stored as text in a single key/value table;
// typed accessors live on the repository.
const editorZoomKey = "editor_zoom_level"

type settingsRepo struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SQLite-backed settings repository.
func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) GetEditorZoom(ctx context.Context) (*entity.EditorZoom, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", editorZoomKey).Msg("getting editor zoom")

	row := r.db.QueryRowContext(ctx,
		`SELECT value, updated_at FROM settings WHERE key = ?`, editorZoomKey)

	var value string
	var updatedAt time.Time
	if err := row.Scan(&value, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read editor zoom: %w", err)
	}

	percent, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("corrupt editor zoom value %q: %w", value, err)
	}

	return &entity.EditorZoom{Percent: percent, UpdatedAt: updatedAt}, nil
}

func (r *settingsRepo) SetEditorZoom(ctx context.Context, zoom *entity.EditorZoom) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", editorZoomKey).Int("percent", zoom.Percent).Msg("setting editor zoom")

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		editorZoomKey, strconv.Itoa(zoom.Percent), zoom.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to write editor zoom: %w", err)
	}
	return nil
}
