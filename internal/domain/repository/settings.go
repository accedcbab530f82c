// Package repository defines persistence interfaces for domain entities.
package repository

import (
	"context"

	"github.com/plumekit/plume/internal/domain/entity"
)

// SettingsRepository defines operations for durable application settings.
type SettingsRepository interface {
	// GetEditorZoom retrieves the saved editor zoom setting.
	// Returns nil if no zoom has been saved yet.
	GetEditorZoom(ctx context.Context) (*entity.EditorZoom, error)

	// SetEditorZoom saves or updates the editor zoom setting.
	SetEditorZoom(ctx context.Context, zoom *entity.EditorZoom) error
}
