// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"

	"github.com/plumekit/plume/internal/domain/entity"
	"github.com/plumekit/plume/internal/domain/repository"
	"github.com/plumekit/plume/internal/logging"
)

// ManageZoomUseCase handles loading and saving the application-wide editor
// zoom setting.
type ManageZoomUseCase struct {
	settingsRepo repository.SettingsRepository
	defaultZoom  int
}

// NewManageZoomUseCase creates a new zoom management use case.
// defaultZoom is the zoom percentage to fall back to when nothing is saved
// (typically from config); out-of-range values fall back to entity.ZoomDefault.
func NewManageZoomUseCase(settingsRepo repository.SettingsRepository, defaultZoom int) *ManageZoomUseCase {
	if !entity.ValidZoom(defaultZoom) {
		defaultZoom = entity.ZoomDefault
	}
	return &ManageZoomUseCase{
		settingsRepo: settingsRepo,
		defaultZoom:  defaultZoom,
	}
}

// DefaultZoom returns the configured default zoom percentage.
func (uc *ManageZoomUseCase) DefaultZoom() int {
	return uc.defaultZoom
}

// SavedZoom retrieves the saved editor zoom percentage.
// Returns the default when nothing is saved or the saved value is outside
// the valid range (a stale or hand-edited settings row must not push the
// editors out of bounds).
func (uc *ManageZoomUseCase) SavedZoom(ctx context.Context) (int, error) {
	log := logging.FromContext(ctx)

	zoom, err := uc.settingsRepo.GetEditorZoom(ctx)
	if err != nil {
		return uc.defaultZoom, fmt.Errorf("failed to get editor zoom: %w", err)
	}

	if zoom == nil {
		log.Debug().Int("zoom", uc.defaultZoom).Msg("no saved zoom, using default")
		return uc.defaultZoom, nil
	}

	if !entity.ValidZoom(zoom.Percent) {
		log.Warn().Int("saved", zoom.Percent).Int("default", uc.defaultZoom).Msg("saved zoom out of range, using default")
		return uc.defaultZoom, nil
	}

	log.Debug().Int("zoom", zoom.Percent).Msg("loaded saved zoom")
	return zoom.Percent, nil
}

// SaveZoom persists the editor zoom percentage, clamping to the valid range.
func (uc *ManageZoomUseCase) SaveZoom(ctx context.Context, percent int) error {
	log := logging.FromContext(ctx)

	zoom := entity.NewEditorZoom(percent)
	if err := uc.settingsRepo.SetEditorZoom(ctx, zoom); err != nil {
		return fmt.Errorf("failed to save editor zoom: %w", err)
	}

	log.Info().Int("zoom", zoom.Percent).Msg("editor zoom saved")
	return nil
}
