// Package coordinator contains UI-level coordinators that manage shared state
// across widgets.
package coordinator

import (
	"context"
	"errors"
	"sync"

	"github.com/plumekit/plume/internal/application/port"
	"github.com/plumekit/plume/internal/application/usecase"
	"github.com/plumekit/plume/internal/domain/entity"
	"github.com/plumekit/plume/internal/logging"
)

// ErrNilSurface is returned when registering a nil surface.
var ErrNilSurface = errors.New("cannot register nil zoom surface")

// ZoomCoordinator is the single source of truth for the editor zoom level.
// It keeps every registered text surface at the same zoom percentage,
// persists changes through the zoom use case when one is attached, and
// notifies listeners after each change.
//
// One coordinator is created at the composition root and handed to every
// editor; it is not a hidden global. All methods are safe for concurrent
// use, though zoom operations normally run on the UI event loop.
type ZoomCoordinator struct {
	mu        sync.Mutex
	level     int
	surfaces  map[port.Zoomable]struct{}
	listeners []func(int)
	zoomUC    *usecase.ManageZoomUseCase
}

// NewZoomCoordinator creates a zoom coordinator at the default level with no
// registered surfaces.
func NewZoomCoordinator(ctx context.Context) *ZoomCoordinator {
	log := logging.FromContext(ctx)
	log.Debug().Int("level", entity.ZoomDefault).Msg("creating zoom coordinator")

	return &ZoomCoordinator{
		level:    entity.ZoomDefault,
		surfaces: make(map[port.Zoomable]struct{}),
	}
}

// AttachSettings wires the persistence use case and adopts the saved zoom
// level. The adopted level is broadcast to any already-registered surfaces
// but not written back (it just came from storage).
func (c *ZoomCoordinator) AttachSettings(ctx context.Context, zoomUC *usecase.ManageZoomUseCase) {
	log := logging.FromContext(ctx)

	c.mu.Lock()
	c.zoomUC = zoomUC
	c.mu.Unlock()

	if zoomUC == nil {
		return
	}

	saved, err := zoomUC.SavedZoom(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load saved zoom, keeping current level")
		return
	}
	c.setLevel(ctx, saved, false)
}

// Level returns the current zoom percentage.
func (c *ZoomCoordinator) Level() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.level
}

// SetLevel changes the zoom level for all registered surfaces and persists it.
// The requested level is clamped to the valid range; setting the level it is
// already at is a no-op (no broadcast, no persistence write, no notification).
func (c *ZoomCoordinator) SetLevel(ctx context.Context, requested int) {
	c.setLevel(ctx, requested, true)
}

func (c *ZoomCoordinator) setLevel(ctx context.Context, requested int, persist bool) {
	c.changeLevel(ctx, persist, func(int) int { return requested })
}

// changeLevel computes the new level from the current one under the lock, so
// relative adjustments from concurrent goroutines cannot lose updates.
func (c *ZoomCoordinator) changeLevel(ctx context.Context, persist bool, next func(current int) int) {
	log := logging.FromContext(ctx)

	c.mu.Lock()
	level := entity.ClampZoom(next(c.level))
	if level == c.level {
		c.mu.Unlock()
		return
	}
	oldLevel := c.level
	c.level = level

	// Snapshot under the lock so surfaces unregistering from inside their
	// own callback cannot corrupt the broadcast.
	surfaces := make([]port.Zoomable, 0, len(c.surfaces))
	for s := range c.surfaces {
		surfaces = append(surfaces, s)
	}
	listeners := make([]func(int), len(c.listeners))
	copy(listeners, c.listeners)
	zoomUC := c.zoomUC
	c.mu.Unlock()

	log.Debug().
		Int("from", oldLevel).
		Int("to", level).
		Int("surfaces", len(surfaces)).
		Msg("broadcasting zoom change")

	for _, s := range surfaces {
		// One misbehaving surface must not desynchronize the others.
		if err := s.ApplyZoomLevel(ctx, level); err != nil {
			log.Warn().Err(err).Int("level", level).Msg("surface failed to apply zoom, skipping")
		}
	}

	if persist && zoomUC != nil {
		if err := zoomUC.SaveZoom(ctx, level); err != nil {
			log.Warn().Err(err).Int("level", level).Msg("failed to persist zoom level")
		}
	}

	for _, notify := range listeners {
		notify(level)
	}
}

// ZoomIn increases the zoom level by step percent (entity.ZoomStep when
// step <= 0). The step is applied to the current level atomically.
func (c *ZoomCoordinator) ZoomIn(ctx context.Context, step int) {
	if step <= 0 {
		step = entity.ZoomStep
	}
	c.changeLevel(ctx, true, func(current int) int { return current + step })
}

// ZoomOut decreases the zoom level by step percent (entity.ZoomStep when
// step <= 0). The step is applied to the current level atomically.
func (c *ZoomCoordinator) ZoomOut(ctx context.Context, step int) {
	if step <= 0 {
		step = entity.ZoomStep
	}
	c.changeLevel(ctx, true, func(current int) int { return current - step })
}

// Reset restores the zoom level to the default.
func (c *ZoomCoordinator) Reset(ctx context.Context) {
	c.SetLevel(ctx, entity.ZoomDefault)
}

// Register adds a surface to the broadcast set and synchronously applies the
// current level so a late joiner never renders at a stale default. An
// initial-sync failure is logged and the registration kept, matching the
// fault isolation of a regular broadcast.
func (c *ZoomCoordinator) Register(ctx context.Context, surface port.Zoomable) error {
	if surface == nil {
		return ErrNilSurface
	}
	log := logging.FromContext(ctx)

	c.mu.Lock()
	c.surfaces[surface] = struct{}{}
	level := c.level
	count := len(c.surfaces)
	c.mu.Unlock()

	log.Debug().Int("level", level).Int("surfaces", count).Msg("registered zoom surface")

	if err := surface.ApplyZoomLevel(ctx, level); err != nil {
		log.Warn().Err(err).Int("level", level).Msg("initial zoom sync failed")
	}
	return nil
}

// Unregister removes a surface from the broadcast set. Removing a surface
// that is not registered is a no-op.
func (c *ZoomCoordinator) Unregister(surface port.Zoomable) {
	if surface == nil {
		return
	}
	c.mu.Lock()
	delete(c.surfaces, surface)
	c.mu.Unlock()
}

// SurfaceCount returns the number of registered surfaces.
func (c *ZoomCoordinator) SurfaceCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.surfaces)
}

// OnZoomChanged registers a callback invoked with the new level after each
// successful zoom change, once persistence has been attempted. Callbacks run
// on the goroutine that changed the level.
func (c *ZoomCoordinator) OnZoomChanged(fn func(level int)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}
