// Package component contains reusable UI building blocks.
package component

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/plumekit/plume/internal/application/port"
	"github.com/plumekit/plume/internal/domain/entity"
	"github.com/plumekit/plume/internal/logging"
	"github.com/plumekit/plume/internal/ui/coordinator"
)

// neutralBaseline is the zoom percentage a text renderer reverts to whenever
// its content is wholesale replaced. Assumed to be 100%; if a renderer ever
// resets to something else, the restoration math below must learn about it.
const neutralBaseline = 100

// Configuration errors.
var (
	ErrNoRenderer    = errors.New("unified editor requires a text renderer")
	ErrNoCoordinator = errors.New("unified editor requires a zoom coordinator")
)

// EditorConfig holds construction parameters for UnifiedEditor.
type EditorConfig struct {
	Renderer    port.TextRenderer
	Coordinator *coordinator.ZoomCoordinator

	// Name identifies the editor in logs.
	Name string

	// SkipAutoRegister leaves coordinator registration to the caller.
	SkipAutoRegister bool
}

// UnifiedEditor is the base text-editing surface shared by every editor in
// the application. It keeps its rendered magnification in sync with the zoom
// coordinator and guarantees that replacing its content does not visibly
// change the zoom level, even though the underlying renderer resets to its
// neutral baseline on every content replacement.
//
// The renderer only understands relative zoom steps, so the editor tracks
// the renderer's whole-step offset from the baseline and replays the
// difference to each new target. Rounding happens against the absolute
// target, never per change, so off-step levels cannot accumulate drift.
type UnifiedEditor struct {
	renderer port.TextRenderer
	coord    *coordinator.ZoomCoordinator
	name     string

	mu          sync.Mutex
	lastApplied int
	// renderedSteps is the renderer's current offset from the neutral
	// baseline, in whole steps.
	renderedSteps int

	// applying is the reentrancy guard for ApplyZoomLevel: a renderer step
	// may trigger a layout event that loops back into it.
	applying atomic.Bool

	closeOnce sync.Once
}

// Compile-time interface check.
var _ port.Zoomable = (*UnifiedEditor)(nil)

// NewUnifiedEditor creates an editor over the given renderer and registers it
// with the zoom coordinator (unless cfg.SkipAutoRegister). Registration
// synchronously brings the new editor to the current global zoom level.
func NewUnifiedEditor(ctx context.Context, cfg EditorConfig) (*UnifiedEditor, error) {
	if cfg.Renderer == nil {
		return nil, ErrNoRenderer
	}
	if cfg.Coordinator == nil {
		return nil, ErrNoCoordinator
	}

	e := &UnifiedEditor{
		renderer:    cfg.Renderer,
		coord:       cfg.Coordinator,
		name:        cfg.Name,
		lastApplied: neutralBaseline,
	}

	if !cfg.SkipAutoRegister {
		if err := cfg.Coordinator.Register(logging.WithEditorID(ctx, e.name), e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// ApplyZoomLevel brings the rendered magnification to an absolute level.
// Called by the zoom coordinator; never fails for its own state management.
func (e *UnifiedEditor) ApplyZoomLevel(ctx context.Context, level int) error {
	if !e.applying.CompareAndSwap(false, true) {
		return nil // already applying, inner call is a no-op
	}
	defer e.applying.Store(false)

	e.mu.Lock()
	target := stepsFromBaseline(level)
	steps := target - e.renderedSteps
	e.renderedSteps = target
	e.lastApplied = level
	e.mu.Unlock()

	if steps != 0 {
		log := logging.FromContext(ctx)
		log.Debug().
			Str("editor", e.name).
			Int("level", level).
			Int("steps", steps).
			Msg("applying zoom level")
	}

	e.replaySteps(steps)
	return nil
}

// SetRichText replaces the editor content with rich (HTML) content,
// preserving the current zoom level across the renderer's baseline reset.
func (e *UnifiedEditor) SetRichText(ctx context.Context, html string) {
	e.replaceContent(ctx, func() { e.renderer.SetRichText(html) })
}

// SetPlainText replaces the editor content with plain text, preserving the
// current zoom level across the renderer's baseline reset.
func (e *UnifiedEditor) SetPlainText(ctx context.Context, text string) {
	e.replaceContent(ctx, func() { e.renderer.SetPlainText(text) })
}

// replaceContent runs a content replacement and restores the saved zoom.
// The renderer resets to its neutral baseline during replacement, so the
// saved level is replayed directly on the renderer: this is a local
// restoration, not a zoom change, and must bypass both the reentrancy guard
// and the coordinator.
func (e *UnifiedEditor) replaceContent(ctx context.Context, replace func()) {
	e.mu.Lock()
	saved := e.lastApplied
	steps := e.renderedSteps
	e.mu.Unlock()

	replace()

	if steps != 0 {
		log := logging.FromContext(ctx)
		log.Debug().
			Str("editor", e.name).
			Int("restored", saved).
			Msg("restoring zoom after content replacement")
		e.replaySteps(steps)
	}
}

// replaySteps applies a signed number of single renderer steps.
func (e *UnifiedEditor) replaySteps(steps int) {
	for i := 0; i < abs(steps); i++ {
		if steps > 0 {
			e.renderer.StepZoomIn()
		} else {
			e.renderer.StepZoomOut()
		}
	}
}

// stepsFromBaseline converts an absolute zoom percentage to a whole-step
// offset from the neutral baseline, rounding to the nearest step.
func stepsFromBaseline(level int) int {
	delta := level - neutralBaseline
	steps := (abs(delta) + entity.ZoomStep/2) / entity.ZoomStep
	if delta < 0 {
		return -steps
	}
	return steps
}

// ZoomIn increases the global zoom level; this affects every registered
// editor, not just this one.
func (e *UnifiedEditor) ZoomIn(ctx context.Context, step int) {
	e.coord.ZoomIn(ctx, step)
}

// ZoomOut decreases the global zoom level; this affects every registered
// editor, not just this one.
func (e *UnifiedEditor) ZoomOut(ctx context.Context, step int) {
	e.coord.ZoomOut(ctx, step)
}

// ResetZoom restores the global zoom level to the default.
func (e *UnifiedEditor) ResetZoom(ctx context.Context) {
	e.coord.Reset(ctx)
}

// ZoomLevel returns the last zoom level applied to this editor. It equals
// the coordinator's level whenever no broadcast is in flight.
func (e *UnifiedEditor) ZoomLevel() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastApplied
}

// Close unregisters the editor from the zoom coordinator. Safe to call more
// than once.
func (e *UnifiedEditor) Close() {
	e.closeOnce.Do(func() {
		e.coord.Unregister(e)
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
