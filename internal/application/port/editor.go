// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific widget toolkits and rendering backends.
package port

import "context"

// Zoomable represents a text surface that can receive zoom level updates
// from the zoom coordinator. Implementations include the unified text editor
// and any other widget that renders zoomable text.
type Zoomable interface {
	// ApplyZoomLevel applies an absolute zoom percentage to the surface.
	// The level is always within the valid zoom range when called by the
	// coordinator. Implementations must tolerate being called with the
	// level they already display.
	ApplyZoomLevel(ctx context.Context, level int) error
}

// TextRenderer is the underlying text-rendering primitive wrapped by the
// unified editor. Its zoom contract is relative only: there is no way to set
// an absolute magnification, and replacing the displayed content resets the
// magnification to the neutral baseline.
type TextRenderer interface {
	// StepZoomIn increases the rendered magnification by one logical step.
	StepZoomIn()

	// StepZoomOut decreases the rendered magnification by one logical step.
	StepZoomOut()

	// SetRichText replaces the displayed content with rich (HTML) content.
	// As a side effect the renderer's magnification resets to its baseline.
	SetRichText(html string)

	// SetPlainText replaces the displayed content with plain text.
	// As a side effect the renderer's magnification resets to its baseline.
	SetPlainText(text string)
}
