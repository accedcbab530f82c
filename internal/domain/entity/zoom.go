package entity

import "time"

// Zoom bounds, expressed as integer percentages of the base text size.
// The percentage is a logical magnification factor; translating it into
// concrete rendering steps is up to each text surface.
const (
	ZoomMin     = 50  // 50%
	ZoomMax     = 200 // 200%
	ZoomDefault = 100 // 100%
	ZoomStep    = 10  // 10% increments
)

// ClampZoom constrains a zoom percentage to the valid range.
func ClampZoom(percent int) int {
	if percent < ZoomMin {
		return ZoomMin
	}
	if percent > ZoomMax {
		return ZoomMax
	}
	return percent
}

// ValidZoom reports whether percent is within the valid range.
func ValidZoom(percent int) bool {
	return percent >= ZoomMin && percent <= ZoomMax
}

// EditorZoom represents the application-wide editor zoom setting.
// A single level applies to every text editor; there is no per-document zoom.
type EditorZoom struct {
	Percent   int
	UpdatedAt time.Time
}

// NewEditorZoom creates a new editor zoom setting, clamping to valid range.
func NewEditorZoom(percent int) *EditorZoom {
	return &EditorZoom{
		Percent:   ClampZoom(percent),
		UpdatedAt: time.Now(),
	}
}

// Set updates the zoom percentage, clamping to valid range.
func (z *EditorZoom) Set(percent int) {
	z.Percent = ClampZoom(percent)
	z.UpdatedAt = time.Now()
}

// ZoomIn increases the zoom by step percent (ZoomStep when step <= 0).
func (z *EditorZoom) ZoomIn(step int) {
	if step <= 0 {
		step = ZoomStep
	}
	z.Set(z.Percent + step)
}

// ZoomOut decreases the zoom by step percent (ZoomStep when step <= 0).
func (z *EditorZoom) ZoomOut(step int) {
	if step <= 0 {
		step = ZoomStep
	}
	z.Set(z.Percent - step)
}

// Reset restores the zoom to the default level.
func (z *EditorZoom) Reset() {
	z.Set(ZoomDefault)
}

// IsDefault returns true if the zoom is at the default level.
func (z *EditorZoom) IsDefault() bool {
	return z.Percent == ZoomDefault
}
