package entity

import (
	"testing"
)

func TestClampZoom(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		want    int
	}{
		{"below minimum", 10, 50},
		{"at minimum", 50, 50},
		{"in range", 130, 130},
		{"default", 100, 100},
		{"at maximum", 200, 200},
		{"above maximum", 290, 200},
		{"negative", -40, 50},
		{"zero", 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampZoom(tt.percent); got != tt.want {
				t.Errorf("ClampZoom(%d) = %d, want %d", tt.percent, got, tt.want)
			}
		})
	}
}

func TestValidZoom(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		want    bool
	}{
		{"minimum", 50, true},
		{"maximum", 200, true},
		{"default", 100, true},
		{"below", 49, false},
		{"above", 201, false},
		{"zero", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidZoom(tt.percent); got != tt.want {
				t.Errorf("ValidZoom(%d) = %v, want %v", tt.percent, got, tt.want)
			}
		})
	}
}

func TestNewEditorZoom_Clamps(t *testing.T) {
	z := NewEditorZoom(500)
	if z.Percent != ZoomMax {
		t.Errorf("NewEditorZoom(500).Percent = %d, want %d", z.Percent, ZoomMax)
	}
	if z.UpdatedAt.IsZero() {
		t.Error("NewEditorZoom should set UpdatedAt")
	}
}

func TestEditorZoom_StepOperations(t *testing.T) {
	z := NewEditorZoom(ZoomDefault)

	z.ZoomIn(0) // 0 means default step
	if z.Percent != 110 {
		t.Errorf("after ZoomIn(0), Percent = %d, want 110", z.Percent)
	}

	z.ZoomOut(30)
	if z.Percent != 80 {
		t.Errorf("after ZoomOut(30), Percent = %d, want 80", z.Percent)
	}

	z.Set(195)
	z.ZoomIn(ZoomStep)
	if z.Percent != ZoomMax {
		t.Errorf("ZoomIn past max: Percent = %d, want %d", z.Percent, ZoomMax)
	}

	z.Reset()
	if !z.IsDefault() {
		t.Errorf("after Reset, Percent = %d, want %d", z.Percent, ZoomDefault)
	}
}
