package joystick

import (
	"strings"
	"testing"
)

func TestOverlayText_Idle(t *testing.T) {
	j := newTestJoystick()
	o := NewOverlay(j)

	got := o.text()
	want := "DIR: Idle\nINT: 0.00\nANG: 0.0\nDRAG: false"
	if got != want {
		t.Errorf("text() = %q, want %q", got, want)
	}
}

func TestOverlayText_MidDrag(t *testing.T) {
	j := newTestJoystick()
	j.processMouse(150, 100, true)
	o := NewOverlay(j)

	got := o.text()
	want := "DIR: Right\nINT: 1.00\nANG: 0.0\nDRAG: true"
	if got != want {
		t.Errorf("text() = %q, want %q", got, want)
	}
}

func TestOverlayText_AngleInDegrees(t *testing.T) {
	j := newTestJoystick()
	j.processMouse(100, 150, true)

	got := NewOverlay(j).text()
	if !strings.Contains(got, "ANG: 90.0") {
		t.Errorf("text() = %q, want the angle reported as 90.0 degrees", got)
	}
	if !strings.Contains(got, "DIR: Down") {
		t.Errorf("text() = %q, want direction Down", got)
	}
}

func TestNewOverlay_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil joystick")
		}
	}()
	NewOverlay(nil)
}
