package rljoy

import (
	"testing"

	"github.com/phanxgames/joystick"
)

// synthesize runs one frame of phase synthesis over the given live contacts.
func synthesize(in *Input, contacts ...rawContact) []joystick.TouchPoint {
	in.cur = append(in.cur[:0], contacts...)
	return in.appendSynthesized(nil)
}

func TestSynthesize_Lifecycle(t *testing.T) {
	in := NewInput()

	got := synthesize(in, rawContact{id: 1, x: 10, y: 20})
	if len(got) != 1 || got[0].Phase != joystick.TouchStarted {
		t.Fatalf("frame 1 = %+v, want one Started point", got)
	}

	got = synthesize(in, rawContact{id: 1, x: 30, y: 40})
	if len(got) != 1 || got[0].Phase != joystick.TouchMoved || got[0].X != 30 {
		t.Fatalf("frame 2 = %+v, want one Moved point at x=30", got)
	}

	got = synthesize(in)
	want := joystick.TouchPoint{ID: 1, X: 30, Y: 40, Phase: joystick.TouchEnded}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("frame 3 = %+v, want %+v", got, want)
	}

	if got = synthesize(in); len(got) != 0 {
		t.Fatalf("frame 4 = %+v, want nothing", got)
	}
}

func TestSynthesize_EndBeforeStart(t *testing.T) {
	in := NewInput()
	synthesize(in, rawContact{id: 1, x: 10, y: 20})

	got := synthesize(in, rawContact{id: 2, x: 50, y: 60})
	if len(got) != 2 {
		t.Fatalf("got %d points, want 2", len(got))
	}
	if got[0].Phase != joystick.TouchEnded || got[0].ID != 1 {
		t.Errorf("first point = %+v, want contact 1 Ended", got[0])
	}
	if got[1].Phase != joystick.TouchStarted || got[1].ID != 2 {
		t.Errorf("second point = %+v, want contact 2 Started", got[1])
	}
}

func TestNew_WiresRaylibSource(t *testing.T) {
	j := New(100, 100, 120)

	if j.Center() != (joystick.Vec2{X: 100, Y: 100}) {
		t.Errorf("Center() = %v, want {100 100}", j.Center())
	}
	if j.Size() != 120 {
		t.Errorf("Size() = %v, want 120", j.Size())
	}
	if j.Background().Radius != 60 || j.Knob().Radius != 30 {
		t.Errorf("radii = (%v, %v), want (60, 30)",
			j.Background().Radius, j.Knob().Radius)
	}
}

func TestNew_InjectedDrag(t *testing.T) {
	// Injected input bypasses the raylib polls, so the full drag path can
	// run without a window.
	j := New(100, 100, 100)
	j.InjectPress(120, 100)
	j.InjectRelease(120, 100)

	e := j.Update()
	if e.Direction != joystick.Right || e.Intensity != 0.4 {
		t.Fatalf("after press: %+v, want Right at 0.4", e)
	}
	e = j.Update()
	if e != (joystick.Event{}) {
		t.Fatalf("after release: %+v, want the idle event", e)
	}
}

func TestDefaultColors_MatchCore(t *testing.T) {
	bg, knob := DefaultColors()
	if bg.R != 96 || bg.G != 125 || bg.B != 139 || bg.A != 128 {
		t.Errorf("background = %+v, want 96/125/139/128", bg)
	}
	if knob.A != 168 {
		t.Errorf("knob alpha = %d, want 168", knob.A)
	}
}
