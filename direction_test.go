package joystick

import (
	"math"
	"testing"
)

func TestDirectionFromDegrees(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		want Direction
	}{
		{"east", 0, Right},
		{"right upper bound", 22.5, Right},
		{"just past right", 22.5001, DownRight},
		{"southeast", 45, DownRight},
		{"downright upper bound", 67.5, DownRight},
		{"south", 90, Down},
		{"down upper bound", 112.5, Down},
		{"southwest", 135, DownLeft},
		{"downleft interior", 153.5, DownLeft},
		{"downleft upper bound", 157.5, DownLeft},
		{"just past downleft", 157.6, Left},
		{"west", 180, Left},
		{"west negative side", -170, Left},
		{"left upper bound", -157.5, Left},
		{"just past left", -157.4, UpLeft},
		{"northwest", -135, UpLeft},
		{"upleft upper bound", -112.5, UpLeft},
		{"north", -90, Up},
		{"up upper bound", -67.5, Up},
		{"northeast", -45, UpRight},
		{"upright upper bound", -22.5, UpRight},
		{"just past upright", -22.4, Right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DirectionFromDegrees(tt.deg); got != tt.want {
				t.Errorf("DirectionFromDegrees(%v) = %v, want %v", tt.deg, got, tt.want)
			}
		})
	}
}

func TestDirectionFromDegrees_OutOfDomain(t *testing.T) {
	// atan2 only produces (-180, 180]; anything else hits the fallback.
	for _, deg := range []float64{-180, 270, -270, 1e6, math.NaN()} {
		if got := DirectionFromDegrees(deg); got != Idle {
			t.Errorf("DirectionFromDegrees(%v) = %v, want Idle", deg, got)
		}
	}
}

func TestDirectionVector(t *testing.T) {
	tests := []struct {
		d    Direction
		want Vec2
	}{
		{Idle, Vec2{0, 0}},
		{Up, Vec2{0, -1}},
		{UpRight, Vec2{1, -1}},
		{Right, Vec2{1, 0}},
		{DownRight, Vec2{1, 1}},
		{Down, Vec2{0, 1}},
		{DownLeft, Vec2{-1, 1}},
		{Left, Vec2{-1, 0}},
		{UpLeft, Vec2{-1, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if got := tt.d.Vector(); got != tt.want {
				t.Errorf("%v.Vector() = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestDirectionVector_DiagonalUnnormalized(t *testing.T) {
	got := DownRight.Vector().Len()
	if math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("DownRight vector length = %v, want √2", got)
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{Idle, "Idle"},
		{Up, "Up"},
		{UpRight, "UpRight"},
		{Right, "Right"},
		{DownRight, "DownRight"},
		{Down, "Down"},
		{DownLeft, "DownLeft"},
		{Left, "Left"},
		{UpLeft, "UpLeft"},
		{Direction(200), "Idle"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func BenchmarkDirectionFromDegrees(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = DirectionFromDegrees(float64(i%360) - 180)
	}
}
