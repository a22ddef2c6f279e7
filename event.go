package joystick

// Event is the per-frame drag snapshot returned by [Joystick.Update].
// Intensity is the normalized drag distance, 0 at the center and 1 at or
// beyond the background edge. Angle is the raw drag angle in radians as
// produced by atan2 over screen deltas (0 points right, π/2 points down).
// The zero value is the idle event.
type Event struct {
	Direction Direction
	Intensity float64
	Angle     float64
}

// Vector returns Direction.Vector scaled by Intensity, ready to multiply by
// a speed constant and add to a position. Diagonals keep their unnormalized
// √2 length.
func (e Event) Vector() Vec2 {
	return e.Direction.Vector().Scale(e.Intensity)
}
