package joystick

// Direction is an 8-way compass heading derived from the drag angle.
// The zero value is Idle.
type Direction uint8

const (
	Idle Direction = iota // centered, no active drag
	Up
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

// DirectionFromDegrees quantizes an angle in degrees into its compass sector.
// The circle is split into eight 45° sectors with boundaries at odd multiples
// of 22.5°; a boundary angle belongs to the sector it is the upper bound of,
// so 22.5 is Right and 22.5001 is DownRight.
//
// Angles follow atan2 over screen deltas: 0° points right, 90° points down,
// and the expected domain is (-180, 180]. Values outside that domain return
// Idle.
func DirectionFromDegrees(deg float64) Direction {
	switch {
	case deg > -22.5 && deg <= 22.5:
		return Right
	case deg > 22.5 && deg <= 67.5:
		return DownRight
	case deg > 67.5 && deg <= 112.5:
		return Down
	case deg > 112.5 && deg <= 157.5:
		return DownLeft
	case (deg > 157.5 && deg <= 180) || (deg > -180 && deg <= -157.5):
		return Left
	case deg > -157.5 && deg <= -112.5:
		return UpLeft
	case deg > -112.5 && deg <= -67.5:
		return Up
	case deg > -67.5 && deg <= -22.5:
		return UpRight
	default:
		return Idle
	}
}

// Vector returns the movement vector for d with components in {-1, 0, 1},
// in screen coordinates (y grows downward). Diagonals are not normalized:
// DownRight is (1, 1) with length √2, so callers multiplying by a speed
// constant move faster diagonally. Normalize the result if uniform speed
// matters. Idle returns (0, 0).
func (d Direction) Vector() Vec2 {
	switch d {
	case Up:
		return Vec2{0, -1}
	case UpRight:
		return Vec2{1, -1}
	case Right:
		return Vec2{1, 0}
	case DownRight:
		return Vec2{1, 1}
	case Down:
		return Vec2{0, 1}
	case DownLeft:
		return Vec2{-1, 1}
	case Left:
		return Vec2{-1, 0}
	case UpLeft:
		return Vec2{-1, -1}
	default:
		return Vec2{}
	}
}

var directionNames = [...]string{
	"Idle", "Up", "UpRight", "Right", "DownRight", "Down", "DownLeft", "Left", "UpLeft",
}

// String returns the direction name, e.g. "DownRight".
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "Idle"
}
