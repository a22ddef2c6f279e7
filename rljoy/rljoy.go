// Package rljoy adapts the joystick widget to raylib: an input source that
// polls raylib's mouse and touch state, and a draw helper using raylib circle
// primitives. The core package stays engine-agnostic; import rljoy only from
// raylib programs.
package rljoy

import (
	"github.com/phanxgames/joystick"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// rawContact is a live touch slot before phase synthesis.
type rawContact struct {
	id   int64
	x, y float64
}

// Input is a [joystick.InputSource] backed by raylib. raylib reports touch
// slots without phase information, so phases are synthesized by diffing live
// contacts against the previous frame, the same strategy the core package
// uses for Ebitengine.
type Input struct {
	cur  []rawContact
	prev map[int64]joystick.Vec2
}

// NewInput creates a raylib-backed input source.
func NewInput() *Input {
	return &Input{prev: make(map[int64]joystick.Vec2)}
}

// AppendTouches implements [joystick.InputSource].
func (in *Input) AppendTouches(buf []joystick.TouchPoint) []joystick.TouchPoint {
	in.cur = in.cur[:0]
	n := int(rl.GetTouchPointCount())
	for i := 0; i < n; i++ {
		pos := rl.GetTouchPosition(int32(i))
		in.cur = append(in.cur, rawContact{
			id: int64(rl.GetTouchPointId(int32(i))),
			x:  float64(pos.X),
			y:  float64(pos.Y),
		})
	}
	return in.appendSynthesized(buf)
}

// appendSynthesized diffs cur against the previous frame's contacts and
// appends phase-tagged points. Ends come first so a joystick frees itself
// before any new contact this frame tries to capture it.
func (in *Input) appendSynthesized(buf []joystick.TouchPoint) []joystick.TouchPoint {
	for id, pos := range in.prev {
		if !in.liveContact(id) {
			buf = append(buf, joystick.TouchPoint{ID: id, X: pos.X, Y: pos.Y, Phase: joystick.TouchEnded})
			delete(in.prev, id)
		}
	}
	for _, c := range in.cur {
		phase := joystick.TouchMoved
		if _, ok := in.prev[c.id]; !ok {
			phase = joystick.TouchStarted
		}
		in.prev[c.id] = joystick.Vec2{X: c.x, Y: c.y}
		buf = append(buf, joystick.TouchPoint{ID: c.id, X: c.x, Y: c.y, Phase: phase})
	}
	return buf
}

func (in *Input) liveContact(id int64) bool {
	for _, c := range in.cur {
		if c.id == id {
			return true
		}
	}
	return false
}

// MouseState implements [joystick.InputSource].
func (in *Input) MouseState() (float64, float64, bool) {
	pos := rl.GetMousePosition()
	return float64(pos.X), float64(pos.Y), rl.IsMouseButtonDown(rl.MouseButtonLeft)
}

// New creates a joystick centered at (x, y) wired to a raylib input source.
// Both parts carry no Ebitengine drawable; render them with [Draw] instead.
func New(x, y, size float64) *joystick.Joystick {
	j := joystick.NewCustom(x, y, size/2, size/4, nil, nil)
	j.SetInputSource(NewInput())
	return j
}

// Draw renders j's background and knob as filled raylib circles. It stands
// in for [joystick.Joystick.Draw], which targets Ebitengine images.
func Draw(j *joystick.Joystick, background, knob rl.Color) {
	bg := j.Background()
	rl.DrawCircleV(rl.NewVector2(float32(bg.X), float32(bg.Y)), float32(bg.Radius), background)
	kn := j.Knob()
	rl.DrawCircleV(rl.NewVector2(float32(kn.X), float32(kn.Y)), float32(kn.Radius), knob)
}

// DefaultColors returns raylib equivalents of the package defaults used by
// [joystick.New].
func DefaultColors() (background, knob rl.Color) {
	b := joystick.DefaultBackgroundColor
	k := joystick.DefaultKnobColor
	return rl.NewColor(b.R, b.G, b.B, b.A), rl.NewColor(k.R, k.G, k.B, k.A)
}
