package joystick

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Joystick is a virtual on-screen stick: a fixed circular background and a
// draggable knob bound to at most one touch contact or the mouse. Call
// [Joystick.Update] once per frame from your game's update function and
// [Joystick.Draw] from its draw function, then steer with the returned
// [Event].
//
// A joystick is single-threaded like the game loop that owns it; none of its
// methods may be called concurrently.
type Joystick struct {
	center Vec2
	size   float64

	background *Element
	knob       *Element

	// Drag state. touchBound distinguishes a touch-held drag from a
	// mouse-held one; touchID is only meaningful while touchBound is set.
	dragging   bool
	touchBound bool
	touchID    int64

	value    Event
	deadZone float64

	source   InputSource
	touchBuf []TouchPoint

	injectQueue []syntheticPointerEvent
}

// New creates a default-styled joystick centered at (x, y). size is the
// background diameter; the background radius is size/2 and the knob radius
// is size/4, both drawn as translucent filled circles.
func New(x, y, size float64) *Joystick {
	return NewCustom(x, y, size/2, size/4,
		FilledCircle{Color: DefaultBackgroundColor},
		FilledCircle{Color: DefaultKnobColor})
}

// NewCustom creates a joystick with explicit part radii and visuals. A nil
// drawable leaves that part invisible, which suits hosts that render the
// widget by other means. The background diameter (2*backgroundRadius) bounds
// the knob's travel; knobRadius is purely visual.
func NewCustom(x, y, backgroundRadius, knobRadius float64, background, knob Drawable) *Joystick {
	return &Joystick{
		center:     Vec2{x, y},
		size:       backgroundRadius * 2,
		background: NewElement(x, y, backgroundRadius, background),
		knob:       NewElement(x, y, knobRadius, knob),
		source:     newEbitenSource(),
	}
}

// Update advances the joystick one frame: it reads input, moves the knob,
// and returns the resulting event snapshot. On frames with at least one
// touch point the mouse is not consulted at all. Injected events (see
// [Joystick.InjectPress]) preempt both, one per frame.
func (j *Joystick) Update() Event {
	if j.processInjectedInput() {
		return j.value
	}

	j.touchBuf = j.source.AppendTouches(j.touchBuf[:0])
	if len(j.touchBuf) > 0 {
		j.processTouches(j.touchBuf)
	} else {
		x, y, down := j.source.MouseState()
		j.processMouse(x, y, down)
	}
	return j.value
}

// Draw renders the background and then the knob onto dst. Draw is separate
// from Update so the host controls ordering; draw screen-fixed joysticks
// after any camera transform has been reset.
func (j *Joystick) Draw(dst *ebiten.Image) {
	j.background.Draw(dst)
	j.knob.Draw(dst)
}

// Reset forces the joystick to idle immediately, dropping any active drag
// and all pending injected input. Useful on scene transitions.
func (j *Joystick) Reset() {
	j.injectQueue = j.injectQueue[:0]
	j.reset()
}

// SetInputSource replaces the input source. Passing nil restores the
// built-in Ebitengine source. Swapping sources does not interrupt an active
// drag; call [Joystick.Reset] for that.
func (j *Joystick) SetInputSource(src InputSource) {
	if src == nil {
		src = newEbitenSource()
	}
	j.source = src
}

// SetDeadZone sets the inner fraction of the stick's travel that reports as
// idle. Raw intensities below dz produce an idle event; intensities from dz
// to 1 are rescaled to cover the full [0, 1] range, so the rim still reports
// exactly 1. The knob visual is unaffected. Values outside [0, 1) disable
// the dead zone, as does the default of 0.
func (j *Joystick) SetDeadZone(dz float64) {
	if dz < 0 || dz >= 1 {
		dz = 0
	}
	j.deadZone = dz
}

// Center returns the fixed center position.
func (j *Joystick) Center() Vec2 { return j.center }

// Size returns the background diameter.
func (j *Joystick) Size() float64 { return j.size }

// Dragging reports whether a drag is active.
func (j *Joystick) Dragging() bool { return j.dragging }

// Value returns the event from the most recent Update without reading input.
func (j *Joystick) Value() Event { return j.value }

// Background returns the background element. Engine adapters read its
// position and radius to draw the widget with their own primitives.
func (j *Joystick) Background() *Element { return j.background }

// Knob returns the knob element. Its position tracks the active drag.
func (j *Joystick) Knob() *Element { return j.knob }

// radius is the background radius, the knob's travel bound.
func (j *Joystick) radius() float64 { return j.size / 2 }

// moveTo recomputes the knob position and the current event from an input
// position, clamping the knob to the background's edge.
func (j *Joystick) moveTo(p Vec2) {
	delta := p.Sub(j.center)
	angle := math.Atan2(delta.Y, delta.X)
	r := j.radius()

	dist := delta.Len()
	if dist > r {
		dist = r
	}

	j.knob.X = j.center.X + dist*math.Cos(angle)
	j.knob.Y = j.center.Y + dist*math.Sin(angle)

	intensity := 0.0
	if r > 0 {
		intensity = dist / r
	}
	j.value = j.makeEvent(intensity, angle)
}

// makeEvent derives the event for a raw intensity and angle. The dead zone
// remap applies to the reported intensity only, never to the knob position.
func (j *Joystick) makeEvent(intensity, angle float64) Event {
	if dz := j.deadZone; dz > 0 {
		if intensity < dz {
			intensity = 0
		} else {
			intensity = clamp((intensity-dz)/(1-dz), 0, 1)
		}
	}
	if intensity == 0 {
		return Event{Direction: Idle, Angle: angle}
	}
	deg := angle * 180 / math.Pi
	return Event{Direction: DirectionFromDegrees(deg), Intensity: intensity, Angle: angle}
}

// reset returns the joystick to idle: knob back to center, zero event, no
// bound contact.
func (j *Joystick) reset() {
	j.dragging = false
	j.touchBound = false
	j.touchID = 0
	j.knob.X = j.center.X
	j.knob.Y = j.center.Y
	j.value = Event{}
}
