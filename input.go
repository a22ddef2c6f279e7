package joystick

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Touch model ---

// TouchPhase is the lifecycle stage of a touch contact within a frame.
type TouchPhase uint8

const (
	TouchStarted   TouchPhase = iota // contact began this frame
	TouchMoved                       // contact continued, position may be unchanged
	TouchEnded                       // contact lifted
	TouchCancelled                   // contact aborted by the system
)

// TouchPoint is one touch contact reported for the current frame. IDs are
// stable for the life of the contact. Negative IDs never collide with real
// device contacts and are reserved for synthetic sources.
type TouchPoint struct {
	ID    int64
	X, Y  float64
	Phase TouchPhase
}

// InputSource supplies per-frame input state to a joystick. The built-in
// source polls Ebitengine; swap it via [Joystick.SetInputSource] to drive a
// joystick from another engine or from recorded input.
//
// AppendTouches appends this frame's touch points to buf and returns the
// extended slice. A source must report each contact's end exactly once, as a
// TouchEnded or TouchCancelled point, and must emit ends before any contact
// started this frame so that a release and a fresh press can both land in
// one frame.
type InputSource interface {
	AppendTouches(buf []TouchPoint) []TouchPoint
	MouseState() (x, y float64, down bool)
}

// --- Ebitengine source ---

// rawTouch is a live contact before phase synthesis.
type rawTouch struct {
	id   int64
	x, y float64
}

// ebitenSource polls Ebitengine for touch and mouse state. Ebitengine only
// reports currently-live touch IDs, so phases are synthesized by diffing
// against the previous frame: a new ID is Started, a continuing ID is Moved,
// and an ID that vanished is Ended at its last known position.
type ebitenSource struct {
	idBuf  []ebiten.TouchID
	curBuf []rawTouch
	prev   map[int64]Vec2
}

func newEbitenSource() *ebitenSource {
	return &ebitenSource{prev: make(map[int64]Vec2)}
}

func (s *ebitenSource) AppendTouches(buf []TouchPoint) []TouchPoint {
	s.idBuf = ebiten.AppendTouchIDs(s.idBuf[:0])
	s.curBuf = s.curBuf[:0]
	for _, id := range s.idBuf {
		x, y := ebiten.TouchPosition(id)
		s.curBuf = append(s.curBuf, rawTouch{id: int64(id), x: float64(x), y: float64(y)})
	}
	return s.appendSynthesized(buf)
}

// appendSynthesized diffs curBuf against the previous frame's contacts and
// appends phase-tagged points. Ends come first so a joystick frees itself
// before any new contact this frame tries to capture it.
func (s *ebitenSource) appendSynthesized(buf []TouchPoint) []TouchPoint {
	for id, pos := range s.prev {
		if !containsRawTouch(s.curBuf, id) {
			buf = append(buf, TouchPoint{ID: id, X: pos.X, Y: pos.Y, Phase: TouchEnded})
			delete(s.prev, id)
		}
	}
	for _, c := range s.curBuf {
		phase := TouchMoved
		if _, ok := s.prev[c.id]; !ok {
			phase = TouchStarted
		}
		s.prev[c.id] = Vec2{c.x, c.y}
		buf = append(buf, TouchPoint{ID: c.id, X: c.x, Y: c.y, Phase: phase})
	}
	return buf
}

func containsRawTouch(contacts []rawTouch, id int64) bool {
	for _, c := range contacts {
		if c.id == id {
			return true
		}
	}
	return false
}

func (s *ebitenSource) MouseState() (float64, float64, bool) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// --- State machine ---

// processTouches runs the touch side of the drag state machine over every
// point reported this frame, in order. Only the bound contact can move or
// release an active drag; other contacts are ignored.
func (j *Joystick) processTouches(touches []TouchPoint) {
	for _, t := range touches {
		switch t.Phase {
		case TouchStarted:
			if j.dragging {
				continue
			}
			// Strict bound: a touch exactly on the rim does not capture.
			dx, dy := t.X-j.center.X, t.Y-j.center.Y
			if r := j.radius(); dx*dx+dy*dy < r*r {
				j.dragging = true
				j.touchBound = true
				j.touchID = t.ID
				debugf("capture touch id=%d at (%.1f, %.1f)", t.ID, t.X, t.Y)
				j.moveTo(Vec2{t.X, t.Y})
			}
		case TouchMoved:
			if j.dragging && j.touchBound && t.ID == j.touchID {
				j.moveTo(Vec2{t.X, t.Y})
			}
		case TouchEnded, TouchCancelled:
			if j.dragging && j.touchBound && t.ID == j.touchID {
				debugf("release touch id=%d", t.ID)
				j.reset()
			}
		}
	}
}

// processMouse runs the mouse side of the drag state machine.
func (j *Joystick) processMouse(x, y float64, down bool) {
	if j.dragging {
		if down {
			j.moveTo(Vec2{x, y})
		} else {
			debugf("release mouse")
			j.reset()
		}
		return
	}
	if !down {
		return
	}
	// Inclusive bound: a press exactly on the rim captures.
	dx, dy := x-j.center.X, y-j.center.Y
	if r := j.radius(); dx*dx+dy*dy <= r*r {
		j.dragging = true
		j.touchBound = false
		debugf("capture mouse at (%.1f, %.1f)", x, y)
		j.moveTo(Vec2{x, y})
	}
}
