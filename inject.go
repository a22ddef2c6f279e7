package joystick

// syntheticPointerEvent is a single injected pointer event in screen
// coordinates, fed through the same path as real mouse input.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed by the next Update call in place of real input.
func (j *Joystick) InjectPress(x, y float64) {
	j.injectQueue = append(j.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move at the given screen coordinates with the
// button held down. Use this between InjectPress and InjectRelease to
// simulate a drag.
func (j *Joystick) InjectMove(x, y float64) {
	j.injectQueue = append(j.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (j *Joystick) InjectRelease(x, y float64) {
	j.injectQueue = append(j.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The whole sequence consumes frames Update calls; the minimum
// is 2 (press + release).
func (j *Joystick) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	j.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		j.InjectMove(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
	j.InjectRelease(toX, toY)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the mouse state machine. Returns true if an event was consumed
// (real input should be skipped this frame).
func (j *Joystick) processInjectedInput() bool {
	if len(j.injectQueue) == 0 {
		return false
	}
	evt := j.injectQueue[0]
	copy(j.injectQueue, j.injectQueue[1:])
	j.injectQueue = j.injectQueue[:len(j.injectQueue)-1]

	j.processMouse(evt.x, evt.y, evt.pressed)
	return true
}
