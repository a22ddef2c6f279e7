package joystick

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected pointer events against a joystick across frames,
// for demos and automated tests. Call [Script.Step] once per frame before
// the joystick's Update.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script:
//
//	{"steps": [
//		{"action": "press", "x": 100, "y": 100},
//		{"action": "move", "x": 140, "y": 100},
//		{"action": "wait", "frames": 3},
//		{"action": "release", "x": 140, "y": 100}
//	]}
//
// Actions are "press", "move", and "release" (x, y), "drag" (fromX, fromY,
// toX, toY, frames), and "wait" (frames). A step's optional label is kept
// for the host's own bookkeeping. Empty scripts and unknown actions are
// load-time errors.
func LoadScript(data []byte) (*Script, error) {
	var script inputScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("joystick: parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("joystick: parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "release", "drag", "wait":
		default:
			return nil, fmt.Errorf("joystick: parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: script.Steps}, nil
}

// Done reports whether every step has executed and its injected input has
// been consumed.
func (s *Script) Done() bool {
	return s.done
}

// Rewind restarts the script from the first step. Input already queued on a
// joystick is not withdrawn.
func (s *Script) Rewind() {
	s.cursor = 0
	s.waitCount = 0
	s.done = false
}

// Step advances the script by one frame against j, queueing injected input
// as steps execute. Returns true while the script still has work pending.
func (s *Script) Step(j *Joystick) bool {
	if s.done {
		return false
	}
	if j == nil {
		panic("joystick: Script.Step on nil joystick")
	}
	// Wait for pending injections to drain before advancing.
	if len(j.injectQueue) > 0 {
		return true
	}
	// Count down wait frames.
	if s.waitCount > 0 {
		s.waitCount--
		return true
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return false
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "press":
		j.InjectPress(st.X, st.Y)
	case "move":
		j.InjectMove(st.X, st.Y)
	case "release":
		j.InjectRelease(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		j.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(j.injectQueue) == 0 {
		s.done = true
	}
	return !s.done
}
