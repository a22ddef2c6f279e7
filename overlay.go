package joystick

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Overlay draws a small text readout of a joystick's state: direction,
// intensity, angle in degrees, and whether a drag is active. It is meant for
// development builds and demos; draw it after the joystick so the text stays
// on top.
type Overlay struct {
	joystick *Joystick

	// OffsetX and OffsetY shift the text from its default spot just below
	// the widget's bounding circle.
	OffsetX, OffsetY int
}

// NewOverlay creates an overlay observing j.
func NewOverlay(j *Joystick) *Overlay {
	if j == nil {
		panic("joystick: NewOverlay on nil joystick")
	}
	return &Overlay{joystick: j}
}

// Draw prints the readout onto dst using ebitenutil's built-in debug font.
func (o *Overlay) Draw(dst *ebiten.Image) {
	j := o.joystick
	x := int(j.center.X-j.radius()) + o.OffsetX
	y := int(j.center.Y+j.radius()) + 4 + o.OffsetY
	ebitenutil.DebugPrintAt(dst, o.text(), x, y)
}

// text formats the readout for the current frame.
func (o *Overlay) text() string {
	e := o.joystick.Value()
	return fmt.Sprintf("DIR: %s\nINT: %.2f\nANG: %.1f\nDRAG: %v",
		e.Direction, e.Intensity, e.Angle*180/math.Pi, o.joystick.Dragging())
}
