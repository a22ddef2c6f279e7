package joystick

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Drawable renders one circular joystick part. It receives the part's live
// center position and radius on every call, so custom visuals can react to
// the knob being dragged.
type Drawable interface {
	Draw(dst *ebiten.Image, x, y, radius float64)
}

// DrawFunc adapts a plain function to the [Drawable] interface.
type DrawFunc func(dst *ebiten.Image, x, y, radius float64)

// Draw calls f.
func (f DrawFunc) Draw(dst *ebiten.Image, x, y, radius float64) {
	f(dst, x, y, radius)
}

// FilledCircle is a [Drawable] that fills the part's circle with a solid
// color. It is the default visual for both joystick parts.
type FilledCircle struct {
	Color color.Color
}

// Draw fills an anti-aliased circle centered at (x, y).
func (c FilledCircle) Draw(dst *ebiten.Image, x, y, radius float64) {
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(radius), c.Color, true)
}

// Default part colors used by [New]. Both are straight-alpha translucent
// blue-grey fills. Treat them as read-only; per-joystick visuals belong in
// [NewCustom].
var (
	DefaultBackgroundColor = color.NRGBA{R: 96, G: 125, B: 139, A: 128}
	DefaultKnobColor       = color.NRGBA{R: 96, G: 125, B: 139, A: 168}
)

// Element is one positioned circular part of a joystick. The drawable is
// fixed at construction; only the position mutates afterwards, and only on
// the knob, which the owning joystick moves while dragging. Radius is not
// validated; a negative value produces a degenerate draw call, not an error.
type Element struct {
	X, Y   float64
	Radius float64

	drawable Drawable
}

// NewElement creates an element centered at (x, y). A nil drawable is
// allowed and draws nothing.
func NewElement(x, y, radius float64, d Drawable) *Element {
	return &Element{X: x, Y: y, Radius: radius, drawable: d}
}

// Draw renders the element through its drawable at the current position.
func (e *Element) Draw(dst *ebiten.Image) {
	if e.drawable == nil {
		return
	}
	e.drawable.Draw(dst, e.X, e.Y, e.Radius)
}
