// Package joystick provides a virtual on-screen joystick widget for
// [Ebitengine]: a circular background with a draggable knob that tracks
// mouse or touch input and reports an 8-way direction, an intensity, and a
// raw angle every frame.
//
// # Quick start
//
// Create a joystick once, then call [Joystick.Update] from your game's
// Update and [Joystick.Draw] from its Draw:
//
//	type Game struct {
//		stick  *joystick.Joystick
//		player joystick.Vec2
//	}
//
//	func NewGame() *Game {
//		return &Game{stick: joystick.New(100, 380, 120)}
//	}
//
//	func (g *Game) Update() error {
//		e := g.stick.Update()
//		g.player = g.player.Add(e.Vector().Scale(3))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		// World rendering and camera resets go here, before the UI.
//		g.stick.Draw(screen)
//	}
//
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// The returned [Event] carries a [Direction], an intensity from 0 (centered)
// to 1 (at the rim), and the drag angle in radians. [Direction.Vector]
// returns unnormalized diagonals such as (1, 1); normalize if uniform speed
// matters to you.
//
// # Input
//
// A joystick services touch input first and falls back to the mouse on
// frames without any touch contacts. One contact drives one joystick: the
// first touch landing inside the background is bound to the drag until it
// ends, and every other contact is ignored, so two joysticks work
// independently on a multitouch screen.
//
// Input arrives through the [InputSource] interface. The default source
// polls Ebitengine; [Joystick.SetInputSource] accepts any other provider,
// and the rljoy subpackage ships one for raylib.
//
// # Custom visuals
//
// [New] draws both parts as translucent filled circles. [NewCustom] accepts
// two [Drawable] implementations, each receiving the part's live center and
// radius every frame:
//
//	ring := joystick.DrawFunc(func(dst *ebiten.Image, x, y, r float64) {
//		vector.StrokeCircle(dst, float32(x), float32(y), float32(r), 2, ringColor, true)
//	})
//	stick := joystick.NewCustom(100, 380, 60, 30, ring, joystick.FilledCircle{Color: knobColor})
//
// # Testing and scripting
//
// [Joystick.InjectPress], [Joystick.InjectMove], [Joystick.InjectRelease],
// and [Joystick.InjectDrag] queue synthetic pointer input that Update
// consumes in place of real devices, one event per frame. [LoadScript] runs
// whole JSON input sequences the same way, and [Overlay] draws a live state
// readout next to the widget.
//
// [Ebitengine]: https://ebitengine.org
package joystick
