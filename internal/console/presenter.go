package console

// InputSample is what the presenter supplies once per tick: gamepad
// bitmasks for up to four players, and the mouse position (in
// framebuffer pixel coordinates, after window-to-game scaling) plus its
// button mask.
type InputSample struct {
	Gamepads     [4]uint8
	MouseX       int16
	MouseY       int16
	MouseButtons uint8
}

// Presenter is the external collaborator that supplies input and
// displays the rendered framebuffer. Implementations own their own
// window/event loop; PollInput and Render are called once per tick from
// the frame loop's single thread.
type Presenter interface {
	PollInput() InputSample
	Render(framebuffer []byte, palette [16]byte)
	ShouldClose() bool
}
