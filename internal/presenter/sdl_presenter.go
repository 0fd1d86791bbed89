// Package presenter implements the console.Presenter contract on top of
// SDL2: a window/renderer/texture triple, a manual nearest-neighbor
// pixel scaler for perfect integer scaling, and keyboard/mouse polling
// mapped onto the console's gamepad and mouse registers.
package presenter

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"nitrocart/internal/console"
	"nitrocart/internal/framebuffer"
)

// Gamepad button bits, per the console's input contract.
const (
	ButtonOne   = 1 << 0
	ButtonTwo   = 1 << 1
	ButtonLeft  = 1 << 4
	ButtonRight = 1 << 5
	ButtonUp    = 1 << 6
	ButtonDown  = 1 << 7
)

// Mouse button bits, matching memory.MouseButton* exactly.
const (
	mouseLeft   = 1 << 0
	mouseRight  = 1 << 1
	mouseMiddle = 1 << 2
)

// SDLPresenter owns the window, renderer and streaming texture used to
// scan out the console's 160x160 framebuffer every tick.
type SDLPresenter struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	scale   int
	running bool

	scaledPixels []byte
}

// New opens an SDL window sized to framebuffer.Width/Height*scale and
// readies a renderer and streaming texture for Render. scale must be at
// least 1.
func New(scale int) (*SDLPresenter, error) {
	if scale < 1 {
		scale = 1
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("presenter: init sdl: %w", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	side := int32(framebuffer.Width * scale)
	window, err := sdl.CreateWindow(
		"nitrocart",
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		side,
		side,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("presenter: create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("presenter: create renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		side,
		side,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("presenter: create texture: %w", err)
	}

	return &SDLPresenter{
		window:       window,
		renderer:     renderer,
		texture:      texture,
		scale:        scale,
		running:      true,
		scaledPixels: make([]byte, int(side)*int(side)*4),
	}, nil
}

// Render unpacks the console's 2-bpp framebuffer through the supplied
// palette, scales it to the window with nearest-neighbor replication,
// and presents it. Letterboxing never applies: the framebuffer and the
// window are both kept square, so the scaled image always fills the
// window exactly.
func (p *SDLPresenter) Render(fb []byte, palette [16]byte) {
	rgb := decodePalette(palette)
	side := framebuffer.Width * p.scale
	pitch := side * 4

	for y := 0; y < framebuffer.Height; y++ {
		rowBase := y * p.scale * pitch
		for x := 0; x < framebuffer.Width; x++ {
			idx := y*framebuffer.Width + x
			byteVal := fb[idx/4]
			shift := uint(idx%4) * 2
			colorIdx := (byteVal >> shift) & 0x3
			r, g, b := rgb[colorIdx][0], rgb[colorIdx][1], rgb[colorIdx][2]

			baseX := x * p.scale * 4
			for sy := 0; sy < p.scale; sy++ {
				rowStart := rowBase + sy*pitch
				for sx := 0; sx < p.scale; sx++ {
					o := rowStart + baseX + sx*4
					p.scaledPixels[o] = b
					p.scaledPixels[o+1] = g
					p.scaledPixels[o+2] = r
					p.scaledPixels[o+3] = 0xff
				}
			}
		}
	}

	rect := &sdl.Rect{X: 0, Y: 0, W: int32(side), H: int32(side)}
	p.texture.Update(rect, unsafe.Pointer(&p.scaledPixels[0]), pitch)
	p.renderer.Copy(p.texture, rect, rect)
	p.renderer.Present()
}

// decodePalette splits the four little-endian 0xRRGGBB entries packed
// into the raw palette bytes into individually addressable RGB triples.
func decodePalette(palette [16]byte) [4][3]byte {
	var out [4][3]byte
	for i := 0; i < 4; i++ {
		b := palette[4*i : 4*i+4]
		out[i] = [3]byte{b[2], b[1], b[0]}
	}
	return out
}

// PollInput drains the SDL event queue (tracking window-close requests)
// and samples the current keyboard/mouse state into one InputSample.
// The first gamepad slot is the only one driven by the local keyboard;
// the remaining three stay zero until a future netplay/multi-input
// frontend fills them in.
func (p *SDLPresenter) PollInput() console.InputSample {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			p.running = false
		}
	}

	keys := sdl.GetKeyboardState()
	var buttons uint8
	if keys[sdl.SCANCODE_X] != 0 {
		buttons |= ButtonOne
	}
	if keys[sdl.SCANCODE_Z] != 0 {
		buttons |= ButtonTwo
	}
	if keys[sdl.SCANCODE_LEFT] != 0 {
		buttons |= ButtonLeft
	}
	if keys[sdl.SCANCODE_RIGHT] != 0 {
		buttons |= ButtonRight
	}
	if keys[sdl.SCANCODE_UP] != 0 {
		buttons |= ButtonUp
	}
	if keys[sdl.SCANCODE_DOWN] != 0 {
		buttons |= ButtonDown
	}

	mx, my, mouseState := sdl.GetMouseState()
	var mouseButtons uint8
	if mouseState&sdl.ButtonLMask() != 0 {
		mouseButtons |= mouseLeft
	}
	if mouseState&sdl.ButtonRMask() != 0 {
		mouseButtons |= mouseRight
	}
	if mouseState&sdl.ButtonMMask() != 0 {
		mouseButtons |= mouseMiddle
	}

	sample := console.InputSample{
		MouseX:       int16(clampCoord(mx / int32(p.scale))),
		MouseY:       int16(clampCoord(my / int32(p.scale))),
		MouseButtons: mouseButtons,
	}
	sample.Gamepads[0] = buttons
	return sample
}

func clampCoord(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v >= framebuffer.Width {
		return framebuffer.Width - 1
	}
	return v
}

// ShouldClose reports whether the window received a close request.
func (p *SDLPresenter) ShouldClose() bool {
	return !p.running
}

// Close tears down the texture, renderer, window and SDL subsystem, in
// that order.
func (p *SDLPresenter) Close() {
	if p.texture != nil {
		p.texture.Destroy()
	}
	if p.renderer != nil {
		p.renderer.Destroy()
	}
	if p.window != nil {
		p.window.Destroy()
	}
	sdl.Quit()
}
