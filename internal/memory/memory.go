// Package memory implements the console's flat 64 KiB linear memory: the
// fixed memory-mapped regions (palette, draw colors, gamepads, mouse,
// system flags, framebuffer) that the guest cart and the host runtime
// share, plus the bounds-checked byte Source/Sink capability the rest of
// the runtime is built against.
package memory

import "encoding/binary"

// Size is the total size of the linear memory, in bytes.
const Size = 65536

// Memory-mapped region offsets, per the console's fixed layout.
const (
	OffsetPalette      = 0x04
	OffsetDrawColors   = 0x14
	OffsetGamepads     = 0x16
	OffsetMouseX       = 0x1a
	OffsetMouseY       = 0x1c
	OffsetMouseButtons = 0x1e
	OffsetSystemFlags  = 0x1f
	OffsetNetplay      = 0x20
	OffsetFramebuffer  = 0xa0
)

const (
	paletteSize     = 16
	drawColorsSize  = 2
	gamepadsSize    = 4
	netplaySize     = 128
	FramebufferSize = 6400 // 160*160/4
)

// System flag bits at OffsetSystemFlags.
const (
	SystemFlagPreserveFramebuffer = 1 << 0
	SystemFlagHideOverlay         = 1 << 1
)

// Mouse button bits at OffsetMouseButtons.
const (
	MouseButtonLeft   = 1 << 0
	MouseButtonRight  = 1 << 1
	MouseButtonMiddle = 1 << 2
)

// defaultPalette holds the four BGRA0 startup colors, documented
// individually so the constant table in the spec stays legible.
var defaultPalette = [4]uint32{0xE0F8CF, 0x86C06C, 0x306850, 0x071821}

const defaultDrawColors = 0x1203

// Memory is the guest's 64 KiB sandboxed linear memory.
type Memory struct {
	data [Size]byte
}

// New allocates a Memory instance and installs the console's initial
// state: default palette, default draw colors, zeroed framebuffer and
// everything else.
func New() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset reinstalls the initial state described in the data model: the
// default palette, DRAW_COLORS=0x1203, and a zeroed remainder.
func (m *Memory) Reset() {
	for i := range m.data {
		m.data[i] = 0
	}
	for i, c := range defaultPalette {
		binary.LittleEndian.PutUint32(m.data[OffsetPalette+4*i:], c)
	}
	binary.LittleEndian.PutUint16(m.data[OffsetDrawColors:], defaultDrawColors)
}

// Get reads a single byte. The second return is false for an
// out-of-range offset, per the Source capability contract (§9): an
// out-of-range read returns absent rather than panicking.
func (m *Memory) Get(offset uint32) (byte, bool) {
	if offset >= Size {
		return 0, false
	}
	return m.data[offset], true
}

// GetN reads n bytes starting at offset. The second return is false if
// any byte of the range falls outside the memory.
func (m *Memory) GetN(offset uint32, n int) ([]byte, bool) {
	if n < 0 || uint64(offset)+uint64(n) > Size {
		return nil, false
	}
	out := make([]byte, n)
	copy(out, m.data[offset:uint32(n)+offset])
	return out, true
}

// Set writes a single byte. An out-of-range write is a silent no-op.
func (m *Memory) Set(offset uint32, v byte) {
	if offset >= Size {
		return
	}
	m.data[offset] = v
}

// SetN writes the given bytes starting at offset. A write that would run
// past the end of memory is a silent no-op for the bytes that don't fit;
// callers that need an all-or-nothing write should check bounds first.
func (m *Memory) SetN(offset uint32, b []byte) {
	for i, v := range b {
		m.Set(offset+uint32(i), v)
	}
}

// Fill sets every byte in [offset, offset+n) to v, clipping to the
// memory's bounds.
func (m *Memory) Fill(offset uint32, n int, v byte) {
	for i := 0; i < n; i++ {
		m.Set(offset+uint32(i), v)
	}
}

// Len reports the logical size of the memory, satisfying the sized
// Source/Sink contract the framebuffer primitives are parameterized
// over.
func (m *Memory) Len() int { return Size }

// Palette returns a copy of the 16-byte palette region.
func (m *Memory) Palette() [paletteSize]byte {
	var out [paletteSize]byte
	copy(out[:], m.data[OffsetPalette:OffsetPalette+paletteSize])
	return out
}

// DrawColors returns the current DRAW_COLORS register.
func (m *Memory) DrawColors() uint16 {
	return binary.LittleEndian.Uint16(m.data[OffsetDrawColors:])
}

// Gamepad returns the bitfield for gamepad index i (0-3).
func (m *Memory) Gamepad(i int) uint8 {
	if i < 0 || i >= gamepadsSize {
		return 0
	}
	return m.data[OffsetGamepads+i]
}

// SetGamepad writes the bitfield for gamepad index i (0-3); out of range
// is a no-op.
func (m *Memory) SetGamepad(i int, v uint8) {
	if i < 0 || i >= gamepadsSize {
		return
	}
	m.data[OffsetGamepads+i] = v
}

// MouseX returns the signed mouse X coordinate.
func (m *Memory) MouseX() int16 {
	return int16(binary.LittleEndian.Uint16(m.data[OffsetMouseX:]))
}

// MouseY returns the signed mouse Y coordinate.
func (m *Memory) MouseY() int16 {
	return int16(binary.LittleEndian.Uint16(m.data[OffsetMouseY:]))
}

// SetMouse writes the mouse position and button mask registers.
func (m *Memory) SetMouse(x, y int16, buttons uint8) {
	binary.LittleEndian.PutUint16(m.data[OffsetMouseX:], uint16(x))
	binary.LittleEndian.PutUint16(m.data[OffsetMouseY:], uint16(y))
	m.data[OffsetMouseButtons] = buttons
}

// MouseButtons returns the mouse button mask.
func (m *Memory) MouseButtons() uint8 {
	return m.data[OffsetMouseButtons]
}

// SystemFlags returns the SYSTEM_FLAGS register.
func (m *Memory) SystemFlags() uint8 {
	return m.data[OffsetSystemFlags]
}

// Framebuffer returns a slice view directly over the 6400-byte
// framebuffer region; mutations through it are visible to memory reads
// and vice versa.
func (m *Memory) Framebuffer() []byte {
	return m.data[OffsetFramebuffer : OffsetFramebuffer+FramebufferSize]
}
