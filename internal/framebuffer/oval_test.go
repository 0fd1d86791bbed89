package framebuffer

import "testing"

func TestOvalSmallCircular(t *testing.T) {
	c := newTestCanvas(8, 5)
	Oval(c, 0x40, 0, 0, 5, 5)

	assertRow(t, c, 0, []uint8{0, 3, 3, 3, 0, 0, 0, 0})
	assertRow(t, c, 1, []uint8{3, 0, 0, 0, 3, 0, 0, 0})
	assertRow(t, c, 2, []uint8{3, 0, 0, 0, 3, 0, 0, 0})
	assertRow(t, c, 3, []uint8{3, 0, 0, 0, 3, 0, 0, 0})
	assertRow(t, c, 4, []uint8{0, 3, 3, 3, 0, 0, 0, 0})
}

func TestOvalSlimHorizontal(t *testing.T) {
	c := newTestCanvas(8, 3)
	Oval(c, 0x40, 0, 0, 8, 3)

	assertRow(t, c, 0, []uint8{0, 0, 3, 3, 3, 3, 0, 0})
	assertRow(t, c, 1, []uint8{3, 3, 0, 0, 0, 0, 3, 3})
	assertRow(t, c, 2, []uint8{0, 0, 3, 3, 3, 3, 0, 0})
}

func TestOvalTransparentStrokeSkipsDrawing(t *testing.T) {
	c := newTestCanvas(8, 5)
	// Slot 1 (stroke) = 0xF is the fully-transparent sentinel.
	Oval(c, 0xf0, 0, 0, 5, 5)
	for y := int32(0); y < 5; y++ {
		assertRow(t, c, y, []uint8{0, 0, 0, 0, 0, 0, 0, 0})
	}
}
