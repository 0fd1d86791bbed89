package framebuffer

import "testing"

func rowPixels(c Canvas, y int32) []uint8 {
	all := pixels(c)
	return all[y*c.W : (y+1)*c.W]
}

func assertRow(t *testing.T, c Canvas, y int32, want []uint8) {
	t.Helper()
	got := rowPixels(c, y)
	if len(got) != len(want) {
		t.Fatalf("row %d: length mismatch: got %d want %d", y, len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("row %d pixel %d: got %d want %d (row=%v)", y, i, got[i], want[i], got)
		}
	}
}

func TestHLineCorner(t *testing.T) {
	c := newTestCanvas(8, 2)
	// drawColors slot0=4 remaps to stroke color 3, per remapDrawColor.
	const drawColors = 0x0004

	HLine(c, drawColors, 1, 0, 6)
	HLine(c, drawColors, -1, 1, 7)

	assertRow(t, c, 0, []uint8{0, 3, 3, 3, 3, 3, 3, 0})
	assertRow(t, c, 1, []uint8{3, 3, 3, 3, 3, 3, 0, 0})
}

func TestVLine(t *testing.T) {
	c := newTestCanvas(4, 7)
	const drawColors = 0x0004

	VLine(c, drawColors, 2, 1, 6)
	VLine(c, drawColors, 0, 1, 3)
	VLine(c, drawColors, 0, 5, 1)

	assertRow(t, c, 0, []uint8{0, 0, 0, 0})
	assertRow(t, c, 1, []uint8{3, 0, 3, 0})
	assertRow(t, c, 2, []uint8{3, 0, 3, 0})
	assertRow(t, c, 3, []uint8{3, 0, 3, 0})
	assertRow(t, c, 4, []uint8{0, 0, 3, 0})
	assertRow(t, c, 5, []uint8{3, 0, 3, 0})
	assertRow(t, c, 6, []uint8{0, 0, 3, 0})
}

func TestLine(t *testing.T) {
	c := newTestCanvas(8, 9)
	const drawColors = 0x0004

	Line(c, drawColors, -1, -1, 3, 3)
	Line(c, drawColors, 0, 8, 1, 5)
	Line(c, drawColors, 6, 1, 7, 6)
	Line(c, drawColors, 4, 7, 6, 7)

	assertRow(t, c, 0, []uint8{3, 0, 0, 0, 0, 0, 0, 0})
	assertRow(t, c, 1, []uint8{0, 3, 0, 0, 0, 0, 3, 0})
	assertRow(t, c, 2, []uint8{0, 0, 3, 0, 0, 0, 3, 0})
	assertRow(t, c, 3, []uint8{0, 0, 0, 3, 0, 0, 3, 0})
	assertRow(t, c, 4, []uint8{0, 0, 0, 0, 0, 0, 0, 3})
	assertRow(t, c, 5, []uint8{0, 3, 0, 0, 0, 0, 0, 3})
	assertRow(t, c, 6, []uint8{0, 3, 0, 0, 0, 0, 0, 3})
	assertRow(t, c, 7, []uint8{3, 0, 0, 0, 3, 3, 3, 0})
	assertRow(t, c, 8, []uint8{3, 0, 0, 0, 0, 0, 0, 0})
}

func TestHLineNeverWritesOutsideClippedSpan(t *testing.T) {
	c := newTestCanvas(8, 1)
	HLine(c, 0x0004, 20, 0, 5)
	assertRow(t, c, 0, []uint8{0, 0, 0, 0, 0, 0, 0, 0})
}

func TestHLineTransparentFillIsNoop(t *testing.T) {
	c := newTestCanvas(8, 1)
	HLine(c, 0x0000, 0, 0, 8)
	assertRow(t, c, 0, []uint8{0, 0, 0, 0, 0, 0, 0, 0})
}
