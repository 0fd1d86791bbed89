package framebuffer

import "testing"

func TestBlitSub1BPP(t *testing.T) {
	sprite := byteBuf{0b00001110}
	c := newTestCanvas(16, 1)
	const drawColors = 0x4320

	BlitSub(c, sprite, 0, 0, 8, 1, 0, 0, 8, 0, drawColors)

	assertRow(t, c, 0, []uint8{0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0})
}

func TestBlitSub2BPPMisaligned(t *testing.T) {
	sprite := byteBuf{0b10111110}
	c := newTestCanvas(16, 1)
	const drawColors = 0x4320

	BlitSub(c, sprite, 2, 0, 4, 1, 0, 0, 8, Blit2BPP, drawColors)

	assertRow(t, c, 0, []uint8{0, 0, 2, 3, 3, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
}

func TestBlitReproducesSpriteByteForByteWhenAligned(t *testing.T) {
	// flags=0, offsets=0, stride=w, opaque 1:1 draw_colors -> byte-for-byte
	// reproduction of the (1bpp -> 2bpp mapped) sprite, per the invariant
	// in §8.
	sprite := byteBuf{0b10110010}
	c := newTestCanvas(8, 1)
	const drawColors = 0x4321 // slot k holds k+1, so sprite value k writes color k

	BlitSub(c, sprite, 0, 0, 8, 1, 0, 0, 8, 0, drawColors)

	want := make([]uint8, 8)
	for i := 0; i < 8; i++ {
		bit := (sprite[0] >> uint(7-i)) & 1
		nibble := (uint16(drawColors) >> (4 * uint16(bit))) & 0xf
		want[i] = uint8((nibble - 1) & 0x3)
	}
	assertRow(t, c, 0, want)
}

func TestBlitEquivalentToBlitSubAtOrigin(t *testing.T) {
	sprite := byteBuf{0b11011000}
	const drawColors = 0x4321

	c1 := newTestCanvas(8, 1)
	c2 := newTestCanvas(8, 1)

	Blit(c1, sprite, 0, 0, 8, 1, 0, drawColors)
	BlitSub(c2, sprite, 0, 0, 8, 1, 0, 0, 8, 0, drawColors)

	assertRow(t, c1, 0, rowPixels(c2, 0))
}

func TestBlitSubClipsToTargetBounds(t *testing.T) {
	sprite := byteBuf{0xff, 0xff}
	c := newTestCanvas(4, 4)
	const drawColors = 0x4321

	// Sprite is wider and positioned such that most of it falls outside
	// the 4x4 target; nothing outside the canvas should ever be written
	// (checked implicitly: Set on byteBuf ignores out-of-range writes,
	// and no panic occurs for a sprite source larger than the target).
	BlitSub(c, sprite, 2, 2, 8, 1, 0, 0, 8, 0, drawColors)

	assertRow(t, c, 2, []uint8{0, 0, 1, 1})
}
