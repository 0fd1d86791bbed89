package framebuffer

// charsetSource adapts the built-in charset byte array to the Source
// capability so it can be passed to BlitSub like any other sprite atlas.
type charsetSource struct{}

func (charsetSource) Get(i int) (byte, bool) {
	if i < 0 || i >= len(charset) {
		return 0, false
	}
	return charset[i], true
}

// Text draws an 8-bit byte sequence as bitmap text at (x,y) using the
// built-in 128x112 1-bpp charset. Byte 0 terminates; byte 10 advances y
// by 8 and resets x to the origin; bytes 32..=255 select an 8x8 glyph;
// any other byte advances x by 8 without drawing.
func Text(c Canvas, text []byte, x, y int32, drawColors uint16) {
	tx, ty := x, y
	for _, ch := range text {
		switch {
		case ch == 0:
			return
		case ch == 10:
			ty += 8
			tx = x
		case ch >= 32:
			drawGlyph(c, ch, tx, ty, drawColors)
			tx += 8
		default:
			tx += 8
		}
	}
}

// TextUTF16 is the UTF-16 code-unit variant of Text: each element is
// treated the same way Text treats a byte, glyphs beyond the built-in
// charset's 32..=255 band still only advance the cursor, matching the
// reference implementation's behavior for out-of-range code units.
func TextUTF16(c Canvas, text []uint16, x, y int32, drawColors uint16) {
	tx, ty := x, y
	for _, ch := range text {
		switch {
		case ch == 0:
			return
		case ch == 10:
			ty += 8
			tx = x
		case ch >= 32 && ch <= 255:
			drawGlyph(c, uint8(ch), tx, ty, drawColors)
			tx += 8
		default:
			tx += 8
		}
	}
}

func drawGlyph(c Canvas, ch uint8, tx, ty int32, drawColors uint16) {
	idx := int32(ch) - 32
	srcX := (idx & 0x0f) * 8
	srcY := (idx >> 4) * 8
	BlitSub(c, charsetSource{}, tx, ty, 8, 8, srcX, srcY, charsetWidth, charsetFlags, drawColors)
}
