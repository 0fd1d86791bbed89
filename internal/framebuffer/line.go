package framebuffer

// HLine draws a horizontal line from (x,y) to (x+len-1,y) with the
// current FILL slot, honoring transparency.
func HLine(c Canvas, drawColors uint16, x, y int32, length uint32) {
	stroke, ok := remapDrawColor(SlotFill, drawColors)
	if !ok {
		return
	}
	hlineImpl(c, stroke, x, y, length)
}

func hlineImpl(c Canvas, stroke uint8, x, y int32, length uint32) {
	if y < 0 || y >= c.H {
		return
	}

	startX := x
	if startX < 0 {
		startX = 0
	}
	endX := int32(length) + x
	if endX > c.W {
		endX = c.W
	}

	if startX > endX {
		return
	}

	fillEnd := endX - (endX & 3)
	fillStart := fillEnd
	if v := (startX + 3) &^ 3; v < fillStart {
		fillStart = v
	}

	if fillEnd-fillStart > 3 {
		for px := startX; px < fillStart; px++ {
			setPixelImpl(c, px, y, stroke)
		}

		from := int(c.W*y+fillStart) >> 2
		to := int(c.W*y+fillEnd) >> 2
		byteStroke := stroke * 0x55

		for idx := from; idx < to; idx++ {
			c.Set(idx, byteStroke)
		}
		startX = fillEnd
	}

	for px := startX; px < endX; px++ {
		setPixelImpl(c, px, y, stroke)
	}
}

// VLine draws a vertical line from (x,y) to (x,y+len-1).
func VLine(c Canvas, drawColors uint16, x, y int32, length uint32) {
	stroke, ok := remapDrawColor(SlotFill, drawColors)
	if !ok {
		return
	}
	vlineImpl(c, stroke, x, y, length)
}

func vlineImpl(c Canvas, stroke uint8, x, y int32, length uint32) {
	if y+int32(length) <= 0 || x < 0 || x >= c.W {
		return
	}

	startY := y
	if startY < 0 {
		startY = 0
	}
	endY := int32(length) + y
	if endY > c.H {
		endY = c.H
	}

	if startY > endY {
		return
	}

	for py := startY; py < endY; py++ {
		setPixelImpl(c, x, py, stroke)
	}
}

// Line draws a Bresenham line between (x1,y1) and (x2,y2) using the
// current FILL slot; a transparent FILL slot makes the call a no-op.
func Line(c Canvas, drawColors uint16, x1, y1, x2, y2 int32) {
	stroke, ok := remapDrawColor(SlotFill, drawColors)
	if !ok {
		return
	}
	lineImpl(c, stroke, x1, y1, x2, y2)
}

func lineImpl(c Canvas, stroke uint8, x1, y1, x2, y2 int32) {
	if y1 > y2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	sx := int32(-1)
	if x1 < x2 {
		sx = 1
	}
	dy := y2 - y1

	var err int32
	if dx > dy {
		err = dx / 2
	} else {
		err = -dy / 2
	}

	// Safety bound: the line can never legitimately take more steps than
	// there are pixels in the framebuffer.
	for i := int32(0); i < c.W*c.H; i++ {
		SetPixelUnclipped(c, x1, y1, stroke)

		if x1 == x2 && y1 == y2 {
			break
		}

		err2 := err

		if err2 > -dx {
			err -= dy
			x1 += sx
		}
		if err2 < dy {
			err += dx
			y1++
		}
	}
}
