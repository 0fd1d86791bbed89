package framebuffer

// Rect draws a filled and/or stroked rectangle at (x,y) with the given
// width and height. The FILL slot (0) paints the interior as h stacked
// hlines; the STROKE slot (1) paints the four-sided outline as two hlines
// (top, bottom) and two vlines (left, right), with the 1-pixel corner
// overlap simply part of the stroke. There is no ground-truth source for
// this primitive (the reference repo's rect.rs is empty); it is built
// directly from the hline/vline primitives it's specified in terms of.
func Rect(c Canvas, drawColors uint16, x, y, width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}

	if fill, ok := remapDrawColor(SlotFill, drawColors); ok {
		for row := int32(0); row < height; row++ {
			hlineImpl(c, fill, x, y+row, uint32(width))
		}
	}

	if stroke, ok := remapDrawColor(SlotStroke, drawColors); ok {
		hlineImpl(c, stroke, x, y, uint32(width))
		hlineImpl(c, stroke, x, y+height-1, uint32(width))
		vlineImpl(c, stroke, x, y, uint32(height))
		vlineImpl(c, stroke, x+width-1, y, uint32(height))
	}
}
