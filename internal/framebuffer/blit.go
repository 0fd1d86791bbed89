package framebuffer

// Blit flag bits (host-call `flags` argument).
const (
	Blit2BPP = 1 << 0
	FlipX    = 1 << 1
	FlipY    = 1 << 2
	Rotate   = 1 << 3
)

// BlitSub copies a width x height rectangle from a sprite atlas of pitch
// stride pixels, starting at sprite pixel (srcX,srcY), into the target
// canvas at (x,y), honoring transparency via drawColors. flags selects
// 1bpp/2bpp decoding and the flip/rotate transforms.
//
// Rotation swaps which logical dimension iterates target X vs target Y
// and also inverts FlipX (§9 design note): the target/source pixel
// functions are computed independently from the clipped window-local
// (wx,wy), rotation is never folded into the source function.
//
// Note: one sibling implementation of this routine in the reference
// corpus computes the vertical target range from the horizontal target
// coordinate (w_range_y using x instead of y) in its non-rotated branch.
// That is a bug, not an alternate behavior; this port always derives
// w_range_y from y, so it will diverge from the buggy variant whenever
// x != y — intentionally.
func BlitSub(target Canvas, sprite Source, x, y, width, height, srcX, srcY, stride, flags int32, drawColors uint16) {
	flipX := flags&FlipX != 0
	flipY := flags&FlipY != 0
	rotate := flags&Rotate != 0

	if rotate {
		flipX = !flipX
	}

	var wRangeXStart, wRangeXEnd, wRangeYStart, wRangeYEnd int32
	if rotate {
		wRangeXStart, wRangeXEnd = targetRange(y, height, 0, target.H)
		wRangeYStart, wRangeYEnd = targetRange(x, width, 0, target.W)
	} else {
		wRangeXStart, wRangeXEnd = targetRange(x, width, 0, target.W)
		wRangeYStart, wRangeYEnd = targetRange(y, height, 0, target.H)
	}

	twoBPP := flags&Blit2BPP != 0

	for wy := wRangeYStart; wy < wRangeYEnd; wy++ {
		for wx := wRangeXStart; wx < wRangeXEnd; wx++ {
			var tdx, tdy int32
			if rotate {
				tdx, tdy = wy, wx
			} else {
				tdx, tdy = wx, wy
			}
			tx := x + tdx
			ty := y + tdy

			sdx := wx
			if flipX {
				sdx = width - wx - 1
			}
			sdy := wy
			if flipY {
				sdy = height - wy - 1
			}
			sx := srcX + sdx
			sy := srcY + sdy

			drawColorIdx, ok := spritePixel(sprite, twoBPP, sx, sy, stride)
			if !ok {
				continue
			}
			color, ok := remapDrawColor(drawColorIdx, drawColors)
			if !ok {
				continue
			}
			SetPixelUnclipped(target, tx, ty, color)
		}
	}
}

// Blit is the no-sub-rectangle shortcut: blit_sub(ptr,x,y,w,h,0,0,w,flags).
func Blit(target Canvas, sprite Source, x, y, width, height, flags int32, drawColors uint16) {
	BlitSub(target, sprite, x, y, width, height, 0, 0, width, flags, drawColors)
}

// targetRange computes the clipped, target-local iteration range for one
// axis: start = max(clipStart, tgtCoord) - tgtCoord, end = min(tgtExtent,
// clipEnd - tgtCoord).
func targetRange(tgtCoord, tgtExtent, clipStart, clipEnd int32) (int32, int32) {
	start := clipStart
	if tgtCoord > start {
		start = tgtCoord
	}
	start -= tgtCoord

	end := tgtExtent
	if clipEnd-tgtCoord < end {
		end = clipEnd - tgtCoord
	}
	return start, end
}

// spritePixel reads one pixel's draw-color index from a sprite atlas of
// pitch stride at (x,y), per the bit-exact extraction contracts:
// 1-bpp pixel index p = stride*y+x; byte = sprite[p>>3]; bit = (byte >>
// (7-(p&7)))&1. 2-bpp: byte = sprite[p>>2]; pair = (byte >> (6-((p&3)<<1)))&3.
// Returns false if the computed byte index is out of the sprite's range
// (the pixel is simply skipped, never an error).
func spritePixel(sprite Source, twoBPP bool, x, y, stride int32) (uint8, bool) {
	p := stride*y + x
	if p < 0 {
		return 0, false
	}
	if twoBPP {
		b, ok := sprite.Get(int(p >> 2))
		if !ok {
			return 0, false
		}
		shift := uint(6 - ((p & 3) << 1))
		return (b >> shift) & 0x3, true
	}
	b, ok := sprite.Get(int(p >> 3))
	if !ok {
		return 0, false
	}
	shift := uint(7 - (p & 7))
	return (b >> shift) & 0x1, true
}
