package console

import (
	"nitrocart/internal/cart"
	"nitrocart/internal/hostcall"
)

// buildImports adapts the dispatcher's typed methods into the
// name-indexed, raw-word calling convention an Engine expects from its
// imports table. Every entry here corresponds to one row of the host
// call inventory.
func buildImports(d *hostcall.Dispatcher) map[string]cart.HostFunc {
	return map[string]cart.HostFunc{
		"trace": func(a []uint64) []uint64 {
			d.Trace(u32(a, 0))
			return nil
		},
		"tracef": func(a []uint64) []uint64 {
			d.Tracef(u32(a, 0), u32(a, 1))
			return nil
		},
		"traceUtf8": func(a []uint64) []uint64 {
			d.TraceUTF8(u32(a, 0), u32(a, 1))
			return nil
		},
		"traceUtf16": func(a []uint64) []uint64 {
			d.TraceUTF16(u32(a, 0), u32(a, 1))
			return nil
		},
		"blit": func(a []uint64) []uint64 {
			d.Blit(u32(a, 0), i32(a, 1), i32(a, 2), i32(a, 3), i32(a, 4), i32(a, 5))
			return nil
		},
		"blitSub": func(a []uint64) []uint64 {
			d.BlitSub(u32(a, 0), i32(a, 1), i32(a, 2), i32(a, 3), i32(a, 4), i32(a, 5), i32(a, 6), i32(a, 7), i32(a, 8))
			return nil
		},
		"line": func(a []uint64) []uint64 {
			d.Line(i32(a, 0), i32(a, 1), i32(a, 2), i32(a, 3))
			return nil
		},
		"hline": func(a []uint64) []uint64 {
			d.HLine(i32(a, 0), i32(a, 1), u32(a, 2))
			return nil
		},
		"vline": func(a []uint64) []uint64 {
			d.VLine(i32(a, 0), i32(a, 1), u32(a, 2))
			return nil
		},
		"oval": func(a []uint64) []uint64 {
			d.Oval(i32(a, 0), i32(a, 1), i32(a, 2), i32(a, 3))
			return nil
		},
		"rect": func(a []uint64) []uint64 {
			d.Rect(i32(a, 0), i32(a, 1), i32(a, 2), i32(a, 3))
			return nil
		},
		"text": func(a []uint64) []uint64 {
			d.Text(u32(a, 0), i32(a, 1), i32(a, 2))
			return nil
		},
		"textUtf8": func(a []uint64) []uint64 {
			d.TextUTF8(u32(a, 0), u32(a, 1), i32(a, 2), i32(a, 3))
			return nil
		},
		"textUtf16": func(a []uint64) []uint64 {
			d.TextUTF16(u32(a, 0), u32(a, 1), i32(a, 2), i32(a, 3))
			return nil
		},
		"tone": func(a []uint64) []uint64 {
			d.Tone(u32(a, 0), u32(a, 1), u32(a, 2), u32(a, 3))
			return nil
		},
		"diskr": func(a []uint64) []uint64 {
			return []uint64{uint64(d.Diskr(u32(a, 0), u32(a, 1)))}
		},
		"diskw": func(a []uint64) []uint64 {
			return []uint64{uint64(d.Diskw(u32(a, 0), u32(a, 1)))}
		},
	}
}

func u32(a []uint64, i int) uint32 {
	if i >= len(a) {
		return 0
	}
	return uint32(a[i])
}

func i32(a []uint64, i int) int32 {
	return int32(u32(a, i))
}
